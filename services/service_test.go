package services

import (
	"byteforge/models"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory sqlite database per test
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // keep the single in-memory database

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Topic{},
		&models.SubTopic{},
		&models.ShortLink{},
	))
	return db
}

func mustCreateCategory(t *testing.T, db *gorm.DB, slug models.Slug, order int) *models.Category {
	t.Helper()

	category, err := NewCategoryService(db).Create(CategoryInput{
		ID:          slug,
		Title:       "Category " + slug.String(),
		Description: "description",
		Icon:        "book-open",
		Color:       "#f89820",
		Order:       order,
	})
	require.NoError(t, err)
	return category
}

func mustCreateTopic(t *testing.T, db *gorm.DB, slug, category models.Slug) *models.Topic {
	t.Helper()

	topic, err := NewTopicService(db).Create(TopicInput{
		ID:          slug,
		Title:       "Topic " + slug.String(),
		Description: "description",
		Category:    category,
	})
	require.NoError(t, err)
	return topic
}
