package services

import (
	"byteforge/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryDefaultsEmptyTopics(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(db)

	mustCreateCategory(t, db, "java-fundamentals", 1)

	category, err := svc.GetByID("java-fundamentals")
	require.NoError(t, err)
	assert.Equal(t, models.Slug("java-fundamentals"), category.Slug)
	assert.NotNil(t, category.Topics)
	assert.Len(t, category.Topics, 0)
}

func TestCreateCategoryDuplicateID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(db)

	mustCreateCategory(t, db, "java-fundamentals", 1)

	_, err := svc.Create(CategoryInput{
		ID:          "java-fundamentals",
		Title:       "Again",
		Description: "description",
		Icon:        "book-open",
		Color:       "#fff",
		Order:       2,
	})
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))
}

func TestCreateCategoryRejectsBadSlug(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(db)

	_, err := svc.Create(CategoryInput{ID: "Java Fundamentals!", Title: "x"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestListCategoriesSortedByOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(db)

	mustCreateCategory(t, db, "advanced-java", 2)
	mustCreateCategory(t, db, "java-fundamentals", 1)
	mustCreateCategory(t, db, "frameworks", 3)

	categories, err := svc.List()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, models.Slug("java-fundamentals"), categories[0].Slug)
	assert.Equal(t, models.Slug("advanced-java"), categories[1].Slug)
	assert.Equal(t, models.Slug("frameworks"), categories[2].Slug)
}

func TestGetCategoryNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(db)

	_, err := svc.GetByID("missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "Category not found")
}

func TestUpdateCategoryPartialPatch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(db)

	mustCreateCategory(t, db, "java-fundamentals", 1)

	newOrder := 5
	category, err := svc.Update("java-fundamentals", CategoryPatch{
		Title: "Java Core",
		Order: &newOrder,
	})
	require.NoError(t, err)
	assert.Equal(t, "Java Core", category.Title)
	assert.Equal(t, 5, category.Order)
	assert.Equal(t, "description", category.Description) // untouched
}

func TestDeleteCategoryDoesNotCascade(t *testing.T) {
	db := setupTestDB(t)
	categorySvc := NewCategoryService(db)
	topicSvc := NewTopicService(db)

	mustCreateCategory(t, db, "java-fundamentals", 1)
	mustCreateTopic(t, db, "java-basics", "java-fundamentals")

	_, err := categorySvc.Delete("java-fundamentals")
	require.NoError(t, err)

	_, err = categorySvc.GetByID("java-fundamentals")
	assert.True(t, IsNotFound(err))

	// topic survives with its now-orphaned category reference
	topic, err := topicSvc.GetByID("java-basics")
	require.NoError(t, err)
	assert.Equal(t, models.Slug("java-fundamentals"), topic.Category)
}
