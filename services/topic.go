package services

import (
	"byteforge/models"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TopicService handles Topic CRUD and keeps the Category.Topics mirror in
// sync. Every write that touches both a topic and a category runs inside a
// single transaction so the bidirectional reference cannot half-apply.
type TopicService struct {
	db *gorm.DB
}

func NewTopicService(db *gorm.DB) *TopicService {
	return &TopicService{db: db}
}

// TopicInput carries the fields required to create a topic
type TopicInput struct {
	ID            models.Slug
	Title         string
	Description   string
	Level         string
	Duration      string
	Category      models.Slug
	Prerequisites []models.Slug
	Tags          []string
	Image         string
}

// TopicPatch carries optional updates; zero fields are left unchanged
type TopicPatch struct {
	Title         string
	Description   string
	Level         string
	Duration      string
	Category      models.Slug
	Prerequisites *[]models.Slug
	Tags          *[]string
	Image         string
}

// List returns all topics, most recently updated first
func (s *TopicService) List() ([]models.Topic, error) {
	var topics []models.Topic
	if err := s.db.Order("updated_at desc").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

// GetByID returns the topic with the given slug
func (s *TopicService) GetByID(id models.Slug) (*models.Topic, error) {
	var topic models.Topic
	if err := s.db.Where("slug = ?", id).First(&topic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Topic")
		}
		return nil, err
	}
	return &topic, nil
}

// ListByCategory returns the topics belonging to a category
func (s *TopicService) ListByCategory(categoryID models.Slug) ([]models.Topic, error) {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("slug = ?", categoryID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, NotFound("Category")
	}

	var topics []models.Topic
	if err := s.db.Where("category = ?", categoryID).Order("updated_at desc").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

// Create inserts a topic and appends its slug to the owning category's list
func (s *TopicService) Create(input TopicInput) (*models.Topic, error) {
	if !input.ID.Valid() {
		return nil, Invalid("id must be a lowercase slug")
	}
	if input.Level != "" && !models.ValidLevel(input.Level) {
		return nil, Invalid("level must be Beginner, Intermediate or Advanced")
	}

	var count int64
	if err := s.db.Model(&models.Topic{}).Where("slug = ?", input.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, Duplicate("Topic", input.ID.String())
	}

	level := input.Level
	if level == "" {
		level = models.LevelBeginner
	}

	topic := models.Topic{
		Slug:          input.ID,
		Title:         input.Title,
		Description:   input.Description,
		Level:         level,
		Duration:      input.Duration,
		Category:      input.Category,
		Prerequisites: datatypes.JSONSlice[models.Slug](input.Prerequisites),
		Tags:          datatypes.JSONSlice[string](input.Tags),
		Image:         input.Image,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where("slug = ?", input.Category).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Category")
			}
			return err
		}
		if err := tx.Create(&topic).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return Duplicate("Topic", input.ID.String())
			}
			return err
		}
		return appendTopicToCategory(tx, &category, topic.Slug)
	})
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// Update applies the patch. A category change pulls the topic slug from the
// old category's list and appends it to the new one, all in one transaction.
func (s *TopicService) Update(id models.Slug, patch TopicPatch) (*models.Topic, error) {
	topic, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Level != "" && !models.ValidLevel(patch.Level) {
		return nil, Invalid("level must be Beginner, Intermediate or Advanced")
	}

	if patch.Title != "" {
		topic.Title = patch.Title
	}
	if patch.Description != "" {
		topic.Description = patch.Description
	}
	if patch.Level != "" {
		topic.Level = patch.Level
	}
	if patch.Duration != "" {
		topic.Duration = patch.Duration
	}
	if patch.Prerequisites != nil {
		topic.Prerequisites = datatypes.JSONSlice[models.Slug](*patch.Prerequisites)
	}
	if patch.Tags != nil {
		topic.Tags = datatypes.JSONSlice[string](*patch.Tags)
	}
	if patch.Image != "" {
		topic.Image = patch.Image
	}

	oldCategory := topic.Category
	moving := patch.Category != "" && patch.Category != oldCategory
	if moving {
		topic.Category = patch.Category
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if moving {
			var newCategory models.Category
			if err := tx.Where("slug = ?", patch.Category).First(&newCategory).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return NotFound("Category")
				}
				return err
			}

			// the old category may already be gone; that is fine
			var old models.Category
			if err := tx.Where("slug = ?", oldCategory).First(&old).Error; err == nil {
				if err := pullTopicFromCategory(tx, &old, id); err != nil {
					return err
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			if err := appendTopicToCategory(tx, &newCategory, id); err != nil {
				return err
			}
		}
		return tx.Save(topic).Error
	})
	if err != nil {
		return nil, err
	}
	return topic, nil
}

// Delete removes the topic and pulls its slug from the owning category
func (s *TopicService) Delete(id models.Slug) (*models.Topic, error) {
	topic, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(topic).Error; err != nil {
			return err
		}
		var category models.Category
		if err := tx.Where("slug = ?", topic.Category).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		return pullTopicFromCategory(tx, &category, id)
	})
	if err != nil {
		return nil, err
	}
	return topic, nil
}

// appendTopicToCategory adds the topic slug to the category's list unless
// it is already present
func appendTopicToCategory(tx *gorm.DB, category *models.Category, id models.Slug) error {
	for _, existing := range category.Topics {
		if existing == id {
			return nil
		}
	}
	topics := append(category.Topics, id)
	return tx.Model(category).Update("topics", topics).Error
}

// pullTopicFromCategory removes every occurrence of the topic slug from the
// category's list
func pullTopicFromCategory(tx *gorm.DB, category *models.Category, id models.Slug) error {
	topics := make(datatypes.JSONSlice[models.Slug], 0, len(category.Topics))
	for _, existing := range category.Topics {
		if existing != id {
			topics = append(topics, existing)
		}
	}
	if len(topics) == len(category.Topics) {
		return nil
	}
	return tx.Model(category).Update("topics", topics).Error
}
