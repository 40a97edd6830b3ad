package services

import (
	"byteforge/models"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Upsert result messages
const (
	UpsertCreated = "created"
	UpsertUpdated = "updated"
)

// SubTopicService handles SubTopic CRUD. Creation is idempotent-by-upsert:
// posting an existing subtopicId updates the record instead of duplicating it.
type SubTopicService struct {
	db *gorm.DB
}

func NewSubTopicService(db *gorm.DB) *SubTopicService {
	return &SubTopicService{db: db}
}

// SubTopicInput carries the full subtopic payload for upserts
type SubTopicInput struct {
	ID            models.Slug
	Title         string
	Description   string
	EstimatedTime string
	Content       []models.ContentBlock
	CodeExamples  []models.CodeExample
	Resources     []models.Resource
	QuizQuestions []models.QuizQuestion
}

// SubTopicPatch carries optional updates; zero fields are left unchanged
type SubTopicPatch struct {
	Title         string
	Description   string
	EstimatedTime string
	Content       *[]models.ContentBlock
	CodeExamples  *[]models.CodeExample
	Resources     *[]models.Resource
	QuizQuestions *[]models.QuizQuestion
}

// List returns all subtopics
func (s *SubTopicService) List() ([]models.SubTopic, error) {
	var subtopics []models.SubTopic
	if err := s.db.Find(&subtopics).Error; err != nil {
		return nil, err
	}
	return subtopics, nil
}

// GetByID returns the subtopic with the given slug
func (s *SubTopicService) GetByID(id models.Slug) (*models.SubTopic, error) {
	var subtopic models.SubTopic
	if err := s.db.Where("subtopic_slug = ?", id).First(&subtopic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("SubTopic")
		}
		return nil, err
	}
	return &subtopic, nil
}

// ListByTopicID returns the subtopics of a topic, oldest first
func (s *SubTopicService) ListByTopicID(topicID models.Slug) ([]models.SubTopic, error) {
	if err := s.requireTopic(topicID); err != nil {
		return nil, err
	}

	var subtopics []models.SubTopic
	if err := s.db.Where("topic_slug = ?", topicID).Order("created_at asc").Find(&subtopics).Error; err != nil {
		return nil, err
	}
	return subtopics, nil
}

// Upsert creates the subtopic under the topic, or updates it in place when
// the subtopicId already exists. Returns UpsertCreated or UpsertUpdated.
func (s *SubTopicService) Upsert(topicID models.Slug, input SubTopicInput) (*models.SubTopic, string, error) {
	if !input.ID.Valid() {
		return nil, "", Invalid("subtopicId must be a lowercase slug")
	}
	if err := s.requireTopic(topicID); err != nil {
		return nil, "", err
	}

	var subtopic models.SubTopic
	err := s.db.Where("subtopic_slug = ?", input.ID).First(&subtopic).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	message := UpsertUpdated
	if errors.Is(err, gorm.ErrRecordNotFound) {
		subtopic = models.SubTopic{SubtopicSlug: input.ID}
		message = UpsertCreated
	}

	subtopic.TopicSlug = topicID
	subtopic.Title = input.Title
	subtopic.Description = input.Description
	subtopic.EstimatedTime = input.EstimatedTime
	subtopic.Content = datatypes.JSONSlice[models.ContentBlock](input.Content)
	subtopic.CodeExamples = datatypes.JSONSlice[models.CodeExample](input.CodeExamples)
	subtopic.Resources = datatypes.JSONSlice[models.Resource](input.Resources)
	subtopic.QuizQuestions = datatypes.JSONSlice[models.QuizQuestion](input.QuizQuestions)

	if err := s.db.Save(&subtopic).Error; err != nil {
		return nil, "", err
	}
	return &subtopic, message, nil
}

// Update applies the patch to an existing subtopic
func (s *SubTopicService) Update(id models.Slug, patch SubTopicPatch) (*models.SubTopic, error) {
	subtopic, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != "" {
		subtopic.Title = patch.Title
	}
	if patch.Description != "" {
		subtopic.Description = patch.Description
	}
	if patch.EstimatedTime != "" {
		subtopic.EstimatedTime = patch.EstimatedTime
	}
	if patch.Content != nil {
		subtopic.Content = datatypes.JSONSlice[models.ContentBlock](*patch.Content)
	}
	if patch.CodeExamples != nil {
		subtopic.CodeExamples = datatypes.JSONSlice[models.CodeExample](*patch.CodeExamples)
	}
	if patch.Resources != nil {
		subtopic.Resources = datatypes.JSONSlice[models.Resource](*patch.Resources)
	}
	if patch.QuizQuestions != nil {
		subtopic.QuizQuestions = datatypes.JSONSlice[models.QuizQuestion](*patch.QuizQuestions)
	}

	if err := s.db.Save(subtopic).Error; err != nil {
		return nil, err
	}
	return subtopic, nil
}

// Delete removes the subtopic
func (s *SubTopicService) Delete(id models.Slug) (*models.SubTopic, error) {
	subtopic, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(subtopic).Error; err != nil {
		return nil, err
	}
	return subtopic, nil
}

func (s *SubTopicService) requireTopic(topicID models.Slug) error {
	var count int64
	if err := s.db.Model(&models.Topic{}).Where("slug = ?", topicID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NotFound("Topic")
	}
	return nil
}
