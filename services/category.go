package services

import (
	"byteforge/models"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CategoryService handles Category CRUD. The Topics list on a category is
// owned by TopicService (it appends and pulls topic slugs as topics move);
// CategoryService never edits it beyond the empty default on create.
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// CategoryInput carries the fields required to create a category
type CategoryInput struct {
	ID          models.Slug
	Title       string
	Description string
	Icon        string
	Color       string
	Order       int
}

// CategoryPatch carries optional updates; empty fields are left unchanged
type CategoryPatch struct {
	Title       string
	Description string
	Icon        string
	Color       string
	Order       *int
}

// List returns all categories sorted by their display order
func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("sort_order asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID returns the category with the given slug
func (s *CategoryService) GetByID(id models.Slug) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("slug = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Category")
		}
		return nil, err
	}
	return &category, nil
}

// Create inserts a new category with an empty topic list
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	if !input.ID.Valid() {
		return nil, Invalid("id must be a lowercase slug")
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Where("slug = ?", input.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, Duplicate("Category", input.ID.String())
	}

	category := models.Category{
		Slug:        input.ID,
		Title:       input.Title,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		Order:       input.Order,
		Topics:      datatypes.JSONSlice[models.Slug]{},
	}
	if err := s.db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Duplicate("Category", input.ID.String())
		}
		return nil, err
	}
	return &category, nil
}

// Update applies the non-empty patch fields to the category
func (s *CategoryService) Update(id models.Slug, patch CategoryPatch) (*models.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != "" {
		category.Title = patch.Title
	}
	if patch.Description != "" {
		category.Description = patch.Description
	}
	if patch.Icon != "" {
		category.Icon = patch.Icon
	}
	if patch.Color != "" {
		category.Color = patch.Color
	}
	if patch.Order != nil {
		category.Order = *patch.Order
	}

	if err := s.db.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category. Its topics are NOT cascade-deleted; their
// category field keeps pointing at the removed slug.
func (s *CategoryService) Delete(id models.Slug) (*models.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}
