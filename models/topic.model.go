package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Topic difficulty levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Topic represents a learning topic within a category
type Topic struct {
	gorm.Model
	Slug        Slug   `json:"id" gorm:"uniqueIndex;size:64;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Level       string `json:"level" gorm:"index;default:'Beginner'"` // Beginner, Intermediate, Advanced
	Duration    string `json:"duration"`                              // free text, e.g. "2 weeks"
	Category    Slug   `json:"category" gorm:"index;size:64;not null"`
	// soft hints only, not validated for existence or cycles
	Prerequisites datatypes.JSONSlice[Slug]   `json:"prerequisites"`
	Tags          datatypes.JSONSlice[string] `json:"tags"`
	Image         string                      `json:"image"`
}

// ValidLevel reports whether level is one of the known difficulty levels.
func ValidLevel(level string) bool {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}
