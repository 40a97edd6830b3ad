package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Category groups topics for the topic browser (e.g. "Java Fundamentals")
type Category struct {
	gorm.Model
	Slug        Slug   `json:"id" gorm:"uniqueIndex;size:64;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	// "order" is a reserved word in SQL, stored as sort_order
	Order  int                       `json:"order" gorm:"column:sort_order;default:0"`
	Topics datatypes.JSONSlice[Slug] `json:"topics"` // ordered topic slugs, mirror of Topic.Category
}
