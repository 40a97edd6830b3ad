package models

import "gorm.io/gorm"

// ShortLink maps a short code to a target URL
type ShortLink struct {
	gorm.Model
	Code   string `json:"code" gorm:"uniqueIndex;size:16;not null"`
	URL    string `json:"url" gorm:"type:text;not null"`
	Visits int64  `json:"visits" gorm:"default:0"`
}
