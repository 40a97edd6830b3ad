package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContentBlock is one ordered block of lesson content
type ContentBlock struct {
	Type     string `json:"type"` // text, code, image, video
	Content  string `json:"content"`
	Language string `json:"language,omitempty"` // for code blocks
	URL      string `json:"url,omitempty"`      // for image/video blocks
	Caption  string `json:"caption,omitempty"`
}

// CodeExample is a runnable snippet shown in the editor shell
type CodeExample struct {
	Title       string `json:"title"`
	Code        string `json:"code"`
	Language    string `json:"language"`
	Description string `json:"description"`
}

// Resource is an external reading/reference link
type Resource struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Type        string `json:"type"` // article, video, documentation
	Description string `json:"description"`
	Level       string `json:"level"`
}

// QuizQuestion is a multiple-choice question for the quiz runner
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"` // index into Options
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
	TimeLimit     int      `json:"timeLimit"` // seconds
}

// SubTopic is a single lesson under a topic
type SubTopic struct {
	gorm.Model
	SubtopicSlug  Slug                              `json:"subtopicId" gorm:"uniqueIndex;size:64;not null;index:idx_topic_subtopic,unique"`
	TopicSlug     Slug                              `json:"topicId" gorm:"index;size:64;not null;index:idx_topic_subtopic,unique"`
	Title         string                            `json:"title"`
	Description   string                            `json:"description" gorm:"type:text"`
	EstimatedTime string                            `json:"estimatedTime"`
	Content       datatypes.JSONSlice[ContentBlock] `json:"content"`
	CodeExamples  datatypes.JSONSlice[CodeExample]  `json:"codeExamples"`
	Resources     datatypes.JSONSlice[Resource]     `json:"resources"`
	QuizQuestions datatypes.JSONSlice[QuizQuestion] `json:"quizQuestions"`
}
