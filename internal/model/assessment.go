package model

import (
	"time"
)

var (
	// QuestionTypeSingleChoice is a radio-group question with one answer
	QuestionTypeSingleChoice = "single-choice"
	// QuestionTypeMultiChoice is a checkbox-group question with many answers
	QuestionTypeMultiChoice = "multi-choice"
	// QuestionTypeShortText is a single-line text answer
	QuestionTypeShortText = "short-text"
	// QuestionTypeLongText is a multi-line text answer
	QuestionTypeLongText = "long-text"
	// QuestionTypeNumeric is a number answer within optional bounds
	QuestionTypeNumeric = "numeric"
	// QuestionTypeFileUpload is a file attachment placeholder question
	QuestionTypeFileUpload = "file-upload"
)

// QuestionTypes lists every valid question type.
var QuestionTypes = []string{
	QuestionTypeSingleChoice,
	QuestionTypeMultiChoice,
	QuestionTypeShortText,
	QuestionTypeLongText,
	QuestionTypeNumeric,
	QuestionTypeFileUpload,
}

// Assessment is gorm model for the per-job questionnaire.
// Keyed by the owning job: one assessment per job, replaced wholesale on save.
type Assessment struct {
	// JobID references Job.ID and is the primary key
	JobID string `gorm:"primaryKey" json:"jobId"`

	Title    string    `gorm:"type:text" json:"title"`
	Sections []Section `gorm:"serializer:json" json:"sections"`

	UpdatedAt time.Time `gorm:"type:timestamp;autoUpdateTime:false" json:"updatedAt"`
}

// Section is an ordered group of questions inside an assessment.
type Section struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Question is one assessment question with its type-specific constraints:
// options and answer keys for choice types, max length for text types,
// min/max for numeric.
type Question struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Question string `json:"question"`
	Required bool   `json:"required"`

	Options        []string `json:"options,omitempty"`
	CorrectAnswer  string   `json:"correctAnswer,omitempty"`
	CorrectAnswers []string `json:"correctAnswers,omitempty"`

	MaxLength *int     `json:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
}
