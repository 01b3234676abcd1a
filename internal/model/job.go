// Package model contain gorm model for recording data to database
package model

import (
	"time"
)

var (
	// JobStatusActive indicates that the job is open and visible on the board
	JobStatusActive = "active"
	// JobStatusArchived indicates that the job has been archived
	JobStatusArchived = "archived"
)

// JobStatuses lists every valid job status.
var JobStatuses = []string{JobStatusActive, JobStatusArchived}

// Job is gorm model for a job posting on the hiring board.
// Order is a dense zero-based rank over all jobs; the pipeline keeps the set
// of orders equal to {0..n-1} after every successful reorder.
type Job struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Title string `gorm:"type:text" json:"title"`
	Slug  string `gorm:"type:text;index" json:"slug"`

	Status       string     `gorm:"type:text;index" json:"status"`
	Tags         StringList `gorm:"serializer:json" json:"tags"`
	Order        int        `gorm:"column:display_order;index" json:"order"`
	Description  string     `gorm:"type:text" json:"description"`
	Requirements StringList `gorm:"serializer:json" json:"requirements"`

	CreatedAt time.Time `gorm:"type:timestamp;autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;autoUpdateTime:false" json:"updatedAt"`
}

// StringList is a JSON-serialized string slice column.
// The sqlite store has no native array type, so tags and requirements are
// stored through the gorm json serializer.
type StringList []string
