package model

import (
	"time"
)

var (
	// TimelineActionApplied marks the initial application event
	TimelineActionApplied = "applied"
	// TimelineActionStageChange marks a move between hiring stages
	TimelineActionStageChange = "stage_change"
)

// TimelineEvent is gorm model for one entry in a candidate's history.
// Events are append-only; nothing in the pipeline updates or deletes them.
type TimelineEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// CandidateID references Candidate.ID
	CandidateID string `gorm:"not null;index" json:"candidateId"`

	Action    string    `gorm:"type:text" json:"action"`
	Stage     string    `gorm:"type:text" json:"stage"`
	Timestamp time.Time `gorm:"type:timestamp" json:"timestamp"`
	Notes     string    `gorm:"type:text" json:"notes"`
}
