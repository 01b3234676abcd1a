package model

import (
	"time"
)

// AnswerMap maps question id to the submitted answer value.
type AnswerMap map[string]interface{}

// AssessmentResponse is gorm model for one submitted assessment form.
// Responses are append-only; a candidate may submit more than once.
type AssessmentResponse struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// JobID references Job.ID
	JobID string `gorm:"not null;index" json:"jobId"`
	// CandidateID references Candidate.ID
	CandidateID string `gorm:"not null;index" json:"candidateId"`

	Responses AnswerMap `gorm:"serializer:json" json:"responses"`

	SubmittedAt time.Time `gorm:"type:timestamp" json:"submittedAt"`
}
