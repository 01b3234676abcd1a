package model

import (
	"time"
)

var (
	// StageApplied is the entry stage every candidate starts in
	StageApplied = "applied"
	// StageScreen indicates the candidate passed to phone screening
	StageScreen = "screen"
	// StageTech indicates the candidate is in technical interviews
	StageTech = "tech"
	// StageOffer indicates an offer has been extended
	StageOffer = "offer"
	// StageHired indicates the candidate accepted and was hired
	StageHired = "hired"
	// StageRejected is the terminal stage for rejected candidates
	StageRejected = "rejected"
)

// Stages is the hiring funnel in order, with the terminal rejected stage last.
var Stages = []string{StageApplied, StageScreen, StageTech, StageOffer, StageHired, StageRejected}

// ValidStage reports whether s is one of the enumerated stages.
func ValidStage(s string) bool {
	for _, v := range Stages {
		if v == s {
			return true
		}
	}
	return false
}

// Candidate is gorm model for a person applying to a job.
type Candidate struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"type:text" json:"name"`
	Email string `gorm:"type:text" json:"email"`

	// JobID references Job.ID
	JobID string `gorm:"index" json:"jobId"`
	Stage string `gorm:"type:text;index" json:"stage"`

	AppliedAt time.Time `gorm:"type:timestamp" json:"appliedAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;autoUpdateTime:false" json:"updatedAt"`

	Resume string     `gorm:"type:text" json:"resume"`
	Notes  StringList `gorm:"serializer:json" json:"notes"`
}
