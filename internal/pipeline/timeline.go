package pipeline

import (
	"fmt"
	"time"

	"talentflow-backend/internal/model"
	"talentflow-backend/internal/store"
)

// recordApplied appends the initial applied event for a freshly created
// candidate. Callers invoke it inside the same transaction as the candidate
// insert.
func recordApplied(tx *store.Store, c *model.Candidate) error {
	ev := model.TimelineEvent{
		CandidateID: c.ID,
		Action:      model.TimelineActionApplied,
		Stage:       model.StageApplied,
		Timestamp:   c.AppliedAt,
		Notes:       fmt.Sprintf("%s applied for the position", c.Name),
	}
	return store.Add(tx, &ev)
}

// recordStageChange appends exactly one stage_change event for an observed
// transition. Events are never updated or removed afterwards; the candidate
// history is the append-only sequence of these records.
func recordStageChange(tx *store.Store, candidateID, fromStage, toStage string, at time.Time) error {
	ev := model.TimelineEvent{
		CandidateID: candidateID,
		Action:      model.TimelineActionStageChange,
		Stage:       toStage,
		Timestamp:   at,
		Notes:       fmt.Sprintf("Moved from %s to %s", fromStage, toStage),
	}
	return store.Add(tx, &ev)
}
