package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"talentflow-backend/internal/model"
	"talentflow-backend/internal/store"
)

// CandidateQuery holds the list parameters for ListCandidates.
type CandidateQuery struct {
	Search   string
	Stage    string
	Page     int
	PageSize int
}

// CandidateInput holds the caller-supplied fields for CreateCandidate.
type CandidateInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	JobID  string `json:"jobId"`
	Stage  string `json:"stage"`
	Resume string `json:"resume"`
}

// CandidateUpdate holds the fields UpdateCandidate may change; nil fields are left untouched.
type CandidateUpdate struct {
	Name   *string   `json:"name"`
	Email  *string   `json:"email"`
	JobID  *string   `json:"jobId"`
	Stage  *string   `json:"stage"`
	Resume *string   `json:"resume"`
	Notes  *[]string `json:"notes"`
}

// ListCandidates returns one page of candidates after in-memory search, stage
// filter and sort. Search matches name and email, case-insensitive substring;
// the result is sorted most recently updated first with ties keeping the
// store's return order.
func (s *Service) ListCandidates(ctx context.Context, q CandidateQuery) (Page[model.Candidate], error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 50
	}

	candidates, err := store.All[model.Candidate](s.store.WithContext(ctx))
	if err != nil {
		return Page[model.Candidate]{}, fmt.Errorf("list candidates: %w", err)
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		filtered := candidates[:0]
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c.Name), needle) ||
				strings.Contains(strings.ToLower(c.Email), needle) {
				filtered = append(filtered, c)
			}
		}
		candidates = filtered
	}

	if q.Stage != "" {
		filtered := candidates[:0]
		for _, c := range candidates {
			if c.Stage == q.Stage {
				filtered = append(filtered, c)
			}
		}
		candidates = filtered
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].UpdatedAt.After(candidates[j].UpdatedAt)
	})

	return paginate(candidates, q.Page, q.PageSize), nil
}

// GetCandidate fetches one candidate by id.
func (s *Service) GetCandidate(ctx context.Context, id string) (*model.Candidate, error) {
	return store.Get[model.Candidate](s.store.WithContext(ctx), "id", id)
}

// CreateCandidate stores a new candidate and their initial applied timeline
// event in one transaction. Stage defaults to applied when empty.
func (s *Service) CreateCandidate(ctx context.Context, in CandidateInput) (*model.Candidate, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("create candidate: name is required: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("create candidate: email is required: %w", ErrInvalidInput)
	}
	if in.Stage == "" {
		in.Stage = model.StageApplied
	}
	if !model.ValidStage(in.Stage) {
		return nil, fmt.Errorf("create candidate: stage %q: %w", in.Stage, ErrInvalidStage)
	}

	now := time.Now().UTC()
	candidate := model.Candidate{
		ID:        "candidate-" + uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		JobID:     in.JobID,
		Stage:     in.Stage,
		AppliedAt: now,
		UpdatedAt: now,
		Resume:    in.Resume,
		Notes:     model.StringList{},
	}

	err := s.store.WithContext(ctx).Tx(func(tx *store.Store) error {
		if err := store.Add(tx, &candidate); err != nil {
			return err
		}
		return recordApplied(tx, &candidate)
	})
	if err != nil {
		return nil, fmt.Errorf("create candidate: %w", err)
	}
	return &candidate, nil
}

// UpdateCandidate applies the non-nil fields of updates and stamps UpdatedAt.
// When the stage changes, the stage_change timeline event is appended in the
// same transaction as the candidate write: there is no state where one is
// visible without the other.
func (s *Service) UpdateCandidate(ctx context.Context, id string, updates CandidateUpdate) (*model.Candidate, error) {
	if updates.Stage != nil && !model.ValidStage(*updates.Stage) {
		return nil, fmt.Errorf("update candidate %s: stage %q: %w", id, *updates.Stage, ErrInvalidStage)
	}

	var candidate *model.Candidate
	err := s.store.WithContext(ctx).Tx(func(tx *store.Store) error {
		var err error
		candidate, err = store.Get[model.Candidate](tx, "id", id)
		if err != nil {
			return err
		}
		prevStage := candidate.Stage

		if updates.Name != nil {
			candidate.Name = *updates.Name
		}
		if updates.Email != nil {
			candidate.Email = *updates.Email
		}
		if updates.JobID != nil {
			candidate.JobID = *updates.JobID
		}
		if updates.Stage != nil {
			candidate.Stage = *updates.Stage
		}
		if updates.Resume != nil {
			candidate.Resume = *updates.Resume
		}
		if updates.Notes != nil {
			candidate.Notes = *updates.Notes
		}
		now := time.Now().UTC()
		candidate.UpdatedAt = now

		if err := store.Put(tx, candidate); err != nil {
			return err
		}

		if candidate.Stage != prevStage {
			return recordStageChange(tx, candidate.ID, prevStage, candidate.Stage, now)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update candidate %s: %w", id, err)
	}
	return candidate, nil
}

// CandidateTimeline returns every timeline event for the candidate, oldest first.
func (s *Service) CandidateTimeline(ctx context.Context, candidateID string) ([]model.TimelineEvent, error) {
	events, err := store.FindBy[model.TimelineEvent](s.store.WithContext(ctx), "candidate_id", candidateID)
	if err != nil {
		return nil, fmt.Errorf("timeline for %s: %w", candidateID, err)
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Timestamp.Equal(events[j].Timestamp) {
			return events[i].ID < events[j].ID
		}
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events, nil
}
