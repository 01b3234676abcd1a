package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"talentflow-backend/internal/model"
	"talentflow-backend/internal/store"
)

// AssessmentInput holds the caller-supplied assessment body for SaveAssessment.
type AssessmentInput struct {
	Title    string          `json:"title"`
	Sections []model.Section `json:"sections"`
}

// GetAssessment fetches the assessment owned by the job.
func (s *Service) GetAssessment(ctx context.Context, jobID string) (*model.Assessment, error) {
	return store.Get[model.Assessment](s.store.WithContext(ctx), "job_id", jobID)
}

// SaveAssessment upserts the job's assessment wholesale and stamps UpdatedAt.
// A job owns at most one assessment; saving replaces whatever was there.
func (s *Service) SaveAssessment(ctx context.Context, jobID string, in AssessmentInput) (*model.Assessment, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, fmt.Errorf("save assessment: job id is required: %w", ErrInvalidInput)
	}

	assessment := model.Assessment{
		JobID:     jobID,
		Title:     in.Title,
		Sections:  in.Sections,
		UpdatedAt: time.Now().UTC(),
	}
	if err := store.Put(s.store.WithContext(ctx), &assessment); err != nil {
		return nil, fmt.Errorf("save assessment for %s: %w", jobID, err)
	}
	return &assessment, nil
}

// SubmitAssessmentResponse appends one submitted response for the job and
// candidate, stamping SubmittedAt. Responses are never updated or removed.
func (s *Service) SubmitAssessmentResponse(ctx context.Context, jobID, candidateID string, answers model.AnswerMap) (*model.AssessmentResponse, error) {
	if strings.TrimSpace(jobID) == "" || strings.TrimSpace(candidateID) == "" {
		return nil, fmt.Errorf("submit response: job id and candidate id are required: %w", ErrInvalidInput)
	}

	response := model.AssessmentResponse{
		JobID:       jobID,
		CandidateID: candidateID,
		Responses:   answers,
		SubmittedAt: time.Now().UTC(),
	}
	if err := store.Add(s.store.WithContext(ctx), &response); err != nil {
		return nil, fmt.Errorf("submit response for %s/%s: %w", jobID, candidateID, err)
	}
	return &response, nil
}

// ListAssessmentResponses returns every response submitted for the job,
// oldest first.
func (s *Service) ListAssessmentResponses(ctx context.Context, jobID string) ([]model.AssessmentResponse, error) {
	responses, err := store.FindBy[model.AssessmentResponse](s.store.WithContext(ctx), "job_id", jobID)
	if err != nil {
		return nil, fmt.Errorf("responses for %s: %w", jobID, err)
	}
	sort.SliceStable(responses, func(i, j int) bool {
		return responses[i].ID < responses[j].ID
	})
	return responses, nil
}
