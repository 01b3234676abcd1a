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
	"talentflow-backend/internal/utilities"
)

// JobQuery holds the list parameters for ListJobs. Zero values mean
// "no filter" for Search and Status and pick the defaults for the rest.
type JobQuery struct {
	Search   string
	Status   string
	Page     int
	PageSize int
	Sort     string
}

// JobInput holds the caller-supplied fields for CreateJob.
type JobInput struct {
	Title        string   `json:"title"`
	Status       string   `json:"status"`
	Tags         []string `json:"tags"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// JobUpdate holds the fields UpdateJob may change; nil fields are left untouched.
type JobUpdate struct {
	Title        *string   `json:"title"`
	Status       *string   `json:"status"`
	Tags         *[]string `json:"tags"`
	Description  *string   `json:"description"`
	Requirements *[]string `json:"requirements"`
}

// ListJobs returns one page of jobs after in-memory search, status filter and
// sort over the full collection. Search matches the title and tags,
// case-insensitive substring. Sort keys: order (default), title, createdAt
// (newest first); ties keep the store's return order.
func (s *Service) ListJobs(ctx context.Context, q JobQuery) (Page[model.Job], error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	if q.Sort == "" {
		q.Sort = "order"
	}

	jobs, err := store.All[model.Job](s.store.WithContext(ctx))
	if err != nil {
		return Page[model.Job]{}, fmt.Errorf("list jobs: %w", err)
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		filtered := jobs[:0]
		for _, job := range jobs {
			if jobMatches(job, needle) {
				filtered = append(filtered, job)
			}
		}
		jobs = filtered
	}

	if q.Status != "" {
		filtered := jobs[:0]
		for _, job := range jobs {
			if job.Status == q.Status {
				filtered = append(filtered, job)
			}
		}
		jobs = filtered
	}

	switch q.Sort {
	case "title":
		sort.SliceStable(jobs, func(i, j int) bool {
			return strings.ToLower(jobs[i].Title) < strings.ToLower(jobs[j].Title)
		})
	case "createdAt":
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
		})
	default:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].Order < jobs[j].Order
		})
	}

	return paginate(jobs, q.Page, q.PageSize), nil
}

func jobMatches(job model.Job, needle string) bool {
	if strings.Contains(strings.ToLower(job.Title), needle) {
		return true
	}
	for _, tag := range job.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// GetJob fetches one job by id.
func (s *Service) GetJob(ctx context.Context, id string) (*model.Job, error) {
	return store.Get[model.Job](s.store.WithContext(ctx), "id", id)
}

// CreateJob stores a new job at the end of the board ordering: its order is
// one past the current maximum (0 on an empty board) and its slug is derived
// from the title. CreatedAt and UpdatedAt are stamped at write time and equal.
func (s *Service) CreateJob(ctx context.Context, in JobInput) (*model.Job, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("create job: title is required: %w", ErrInvalidInput)
	}
	if in.Status == "" {
		in.Status = model.JobStatusActive
	}
	if !utilities.Contains(model.JobStatuses, in.Status) {
		return nil, fmt.Errorf("create job: unknown status %q: %w", in.Status, ErrInvalidInput)
	}

	now := time.Now().UTC()
	job := model.Job{
		ID:           "job-" + uuid.NewString(),
		Title:        in.Title,
		Slug:         utilities.Slugify(in.Title),
		Status:       in.Status,
		Tags:         in.Tags,
		Description:  in.Description,
		Requirements: in.Requirements,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The max-order read and the insert share one transaction so two
	// concurrent creates cannot claim the same position.
	err := s.store.WithContext(ctx).Tx(func(tx *store.Store) error {
		jobs, err := store.All[model.Job](tx)
		if err != nil {
			return err
		}
		maxOrder := -1
		for _, j := range jobs {
			if j.Order > maxOrder {
				maxOrder = j.Order
			}
		}
		job.Order = maxOrder + 1
		return store.Add(tx, &job)
	})
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return &job, nil
}

// UpdateJob applies the non-nil fields of updates to the job, re-deriving the
// slug only when the title actually changes, and stamps UpdatedAt.
func (s *Service) UpdateJob(ctx context.Context, id string, updates JobUpdate) (*model.Job, error) {
	if updates.Status != nil && !utilities.Contains(model.JobStatuses, *updates.Status) {
		return nil, fmt.Errorf("update job %s: unknown status %q: %w", id, *updates.Status, ErrInvalidInput)
	}

	var job *model.Job
	err := s.store.WithContext(ctx).Tx(func(tx *store.Store) error {
		var err error
		job, err = store.Get[model.Job](tx, "id", id)
		if err != nil {
			return err
		}

		if updates.Title != nil && *updates.Title != job.Title {
			job.Title = *updates.Title
			job.Slug = utilities.Slugify(*updates.Title)
		}
		if updates.Status != nil {
			job.Status = *updates.Status
		}
		if updates.Tags != nil {
			job.Tags = *updates.Tags
		}
		if updates.Description != nil {
			job.Description = *updates.Description
		}
		if updates.Requirements != nil {
			job.Requirements = *updates.Requirements
		}
		job.UpdatedAt = time.Now().UTC()

		return store.Put(tx, job)
	})
	if err != nil {
		return nil, fmt.Errorf("update job %s: %w", id, err)
	}
	return job, nil
}

// ReorderJobs moves the job at fromOrder to toOrder and renumbers everything
// between them, keeping the set of orders a dense permutation of {0..n-1}.
// The whole renumbering is one transaction: a failure partway leaves the
// previous ordering fully intact.
func (s *Service) ReorderJobs(ctx context.Context, fromOrder, toOrder int) error {
	err := s.store.WithContext(ctx).Tx(func(tx *store.Store) error {
		jobs, err := store.All[model.Job](tx)
		if err != nil {
			return err
		}

		n := len(jobs)
		if fromOrder < 0 || fromOrder >= n || toOrder < 0 || toOrder >= n {
			return fmt.Errorf("from %d to %d with %d jobs: %w", fromOrder, toOrder, n, ErrInvalidPosition)
		}

		for i := range jobs {
			job := &jobs[i]
			switch {
			case job.Order == fromOrder:
				job.Order = toOrder
			case fromOrder < toOrder && job.Order > fromOrder && job.Order <= toOrder:
				job.Order--
			case fromOrder > toOrder && job.Order >= toOrder && job.Order < fromOrder:
				job.Order++
			default:
				continue
			}
			if err := store.Put(tx, job); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("reorder jobs: %w", err)
	}
	return nil
}
