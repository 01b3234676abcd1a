// Package pipeline implement the hiring-pipeline operations over the record
// store: job listing and reordering, candidate stage tracking with its
// timeline, and per-job assessments with submitted responses.
package pipeline

import (
	"errors"

	"talentflow-backend/internal/database"
	"talentflow-backend/internal/store"
)

var (
	// ErrInvalidPosition is returned by ReorderJobs when a position is outside [0, n-1].
	ErrInvalidPosition = errors.New("position out of range")
	// ErrInvalidStage is returned when a candidate write carries a stage outside the enumerated set.
	ErrInvalidStage = errors.New("invalid stage")
	// ErrInvalidInput is returned when a write is missing a required field or carries an invalid value.
	ErrInvalidInput = errors.New("invalid input")
)

// Service translates domain operations into record store calls.
type Service struct {
	store *store.Store
}

// NewService creates a Service over the given database instance.
func NewService(db *database.DBinstanceStruct) (*Service, error) {
	st, err := store.New(db)
	if err != nil {
		return nil, err
	}
	return &Service{store: st}, nil
}

// Pagination describes one page of a list result.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Page is one page of records plus its pagination metadata.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// paginate slices items into the requested 1-based page. A page past the end
// yields empty data with the metadata still reflecting true totals.
func paginate[T any](items []T, page, pageSize int) Page[T] {
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	data := make([]T, 0, end-start)
	data = append(data, items[start:end]...)

	return Page[T]{
		Data: data,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
