// Package controller provides HTTP handlers for the hiring-pipeline API.
package controller

import (
	"errors"
	"net/http"

	"talentflow-backend/internal/database"
	"talentflow-backend/internal/pipeline"
	"talentflow-backend/internal/store"
)

// PipelineController handles job, candidate and assessment endpoints.
type PipelineController struct {
	DB      *database.DBinstanceStruct
	Service *pipeline.Service
}

// NewPipelineController creates a new instance of PipelineController with the provided database connection.
func NewPipelineController(db *database.DBinstanceStruct) (*PipelineController, error) {
	service, err := pipeline.NewService(db)
	if err != nil {
		return nil, err
	}
	return &PipelineController{
		DB:      db,
		Service: service,
	}, nil
}

// statusForError maps pipeline and store errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, pipeline.ErrInvalidPosition),
		errors.Is(err, pipeline.ErrInvalidStage),
		errors.Is(err, pipeline.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
