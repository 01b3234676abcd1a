package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"talentflow-backend/internal/pipeline"
	"talentflow-backend/internal/utilities"
)

// GetCandidates fetches candidates matching the query and returns one page of
// them as a JSON response, most recently updated first.
// @Summary Get candidates based on query
// @Description Search matches name and email with substring matching, case insensitive
// @Tags Candidates
// @Produce json
// @Param search query string false "Search from candidate name and email with substring matching and case insensitive"
// @Param stage query string false "Stage field, must exactly match to get result"
// @Param page query integer false "1-based page number, default 1"
// @Param pageSize query integer false "Records per page, default 50"
// @Success 200 {object} pipeline.Page[model.Candidate] "Return one page of candidates"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /candidates [get]
func (pc *PipelineController) GetCandidates(c *gin.Context) {
	query := pipeline.CandidateQuery{
		Search:   c.Query("search"),
		Stage:    c.Query("stage"),
		Page:     intQuery(c, "page"),
		PageSize: intQuery(c, "pageSize"),
	}

	page, err := pc.Service.ListCandidates(c.Request.Context(), query)
	if err != nil {
		c.JSON(statusForError(err), utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch candidates: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetCandidate fetches a candidate by their ID and returns them as a JSON response.
// @Summary Get candidate by ID
// @Tags Candidates
// @Produce json
// @Param id path string true "ID of desired candidate"
// @Success 200 {object} model.Candidate "Return the candidate with the specified ID"
// @Failure 404 {object} utilities.ErrorResponse "Candidate not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /candidates/{id} [get]
func (pc *PipelineController) GetCandidate(c *gin.Context) {
	id := c.Param("id")

	candidate, err := pc.Service.GetCandidate(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusForError(err), utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve candidate: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// CreateCandidate handles the creation of a new candidate, appending their
// initial applied timeline event in the same transaction.
// @Summary Create candidate based on given json structure
// @Tags Candidates
// @Accept json
// @Produce json
// @Param Candidate body pipeline.CandidateInput true "Input candidate information"
// @Success 201 {object} model.Candidate "Successfully created candidate"
// @Failure 400 {object} utilities.ErrorResponse "Invalid candidate struct"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /candidates [post]
func (pc *PipelineController) CreateCandidate(c *gin.Context) {
	input := pipeline.CandidateInput{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	candidate, err := pc.Service.CreateCandidate(c.Request.Context(), input)
	if err != nil {
		c.JSON(statusForError(err), utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create candidate: ", err),
		})
		return
	}

	c.JSON(http.StatusCreated, candidate)
}

// EditCandidate updates an existing candidate. A stage change appends the
// matching timeline event atomically with the candidate write.
// @Summary Edit candidate based on given json structure
// @Tags Candidates
// @Accept json
// @Produce json
// @Param id path string true "ID of desired candidate"
// @Param Candidate body pipeline.CandidateUpdate true "Fields to update"
// @Success 200 {object} model.Candidate "Successfully updated candidate"
// @Failure 400 {object} utilities.ErrorResponse "Invalid candidate struct or stage"
// @Failure 404 {object} utilities.ErrorResponse "Candidate not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /candidates/{id} [patch]
func (pc *PipelineController) EditCandidate(c *gin.Context) {
	id := c.Param("id")

	updates := pipeline.CandidateUpdate{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&updates); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse request body: %s", err.Error()),
		})
		return
	}

	candidate, err := pc.Service.UpdateCandidate(c.Request.Context(), id, updates)
	if err != nil {
		c.JSON(statusForError(err), utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update candidate: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// GetCandidateTimeline fetches every timeline event for a candidate, oldest first.
// @Summary Get candidate timeline
// @Tags Candidates
// @Produce json
// @Param id path string true "ID of desired candidate"
// @Success 200 {array} model.TimelineEvent "Return the candidate's timeline events"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /candidates/{id}/timeline [get]
func (pc *PipelineController) GetCandidateTimeline(c *gin.Context) {
	id := c.Param("id")

	events, err := pc.Service.CandidateTimeline(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusForError(err), utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve timeline: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, events)
}
