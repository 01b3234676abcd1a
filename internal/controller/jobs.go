package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"talentflow-backend/internal/pipeline"
	"talentflow-backend/internal/utilities"
)

// GetJobs fetches jobs matching the query from the store and returns one page
// of them as a JSON response.
// @Summary Get jobs based on query
// @Description Every query is optional; search matches title and tags with substring matching, case insensitive
// @Tags Jobs
// @Produce json
// @Param search query string false "Search from job title and tags with substring matching and case insensitive"
// @Param status query string false "Status field, must exactly match to get result (active or archived)"
// @Param page query integer false "1-based page number, default 1"
// @Param pageSize query integer false "Records per page, default 10"
// @Param sort query string false "Sort key: order (default), title or createdAt"
// @Success 200 {object} pipeline.Page[model.Job] "Return one page of jobs"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (pc *PipelineController) GetJobs(c *gin.Context) {
	query := pipeline.JobQuery{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Page:     intQuery(c, "page"),
		PageSize: intQuery(c, "pageSize"),
		Sort:     c.Query("sort"),
	}

	page, err := pc.Service.ListJobs(c.Request.Context(), query)
	if err != nil {
		c.JSON(statusForError(err), utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch jobs: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetJob fetches a job by its ID from the store and returns it as a JSON response.
// @Summary Get job by ID
// @Tags Jobs
// @Produce json
// @Param id path string true "ID of desired job"
// @Success 200 {object} model.Job "Return the job with the specified ID"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [get]
func (pc *PipelineController) GetJob(c *gin.Context) {
	id := c.Param("id")

	job, err := pc.Service.GetJob(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusForError(err), utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, job)
}

// CreateJob handles the creation of a new job posting.
// @Summary Create job based on given json structure
// @Description The new job is placed at the end of the board ordering and its slug derived from the title
// @Tags Jobs
// @Accept json
// @Produce json
// @Param Job body pipeline.JobInput true "Input job information"
// @Success 201 {object} model.Job "Successfully created job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job struct"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [post]
func (pc *PipelineController) CreateJob(c *gin.Context) {
	input := pipeline.JobInput{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	job, err := pc.Service.CreateJob(c.Request.Context(), input)
	if err != nil {
		c.JSON(statusForError(err), utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create job: ", err),
		})
		return
	}

	c.JSON(http.StatusCreated, job)
}

// EditJob updates an existing job. Only supplied fields change; the slug is
// re-derived when the title changes.
// @Summary Edit job based on given json structure
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "ID of desired job"
// @Param Job body pipeline.JobUpdate true "Fields to update"
// @Success 200 {object} model.Job "Successfully updated job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job struct"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [patch]
func (pc *PipelineController) EditJob(c *gin.Context) {
	id := c.Param("id")

	updates := pipeline.JobUpdate{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&updates); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse request body: %s", err.Error()),
		})
		return
	}

	job, err := pc.Service.UpdateJob(c.Request.Context(), id, updates)
	if err != nil {
		c.JSON(statusForError(err), utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, job)
}

// reorderRequest is the body for the reorder endpoint.
type reorderRequest struct {
	FromOrder *int `json:"fromOrder"`
	ToOrder   *int `json:"toOrder"`
}

// ReorderJobs moves the job at fromOrder to toOrder, renumbering the jobs in
// between so positions stay dense.
// @Summary Move a job to a new position on the board
// @Description Renumbers every job between the two positions in one transaction
// @Tags Jobs
// @Accept json
// @Produce json
// @Param Reorder body reorderRequest true "fromOrder and toOrder positions"
// @Success 200 {object} utilities.MessageResponse "Successfully reordered jobs"
// @Failure 400 {object} utilities.ErrorResponse "Position out of range or invalid body"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/reorder [post]
func (pc *PipelineController) ReorderJobs(c *gin.Context) {
	req := reorderRequest{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil || req.FromOrder == nil || req.ToOrder == nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid request body: fromOrder and toOrder are required",
		})
		return
	}

	if err := pc.Service.ReorderJobs(c.Request.Context(), *req.FromOrder, *req.ToOrder); err != nil {
		c.JSON(statusForError(err), utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to reorder jobs: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Jobs reordered"})
}

func intQuery(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
