package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"talentflow-backend/internal/model"
	"talentflow-backend/internal/pipeline"
	"talentflow-backend/internal/utilities"
)

// GetAssessment fetches the assessment owned by a job.
// @Summary Get assessment by job ID
// @Tags Assessments
// @Produce json
// @Param jobId path string true "ID of the owning job"
// @Success 200 {object} model.Assessment "Return the job's assessment"
// @Failure 404 {object} utilities.ErrorResponse "Assessment not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /assessments/{jobId} [get]
func (pc *PipelineController) GetAssessment(c *gin.Context) {
	jobID := c.Param("jobId")

	assessment, err := pc.Service.GetAssessment(c.Request.Context(), jobID)
	if err != nil {
		c.JSON(statusForError(err), utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve assessment: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// SaveAssessment replaces the job's assessment wholesale.
// @Summary Save assessment for a job
// @Description A job owns at most one assessment; saving replaces the previous one
// @Tags Assessments
// @Accept json
// @Produce json
// @Param jobId path string true "ID of the owning job"
// @Param Assessment body pipeline.AssessmentInput true "Assessment title and sections"
// @Success 200 {object} model.Assessment "Successfully saved assessment"
// @Failure 400 {object} utilities.ErrorResponse "Invalid assessment struct"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /assessments/{jobId} [put]
func (pc *PipelineController) SaveAssessment(c *gin.Context) {
	jobID := c.Param("jobId")

	input := pipeline.AssessmentInput{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	assessment, err := pc.Service.SaveAssessment(c.Request.Context(), jobID, input)
	if err != nil {
		c.JSON(statusForError(err), utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to save assessment: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// submitRequest is the body for the response submission endpoint.
type submitRequest struct {
	CandidateID string          `json:"candidateId"`
	Responses   model.AnswerMap `json:"responses"`
}

// SubmitAssessmentResponse appends one submitted response for the job.
// @Summary Submit assessment responses
// @Tags Assessments
// @Accept json
// @Produce json
// @Param jobId path string true "ID of the owning job"
// @Param Submission body submitRequest true "Candidate id and their answers keyed by question id"
// @Success 201 {object} model.AssessmentResponse "Successfully submitted response"
// @Failure 400 {object} utilities.ErrorResponse "Invalid submission struct"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /assessments/{jobId}/submit [post]
func (pc *PipelineController) SubmitAssessmentResponse(c *gin.Context) {
	jobID := c.Param("jobId")

	req := submitRequest{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	response, err := pc.Service.SubmitAssessmentResponse(c.Request.Context(), jobID, req.CandidateID, req.Responses)
	if err != nil {
		c.JSON(statusForError(err), utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to submit assessment: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetAssessmentResponses fetches every response submitted for a job.
// @Summary Get submitted assessment responses for a job
// @Tags Assessments
// @Produce json
// @Param jobId path string true "ID of the owning job"
// @Success 200 {array} model.AssessmentResponse "Return the job's submitted responses"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /assessments/{jobId}/responses [get]
func (pc *PipelineController) GetAssessmentResponses(c *gin.Context) {
	jobID := c.Param("jobId")

	responses, err := pc.Service.ListAssessmentResponses(c.Request.Context(), jobID)
	if err != nil {
		c.JSON(statusForError(err), utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve responses: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, responses)
}
