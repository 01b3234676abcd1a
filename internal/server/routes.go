// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"talentflow-backend/internal/controller"
	"talentflow-backend/internal/middleware"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	pipelineController, err := controller.NewPipelineController(s.DB)
	if err != nil {
		log.Fatalf("Failed to initialize controller: %s", err)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins, // Add your frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SafeHeader())

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		// Every API route runs behind the simulated-network middleware:
		// artificial latency on all requests, injected transient failures on
		// writes before any handler state change.
		v1.Use(middleware.EnvRateLimitMiddleware())
		v1.Use(middleware.EnvLatencyMiddleware())
		v1.Use(middleware.EnvFailureInjectionMiddleware())

		jobRoute := v1.Group("/jobs")
		{
			jobRoute.GET("", pipelineController.GetJobs)
			jobRoute.GET(":id", pipelineController.GetJob)
			jobRoute.POST("", pipelineController.CreateJob)
			jobRoute.POST("reorder", pipelineController.ReorderJobs)
			jobRoute.PATCH(":id", pipelineController.EditJob)
		}

		candidateRoute := v1.Group("/candidates")
		{
			candidateRoute.GET("", pipelineController.GetCandidates)
			candidateRoute.GET(":id", pipelineController.GetCandidate)
			candidateRoute.GET(":id/timeline", pipelineController.GetCandidateTimeline)
			candidateRoute.POST("", pipelineController.CreateCandidate)
			candidateRoute.PATCH(":id", pipelineController.EditCandidate)
		}

		assessmentRoute := v1.Group("/assessments")
		{
			assessmentRoute.GET(":jobId", pipelineController.GetAssessment)
			assessmentRoute.GET(":jobId/responses", pipelineController.GetAssessmentResponses)
			assessmentRoute.PUT(":jobId", middleware.SizeLimit(1<<20), pipelineController.SaveAssessment)
			assessmentRoute.POST(":jobId/submit", middleware.SizeLimit(1<<20), pipelineController.SubmitAssessmentResponse)
		}
	}

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
