package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentflow-backend/internal/database"
	"talentflow-backend/internal/model"
	"talentflow-backend/internal/testutil"
)

func TestSaveAssessment_roundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	input := AssessmentInput{
		Title: "Backend Screening",
		Sections: []model.Section{
			{
				ID:    "section-1",
				Title: "Fundamentals",
				Questions: []model.Question{
					{
						ID: "q1", Type: model.QuestionTypeSingleChoice,
						Question: "Which of these is a relational database?",
						Required: true, Options: []string{"PostgreSQL", "Redis"}, CorrectAnswer: "PostgreSQL",
					},
					{
						ID: "q2", Type: model.QuestionTypeLongText,
						Question: "Describe a service you designed.",
						Required: true, MaxLength: testutil.IntPtr(1000),
					},
				},
			},
		},
	}

	before := time.Now().UTC()
	saved, err := svc.SaveAssessment(ctx, database.TestJob2.ID, input)
	require.NoError(t, err)
	assert.False(t, saved.UpdatedAt.Before(before))

	stored, err := svc.GetAssessment(ctx, database.TestJob2.ID)
	require.NoError(t, err)
	assert.Equal(t, input.Title, stored.Title)
	assert.Equal(t, input.Sections, stored.Sections)
}

func TestSaveAssessment_replacesPrevious(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveAssessment(ctx, database.TestJob1.ID, AssessmentInput{
		Title:    "Replacement",
		Sections: []model.Section{},
	})
	require.NoError(t, err)

	stored, err := svc.GetAssessment(ctx, database.TestJob1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Replacement", stored.Title)
	assert.Empty(t, stored.Sections)
}

func TestGetAssessment_notFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetAssessment(context.Background(), "job-999")
	assert.Error(t, err)
}

func TestSubmitAssessmentResponse_thenList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.SubmitAssessmentResponse(ctx, database.TestJob1.ID, database.TestCandidate1.ID, model.AnswerMap{
		"q1": "React",
		"q2": "I like the mental model.",
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.False(t, first.SubmittedAt.IsZero())

	_, err = svc.SubmitAssessmentResponse(ctx, database.TestJob1.ID, database.TestCandidate2.ID, model.AnswerMap{
		"q1": "React",
	})
	require.NoError(t, err)

	responses, err := svc.ListAssessmentResponses(ctx, database.TestJob1.ID)
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, database.TestCandidate1.ID, responses[0].CandidateID)
	assert.Equal(t, "React", responses[0].Responses["q1"])
	assert.Equal(t, database.TestCandidate2.ID, responses[1].CandidateID)
}

func TestSubmitAssessmentResponse_requiresIDs(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SubmitAssessmentResponse(context.Background(), "", database.TestCandidate1.ID, model.AnswerMap{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SubmitAssessmentResponse(context.Background(), database.TestJob1.ID, " ", model.AnswerMap{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
