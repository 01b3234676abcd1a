package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentflow-backend/internal/database"
	"talentflow-backend/internal/model"
	"talentflow-backend/internal/testutil"
)

func TestListCandidates_search(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	byName, err := svc.ListCandidates(ctx, CandidateQuery{Search: "riley"})
	require.NoError(t, err)
	require.Len(t, byName.Data, 1)
	assert.Equal(t, database.TestCandidate3.ID, byName.Data[0].ID)

	byEmail, err := svc.ListCandidates(ctx, CandidateQuery{Search: "morgan.smith"})
	require.NoError(t, err)
	require.Len(t, byEmail.Data, 1)
	assert.Equal(t, database.TestCandidate2.ID, byEmail.Data[0].ID)
}

func TestListCandidates_stageFilter(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.ListCandidates(context.Background(), CandidateQuery{Stage: model.StageScreen})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, database.TestCandidate2.ID, page.Data[0].ID)
}

func TestListCandidates_sortedByRecentUpdate(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.ListCandidates(context.Background(), CandidateQuery{})
	require.NoError(t, err)
	require.Len(t, page.Data, 3)
	assert.Equal(t, database.TestCandidate3.ID, page.Data[0].ID)
	assert.Equal(t, database.TestCandidate2.ID, page.Data[1].ID)
	assert.Equal(t, database.TestCandidate1.ID, page.Data[2].ID)
}

func TestGetCandidate_notFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetCandidate(context.Background(), "candidate-999")
	assert.Error(t, err)
}

func TestCreateCandidate_appendsAppliedEvent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	candidate, err := svc.CreateCandidate(ctx, CandidateInput{
		Name:  "Nova King",
		Email: "nova.king@email.com",
		JobID: database.TestJob1.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StageApplied, candidate.Stage, "stage defaults to applied")

	events, err := svc.CandidateTimeline(ctx, candidate.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, model.TimelineActionApplied, events[0].Action)
	assert.Equal(t, model.StageApplied, events[0].Stage)
	assert.Contains(t, events[0].Notes, "Nova King")
}

func TestCreateCandidate_invalidStage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateCandidate(context.Background(), CandidateInput{
		Name:  "Bad Stage",
		Email: "bad.stage@email.com",
		Stage: "interviewing",
	})
	assert.ErrorIs(t, err, ErrInvalidStage)
}

func TestUpdateCandidate_stageChangeAppendsOneEvent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before, err := svc.CandidateTimeline(ctx, database.TestCandidate1.ID)
	require.NoError(t, err)

	candidate, err := svc.UpdateCandidate(ctx, database.TestCandidate1.ID, CandidateUpdate{
		Stage: testutil.StringPtr(model.StageScreen),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StageScreen, candidate.Stage)

	after, err := svc.CandidateTimeline(ctx, database.TestCandidate1.ID)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1, "exactly one new event per stage change")

	last := after[len(after)-1]
	assert.Equal(t, model.TimelineActionStageChange, last.Action)
	assert.Equal(t, model.StageScreen, last.Stage)
	assert.Equal(t, "Moved from applied to screen", last.Notes)
}

func TestUpdateCandidate_noEventWithoutStageChange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before, err := svc.CandidateTimeline(ctx, database.TestCandidate1.ID)
	require.NoError(t, err)

	_, err = svc.UpdateCandidate(ctx, database.TestCandidate1.ID, CandidateUpdate{
		Name: testutil.StringPtr("Jamie A. Lee"),
	})
	require.NoError(t, err)

	// setting the stage to its current value is not a transition either
	_, err = svc.UpdateCandidate(ctx, database.TestCandidate1.ID, CandidateUpdate{
		Stage: testutil.StringPtr(model.StageApplied),
	})
	require.NoError(t, err)

	after, err := svc.CandidateTimeline(ctx, database.TestCandidate1.ID)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestUpdateCandidate_invalidStageLeavesNoTrace(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before, err := svc.CandidateTimeline(ctx, database.TestCandidate1.ID)
	require.NoError(t, err)

	_, err = svc.UpdateCandidate(ctx, database.TestCandidate1.ID, CandidateUpdate{
		Stage: testutil.StringPtr("limbo"),
	})
	assert.ErrorIs(t, err, ErrInvalidStage)

	candidate, err := svc.GetCandidate(ctx, database.TestCandidate1.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StageApplied, candidate.Stage, "candidate unchanged after failed update")

	after, err := svc.CandidateTimeline(ctx, database.TestCandidate1.ID)
	require.NoError(t, err)
	assert.Len(t, after, len(before), "no event after failed update")
}

func TestUpdateCandidate_persistsNotes(t *testing.T) {
	svc := newTestService(t)

	notes := []string{"Strong portfolio", "@avery please schedule the screen"}
	candidate, err := svc.UpdateCandidate(context.Background(), database.TestCandidate1.ID, CandidateUpdate{
		Notes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StringList(notes), candidate.Notes)
}

func TestUpdateCandidate_notFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateCandidate(context.Background(), "candidate-999", CandidateUpdate{
		Stage: testutil.StringPtr(model.StageScreen),
	})
	assert.Error(t, err)
}

func TestCandidateTimeline_oldestFirst(t *testing.T) {
	svc := newTestService(t)

	events, err := svc.CandidateTimeline(context.Background(), database.TestCandidate2.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, model.TimelineActionApplied, events[0].Action)
	assert.Equal(t, model.TimelineActionStageChange, events[1].Action)
	assert.False(t, events[1].Timestamp.Before(events[0].Timestamp))
}
