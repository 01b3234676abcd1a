package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentflow-backend/internal/database"
	"talentflow-backend/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	teardown, db, err := database.GetTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = teardown() })

	s, err := New(db)
	require.NoError(t, err)
	return s
}

func TestNew_nilHandle(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGet(t *testing.T) {
	s := newTestStore(t)

	job, err := Get[model.Job](s, "id", database.TestJob1.ID)
	require.NoError(t, err)
	assert.Equal(t, database.TestJob1.Title, job.Title)
	assert.Equal(t, database.TestJob1.Tags, job.Tags)
}

func TestGet_notFound(t *testing.T) {
	s := newTestStore(t)

	_, err := Get[model.Job](s, "id", "job-999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPut_upsertsWholesale(t *testing.T) {
	s := newTestStore(t)

	job, err := Get[model.Job](s, "id", database.TestJob1.ID)
	require.NoError(t, err)

	job.Title = "Staff Frontend Developer"
	job.Tags = model.StringList{"React"}
	require.NoError(t, Put(s, job))
	// putting the identical record again leaves the same stored state
	require.NoError(t, Put(s, job))

	stored, err := Get[model.Job](s, "id", job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Staff Frontend Developer", stored.Title)
	assert.Equal(t, model.StringList{"React"}, stored.Tags)

	n, err := Count[model.Job](s)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestAdd_duplicateExplicitKey(t *testing.T) {
	s := newTestStore(t)

	dup := model.Job{ID: database.TestJob1.ID, Title: "Imposter", Order: 99}
	err := Add(s, &dup)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestAdd_autoAssignedKey(t *testing.T) {
	s := newTestStore(t)

	ev := model.TimelineEvent{
		CandidateID: database.TestCandidate1.ID,
		Action:      model.TimelineActionStageChange,
		Stage:       model.StageScreen,
	}
	require.NoError(t, Add(s, &ev))
	assert.NotZero(t, ev.ID, "auto-assigned key written back")

	again := model.TimelineEvent{
		CandidateID: database.TestCandidate1.ID,
		Action:      model.TimelineActionStageChange,
		Stage:       model.StageTech,
	}
	require.NoError(t, Add(s, &again))
	assert.NotEqual(t, ev.ID, again.ID)
}

func TestFindBy(t *testing.T) {
	s := newTestStore(t)

	candidates, err := FindBy[model.Candidate](s, "job_id", database.TestJob1.ID)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)

	none, err := FindBy[model.Candidate](s, "job_id", "job-999")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDelete_absentKeyIsNoOp(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, Delete[model.Job](s, "id", "job-999"))

	require.NoError(t, Delete[model.Job](s, "id", database.TestJob4.ID))
	_, err := Get[model.Job](s, "id", database.TestJob4.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTx_rollsBackOnError(t *testing.T) {
	s := newTestStore(t)

	boom := errors.New("boom")
	err := s.Tx(func(tx *Store) error {
		if err := Add(tx, &model.Job{ID: "job-tx", Title: "Short-lived", Order: 4}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = Get[model.Job](s, "id", "job-tx")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTx_commitsAllWrites(t *testing.T) {
	s := newTestStore(t)

	err := s.Tx(func(tx *Store) error {
		if err := Add(tx, &model.Job{ID: "job-a", Title: "A", Order: 4}); err != nil {
			return err
		}
		return Add(tx, &model.Job{ID: "job-b", Title: "B", Order: 5})
	})
	require.NoError(t, err)

	n, err := Count[model.Job](s)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)
}
