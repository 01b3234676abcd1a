package database

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentflow-backend/internal/model"
)

func newEmptyDB(t *testing.T) *DBinstanceStruct {
	t.Helper()
	dsn := fmt.Sprintf("file:seedtest-%s?mode=memory&cache=shared", uuid.NewString())
	db, err := NewDBInstance(&DBConfig{Path: dsn, SkipSeed: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSeed_populatesEmptyStore(t *testing.T) {
	db := newEmptyDB(t)

	require.NoError(t, db.Seed())

	var jobCount, candidateCount, eventCount, assessmentCount int64
	require.NoError(t, db.Model(&model.Job{}).Count(&jobCount).Error)
	require.NoError(t, db.Model(&model.Candidate{}).Count(&candidateCount).Error)
	require.NoError(t, db.Model(&model.TimelineEvent{}).Count(&eventCount).Error)
	require.NoError(t, db.Model(&model.Assessment{}).Count(&assessmentCount).Error)

	assert.Equal(t, int64(seedJobCount), jobCount)
	assert.Equal(t, int64(seedCandidateCount), candidateCount)
	// every candidate has at least the applied event
	assert.GreaterOrEqual(t, eventCount, candidateCount)
	assert.Equal(t, int64(1), assessmentCount)
}

func TestSeed_ordersAreDense(t *testing.T) {
	db := newEmptyDB(t)
	require.NoError(t, db.Seed())

	var jobs []model.Job
	require.NoError(t, db.Find(&jobs).Error)

	seen := make(map[int]bool, len(jobs))
	for _, job := range jobs {
		assert.False(t, seen[job.Order], "order %d assigned twice", job.Order)
		assert.GreaterOrEqual(t, job.Order, 0)
		assert.Less(t, job.Order, len(jobs))
		seen[job.Order] = true
	}
}

func TestSeed_idempotent(t *testing.T) {
	db := newEmptyDB(t)

	require.NoError(t, db.Seed())
	require.NoError(t, db.Seed())

	var jobCount int64
	require.NoError(t, db.Model(&model.Job{}).Count(&jobCount).Error)
	assert.Equal(t, int64(seedJobCount), jobCount)
}

func TestSeed_candidateStagesValid(t *testing.T) {
	db := newEmptyDB(t)
	require.NoError(t, db.Seed())

	var candidates []model.Candidate
	require.NoError(t, db.Limit(50).Find(&candidates).Error)
	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.True(t, model.ValidStage(c.Stage), "candidate %s has stage %q", c.ID, c.Stage)
	}
}
