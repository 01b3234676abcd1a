package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"talentflow-backend/internal/model"
)

func TestGetTestDB(t *testing.T) {
	teardown, db, err := GetTestDB()
	require.NoError(t, err)
	defer func() { _ = teardown() }()

	var count int64
	require.NoError(t, db.Model(&model.Job{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)
}

func TestHealth(t *testing.T) {
	teardown, db, err := GetTestDB()
	require.NoError(t, err)
	defer func() { _ = teardown() }()

	stats := db.Health()

	assert.Equal(t, "up", stats["status"])
	assert.NotContains(t, stats, "error")
	assert.Equal(t, "It's healthy", stats["message"])
}

func TestClose(t *testing.T) {
	_, db, err := GetTestDB()
	require.NoError(t, err)

	assert.NoError(t, db.Close())
}

func TestIsolation(t *testing.T) {
	teardown1, db1, err := GetTestDB()
	require.NoError(t, err)
	defer func() { _ = teardown1() }()
	teardown2, db2, err := GetTestDB()
	require.NoError(t, err)
	defer func() { _ = teardown2() }()

	require.NoError(t, db1.Create(&model.Job{ID: "job-only-in-db1", Title: "X", Order: 4}).Error)

	var count int64
	require.NoError(t, db2.Model(&model.Job{}).Count(&count).Error)
	assert.Equal(t, int64(4), count, "second test database saw the first one's write")
}
