package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "talentflow-backend/internal/model"
)

// Exported seeded fixtures for tests.
var (
	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job
	TestJob4 m.Job

	TestCandidate1 m.Candidate
	TestCandidate2 m.Candidate
	TestCandidate3 m.Candidate

	TestAssessment1 m.Assessment
)

// GetTestDB opens a fresh in-memory database, migrates it and loads the
// exported fixtures. Every call returns an independent database, so tests do
// not observe each other's writes. The returned teardown closes the handle.
func GetTestDB() (func() error, *DBinstanceStruct, error) {

	// A unique shared-cache name keeps each test database isolated while
	// letting the pool's connections see the same store.
	dsn := fmt.Sprintf("file:testdb-%s?mode=memory&cache=shared", uuid.NewString())

	db, err := NewDBInstance(&DBConfig{Path: dsn, SkipSeed: true})
	if err != nil {
		return nil, nil, err
	}

	if err := db.seedTestData(); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return db.Close, db, nil
}

func (d *DBinstanceStruct) seedTestData() error {
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	TestJob1 = m.Job{
		ID: "job-1", Title: "Senior Frontend Developer", Slug: "senior-frontend-developer-1",
		Status: m.JobStatusActive, Tags: m.StringList{"React", "TypeScript"}, Order: 0,
		Description:  "Build the hiring board UI.",
		Requirements: m.StringList{"3+ years of React"},
		CreatedAt:    base, UpdatedAt: base,
	}
	TestJob2 = m.Job{
		ID: "job-2", Title: "Backend Engineer", Slug: "backend-engineer-2",
		Status: m.JobStatusActive, Tags: m.StringList{"Go", "PostgreSQL"}, Order: 1,
		Description:  "Own the pipeline services.",
		Requirements: m.StringList{"3+ years of Go"},
		CreatedAt:    base.Add(24 * time.Hour), UpdatedAt: base.Add(24 * time.Hour),
	}
	TestJob3 = m.Job{
		ID: "job-3", Title: "Product Manager", Slug: "product-manager-3",
		Status: m.JobStatusArchived, Tags: m.StringList{"Agile"}, Order: 2,
		CreatedAt: base.Add(48 * time.Hour), UpdatedAt: base.Add(48 * time.Hour),
	}
	TestJob4 = m.Job{
		ID: "job-4", Title: "Data Scientist", Slug: "data-scientist-4",
		Status: m.JobStatusActive, Tags: m.StringList{"Python"}, Order: 3,
		CreatedAt: base.Add(72 * time.Hour), UpdatedAt: base.Add(72 * time.Hour),
	}

	TestCandidate1 = m.Candidate{
		ID: "candidate-1", Name: "Jamie Lee", Email: "jamie.lee@email.com",
		JobID: TestJob1.ID, Stage: m.StageApplied,
		AppliedAt: base, UpdatedAt: base,
		Resume: "Resume for Jamie Lee", Notes: m.StringList{},
	}
	TestCandidate2 = m.Candidate{
		ID: "candidate-2", Name: "Morgan Smith", Email: "morgan.smith@email.com",
		JobID: TestJob1.ID, Stage: m.StageScreen,
		AppliedAt: base.Add(time.Hour), UpdatedAt: base.Add(36 * time.Hour),
		Resume: "Resume for Morgan Smith", Notes: m.StringList{},
	}
	TestCandidate3 = m.Candidate{
		ID: "candidate-3", Name: "Riley Garcia", Email: "riley.garcia@email.com",
		JobID: TestJob2.ID, Stage: m.StageTech,
		AppliedAt: base.Add(2 * time.Hour), UpdatedAt: base.Add(72 * time.Hour),
		Resume: "Resume for Riley Garcia", Notes: m.StringList{},
	}

	maxShort := 200
	TestAssessment1 = m.Assessment{
		JobID: TestJob1.ID, Title: "Frontend Screening", UpdatedAt: base,
		Sections: []m.Section{
			{
				ID: "section-1", Title: "Basics",
				Questions: []m.Question{
					{
						ID: "q1", Type: m.QuestionTypeSingleChoice,
						Question: "Which of the following is a JavaScript framework?",
						Required: true, Options: []string{"React", "HTML"}, CorrectAnswer: "React",
					},
					{
						ID: "q2", Type: m.QuestionTypeShortText,
						Question: "What is your favorite JavaScript library and why?",
						Required: true, MaxLength: &maxShort,
					},
				},
			},
		},
	}

	events := []m.TimelineEvent{
		{CandidateID: TestCandidate1.ID, Action: m.TimelineActionApplied, Stage: m.StageApplied,
			Timestamp: TestCandidate1.AppliedAt, Notes: "Jamie Lee applied for the position"},
		{CandidateID: TestCandidate2.ID, Action: m.TimelineActionApplied, Stage: m.StageApplied,
			Timestamp: TestCandidate2.AppliedAt, Notes: "Morgan Smith applied for the position"},
		{CandidateID: TestCandidate2.ID, Action: m.TimelineActionStageChange, Stage: m.StageScreen,
			Timestamp: TestCandidate2.UpdatedAt, Notes: "Moved from applied to screen"},
		{CandidateID: TestCandidate3.ID, Action: m.TimelineActionApplied, Stage: m.StageApplied,
			Timestamp: TestCandidate3.AppliedAt, Notes: "Riley Garcia applied for the position"},
	}

	for _, rec := range []interface{}{
		&TestJob1, &TestJob2, &TestJob3, &TestJob4,
		&TestCandidate1, &TestCandidate2, &TestCandidate3,
		&TestAssessment1,
	} {
		if err := d.Create(rec).Error; err != nil {
			return err
		}
	}
	for i := range events {
		if err := d.Create(&events[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
