package database

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gorm.io/gorm"

	"talentflow-backend/internal/model"
	"talentflow-backend/internal/utilities"
)

// Pools for the synthetic first-run dataset.
var seedJobTitles = []string{
	"Senior Frontend Developer", "Backend Engineer", "Full Stack Developer",
	"DevOps Engineer", "Product Manager", "UX Designer", "Data Scientist",
	"Mobile Developer", "QA Engineer", "Technical Lead", "Software Architect",
	"Marketing Manager", "Sales Representative", "Customer Success Manager",
	"HR Specialist", "Financial Analyst", "Business Analyst", "Project Manager",
	"Content Writer", "Graphic Designer", "SEO Specialist", "Social Media Manager",
	"Operations Manager", "Legal Counsel", "Security Engineer",
}

var seedTags = []string{
	"React", "Node.js", "Python", "JavaScript", "TypeScript", "AWS", "Docker",
	"Kubernetes", "MongoDB", "PostgreSQL", "Redis", "GraphQL", "REST API",
	"Microservices", "Agile", "Scrum", "Remote", "Full-time", "Contract",
	"Senior", "Junior", "Mid-level", "Leadership", "Startup", "Enterprise",
}

var seedFirstNames = []string{
	"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Avery", "Quinn",
	"Sage", "River", "Phoenix", "Rowan", "Skylar", "Cameron", "Drew", "Emery",
	"Finley", "Harper", "Hayden", "Indigo", "Jamie", "Kai", "Lane", "Marley",
	"Nova", "Oakley", "Parker", "Reese", "Tatum", "Blake", "Charlie", "Dakota",
	"Ellis", "Frankie", "Gray", "Hunter", "Jesse", "Kendall", "Logan",
}

var seedLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
}

const (
	seedJobCount       = 25
	seedCandidateCount = 1000
)

// Seed populates an empty store with a synthetic dataset: jobs, candidates,
// their derived timeline and one sample assessment. It checks the jobs
// collection first and skips entirely when data already exists, so running it
// twice is the same as running it once.
func (d *DBinstanceStruct) Seed() error {
	var count int64
	if err := d.Model(&model.Job{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: count jobs: %w", err)
	}
	if count > 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	jobs := make([]model.Job, 0, seedJobCount)
	for i := 0; i < seedJobCount; i++ {
		title := seedJobTitles[rng.Intn(len(seedJobTitles))]

		tags := append([]string(nil), seedTags...)
		rng.Shuffle(len(tags), func(a, b int) { tags[a], tags[b] = tags[b], tags[a] })
		tags = tags[:rng.Intn(5)+2]

		status := model.JobStatusActive
		if rng.Float64() < 0.3 {
			status = model.JobStatusArchived
		}

		jobs = append(jobs, model.Job{
			ID:     fmt.Sprintf("job-%d", i+1),
			Title:  title,
			Slug:   fmt.Sprintf("%s-%d", utilities.Slugify(title), i+1),
			Status: status,
			Tags:   tags,
			Order:  i,
			Description: fmt.Sprintf("We are looking for a talented %s to join our growing team. "+
				"This is an exciting opportunity to work with cutting-edge technologies and make a real impact.", title),
			Requirements: model.StringList{
				"Bachelor's degree in Computer Science or related field",
				"3+ years of relevant experience",
				"Strong problem-solving skills",
				"Excellent communication skills",
			},
			CreatedAt: now.Add(-time.Duration(rng.Int63n(int64(90 * 24 * time.Hour)))),
			UpdatedAt: now,
		})
	}

	candidates := make([]model.Candidate, 0, seedCandidateCount)
	events := make([]model.TimelineEvent, 0, seedCandidateCount*2)
	for i := 0; i < seedCandidateCount; i++ {
		first := seedFirstNames[rng.Intn(len(seedFirstNames))]
		last := seedLastNames[rng.Intn(len(seedLastNames))]
		stage := model.Stages[rng.Intn(len(model.Stages))]
		appliedAt := now.Add(-time.Duration(rng.Int63n(int64(60 * 24 * time.Hour))))

		c := model.Candidate{
			ID:        fmt.Sprintf("candidate-%d", i+1),
			Name:      first + " " + last,
			Email:     fmt.Sprintf("%s.%s@email.com", strings.ToLower(first), strings.ToLower(last)),
			JobID:     jobs[rng.Intn(len(jobs))].ID,
			Stage:     stage,
			AppliedAt: appliedAt,
			UpdatedAt: now,
			Resume:    fmt.Sprintf("Resume for %s %s", first, last),
			Notes:     model.StringList{},
		}
		candidates = append(candidates, c)

		events = append(events, model.TimelineEvent{
			CandidateID: c.ID,
			Action:      model.TimelineActionApplied,
			Stage:       model.StageApplied,
			Timestamp:   appliedAt,
			Notes:       fmt.Sprintf("%s applied for the position", c.Name),
		})

		// Back-fill a stage_change event for every stage between applied and
		// the candidate's current one.
		if stage != model.StageApplied {
			stageIndex := 0
			for idx, s := range model.Stages {
				if s == stage {
					stageIndex = idx
					break
				}
			}
			for j := 1; j <= stageIndex; j++ {
				events = append(events, model.TimelineEvent{
					CandidateID: c.ID,
					Action:      model.TimelineActionStageChange,
					Stage:       model.Stages[j],
					Timestamp:   now.Add(-time.Duration(rng.Int63n(int64(30 * 24 * time.Hour)))),
					Notes:       fmt.Sprintf("Moved to %s stage", model.Stages[j]),
				})
			}
		}
	}

	assessment := sampleAssessment(jobs[0].ID, now)

	return d.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(jobs, 100).Error; err != nil {
			return fmt.Errorf("seed: jobs: %w", err)
		}
		if err := tx.CreateInBatches(candidates, 100).Error; err != nil {
			return fmt.Errorf("seed: candidates: %w", err)
		}
		if err := tx.CreateInBatches(events, 100).Error; err != nil {
			return fmt.Errorf("seed: timeline: %w", err)
		}
		if err := tx.Create(&assessment).Error; err != nil {
			return fmt.Errorf("seed: assessment: %w", err)
		}
		return nil
	})
}

func sampleAssessment(jobID string, now time.Time) model.Assessment {
	maxShort := 200
	maxLong := 1000
	minYears := 0.0
	maxYears := 20.0

	return model.Assessment{
		JobID:     jobID,
		Title:     "Frontend Developer Assessment",
		UpdatedAt: now,
		Sections: []model.Section{
			{
				ID:    "section-1",
				Title: "Technical Skills",
				Questions: []model.Question{
					{
						ID:            "q1",
						Type:          model.QuestionTypeSingleChoice,
						Question:      "Which of the following is a JavaScript framework?",
						Required:      true,
						Options:       []string{"React", "HTML", "CSS", "Python"},
						CorrectAnswer: "React",
					},
					{
						ID:             "q2",
						Type:           model.QuestionTypeMultiChoice,
						Question:       "Select all valid CSS properties:",
						Required:       true,
						Options:        []string{"color", "background-color", "font-weight", "invalid-prop"},
						CorrectAnswers: []string{"color", "background-color", "font-weight"},
					},
					{
						ID:        "q3",
						Type:      model.QuestionTypeShortText,
						Question:  "What is your favorite JavaScript library and why?",
						Required:  true,
						MaxLength: &maxShort,
					},
				},
			},
			{
				ID:    "section-2",
				Title: "Experience",
				Questions: []model.Question{
					{
						ID:        "q4",
						Type:      model.QuestionTypeLongText,
						Question:  "Describe a challenging project you worked on and how you overcame the difficulties.",
						Required:  true,
						MaxLength: &maxLong,
					},
					{
						ID:       "q5",
						Type:     model.QuestionTypeNumeric,
						Question: "How many years of React experience do you have?",
						Required: true,
						Min:      &minYears,
						Max:      &maxYears,
					},
					{
						ID:       "q6",
						Type:     model.QuestionTypeFileUpload,
						Question: "Please upload your portfolio or code samples",
						Required: false,
					},
				},
			},
		},
	}
}
