package ingestion

import (
	"context"
	"encoding/json"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/campus-connect/internal/db"
	"github.com/jonathan/campus-connect/internal/recommend"
)

// seedUpsertConcurrency bounds the number of parallel catalog upserts.
const seedUpsertConcurrency = 4

// SeedJob is one catalog entry as it appears in a seed file.
type SeedJob struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	FieldOfStudy    string   `json:"field_of_study,omitempty"`
	CompanyIndustry string   `json:"company_industry,omitempty"`
	CompanyID       string   `json:"company_id,omitempty"`
	Location        string   `json:"location,omitempty"`
	JobType         string   `json:"job_type,omitempty"`
	Salary          string   `json:"salary,omitempty"`
	ExperienceYears string   `json:"experience_years,omitempty"`
	PostedDate      string   `json:"posted_date,omitempty"`
	Deadline        string   `json:"deadline,omitempty"`
}

// ToEngineJob converts a seed entry into the engine's job shape.
func (s SeedJob) ToEngineJob() recommend.Job {
	return recommend.Job{
		ID:              s.ID,
		Title:           s.Title,
		Description:     s.Description,
		RequiredSkills:  s.RequiredSkills,
		FieldOfStudy:    s.FieldOfStudy,
		CompanyIndustry: s.CompanyIndustry,
		CompanyID:       s.CompanyID,
		Location:        s.Location,
		JobType:         s.JobType,
		Salary:          s.Salary,
		ExperienceYears: s.ExperienceYears,
		PostedDate:      s.PostedDate,
		Deadline:        s.Deadline,
	}
}

// ToUpsertInput converts a seed entry into a catalog store write.
func (s SeedJob) ToUpsertInput() *db.JobUpsertInput {
	return &db.JobUpsertInput{
		ID:              s.ID,
		Title:           s.Title,
		Description:     s.Description,
		RequiredSkills:  s.RequiredSkills,
		FieldOfStudy:    optional(s.FieldOfStudy),
		CompanyIndustry: optional(s.CompanyIndustry),
		CompanyID:       optional(s.CompanyID),
		Location:        optional(s.Location),
		JobType:         optional(s.JobType),
		Salary:          optional(s.Salary),
		ExperienceYears: optional(s.ExperienceYears),
		PostedDate:      optional(s.PostedDate),
		Deadline:        optional(s.Deadline),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// LoadSeedFile reads a seed catalog, validates it against the given JSON
// Schema, and returns its entries with descriptions stripped to plain text.
// An empty schemaPath skips validation.
func LoadSeedFile(path, schemaPath string) ([]SeedJob, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &SeedLoadError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	if schemaPath != "" {
		if err := ValidateCatalogFile(schemaPath, path); err != nil {
			return nil, err
		}
	}

	var jobs []SeedJob
	if err := json.Unmarshal(content, &jobs); err != nil {
		return nil, &SeedLoadError{
			Path:    path,
			Message: "failed to parse JSON",
			Cause:   err,
		}
	}

	for i := range jobs {
		jobs[i].Description = StripHTML(jobs[i].Description)
	}

	return jobs, nil
}

// EngineJobs converts a seed catalog into engine jobs, preserving order.
func EngineJobs(seeds []SeedJob) []recommend.Job {
	jobs := make([]recommend.Job, 0, len(seeds))
	for _, s := range seeds {
		jobs = append(jobs, s.ToEngineJob())
	}
	return jobs
}

// SeedDatabase upserts every seed entry into the catalog store. Writes run
// concurrently; the first failure cancels the rest.
func SeedDatabase(ctx context.Context, store *db.DB, seeds []SeedJob) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(seedUpsertConcurrency)

	for _, seed := range seeds {
		seed := seed
		g.Go(func() error {
			return store.UpsertJob(gctx, seed.ToUpsertInput())
		})
	}

	return g.Wait()
}
