package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/campus-connect/internal/recommend"
)

// -----------------------------------------------------------------------------
// Job Catalog Methods
// -----------------------------------------------------------------------------

const jobColumns = `id, title, description, required_skills, field_of_study,
	        company_industry, company_id, location, job_type, salary,
	        experience_years, posted_date, application_deadline, active,
	        created_at, updated_at`

// GetJob retrieves a catalog job by its ID. Returns (nil, nil) when the
// job does not exist.
func (db *DB) GetJob(ctx context.Context, id string) (*JobRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)

	rec, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return rec, nil
}

// ListActiveJobs returns every active catalog job in insertion order.
// This is the fit-cycle snapshot the engine is rebuilt from.
func (db *DB) ListActiveJobs(ctx context.Context) ([]recommend.Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE active ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []recommend.Job
	for rows.Next() {
		rec, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, rec.ToEngineJob())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}
	return jobs, nil
}

// CountJobs returns the number of active catalog jobs.
func (db *DB) CountJobs(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}

// UpsertJob creates or updates a catalog job keyed by its ID.
func (db *DB) UpsertJob(ctx context.Context, input *JobUpsertInput) error {
	var skillsJSON []byte
	if len(input.RequiredSkills) > 0 {
		var err error
		skillsJSON, err = json.Marshal(input.RequiredSkills)
		if err != nil {
			return fmt.Errorf("failed to marshal required skills: %w", err)
		}
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO jobs (id, title, description, required_skills, field_of_study,
		                   company_industry, company_id, location, job_type, salary,
		                   experience_years, posted_date, application_deadline)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (id) DO UPDATE SET
		   title = EXCLUDED.title,
		   description = EXCLUDED.description,
		   required_skills = EXCLUDED.required_skills,
		   field_of_study = EXCLUDED.field_of_study,
		   company_industry = EXCLUDED.company_industry,
		   company_id = EXCLUDED.company_id,
		   location = EXCLUDED.location,
		   job_type = EXCLUDED.job_type,
		   salary = EXCLUDED.salary,
		   experience_years = EXCLUDED.experience_years,
		   posted_date = EXCLUDED.posted_date,
		   application_deadline = EXCLUDED.application_deadline,
		   active = TRUE,
		   updated_at = NOW()`,
		input.ID, input.Title, input.Description, skillsJSON, input.FieldOfStudy,
		input.CompanyIndustry, input.CompanyID, input.Location, input.JobType,
		input.Salary, input.ExperienceYears, input.PostedDate, input.Deadline)
	if err != nil {
		return fmt.Errorf("failed to upsert job: %w", err)
	}
	return nil
}

// DeactivateJob soft-deletes a job from the active catalog; the row is
// kept so past interaction events still resolve.
func (db *DB) DeactivateJob(ctx context.Context, id string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE jobs SET active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate job: %w", err)
	}
	return nil
}

func scanJob(row pgx.Row) (*JobRecord, error) {
	var rec JobRecord
	var skillsJSON []byte

	err := row.Scan(&rec.ID, &rec.Title, &rec.Description, &skillsJSON,
		&rec.FieldOfStudy, &rec.CompanyIndustry, &rec.CompanyID, &rec.Location,
		&rec.JobType, &rec.Salary, &rec.ExperienceYears, &rec.PostedDate,
		&rec.Deadline, &rec.Active, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &rec.RequiredSkills)
	}
	return &rec, nil
}
