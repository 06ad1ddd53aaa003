package db

import (
	"time"

	"github.com/jonathan/campus-connect/internal/recommend"
)

// JobRecord is a catalog row as stored in the jobs table.
type JobRecord struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	RequiredSkills  []string  `json:"required_skills,omitempty"`
	FieldOfStudy    *string   `json:"field_of_study,omitempty"`
	CompanyIndustry *string   `json:"company_industry,omitempty"`
	CompanyID       *string   `json:"company_id,omitempty"`
	Location        *string   `json:"location,omitempty"`
	JobType         *string   `json:"job_type,omitempty"`
	Salary          *string   `json:"salary,omitempty"`
	ExperienceYears *string   `json:"experience_years,omitempty"`
	PostedDate      *string   `json:"posted_date,omitempty"`
	Deadline        *string   `json:"application_deadline,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// JobUpsertInput carries the fields written by UpsertJob.
type JobUpsertInput struct {
	ID              string
	Title           string
	Description     string
	RequiredSkills  []string
	FieldOfStudy    *string
	CompanyIndustry *string
	CompanyID       *string
	Location        *string
	JobType         *string
	Salary          *string
	ExperienceYears *string
	PostedDate      *string
	Deadline        *string
}

// ToEngineJob converts a catalog row into the engine's job shape.
func (r *JobRecord) ToEngineJob() recommend.Job {
	job := recommend.Job{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		RequiredSkills: r.RequiredSkills,
	}
	if r.FieldOfStudy != nil {
		job.FieldOfStudy = *r.FieldOfStudy
	}
	if r.CompanyIndustry != nil {
		job.CompanyIndustry = *r.CompanyIndustry
	}
	if r.CompanyID != nil {
		job.CompanyID = *r.CompanyID
	}
	if r.Location != nil {
		job.Location = *r.Location
	}
	if r.JobType != nil {
		job.JobType = *r.JobType
	}
	if r.Salary != nil {
		job.Salary = *r.Salary
	}
	if r.ExperienceYears != nil {
		job.ExperienceYears = *r.ExperienceYears
	}
	if r.PostedDate != nil {
		job.PostedDate = *r.PostedDate
	}
	if r.Deadline != nil {
		job.Deadline = *r.Deadline
	}
	return job
}
