// Package recommend implements the hybrid job recommendation engine for
// Campus Connect: a TF-IDF content index over the job catalog blended with
// collaborative filtering over recorded user interactions.
package recommend

// Job is a catalog job posting as seen by the engine. Records are
// immutable for the lifetime of a fitted index; catalog changes require
// a full refit.
type Job struct {
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
	Deadline        string   `json:"application_deadline,omitempty"`
}

// UserProfile is the transient, per-request description of the user
// asking for recommendations. It is supplied by the caller and never
// persisted by the engine.
type UserProfile struct {
	FieldOfStudy string   `json:"field_of_study,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Interests    []string `json:"interests,omitempty"`
	Experience   []string `json:"experience,omitempty"`
	Location     string   `json:"location,omitempty"`
}

// Empty reports whether the profile carries no text at all.
func (p UserProfile) Empty() bool {
	return p.FieldOfStudy == "" && len(p.Skills) == 0 && len(p.Interests) == 0 &&
		len(p.Experience) == 0 && p.Location == ""
}

// Recommendation pairs a catalog job with its match scores. MatchScore is
// the blended (or content-only) score in [0,100]; ContentScore and
// CollabScore retain the components that produced it.
type Recommendation struct {
	Job
	MatchScore   int `json:"ai_match_score"`
	ContentScore int `json:"content_score"`
	CollabScore  int `json:"collab_score"`
}

// JobScore is a single content-similarity result: the raw cosine
// similarity of the user document against one fitted job, in [0,1].
type JobScore struct {
	JobID      string
	Similarity float64
}
