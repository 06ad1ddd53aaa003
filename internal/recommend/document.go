package recommend

import "strings"

// JobDocument builds the normalized text document for a job posting.
// Field order is fixed (title, description, skills, field of study,
// industry) because it affects bigram adjacency in the vectorizer; the
// output must be byte-for-byte reproducible for a given job.
func JobDocument(job Job) string {
	parts := make([]string, 0, 5)
	parts = append(parts, job.Title, job.Description)
	if len(job.RequiredSkills) > 0 {
		parts = append(parts, strings.Join(job.RequiredSkills, " "))
	}
	if job.FieldOfStudy != "" {
		parts = append(parts, job.FieldOfStudy)
	}
	if job.CompanyIndustry != "" {
		parts = append(parts, job.CompanyIndustry)
	}
	return Normalize(strings.Join(parts, " "))
}

// UserDocument builds the normalized text document for a user profile.
// Field order: field of study, skills, interests, experience, location.
func UserDocument(profile UserProfile) string {
	parts := make([]string, 0, 5)
	if profile.FieldOfStudy != "" {
		parts = append(parts, profile.FieldOfStudy)
	}
	if len(profile.Skills) > 0 {
		parts = append(parts, strings.Join(profile.Skills, " "))
	}
	if len(profile.Interests) > 0 {
		parts = append(parts, strings.Join(profile.Interests, " "))
	}
	if len(profile.Experience) > 0 {
		parts = append(parts, strings.Join(profile.Experience, " "))
	}
	if profile.Location != "" {
		parts = append(parts, profile.Location)
	}
	return Normalize(strings.Join(parts, " "))
}
