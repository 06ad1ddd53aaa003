package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobDocument_FieldOrderIsDeterministic(t *testing.T) {
	job := Job{
		ID:              "sonatel_data_scientist",
		Title:           "Data Scientist",
		Description:     "analyse des données clients",
		RequiredSkills:  []string{"python", "machine_learning"},
		FieldOfStudy:    "data_science",
		CompanyIndustry: "Télécommunications",
	}

	want := Normalize("Data Scientist analyse des données clients python machine_learning data_science Télécommunications")
	assert.Equal(t, want, JobDocument(job))
	assert.Equal(t, JobDocument(job), JobDocument(job))
}

func TestJobDocument_OmitsAbsentFields(t *testing.T) {
	job := Job{ID: "a", Title: "Développeur", Description: "applications web"}

	assert.Equal(t, Normalize("Développeur applications web"), JobDocument(job))
}

func TestUserDocument_FieldOrderIsDeterministic(t *testing.T) {
	profile := UserProfile{
		FieldOfStudy: "finance",
		Skills:       []string{"excel", "accounting"},
		Interests:    []string{"banque"},
		Experience:   []string{"stage analyste"},
		Location:     "Dakar",
	}

	want := Normalize("finance excel accounting banque stage analyste Dakar")
	assert.Equal(t, want, UserDocument(profile))
}

func TestUserDocument_EmptyProfile(t *testing.T) {
	assert.Equal(t, "", UserDocument(UserProfile{}))
	assert.True(t, UserProfile{}.Empty())
}
