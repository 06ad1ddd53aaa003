package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "description"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "title": {"type": "string", "minLength": 1},
      "description": {"type": "string"},
      "required_skills": {"type": "array", "items": {"type": "string"}}
    }
  }
}`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	t.Run("valid catalog loads with descriptions stripped", func(t *testing.T) {
		catalogPath := writeTempFile(t, "catalog.json", `[
			{
				"id": "sonatel_dev",
				"title": "Développeur Full Stack",
				"description": "<p>Développement d'applications <b>web</b></p>",
				"required_skills": ["JavaScript", "Python"],
				"company_id": "sonatel",
				"company_industry": "Télécommunications",
				"location": "Dakar"
			}
		]`)
		schemaPath := writeTempFile(t, "schema.json", testCatalogSchema)

		jobs, err := LoadSeedFile(catalogPath, schemaPath)
		require.NoError(t, err)
		require.Len(t, jobs, 1)

		assert.Equal(t, "sonatel_dev", jobs[0].ID)
		assert.Equal(t, "Développement d'applications web", jobs[0].Description)
		assert.Equal(t, []string{"JavaScript", "Python"}, jobs[0].RequiredSkills)
		assert.Equal(t, "Télécommunications", jobs[0].CompanyIndustry)
	})

	t.Run("missing file returns SeedLoadError", func(t *testing.T) {
		_, err := LoadSeedFile(filepath.Join(t.TempDir(), "nope.json"), "")
		require.Error(t, err)
		var loadErr *SeedLoadError
		assert.ErrorAs(t, err, &loadErr)
	})

	t.Run("malformed JSON returns SeedLoadError", func(t *testing.T) {
		catalogPath := writeTempFile(t, "bad.json", `{"not": "an array"`)
		_, err := LoadSeedFile(catalogPath, "")
		require.Error(t, err)
		var loadErr *SeedLoadError
		assert.ErrorAs(t, err, &loadErr)
	})

	t.Run("schema violation returns ValidationError with field paths", func(t *testing.T) {
		catalogPath := writeTempFile(t, "catalog.json", `[{"title": "Sans identifiant", "description": ""}]`)
		schemaPath := writeTempFile(t, "schema.json", testCatalogSchema)

		_, err := LoadSeedFile(catalogPath, schemaPath)
		require.Error(t, err)
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.NotEmpty(t, valErr.Errors)
	})

	t.Run("empty schema path skips validation", func(t *testing.T) {
		catalogPath := writeTempFile(t, "catalog.json", `[{"title": "Sans identifiant"}]`)
		jobs, err := LoadSeedFile(catalogPath, "")
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})
}

func TestValidateCatalogString(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		err := ValidateCatalogString(testCatalogSchema,
			`[{"id": "j1", "title": "Analyste", "description": "Analyse de données"}]`)
		assert.NoError(t, err)
	})

	t.Run("wrong root type", func(t *testing.T) {
		err := ValidateCatalogString(testCatalogSchema, `{"id": "j1"}`)
		require.Error(t, err)
		var valErr *ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("broken schema returns SchemaLoadError", func(t *testing.T) {
		err := ValidateCatalogString(`{"type": 12}`, `[]`)
		require.Error(t, err)
		var schemaErr *SchemaLoadError
		assert.ErrorAs(t, err, &schemaErr)
	})
}

func TestEngineJobs(t *testing.T) {
	seeds := []SeedJob{
		{ID: "a", Title: "Un", Description: "premier"},
		{ID: "b", Title: "Deux", Description: "second"},
	}
	jobs := EngineJobs(seeds)
	require.Len(t, jobs, 2)
	assert.Equal(t, "a", jobs[0].ID)
	assert.Equal(t, "b", jobs[1].ID)
}
