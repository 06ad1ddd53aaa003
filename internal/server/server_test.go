package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/campus-connect/internal/recommend"
)

func testCatalog() []recommend.Job {
	return []recommend.Job{
		{
			ID:              "sonatel_dev",
			Title:           "Développeur Full Stack",
			Description:     "Développement d'applications web et mobiles avec Python et JavaScript",
			RequiredSkills:  []string{"Python", "JavaScript", "React"},
			FieldOfStudy:    "informatique",
			CompanyIndustry: "Télécommunications",
			Location:        "Dakar",
		},
		{
			ID:              "sgbs_analyste",
			Title:           "Analyste Financier",
			Description:     "Analyse des risques financiers et reporting réglementaire",
			RequiredSkills:  []string{"Excel", "Analyse financière"},
			FieldOfStudy:    "finance",
			CompanyIndustry: "Finance",
			Location:        "Dakar",
		},
		{
			ID:              "wave_data",
			Title:           "Data Scientist",
			Description:     "Modélisation de données et machine learning avec Python",
			RequiredSkills:  []string{"Python", "SQL", "Machine Learning"},
			FieldOfStudy:    "informatique",
			CompanyIndustry: "Fintech",
			Location:        "Dakar",
		},
	}
}

func newTestServer(t *testing.T, jobs []recommend.Job) *Server {
	t.Helper()
	engine := recommend.NewEngine()
	if jobs != nil {
		require.NoError(t, engine.Fit(jobs))
	}
	return New(Config{Port: 0}, engine, StaticCatalog{Catalog: jobs}, nil)
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, testCatalog())
	rec := doRequest(t, s, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["ready"])
}

func TestHealthReportsNotReady(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(t, s, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["ready"])
}

func TestRecommendationsEndpoint(t *testing.T) {
	t.Run("returns ranked recommendations", func(t *testing.T) {
		s := newTestServer(t, testCatalog())
		rec := doRequest(t, s, http.MethodPost, "/recommendations",
			`{"user_id": "u1", "user": {"field_of_study": "informatique", "skills": ["Python", "JavaScript"]}}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "success", body["status"])

		data, ok := body["data"].([]any)
		require.True(t, ok)
		require.NotEmpty(t, data)
		assert.Equal(t, float64(len(data)), body["count"])

		first, ok := data[0].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, first, "ai_match_score")
		score := first["ai_match_score"].(float64)
		assert.GreaterOrEqual(t, score, float64(0))
		assert.LessOrEqual(t, score, float64(100))
	})

	t.Run("respects limit", func(t *testing.T) {
		s := newTestServer(t, testCatalog())
		rec := doRequest(t, s, http.MethodPost, "/recommendations",
			`{"user_id": "u1", "user": {"skills": ["Python"]}, "limit": 1}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(1), body["count"])
	})

	t.Run("missing user profile returns 400", func(t *testing.T) {
		s := newTestServer(t, testCatalog())
		rec := doRequest(t, s, http.MethodPost, "/recommendations", `{"user_id": "u1"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "error", body["status"])
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		s := newTestServer(t, testCatalog())
		rec := doRequest(t, s, http.MethodPost, "/recommendations", `{"user_id":`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unfitted engine returns 503", func(t *testing.T) {
		s := newTestServer(t, nil)
		rec := doRequest(t, s, http.MethodPost, "/recommendations",
			`{"user_id": "u1", "user": {"skills": ["Python"]}}`)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "error", body["status"])
	})
}

func TestInteractionsEndpoint(t *testing.T) {
	t.Run("records a valid interaction", func(t *testing.T) {
		s := newTestServer(t, testCatalog())
		rec := doRequest(t, s, http.MethodPost, "/interactions",
			`{"user_id": "u1", "job_id": "sonatel_dev", "interaction_type": "apply"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "success", body["status"])

		totals := s.engine.Ledger().Interactions("u1")
		assert.Equal(t, 2.0, totals["sonatel_dev"])
	})

	t.Run("invalid interaction type lists accepted values", func(t *testing.T) {
		s := newTestServer(t, testCatalog())
		rec := doRequest(t, s, http.MethodPost, "/interactions",
			`{"user_id": "u1", "job_id": "sonatel_dev", "interaction_type": "like"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		message, _ := body["message"].(string)
		assert.Contains(t, message, "view")
		assert.Contains(t, message, "apply")
		assert.Contains(t, message, "save")
		assert.Contains(t, message, "dismiss")
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		s := newTestServer(t, testCatalog())
		rec := doRequest(t, s, http.MethodPost, "/interactions",
			`{"user_id": "u1", "interaction_type": "view"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("interactions shape later recommendations", func(t *testing.T) {
		s := newTestServer(t, testCatalog())

		// A neighbor with overlapping taste applies to the data job
		doRequest(t, s, http.MethodPost, "/interactions",
			`{"user_id": "u1", "job_id": "sonatel_dev", "interaction_type": "apply"}`)
		doRequest(t, s, http.MethodPost, "/interactions",
			`{"user_id": "u2", "job_id": "sonatel_dev", "interaction_type": "apply"}`)
		doRequest(t, s, http.MethodPost, "/interactions",
			`{"user_id": "u2", "job_id": "wave_data", "interaction_type": "apply"}`)

		rec := doRequest(t, s, http.MethodPost, "/recommendations",
			`{"user_id": "u1", "user": {"skills": ["Python"]}}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		data := body["data"].([]any)

		var collabSeen bool
		for _, item := range data {
			job := item.(map[string]any)
			if job["id"] == "wave_data" && job["collab_score"].(float64) > 0 {
				collabSeen = true
			}
		}
		assert.True(t, collabSeen, "expected collaborative signal on the neighbor's job")
	})
}

func TestJobsEndpoints(t *testing.T) {
	t.Run("list returns the fitted catalog", func(t *testing.T) {
		s := newTestServer(t, testCatalog())
		rec := doRequest(t, s, http.MethodGet, "/jobs", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(3), body["count"])
	})

	t.Run("get by id", func(t *testing.T) {
		s := newTestServer(t, testCatalog())
		rec := doRequest(t, s, http.MethodGet, "/jobs/sgbs_analyste", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		data := body["data"].(map[string]any)
		assert.Equal(t, "Analyste Financier", data["title"])
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		s := newTestServer(t, testCatalog())
		rec := doRequest(t, s, http.MethodGet, "/jobs/missing_job", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list on unfitted engine returns 503", func(t *testing.T) {
		s := newTestServer(t, nil)
		rec := doRequest(t, s, http.MethodGet, "/jobs", "")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRefreshEndpoint(t *testing.T) {
	t.Run("refresh fits the catalog from its source", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := doRequest(t, s, http.MethodPost, "/jobs/refresh", "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(3), body["count"])

		rec = doRequest(t, s, http.MethodGet, "/jobs", "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty catalog is rejected", func(t *testing.T) {
		engine := recommend.NewEngine()
		s := New(Config{}, engine, StaticCatalog{}, nil)

		rec := doRequest(t, s, http.MethodPost, "/jobs/refresh", "")
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestInsightsEndpoint(t *testing.T) {
	s := newTestServer(t, testCatalog())
	doRequest(t, s, http.MethodPost, "/interactions",
		`{"user_id": "u1", "job_id": "wave_data", "interaction_type": "apply"}`)

	rec := doRequest(t, s, http.MethodGet, "/insights", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data, "trending_skills")
	assert.Contains(t, data, "growing_industries")
	assert.Contains(t, data, "salary_trends")
	assert.Contains(t, data, "location_demand")
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, testCatalog())
	req := httptest.NewRequest(http.MethodOptions, "/recommendations", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&recommend.NotReadyError{}))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(&recommend.FitError{Reason: "empty catalog"}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrJobNotFound{JobID: "x"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "user", Message: "required"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
