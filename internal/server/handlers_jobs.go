package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/campus-connect/internal/insights"
	"github.com/jonathan/campus-connect/internal/recommend"
)

// handleListJobs returns the currently fitted job catalog.
func (s *Server) handleListJobs(w http.ResponseWriter, _ *http.Request) {
	jobs, err := s.engine.Jobs()
	if err != nil {
		s.notReadyOrInternal(w, err)
		return
	}

	s.successResponse(w, len(jobs), jobs)
}

// handleGetJob returns a single job from the fitted catalog.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	job, found, err := s.engine.JobByID(id)
	if err != nil {
		s.notReadyOrInternal(w, err)
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status": "success",
		"data":   job,
	})
}

// handleRefreshCatalog reloads the catalog from its source and refits the
// engine. The previous index keeps serving until the new one is ready.
func (s *Server) handleRefreshCatalog(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.catalog.Jobs(r.Context())
	if err != nil {
		log.Printf("Error loading catalog for refresh: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load job catalog")
		return
	}

	if err := s.engine.Fit(jobs); err != nil {
		var fitErr *recommend.FitError
		if errors.As(err, &fitErr) {
			s.errorResponse(w, http.StatusUnprocessableEntity, "Catalog cannot be fitted: "+fitErr.Reason)
			return
		}
		log.Printf("Error fitting catalog: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fit job catalog")
		return
	}

	log.Printf("Catalog refreshed: %d jobs fitted", len(jobs))
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Catalog refreshed",
		"count":   len(jobs),
	})
}

// handleInsights computes market insights over the fitted catalog and the
// recorded interaction engagement.
func (s *Server) handleInsights(w http.ResponseWriter, _ *http.Request) {
	jobs, err := s.engine.Jobs()
	if err != nil {
		s.notReadyOrInternal(w, err)
		return
	}

	engagement := s.engine.Ledger().TotalsByJob()
	market := insights.Compute(jobs, engagement)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status": "success",
		"data":   market,
	})
}

// notReadyOrInternal maps catalog access errors onto the HTTP surface.
func (s *Server) notReadyOrInternal(w http.ResponseWriter, err error) {
	var notReady *recommend.NotReadyError
	if errors.As(err, &notReady) {
		s.errorResponse(w, http.StatusServiceUnavailable, "Recommendation engine is not ready; no job catalog has been fitted")
		return
	}
	log.Printf("Unexpected catalog error: %v", err)
	s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
}
