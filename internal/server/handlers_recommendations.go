package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/campus-connect/internal/recommend"
	"github.com/jonathan/campus-connect/internal/types"
)

// handleRecommendations scores the fitted catalog against the submitted user
// profile and returns the hybrid top-N.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "User profile is required")
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.topN
	}

	recs, err := s.engine.RecommendWeighted(*req.User, req.UserID, limit, s.contentWeight)
	if err != nil {
		var notReady *recommend.NotReadyError
		if errors.As(err, &notReady) {
			s.errorResponse(w, http.StatusServiceUnavailable, "Recommendation engine is not ready; no job catalog has been fitted")
			return
		}
		log.Printf("Error computing recommendations for user %s: %v", req.UserID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to compute recommendations")
		return
	}

	s.successResponse(w, len(recs), recs)
}

// handleRecordInteraction records a user interaction for collaborative
// filtering and, when a database is configured, appends it to the audit log.
func (s *Server) handleRecordInteraction(w http.ResponseWriter, r *http.Request) {
	var req types.InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "user_id, job_id and interaction_type are required")
		return
	}

	kind := recommend.InteractionKind(req.InteractionType)
	if !recommend.ValidInteraction(kind) {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf(
			"Invalid interaction_type %q; accepted values: %s",
			req.InteractionType, strings.Join(interactionKindNames(), ", ")))
		return
	}

	s.engine.RecordInteraction(req.UserID, req.JobID, kind)

	// Audit write is best-effort: the in-memory ledger is the scoring
	// source of truth.
	if s.store != nil {
		if _, err := s.store.InsertInteractionEvent(r.Context(), req.UserID, req.JobID, req.InteractionType); err != nil {
			log.Printf("Error persisting interaction event: %v", err)
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Interaction recorded",
	})
}

func interactionKindNames() []string {
	kinds := recommend.InteractionKinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, string(k))
	}
	return names
}
