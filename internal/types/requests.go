// Package types provides request and response type definitions shared by the
// campus-connect HTTP surface.
package types

import (
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/campus-connect/internal/recommend"
)

// RecommendationRequest represents a request for personalized job
// recommendations. UserID is optional: without one the engine has no
// interaction history to draw on and serves content-only results.
type RecommendationRequest struct {
	UserID string                 `json:"user_id,omitempty"`
	User   *recommend.UserProfile `json:"user" validate:"required"`
	Limit  int                    `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// InteractionRequest represents a recorded user interaction with a job
// posting.
type InteractionRequest struct {
	UserID          string `json:"user_id" validate:"required,min=1"`
	JobID           string `json:"job_id" validate:"required,min=1"`
	InteractionType string `json:"interaction_type" validate:"required"`
}

// Validate validates the RecommendationRequest using the validator.
func (r *RecommendationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the InteractionRequest using the validator.
func (r *InteractionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
