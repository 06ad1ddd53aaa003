package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/campus-connect/internal/recommend"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrJobNotFound indicates the requested job is not in the fitted catalog
type ErrJobNotFound struct {
	JobID string
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *recommend.NotReadyError:
		return http.StatusServiceUnavailable
	case *recommend.FitError:
		return http.StatusUnprocessableEntity
	case *ErrJobNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
