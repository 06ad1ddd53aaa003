package recommend

import "fmt"

// NotReadyError indicates the engine was asked to score or recommend
// before any catalog has been fitted. Callers can retry after ingestion.
type NotReadyError struct{}

func (e *NotReadyError) Error() string {
	return "recommendation index not fitted; ingest a catalog first"
}

// FitError indicates Fit was called with an empty or degenerate catalog
// (no extractable vocabulary). Recoverable by supplying a non-empty catalog.
type FitError struct {
	Reason string
}

func (e *FitError) Error() string {
	return fmt.Sprintf("cannot fit recommendation index: %s", e.Reason)
}
