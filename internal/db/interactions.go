package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InteractionEvent is an audit row recording a single user signal
// against a catalog job.
type InteractionEvent struct {
	ID              uuid.UUID `json:"id"`
	UserID          string    `json:"user_id"`
	JobID           string    `json:"job_id"`
	InteractionType string    `json:"interaction_type"`
	CreatedAt       time.Time `json:"created_at"`
}

// InsertInteractionEvent appends an interaction to the audit log and
// returns the stored row.
func (db *DB) InsertInteractionEvent(ctx context.Context, userID, jobID, kind string) (*InteractionEvent, error) {
	event := InteractionEvent{
		ID:              uuid.New(),
		UserID:          userID,
		JobID:           jobID,
		InteractionType: kind,
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO interaction_events (id, user_id, job_id, interaction_type)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		event.ID, event.UserID, event.JobID, event.InteractionType).Scan(&event.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert interaction event: %w", err)
	}
	return &event, nil
}

// ListInteractionEvents returns a user's interaction history, newest first.
func (db *DB) ListInteractionEvents(ctx context.Context, userID string, limit int) ([]InteractionEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, job_id, interaction_type, created_at
		 FROM interaction_events
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list interaction events: %w", err)
	}
	defer rows.Close()

	var events []InteractionEvent
	for rows.Next() {
		var ev InteractionEvent
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.JobID, &ev.InteractionType, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interaction event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read interaction events: %w", err)
	}
	return events, nil
}
