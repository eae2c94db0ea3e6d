package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/newsgroup-processor/internal/types"
)

// StageEventRecord is a persisted stage transition
type StageEventRecord struct {
	ID        uuid.UUID `json:"id"`
	RunID     uuid.UUID `json:"run_id"`
	Stage     string    `json:"stage"`
	Outcome   string    `json:"outcome"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// SaveStageEvents inserts the full event trail of a run in one batch
func (db *DB) SaveStageEvents(ctx context.Context, runID uuid.UUID, events []types.StageEvent) error {
	for _, e := range events {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO stage_events (run_id, stage, outcome, detail, occurred_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			runID, e.Stage, e.Outcome, e.Detail, e.Timestamp,
		)
		if err != nil {
			return fmt.Errorf("failed to save stage event %s: %w", e.Stage, err)
		}
	}
	return nil
}

// ListStageEvents retrieves the event trail of a run in insertion order
func (db *DB) ListStageEvents(ctx context.Context, runID uuid.UUID) ([]StageEventRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, run_id, stage, outcome, detail, occurred_at
		 FROM stage_events WHERE run_id = $1 ORDER BY occurred_at ASC, id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stage events: %w", err)
	}
	defer rows.Close()

	var events []StageEventRecord
	for rows.Next() {
		var e StageEventRecord
		if err := rows.Scan(&e.ID, &e.RunID, &e.Stage, &e.Outcome, &e.Detail, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan stage event: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}
