package store

import (
	"context"
	"fmt"
	"time"
)

// SaveRun inserts a run and its trace events in one transaction.
//
// Uses ON CONFLICT(id) DO NOTHING for idempotency - writing the same run
// twice is silently ignored, events included. Other constraint violations
// still return errors.
//
// A zero CreatedAt is filled with the current UTC time.
func (s *Store) SaveRun(ctx context.Context, rec RunRecord) error {
	if err := rec.validate(); err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, name, verdict, fault, turns, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		rec.Name,
		rec.Verdict,
		rec.Fault,
		rec.Turns,
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	// Duplicate run ID: the archive already holds this run, events and all.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil
	}

	for _, ev := range rec.Events {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO events (run_id, seq, turn, kind, payload)
			VALUES (?, ?, ?, ?, ?)
		`,
			rec.ID,
			ev.Seq,
			ev.Turn,
			string(ev.Kind),
			ev.Payload,
		)
		if err != nil {
			return fmt.Errorf("save run: event seq %d: %w", ev.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}
