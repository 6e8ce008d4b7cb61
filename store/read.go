package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/roach88/gavel/trace"
)

// GetRun loads one archived run, trace events included, ordered by seq.
// Returns ErrNotFound when the ID is unknown.
func (s *Store) GetRun(ctx context.Context, id string) (RunRecord, error) {
	var rec RunRecord
	var createdAt string

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, verdict, fault, turns, created_at
		FROM runs WHERE id = ?
	`, id)
	err := row.Scan(&rec.ID, &rec.Name, &rec.Verdict, &rec.Fault, &rec.Turns, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, fmt.Errorf("get run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", id, err)
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: bad created_at: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, turn, kind, payload
		FROM events WHERE run_id = ?
		ORDER BY seq
	`, id)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var ev trace.Event
		var kind string
		if err := rows.Scan(&ev.Seq, &ev.Turn, &kind, &ev.Payload); err != nil {
			return RunRecord{}, fmt.Errorf("get run %s: %w", id, err)
		}
		ev.Kind = trace.Kind(kind)
		rec.Events = append(rec.Events, ev)
	}
	if err := rows.Err(); err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", id, err)
	}

	return rec, nil
}

// ListRuns returns all archived runs, newest first, without their events.
func (s *Store) ListRuns(ctx context.Context) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, verdict, fault, turns, created_at
		FROM runs
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var recs []RunRecord
	for rows.Next() {
		var rec RunRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Verdict, &rec.Fault, &rec.Turns, &createdAt); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("list runs: bad created_at for %s: %w", rec.ID, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	return recs, nil
}
