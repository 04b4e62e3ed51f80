package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/croften/dispatchlab/internal/trace"
)

// ErrRunNotFound is returned when no run exists with the requested id.
var ErrRunNotFound = errors.New("run not found")

// GetRun fetches one run row by id.
func (s *Store) GetRun(ctx context.Context, runID string) (Run, error) {
	var run Run
	var style string
	var seed int64

	err := s.db.QueryRowContext(ctx,
		`SELECT id, scenario, style, seed, created_at FROM runs WHERE id = ?`,
		runID,
	).Scan(&run.ID, &run.Scenario, &style, &seed, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to read run %s: %w", runID, err)
	}

	run.Style = trace.Style(style)
	run.Seed = uint64(seed)
	return run, nil
}

// ListRuns returns all recorded runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, scenario, style, seed, created_at FROM runs ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var style string
		var seed int64
		if err := rows.Scan(&run.ID, &run.Scenario, &style, &seed, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Style = trace.Style(style)
		run.Seed = uint64(seed)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// ReadEvents returns a run's trace events in sequence order.
func (s *Store) ReadEvents(ctx context.Context, runID string) ([]trace.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, style, kind, can_fly, weight FROM events WHERE run_id = ? ORDER BY seq`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read events for run %s: %w", runID, err)
	}
	defer rows.Close()

	var events []trace.Event
	for rows.Next() {
		var ev trace.Event
		var style string
		var canFly int
		if err := rows.Scan(&ev.Seq, &style, &ev.Kind, &canFly, &ev.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		ev.Style = trace.Style(style)
		ev.CanFly = canFly != 0
		events = append(events, ev)
	}
	return events, rows.Err()
}

// CountByKind returns how many events in a run observed the given kind.
func (s *Store) CountByKind(ctx context.Context, runID, kind string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events WHERE run_id = ? AND kind = ?`,
		runID, kind,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count events for kind %q: %w", kind, err)
	}
	return n, nil
}
