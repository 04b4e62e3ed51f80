package store

import (
	"context"
	"fmt"

	"github.com/croften/dispatchlab/internal/trace"
)

// Run describes one recorded demonstration run.
type Run struct {
	ID        string      `json:"id"`
	Scenario  string      `json:"scenario"`
	Style     trace.Style `json:"style"`
	Seed      uint64      `json:"seed"`
	CreatedAt string      `json:"created_at,omitempty"`
}

// WriteRun inserts the run row. The run id must be unique; replaying a
// scenario records a fresh run rather than overwriting an old one.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	if run.ID == "" {
		return fmt.Errorf("run id is empty")
	}
	if !run.Style.Valid() {
		return fmt.Errorf("invalid style %q", run.Style)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, scenario, style, seed) VALUES (?, ?, ?, ?)`,
		run.ID, run.Scenario, string(run.Style), int64(run.Seed),
	)
	if err != nil {
		return fmt.Errorf("failed to write run %s: %w", run.ID, err)
	}
	return nil
}

// WriteEvent appends one trace event to a run. The content-addressed
// event id is computed here so every stored event carries its identity.
func (s *Store) WriteEvent(ctx context.Context, runID string, ev trace.Event) error {
	id, err := ev.ID()
	if err != nil {
		return err
	}

	canFly := 0
	if ev.CanFly {
		canFly = 1
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO events (run_id, seq, event_id, style, kind, can_fly, weight)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, ev.Seq, id, string(ev.Style), ev.Kind, canFly, ev.Weight,
	)
	if err != nil {
		return fmt.Errorf("failed to write event seq %d for run %s: %w", ev.Seq, runID, err)
	}
	return nil
}
