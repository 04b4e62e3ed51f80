// Package runner executes demonstration scenarios against the real
// dispatch packages and records the resulting trace.
//
// Unlike a mocked harness, nothing here manufactures results: every event
// comes from invoking the capability set through the style the scenario
// asked for. The runner adds only bookkeeping: a logical clock for seq
// numbers, a run id, optional SQLite recording, and assertion evaluation.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/croften/dispatchlab/internal/existential"
	"github.com/croften/dispatchlab/internal/opaque"
	"github.com/croften/dispatchlab/internal/scenario"
	"github.com/croften/dispatchlab/internal/store"
	"github.com/croften/dispatchlab/internal/trace"
	"github.com/croften/dispatchlab/internal/vehicle"
)

// RunIDGenerator produces ids for recorded runs.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run ids, so runs listed
// from the store come back in creation order.
//
// Stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 as a hyphenated string.
// Panics if UUID generation fails, which does not happen in practice.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Options configures a run. The zero value runs without recording, with
// UUIDv7 run ids and discarded logs.
type Options struct {
	// Store receives the run and its events when non-nil.
	Store *store.Store

	// IDs overrides the run id generator, for deterministic tests.
	IDs RunIDGenerator

	// Logger receives per-event progress. Nil discards.
	Logger *slog.Logger
}

// Result is the outcome of one scenario run.
type Result struct {
	// RunID identifies the run, whether or not it was recorded.
	RunID string `json:"run_id"`

	// Pass is true when every assertion held.
	Pass bool `json:"pass"`

	// Trace contains the observations in sequence order.
	Trace []trace.Event `json:"trace"`

	// Errors lists failed assertions. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// Snapshot packages the result's trace for canonical serialization.
func (r *Result) Snapshot(scn *scenario.Scenario) trace.Snapshot {
	return trace.Snapshot{
		Scenario: scn.Name,
		Seed:     scn.Seed,
		Events:   r.Trace,
	}
}

// Run executes a scenario and evaluates its assertions.
//
// Execution is deterministic for a given scenario: fleet observations
// happen in fleet order, then any random picks draw from a source seeded
// with the scenario seed. Failed assertions mark the result as not
// passing; they do not return an error. Errors are reserved for runs that
// could not execute at all (unknown kinds, store failures).
func Run(ctx context.Context, scn *scenario.Scenario, opts Options) (*Result, error) {
	if err := scn.Check(); err != nil {
		return nil, err
	}

	ids := opts.IDs
	if ids == nil {
		ids = UUIDv7Generator{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	events, err := observe(scn)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID: ids.Generate(),
		Pass:  true,
		Trace: events,
	}

	if opts.Store != nil {
		run := store.Run{
			ID:       result.RunID,
			Scenario: scn.Name,
			Style:    scn.Style,
			Seed:     scn.Seed,
		}
		if err := opts.Store.WriteRun(ctx, run); err != nil {
			return nil, fmt.Errorf("failed to record run: %w", err)
		}
		for _, ev := range events {
			if err := opts.Store.WriteEvent(ctx, result.RunID, ev); err != nil {
				return nil, fmt.Errorf("failed to record event: %w", err)
			}
		}
	}

	for _, msg := range evaluate(scn, events) {
		result.Errors = append(result.Errors, msg)
		result.Pass = false
	}

	for _, ev := range events {
		logger.Info("observed",
			"run_id", result.RunID,
			"seq", ev.Seq,
			"style", ev.Style,
			"kind", ev.Kind,
			"can_fly", ev.CanFly,
			"weight", ev.Weight,
		)
	}

	return result, nil
}

// observe produces the scenario's trace events by dispatching through the
// requested style.
func observe(scn *scenario.Scenario) ([]trace.Event, error) {
	var seq int64
	next := func() int64 { seq++; return seq }

	var events []trace.Event
	add := func(obs vehicle.Observation) {
		events = append(events, trace.FromObservation(next(), scn.Style, obs))
	}

	switch scn.Style {
	case trace.StyleExistential:
		fleet, err := existential.Assemble(scn.Fleet...)
		if err != nil {
			return nil, err
		}
		for _, obs := range existential.Survey(fleet) {
			add(obs)
		}

		rng := rand.New(rand.NewPCG(scn.Seed, scn.Seed))
		for i := 0; i < scn.Picks; i++ {
			v, err := existential.Pick(rng)
			if err != nil {
				return nil, fmt.Errorf("pick %d: %w", i, err)
			}
			add(existential.Inspect(v))
		}

	case trace.StyleOpaque:
		for i, kind := range scn.Fleet {
			obs, err := ObserveOpaque(kind)
			if err != nil {
				return nil, fmt.Errorf("fleet position %d: %w", i, err)
			}
			add(obs)
		}

	default:
		return nil, fmt.Errorf("unknown dispatch style %q", scn.Style)
	}

	return events, nil
}

// ObserveOpaque routes one kind through the generic path. Each case is a
// distinct instantiation whose concrete type the compiler knows, which is
// exactly why only kinds named here can use the opaque style: there is no
// runtime registry lookup that could produce "some type, decided later".
func ObserveOpaque(kind string) (vehicle.Observation, error) {
	switch kind {
	case vehicle.KindAirplane:
		return opaque.Inspect(opaque.Freighter()), nil
	case vehicle.KindMotorcycle:
		return opaque.Inspect(opaque.Courier()), nil
	default:
		return vehicle.Observation{}, fmt.Errorf("no opaque instantiation for kind %q", kind)
	}
}
