package runner

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/croften/dispatchlab/internal/scenario"
	"github.com/croften/dispatchlab/internal/trace"
	"github.com/croften/dispatchlab/internal/vehicle"
)

// AssertionError describes one failed trace assertion, with the full
// trace attached for debugging context.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Trace    []trace.Event
}

func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  actual: %s\n", e.Actual)
	fmt.Fprintf(&buf, "\ntrace:\n")
	for _, ev := range e.Trace {
		fmt.Fprintf(&buf, "  [%d] %s %s can_fly=%t weight=%g\n",
			ev.Seq, ev.Style, ev.Kind, ev.CanFly, ev.Weight)
	}
	return buf.String()
}

// evaluate checks every scenario assertion against the trace and returns
// the failure messages. All assertions run; one failure does not mask the
// rest.
func evaluate(scn *scenario.Scenario, events []trace.Event) []string {
	var msgs []string
	for _, a := range scn.Assertions {
		var err error
		switch a.Type {
		case "observed":
			err = assertObserved(events, a)
		case "kind_count":
			err = assertKindCount(events, a)
		case "order":
			err = assertOrder(events, a)
		case "deterministic":
			err = assertDeterministic(scn, events)
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}
		if err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	return msgs
}

// assertObserved checks that the kind appears in the trace and that every
// appearance reports exactly the kind's fixed attribute values. This is
// the claim both dispatch styles must honor: however a value was reached,
// the capability set reports the implementer that was actually there.
func assertObserved(events []trace.Event, a scenario.Assertion) error {
	want, err := vehicle.Expected(a.Kind)
	if err != nil {
		return err
	}

	seen := false
	for _, ev := range events {
		if ev.Kind != a.Kind {
			continue
		}
		seen = true
		if ev.CanFly != want.CanFly || ev.Weight != want.Weight {
			return &AssertionError{
				Type:     "observed",
				Expected: fmt.Sprintf("%s with can_fly=%t weight=%g", a.Kind, want.CanFly, want.Weight),
				Actual:   fmt.Sprintf("seq %d reported can_fly=%t weight=%g", ev.Seq, ev.CanFly, ev.Weight),
				Trace:    events,
			}
		}
	}
	if !seen {
		return &AssertionError{
			Type:     "observed",
			Expected: fmt.Sprintf("kind %s present in trace", a.Kind),
			Actual:   "not found in trace",
			Trace:    events,
		}
	}
	return nil
}

// assertKindCount checks the kind appears exactly the expected number of
// times.
func assertKindCount(events []trace.Event, a scenario.Assertion) error {
	n := 0
	for _, ev := range events {
		if ev.Kind == a.Kind {
			n++
		}
	}
	if n != a.Count {
		return &AssertionError{
			Type:     "kind_count",
			Expected: fmt.Sprintf("%d occurrence(s) of %s", a.Count, a.Kind),
			Actual:   fmt.Sprintf("%d occurrence(s)", n),
			Trace:    events,
		}
	}
	return nil
}

// assertOrder checks the kinds first appear in the given relative order.
// Intervening events of other kinds are allowed.
func assertOrder(events []trace.Event, a scenario.Assertion) error {
	first := make(map[string]int64)
	for _, ev := range events {
		if _, ok := first[ev.Kind]; !ok {
			first[ev.Kind] = ev.Seq
		}
	}

	for _, kind := range a.Kinds {
		if _, ok := first[kind]; !ok {
			return &AssertionError{
				Type:     "order",
				Expected: fmt.Sprintf("all kinds present: %v", a.Kinds),
				Actual:   fmt.Sprintf("missing kind: %s", kind),
				Trace:    events,
			}
		}
	}

	for i := 1; i < len(a.Kinds); i++ {
		prev, curr := a.Kinds[i-1], a.Kinds[i]
		if first[prev] >= first[curr] {
			return &AssertionError{
				Type:     "order",
				Expected: fmt.Sprintf("kinds in order: %v", a.Kinds),
				Actual: fmt.Sprintf("%s (seq %d) should first appear before %s (seq %d)",
					prev, first[prev], curr, first[curr]),
				Trace: events,
			}
		}
	}
	return nil
}

// assertDeterministic re-runs the scenario's observation phase and
// compares canonical snapshots byte for byte. For the opaque style this
// is the compile-time-fixed-type claim in executable form; for seeded
// existential picks it is the reproducibility claim.
func assertDeterministic(scn *scenario.Scenario, events []trace.Event) error {
	replay, err := observe(scn)
	if err != nil {
		return fmt.Errorf("deterministic replay failed to execute: %w", err)
	}

	got, err := trace.Snapshot{Scenario: scn.Name, Seed: scn.Seed, Events: events}.MarshalCanonical()
	if err != nil {
		return err
	}
	again, err := trace.Snapshot{Scenario: scn.Name, Seed: scn.Seed, Events: replay}.MarshalCanonical()
	if err != nil {
		return err
	}

	if !bytes.Equal(got, again) {
		return &AssertionError{
			Type:     "deterministic",
			Expected: string(got),
			Actual:   string(again),
			Trace:    events,
		}
	}
	return nil
}
