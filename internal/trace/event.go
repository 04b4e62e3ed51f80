// Package trace defines the dispatch trace: the ordered record of
// observations a demonstration run produced, with deterministic
// serialization for golden-file comparison and content-addressed event
// identity.
package trace

import "github.com/croften/dispatchlab/internal/vehicle"

// Style identifies which dispatch mechanism produced an event.
type Style string

const (
	// StyleExistential marks observations made through an interface value.
	StyleExistential Style = "existential"

	// StyleOpaque marks observations made through a generic instantiation.
	StyleOpaque Style = "opaque"
)

// Valid reports whether s is one of the two known styles.
func (s Style) Valid() bool {
	return s == StyleExistential || s == StyleOpaque
}

// Event is one observation in a dispatch trace.
type Event struct {
	Seq    int64   `json:"seq"`
	Style  Style   `json:"style"`
	Kind   string  `json:"kind"`
	CanFly bool    `json:"can_fly"`
	Weight float64 `json:"weight"`
}

// FromObservation builds an event from an observation and its position.
func FromObservation(seq int64, style Style, obs vehicle.Observation) Event {
	return Event{
		Seq:    seq,
		Style:  style,
		Kind:   obs.Kind,
		CanFly: obs.CanFly,
		Weight: obs.Weight,
	}
}

// canonicalMap flattens the event for canonical serialization.
func (e Event) canonicalMap() map[string]any {
	return map[string]any{
		"seq":     e.Seq,
		"style":   string(e.Style),
		"kind":    e.Kind,
		"can_fly": e.CanFly,
		"weight":  e.Weight,
	}
}

// Snapshot captures a complete run trace. Marshaled canonically it is the
// unit of golden-file comparison and of the deterministic-replay check.
type Snapshot struct {
	Scenario string  `json:"scenario"`
	Seed     uint64  `json:"seed"`
	Events   []Event `json:"events"`
}

// MarshalCanonical serializes the snapshot in canonical form.
func (s Snapshot) MarshalCanonical() ([]byte, error) {
	events := make([]any, len(s.Events))
	for i, e := range s.Events {
		events[i] = e.canonicalMap()
	}
	return MarshalCanonical(map[string]any{
		"scenario": s.Scenario,
		"seed":     int64(s.Seed),
		"events":   events,
	})
}
