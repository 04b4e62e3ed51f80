// Package scenario defines the YAML demonstration scenarios and their CUE
// schema. A scenario names a dispatch style, a fleet of vehicle kinds, an
// optional number of seeded random picks, and assertions over the
// resulting trace.
package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/croften/dispatchlab/internal/trace"
)

// Scenario describes one demonstration run.
type Scenario struct {
	// Name uniquely identifies this scenario. It doubles as the golden
	// file name, so it should be a stable lowercase identifier.
	Name string `yaml:"name"`

	// Description explains what this scenario demonstrates.
	Description string `yaml:"description"`

	// Style selects the dispatch mechanism: "existential" or "opaque".
	Style trace.Style `yaml:"style"`

	// Seed feeds the random source for existential picks. Zero is a
	// valid seed; scenarios with picks should set it explicitly so the
	// trace is reproducible.
	Seed uint64 `yaml:"seed,omitempty"`

	// Fleet lists vehicle kinds to observe, in order.
	Fleet []string `yaml:"fleet,omitempty"`

	// Picks is the number of additional randomly chosen observations.
	// Only valid with the existential style: a runtime-random concrete
	// type is exactly what the opaque style rules out.
	Picks int `yaml:"picks,omitempty"`

	// Assertions validate the resulting trace.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Assertion validates one property of a run's trace.
type Assertion struct {
	// Type selects the check:
	//   - "observed": Kind appears and reports exactly its fixed values
	//   - "kind_count": Kind appears exactly Count times
	//   - "order": Kinds first appear in the given relative order
	//   - "deterministic": re-running yields a byte-identical trace
	Type string `yaml:"type"`

	// Kind is the vehicle kind (observed, kind_count).
	Kind string `yaml:"kind,omitempty"`

	// Count is the expected number of occurrences (kind_count).
	Count int `yaml:"count,omitempty"`

	// Kinds is the expected relative order (order).
	Kinds []string `yaml:"kinds,omitempty"`
}

// Load reads and structurally validates a scenario file. Unknown YAML
// fields are rejected so typos surface as load errors rather than as
// silently ignored settings. For schema validation with positions, see
// ValidateFile.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes scenario YAML. The path is only used in error messages.
func Parse(path string, data []byte) (*Scenario, error) {
	var scn Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&scn); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}

	if err := scn.Check(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scn, nil
}

// Check enforces the structural rules the schema also encodes, so a
// scenario built in code gets the same validation as one loaded from YAML.
// The runner calls it before executing anything.
func (s *Scenario) Check() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !s.Style.Valid() {
		return fmt.Errorf("style must be %q or %q, got %q",
			trace.StyleExistential, trace.StyleOpaque, s.Style)
	}
	if s.Picks < 0 {
		return fmt.Errorf("picks must be non-negative, got %d", s.Picks)
	}
	if s.Picks > 0 && s.Style != trace.StyleExistential {
		return fmt.Errorf("picks require the existential style")
	}
	if len(s.Fleet) == 0 && s.Picks == 0 {
		return fmt.Errorf("scenario observes nothing: fleet is empty and picks is zero")
	}

	for i, a := range s.Assertions {
		if err := a.check(); err != nil {
			return fmt.Errorf("assertion %d: %w", i, err)
		}
	}
	return nil
}

func (a *Assertion) check() error {
	switch a.Type {
	case "observed":
		if a.Kind == "" {
			return fmt.Errorf("observed assertion requires kind")
		}
	case "kind_count":
		if a.Kind == "" {
			return fmt.Errorf("kind_count assertion requires kind")
		}
		if a.Count < 0 {
			return fmt.Errorf("kind_count count must be non-negative")
		}
	case "order":
		if len(a.Kinds) < 2 {
			return fmt.Errorf("order assertion requires at least two kinds")
		}
	case "deterministic":
		// No parameters.
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}
