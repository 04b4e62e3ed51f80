package vehicle

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Kind names for the built-in implementers. Scenario files and the CLI
// refer to kinds by these names.
const (
	KindAirplane   = "airplane"
	KindMotorcycle = "motorcycle"
)

// ErrUnknownKind is returned by New when no constructor is registered for
// the requested kind.
var ErrUnknownKind = errors.New("unknown vehicle kind")

// ErrDuplicateKind is returned by Register when the kind name is taken.
var ErrDuplicateKind = errors.New("vehicle kind already registered")

// Constructor builds a fresh value of one concrete kind.
type Constructor func() Vehicle

// registry is the process-wide set of known kinds. It is the "finite set"
// the existential style picks from at runtime.
type registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

var defaultRegistry = &registry{
	ctors: map[string]Constructor{
		KindAirplane:   func() Vehicle { return Airplane{} },
		KindMotorcycle: func() Vehicle { return Motorcycle{} },
	},
}

// Register adds a constructor for a new kind. Registering a name that is
// already taken is an error; the built-in kinds cannot be replaced.
func Register(kind string, ctor Constructor) error {
	if kind == "" {
		return fmt.Errorf("empty kind name")
	}
	if ctor == nil {
		return fmt.Errorf("nil constructor for kind %q", kind)
	}

	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()

	if _, ok := defaultRegistry.ctors[kind]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, kind)
	}
	defaultRegistry.ctors[kind] = ctor
	return nil
}

// Unregister removes a kind. Only useful for tests that extend the
// registry and need to restore it afterwards.
func Unregister(kind string) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	delete(defaultRegistry.ctors, kind)
}

// New constructs a vehicle of the named kind.
func New(kind string) (Vehicle, error) {
	defaultRegistry.mu.RLock()
	ctor, ok := defaultRegistry.ctors[kind]
	defaultRegistry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return ctor(), nil
}

// Kinds returns the registered kind names, sorted for deterministic
// iteration and seeded random selection.
func Kinds() []string {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()

	kinds := make([]string, 0, len(defaultRegistry.ctors))
	for k := range defaultRegistry.ctors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// KindOf recovers the registry name for a concrete value. This is the
// runtime half of the existential style: the concrete type behind an
// interface value is only discoverable here, at the point of use.
func KindOf(v Vehicle) string {
	switch v.(type) {
	case Airplane:
		return KindAirplane
	case Motorcycle:
		return KindMotorcycle
	default:
		// Kinds registered by callers are matched by their dynamic type.
		t := reflect.TypeOf(v)
		defaultRegistry.mu.RLock()
		defer defaultRegistry.mu.RUnlock()
		for name, ctor := range defaultRegistry.ctors {
			if reflect.TypeOf(ctor()) == t {
				return name
			}
		}
		return fmt.Sprintf("%T", v)
	}
}

// Expected returns the fixed observation for a kind: the attribute values
// every dispatch path must report for it.
func Expected(kind string) (Observation, error) {
	v, err := New(kind)
	if err != nil {
		return Observation{}, err
	}
	return Observation{Kind: kind, CanFly: v.CanFly(), Weight: v.Weight()}, nil
}
