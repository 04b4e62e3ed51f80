// Package existential implements the runtime-dispatched side of the
// capability contrast: values of different concrete kinds handled through
// one interface type, with the concrete kind recovered only at the point
// of use.
//
// Nothing in this package's signatures names a concrete kind. A Fleet may
// mix kinds freely, and Pick chooses a kind at runtime; the cost is an
// indirection on every capability call and the loss of compile-time
// specialization.
package existential

import (
	"fmt"
	"math/rand/v2"

	"github.com/croften/dispatchlab/internal/vehicle"
)

// Fleet is a heterogeneous ordered collection. Elements share the
// capability set but may differ in concrete kind.
type Fleet []vehicle.Vehicle

// Assemble builds a fleet from kind names via the registry. The fleet
// preserves the given order. Any unknown kind fails the whole assembly.
func Assemble(kinds ...string) (Fleet, error) {
	fleet := make(Fleet, 0, len(kinds))
	for i, kind := range kinds {
		v, err := vehicle.New(kind)
		if err != nil {
			return nil, fmt.Errorf("fleet position %d: %w", i, err)
		}
		fleet = append(fleet, v)
	}
	return fleet, nil
}

// Inspect invokes the capability set through the interface value. The
// static type here is vehicle.Vehicle; which concrete kind answers is
// decided by dynamic dispatch, and the kind name is recovered from the
// value itself, never from the call site.
func Inspect(v vehicle.Vehicle) vehicle.Observation {
	return vehicle.Observation{
		Kind:   vehicle.KindOf(v),
		CanFly: v.CanFly(),
		Weight: v.Weight(),
	}
}

// Survey inspects each fleet element in order. One loop body serves every
// kind in the fleet, which is the defining property of the existential
// style.
func Survey(f Fleet) []vehicle.Observation {
	obs := make([]vehicle.Observation, len(f))
	for i, v := range f {
		obs[i] = Inspect(v)
	}
	return obs
}

// Pick constructs a vehicle of a randomly chosen registered kind. The
// choice happens at runtime; with a seeded source it is reproducible.
func Pick(rng *rand.Rand) (vehicle.Vehicle, error) {
	kinds := vehicle.Kinds()
	if len(kinds) == 0 {
		return nil, fmt.Errorf("no vehicle kinds registered")
	}
	return vehicle.New(kinds[rng.IntN(len(kinds))])
}

// Heaviest returns the observation for the heaviest fleet element. The
// comparison runs through the interface; the winning kind is only known
// once the fleet's runtime contents are.
func Heaviest(f Fleet) (vehicle.Observation, bool) {
	if len(f) == 0 {
		return vehicle.Observation{}, false
	}
	best := f[0]
	for _, v := range f[1:] {
		if v.Weight() > best.Weight() {
			best = v
		}
	}
	return Inspect(best), true
}
