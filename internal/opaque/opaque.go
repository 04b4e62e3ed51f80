// Package opaque implements the compile-time side of the capability
// contrast: functions and collections generic over the Vehicle capability
// set, where each instantiation binds exactly one concrete kind.
//
// Callers still program against the capability set alone (signatures
// never name the concrete kind) but the compiler knows it, so calls are
// statically dispatched and a Convoy cannot mix kinds. Constructors such
// as Freighter return the same concrete type on every call; callers may
// not rely on which type that is, only on the capabilities it exposes.
package opaque

import "github.com/croften/dispatchlab/internal/vehicle"

// Freighter returns the fixed heavy-lift kind. Every call yields the same
// concrete type, so the result can be specialized at compile time.
func Freighter() vehicle.Airplane { return vehicle.Airplane{} }

// Courier returns the fixed ground kind.
func Courier() vehicle.Motorcycle { return vehicle.Motorcycle{} }

// Inspect reads the capability set with static dispatch. For any given
// instantiation V is one concrete kind; the vehicle.KindOf call is only
// for naming the result, not for choosing an implementation.
func Inspect[V vehicle.Vehicle](v V) vehicle.Observation {
	return vehicle.Observation{
		Kind:   vehicle.KindOf(v),
		CanFly: v.CanFly(),
		Weight: v.Weight(),
	}
}

// Convoy is a homogeneous collection: every element is the same concrete
// kind, enforced by the compiler at the call site.
type Convoy[V vehicle.Vehicle] []V

// NewConvoy builds a convoy of n copies of the given kind.
func NewConvoy[V vehicle.Vehicle](v V, n int) Convoy[V] {
	c := make(Convoy[V], n)
	for i := range c {
		c[i] = v
	}
	return c
}

// TotalWeight sums the convoy's weights. The element type is fixed, so
// every Weight call here binds to one method at compile time.
func (c Convoy[V]) TotalWeight() float64 {
	var total float64
	for _, v := range c {
		total += v.Weight()
	}
	return total
}

// Survey inspects each convoy element in order. Unlike the existential
// survey, every observation necessarily reports the same kind.
func (c Convoy[V]) Survey() []vehicle.Observation {
	obs := make([]vehicle.Observation, len(c))
	for i, v := range c {
		obs[i] = Inspect(v)
	}
	return obs
}

// Heaviest returns the heaviest of the given values. With a single
// concrete kind per instantiation the answer is a value of that kind,
// returned without boxing.
func Heaviest[V vehicle.Vehicle](vs []V) (V, bool) {
	var zero V
	if len(vs) == 0 {
		return zero, false
	}
	best := vs[0]
	for _, v := range vs[1:] {
		if v.Weight() > best.Weight() {
			best = v
		}
	}
	return best, true
}
