// Package vehicle defines the capability set shared by every concrete
// vehicle kind, the built-in kinds, and the registry that names them.
//
// The capability set is deliberately tiny: two readable attributes and no
// mutation. Everything interesting in this repository is about HOW callers
// reach these attributes, through a runtime-dispatched interface value
// (package existential) or through a compile-time type parameter bound to
// the same set (package opaque), not about the attributes themselves.
package vehicle

// Vehicle is the capability set a concrete kind must provide.
type Vehicle interface {
	// CanFly reports whether the vehicle leaves the ground.
	CanFly() bool

	// Weight returns the vehicle's operating weight in kilograms.
	Weight() float64
}

// Fixed attribute values for the built-in kinds. Assertions and the
// demonstration scenarios rely on these never changing at runtime.
const (
	AirplaneWeightKg   = 80000.0
	MotorcycleWeightKg = 200.0
)

// Airplane is the airborne implementer of the capability set.
type Airplane struct{}

func (Airplane) CanFly() bool    { return true }
func (Airplane) Weight() float64 { return AirplaneWeightKg }

// Motorcycle stays on the ground.
type Motorcycle struct{}

func (Motorcycle) CanFly() bool    { return false }
func (Motorcycle) Weight() float64 { return MotorcycleWeightKg }

// Observation is one reading of the capability set: the attribute values a
// caller saw, plus the concrete kind that produced them. Both dispatch
// styles report their results as Observations so they can be compared
// directly.
type Observation struct {
	Kind   string  `json:"kind"`
	CanFly bool    `json:"can_fly"`
	Weight float64 `json:"weight"`
}
