package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_KnownKinds(t *testing.T) {
	v, err := New(KindAirplane)
	require.NoError(t, err)
	assert.True(t, v.CanFly())
	assert.Equal(t, AirplaneWeightKg, v.Weight())

	v, err = New(KindMotorcycle)
	require.NoError(t, err)
	assert.False(t, v.CanFly())
	assert.Equal(t, MotorcycleWeightKg, v.Weight())
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New("submarine")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), "submarine")
}

func TestKinds_Sorted(t *testing.T) {
	kinds := Kinds()
	require.GreaterOrEqual(t, len(kinds), 2)
	assert.IsNonDecreasing(t, kinds)
	assert.Contains(t, kinds, KindAirplane)
	assert.Contains(t, kinds, KindMotorcycle)
}

// tricycle is a test-only kind used to exercise registry extension.
type tricycle struct{}

func (tricycle) CanFly() bool    { return false }
func (tricycle) Weight() float64 { return 12.5 }

func TestRegister_ExtendsRegistry(t *testing.T) {
	require.NoError(t, Register("tricycle", func() Vehicle { return tricycle{} }))
	defer Unregister("tricycle")

	v, err := New("tricycle")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v.Weight())

	// KindOf recovers the registered name via the dynamic type.
	assert.Equal(t, "tricycle", KindOf(v))
	assert.Contains(t, Kinds(), "tricycle")
}

func TestRegister_Duplicate(t *testing.T) {
	err := Register(KindAirplane, func() Vehicle { return Airplane{} })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKind)
}

func TestRegister_Invalid(t *testing.T) {
	assert.Error(t, Register("", func() Vehicle { return Airplane{} }))
	assert.Error(t, Register("glider", nil))
}

func TestKindOf_BuiltinKinds(t *testing.T) {
	assert.Equal(t, KindAirplane, KindOf(Airplane{}))
	assert.Equal(t, KindMotorcycle, KindOf(Motorcycle{}))
}

func TestExpected(t *testing.T) {
	obs, err := Expected(KindAirplane)
	require.NoError(t, err)
	assert.Equal(t, Observation{Kind: KindAirplane, CanFly: true, Weight: 80000.0}, obs)

	obs, err = Expected(KindMotorcycle)
	require.NoError(t, err)
	assert.Equal(t, Observation{Kind: KindMotorcycle, CanFly: false, Weight: 200.0}, obs)

	_, err = Expected("submarine")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
