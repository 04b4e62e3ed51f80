package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventID_Stable(t *testing.T) {
	ev := Event{Seq: 1, Style: StyleExistential, Kind: "airplane", CanFly: true, Weight: 80000.0}

	a, err := ev.ID()
	require.NoError(t, err)
	b, err := ev.ID()
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // hex-encoded SHA-256
}

func TestEventID_SensitiveToFields(t *testing.T) {
	base := Event{Seq: 1, Style: StyleExistential, Kind: "airplane", CanFly: true, Weight: 80000.0}
	baseID, err := base.ID()
	require.NoError(t, err)

	variants := []Event{
		{Seq: 2, Style: StyleExistential, Kind: "airplane", CanFly: true, Weight: 80000.0},
		{Seq: 1, Style: StyleOpaque, Kind: "airplane", CanFly: true, Weight: 80000.0},
		{Seq: 1, Style: StyleExistential, Kind: "motorcycle", CanFly: true, Weight: 80000.0},
		{Seq: 1, Style: StyleExistential, Kind: "airplane", CanFly: false, Weight: 80000.0},
		{Seq: 1, Style: StyleExistential, Kind: "airplane", CanFly: true, Weight: 200.0},
	}
	for i, v := range variants {
		id, err := v.ID()
		require.NoError(t, err)
		assert.NotEqual(t, baseID, id, "variant %d should hash differently", i)
	}
}

func TestHashWithDomain_SeparatorMatters(t *testing.T) {
	// "ab" + "c" and "a" + "bc" must not collide across the boundary.
	assert.NotEqual(t,
		hashWithDomain("ab", []byte("c")),
		hashWithDomain("a", []byte("bc")),
	)
}
