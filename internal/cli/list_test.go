package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/croften/dispatchlab/internal/vehicle"
)

func TestList_Text(t *testing.T) {
	out, err := executeCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "airplane")
	assert.Contains(t, out, "80000")
	assert.Contains(t, out, "motorcycle")
	assert.Contains(t, out, "200")
}

func TestList_JSON(t *testing.T) {
	out, err := executeCommand(t, "list", "--format", "json")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var observations []vehicle.Observation
	require.NoError(t, json.Unmarshal(raw, &observations))

	require.Len(t, observations, len(vehicle.Kinds()))
	byKind := make(map[string]vehicle.Observation)
	for _, obs := range observations {
		byKind[obs.Kind] = obs
	}
	assert.Equal(t, 80000.0, byKind[vehicle.KindAirplane].Weight)
	assert.True(t, byKind[vehicle.KindAirplane].CanFly)
	assert.Equal(t, 200.0, byKind[vehicle.KindMotorcycle].Weight)
	assert.False(t, byKind[vehicle.KindMotorcycle].CanFly)
}
