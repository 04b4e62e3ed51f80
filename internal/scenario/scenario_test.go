package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/croften/dispatchlab/internal/trace"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeScenario(t, `
name: mixed_demo
description: "A small mixed fleet"
style: existential
seed: 7
fleet:
  - airplane
  - motorcycle
picks: 2
assertions:
  - type: observed
    kind: airplane
  - type: kind_count
    kind: motorcycle
    count: 1
  - type: order
    kinds: [airplane, motorcycle]
  - type: deterministic
`)

	scn, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mixed_demo", scn.Name)
	assert.Equal(t, trace.StyleExistential, scn.Style)
	assert.Equal(t, uint64(7), scn.Seed)
	assert.Equal(t, []string{"airplane", "motorcycle"}, scn.Fleet)
	assert.Equal(t, 2, scn.Picks)
	require.Len(t, scn.Assertions, 4)
	assert.Equal(t, "observed", scn.Assertions[0].Type)
	assert.Equal(t, []string{"airplane", "motorcycle"}, scn.Assertions[2].Kinds)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse("test.yaml", []byte(`
name: typo_demo
description: "unknown field should be rejected"
style: opaque
flet: [motorcycle]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flet")
}

func TestParse_StructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing name",
			yaml:    "description: d\nstyle: opaque\nfleet: [motorcycle]\n",
			wantErr: "name is required",
		},
		{
			name:    "bad style",
			yaml:    "name: s\ndescription: d\nstyle: dynamic\nfleet: [motorcycle]\n",
			wantErr: "style must be",
		},
		{
			name:    "picks with opaque",
			yaml:    "name: s\ndescription: d\nstyle: opaque\nfleet: [motorcycle]\npicks: 3\n",
			wantErr: "picks require the existential style",
		},
		{
			name:    "observes nothing",
			yaml:    "name: s\ndescription: d\nstyle: existential\n",
			wantErr: "observes nothing",
		},
		{
			name:    "observed without kind",
			yaml:    "name: s\ndescription: d\nstyle: existential\nfleet: [airplane]\nassertions:\n  - type: observed\n",
			wantErr: "observed assertion requires kind",
		},
		{
			name:    "order with one kind",
			yaml:    "name: s\ndescription: d\nstyle: existential\nfleet: [airplane]\nassertions:\n  - type: order\n    kinds: [airplane]\n",
			wantErr: "at least two kinds",
		},
		{
			name:    "unknown assertion",
			yaml:    "name: s\ndescription: d\nstyle: existential\nfleet: [airplane]\nassertions:\n  - type: sorted\n",
			wantErr: "unknown assertion type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test.yaml", []byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
