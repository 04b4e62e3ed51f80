package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/croften/dispatchlab/internal/runner"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const passingScenario = `
name: cli_demo
description: "Mixed fleet for CLI tests"
style: existential
seed: 1
fleet:
  - airplane
  - motorcycle
assertions:
  - type: observed
    kind: airplane
  - type: kind_count
    kind: motorcycle
    count: 1
  - type: deterministic
`

func TestRunCommand_Pass(t *testing.T) {
	path := writeScenarioFile(t, passingScenario)

	out, err := executeCommand(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS run ")
	assert.Contains(t, out, "airplane")
	assert.Contains(t, out, "motorcycle")
}

func TestRunCommand_JSON(t *testing.T) {
	path := writeScenarioFile(t, passingScenario)

	out, err := executeCommand(t, "run", path, "--format", "json")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	require.Equal(t, "ok", resp.Status)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result runner.Result
	require.NoError(t, json.Unmarshal(raw, &result))

	assert.True(t, result.Pass)
	require.Len(t, result.Trace, 2)
	assert.Equal(t, "airplane", result.Trace[0].Kind)
}

func TestRunCommand_FailingAssertion(t *testing.T) {
	path := writeScenarioFile(t, `
name: cli_fail
description: "Assertion that cannot hold"
style: opaque
fleet:
  - motorcycle
assertions:
  - type: kind_count
    kind: airplane
    count: 1
`)

	out, err := executeCommand(t, "run", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "FAIL run ")
}

func TestRunCommand_SchemaViolation(t *testing.T) {
	path := writeScenarioFile(t, `
name: Bad-Name
description: "Name violates the schema pattern"
style: existential
fleet: [airplane]
`)

	_, err := executeCommand(t, "run", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "schema validation")
}

func TestRunCommand_MissingFile(t *testing.T) {
	_, err := executeCommand(t, "run", "/nonexistent/scenario.yaml")
	require.Error(t, err)
}

func TestRunCommand_RecordsToDatabase(t *testing.T) {
	path := writeScenarioFile(t, passingScenario)
	db := filepath.Join(t.TempDir(), "lab.db")

	_, err := executeCommand(t, "run", path, "--db", db)
	require.NoError(t, err)
	assert.FileExists(t, db)
}
