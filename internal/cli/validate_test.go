package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Valid(t *testing.T) {
	path := writeScenarioFile(t, passingScenario)

	out, err := executeCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK: 1 file(s) valid")
}

func TestValidateCommand_Invalid(t *testing.T) {
	path := writeScenarioFile(t, `
name: s
description: "bad style"
style: dynamic
fleet: [airplane]
`)

	out, err := executeCommand(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.NotEmpty(t, out)
}

func TestValidateCommand_JSON(t *testing.T) {
	good := writeScenarioFile(t, passingScenario)

	out, err := executeCommand(t, "validate", good, "--format", "json")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	require.Equal(t, "ok", resp.Status)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result ValidationResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.True(t, result.Valid)
	assert.Equal(t, 1, result.Files)
}

func TestValidateCommand_RequiresArgs(t *testing.T) {
	_, err := executeCommand(t, "validate")
	require.Error(t, err)
}
