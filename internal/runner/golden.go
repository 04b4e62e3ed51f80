package runner

import (
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/croften/dispatchlab/internal/scenario"
)

// RunWithGolden executes a scenario and compares its canonical trace
// against testdata/golden/{scenario.Name}.golden.
//
// Regenerate golden files with:
//
//	go test ./internal/runner -update
//
// Golden comparison only makes sense for scenarios whose trace is fully
// determined by the scenario file; seeded picks qualify, wall-clock ids
// do not, so the snapshot deliberately excludes the run id.
func RunWithGolden(t *testing.T, scn *scenario.Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(context.Background(), scn, Options{})
	if err != nil {
		return nil, err
	}

	traceJSON, err := result.Snapshot(scn).MarshalCanonical()
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scn.Name, traceJSON)

	return result, nil
}
