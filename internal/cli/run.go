package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/croften/dispatchlab/internal/runner"
	"github.com/croften/dispatchlab/internal/scenario"
	"github.com/croften/dispatchlab/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Database string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Execute a demonstration scenario",
		Long: `Execute a scenario: dispatch its fleet through the requested style,
evaluate the assertions, and print the resulting trace.

With --db the run and its trace are recorded in SQLite for later
inspection with the trace command.

Example:
  dispatchlab run scenarios/mixed_fleet.yaml
  dispatchlab run scenarios/fixed_convoy.yaml --db ./lab.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "record the trace in this SQLite database")

	return cmd
}

func runScenario(opts *RunOptions, path string, cmd *cobra.Command) error {
	f := formatter(opts.RootOptions, cmd)

	// Schema validation first, so a malformed file reports positions
	// instead of a decode error.
	if verrs := scenario.ValidateFile(path); len(verrs) > 0 {
		f.Error("scenario failed schema validation", verrs)
		return NewExitError(ExitFailure, "scenario failed schema validation")
	}

	scn, err := scenario.Load(path)
	if err != nil {
		f.Error(err.Error(), nil)
		return WrapExitError(ExitFailure, "failed to load scenario", err)
	}
	f.VerboseLog("loaded scenario %q (style=%s, fleet=%d, picks=%d)",
		scn.Name, scn.Style, len(scn.Fleet), scn.Picks)

	runOpts := runner.Options{Logger: slog.Default()}
	if opts.Database != "" {
		st, err := store.Open(opts.Database)
		if err != nil {
			f.Error(err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
		runOpts.Store = st
	}

	result, err := runner.Run(context.Background(), scn, runOpts)
	if err != nil {
		f.Error(err.Error(), nil)
		return WrapExitError(ExitCommandError, "scenario failed to execute", err)
	}

	if f.Format == "json" {
		if err := f.Success(result); err != nil {
			return err
		}
	} else {
		printResult(f, result)
	}

	if !result.Pass {
		return NewExitError(ExitFailure, "scenario assertions failed")
	}
	return nil
}

func printResult(f *OutputFormatter, result *runner.Result) {
	status := "PASS"
	if !result.Pass {
		status = "FAIL"
	}
	fmt.Fprintf(f.Writer, "%s run %s\n", status, result.RunID)
	for _, ev := range result.Trace {
		fmt.Fprintf(f.Writer, "  [%d] %-11s %-10s can_fly=%-5t weight=%g\n",
			ev.Seq, ev.Style, ev.Kind, ev.CanFly, ev.Weight)
	}
	for _, msg := range result.Errors {
		fmt.Fprintf(f.Writer, "  %s\n", msg)
	}
}
