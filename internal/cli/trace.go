package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/croften/dispatchlab/internal/store"
	"github.com/croften/dispatchlab/internal/trace"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
}

// RunTrace pairs a recorded run with its events for JSON output.
type RunTrace struct {
	Run    store.Run     `json:"run"`
	Events []trace.Event `json:"events"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace [run-id]",
		Short: "Inspect recorded runs",
		Long: `List recorded runs, or dump one run's trace when a run id is given.

Example:
  dispatchlab trace --db ./lab.db
  dispatchlab trace --db ./lab.db 0190f8a2-... --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := ""
			if len(args) == 1 {
				runID = args[0]
			}
			return runTrace(opts, runID, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runTrace(opts *TraceOptions, runID string, cmd *cobra.Command) error {
	f := formatter(opts.RootOptions, cmd)

	st, err := store.Open(opts.Database)
	if err != nil {
		f.Error(err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	ctx := context.Background()

	if runID == "" {
		return listRuns(ctx, f, st)
	}
	return dumpRun(ctx, f, st, runID)
}

func listRuns(ctx context.Context, f *OutputFormatter, st *store.Store) error {
	runs, err := st.ListRuns(ctx)
	if err != nil {
		f.Error(err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	if f.Format == "json" {
		return f.Success(runs)
	}

	w := tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN_ID\tSCENARIO\tSTYLE\tSEED\tCREATED_AT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			run.ID, run.Scenario, run.Style, run.Seed, run.CreatedAt)
	}
	return w.Flush()
}

func dumpRun(ctx context.Context, f *OutputFormatter, st *store.Store, runID string) error {
	run, err := st.GetRun(ctx, runID)
	if err != nil {
		f.Error(err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}
	events, err := st.ReadEvents(ctx, runID)
	if err != nil {
		f.Error(err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read events", err)
	}

	if f.Format == "json" {
		return f.Success(RunTrace{Run: run, Events: events})
	}

	fmt.Fprintf(f.Writer, "run %s scenario=%s style=%s seed=%d\n",
		run.ID, run.Scenario, run.Style, run.Seed)
	for _, ev := range events {
		fmt.Fprintf(f.Writer, "  [%d] %-11s %-10s can_fly=%-5t weight=%g\n",
			ev.Seq, ev.Style, ev.Kind, ev.CanFly, ev.Weight)
	}
	return nil
}
