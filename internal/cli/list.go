package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/croften/dispatchlab/internal/existential"
	"github.com/croften/dispatchlab/internal/vehicle"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered vehicle kinds",
		Long: `List every registered vehicle kind with its fixed attribute values.

The listing itself is an existential survey: the loop below handles all
kinds through the one interface type, whatever they are.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	fleet, err := existential.Assemble(vehicle.Kinds()...)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to assemble registry fleet", err)
	}
	observations := existential.Survey(fleet)

	f := formatter(opts, cmd)
	if f.Format == "json" {
		return f.Success(observations)
	}

	w := tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tCAN_FLY\tWEIGHT_KG")
	for _, obs := range observations {
		fmt.Fprintf(w, "%s\t%t\t%g\n", obs.Kind, obs.CanFly, obs.Weight)
	}
	return w.Flush()
}
