package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/croften/dispatchlab/internal/existential"
	"github.com/croften/dispatchlab/internal/runner"
	"github.com/croften/dispatchlab/internal/vehicle"
)

// ShowResult reports one kind observed through both dispatch styles.
type ShowResult struct {
	Kind        string              `json:"kind"`
	Existential vehicle.Observation `json:"existential"`
	Opaque      vehicle.Observation `json:"opaque"`
	Agree       bool                `json:"agree"`
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <kind>",
		Short: "Inspect one kind through both dispatch styles",
		Long: `Inspect a vehicle kind through the existential path (interface value,
runtime dispatch) and the opaque path (generic instantiation, static
dispatch), and report whether the two observations agree. They always
should: the styles differ in when the concrete type is known, never in
what the capability set reports.

Example:
  dispatchlab show airplane
  dispatchlab show motorcycle --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}
}

func runShow(opts *RootOptions, kind string, cmd *cobra.Command) error {
	f := formatter(opts, cmd)

	v, err := vehicle.New(kind)
	if err != nil {
		f.Error(err.Error(), map[string]any{"known_kinds": vehicle.Kinds()})
		return WrapExitError(ExitCommandError, "unknown kind", err)
	}

	ext := existential.Inspect(v)
	opq, err := runner.ObserveOpaque(kind)
	if err != nil {
		f.Error(err.Error(), nil)
		return WrapExitError(ExitCommandError, "no opaque instantiation", err)
	}

	result := ShowResult{
		Kind:        kind,
		Existential: ext,
		Opaque:      opq,
		Agree:       ext == opq,
	}

	if f.Format == "json" {
		return f.Success(result)
	}

	fmt.Fprintf(f.Writer, "kind: %s\n", result.Kind)
	fmt.Fprintf(f.Writer, "existential: can_fly=%t weight=%g (concrete type recovered at use)\n",
		ext.CanFly, ext.Weight)
	fmt.Fprintf(f.Writer, "opaque:      can_fly=%t weight=%g (concrete type fixed at compile time)\n",
		opq.CanFly, opq.Weight)
	fmt.Fprintf(f.Writer, "agree: %t\n", result.Agree)
	return nil
}
