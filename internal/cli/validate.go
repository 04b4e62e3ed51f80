package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/croften/dispatchlab/internal/scenario"
)

// ValidationResult holds validation results for the validate command.
type ValidationResult struct {
	Valid  bool                       `json:"valid"`
	Files  int                        `json:"files"`
	Errors []scenario.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario.yaml>...",
		Short: "Validate scenario files against the schema",
		Long: `Validate scenario YAML files against the embedded CUE schema without
executing them. All files are checked and all violations reported.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	f := formatter(opts, cmd)

	result := ValidationResult{Valid: true, Files: len(paths)}
	for _, path := range paths {
		f.VerboseLog("validating %s", path)
		if verrs := scenario.ValidateFile(path); len(verrs) > 0 {
			result.Valid = false
			result.Errors = append(result.Errors, verrs...)
		}
	}

	if f.Format == "json" {
		if err := f.Success(result); err != nil {
			return err
		}
	} else if result.Valid {
		fmt.Fprintf(f.Writer, "OK: %d file(s) valid\n", result.Files)
	} else {
		for _, verr := range result.Errors {
			fmt.Fprintln(f.Writer, verr.Error())
		}
	}

	if !result.Valid {
		return NewExitError(ExitFailure, "scenario validation failed")
	}
	return nil
}
