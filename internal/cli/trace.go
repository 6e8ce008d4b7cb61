package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/gavel/trace"
)

// NewTraceCommand creates the trace command group.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Inspect and validate trace snapshot files",
		Long: `Work with YAML trace snapshots written by the harness.

Example:
  gavel trace show  ./testdata/echo.trace.yaml
  gavel trace validate ./testdata/echo.trace.yaml`,
	}

	cmd.AddCommand(newTraceShowCommand(rootOpts))
	cmd.AddCommand(newTraceValidateCommand(rootOpts))

	return cmd
}

func newTraceShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <trace-file>",
		Short:         "Pretty-print a trace snapshot",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraceShow(rootOpts, args[0], cmd)
		},
	}
}

func runTraceShow(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	t, err := trace.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read trace", err)
	}
	formatter.VerboseLog("loaded %d event(s) from %s", len(t.Events), path)

	if opts.Format == "json" {
		return formatter.Success(t)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "trace %s\n", t.RunID)
	if t.Name != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  name: %s\n", t.Name)
	}
	for _, ev := range t.Events {
		fmt.Fprintf(cmd.OutOrStdout(), "  [%4d] turn %-3d %-9s %s\n", ev.Seq, ev.Turn, ev.Kind, ev.Payload)
	}
	return nil
}
