package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/gavel/store"
)

// RunsOptions holds flags for the runs subcommands.
type RunsOptions struct {
	*RootOptions
	Database string
}

// NewRunsCommand creates the runs command group.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect the run archive",
		Long: `Inspect runs archived in a gavel SQLite database.

Example:
  gavel runs list --db ./gavel.db
  gavel runs show 0192f0c1-7b2a-7c3d-9e4f-5a6b7c8d9e0f --db ./gavel.db`,
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite run archive (required)")
	_ = cmd.MarkPersistentFlagRequired("db")

	cmd.AddCommand(newRunsListCommand(opts))
	cmd.AddCommand(newRunsShowCommand(opts))

	return cmd
}

func newRunsListCommand(opts *RunsOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List archived runs, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunsList(opts, cmd)
		},
	}
}

func newRunsShowCommand(opts *RunsOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <run-id>",
		Short:         "Show one archived run with its trace",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunsShow(opts, args[0], cmd)
		},
	}
}

// runSummary is the JSON shape for a single run in list/show output.
type runSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Verdict   string `json:"verdict"`
	Fault     string `json:"fault,omitempty"`
	Turns     int    `json:"turns"`
	CreatedAt string `json:"created_at"`
}

func summarize(rec store.RunRecord) runSummary {
	return runSummary{
		ID:        rec.ID,
		Name:      rec.Name,
		Verdict:   rec.Verdict,
		Fault:     rec.Fault,
		Turns:     rec.Turns,
		CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func runRunsList(opts *RunsOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open archive", err)
	}
	defer st.Close()

	recs, err := st.ListRuns(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}
	formatter.VerboseLog("found %d run(s) in %s", len(recs), opts.Database)

	if opts.Format == "json" {
		summaries := make([]runSummary, len(recs))
		for i, rec := range recs {
			summaries[i] = summarize(rec)
		}
		return formatter.Success(summaries)
	}

	if len(recs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs archived")
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-38s %-8s %-6s %-20s %s\n", "ID", "VERDICT", "TURNS", "CREATED", "NAME")
	for _, rec := range recs {
		fmt.Fprintf(&b, "%-38s %-8s %-6d %-20s %s\n",
			rec.ID, rec.Verdict, rec.Turns,
			rec.CreatedAt.UTC().Format(time.RFC3339), rec.Name)
	}
	fmt.Fprint(cmd.OutOrStdout(), b.String())
	return nil
}

func runRunsShow(opts *RunsOptions, id string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open archive", err)
	}
	defer st.Close()

	rec, err := st.GetRun(cmd.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("run %s not found", id), nil)
		return NewExitError(ExitFailure, "run not found")
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load run", err)
	}

	if opts.Format == "json" {
		return formatter.Success(struct {
			runSummary
			Events []traceEventView `json:"events"`
		}{summarize(rec), eventViews(rec)})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "run %s\n", rec.ID)
	if rec.Name != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  name:    %s\n", rec.Name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  verdict: %s\n", rec.Verdict)
	if rec.Fault != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  fault:   %s\n", rec.Fault)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  turns:   %d\n", rec.Turns)
	fmt.Fprintf(cmd.OutOrStdout(), "  created: %s\n", rec.CreatedAt.UTC().Format(time.RFC3339))
	for _, ev := range rec.Events {
		fmt.Fprintf(cmd.OutOrStdout(), "  [%4d] turn %-3d %-9s %s\n", ev.Seq, ev.Turn, ev.Kind, ev.Payload)
	}
	return nil
}

// traceEventView is the JSON shape for trace events in show output.
type traceEventView struct {
	Seq     int64  `json:"seq"`
	Turn    int    `json:"turn"`
	Kind    string `json:"kind"`
	Payload string `json:"payload"`
}

func eventViews(rec store.RunRecord) []traceEventView {
	views := make([]traceEventView, len(rec.Events))
	for i, ev := range rec.Events {
		views[i] = traceEventView{Seq: ev.Seq, Turn: ev.Turn, Kind: string(ev.Kind), Payload: ev.Payload}
	}
	return views
}
