package cli

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/gavel/trace"
)

// traceSchema is the CUE contract a trace snapshot file must satisfy.
// Structural invariants that CUE cannot easily express (strictly increasing
// seq, non-decreasing turn) are checked by trace.Validate afterwards.
const traceSchema = `
#Kind: "challenge" | "reaction"

#Event: {
	seq:     int & >0
	turn:    int & >=0
	kind:    #Kind
	payload: string
}

#Trace: {
	run_id: string & !=""
	name?:  string
	events: [...#Event]
}
`

// ValidationError is one problem found in a trace file.
type ValidationError struct {
	Message string `json:"message"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

func newTraceValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <trace-file>",
		Short: "Validate a trace snapshot against the trace schema",
		Long: `Validate a YAML trace snapshot file.

The file is first checked against the CUE trace schema (field names, types,
value constraints), then against the trace's ordering invariants.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraceValidate(rootOpts, args[0], cmd)
		},
	}
}

func runTraceValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read trace file", err)
	}

	validationErrors := validateTraceBytes(data)
	formatter.VerboseLog("checked %s against trace schema", path)

	if len(validationErrors) > 0 {
		result := ValidationResult{Valid: false, Errors: validationErrors}
		if opts.Format == "json" {
			_ = formatter.Success(result)
		} else {
			for _, ve := range validationErrors {
				fmt.Fprintf(cmd.OutOrStdout(), "invalid: %s\n", ve.Message)
			}
		}
		return NewExitError(ExitFailure, fmt.Sprintf("trace file %s is invalid", path))
	}

	if opts.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid trace\n", path)
	return nil
}

// validateTraceBytes checks raw YAML bytes against the CUE schema and the
// trace package's structural invariants. Returns all problems found.
func validateTraceBytes(data []byte) []ValidationError {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []ValidationError{{Message: fmt.Sprintf("not YAML: %v", err)}}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(traceSchema).LookupPath(cue.ParsePath("#Trace"))
	if err := schema.Err(); err != nil {
		// The schema is a compiled-in constant; failing to build it is a bug.
		return []ValidationError{{Message: fmt.Sprintf("internal: trace schema: %v", err)}}
	}

	value := ctx.Encode(doc)
	if err := value.Err(); err != nil {
		return []ValidationError{{Message: fmt.Sprintf("cannot encode document: %v", err)}}
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		var out []ValidationError
		for _, e := range cueerrors.Errors(err) {
			out = append(out, ValidationError{Message: e.Error()})
		}
		return out
	}

	// Schema passed; now the ordering invariants.
	var t trace.Trace
	if err := yaml.Unmarshal(data, &t); err != nil {
		return []ValidationError{{Message: fmt.Sprintf("not a trace: %v", err)}}
	}
	if err := t.Validate(); err != nil {
		return []ValidationError{{Message: err.Error()}}
	}
	return nil
}
