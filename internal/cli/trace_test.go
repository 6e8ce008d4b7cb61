package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gavel/trace"
)

func writeSampleTrace(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "echo.trace.yaml")
	tr := &trace.Trace{
		RunID: "run-echo",
		Name:  "echo-session",
		Events: []trace.Event{
			{Seq: 1, Turn: 0, Kind: trace.KindChallenge, Payload: "echo-0"},
			{Seq: 2, Turn: 0, Kind: trace.KindReaction, Payload: "echo-0"},
		},
	}
	require.NoError(t, trace.WriteFile(path, tr))
	return path
}

func TestTraceShow_Text(t *testing.T) {
	path := writeSampleTrace(t)

	out, err := execute(t, "trace", "show", path)
	require.NoError(t, err)

	assert.Contains(t, out, "trace run-echo")
	assert.Contains(t, out, "echo-session")
	assert.Contains(t, out, "challenge")
	assert.Contains(t, out, "echo-0")
}

func TestTraceShow_JSON(t *testing.T) {
	path := writeSampleTrace(t)

	out, err := execute(t, "trace", "show", path, "--format", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"status":"ok"`)
	assert.Contains(t, out, `"run_id":"run-echo"`)
}

func TestTraceShow_MissingFile(t *testing.T) {
	_, err := execute(t, "trace", "show", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTraceValidate_ValidFile(t *testing.T) {
	path := writeSampleTrace(t)

	out, err := execute(t, "trace", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is a valid trace")
}

func TestTraceValidate_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.trace.yaml")
	bad := `run_id: run-echo
events:
  - seq: 1
    turn: 0
    kind: verdict
    payload: nope
`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	out, err := execute(t, "trace", "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "invalid:")
}

func TestTraceValidate_OrderViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gap.trace.yaml")
	gap := `run_id: run-echo
events:
  - seq: 1
    turn: 0
    kind: challenge
    payload: a
  - seq: 3
    turn: 0
    kind: reaction
    payload: b
`
	require.NoError(t, os.WriteFile(path, []byte(gap), 0o644))

	out, err := execute(t, "trace", "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "breaks the total order")
}

func TestValidateTraceBytes(t *testing.T) {
	t.Run("not yaml", func(t *testing.T) {
		errs := validateTraceBytes([]byte("run_id: [unclosed"))
		require.NotEmpty(t, errs)
		assert.Contains(t, errs[0].Message, "not YAML")
	})

	t.Run("missing run id", func(t *testing.T) {
		errs := validateTraceBytes([]byte("events: []\n"))
		assert.NotEmpty(t, errs)
	})

	t.Run("valid", func(t *testing.T) {
		doc := `run_id: r
events:
  - seq: 1
    turn: 0
    kind: challenge
    payload: hi
`
		assert.Empty(t, validateTraceBytes([]byte(doc)))
	})
}
