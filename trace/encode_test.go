package trace

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrace() *Trace {
	return &Trace{
		RunID: "run-42",
		Name:  "sample",
		Events: []Event{
			{Seq: 1, Turn: 0, Kind: KindChallenge, Payload: "ping"},
			{Seq: 2, Turn: 0, Kind: KindReaction, Payload: "pong"},
		},
	}
}

func TestMarshal_Decode_RoundTrip(t *testing.T) {
	data, err := Marshal(sampleTrace())
	require.NoError(t, err)

	got, err := Decode(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, sampleTrace(), got)
}

func TestMarshal_StableLayout(t *testing.T) {
	data, err := Marshal(sampleTrace())
	require.NoError(t, err)

	want := `run_id: run-42
name: sample
events:
  - seq: 1
    turn: 0
    kind: challenge
    payload: ping
  - seq: 2
    turn: 0
    kind: reaction
    payload: pong
`
	assert.Equal(t, want, string(data))
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	in := `run_id: run-42
event:
  - seq: 1
`
	_, err := Decode(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse trace")
}

func TestDecode_RejectsInvalidTrace(t *testing.T) {
	in := `run_id: run-42
events:
  - seq: 2
    turn: 0
    kind: challenge
    payload: ping
`
	_, err := Decode(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid trace")
}

func TestWriteFile_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.trace.yaml")

	require.NoError(t, WriteFile(path, sampleTrace()))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleTrace(), got)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read trace file")
}
