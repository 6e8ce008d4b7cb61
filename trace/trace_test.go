package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_StampsTotalOrder(t *testing.T) {
	r := NewRecorder("run-1")
	r.Challenge(0, "ping")
	r.Reaction(0, "pong")
	r.Reaction(0, "pong-again")
	r.Challenge(1, "ping")

	require.Equal(t, 4, r.Len())
	tr := r.Snapshot()
	require.NoError(t, tr.Validate())

	want := []Event{
		{Seq: 1, Turn: 0, Kind: KindChallenge, Payload: "ping"},
		{Seq: 2, Turn: 0, Kind: KindReaction, Payload: "pong"},
		{Seq: 3, Turn: 0, Kind: KindReaction, Payload: "pong-again"},
		{Seq: 4, Turn: 1, Kind: KindChallenge, Payload: "ping"},
	}
	assert.Equal(t, want, tr.Events)
	assert.Equal(t, "run-1", tr.RunID)
}

func TestRecorder_SnapshotIsIsolated(t *testing.T) {
	r := NewRecorder("run-1")
	r.Challenge(0, "a")

	snap := r.Snapshot()
	r.Reaction(0, "b")

	assert.Len(t, snap.Events, 1, "later recording must not leak into an earlier snapshot")
	assert.Len(t, r.Snapshot().Events, 2)
}

func TestRecorder_NormalizesPayloads(t *testing.T) {
	r := NewRecorder("run-1")
	// "é" once composed (U+00E9), once decomposed (e + U+0301).
	r.Challenge(0, "café")
	r.Reaction(0, "café")

	events := r.Snapshot().Events
	assert.Equal(t, events[0].Payload, events[1].Payload,
		"payloads are NFC-normalized so equal strings snapshot identically")
}

func TestRecorder_SetName(t *testing.T) {
	r := NewRecorder("run-1")
	r.SetName("echo-session")
	assert.Equal(t, "echo-session", r.Snapshot().Name)
}

func TestTrace_Validate(t *testing.T) {
	tests := []struct {
		name    string
		trace   Trace
		wantErr string
	}{
		{
			name:    "missing run id",
			trace:   Trace{},
			wantErr: "run_id is required",
		},
		{
			name: "bad kind",
			trace: Trace{RunID: "r", Events: []Event{
				{Seq: 1, Turn: 0, Kind: "observation", Payload: "x"},
			}},
			wantErr: `unknown kind "observation"`,
		},
		{
			name: "seq gap",
			trace: Trace{RunID: "r", Events: []Event{
				{Seq: 1, Turn: 0, Kind: KindChallenge, Payload: "x"},
				{Seq: 3, Turn: 0, Kind: KindReaction, Payload: "y"},
			}},
			wantErr: "breaks the total order",
		},
		{
			name: "turn going backwards",
			trace: Trace{RunID: "r", Events: []Event{
				{Seq: 1, Turn: 1, Kind: KindChallenge, Payload: "x"},
				{Seq: 2, Turn: 0, Kind: KindReaction, Payload: "y"},
			}},
			wantErr: "precedes turn",
		},
		{
			name: "valid",
			trace: Trace{RunID: "r", Events: []Event{
				{Seq: 1, Turn: 0, Kind: KindChallenge, Payload: "x"},
				{Seq: 2, Turn: 0, Kind: KindReaction, Payload: "y"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.trace.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestKind_Valid(t *testing.T) {
	assert.True(t, KindChallenge.Valid())
	assert.True(t, KindReaction.Valid())
	assert.False(t, Kind("verdict").Valid())
}
