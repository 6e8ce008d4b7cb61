package trace

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Encode writes the trace to w as YAML with a stable layout (two-space
// indent), suitable for golden files and version control.
func Encode(w io.Writer, t *Trace) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	return nil
}

// Marshal renders the trace to its canonical YAML byte form.
func Marshal(t *Trace) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a YAML trace from r with strict field validation (unknown
// fields are rejected, catching typos like "event:" for "events:") and
// checks the trace's structural invariants.
func Decode(r io.Reader) (*Trace, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var t Trace
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("parse trace: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid trace: %w", err)
	}
	return &t, nil
}

// WriteFile encodes the trace to the named file.
func WriteFile(path string, t *Trace) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write trace file: %w", err)
	}
	return nil
}

// ReadFile decodes a trace from the named file.
func ReadFile(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read trace file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
