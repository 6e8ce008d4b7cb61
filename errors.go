package gavel

import (
	"errors"
	"fmt"
)

// TurnLimitError is returned by Run when a run exceeds the bound set with
// WithMaxTurns. It terminates the run without an Outcome: an unbounded run
// is an environmental failure, not a verdict about the object.
type TurnLimitError struct {
	RunID string // The run that exceeded the bound
	Turns int    // Turns completed when the bound tripped
	Limit int    // The configured bound
}

// Error implements the error interface.
func (e *TurnLimitError) Error() string {
	return fmt.Sprintf("run %s exceeded max turns: %d turns >= %d limit",
		e.RunID, e.Turns, e.Limit)
}

// IsTurnLimit reports whether the error is a TurnLimitError.
// Uses errors.As to handle wrapped errors.
func IsTurnLimit(err error) bool {
	var te *TurnLimitError
	return errors.As(err, &te)
}
