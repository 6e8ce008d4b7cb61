package gavel_test

import (
	"fmt"

	"github.com/roach88/gavel"
)

// The guessing game: the universe picks a number in [-1000, 1000] and the
// object must find it by bisection within ten guesses.

type hint struct {
	Kind  string // "start", "low", "high", "value"
	Guess int
}

type guessJudge struct {
	target int
	count  int
	begun  bool
}

func (j *guessJudge) Next(reactions []hint) (gavel.Judgment[hint, string], error) {
	if !j.begun {
		j.begun = true
		return gavel.Continue[hint, string](hint{Kind: "start"}), nil
	}
	if len(reactions) == 0 {
		return gavel.Halt[hint, string]("you can't just pass a turn"), nil
	}
	last := reactions[len(reactions)-1]
	j.count++
	if j.count > 10 {
		return gavel.Halt[hint, string](fmt.Sprintf("it was %d", j.target)), nil
	}
	switch {
	case last.Kind != "value":
		return gavel.Halt[hint, string](fmt.Sprintf("invalid reaction kind %q", last.Kind)), nil
	case last.Guess == j.target:
		return gavel.Done[hint, string](), nil
	case last.Guess < j.target:
		return gavel.Continue[hint, string](hint{Kind: "low"}), nil
	default:
		return gavel.Continue[hint, string](hint{Kind: "high"}), nil
	}
}

func ExampleRun() {
	lower, upper, current := -1000, 1000, 0
	bisect := func(observation hint) []hint {
		switch observation.Kind {
		case "low":
			lower = current
		case "high":
			upper = current
		}
		current = (lower + upper) / 2
		return []hint{{Kind: "value", Guess: current}}
	}

	outcome, err := gavel.Run[hint, string](&guessJudge{target: 42}, bisect)
	if err != nil {
		fmt.Println("judge error:", err)
		return
	}
	fmt.Printf("passed=%v turns=%d\n", outcome.Passed(), outcome.Turns)
	// Output: passed=true turns=9
}
