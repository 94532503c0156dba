// internal/game/types.go
//
// Core type definitions for the word-guessing engine.
// Defines:
//   - Outcome: per-letter classification of a guess (correct/included/excluded).
//   - Status:  lifecycle of a single session (in progress/won/lost).
//   - Turn:    one accepted guess paired with its outcomes.
//   - Scoring: which evaluation rule a session applies.

package game

import "github.com/samber/lo"

// Outcome represents the evaluation result for a single letter in a guess.
// Possible values:
//   - Correct:  letter matches the answer at this position.
//   - Included: letter appears in the answer, but elsewhere.
//   - Excluded: letter does not appear in the answer.
type Outcome uint8

const (
	Excluded Outcome = iota
	Included
	Correct
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	}
	return "unknown"
}

// Status is the state of a session. The zero value is InProgress.
type Status uint8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Over reports whether s is terminal.
func (s Status) Over() bool { return s == Won || s == Lost }

// Turn is an immutable record of one accepted guess.
type Turn struct {
	word     string
	outcomes []Outcome
}

func newTurn(word string, outcomes []Outcome) Turn {
	return Turn{word: word, outcomes: append([]Outcome(nil), outcomes...)}
}

// Word returns the guessed word.
func (t Turn) Word() string { return t.word }

// Outcomes returns a copy of the per-position outcomes, left to right.
func (t Turn) Outcomes() []Outcome { return append([]Outcome(nil), t.outcomes...) }

// Letters pairs every rune of the guess with its outcome.
func (t Turn) Letters() []Letter {
	runes := []rune(t.word)
	out := make([]Letter, 0, len(t.outcomes))
	for i, o := range t.outcomes {
		out = append(out, Letter{Char: runes[i], Outcome: o})
	}
	return out
}

// Solved reports true if every outcome is Correct.
func (t Turn) Solved() bool {
	return lo.EveryBy(t.outcomes, func(o Outcome) bool { return o == Correct })
}

// Letter is a single guessed character tagged with its outcome.
type Letter struct {
	Char    rune
	Outcome Outcome
}

// Scoring selects the evaluation rule used by a Session.
type Scoring uint8

const (
	// ScoringLenient marks a letter Included whenever the answer contains it,
	// regardless of how many times it was already matched.
	ScoringLenient Scoring = iota
	// ScoringStrict lets each answer letter satisfy at most one guess letter,
	// with exact matches claimed first.
	ScoringStrict
)

func (s Scoring) String() string {
	switch s {
	case ScoringLenient:
		return "lenient"
	case ScoringStrict:
		return "strict"
	}
	return "unknown"
}

// ParseScoring maps a configuration name to a Scoring value.
func ParseScoring(name string) (Scoring, bool) {
	switch name {
	case "", "lenient":
		return ScoringLenient, true
	case "strict":
		return ScoringStrict, true
	}
	return ScoringLenient, false
}
