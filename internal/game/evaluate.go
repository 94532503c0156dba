// internal/game/evaluate.go
//
// Guess evaluation: one Outcome per letter of the guess.
//   - Evaluate:       the lenient rule, letters are never used up.
//   - EvaluateStrict: every answer letter backs at most one mark.
//
// Both work on characters (runes) and refuse input that is not valid UTF-8,
// since distinct invalid bytes would all decode to U+FFFD and compare equal.

package game

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Evaluate compares guess against answer position by position:
//
//   - same letter at the same position      -> Correct
//   - letter occurs anywhere in the answer  -> Included
//   - otherwise                             -> Excluded
//
// Occurrences are not consumed, so a guess with a repeated letter may receive
// more Included marks than the answer has copies of it. Lengths are compared in
// characters; a mismatch yields *LengthMismatchError and no outcomes.
func Evaluate(answer, guess string) ([]Outcome, error) {
	a, g, err := decode(answer, guess)
	if err != nil {
		return nil, err
	}

	res := make([]Outcome, 0, len(g))
	for i, r := range g {
		switch {
		case r == a[i]:
			res = append(res, Correct)
		case strings.ContainsRune(answer, r):
			res = append(res, Included)
		default:
			res = append(res, Excluded)
		}
	}
	return checked(res, len(a))
}

// EvaluateStrict scores like Evaluate, except that an answer letter can back
// only one mark. Positions that match exactly take their letters first; the
// letters left over are then handed out left to right, and a guess letter
// that finds none of its kind remaining is Excluded.
func EvaluateStrict(answer, guess string) ([]Outcome, error) {
	a, g, err := decode(answer, guess)
	if err != nil {
		return nil, err
	}

	res := make([]Outcome, len(g))
	hit := make([]bool, len(g))
	counts := make(map[rune]int, len(a))

	for i := range g {
		if g[i] == a[i] {
			res[i] = Correct
			hit[i] = true
		} else {
			counts[a[i]]++
		}
	}

	for i, r := range g {
		if hit[i] {
			continue
		}
		if counts[r] > 0 {
			res[i] = Included
			counts[r]--
		} else {
			res[i] = Excluded
		}
	}
	return checked(res, len(a))
}

// decode splits both words into runes after checking encoding and length.
func decode(answer, guess string) ([]rune, []rune, error) {
	if !utf8.ValidString(answer) || !utf8.ValidString(guess) {
		return nil, nil, ErrInvalidUTF8
	}
	a, g := []rune(answer), []rune(guess)
	if len(a) != len(g) {
		return nil, nil, &LengthMismatchError{Answer: len(a), Guess: len(g)}
	}
	return a, g, nil
}

// evaluator returns the evaluation function for s.
func (s Scoring) evaluator() func(answer, guess string) ([]Outcome, error) {
	switch s {
	case ScoringStrict:
		return EvaluateStrict
	case ScoringLenient:
		return Evaluate
	}
	return Evaluate
}

// checked guards the one-outcome-per-position invariant.
func checked(res []Outcome, want int) ([]Outcome, error) {
	if len(res) != want {
		return nil, fmt.Errorf("evaluate: produced %d outcomes for %d letters", len(res), want)
	}
	return res, nil
}
