// internal/game/errors.go
//
// Failures the engine reports to its caller. Each typed error matches its
// sentinel through errors.Is; the messages are shown to the player as-is.

package game

import (
	"errors"
	"fmt"
)

var (
	ErrLengthMismatch = errors.New("Guess is not the same length as answer!")
	ErrInvalidGuess   = errors.New("not a valid guess")
	ErrGameOver       = errors.New("Game is already over!")
	ErrUnknownAnswer  = errors.New("answer is not in the word set")
	ErrInvalidUTF8    = errors.New("word is not valid UTF-8")
)

// LengthMismatchError is returned by the evaluators when the guess and the
// answer differ in length.
type LengthMismatchError struct {
	Answer int // answer length in characters
	Guess  int // guess length in characters
}

func (e *LengthMismatchError) Error() string { return ErrLengthMismatch.Error() }

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }

// InvalidGuessError names a guess that the word set rejected.
type InvalidGuessError struct {
	Word string
}

func (e *InvalidGuessError) Error() string {
	return fmt.Sprintf("%s is not a valid guess!", e.Word)
}

func (e *InvalidGuessError) Is(target error) bool { return target == ErrInvalidGuess }

// UnknownAnswerError is returned by NewSession for an answer outside its word set.
type UnknownAnswerError struct {
	Answer string
}

func (e *UnknownAnswerError) Error() string {
	return fmt.Sprintf("answer %q is not in the word set", e.Answer)
}

func (e *UnknownAnswerError) Is(target error) bool { return target == ErrUnknownAnswer }
