// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Create sessions whose answer belongs to the validating word set.
//   - Validate and apply guesses (game not over, guess in the word set).
//   - Score guesses with the configured evaluator.
//   - Track state transitions: in progress -> won/lost.
//
// Notes:
//   - A session is owned by one caller and is not safe for concurrent use.
//   - The engine performs no I/O; every failure is returned to the caller.
package game

import "unicode/utf8"

// Session holds the state of one game.
type Session struct {
	answer   string
	words    WordSet
	scoring  Scoring
	turns    []Turn
	status   Status
	maxTurns int
}

// Option configures a Session.
type Option func(*Session)

// WithScoring selects the evaluation rule. The default is ScoringLenient.
func WithScoring(s Scoring) Option {
	return func(g *Session) { g.scoring = s }
}

// NewSession constructs a session for answer, validating guesses against words.
// It fails with *UnknownAnswerError if words does not contain answer.
//
// The session keeps its own copy of the WordSet header; the set's storage is
// immutable and shared, so it stays valid for the session's whole life.
func NewSession(answer string, words WordSet, opts ...Option) (*Session, error) {
	if !words.IsValid(answer) {
		return nil, &UnknownAnswerError{Answer: answer}
	}
	g := &Session{
		answer:   answer,
		words:    words,
		status:   InProgress,
		maxTurns: utf8.RuneCountInString(answer) + 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Submit validates and scores a guess, mutating the session state.
// Returns the recorded turn, or an error with the session left unchanged.
//
// Validation rules:
//   - Session must still be in progress (ErrGameOver).
//   - Guess must be in the word set (*InvalidGuessError).
//   - Guess must have the answer's length (*LengthMismatchError).
//
// State transitions:
//   - If all letters are Correct -> Won.
//   - Else if the number of turns reaches MaxTurns -> Lost.
func (g *Session) Submit(guess string) (Turn, error) {
	if g.status.Over() {
		return Turn{}, ErrGameOver
	}
	if !g.words.IsValid(guess) {
		return Turn{}, &InvalidGuessError{Word: guess}
	}
	outcomes, err := g.scoring.evaluator()(g.answer, guess)
	if err != nil {
		return Turn{}, err
	}

	t := newTurn(guess, outcomes)
	g.turns = append(g.turns, t)

	switch {
	case t.Solved():
		g.status = Won
	case len(g.turns) >= g.maxTurns:
		g.status = Lost
	}
	return t, nil
}

// Status reports the current state.
func (g *Session) Status() Status { return g.status }

// Turns returns the accepted turns in the order they were played.
func (g *Session) Turns() []Turn { return append([]Turn(nil), g.turns...) }

// LastTurn returns the most recent turn, or false before the first guess.
func (g *Session) LastTurn() (Turn, bool) {
	if len(g.turns) == 0 {
		return Turn{}, false
	}
	return g.turns[len(g.turns)-1], true
}

// Answer returns the solution word.
func (g *Session) Answer() string { return g.answer }

// MaxTurns is the number of guesses allowed: answer length plus one.
func (g *Session) MaxTurns() int { return g.maxTurns }

// Remaining is the number of guesses left before the session is lost.
func (g *Session) Remaining() int {
	if g.status.Over() {
		return 0
	}
	return g.maxTurns - len(g.turns)
}

// Scoring reports the evaluation rule in use.
func (g *Session) Scoring() Scoring { return g.scoring }
