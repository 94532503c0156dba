// internal/game/wordset.go
//
// WordSet is the immutable, fixed-length word list a session validates
// guesses against. It is the only place in the engine that draws randomness.

package game

import (
	"unicode/utf8"

	"lukechampine.com/frand"
)

// WordSet is an ordered, read-only collection of words.
// Copies of a WordSet share storage; nothing mutates it after construction.
type WordSet struct {
	words []string
	index map[string]struct{}
	rand  func(n int) int
}

// NewWordSet copies words into a new set. Order is preserved, duplicates are kept
// as given (membership is unaffected by them).
func NewWordSet(words []string) WordSet {
	ws := WordSet{
		words: append([]string(nil), words...),
		index: make(map[string]struct{}, len(words)),
		rand:  frand.Intn,
	}
	for _, w := range ws.words {
		ws.index[w] = struct{}{}
	}
	return ws
}

// WithSource returns a copy of the set that draws RandomMember indices from fn.
// fn must return a value in [0, n).
func (ws WordSet) WithSource(fn func(n int) int) WordSet {
	ws.rand = fn
	return ws
}

// IsValid reports whether word is in the set. Matching is exact and case-sensitive.
func (ws WordSet) IsValid(word string) bool {
	_, ok := ws.index[word]
	return ok
}

// RandomMember returns a uniformly chosen word, or false if the set is empty.
func (ws WordSet) RandomMember() (string, bool) {
	if len(ws.words) == 0 {
		return "", false
	}
	pick := ws.rand
	if pick == nil {
		pick = frand.Intn
	}
	return ws.words[pick(len(ws.words))], true
}

// Len returns the number of words in the set.
func (ws WordSet) Len() int { return len(ws.words) }

// At returns the i-th word.
func (ws WordSet) At(i int) string { return ws.words[i] }

// Words returns a copy of the underlying sequence.
func (ws WordSet) Words() []string { return append([]string(nil), ws.words...) }

// WordLength returns the length in characters of the first word, 0 when empty.
func (ws WordSet) WordLength() int {
	if len(ws.words) == 0 {
		return 0
	}
	return utf8.RuneCountInString(ws.words[0])
}
