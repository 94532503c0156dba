// internal/daily/daily.go
//
// Word of the day. A Schedule turns a calendar day into an index into the
// answer list, keyed by a salt so the order cannot be read off the list.
// Two players with the same answers, salt and zone see the same word.

// Package daily picks a deterministic answer per calendar day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/woxirdle/internal/game"
)

const dayLayout = "2006-01-02"

// Schedule assigns one answer to each calendar day.
type Schedule struct {
	Answers game.WordSet
	Salt    string
	Loc     *time.Location // nil means UTC
}

// Day returns the calendar day containing t in the schedule's zone.
func (s Schedule) Day(t time.Time) string {
	loc := s.Loc
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dayLayout)
}

// Word returns the answer for the day containing t. ok is false when the
// schedule has no answers.
func (s Schedule) Word(t time.Time) (word string, ok bool) {
	n := s.Answers.Len()
	if n == 0 {
		return "", false
	}
	return s.Answers.At(s.index(s.Day(t), n)), true
}

func (s Schedule) index(day string, n int) int {
	mac := hmac.New(sha256.New, []byte(s.Salt))
	mac.Write([]byte(day))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(n))
}
