// answer.go
//
// Choosing the secret word for a session.

package main

import (
	"errors"
	"time"

	"github.com/robalobadob/woxirdle/internal/config"
	"github.com/robalobadob/woxirdle/internal/daily"
	"github.com/robalobadob/woxirdle/internal/words"
)

var errNoAnswer = errors.New("no answer available")

// pickAnswer chooses the secret: a fixed answer if configured, the word of the
// day in daily mode, otherwise a random answer.
func pickAnswer(cfg *config.Config, lists *words.Lists, now time.Time) (string, error) {
	var (
		answer string
		ok     bool
	)
	switch {
	case cfg.Answer != "":
		answer, ok = words.Normalize(cfg.Answer), true
	case cfg.Daily:
		sched := daily.Schedule{Answers: lists.Answers, Salt: cfg.DailySalt, Loc: cfg.DailyLocation()}
		answer, ok = sched.Word(now)
	default:
		answer, ok = lists.Answers.RandomMember()
	}
	if !ok {
		return "", errNoAnswer
	}
	return answer, nil
}
