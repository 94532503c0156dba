package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/woxirdle/internal/game"
)

var answers = game.NewWordSet([]string{"crane", "slate", "trace", "toast", "lemon", "melon", "brick"})

func TestScheduleDay(t *testing.T) {
	plus10 := time.FixedZone("UTC+10", 10*60*60)
	at := time.Date(2026, 10, 19, 5, 0, 0, 0, plus10)

	tests := []struct {
		name string
		loc  *time.Location
		want string
	}{
		{name: "nil zone is UTC", loc: nil, want: "2026-10-18"},
		{name: "utc", loc: time.UTC, want: "2026-10-18"},
		{name: "local zone", loc: plus10, want: "2026-10-19"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Schedule{Loc: tt.loc}.Day(at))
		})
	}
}

func TestScheduleWordStableWithinDay(t *testing.T) {
	s := Schedule{Answers: answers, Salt: "salt"}
	morning := time.Date(2026, 10, 19, 0, 0, 1, 0, time.UTC)
	night := time.Date(2026, 10, 19, 23, 59, 59, 0, time.UTC)

	a, ok := s.Word(morning)
	require.True(t, ok)
	b, ok := s.Word(night)
	require.True(t, ok)
	assert.Equal(t, a, b)
	assert.True(t, answers.IsValid(a))
}

func TestScheduleWordVaries(t *testing.T) {
	s := Schedule{Answers: answers, Salt: "salt"}
	day := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	seen := map[string]bool{}
	for i := 0; i < 60; i++ {
		w, ok := s.Word(day.AddDate(0, 0, i))
		require.True(t, ok)
		require.True(t, answers.IsValid(w))
		seen[w] = true
	}
	assert.Greater(t, len(seen), 1, "sixty days should not all share one word")

	other := Schedule{Answers: answers, Salt: "pepper"}
	differ := false
	for i := 0; i < 60 && !differ; i++ {
		a, _ := s.Word(day.AddDate(0, 0, i))
		b, _ := other.Word(day.AddDate(0, 0, i))
		differ = a != b
	}
	assert.True(t, differ, "salt should change the order")
}

func TestScheduleWordEmpty(t *testing.T) {
	w, ok := Schedule{}.Word(time.Now())
	assert.False(t, ok)
	assert.Empty(t, w)

	one := Schedule{Answers: game.NewWordSet([]string{"crane"})}
	w, ok = one.Word(time.Now())
	assert.True(t, ok)
	assert.Equal(t, "crane", w)
}
