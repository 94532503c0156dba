// internal/render/render.go
//
// Terminal presentation of turns and game messages.
//   - Correct  -> green background
//   - Included -> yellow background
//   - Excluded -> red background
//
// Without color, letters are bracketed instead: [c] correct, (c) included,
// and  c  (padded) excluded.

package render

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/woxirdle/internal/game"
)

const (
	bgGreen  = "\x1b[42m"
	bgYellow = "\x1b[43m"
	bgRed    = "\x1b[41m"
	reset    = "\x1b[0m"

	// clearPrev moves to the start of the previous line and erases it.
	clearPrev = "\x1b[1F\x1b[2K"
)

const (
	Title       = "WORDLE"
	WinMessage  = "Congratulations!"
	LossMessage = "Better luck next time!"
	RetryPrompt = "Try again."
)

// Renderer formats game output. The zero value renders plain text.
type Renderer struct {
	// Color paints letters with ANSI backgrounds.
	Color bool
	// Echo is set when the terminal echoed the guess on the line above the
	// feedback, so that line can be replaced.
	Echo bool
}

// ForFiles returns a writer for out and a renderer configured for the pair:
// color only when out is a terminal and color was not disabled, echo
// replacement only when both in and out are terminals. On Windows the writer
// translates ANSI sequences.
func ForFiles(in, out *os.File, noColor bool) (io.Writer, Renderer) {
	r := Renderer{Echo: isTerminal(in) && isTerminal(out)}
	if !isTerminal(out) || noColor {
		return colorable.NewNonColorable(out), r
	}
	r.Color = true
	return colorable.NewColorable(out), r
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Turn renders every letter of t tagged by its outcome.
func (r Renderer) Turn(t game.Turn) string {
	var b strings.Builder
	for _, l := range t.Letters() {
		b.WriteString(r.letter(l))
	}
	return b.String()
}

func (r Renderer) letter(l game.Letter) string {
	c := string(l.Char)
	if r.Color {
		switch l.Outcome {
		case game.Correct:
			return bgGreen + c + reset
		case game.Included:
			return bgYellow + c + reset
		case game.Excluded:
			return bgRed + c + reset
		}
		return c
	}
	switch l.Outcome {
	case game.Correct:
		return "[" + c + "]"
	case game.Included:
		return "(" + c + ")"
	case game.Excluded:
		return " " + c + " "
	}
	return c
}

// ReplaceInput erases the echoed guess line so the rendered turn takes its place.
// It is a no-op unless the input was echoed to the terminal.
func (r Renderer) ReplaceInput() string {
	if r.Echo {
		return clearPrev
	}
	return ""
}

// Ending returns the lines printed once the session is over, or nil while it
// is still in progress.
func (r Renderer) Ending(s *game.Session) []string {
	switch s.Status() {
	case game.Won:
		return []string{WinMessage}
	case game.Lost:
		return []string{"Answer: " + s.Answer(), LossMessage}
	case game.InProgress:
		return nil
	}
	return nil
}
