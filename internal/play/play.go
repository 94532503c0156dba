// internal/play/play.go
//
// The interactive read-guess-render loop around a single game session.

package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/robalobadob/woxirdle/internal/game"
	"github.com/robalobadob/woxirdle/internal/render"
	"github.com/robalobadob/woxirdle/internal/words"
)

// LineReader yields one line of input per call and io.EOF when input ends.
// *readline.Instance satisfies it. A reader that also implements io.Closer is
// closed when the context passed to Run is cancelled mid-read.
type LineReader interface {
	Readline() (string, error)
}

// NewTerminalReader returns a line editor on stdin. History is not kept.
func NewTerminalReader() (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:              "",
		HistoryLimit:        -1,
		InterruptPrompt:     "^C",
		FuncFilterInputRune: filterInput,
	})
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// ScannerReader reads lines from a plain io.Reader, used when stdin is not a terminal.
type ScannerReader struct {
	sc *bufio.Scanner
}

func NewScannerReader(r io.Reader) *ScannerReader {
	return &ScannerReader{sc: bufio.NewScanner(r)}
}

func (s *ScannerReader) Readline() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Run plays g to completion, reading guesses from in and writing feedback to out.
//
// Each line is normalized with words.Normalize before it is submitted; blank
// lines are ignored. A rejected guess prints the error and a retry prompt.
// End of input (or ^C) before the game is over reveals the answer and returns nil.
// Cancelling ctx, even while a read is pending, makes Run return ctx.Err().
func Run(ctx context.Context, in LineReader, out io.Writer, g *game.Session, r render.Renderer) error {
	fmt.Fprintln(out, render.Title)

	for !g.Status().Over() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := readLine(ctx, in)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			fmt.Fprintln(out, "Answer: "+g.Answer())
			return nil
		}
		if err != nil {
			return fmt.Errorf("read guess: %w", err)
		}

		guess := words.Normalize(line)
		if guess == "" {
			continue
		}
		turn, err := g.Submit(guess)
		if err != nil {
			fmt.Fprintln(out, err.Error())
			fmt.Fprintln(out, render.RetryPrompt)
			continue
		}
		fmt.Fprint(out, r.ReplaceInput())
		fmt.Fprintln(out, r.Turn(turn))
	}

	for _, line := range r.Ending(g) {
		fmt.Fprintln(out, line)
	}
	return nil
}

type lineResult struct {
	line string
	err  error
}

// readLine waits for the next line or for ctx to end, whichever comes first.
// On cancellation the reader is closed if it can be, which unblocks readline;
// a plain scanner keeps its goroutine until the underlying read returns.
func readLine(ctx context.Context, in LineReader) (string, error) {
	done := make(chan lineResult, 1)
	go func() {
		line, err := in.Readline()
		done <- lineResult{line, err}
	}()

	select {
	case res := <-done:
		return res.line, res.err
	case <-ctx.Done():
		if c, ok := in.(io.Closer); ok {
			_ = c.Close()
		}
		return "", ctx.Err()
	}
}
