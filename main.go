// main.go
//
// Command woxirdle: a terminal word-guessing game. Wires configuration,
// logging, word lists and the interactive loop together.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/woxirdle/internal/config"
	"github.com/robalobadob/woxirdle/internal/game"
	"github.com/robalobadob/woxirdle/internal/play"
	"github.com/robalobadob/woxirdle/internal/render"
	"github.com/robalobadob/woxirdle/internal/words"
)

func main() {
	os.Exit(run())
}

func run() int {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return 1
	}
	zerolog.SetGlobalLevel(cfg.Level())

	logger := log.With().Str("run", uuid.NewString()).Logger()
	ctx, stop := signal.NotifyContext(logger.WithContext(context.Background()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lists, err := words.Load(ctx, cfg.WordOptions())
	if err != nil {
		logger.Error().Err(err).Msg("failed to load word lists")
		return 1
	}

	answer, err := pickAnswer(cfg, lists, time.Now())
	if err != nil {
		logger.Error().Err(err).Msg("failed to pick an answer")
		return 1
	}
	session, err := game.NewSession(answer, lists.Allowed, game.WithScoring(cfg.ScoringRule()))
	if err != nil {
		logger.Error().Err(err).Msg("failed to start game")
		return 1
	}
	logger.Debug().
		Str("scoring", session.Scoring().String()).
		Int("maxTurns", session.MaxTurns()).
		Bool("daily", cfg.Daily).
		Msg("session started")

	in, closeIn, err := openInput()
	if err != nil {
		logger.Error().Err(err).Msg("failed to open input")
		return 1
	}
	defer closeIn()

	out, r := render.ForFiles(os.Stdin, os.Stdout, cfg.NoColor)
	if err := play.Run(ctx, in, out, session, r); err != nil {
		logger.Warn().Err(err).Msg("session aborted")
		return 0
	}
	logger.Info().
		Str("status", session.Status().String()).
		Int("turns", len(session.Turns())).
		Msg("session finished")
	return 0
}

// openInput uses a line editor when stdin is a terminal, a plain scanner otherwise.
func openInput() (play.LineReader, func(), error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return play.NewScannerReader(os.Stdin), func() {}, nil
	}
	rl, err := play.NewTerminalReader()
	if err != nil {
		return nil, nil, err
	}
	return rl, func() { _ = rl.Close() }, nil
}
