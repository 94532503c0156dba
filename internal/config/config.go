// internal/config/config.go
//
// Runtime settings, read from the environment (and an optional .env file)
// with command-line flags applied on top. Validate runs last; the accessors
// below assume it passed.

// Package config loads runtime settings for the game.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/woxirdle/internal/game"
	"github.com/robalobadob/woxirdle/internal/words"
)

// Config holds all application configuration.
type Config struct {
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
	// NO_COLOR disables color when set to any non-empty value (no-color.org).
	NoColorEnv string `env:"NO_COLOR"`
	NoColor    bool

	WordLength     int    `env:"WORD_LENGTH" envDefault:"5"`
	DBPath         string `env:"WORDS_DB"`
	DictionaryFile string `env:"WORDS_DICTIONARY_FILE"`
	AnswersFile    string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile    string `env:"WORDS_ALLOWED_FILE"`

	Scoring   string `env:"WORDLE_SCORING" envDefault:"lenient"`
	Answer    string `env:"WORDLE_ANSWER"`
	Daily     bool   `env:"WORDLE_DAILY"`
	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	// IANA zone in which the word of the day rolls over.
	DailyTZ string `env:"DAILY_TZ" envDefault:"UTC"`
}

// Load reads .env (ignored if missing), parses the environment, then applies
// command-line args on top.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.NoColor = cfg.NoColorEnv != ""
	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("woxirdle", flag.ContinueOnError)
	c.define(fs)
	return fs.Parse(args)
}

// define registers the command-line flags, defaulting to the current values.
func (c *Config) define(fs *flag.FlagSet) {
	fs.StringVar(&c.Answer, "answer", c.Answer, "play with a fixed answer (must be an allowed guess)")
	fs.BoolVar(&c.Daily, "daily", c.Daily, "play the word of the day")
	fs.StringVar(&c.DailyTZ, "daily-tz", c.DailyTZ, "time zone of the daily rollover")
	fs.StringVar(&c.Scoring, "scoring", c.Scoring, "letter scoring rule: lenient or strict")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "disable colored output")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.IntVar(&c.WordLength, "length", c.WordLength, "word length")
	fs.StringVar(&c.DictionaryFile, "dictionary", c.DictionaryFile, "JSON or YAML dictionary file")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "SQLite word database")
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if _, ok := game.ParseScoring(c.Scoring); !ok {
		return fmt.Errorf("unknown scoring %q (want lenient or strict)", c.Scoring)
	}
	if c.WordLength <= 0 {
		return fmt.Errorf("word length must be positive, got %d", c.WordLength)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if _, err := time.LoadLocation(c.DailyTZ); err != nil {
		return fmt.Errorf("daily time zone: %w", err)
	}
	return nil
}

// DailyLocation returns the zone the daily word follows, UTC if unknown.
func (c *Config) DailyLocation() *time.Location {
	loc, err := time.LoadLocation(c.DailyTZ)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ScoringRule returns the parsed scoring rule. Call after Validate.
func (c *Config) ScoringRule() game.Scoring {
	s, _ := game.ParseScoring(c.Scoring)
	return s
}

// Level returns the configured zerolog level, info if unparsable.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// WordOptions maps the word source settings onto words.Options.
func (c *Config) WordOptions() words.Options {
	return words.Options{
		WordLength:     c.WordLength,
		DBPath:         c.DBPath,
		DictionaryFile: c.DictionaryFile,
		AnswersFile:    c.AnswersFile,
		AllowedFile:    c.AllowedFile,
	}
}
