// internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Load answer and allowed guess lists from the configured source, or fall
//     back to the defaults embedded in package assets.
//   - Normalize every word the same way player input is normalized.
//   - Build the two game.WordSet values a session needs.
//
// Word Lists:
//   - "answers": candidate secrets.
//   - "allowed": valid guesses (always includes answers).
//
// Source selection (Load), first match wins:
//  1. Options.DBPath:          SQLite database (see sqlite.go).
//  2. Options.DictionaryFile:  JSON or YAML {"answers": [...], "allowed": [...]}.
//  3. Options.AnswersFile and/or Options.AllowedFile: one word per line.
//     If only one of them is set it is used for both lists.
//  4. Embedded defaults.
package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/robalobadob/woxirdle/assets"
	"github.com/robalobadob/woxirdle/internal/game"
)

// DefaultWordLength is the word length used when Options.WordLength is unset.
const DefaultWordLength = 5

var ErrNoAnswers = errors.New("words: answers list is empty")

// Options selects where word lists come from.
type Options struct {
	WordLength     int
	DBPath         string
	DictionaryFile string
	AnswersFile    string
	AllowedFile    string
}

// Lists is the loaded pair of word sets.
type Lists struct {
	Answers game.WordSet
	Allowed game.WordSet
	Source  string
}

// Load reads, normalizes and filters both lists.
// Returns ErrNoAnswers if no usable answer survives filtering.
func Load(ctx context.Context, opts Options) (*Lists, error) {
	if opts.WordLength <= 0 {
		opts.WordLength = DefaultWordLength
	}

	var (
		ansList, allowList []string
		source             string
		err                error
	)
	switch {
	case opts.DBPath != "":
		source = "sqlite:" + opts.DBPath
		ansList, allowList, err = loadSQLite(ctx, opts.DBPath)

	case opts.DictionaryFile != "":
		source = "dictionary:" + opts.DictionaryFile
		var d *Dictionary
		if d, err = ReadDictionary(opts.DictionaryFile); err == nil {
			ansList, allowList = d.Answers, d.Allowed
		}

	case opts.AnswersFile != "" && opts.AllowedFile != "":
		source = "files:" + opts.AnswersFile + "," + opts.AllowedFile
		if ansList, err = readWordFile(opts.AnswersFile); err == nil {
			allowList, err = readWordFile(opts.AllowedFile)
		}

	case opts.AnswersFile != "" || opts.AllowedFile != "":
		path := lo.Ternary(opts.AnswersFile != "", opts.AnswersFile, opts.AllowedFile)
		source = "file:" + path
		ansList, err = readWordFile(path)
		allowList = ansList

	default:
		source = "embedded"
		if ansList, err = assets.Answers(); err == nil {
			allowList, err = assets.Allowed()
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}

	l := build(ansList, allowList, opts.WordLength)
	l.Source = source
	if l.Answers.Len() == 0 {
		return nil, ErrNoAnswers
	}

	log.Info().
		Str("source", source).
		Int("answers", l.Answers.Len()).
		Int("allowed", l.Allowed.Len()).
		Int("length", opts.WordLength).
		Msg("word lists loaded")
	return l, nil
}

// build normalizes both lists and makes allowed a superset of answers.
func build(ansList, allowList []string, length int) *Lists {
	answers := clean(ansList, length)
	allowed := lo.Uniq(append(append([]string{}, answers...), clean(allowList, length)...))

	if dropped := len(ansList) - len(answers); dropped > 0 {
		log.Debug().Int("dropped", dropped).Msg("answers filtered out")
	}
	return &Lists{
		Answers: game.NewWordSet(answers),
		Allowed: game.NewWordSet(allowed),
	}
}

// clean normalizes each word and keeps unique words of the given length.
func clean(list []string, length int) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = Normalize(w)
		if utf8.RuneCountInString(w) == length && isAlpha(w) {
			out = append(out, w)
		}
	}
	return lo.Uniq(out)
}

// Normalize trims s, composes it to NFC and lower-cases it.
// Player input must go through the same function before it is submitted.
func Normalize(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	return cases.Lower(language.Und).String(s)
}

// readWordFile loads one word per line, skipping blanks and # comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// isAlpha reports whether s consists of letters only.
func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
