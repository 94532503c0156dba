// assets/embed.go
//
// Word lists compiled into the binary, so the game runs with no files on
// disk. Each list is plain text, one word per line; blank lines and lines
// starting with # are skipped.

package assets

import (
	"embed"
	"strings"

	"github.com/samber/lo"
)

//go:embed allowed.txt answers.txt
var files embed.FS

// Answers returns the built-in answer candidates.
func Answers() ([]string, error) { return list("answers.txt") }

// Allowed returns the built-in guess words that are not answers.
func Allowed() ([]string, error) { return list("allowed.txt") }

func list(name string) ([]string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return lo.FilterMap(strings.Split(string(data), "\n"), func(line string, _ int) (string, bool) {
		line = strings.TrimSpace(line)
		return line, line != "" && !strings.HasPrefix(line, "#")
	}), nil
}
