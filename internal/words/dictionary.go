// internal/words/dictionary.go
//
// Single-file word source holding both lists, decoded as JSON or YAML by
// file extension.

package words

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dictionary is the on-disk word list format: both groups in one document.
//
//	{"answers": ["apple", ...], "allowed": ["apply", ...]}
//
// Files ending in .yaml or .yml are decoded as YAML with the same keys.
type Dictionary struct {
	Answers []string `json:"answers" yaml:"answers"`
	Allowed []string `json:"allowed" yaml:"allowed"`
}

// ReadDictionary decodes the dictionary file at path.
func ReadDictionary(path string) (*Dictionary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var d Dictionary
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &d)
	default:
		err = json.Unmarshal(b, &d)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &d, nil
}
