// Package spell flags Japanese words that sit close to, but not
// exactly on, entries of a user-supplied dictionary. Closeness uses
// normalized Levenshtein similarity over runes.
package spell

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// dictFile is the YAML/JSON shape of a dictionary file.
type dictFile struct {
	Words []string `yaml:"words" json:"words"`
}

// LoadDict reads one dictionary file. Plain .txt files carry one word
// per line with # comments; .json and .yaml/.yml carry {"words": [...]}.
func LoadDict(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		var df dictFile
		if err := yaml.Unmarshal(raw, &df); err != nil {
			return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
		}
		return cleanWords(df.Words), nil
	default:
		var words []string
		for _, line := range strings.Split(string(raw), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			words = append(words, line)
		}
		return cleanWords(words), nil
	}
}

// LoadDicts merges several dictionary files, dropping duplicates while
// preserving first-seen order.
func LoadDicts(paths []string) ([]string, error) {
	var merged []string
	seen := make(map[string]bool)
	for _, p := range paths {
		words, err := LoadDict(p)
		if err != nil {
			return nil, err
		}
		for _, w := range words {
			if !seen[w] {
				seen[w] = true
				merged = append(merged, w)
			}
		}
	}
	return merged, nil
}

func cleanWords(in []string) []string {
	out := in[:0]
	for _, w := range in {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}
