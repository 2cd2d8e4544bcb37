// Package rulefile loads user-defined detection rules from YAML or
// JSON files. YAML is a superset of JSON here, so one decoder covers
// both.
package rulefile

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kotolint/kotolint/internal/domain"
	"github.com/kotolint/kotolint/internal/domain/rules"
)

// ruleSpec is the on-disk shape of one rule. Replacement is a pointer
// so an explicit empty string means "delete the match" while absence
// means "no suggestion".
type ruleSpec struct {
	ID          string  `yaml:"id" json:"id"`
	Pattern     string  `yaml:"pattern" json:"pattern"`
	Message     string  `yaml:"message" json:"message"`
	Replacement *string `yaml:"replacement" json:"replacement"`
	Severity    string  `yaml:"severity" json:"severity"`
}

type ruleFile struct {
	Rules []ruleSpec `yaml:"rules" json:"rules"`
}

// Load reads and compiles one rule file. The canonical shape is a
// top-level array of rules; a document wrapped in a `rules:` mapping
// is accepted too.
func Load(path string) ([]rules.TypoPattern, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule file %s: %w", path, err)
	}
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})

	var specs []ruleSpec
	if seqErr := yaml.Unmarshal(raw, &specs); seqErr != nil {
		var rf ruleFile
		if err := yaml.Unmarshal(raw, &rf); err != nil {
			return nil, fmt.Errorf("parse rule file %s: %w", path, seqErr)
		}
		specs = rf.Rules
	}

	patterns := make([]rules.TypoPattern, 0, len(specs))
	for i, spec := range specs {
		if spec.ID == "" {
			return nil, fmt.Errorf("rule file %s: rule %d has no id", path, i)
		}
		if spec.Pattern == "" {
			return nil, fmt.Errorf("rule file %s: rule %s has no pattern", path, spec.ID)
		}
		sev := domain.SeverityWarn
		if spec.Severity != "" {
			sev, err = domain.ParseSeverity(spec.Severity)
			if err != nil {
				return nil, fmt.Errorf("rule file %s: rule %s: %w", path, spec.ID, err)
			}
		}
		p, err := rules.Compile(spec.ID, spec.Pattern, spec.Message, spec.Replacement, sev)
		if err != nil {
			return nil, fmt.Errorf("rule file %s: %w", path, err)
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// LoadAll merges several rule files in order. Later files override
// same-ID rules from earlier ones. A file that fails to load is
// reported in the returned error list and the remaining files still
// contribute their rules.
func LoadAll(paths []string) ([]rules.TypoPattern, []error) {
	var merged []rules.TypoPattern
	var errs []error
	for _, p := range paths {
		patterns, err := Load(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		merged = rules.Merge(merged, patterns)
	}
	return merged, errs
}
