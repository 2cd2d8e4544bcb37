// Package rules holds the typo pattern definitions and the detection
// engine that runs all enabled detectors over a span in a fixed order.
package rules

import (
	"fmt"
	"regexp"

	"github.com/kotolint/kotolint/internal/domain"
)

// TypoPattern is one regex-based detection rule. Rules are immutable
// after load; identity is ID and later sources override earlier ones
// with the same ID.
type TypoPattern struct {
	ID       string
	Pattern  *regexp.Regexp
	Message  string
	Severity domain.Severity

	// Replacement is a regexp expansion template ($1 references
	// capture groups). HasReplacement distinguishes "no suggestion"
	// from "replace with the empty string".
	Replacement    string
	HasReplacement bool
}

// Compile builds a TypoPattern from its raw parts. replacement may be
// nil for rules without a suggestion.
func Compile(id, pattern, message string, replacement *string, severity domain.Severity) (TypoPattern, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return TypoPattern{}, fmt.Errorf("rule %s: invalid regex %q: %w", id, pattern, err)
	}
	p := TypoPattern{ID: id, Pattern: re, Message: message, Severity: severity}
	if replacement != nil {
		p.Replacement = *replacement
		p.HasReplacement = true
	}
	return p, nil
}

// Merge overlays extra onto base: same-ID rules replace the base entry
// in place, new IDs are appended in order.
func Merge(base, extra []TypoPattern) []TypoPattern {
	out := make([]TypoPattern, len(base))
	copy(out, base)
	index := make(map[string]int, len(out))
	for i, p := range out {
		index[p.ID] = i
	}
	for _, p := range extra {
		if i, ok := index[p.ID]; ok {
			out[i] = p
			continue
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	return out
}

// RegexDetector runs a rule set against span text. It reports codepoint
// offsets relative to the text it was given.
type RegexDetector struct {
	patterns []TypoPattern
}

func NewRegexDetector(patterns []TypoPattern) *RegexDetector {
	return &RegexDetector{patterns: patterns}
}

func (d *RegexDetector) ID() string { return "rules" }

func (d *RegexDetector) Scan(text string) []domain.Issue {
	var issues []domain.Issue
	for _, p := range d.patterns {
		for _, m := range p.Pattern.FindAllStringSubmatchIndex(text, -1) {
			start, end := runeBounds(text, m[0], m[1])
			issue := domain.Issue{
				Start:    start,
				End:      end,
				Snippet:  text[m[0]:m[1]],
				Message:  p.Message,
				Severity: p.Severity,
				RuleID:   p.ID,
			}
			if p.HasReplacement {
				expanded := string(p.Pattern.ExpandString(nil, p.Replacement, text, m))
				issue.Suggestion = &expanded
			}
			issues = append(issues, issue)
		}
	}
	return issues
}
