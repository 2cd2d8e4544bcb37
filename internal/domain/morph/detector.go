package morph

import (
	"github.com/kotolint/kotolint/internal/domain"
	"github.com/kotolint/kotolint/internal/domain/rules"
)

// Detector re-runs the pattern rules on individual token surfaces.
// Running per token catches forms hidden by surrounding text, such as
// an obsolete spelling embedded in a longer compound, and confirms
// that a rule hit aligns with a real word boundary.
type Detector struct {
	analyzer *Analyzer
	patterns []rules.TypoPattern
}

func NewDetector(analyzer *Analyzer, patterns []rules.TypoPattern) *Detector {
	return &Detector{analyzer: analyzer, patterns: patterns}
}

func (d *Detector) ID() string { return "morph" }

func (d *Detector) Scan(text string) []domain.Issue {
	var issues []domain.Issue
	for _, tok := range d.analyzer.Tokenize(text) {
		surface := tok.Surface
		if surface == "" {
			continue
		}
		for _, p := range d.patterns {
			m := p.Pattern.FindStringIndex(surface)
			if m == nil || m[0] != 0 || m[1] != len(surface) {
				continue
			}
			var suggestion *string
			if p.HasReplacement {
				out := p.Pattern.ReplaceAllString(surface, p.Replacement)
				suggestion = &out
			}
			issues = append(issues, domain.Issue{
				Start:      tok.Start,
				End:        tok.End,
				Snippet:    surface,
				Message:    p.Message + "（形態素解析による裏付け）",
				Suggestion: suggestion,
				Severity:   p.Severity,
				RuleID:     "MORPH_" + p.ID,
			})
		}
	}
	return issues
}
