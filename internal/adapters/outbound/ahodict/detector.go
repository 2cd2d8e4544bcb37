// Package ahodict detects known variant spellings with a single
// Aho-Corasick automaton pass, which stays cheap no matter how large
// the variant table grows.
package ahodict

import (
	"fmt"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/kotolint/kotolint/internal/domain"
)

// Variant maps one discouraged surface form to its preferred form.
type Variant struct {
	From     string
	To       string
	Severity domain.Severity
}

// Detector scans for every variant surface at once.
type Detector struct {
	automaton ahocorasick.AhoCorasick
	variants  []Variant
}

// NewDetector compiles the automaton. Variants with empty From are
// rejected since they would match everywhere.
func NewDetector(variants []Variant) (*Detector, error) {
	patterns := make([]string, len(variants))
	for i, v := range variants {
		if v.From == "" {
			return nil, fmt.Errorf("variant %d: empty surface form", i)
		}
		patterns[i] = v.From
	}
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		DFA: true,
	})
	ac := builder.Build(patterns)
	return &Detector{automaton: ac, variants: variants}, nil
}

func (d *Detector) ID() string { return "variants" }

func (d *Detector) Scan(text string) []domain.Issue {
	var issues []domain.Issue
	iter := d.automaton.IterOverlappingByte([]byte(text))
	for next := iter.Next(); next != nil; next = iter.Next() {
		v := d.variants[next.Pattern()]
		start := len([]rune(text[:next.Start()]))
		end := start + len([]rune(v.From))
		issues = append(issues, domain.Issue{
			Start:      start,
			End:        end,
			Snippet:    v.From,
			Message:    fmt.Sprintf("表記揺れ: 「%s」→「%s」を推奨", v.From, v.To),
			Suggestion: domain.Suggest(v.To),
			Severity:   v.Severity,
			RuleID:     "VARIANT_DICT",
		})
	}
	return issues
}

// DefaultVariants is the built-in variant table: common alternative
// spellings normalized toward the forms used in business writing.
func DefaultVariants() []Variant {
	w := domain.SeverityWarn
	i := domain.SeverityInfo
	return []Variant{
		{From: "有難うございます", To: "ありがとうございます", Severity: w},
		{From: "有り難う御座います", To: "ありがとうございます", Severity: w},
		{From: "宜敷く", To: "よろしく", Severity: w},
		{From: "御座候", To: "ございます", Severity: w},
		{From: "兎に角", To: "とにかく", Severity: i},
		{From: "出鱈目", To: "でたらめ", Severity: i},
		{From: "滅多に", To: "めったに", Severity: i},
		{From: "沢山", To: "たくさん", Severity: i},
		{From: "丁度", To: "ちょうど", Severity: i},
		{From: "流石", To: "さすが", Severity: i},
		{From: "如何", To: "いかが", Severity: i},
		{From: "所謂", To: "いわゆる", Severity: i},
		{From: "サーバー", To: "サーバ", Severity: i},
		{From: "ユーザー", To: "ユーザ", Severity: i},
		{From: "コンピューター", To: "コンピュータ", Severity: i},
		{From: "プリンター", To: "プリンタ", Severity: i},
		{From: "フォルダー", To: "フォルダ", Severity: i},
	}
}
