package morph

import (
	"regexp"

	"github.com/kotolint/kotolint/internal/domain"
)

var noChainRE = regexp.MustCompile(`(?:[\x{3040}-\x{30FF}\x{4E00}-\x{9FFF}]+の){3,}[\x{3040}-\x{30FF}\x{4E00}-\x{9FFF}]+`)

// SyntaxDetector finds structural oddities the regex layer cannot see:
// identical particles appearing as consecutive tokens, and long の
// chains that usually read better restructured.
type SyntaxDetector struct {
	analyzer *Analyzer
}

func NewSyntaxDetector(analyzer *Analyzer) *SyntaxDetector {
	return &SyntaxDetector{analyzer: analyzer}
}

func (d *SyntaxDetector) ID() string { return "syntax" }

func (d *SyntaxDetector) Scan(text string) []domain.Issue {
	var issues []domain.Issue

	tokens := d.analyzer.Tokenize(text)
	for i := 1; i < len(tokens); i++ {
		prev, cur := tokens[i-1], tokens[i]
		if cur.Surface == "" || cur.Surface != prev.Surface {
			continue
		}
		if pos := cur.POS(); len(pos) == 0 || pos[0] != "助詞" {
			continue
		}
		if pos := prev.POS(); len(pos) == 0 || pos[0] != "助詞" {
			continue
		}
		issues = append(issues, domain.Issue{
			Start:    prev.Start,
			End:      cur.End,
			Snippet:  prev.Surface + cur.Surface,
			Message:  "同一助詞の連続（構文解析による検出）",
			Severity: domain.SeverityWarn,
			RuleID:   "SYN_PARTICLE_RUN",
		})
	}

	for _, m := range noChainRE.FindAllStringIndex(text, -1) {
		snippet := text[m[0]:m[1]]
		start := len([]rune(text[:m[0]]))
		issues = append(issues, domain.Issue{
			Start:    start,
			End:      start + len([]rune(snippet)),
			Snippet:  snippet,
			Message:  "「の」の連続使用（3回以上）。名詞の連結を分割するなど文の再構成を検討",
			Severity: domain.SeverityInfo,
			RuleID:   "SYN_NO_CHAIN",
		})
	}

	return issues
}
