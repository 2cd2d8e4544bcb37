package fix

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/kotolint/kotolint/internal/domain"
)

var (
	punctRunRE   = regexp.MustCompile(`([、。，．])[、。，．]+`)
	multiSpaceRE = regexp.MustCompile(`[ \t]{2,}`)
)

// synthesize derives a replacement for rules that describe a
// deterministic normalization but carry no explicit template. Rules
// outside this set stay report-only.
func synthesize(issue domain.Issue) (string, bool) {
	switch issue.RuleID {
	case "WIDTH_HALF_KANA":
		// NFKC folds halfwidth katakana to fullwidth and composes
		// split dakuten marks.
		return norm.NFKC.String(issue.Snippet), true
	case "WIDTH_FULL_ALNUM":
		return width.Narrow.String(issue.Snippet), true
	case "WIDTH_FULL_SPACE":
		return " ", true
	case "PUNCT_RUN":
		return punctRunRE.ReplaceAllString(issue.Snippet, "$1"), true
	case "MOJIBAKE_REPLACEMENT":
		return "", true
	case "SPACE_RUN":
		return multiSpaceRE.ReplaceAllString(issue.Snippet, " "), true
	}
	// Width folding applies to any stray halfwidth kana snippet.
	if issue.Snippet != "" && strings.ContainsAny(issue.Snippet, "ｦｧｨｩｪｫｬｭｮｯｰ") {
		folded := width.Widen.String(issue.Snippet)
		if folded != issue.Snippet {
			return folded, true
		}
	}
	return "", false
}
