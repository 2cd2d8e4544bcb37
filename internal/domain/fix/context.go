package fix

import (
	"regexp"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/kotolint/kotolint/internal/domain"
	"github.com/kotolint/kotolint/internal/domain/extract"
)

var (
	urlRE        = regexp.MustCompile(`https?://[^\s<>"']+`)
	emailRE      = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	inlineCodeRE = regexp.MustCompile("`[^`\n]*`")
	upperSnakeRE = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

// safeContext inspects the runes around an issue and rejects the fix
// when the neighborhood looks machine-readable. A URL, email address
// or inline code span anywhere in the window is enough to veto: the
// match text often leaks past what the regexes capture, so proximity
// alone is treated as risk. The snippet itself must also be mostly
// Japanese for the rule to have meant prose.
func safeContext(runes []rune, issue domain.Issue, window int) bool {
	lo := issue.Start - window
	if lo < 0 {
		lo = 0
	}
	hi := issue.End + window
	if hi > len(runes) {
		hi = len(runes)
	}
	ctx := string(runes[lo:hi])

	for _, re := range []*regexp.Regexp{urlRE, emailRE, inlineCodeRE} {
		if re.MatchString(ctx) {
			return false
		}
	}

	if ident := enclosingWord(runes, issue.Start, issue.End); ident != "" {
		if upperSnakeRE.MatchString(ident) || len(camelcase.Split(ident)) > 1 {
			return false
		}
	}

	return extract.JapaneseRatio(issue.Snippet) >= 0.3
}

// enclosingWord expands over ASCII identifier characters touching the
// issue bounds.
func enclosingWord(runes []rune, start, end int) string {
	isIdent := func(r rune) bool {
		return r == '_' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	}
	lo := start
	for lo > 0 && isIdent(runes[lo-1]) {
		lo--
	}
	hi := end
	for hi < len(runes) && isIdent(runes[hi]) {
		hi++
	}
	word := strings.TrimSpace(string(runes[lo:hi]))
	if word == string(runes[start:end]) {
		return "" // nothing around it; not embedded in an identifier
	}
	return word
}
