// Package fix applies issue suggestions to file content. Application
// is conservative: overlapping fixes keep the earlier one, regions
// inside Markdown code fences are never touched, and issues reported
// by the external grammar service are never auto-applied.
package fix

import (
	"sort"
	"strings"

	"github.com/kotolint/kotolint/internal/domain"
)

// Options controls fix application.
type Options struct {
	// ContextGuard skips fixes whose surroundings look like code or
	// machine-readable text rather than prose.
	ContextGuard bool
	// ContextWindow is the rune radius the guard examines. Zero means
	// the default of 100.
	ContextWindow int
}

// Result reports what Apply did to one file.
type Result struct {
	Content string
	Applied int
	Skipped int
}

// Apply splices suggestions into content. Issues carry codepoint
// offsets against the exact content given. The returned content is
// unchanged when nothing applied.
func Apply(content string, issues []domain.Issue, opts Options) Result {
	runes := []rune(content)
	fences := fenceRegions(content)

	ordered := make([]domain.Issue, len(issues))
	copy(ordered, issues)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Start != ordered[j].Start {
			return ordered[i].Start < ordered[j].Start
		}
		return ordered[i].End < ordered[j].End
	})

	guardWindow := opts.ContextWindow
	if guardWindow <= 0 {
		guardWindow = 100
	}

	var out []rune
	res := Result{}
	cursor := 0
	for _, issue := range ordered {
		repl, ok := replacementFor(issue)
		if !ok {
			continue
		}
		if issue.Start < 0 || issue.End > len(runes) || issue.Start > issue.End {
			res.Skipped++
			continue
		}
		// Stale offsets (the file changed since the scan) must not
		// corrupt the text; the snippet doubles as a checksum.
		if issue.Snippet != string(runes[issue.Start:issue.End]) {
			res.Skipped++
			continue
		}
		if issue.Start < cursor { // overlaps an already-applied fix
			res.Skipped++
			continue
		}
		if inFence(fences, issue.Start) || inFence(fences, issue.End-1) {
			res.Skipped++
			continue
		}
		if opts.ContextGuard && !safeContext(runes, issue, guardWindow) {
			res.Skipped++
			continue
		}
		out = append(out, runes[cursor:issue.Start]...)
		out = append(out, []rune(repl)...)
		cursor = issue.End
		res.Applied++
	}
	if res.Applied == 0 {
		res.Content = content
		return res
	}
	out = append(out, runes[cursor:]...)
	res.Content = string(out)
	return res
}

// replacementFor decides whether an issue is auto-fixable and with
// what text. Grammar-service findings (LT_ prefix) always require a
// human decision.
func replacementFor(issue domain.Issue) (string, bool) {
	if strings.HasPrefix(issue.RuleID, "LT_") {
		return "", false
	}
	if issue.Suggestion != nil {
		return *issue.Suggestion, true
	}
	return synthesize(issue)
}

// fenceRegions returns rune-offset ranges covered by ``` or ~~~ fenced
// blocks, fence lines included. An unclosed fence runs to the end.
func fenceRegions(content string) [][2]int {
	var regions [][2]int
	offset := 0 // rune offset of current line start
	open := -1
	var openMarker string
	for _, line := range strings.SplitAfter(content, "\n") {
		lineLen := len([]rune(line))
		trimmed := strings.TrimSpace(line)
		marker := ""
		switch {
		case strings.HasPrefix(trimmed, "```"):
			marker = "```"
		case strings.HasPrefix(trimmed, "~~~"):
			marker = "~~~"
		}
		if marker != "" {
			if open < 0 {
				open, openMarker = offset, marker
			} else if marker == openMarker {
				regions = append(regions, [2]int{open, offset + lineLen})
				open = -1
			}
		}
		offset += lineLen
	}
	if open >= 0 {
		regions = append(regions, [2]int{open, offset})
	}
	return regions
}

func inFence(regions [][2]int, pos int) bool {
	for _, r := range regions {
		if pos >= r[0] && pos < r[1] {
			return true
		}
	}
	return false
}
