package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity classifies how serious an issue is. The ordering
// Info < Warn < Error is significant: it drives the minimum-severity
// filter and the fail decision.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarn:
		return "WARN"
	case SeverityError:
		return "ERROR"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ParseSeverity accepts the wire names INFO/WARN/ERROR (case-insensitive).
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO":
		return SeverityInfo, nil
	case "WARN", "WARNING":
		return SeverityWarn, nil
	case "ERROR":
		return SeverityError, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity %q", s)
	}
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	sev, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// Issue is a single detected problem, positioned in original-file
// coordinates. Start and End are Unicode codepoint offsets into the file
// content (or into the supplied text when File is empty). Snippet equals
// the content slice [Start:End] at the time the issue was produced.
//
// Suggestion is nil when the rule has no replacement; a non-nil empty
// string means "delete the matched text".
type Issue struct {
	File       string   `json:"file,omitempty"`
	Start      int      `json:"start"`
	End        int      `json:"end"`
	Snippet    string   `json:"snippet"`
	Message    string   `json:"message"`
	Suggestion *string  `json:"suggestion,omitempty"`
	Severity   Severity `json:"severity"`
	RuleID     string   `json:"rule_id,omitempty"`
}

// Span is a contiguous run of original content handed to detectors.
// Offset is the codepoint offset of Text[0] within the original content.
type Span struct {
	Text   string
	Offset int
}

// Detector inspects one span of text and reports issues positioned
// relative to that text (codepoint offsets). The engine maps them back
// into original-file coordinates.
type Detector interface {
	ID() string
	Scan(text string) []Issue
}

// Report is the outcome of scanning a set of paths.
type Report struct {
	Issues       []Issue `json:"issues"`
	FilesScanned int     `json:"files_scanned"`
	FilesCached  int     `json:"files_cached"`
	CommitHash   string  `json:"commit_hash,omitempty"`
}

// HasIssues is the CI fail decision: any issue survived the filter.
func (r *Report) HasIssues() bool { return len(r.Issues) > 0 }

// FixSummary counts what the fixer did across files.
type FixSummary struct {
	FilesChanged int `json:"files_changed"`
	Applied      int `json:"applied"`
	Skipped      int `json:"skipped"`
}

// FilterSeverity drops issues strictly below min, preserving order.
func FilterSeverity(issues []Issue, min Severity) []Issue {
	if min <= SeverityInfo {
		return issues
	}
	out := make([]Issue, 0, len(issues))
	for _, is := range issues {
		if is.Severity >= min {
			out = append(out, is)
		}
	}
	return out
}

// OffsetToLineCol converts a codepoint offset into 1-based line and
// column numbers within text.
func OffsetToLineCol(text string, offset int) (line, col int) {
	line, col = 1, 1
	if offset <= 0 {
		return
	}
	i := 0
	for _, r := range text {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i++
	}
	return
}

// Suggest is a convenience for building suggestion pointers.
func Suggest(s string) *string { return &s }
