// Package tui renders scan reports for the terminal with lipgloss
// styling. A plain variant exists for JSON-adjacent tooling that
// strips ANSI anyway.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kotolint/kotolint/internal/domain"
)

// ── warm amber palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	snippetStyle  = lipgloss.NewStyle().Foreground(fg)
)

// Locator maps a file path and codepoint offset to 1-based line and
// column, usually backed by the scanned file contents.
type Locator func(file string, offset int) (line, col int)

// RenderReport formats a full report. Issues arrive already sorted by
// the scan service; rendering never reorders them.
func RenderReport(report *domain.Report, locate Locator) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("kotolint"))
	meta := fmt.Sprintf("%d scanned, %d cached", report.FilesScanned, report.FilesCached)
	if report.CommitHash != "" {
		hash := report.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		meta += ", " + hash
	}
	b.WriteString("  " + dimStyle.Render(meta) + "\n\n")

	if len(report.Issues) == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
		return b.String()
	}

	for _, issue := range report.Issues {
		renderIssue(&b, issue, locate)
	}

	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render(fmt.Sprintf("Total: %d issue(s)", len(report.Issues))) + "\n")
	return b.String()
}

func renderIssue(b *strings.Builder, issue domain.Issue, locate Locator) {
	line, col := 1, issue.Start+1
	if locate != nil {
		line, col = locate(issue.File, issue.Start)
	}

	parts := []string{
		fmt.Sprintf("%s %s %s",
			fileStyle.Render(fmt.Sprintf("%s:%d:%d", issue.File, line, col)),
			severityTag(issue.Severity),
			issue.Message,
		),
		snippetStyle.Render(clipSnippet(issue.Snippet, 24)),
	}
	if issue.Suggestion != nil {
		parts = append(parts, dimStyle.Render("suggest: "+*issue.Suggestion))
	}
	parts = append(parts, faintStyle.Render("rule: "+issue.RuleID))
	fmt.Fprintf(b, "  %s\n", strings.Join(parts, faintStyle.Render(" | ")))
}

func severityTag(sev domain.Severity) string {
	switch sev {
	case domain.SeverityError:
		return errorTagStyle.Render("[ERROR]")
	case domain.SeverityWarn:
		return warnTagStyle.Render("[WARN] ")
	default:
		return infoTagStyle.Render("[INFO] ")
	}
}

// clipSnippet bounds a snippet by display width, keeping East Asian
// double-width characters from blowing up alignment.
func clipSnippet(s string, maxWidth int) string {
	s = strings.ReplaceAll(s, "\n", "⏎")
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// RenderFixSummary reports what a fix run changed.
func RenderFixSummary(summary *domain.FixSummary) string {
	var b strings.Builder
	b.WriteString("  " + headerStyle.Render("kotolint fix") + "\n\n")
	fmt.Fprintf(&b, "  %s\n", titleStyle.Render(fmt.Sprintf("%d file(s) changed", summary.FilesChanged)))
	fmt.Fprintf(&b, "  %s\n", passStyle.Render(fmt.Sprintf("%d fix(es) applied", summary.Applied)))
	if summary.Skipped > 0 {
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("%d skipped (overlap, fences or unsafe context)", summary.Skipped)))
	}
	return b.String()
}
