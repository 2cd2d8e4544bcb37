package rules

import (
	"github.com/kotolint/kotolint/internal/domain"
	"github.com/kotolint/kotolint/internal/domain/extract"
)

// Engine runs every enabled detector over a span in a fixed order, so
// output is deterministic for identical input and detector set. The
// detector slice is assembled once at startup and read-only afterwards.
type Engine struct {
	detectors []domain.Detector
}

func NewEngine(detectors ...domain.Detector) *Engine {
	return &Engine{detectors: detectors}
}

// Detectors exposes the enabled detector IDs in run order.
func (e *Engine) Detectors() []string {
	ids := make([]string, 0, len(e.detectors))
	for _, d := range e.detectors {
		ids = append(ids, d.ID())
	}
	return ids
}

// Detect scans one span and maps detector-relative offsets back into
// original-content coordinates. Spans without Japanese text are
// skipped wholesale. Overlapping issues from different detectors are
// all kept; the fixer resolves overlap at apply time.
func (e *Engine) Detect(span domain.Span) []domain.Issue {
	if !extract.ContainsJapanese(span.Text) {
		return nil
	}
	var issues []domain.Issue
	for _, d := range e.detectors {
		for _, is := range d.Scan(span.Text) {
			is.Start += span.Offset
			is.End += span.Offset
			issues = append(issues, is)
		}
	}
	return issues
}

// DetectAll runs Detect over every span in order.
func (e *Engine) DetectAll(spans []domain.Span) []domain.Issue {
	var issues []domain.Issue
	for _, s := range spans {
		issues = append(issues, e.Detect(s)...)
	}
	return issues
}
