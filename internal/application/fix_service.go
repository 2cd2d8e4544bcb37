package application

import (
	"fmt"
	"os"

	"github.com/kotolint/kotolint/internal/domain"
	"github.com/kotolint/kotolint/internal/domain/fix"
)

// FixService groups issues by file and applies their suggestions.
// Files are re-read just before splicing so offsets are validated
// against current content, not the content that was scanned.
type FixService struct {
	opts fix.Options
}

func NewFixService(opts fix.Options) *FixService {
	return &FixService{opts: opts}
}

// Apply rewrites files in place. Files whose content cannot be
// round-tripped are reported in the error and counted as skipped.
func (s *FixService) Apply(issues []domain.Issue) (*domain.FixSummary, error) {
	byFile := make(map[string][]domain.Issue)
	var order []string
	for _, issue := range issues {
		if issue.File == "" {
			continue
		}
		if _, seen := byFile[issue.File]; !seen {
			order = append(order, issue.File)
		}
		byFile[issue.File] = append(byFile[issue.File], issue)
	}

	summary := &domain.FixSummary{}
	for _, path := range order {
		raw, err := os.ReadFile(path)
		if err != nil {
			return summary, fmt.Errorf("reading %s: %w", path, err)
		}
		res := fix.Apply(string(raw), byFile[path], s.opts)
		summary.Applied += res.Applied
		summary.Skipped += res.Skipped
		if res.Applied == 0 {
			continue
		}
		info, err := os.Stat(path)
		mode := os.FileMode(0644)
		if err == nil {
			mode = info.Mode().Perm()
		}
		if err := os.WriteFile(path, []byte(res.Content), mode); err != nil {
			return summary, fmt.Errorf("writing %s: %w", path, err)
		}
		summary.FilesChanged++
	}
	return summary, nil
}

// FixText applies fixes to in-memory content, used by the MCP fix
// tool.
func (s *FixService) FixText(content string, issues []domain.Issue) (string, *domain.FixSummary) {
	res := fix.Apply(content, issues, s.opts)
	summary := &domain.FixSummary{Applied: res.Applied, Skipped: res.Skipped}
	if res.Applied > 0 {
		summary.FilesChanged = 1
	}
	return res.Content, summary
}
