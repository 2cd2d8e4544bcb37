package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotolint/kotolint/internal/application"
	"github.com/kotolint/kotolint/internal/domain"
	"github.com/kotolint/kotolint/internal/domain/fix"
)

func TestFixService_RewritesFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "memo.md")
	require.NoError(t, os.WriteFile(path, []byte("ご確認下さい。"), 0644))

	svc := application.NewFixService(fix.Options{})
	summary, err := svc.Apply([]domain.Issue{{
		File:       path,
		Start:      3,
		End:        6,
		Snippet:    "下さい",
		Suggestion: domain.Suggest("ください"),
		RuleID:     "AUX_KUDASAI",
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.FilesChanged)
	assert.Equal(t, 1, summary.Applied)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ご確認ください。", string(got))
}

func TestFixService_UntouchedFileNotRewritten(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "memo.md")
	require.NoError(t, os.WriteFile(path, []byte("これは問題ない。"), 0644))

	svc := application.NewFixService(fix.Options{})
	summary, err := svc.Apply([]domain.Issue{{
		File:     path,
		Start:    0,
		End:      3,
		Snippet:  "これは",
		RuleID:   "NO_SUGGESTION",
		Severity: domain.SeverityInfo,
	}})
	require.NoError(t, err)
	assert.Zero(t, summary.FilesChanged)
	assert.Zero(t, summary.Applied)
}

func TestFixService_MissingFileErrors(t *testing.T) {
	svc := application.NewFixService(fix.Options{})
	_, err := svc.Apply([]domain.Issue{{
		File:       filepath.Join(t.TempDir(), "gone.md"),
		Suggestion: domain.Suggest("x"),
		End:        1,
	}})
	assert.Error(t, err)
}

func TestFixService_FixText(t *testing.T) {
	svc := application.NewFixService(fix.Options{})
	fixed, summary := svc.FixText("有り難う", []domain.Issue{{
		Start:      0,
		End:        4,
		Snippet:    "有り難う",
		Suggestion: domain.Suggest("ありがとう"),
		RuleID:     "OLD_ARIGATOU",
	}})
	assert.Equal(t, "ありがとう", fixed)
	assert.Equal(t, 1, summary.Applied)
	assert.Equal(t, 1, summary.FilesChanged)
}
