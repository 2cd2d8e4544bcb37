package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotolint/kotolint/internal/domain"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Severity
	}{
		{"INFO", domain.SeverityInfo},
		{"info", domain.SeverityInfo},
		{"WARN", domain.SeverityWarn},
		{"warning", domain.SeverityWarn},
		{" ERROR ", domain.SeverityError},
	}
	for _, tt := range tests {
		sev, err := domain.ParseSeverity(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, sev, tt.in)
	}
}

func TestParseSeverity_Unknown(t *testing.T) {
	_, err := domain.ParseSeverity("FATAL")
	assert.Error(t, err)
}

func TestSeverity_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(domain.SeverityWarn)
	require.NoError(t, err)
	assert.Equal(t, `"WARN"`, string(data))

	var sev domain.Severity
	require.NoError(t, json.Unmarshal([]byte(`"ERROR"`), &sev))
	assert.Equal(t, domain.SeverityError, sev)
}

func TestFilterSeverity(t *testing.T) {
	issues := []domain.Issue{
		{RuleID: "a", Severity: domain.SeverityInfo},
		{RuleID: "b", Severity: domain.SeverityWarn},
		{RuleID: "c", Severity: domain.SeverityError},
		{RuleID: "d", Severity: domain.SeverityWarn},
	}

	got := domain.FilterSeverity(issues, domain.SeverityWarn)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].RuleID)
	assert.Equal(t, "c", got[1].RuleID)
	assert.Equal(t, "d", got[2].RuleID)
}

func TestFilterSeverity_InfoKeepsAll(t *testing.T) {
	issues := []domain.Issue{{Severity: domain.SeverityInfo}, {Severity: domain.SeverityError}}
	assert.Len(t, domain.FilterSeverity(issues, domain.SeverityInfo), 2)
}

func TestOffsetToLineCol(t *testing.T) {
	// Multibyte text: offsets count codepoints, not bytes.
	text := "こんにちは\n世界です\nabc"

	line, col := domain.OffsetToLineCol(text, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = domain.OffsetToLineCol(text, 6) // 世
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	line, col = domain.OffsetToLineCol(text, 12) // b
	assert.Equal(t, 3, line)
	assert.Equal(t, 2, col)
}

func TestReport_HasIssues(t *testing.T) {
	r := &domain.Report{}
	assert.False(t, r.HasIssues())
	r.Issues = append(r.Issues, domain.Issue{})
	assert.True(t, r.HasIssues())
}

func TestIssue_SuggestionJSON(t *testing.T) {
	// nil suggestion is omitted; empty string suggestion survives.
	noSug, err := json.Marshal(domain.Issue{Snippet: "x"})
	require.NoError(t, err)
	assert.NotContains(t, string(noSug), "suggestion")

	deleteSug, err := json.Marshal(domain.Issue{Snippet: "x", Suggestion: domain.Suggest("")})
	require.NoError(t, err)
	assert.Contains(t, string(deleteSug), `"suggestion":""`)
}
