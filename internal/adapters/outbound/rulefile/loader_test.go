package rulefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotolint/kotolint/internal/adapters/outbound/rulefile"
	"github.com/kotolint/kotolint/internal/domain"
)

func writeRules(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeRules(t, "rules.yaml", `
- id: TEAM_NO_KENTOU
  pattern: 検討します
  message: 結論を書く
  severity: WARN
- id: TEAM_DELETE_SPACES
  pattern: "  +"
  replacement: " "
  message: 連続スペース
  severity: INFO
`)

	patterns, err := rulefile.Load(path)
	require.NoError(t, err)
	require.Len(t, patterns, 2)

	assert.Equal(t, "TEAM_NO_KENTOU", patterns[0].ID)
	assert.Equal(t, domain.SeverityWarn, patterns[0].Severity)
	assert.False(t, patterns[0].HasReplacement)

	assert.True(t, patterns[1].HasReplacement)
	assert.Equal(t, " ", patterns[1].Replacement)
}

func TestLoad_JSON(t *testing.T) {
	path := writeRules(t, "rules.json", `[
  {"id": "J1", "pattern": "テスト", "message": "m", "severity": "ERROR"}
]`)

	patterns, err := rulefile.Load(path)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, domain.SeverityError, patterns[0].Severity)
}

func TestLoad_WrappedMappingAccepted(t *testing.T) {
	path := writeRules(t, "rules.yaml", `
rules:
  - id: WRAPPED
    pattern: テスト
    message: m
`)

	patterns, err := rulefile.Load(path)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, "WRAPPED", patterns[0].ID)
}

func TestLoad_EmptyReplacementMeansDelete(t *testing.T) {
	path := writeRules(t, "rules.yaml", `
- id: DEL
  pattern: 消す
  replacement: ""
  message: 削除
`)

	patterns, err := rulefile.Load(path)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.True(t, patterns[0].HasReplacement)
	assert.Equal(t, "", patterns[0].Replacement)
	// Severity defaults to WARN when omitted.
	assert.Equal(t, domain.SeverityWarn, patterns[0].Severity)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeRules(t, "broken.yaml", "- id: [\n")
	_, err := rulefile.Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingID(t *testing.T) {
	path := writeRules(t, "rules.yaml", "- pattern: x\n  message: m\n")
	_, err := rulefile.Load(path)
	assert.Error(t, err)
}

func TestLoad_BadRegex(t *testing.T) {
	path := writeRules(t, "rules.yaml", "- id: BAD\n  pattern: '(['\n  message: m\n")
	_, err := rulefile.Load(path)
	assert.Error(t, err)
}

func TestLoad_BadSeverity(t *testing.T) {
	path := writeRules(t, "rules.yaml", "- id: S\n  pattern: x\n  message: m\n  severity: LOUD\n")
	_, err := rulefile.Load(path)
	assert.Error(t, err)
}

func TestLoadAll_LaterFileOverrides(t *testing.T) {
	a := writeRules(t, "a.yaml", "- id: R\n  pattern: 一\n  message: first\n  severity: INFO\n")
	b := writeRules(t, "b.yaml", "- id: R\n  pattern: 二\n  message: second\n  severity: ERROR\n")

	patterns, errs := rulefile.LoadAll([]string{a, b})
	assert.Empty(t, errs)
	require.Len(t, patterns, 1)
	assert.Equal(t, "second", patterns[0].Message)
	assert.Equal(t, domain.SeverityError, patterns[0].Severity)
}

func TestLoadAll_BadFileSkippedOthersLoad(t *testing.T) {
	bad := writeRules(t, "bad.yaml", "- id: BAD\n  pattern: '(['\n  message: m\n")
	good := writeRules(t, "good.yaml", "- id: GOOD\n  pattern: 良い\n  message: m\n")

	patterns, errs := rulefile.LoadAll([]string{bad, good})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "bad.yaml")
	require.Len(t, patterns, 1)
	assert.Equal(t, "GOOD", patterns[0].ID)
}
