package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotolint/kotolint/internal/domain"
	"github.com/kotolint/kotolint/internal/domain/rules"
)

func findByRule(issues []domain.Issue, ruleID string) []domain.Issue {
	var out []domain.Issue
	for _, is := range issues {
		if is.RuleID == ruleID {
			out = append(out, is)
		}
	}
	return out
}

func TestBuiltin_ObsoleteArigatou(t *testing.T) {
	d := rules.NewRegexDetector(rules.Builtin())
	issues := findByRule(d.Scan("有り難うございます"), "OLD_ARIGATOU")
	require.Len(t, issues, 1)

	is := issues[0]
	assert.Equal(t, 0, is.Start)
	assert.Equal(t, 4, is.End)
	assert.Equal(t, "有り難う", is.Snippet)
	assert.Equal(t, domain.SeverityInfo, is.Severity)
	require.NotNil(t, is.Suggestion)
	assert.Equal(t, "ありがとう", *is.Suggestion)
}

func TestBuiltin_KanjiAuxiliaryKudasai(t *testing.T) {
	d := rules.NewRegexDetector(rules.Builtin())
	issues := findByRule(d.Scan("ご確認下さい。"), "AUX_KUDASAI")
	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityWarn, issues[0].Severity)
	require.NotNil(t, issues[0].Suggestion)
	assert.Equal(t, "ください", *issues[0].Suggestion)
}

func TestBuiltin_FullWidthSpaceIsError(t *testing.T) {
	d := rules.NewRegexDetector(rules.Builtin())
	issues := findByRule(d.Scan("値　は　こちら"), "WIDTH_FULL_SPACE")
	require.Len(t, issues, 2)
	for _, is := range issues {
		assert.Equal(t, domain.SeverityError, is.Severity)
		require.NotNil(t, is.Suggestion)
		assert.Equal(t, " ", *is.Suggestion)
	}
}

func TestBuiltin_HalfWidthKanaRunIsOneIssue(t *testing.T) {
	d := rules.NewRegexDetector(rules.Builtin())
	issues := findByRule(d.Scan("ﾃｽﾄです"), "WIDTH_HALF_KANA")
	require.Len(t, issues, 1)
	assert.Equal(t, "ﾃｽﾄ", issues[0].Snippet)
	assert.Equal(t, 0, issues[0].Start)
	assert.Equal(t, 3, issues[0].End)
	assert.Nil(t, issues[0].Suggestion)
}

func TestBuiltin_SpaceBetweenJapanese(t *testing.T) {
	d := rules.NewRegexDetector(rules.Builtin())
	issues := findByRule(d.Scan("これ は変です"), "SPACE_BETWEEN_JP")
	require.Len(t, issues, 1)
	assert.Equal(t, "れ は", issues[0].Snippet)
	require.NotNil(t, issues[0].Suggestion)
	assert.Equal(t, "れは", *issues[0].Suggestion)
}

func TestBuiltin_MojibakeRun(t *testing.T) {
	d := rules.NewRegexDetector(rules.Builtin())
	issues := findByRule(d.Scan("文字��化け"), "MOJIBAKE_REPLACEMENT")
	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityError, issues[0].Severity)
}

func TestBuiltin_RuleIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range rules.Builtin() {
		assert.False(t, seen[p.ID], "duplicate rule id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestMerge_OverridesInPlace(t *testing.T) {
	base := rules.Builtin()
	override, err := rules.Compile("OLD_ARIGATOU", `有り難う`, "社内規約: ひらがなで", nil, domain.SeverityError)
	require.NoError(t, err)
	extra, err := rules.Compile("MY_RULE", `独自`, "独自ルール", nil, domain.SeverityInfo)
	require.NoError(t, err)

	merged := rules.Merge(base, []rules.TypoPattern{override, extra})
	assert.Len(t, merged, len(base)+1)

	var found rules.TypoPattern
	for _, p := range merged {
		if p.ID == "OLD_ARIGATOU" {
			found = p
		}
	}
	assert.Equal(t, domain.SeverityError, found.Severity)
	assert.False(t, found.HasReplacement, "override dropped the suggestion")
	assert.Equal(t, "MY_RULE", merged[len(merged)-1].ID)
}

func TestCompile_InvalidPattern(t *testing.T) {
	_, err := rules.Compile("BAD", `([`, "msg", nil, domain.SeverityInfo)
	assert.Error(t, err)
}
