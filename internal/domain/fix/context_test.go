package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kotolint/kotolint/internal/domain"
	"github.com/kotolint/kotolint/internal/domain/fix"
)

func TestContextGuard_SkipsInsideURL(t *testing.T) {
	content := "リンク: https://example.com/ﾍﾟｰｼﾞ を参照。"
	runes := []rune(content)
	start := -1
	for i, r := range runes {
		if r == 'ﾍ' {
			start = i
			break
		}
	}
	is := domain.Issue{Start: start, End: start + 4, Snippet: "ﾍﾟｰｼ", Suggestion: domain.Suggest("ページ"), RuleID: "WIDTH_HALF_KANA"}

	guarded := fix.Apply(content, []domain.Issue{is}, fix.Options{ContextGuard: true})
	assert.Equal(t, content, guarded.Content)
	assert.Equal(t, 1, guarded.Skipped)

	unguarded := fix.Apply(content, []domain.Issue{is}, fix.Options{})
	assert.Equal(t, 1, unguarded.Applied)
}

func TestContextGuard_SkipsInsideInlineCode(t *testing.T) {
	content := "設定は `全角　スペース` を見ます。"
	runes := []rune(content)
	start := -1
	for i, r := range runes {
		if r == '　' {
			start = i
			break
		}
	}
	is := domain.Issue{Start: start, End: start + 1, Snippet: "　", Suggestion: domain.Suggest(" "), RuleID: "WIDTH_FULL_SPACE"}

	res := fix.Apply(content, []domain.Issue{is}, fix.Options{ContextGuard: true})
	assert.Equal(t, content, res.Content)
	assert.Equal(t, 1, res.Skipped)
}

func TestContextGuard_URLAnywhereInWindowSkips(t *testing.T) {
	// The issue does not touch the URL, but its presence in the window
	// is enough to veto the fix.
	content := "仕様は ご確認下さい。詳細: https://example.com/spec"
	is := domain.Issue{Start: 7, End: 10, Snippet: "下さい", Suggestion: domain.Suggest("ください"), RuleID: "AUX_KUDASAI"}

	guarded := fix.Apply(content, []domain.Issue{is}, fix.Options{ContextGuard: true})
	assert.Equal(t, content, guarded.Content)
	assert.Equal(t, 1, guarded.Skipped)

	unguarded := fix.Apply(content, []domain.Issue{is}, fix.Options{})
	assert.Equal(t, 1, unguarded.Applied)
}

func TestContextGuard_LowJapaneseSnippetSkips(t *testing.T) {
	// One Japanese rune among ASCII is not enough to call it prose.
	content := "メモ TODO: 済 です。"
	is := domain.Issue{Start: 3, End: 10, Snippet: "TODO: 済", Suggestion: domain.Suggest("済み"), RuleID: "TEAM_RULE"}

	res := fix.Apply(content, []domain.Issue{is}, fix.Options{ContextGuard: true})
	assert.Equal(t, content, res.Content)
	assert.Equal(t, 1, res.Skipped)
}

func TestContextGuard_ProseStillFixed(t *testing.T) {
	content := "本日はご確認下さいますようお願いします。"
	is := domain.Issue{Start: 6, End: 9, Snippet: "下さい", Suggestion: domain.Suggest("ください"), RuleID: "AUX_KUDASAI"}

	res := fix.Apply(content, []domain.Issue{is}, fix.Options{ContextGuard: true})
	assert.Equal(t, 1, res.Applied)
	assert.Contains(t, res.Content, "ご確認ください")
}
