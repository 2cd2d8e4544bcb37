package morph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotolint/kotolint/internal/domain/morph"
	"github.com/kotolint/kotolint/internal/domain/rules"
)

func newAnalyzer(t *testing.T) *morph.Analyzer {
	t.Helper()
	a, err := morph.NewAnalyzer()
	require.NoError(t, err)
	return a
}

func TestAnalyzer_TokenizesWithRuneOffsets(t *testing.T) {
	a := newAnalyzer(t)
	text := "本を読む"
	tokens := a.Tokenize(text)
	require.NotEmpty(t, tokens)

	runes := []rune(text)
	for _, tok := range tokens {
		require.GreaterOrEqual(t, tok.Start, 0)
		require.LessOrEqual(t, tok.End, len(runes))
		assert.Equal(t, tok.Surface, string(runes[tok.Start:tok.End]))
	}
}

func TestDetector_FlagsRuleMatchingToken(t *testing.T) {
	a := newAnalyzer(t)
	d := morph.NewDetector(a, rules.Builtin())

	issues := d.Scan("ご確認下さい")
	var found bool
	for _, is := range issues {
		if is.RuleID == "MORPH_AUX_KUDASAI" {
			found = true
			assert.Equal(t, "下さい", is.Snippet)
			assert.Equal(t, 3, is.Start)
			assert.Equal(t, 6, is.End)
		}
	}
	assert.True(t, found)
}

func TestSyntaxDetector_ParticleRun(t *testing.T) {
	a := newAnalyzer(t)
	d := morph.NewSyntaxDetector(a)

	issues := d.Scan("資料がが足りない")
	var hit bool
	for _, is := range issues {
		if is.RuleID == "SYN_PARTICLE_RUN" {
			hit = true
			assert.Equal(t, "がが", is.Snippet)
		}
	}
	assert.True(t, hit)
}

func TestSyntaxDetector_NoChain(t *testing.T) {
	a := newAnalyzer(t)
	d := morph.NewSyntaxDetector(a)

	issues := d.Scan("部署の担当の以前の資料の写し")
	var hit bool
	for _, is := range issues {
		if is.RuleID == "SYN_NO_CHAIN" {
			hit = true
		}
	}
	assert.True(t, hit)

	assert.Empty(t, d.Scan("部署の資料"))
}

func TestSyntaxDetector_CleanSentence(t *testing.T) {
	a := newAnalyzer(t)
	d := morph.NewSyntaxDetector(a)
	assert.Empty(t, d.Scan("資料が足りない"))
}
