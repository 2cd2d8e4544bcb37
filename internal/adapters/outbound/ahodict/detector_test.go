package ahodict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotolint/kotolint/internal/adapters/outbound/ahodict"
	"github.com/kotolint/kotolint/internal/domain"
)

func TestDetector_FindsVariant(t *testing.T) {
	d, err := ahodict.NewDetector([]ahodict.Variant{
		{From: "兎に角", To: "とにかく", Severity: domain.SeverityInfo},
	})
	require.NoError(t, err)

	issues := d.Scan("兎に角やってみる。")
	require.Len(t, issues, 1)
	assert.Equal(t, 0, issues[0].Start)
	assert.Equal(t, 3, issues[0].End)
	assert.Equal(t, "兎に角", issues[0].Snippet)
	require.NotNil(t, issues[0].Suggestion)
	assert.Equal(t, "とにかく", *issues[0].Suggestion)
	assert.Equal(t, "VARIANT_DICT", issues[0].RuleID)
}

func TestDetector_RuneOffsetsAfterMultibytePrefix(t *testing.T) {
	d, err := ahodict.NewDetector([]ahodict.Variant{
		{From: "サーバー", To: "サーバ", Severity: domain.SeverityInfo},
	})
	require.NoError(t, err)

	issues := d.Scan("本番環境のサーバーを再起動。")
	require.Len(t, issues, 1)
	assert.Equal(t, 5, issues[0].Start)
	assert.Equal(t, 9, issues[0].End)
}

func TestDetector_MultipleHits(t *testing.T) {
	d, err := ahodict.NewDetector(ahodict.DefaultVariants())
	require.NoError(t, err)

	issues := d.Scan("ユーザーがサーバーに接続。")
	require.Len(t, issues, 2)
	assert.Equal(t, "ユーザー", issues[0].Snippet)
	assert.Equal(t, "サーバー", issues[1].Snippet)
}

func TestNewDetector_RejectsEmptySurface(t *testing.T) {
	_, err := ahodict.NewDetector([]ahodict.Variant{{From: "", To: "x"}})
	assert.Error(t, err)
}
