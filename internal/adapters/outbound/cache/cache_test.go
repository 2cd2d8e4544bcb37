package cache_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotolint/kotolint/internal/adapters/outbound/cache"
	"github.com/kotolint/kotolint/internal/domain"
)

func TestDigest_StableAndContentSensitive(t *testing.T) {
	a := cache.Digest([]byte("こんにちは"))
	b := cache.Digest([]byte("こんにちは"))
	c := cache.Digest([]byte("こんばんは"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := cache.NewMemoryStore()

	_, ok := s.Get("x.txt")
	assert.False(t, ok)

	entry := cache.Entry{
		ContentHash: "abc",
		Issues:      []domain.Issue{{File: "x.txt", Snippet: "下さい", Severity: domain.SeverityWarn}},
	}
	require.NoError(t, s.Put("x.txt", entry))

	got, ok := s.Get("x.txt")
	require.True(t, ok)
	assert.Equal(t, entry, got)
	assert.NoError(t, s.Close())
}

func TestBoltStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.cache")
	s, err := cache.NewBoltStore(path)
	require.NoError(t, err)
	defer s.Close()

	entry := cache.Entry{
		ContentHash: cache.Digest([]byte("本文")),
		Issues: []domain.Issue{{
			File:       "doc.md",
			Start:      3,
			End:        6,
			Snippet:    "下さい",
			Suggestion: domain.Suggest("ください"),
			Severity:   domain.SeverityWarn,
			RuleID:     "AUX_KUDASAI",
		}},
	}
	require.NoError(t, s.Put("doc.md", entry))

	got, ok := s.Get("doc.md")
	require.True(t, ok)
	assert.Equal(t, entry, got)
}

func TestBoltStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.cache")

	s, err := cache.NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Put("a.txt", cache.Entry{ContentHash: "h1"}))
	require.NoError(t, s.Close())

	s2, err := cache.NewBoltStore(path)
	require.NoError(t, err)
	defer s2.Close()

	got, ok := s2.Get("a.txt")
	require.True(t, ok)
	assert.Equal(t, "h1", got.ContentHash)
}

func TestBoltStore_MissOnUnknownPath(t *testing.T) {
	s, err := cache.NewBoltStore(filepath.Join(t.TempDir(), "scan.cache"))
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.Get("never-stored.txt")
	assert.False(t, ok)
}

func TestBoltStore_UnopenablePath(t *testing.T) {
	dir := t.TempDir()
	// A directory cannot be opened as a database file.
	_, err := cache.NewBoltStore(dir)
	assert.Error(t, err)
}
