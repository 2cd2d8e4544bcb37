package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotolint/kotolint/internal/adapters/outbound/config"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "INFO", cfg.MinSeverity)
	assert.Equal(t, 90, cfg.SpellThreshold)
	assert.True(t, cfg.CommentsEnabled())
	assert.True(t, cfg.CacheEnabled())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := `
min_severity: WARN
comments: false
advanced: true
exclude_paths:
  - "*.generated.md"
katakana_deny:
  - エビデンス
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".kotolint.yaml"), []byte(yaml), 0644))

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "WARN", cfg.MinSeverity)
	assert.False(t, cfg.CommentsEnabled())
	assert.True(t, cfg.Advanced)
	assert.Equal(t, []string{"*.generated.md"}, cfg.ExcludePaths)
	assert.Equal(t, []string{"エビデンス"}, cfg.KatakanaDeny)

	// Untouched fields keep their defaults.
	assert.Equal(t, 90, cfg.SpellThreshold)
	assert.True(t, cfg.CacheEnabled())
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".kotolint.yaml"), []byte("min_severity: [broken"), 0644))
	_, err := config.New().Load(dir)
	assert.Error(t, err)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".kotolint.yaml"), []byte("min_severity: LOUD\n"), 0644))
	_, err := config.New().Load(dir)
	assert.Error(t, err)
}
