package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".zenfmt.yaml")
	content := "include:\n  - \"**/*.go\"\nmax_consecutive_blank_lines: 2\nconcurrency: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"**/*.go"}, cfg.Include)
	assert.Equal(t, 2, cfg.MaxConsecutiveBlankLines)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.True(t, cfg.RespectGitignore) // kept from Default(), not overridden by the file
}

func TestLoadIfExistsReturnsDefaultWhenMissing(t *testing.T) {
	cfg, err := LoadIfExists(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".zenfmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("include: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
