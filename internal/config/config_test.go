package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RESUMEDIT_DATA_DIR",
		"RESUMEDIT_STORAGE",
		"RESUMEDIT_STORAGE_KEY",
		"RESUMEDIT_EXPORT_FILE",
		"RESUMEDIT_LOG_LEVEL",
		"RESUMEDIT_LOG_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParse_Defaults(t *testing.T) {
	clearEnv(t)
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(xdg, "resumedit"), cfg.DataDir)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "resume-data", cfg.StorageKey)
	assert.Equal(t, "resume-data.json", cfg.ExportFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, filepath.Join(xdg, "resumedit", "resumedit.db"), cfg.DatabasePath())
}

func TestParse_Overrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("RESUMEDIT_DATA_DIR", dir)
	t.Setenv("RESUMEDIT_STORAGE", "file")
	t.Setenv("RESUMEDIT_STORAGE_KEY", "cv")
	t.Setenv("RESUMEDIT_EXPORT_FILE", "out.json")
	t.Setenv("RESUMEDIT_LOG_LEVEL", "debug")
	t.Setenv("RESUMEDIT_LOG_FILE", filepath.Join(dir, "resumedit.log"))

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, StorageFile, cfg.Storage)
	assert.Equal(t, "cv", cfg.StorageKey)
	assert.Equal(t, "out.json", cfg.ExportFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "resumedit.log"), cfg.LogFile)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown storage", "RESUMEDIT_STORAGE", "redis"},
		{"unknown log level", "RESUMEDIT_LOG_LEVEL", "verbose"},
		{"key with separator", "RESUMEDIT_STORAGE_KEY", "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("RESUMEDIT_DATA_DIR", t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestValidate_AfterOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("RESUMEDIT_DATA_DIR", t.TempDir())

	cfg, err := Parse()
	require.NoError(t, err)

	cfg.Storage = "redis"
	assert.ErrorContains(t, cfg.Validate(), "invalid config")

	cfg.Storage = StorageFile
	assert.NoError(t, cfg.Validate())
}
