package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)
	for _, k := range []string{EnvJournal, EnvLogFile, EnvLogLevel, EnvFormat, EnvTUITheme, EnvTUIGlyphs} {
		t.Setenv(k, "")
	}
	return dir
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	isolate(t)
	cfg, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveAndLoadFile(t *testing.T) {
	dir := isolate(t)
	want := Default()
	want.Journal = "/tmp/board.jsonl"
	want.TUI.Glyphs = "ascii"
	require.NoError(t, SaveFile(want))
	assert.FileExists(t, filepath.Join(dir, "config.json"))

	got, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFileRejectsBadJSON(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{"), 0o644))
	_, err := LoadFile()
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.Format = "json"
	cfg.Journal = "from-file.jsonl"
	require.NoError(t, SaveFile(cfg))

	t.Setenv(EnvFormat, "edn")
	t.Setenv(EnvJournal, "from-env.sqlite")

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "edn", got.Format)
	assert.Equal(t, "from-env.sqlite", got.Journal)
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	isolate(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PROJECTBOARD_TEST_DOTENV=from-file\nPROJECTBOARD_TEST_KEEP=from-file\n"), 0o644))

	t.Setenv("PROJECTBOARD_TEST_KEEP", "from-env")
	t.Setenv("PROJECTBOARD_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("PROJECTBOARD_TEST_DOTENV"))

	LoadDotEnv(envFile, filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "from-file", os.Getenv("PROJECTBOARD_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("PROJECTBOARD_TEST_KEEP"))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Format = "yaml"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.TUI.Theme = "sepia"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.TUI.Glyphs = "emoji"
	assert.Error(t, cfg.Validate())
}
