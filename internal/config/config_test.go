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
	for _, k := range []string{
		"LOOTLOGGER_CONFIG", "LOOTLOGGER_THEME", "LOOTLOGGER_DEMO_ITEMS",
		"LOOTLOGGER_SEED", "LOOTLOGGER_LOG_FILE", "LOOTLOGGER_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_MissingDefaultFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, `
theme: neon
demo_items: 5
seed_file: loot.json
log:
  file: /tmp/lootlogger.log
  level: debug
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, 5, cfg.DemoItems)
	assert.Equal(t, "loot.json", cfg.SeedFile)
	assert.Equal(t, "/tmp/lootlogger.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ConfigFromEnvPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOOTLOGGER_CONFIG", writeConfig(t, "demo_items: 3\n"))
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.DemoItems)
	assert.Equal(t, "classic", cfg.Theme)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env beats file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOOTLOGGER_THEME", "mono")
		t.Setenv("LOOTLOGGER_DEMO_ITEMS", "7")
		t.Setenv("LOOTLOGGER_SEED", "seed.yaml")
		t.Setenv("LOOTLOGGER_LOG_FILE", "out.log")
		t.Setenv("LOOTLOGGER_LOG_LEVEL", "warn")

		cfg, err := Load(writeConfig(t, "theme: neon\ndemo_items: 1\n"))
		require.NoError(t, err)
		assert.Equal(t, "mono", cfg.Theme)
		assert.Equal(t, 7, cfg.DemoItems)
		assert.Equal(t, "seed.yaml", cfg.SeedFile)
		assert.Equal(t, "out.log", cfg.Log.File)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("bad number", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOOTLOGGER_DEMO_ITEMS", "lots")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a number")
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Theme = "sparkly"
	cfg.DemoItems = -1
	cfg.Log.Level = "loud"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme must be one of: classic neon mono")
	assert.Contains(t, err.Error(), "demo_items must be at least 0")
	assert.Contains(t, err.Error(), "log.level must be one of")

	cfg = Default()
	cfg.DemoItems = 5000
	assert.ErrorContains(t, cfg.Validate(), "demo_items must be at most 1000")
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "theme: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_LeavesValidationToCaller(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOOTLOGGER_DEMO_ITEMS", "5000")
	cfg, err := Load(writeConfig(t, "theme: sparkly\n"))
	require.NoError(t, err)
	assert.Equal(t, "sparkly", cfg.Theme)
	assert.Equal(t, 5000, cfg.DemoItems)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `theme must be one of: classic neon mono (got "sparkly")`)
	assert.Contains(t, err.Error(), "demo_items must be at most 1000")
}
