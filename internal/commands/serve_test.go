package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens-dev/spendlens/internal/config"
)

func TestLoadConfig_DefaultFileMissing(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := loadConfig(config.DefaultFile)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spendlens.yaml")
	want := config.Default()
	want.Server.Addr = ":9999"
	require.NoError(t, config.Save(path, want))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SPENDLENS_ADDR", ":7777")
	t.Setenv("SPENDLENS_STATEMENT", "override.csv")

	cfg := config.Default()
	applyEnvOverrides(cfg)

	assert.Equal(t, ":7777", cfg.Server.Addr)
	assert.Equal(t, "override.csv", cfg.Statement.Path)
}
