package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"blockexplorer/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: ":9090"
logger:
  level: "debug"
  format: "text"
explorer:
  api_base_url: "https://api.example.com"
  tx_page_limit: 25
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, config.LogLevelDebug, cfg.Logger.Level)
	assert.Equal(t, config.LogFormatText, cfg.Logger.Format)
	assert.Equal(t, "https://api.example.com", cfg.Explorer.APIBaseURL)
	assert.Equal(t, 25, cfg.Explorer.TxPageLimit)

	// Untouched sections keep their defaults.
	assert.Equal(t, config.DefaultServerReadTimeoutSeconds, cfg.Server.ReadTimeoutSeconds)
	assert.Equal(t, config.DefaultExplorerClientTimeoutSecond, cfg.Explorer.ClientTimeoutSeconds)
}

func TestLoadConfig_MissingExplicitFileFails(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not a mapping")
	_, err := config.LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	path := writeConfigFile(t, `
logger:
  level: "verbose"
`)
	_, err := config.LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Validate_BadBaseURL(t *testing.T) {
	path := writeConfigFile(t, `
explorer:
  api_base_url: "ftp://api.example.com"
`)
	_, err := config.LoadConfig(path)
	assert.Error(t, err)
}
