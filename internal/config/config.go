// Package config implements application configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads the configuration from a YAML file. Sections missing from
// the file keep their defaults; a missing default file is not an error.
func LoadConfig(filePath string) (*Config, error) {
	cfg := defaultConfig()

	loadPath := filePath
	if loadPath == "" {
		loadPath = DefaultConfigFilePath
	}

	fileBytes, err := os.ReadFile(loadPath)
	if err != nil {
		if os.IsNotExist(err) && (filePath == "" || filePath == DefaultConfigFilePath) {
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", loadPath, err)
	}

	type partialConfig struct {
		Server   *ServerConfig   `yaml:"server"`
		Logger   *LoggerConfig   `yaml:"logger"`
		Explorer *ExplorerConfig `yaml:"explorer"`
	}
	var pCfg partialConfig

	if err := yaml.Unmarshal(fileBytes, &pCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", loadPath, err)
	}

	if pCfg.Server != nil {
		if pCfg.Server.Port != "" {
			cfg.Server.Port = pCfg.Server.Port
		}
		if pCfg.Server.ReadTimeoutSeconds > 0 {
			cfg.Server.ReadTimeoutSeconds = pCfg.Server.ReadTimeoutSeconds
		}
		if pCfg.Server.WriteTimeoutSeconds > 0 {
			cfg.Server.WriteTimeoutSeconds = pCfg.Server.WriteTimeoutSeconds
		}
		if pCfg.Server.IdleTimeoutSeconds > 0 {
			cfg.Server.IdleTimeoutSeconds = pCfg.Server.IdleTimeoutSeconds
		}
		if pCfg.Server.ReadHeaderTimeoutSeconds > 0 {
			cfg.Server.ReadHeaderTimeoutSeconds = pCfg.Server.ReadHeaderTimeoutSeconds
		}
	}
	if pCfg.Logger != nil {
		if pCfg.Logger.Level != "" {
			cfg.Logger.Level = pCfg.Logger.Level
		}
		if pCfg.Logger.Format != "" {
			cfg.Logger.Format = pCfg.Logger.Format
		}
	}
	if pCfg.Explorer != nil {
		if pCfg.Explorer.APIBaseURL != "" {
			cfg.Explorer.APIBaseURL = pCfg.Explorer.APIBaseURL
		}
		if pCfg.Explorer.ClientTimeoutSeconds > 0 {
			cfg.Explorer.ClientTimeoutSeconds = pCfg.Explorer.ClientTimeoutSeconds
		}
		if pCfg.Explorer.TxPageLimit > 0 {
			cfg.Explorer.TxPageLimit = pCfg.Explorer.TxPageLimit
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in '%s': %w", loadPath, err)
	}

	return cfg, nil
}

// defaultConfig returns a Config populated with all default values.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                     DefaultServerPort,
			ReadTimeoutSeconds:       DefaultServerReadTimeoutSeconds,
			WriteTimeoutSeconds:      DefaultServerWriteTimeoutSeconds,
			IdleTimeoutSeconds:       DefaultServerIdleTimeoutSeconds,
			ReadHeaderTimeoutSeconds: DefaultServerReadHeaderTimeoutSeconds,
		},
		Logger: LoggerConfig{
			Level:  DefaultLoggerLevel,
			Format: DefaultLoggerFormat,
		},
		Explorer: ExplorerConfig{
			APIBaseURL:           DefaultExplorerAPIBaseURL,
			ClientTimeoutSeconds: DefaultExplorerClientTimeoutSecond,
			TxPageLimit:          DefaultExplorerTxPageLimit,
		},
	}
}
