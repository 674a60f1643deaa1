package config

import (
	"errors"
	"fmt"
	"strings"
)

// Default config values.
const (
	DefaultConfigFilePath = "config/config.yml"

	DefaultServerPort                     = ":8080"
	DefaultServerReadTimeoutSeconds       = 30
	DefaultServerWriteTimeoutSeconds      = 30
	DefaultServerIdleTimeoutSeconds       = 60
	DefaultServerReadHeaderTimeoutSeconds = 30

	DefaultLoggerLevel  = LogLevelInfo
	DefaultLoggerFormat = LogFormatJSON

	DefaultExplorerAPIBaseURL          = "https://api.blockcypher.com"
	DefaultExplorerClientTimeoutSecond = 20
	DefaultExplorerTxPageLimit         = 50
)

// LogLevel defines the type for logger levels.
type LogLevel string

// LogFormat defines the type for logger output formats.
type LogFormat string

// Defines the supported logger levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Defines the supported logger output formats.
const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Logger   LoggerConfig   `yaml:"logger"`
	Explorer ExplorerConfig `yaml:"explorer"`
}

// ServerConfig holds all configuration related to the HTTP server.
type ServerConfig struct {
	Port                     string `yaml:"port"`
	ReadTimeoutSeconds       int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds      int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds       int    `yaml:"idle_timeout_seconds"`
	ReadHeaderTimeoutSeconds int    `yaml:"read_header_timeout_seconds"`
}

// LoggerConfig holds all configuration related to logging.
type LoggerConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// ExplorerConfig holds all configuration related to the upstream data API client.
type ExplorerConfig struct {
	APIBaseURL           string `yaml:"api_base_url"`
	ClientTimeoutSeconds int    `yaml:"client_timeout_seconds"`
	TxPageLimit          int    `yaml:"tx_page_limit"`
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" || (strings.HasPrefix(c.Server.Port, ":") && len(c.Server.Port) == 1) {
		return errors.New("server port (config key: server.port) cannot be empty or just ':'")
	}
	if c.Server.ReadTimeoutSeconds < 0 {
		return errors.New("server read timeout seconds (config key: server.read_timeout_seconds) cannot be negative")
	}
	if c.Server.WriteTimeoutSeconds < 0 {
		return errors.New("server write timeout seconds (config key: server.write_timeout_seconds) cannot be negative")
	}
	if c.Server.IdleTimeoutSeconds < 0 {
		return errors.New("server idle timeout seconds (config key: server.idle_timeout_seconds) cannot be negative")
	}
	if c.Server.ReadHeaderTimeoutSeconds < 0 {
		return errors.New(
			"server read header timeout seconds (config key: server.read_header_timeout_seconds) cannot be negative",
		)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(string(c.Logger.Level))] {
		return fmt.Errorf(
			"invalid logger level (config key: logger.level): '%s', must be one of: debug, info, warn, error",
			c.Logger.Level,
		)
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(string(c.Logger.Format))] {
		return fmt.Errorf(
			"invalid logger format (config key: logger.format): '%s', must be one of: json, text",
			c.Logger.Format,
		)
	}

	if c.Explorer.APIBaseURL == "" {
		return errors.New("explorer API base URL (config key: explorer.api_base_url) cannot be empty")
	}
	if !strings.HasPrefix(c.Explorer.APIBaseURL, "http://") && !strings.HasPrefix(c.Explorer.APIBaseURL, "https://") {
		return fmt.Errorf(
			"explorer API base URL (config key: explorer.api_base_url) must be an http(s) URL, got '%s'",
			c.Explorer.APIBaseURL,
		)
	}
	if c.Explorer.ClientTimeoutSeconds <= 0 {
		return errors.New("explorer client timeout seconds (config key: explorer.client_timeout_seconds) must be greater than 0")
	}
	if c.Explorer.TxPageLimit <= 0 {
		return errors.New("explorer transaction page limit (config key: explorer.tx_page_limit) must be greater than 0")
	}

	return nil
}
