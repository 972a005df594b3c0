package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	GitHub  GitHubConfig  `mapstructure:"github"`
	Gemini  GeminiConfig  `mapstructure:"gemini"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.GitHub.BaseURL == "" {
		return errors.New("github.base_url is required")
	}
	if c.GitHub.EventsLimit <= 0 || c.GitHub.ReposLimit <= 0 {
		return errors.New("github.events_limit and github.repos_limit must be positive")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// GitHubConfig describes the activity source API.
type GitHubConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	Token          string        `mapstructure:"token"`
	UserAgent      string        `mapstructure:"user_agent"`
	EventsLimit    int           `mapstructure:"events_limit"`
	ReposLimit     int           `mapstructure:"repos_limit"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// GeminiConfig describes the optional surcharge-label enrichment API.
type GeminiConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	Model          string        `mapstructure:"model"`
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Enabled reports whether the enrichment provider is configured.
func (g GeminiConfig) Enabled() bool {
	return g.APIKey != ""
}
