// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "debug")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 15*time.Second)

	v.SetDefault("github.base_url", "https://api.github.com")
	v.SetDefault("github.user_agent", "gitreceipt/0.1")
	v.SetDefault("github.events_limit", 100)
	v.SetDefault("github.repos_limit", 10)
	v.SetDefault("github.request_timeout", 10*time.Second)

	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("gemini.model", "gemini-pro")
	v.SetDefault("gemini.request_timeout", 8*time.Second)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"github.base_url",
		"github.token",
		"github.user_agent",
		"github.events_limit",
		"github.repos_limit",
		"github.request_timeout",
		"gemini.api_key",
		"gemini.model",
		"gemini.base_url",
		"gemini.request_timeout",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
