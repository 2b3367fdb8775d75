package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"CONSOLE_PORT, default=8080"`
	Env      string `env:"ENV,          default=development"`
	LogLevel string `env:"LOG_LEVEL,    default=info"`

	// NotifyTTL is how long a notification stays visible before it
	// auto-dismisses.
	NotifyTTL time.Duration `env:"NOTIFY_TTL, default=3s"`

	API APIConfig
}

type APIConfig struct {
	// BaseURL is the origin of the remote blog API all calls are issued
	// against.
	BaseURL string        `env:"API_BASE_URL, default=http://localhost:3000/api"`
	Timeout time.Duration `env:"API_TIMEOUT,  default=15s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Development reports whether the console runs in development mode, which
// switches logging to pretty console output.
func (c *Config) Development() bool {
	return c.Env == "development"
}
