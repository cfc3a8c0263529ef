package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime knob of the service, filled from the
// environment.
type Config struct {
	Port            string        `env:"PORT, default=8080"`
	LogLevel        string        `env:"LOG_LEVEL, default=info"`
	UploadDir       string        `env:"UPLOAD_DIR, default=uploads"`
	DatabaseDSN     string        `env:"DATABASE_DSN, default=host=postgres user=postgres password=postgres dbname=emotion port=5432 sslmode=disable"`
	RedisAddr       string        `env:"REDIS_ADDR, default=redis:6379"`
	VisionAddr      string        `env:"VISION_ADDR, default=vision-service:50051"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=15s"`
}

// Load reads the configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
