package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth   AuthConfig
	SQLite SQLiteConfig
}

type AuthConfig struct {
	// JWTSecret signs access tokens. Loaded once at startup; rotating it
	// invalidates all outstanding tokens.
	JWTSecret  string        `env:"JWT_SECRET, required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,  default=20m"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=todos.db"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
