package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string `env:"SERVER_PORT, default=8080"`

	// DBDriver selects the GORM dialect: "mysql" or "sqlite".
	DBDriver string `env:"DB_DRIVER, default=mysql"`
	DBDSN    string `env:"DB_DSN, default=user:password@tcp(localhost:3306)/skicheck?charset=utf8mb4&parseTime=True&loc=Local"`

	RedisAddr string `env:"REDIS_ADDR, default=localhost:6379"`
	RedisDB   int    `env:"REDIS_DB, default=0"`
	RedisPass string `env:"REDIS_PASSWORD"`

	JWTSecret     string `env:"JWT_SECRET, default=change-me"`
	SessionSecret string `env:"SESSION_SECRET, default=change-me-too"`

	// DefaultPassword is assigned to admin-created accounts and used by the
	// password reset operation. The affected member is expected to change it.
	DefaultPassword string `env:"DEFAULT_PASSWORD, default=skicheck"`

	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
}

// Load builds Config from the environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
