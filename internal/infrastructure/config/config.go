package config

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`
	OTPTTL     time.Duration `env:"OTP_TTL,     default=5m"`

	Redis   RedisConfig
	AuthAPI AuthAPIConfig
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type AuthAPIConfig struct {
	URL     string        `env:"AUTH_API_URL"`
	Timeout time.Duration `env:"AUTH_API_TIMEOUT, default=10s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(logger zerolog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Error().Err(err).Msg("failed to load configuration")
		panic(err)
	}
	return &cfg
}
