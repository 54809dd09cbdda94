// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config is read once at startup and passed down; nothing reads the
// environment after that.
type Config struct {
	Addr        string `env:"DD_ADDR"          envDefault:":8090"`
	BasePath    string `env:"DD_BASE_PATH"`
	DatabaseURL string `env:"DD_DATABASE_URL"  envDefault:"data/deeper-dungeons.db"`
	WebDir      string `env:"DD_WEB_DIR"`

	ImageDir             string        `env:"DD_IMAGE_DIR"               envDefault:"data/images"`
	ImageBucket          string        `env:"DD_IMAGE_BUCKET"`
	ImageEndpoint        string        `env:"DD_IMAGE_ENDPOINT"`
	ImageRegion          string        `env:"DD_IMAGE_REGION"            envDefault:"auto"`
	ImageAccessKeyID     string        `env:"DD_IMAGE_ACCESS_KEY_ID"`
	ImageSecretAccessKey string        `env:"DD_IMAGE_SECRET_ACCESS_KEY"`
	ImageFetchTimeout    time.Duration `env:"DD_IMAGE_FETCH_TIMEOUT"     envDefault:"30s"`

	AllowedOrigins string        `env:"DD_ALLOWED_ORIGINS" envDefault:"*"`
	AccessToken    string        `env:"DD_ACCESS_TOKEN"`
	ShutdownDelay  time.Duration `env:"DD_SHUTDOWN_DELAY"  envDefault:"500ms"`
	BodyLimit      int           `env:"DD_BODY_LIMIT"      envDefault:"16777216"`

	LogLevel  string `env:"DD_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"DD_LOG_FORMAT" envDefault:"console"`
}

// Load reads a .env file when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, reading environment variables directly")
	}
	return Parse()
}

// Parse reads Config from the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
