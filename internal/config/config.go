package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration shared by both deployments.
type Config struct {
	// Server
	Port           int           `env:"PORT" envDefault:"5000"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"json"` // "json" or "text"
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Bedrock
	Region            string        `env:"AWS_REGION_BEDROCK" envDefault:"us-east-1"`
	ModelID           string        `env:"MODEL_ID"` // empty selects the deployment's default model
	BedrockTimeout    time.Duration `env:"BEDROCK_TIMEOUT" envDefault:"30s"`
	VerifyCredentials bool          `env:"BEDROCK_VERIFY_CREDENTIALS" envDefault:"false"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
