package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/techtool/opd-api/internal/llm"
	"github.com/techtool/opd-api/internal/model"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Auth      AuthConfig      `mapstructure:"auth"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Database  DatabaseConfig  `mapstructure:"database"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Log       LogConfig       `mapstructure:"log"`

	// Clinics overrides the built-in catalog when non-empty. DefaultClinic
	// names the profile unknown keys resolve to; empty keeps the built-in
	// default key.
	Clinics       []model.ClinicProfile `mapstructure:"clinics"`
	DefaultClinic string                `mapstructure:"default_clinic"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
	MaxUploadBytes int64         `mapstructure:"max_upload_bytes"`
}

// AuthConfig holds the basic-auth credentials. Password may be a bcrypt hash
// ($2a$/$2b$/$2y$ prefix) or a plain value. Empty user disables auth.
type AuthConfig struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

type OpenAIConfig struct {
	APIKey              string          `mapstructure:"api_key"`
	BaseURL             string          `mapstructure:"base_url"`
	Models              []llm.ModelSpec `mapstructure:"models"`
	TranscribeModel     string          `mapstructure:"transcribe_model"`
	TranscribeFallback  string          `mapstructure:"transcribe_fallback"`
	TranscribeLanguage  string          `mapstructure:"transcribe_language"`
	RequestTimeout      time.Duration   `mapstructure:"request_timeout"`
}

// DatabaseConfig enables the encounter archive when URL is set.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// secrets are environment-only values layered over the file config.
type secrets struct {
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`
	BasicUser    string `envconfig:"BASIC_USER"`
	BasicPass    string `envconfig:"BASIC_PASS"`
	DatabaseURL  string `envconfig:"DATABASE_URL"`
	Port         int    `envconfig:"PORT"`
}

// LoadConfig reads config.yaml (working directory or ./config), applies
// defaults, and overlays secrets from the environment. A missing config file
// is not an error; the defaults plus environment are a complete setup.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var s secrets
	if err := envconfig.Process("", &s); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if s.OpenAIAPIKey != "" {
		cfg.OpenAI.APIKey = s.OpenAIAPIKey
	}
	if s.BasicUser != "" {
		cfg.Auth.User = s.BasicUser
	}
	if s.BasicPass != "" {
		cfg.Auth.Password = s.BasicPass
	}
	if s.DatabaseURL != "" {
		cfg.Database.URL = s.DatabaseURL
	}
	if s.Port != 0 {
		cfg.Server.Port = s.Port
	}

	if cfg.OpenAI.APIKey == "" {
		return nil, errors.New("OPENAI_API_KEY is required")
	}
	if len(cfg.OpenAI.Models) == 0 {
		return nil, errors.New("at least one candidate model is required")
	}
	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 3001)
	viper.SetDefault("server.request_timeout", "60s")
	viper.SetDefault("server.max_body_bytes", 3<<20)
	viper.SetDefault("server.max_upload_bytes", 25<<20)
	viper.SetDefault("openai.models", []map[string]interface{}{
		{"name": "o1-mini"},
		{"name": "gpt-4o-mini"},
	})
	viper.SetDefault("openai.transcribe_model", "gpt-4o-mini-transcribe")
	viper.SetDefault("openai.transcribe_fallback", "whisper-1")
	viper.SetDefault("openai.transcribe_language", "th")
	viper.SetDefault("openai.request_timeout", "30s")
	viper.SetDefault("rate_limit.rps", 1.0)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("cache.ttl", "5m")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", false)
}
