package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds application configuration.
type Config struct {
	Port             string        `yaml:"port" validate:"required"`
	Env              string        `yaml:"env" validate:"oneof=dev local staging production"`
	CORSAllowOrigin  []string      `yaml:"corsAllowOrigins"`
	LogLevel         string        `yaml:"logLevel" validate:"oneof=trace debug info warn error"`
	LogFormat        string        `yaml:"logFormat" validate:"oneof=json pretty"`
	TikaURL          string        `yaml:"tikaUrl" validate:"omitempty,url"`
	TikaTimeout      time.Duration `yaml:"tikaTimeout" validate:"gt=0"`
	GeminiAPIKey     string        `yaml:"-"`
	GeminiModel      string        `yaml:"geminiModel" validate:"required"`
	RateLimitRPS     float64       `yaml:"rateLimitRps" validate:"gte=0"`
	RateLimitBurst   int           `yaml:"rateLimitBurst" validate:"gte=0"`
	MaxUploadMB      int64         `yaml:"maxUploadMb" validate:"gt=0"`
	MaxStoredReports int           `yaml:"maxStoredReports" validate:"gt=0"`
}

// Defaults returns the configuration used when neither a file nor the environment sets a key.
func Defaults() Config {
	return Config{
		Port:             "8080",
		Env:              "dev",
		CORSAllowOrigin:  []string{"http://localhost:5173"},
		LogLevel:         "info",
		LogFormat:        "json",
		TikaTimeout:      60 * time.Second,
		GeminiModel:      "gemini-1.5-flash",
		RateLimitRPS:     5,
		RateLimitBurst:   20,
		MaxUploadMB:      10,
		MaxStoredReports: 500,
	}
}

// Load reads configuration from an optional YAML file and environment variables, env taking
// precedence, and validates the result.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = normalizeEnv(getEnv("ENV", cfg.Env))
	if raw := os.Getenv("CORS_ALLOW_ORIGINS"); raw != "" {
		cfg.CORSAllowOrigin = splitAndTrim(raw)
	}
	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(getEnv("LOG_FORMAT", cfg.LogFormat))
	cfg.TikaURL = strings.TrimRight(getEnv("TIKA_URL", cfg.TikaURL), "/")
	cfg.GeminiAPIKey = getEnv("GEMINI_API_KEY", cfg.GeminiAPIKey)
	cfg.GeminiModel = getEnv("GEMINI_MODEL", cfg.GeminiModel)

	var err error
	if cfg.TikaTimeout, err = getDuration("TIKA_TIMEOUT", cfg.TikaTimeout); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", cfg.RateLimitRPS); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return Config{}, err
	}
	maxUpload, err := getInt("MAX_UPLOAD_MB", int(cfg.MaxUploadMB))
	if err != nil {
		return Config{}, err
	}
	cfg.MaxUploadMB = int64(maxUpload)
	if cfg.MaxStoredReports, err = getInt("MAX_STORED_REPORTS", cfg.MaxStoredReports); err != nil {
		return Config{}, err
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks struct constraints on cfg.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// MaxUploadBytes is the request body limit for uploads.
func (c Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func getFloat(key string, def float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
