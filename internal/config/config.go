// Package config resolves runtime settings from .env / environment
// variables.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultUserID = "local"
	defaultEmail  = "member@localhost"
)

type Config struct {
	DBPath    string
	UserID    string
	UserEmail string

	GeminiAPIKey string
	GeminiModel  string

	SoundEnabled bool
	SoundVolume  float64

	LogLevel slog.Level
}

// Load reads .env if present (missing file is fine) and resolves settings
// from the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn(".env not loaded", "err", err)
	}
	return FromEnv()
}

func FromEnv() Config {
	cfg := Config{
		DBPath:       os.Getenv("NF_DB_PATH"),
		UserID:       envOr("NF_USER_ID", defaultUserID),
		UserEmail:    envOr("NF_USER_EMAIL", defaultEmail),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envOr("NF_GEMINI_MODEL", "gemini-2.5-flash"),
		SoundEnabled: envOr("NF_SOUND", "1") != "0",
		SoundVolume:  0.5,
		LogLevel:     slog.LevelWarn,
	}

	if v := os.Getenv("NF_VOLUME"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.SoundVolume = f
		}
	}

	switch os.Getenv("NF_LOG") {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "info":
		cfg.LogLevel = slog.LevelInfo
	case "error":
		cfg.LogLevel = slog.LevelError
	}

	return cfg
}

// SetupLogging installs the process-wide slog handler (text to stderr).
func SetupLogging(cfg Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	slog.SetDefault(slog.New(handler))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
