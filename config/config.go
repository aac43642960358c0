package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultAllowedOrigins = "http://localhost:8080,http://localhost:3000"

type Config struct {
	ServerPort         string
	APIKey             string
	MaxFileSize        int64
	RateLimitPerMinute int // 0 disables rate limiting
	AllowedOrigins     []string
	TesseractDataPath  string
	OCRFallback        bool
	BatchConcurrency   int
	LogLevel           slog.Level
}

// LoadConfig reads settings from the environment, after loading a .env file
// from the working directory if one exists. Invalid numeric values fall back
// to their defaults.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	serverPort := os.Getenv("PORT")
	if serverPort == "" {
		serverPort = os.Getenv("SERVER_PORT")
	}
	if serverPort == "" {
		serverPort = "8080"
	}

	return &Config{
		ServerPort:         serverPort,
		APIKey:             strings.TrimSpace(os.Getenv("API_KEY")),
		MaxFileSize:        int64(positiveInt("MAX_FILE_SIZE_MB", 10)) << 20,
		RateLimitPerMinute: nonNegativeInt("RATE_LIMIT_PER_MINUTE", 60),
		AllowedOrigins:     splitList(stringEnv("ALLOWED_ORIGINS", defaultAllowedOrigins)),
		TesseractDataPath:  os.Getenv("TESSDATA_PREFIX"),
		OCRFallback:        boolEnv("OCR_FALLBACK"),
		BatchConcurrency:   positiveInt("BATCH_CONCURRENCY", 4),
		LogLevel:           logLevel(os.Getenv("LOG_LEVEL")),
	}, nil
}

func positiveInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func nonNegativeInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func stringEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func boolEnv(key string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && b
}

// splitList parses a comma separated list. "*" allows any origin.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func logLevel(v string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
		return slog.LevelInfo
	}
	return level
}
