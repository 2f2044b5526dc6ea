package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// OCR engine
	OCREngineURL      string
	OCRTimeoutSeconds int
	// Gap analysis
	GapThresholdDays      int
	GapMatchToleranceDays int
	// Upload limits
	MaxUploadSizeMB int
	// Rate limiting (upload endpoint)
	RateLimitWindowSeconds   int
	RateLimitUploadThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignored elsewhere.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// OCR engine configuration
		OCREngineURL:      strings.TrimRight(getEnv("OCR_ENGINE_URL", ""), "/"),
		OCRTimeoutSeconds: getEnvInt("OCR_TIMEOUT_SECONDS", 30), // per-attempt timeout
		// Gap analysis configuration (overridable per request for testing)
		GapThresholdDays:      getEnvInt("GAP_THRESHOLD_DAYS", 90),
		GapMatchToleranceDays: getEnvInt("GAP_MATCH_TOLERANCE_DAYS", 1),
		// Upload configuration
		MaxUploadSizeMB: getEnvInt("MAX_UPLOAD_SIZE_MB", 10),
		// Rate limiting (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 10),
	}

	if cfg.OCREngineURL == "" {
		log.Println("WARNING: OCR_ENGINE_URL is missing. Resume recognition will fail until it is configured.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
