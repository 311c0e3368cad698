package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, first folding in a
// .env file from the working directory when one exists. A missing .env is
// not an error; explicit environment always wins over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.APIBaseURL = getEnv("FINLEDGER_API_URL", cfg.APIBaseURL)
	cfg.DatabasePath = getEnv("FINLEDGER_DB_PATH", cfg.DatabasePath)
	cfg.ExportDir = getEnv("FINLEDGER_EXPORT_DIR", cfg.ExportDir)
	cfg.RequestTimeout = getEnvDuration("FINLEDGER_REQUEST_TIMEOUT", cfg.RequestTimeout)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
