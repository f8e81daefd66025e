package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Settings are the process level options read from the environment
type Settings struct {
	DBPath       string
	LogLevel     string
	LogFormat    string
	OutputFormat string
}

// LoadSettings reads settings from the environment. A .env file in the working
// directory (or the file named by TAXPLAN_ENV_FILE) is loaded first when present.
func LoadSettings() (Settings, error) {
	if err := loadEnv(); err != nil {
		return Settings{}, err
	}

	s := Settings{
		DBPath:       getEnv("TAXPLAN_DB_PATH", "./data/taxplan.db"),
		LogLevel:     getEnv("TAXPLAN_LOG_LEVEL", "info"),
		LogFormat:    strings.ToLower(getEnv("TAXPLAN_LOG_FORMAT", "text")),
		OutputFormat: getEnv("TAXPLAN_OUTPUT_FORMAT", "console"),
	}
	return s, s.Validate()
}

// Validate checks the settings for obviously wrong values
func (s Settings) Validate() error {
	if strings.TrimSpace(s.DBPath) == "" {
		return fmt.Errorf("TAXPLAN_DB_PATH cannot be empty")
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("TAXPLAN_LOG_FORMAT must be text or json, got %q", s.LogFormat)
	}
	if strings.TrimSpace(s.OutputFormat) == "" {
		return fmt.Errorf("TAXPLAN_OUTPUT_FORMAT cannot be empty")
	}
	return nil
}

func loadEnv() error {
	if envFile := os.Getenv("TAXPLAN_ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
