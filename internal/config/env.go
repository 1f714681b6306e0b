package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error: deployments usually set variables
// system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// RequireOpenAIKey validates OPENAI_API_KEY is present and plausibly
// formed. Fail-fast: serve and ingest refuse to start without it.
func RequireOpenAIKey() error {
	key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if key == "" {
		return fmt.Errorf("OPENAI_API_KEY must be set in environment or .env file")
	}
	if !strings.HasPrefix(key, "sk-") {
		return fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
	}
	if len(key) < 20 {
		return fmt.Errorf("invalid OPENAI_API_KEY format: too short")
	}
	return nil
}
