package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable. The OpenAI
// credential is deliberately NOT required: without it the service still
// starts and answers every request from the fallback generator.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		errors = append(errors, fmt.Sprintf("SERVER_PORT must be numeric, got %q", cfg.ServerPort))
	}

	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		errors = append(errors, fmt.Sprintf("DB_DRIVER must be postgres or sqlite, got %q", cfg.DBDriver))
	}

	if cfg.DBDriver == "postgres" {
		if cfg.DBHost == "" {
			errors = append(errors, "DB_HOST is required for the postgres driver")
		}
		if _, err := strconv.Atoi(cfg.DBPort); err != nil {
			errors = append(errors, fmt.Sprintf("DB_PORT must be numeric, got %q", cfg.DBPort))
		}
	}

	if cfg.OpenAIAPIURL == "" {
		errors = append(errors, "OPENAI_API_URL must not be empty")
	}
	if cfg.OpenAIModel == "" {
		errors = append(errors, "OPENAI_MODEL must not be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
