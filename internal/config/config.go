// Package config provides functionality for loading and accessing environment variables.
package config

import (
	"os"
	"path/filepath"

	"fjacquet/budget-projector/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file in the working
// directory or its parent, if one exists. It returns the file it loaded.
// Variables already set in the environment win over the file.
func LoadEnv(logger logging.Logger) string {
	if logger == nil {
		logger = logging.NewMockLogger()
	}

	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			logger.Debug("No .env file found, using environment variables")
			return ""
		}
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.WithError(err).Warn("Error loading .env file")
		return ""
	}
	logger.Debug("Loaded environment variables", logging.F("file", envFile))
	return envFile
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// ConfigureLogging builds a logger from LOG_LEVEL and LOG_FORMAT. It is used
// before the configuration itself has been read.
func ConfigureLogging() logging.Logger {
	return logging.New(logging.Options{Level: GetEnv("LOG_LEVEL", "info"), Format: GetEnv("LOG_FORMAT", "text")})
}
