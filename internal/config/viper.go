// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"fjacquet/budget-projector/internal/logging"
	"fjacquet/budget-projector/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "BUDGET"

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig controls ledger CSV export.
type CSVConfig struct {
	Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
	IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
}

// OutputConfig selects the default output of the project command.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// DisplayConfig controls terminal rendering.
type DisplayConfig struct {
	Currency string `mapstructure:"currency" yaml:"currency"`
	Locale   string `mapstructure:"locale" yaml:"locale"`
}

// ScenarioConfig locates the scenario file.
type ScenarioConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// NormalizerConfig controls input validation.
type NormalizerConfig struct {
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

// ProjectionConfig toggles legacy projection behaviour.
type ProjectionConfig struct {
	LegacyJanuaryExpense bool  `mapstructure:"legacy_january_expense" yaml:"legacy_january_expense"`
	JanuaryExpense       int64 `mapstructure:"january_expense" yaml:"january_expense"`
}

// Config represents the complete application configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	CSV        CSVConfig        `mapstructure:"csv" yaml:"csv"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output"`
	Display    DisplayConfig    `mapstructure:"display" yaml:"display"`
	Scenario   ScenarioConfig   `mapstructure:"scenario" yaml:"scenario"`
	Normalizer NormalizerConfig `mapstructure:"normalizer" yaml:"normalizer"`
	Projection ProjectionConfig `mapstructure:"projection" yaml:"projection"`
}

// Default returns the configuration used when nothing overrides it. It
// panics if the built-in defaults do not decode.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decodeConfig(v)
	if err != nil {
		panic(fmt.Sprintf("config: built-in defaults: %v", err))
	}
	return cfg
}

func decodeConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return InitializeConfigFromFile("")
}

// InitializeConfigFromFile is InitializeConfig reading configFile instead of
// searching the standard locations. An explicit file that cannot be read is
// an error; a missing config.yaml in the standard locations is not.
func InitializeConfigFromFile(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.budget-projector")
		v.AddConfigPath(".budget-projector")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless explicit)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	config, err := decodeConfig(v)
	if err != nil {
		return nil, err
	}

	// 5. Validate configuration
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", true)

	v.SetDefault("output.format", "table")

	v.SetDefault("display.currency", "Rp")
	v.SetDefault("display.locale", "en")

	v.SetDefault("scenario.file", "budget.yaml")

	v.SetDefault("normalizer.strict", false)

	v.SetDefault("projection.legacy_january_expense", false)
	v.SetDefault("projection.january_expense", 2840000)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if err := validation.IsValidDelimiter(config.CSV.Delimiter); err != nil {
		return err
	}

	if err := validation.IsValidOutputFormat(config.Output.Format); err != nil {
		return err
	}

	if err := validation.IsValidLocale(config.Display.Locale); err != nil {
		return err
	}

	if err := validation.IsValidScenarioFile(config.Scenario.File); err != nil {
		return err
	}

	if config.Projection.JanuaryExpense < 0 {
		return fmt.Errorf("projection.january_expense must not be negative, got: %d", config.Projection.JanuaryExpense)
	}

	return nil
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// ConfigureLoggingFromConfig builds the application logger from the Config struct
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.New(logging.Options{Level: config.Log.Level, Format: config.Log.Format})
}
