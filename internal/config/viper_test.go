package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches to dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
}

// isolate runs the test from an empty directory with an empty HOME so that
// no real config.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	chdir(t, dir)
	return dir
}

func TestInitializeConfig_Defaults(t *testing.T) {
	isolate(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.True(t, config.CSV.IncludeHeaders)
	assert.Equal(t, "table", config.Output.Format)
	assert.Equal(t, "Rp", config.Display.Currency)
	assert.Equal(t, "en", config.Display.Locale)
	assert.Equal(t, "budget.yaml", config.Scenario.File)
	assert.False(t, config.Normalizer.Strict)
	assert.False(t, config.Projection.LegacyJanuaryExpense)
	assert.Equal(t, int64(2840000), config.Projection.JanuaryExpense)

	assert.Equal(t, config, Default())
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)

	testEnvVars := map[string]string{
		"BUDGET_LOG_LEVEL":                         "debug",
		"BUDGET_LOG_FORMAT":                        "json",
		"BUDGET_CSV_DELIMITER":                     ";",
		"BUDGET_CSV_INCLUDE_HEADERS":               "false",
		"BUDGET_OUTPUT_FORMAT":                     "json",
		"BUDGET_DISPLAY_LOCALE":                    "id",
		"BUDGET_SCENARIO_FILE":                     "plan.toml",
		"BUDGET_NORMALIZER_STRICT":                 "true",
		"BUDGET_PROJECTION_LEGACY_JANUARY_EXPENSE": "true",
		"BUDGET_PROJECTION_JANUARY_EXPENSE":        "100",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.Equal(t, ';', config.Delimiter())
	assert.False(t, config.CSV.IncludeHeaders)
	assert.Equal(t, "json", config.Output.Format)
	assert.Equal(t, "id", config.Display.Locale)
	assert.Equal(t, "plan.toml", config.Scenario.File)
	assert.True(t, config.Normalizer.Strict)
	assert.True(t, config.Projection.LegacyJanuaryExpense)
	assert.Equal(t, int64(100), config.Projection.JanuaryExpense)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	dir := isolate(t)

	configContent := `
log:
  level: "warn"
  format: "json"
csv:
  delimiter: "|"
display:
  currency: "IDR"
  locale: "id"
scenario:
  file: "plans/2026.json"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, "IDR", config.Display.Currency)
	assert.Equal(t, "id", config.Display.Locale)
	assert.Equal(t, "plans/2026.json", config.Scenario.File)
	assert.Equal(t, "table", config.Output.Format, "unset keys keep their defaults")
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	dir := isolate(t)

	configContent := `
log:
  level: "warn"
csv:
  delimiter: "|"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))
	t.Setenv("BUDGET_LOG_LEVEL", "error")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level) // env var wins
	assert.Equal(t, "|", config.CSV.Delimiter) // config file value
}

func TestInitializeConfigFromFile(t *testing.T) {
	dir := isolate(t)

	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("output:\n  format: xml\n"), 0600))

	config, err := InitializeConfigFromFile(file)
	require.NoError(t, err)
	assert.Equal(t, "xml", config.Output.Format)

	_, err = InitializeConfigFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestInitializeConfig_InvalidEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("BUDGET_DISPLAY_LOCALE", "fr")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "invalid" },
			expectError:  "invalid log format",
		},
		{
			name:         "invalid CSV delimiter",
			modifyConfig: func(c *Config) { c.CSV.Delimiter = "abc" },
			expectError:  "CSV delimiter must be a single character",
		},
		{
			name:         "invalid output format",
			modifyConfig: func(c *Config) { c.Output.Format = "pdf" },
			expectError:  "unsupported output format",
		},
		{
			name:         "invalid locale",
			modifyConfig: func(c *Config) { c.Display.Locale = "fr" },
			expectError:  "unsupported locale",
		},
		{
			name:         "invalid scenario file",
			modifyConfig: func(c *Config) { c.Scenario.File = "budget.ini" },
			expectError:  "unsupported scenario file",
		},
		{
			name:         "negative january expense",
			modifyConfig: func(c *Config) { c.Projection.JanuaryExpense = -1 },
			expectError:  "projection.january_expense must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			require.NoError(t, validateConfig(config))

			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		t.Run(format, func(t *testing.T) {
			config := Default()
			config.Log.Format = format
			assert.NotNil(t, ConfigureLoggingFromConfig(config))
		})
	}
}

func TestDefault_DecodesBuiltInDefaults(t *testing.T) {
	var cfg *Config
	require.NotPanics(t, func() { cfg = Default() })
	require.NoError(t, validateConfig(cfg))
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, int64(2840000), cfg.Projection.JanuaryExpense)
}

func TestDecodeConfig_ReportsDecodeErrors(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("csv.include_headers", "not-a-bool")

	cfg, err := decodeConfig(v)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}
