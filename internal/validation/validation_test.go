package validation_test

import (
	"os"
	"testing"

	"fjacquet/budget-projector/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOutputFormat(t *testing.T) {
	for _, format := range []string{"table", "csv", "json", "yaml", "xml", "JSON"} {
		assert.NoError(t, validation.IsValidOutputFormat(format), format)
	}

	err := validation.IsValidOutputFormat("pdf")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format: pdf")
}

func TestIsValidScenarioFile(t *testing.T) {
	tests := []struct {
		path        string
		expectError bool
	}{
		{"budget.yaml", false},
		{"budget.yml", false},
		{"/home/me/budget.JSON", false},
		{"plan.toml", false},
		{"plan.csv", true},
		{"plan", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := validation.IsValidScenarioFile(tt.path)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidLocale(t *testing.T) {
	assert.NoError(t, validation.IsValidLocale("en"))
	assert.NoError(t, validation.IsValidLocale("id"))
	assert.Error(t, validation.IsValidLocale("fr"))
	assert.Error(t, validation.IsValidLocale(""))
}

func TestIsValidDelimiter(t *testing.T) {
	tests := []struct {
		name        string
		delim       string
		expectError bool
	}{
		{"comma", ",", false},
		{"semicolon", ";", false},
		{"tab", "\t", false},
		{"pipe", "|", false},
		{"empty", "", true},
		{"multiple", "ab", true},
		{"quote", `"`, true},
		{"newline", "\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidDelimiter(tt.delim)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidFilePermissions(t *testing.T) {
	tests := []struct {
		name        string
		mode        os.FileMode
		expectError bool
	}{
		{"Valid 0600", 0600, false},
		{"Valid 0640", 0640, false},
		{"Too permissive 0777", 0777, true},
		{"Too permissive 0604", 0604, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidFilePermissions(tt.mode)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
