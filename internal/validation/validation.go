// Package validation checks user-supplied options before they reach the
// projection pipeline.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// OutputFormats lists the formats the project command can emit.
var OutputFormats = []string{"table", "csv", "json", "yaml", "xml"}

// ScenarioExtensions lists the scenario file extensions the store understands.
var ScenarioExtensions = []string{".yaml", ".yml", ".json", ".toml"}

// Locales lists the supported display locales.
var Locales = []string{"en", "id"}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	if contains(OutputFormats, strings.ToLower(format)) {
		return nil
	}
	return fmt.Errorf("unsupported output format: %s. Supported formats are %s", format, strings.Join(OutputFormats, ", "))
}

// IsValidScenarioFile checks that path has a supported extension.
func IsValidScenarioFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if contains(ScenarioExtensions, ext) {
		return nil
	}
	return fmt.Errorf("unsupported scenario file %s. Supported extensions are %s", path, strings.Join(ScenarioExtensions, ", "))
}

// IsValidLocale checks if the given locale is supported.
func IsValidLocale(locale string) error {
	if contains(Locales, locale) {
		return nil
	}
	return fmt.Errorf("unsupported locale: %s (must be one of %s)", locale, strings.Join(Locales, ", "))
}

// IsValidDelimiter checks that delim is exactly one character usable as a
// CSV separator.
func IsValidDelimiter(delim string) error {
	if utf8.RuneCountInString(delim) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", delim)
	}
	r, _ := utf8.DecodeRuneInString(delim)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return fmt.Errorf("CSV delimiter %q is not allowed", delim)
	}
	return nil
}

// IsValidFilePermissions checks that others have no access to a file.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode&0007 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600 or 0640", mode.String())
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
