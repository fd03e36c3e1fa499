// Package store reads and writes scenario files.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/budget-projector/internal/budgeterror"
	"fjacquet/budget-projector/internal/logging"
	"fjacquet/budget-projector/internal/models"
	"fjacquet/budget-projector/internal/validation"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the serialization of a scenario file.
type Format string

// Supported scenario formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("extension %q: %w", filepath.Ext(path), budgeterror.ErrUnsupportedFormat)
	}
}

// Decode parses a scenario document.
func Decode(data []byte, format Format) (*Scenario, error) {
	var s Scenario
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("empty document")
			}
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, err
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("format %q: %w", format, budgeterror.ErrUnsupportedFormat)
	}
	return &s, nil
}

// Encode serializes a scenario document.
func Encode(s *Scenario, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("format %q: %w", format, budgeterror.ErrUnsupportedFormat)
	}
}

// ScenarioStore loads and saves one scenario file.
type ScenarioStore struct {
	File   string
	logger logging.Logger
}

// NewScenarioStore creates a store for file. A nil logger discards output.
func NewScenarioStore(file string, logger logging.Logger) *ScenarioStore {
	if logger == nil {
		logger = logging.NewMockLogger()
	}
	return &ScenarioStore{File: file, logger: logger}
}

// FindScenarioFile looks for filename in the working directory, ./scenarios
// and ~/.config/budget-projector, in that order.
func (s *ScenarioStore) FindScenarioFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("scenarios", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "budget-projector", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// Exists reports whether the scenario file can be found.
func (s *ScenarioStore) Exists() bool {
	_, err := s.FindScenarioFile(s.File)
	return err == nil
}

// Load reads and decodes the scenario file.
func (s *ScenarioStore) Load() (*Scenario, error) {
	format, err := FormatFromPath(s.File)
	if err != nil {
		return nil, &budgeterror.ScenarioError{Path: s.File, Op: "load", Err: err}
	}

	path, err := s.FindScenarioFile(s.File)
	if err != nil {
		return nil, &budgeterror.ScenarioError{Path: s.File, Op: "load", Err: err}
	}

	if info, err := os.Stat(path); err == nil {
		if err := validation.IsValidFilePermissions(info.Mode().Perm()); err != nil {
			s.logger.Warn("Scenario file is readable by others",
				logging.F(logging.FieldScenario, path),
				logging.F(logging.FieldReason, err.Error()))
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is the user-selected scenario file
	if err != nil {
		return nil, &budgeterror.ScenarioError{Path: path, Op: "read", Err: err}
	}

	scenario, err := Decode(data, format)
	if err != nil {
		return nil, &budgeterror.ScenarioError{Path: path, Op: "parse", Err: err}
	}

	s.logger.Debug("Loaded scenario",
		logging.F(logging.FieldScenario, path),
		logging.F(logging.FieldFormat, string(format)),
		logging.F(logging.FieldCount, len(scenario.Recurring)+len(scenario.Wishlist)))
	return scenario, nil
}

// Save encodes scenario and writes it where Load would find it, or to File
// when no such file exists yet. Parent directories are created as needed.
func (s *ScenarioStore) Save(scenario *Scenario) error {
	format, err := FormatFromPath(s.File)
	if err != nil {
		return &budgeterror.ScenarioError{Path: s.File, Op: "save", Err: err}
	}

	path, err := s.FindScenarioFile(s.File)
	if errors.Is(err, os.ErrNotExist) {
		path = s.File
	}

	data, err := Encode(scenario, format)
	if err != nil {
		return &budgeterror.ScenarioError{Path: path, Op: "encode", Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), models.PermissionDirectory); err != nil {
		return &budgeterror.ScenarioError{Path: path, Op: "save", Err: fmt.Errorf("error creating directory: %w", err)}
	}
	if err := os.WriteFile(path, data, models.PermissionConfigFile); err != nil {
		return &budgeterror.ScenarioError{Path: path, Op: "write", Err: err}
	}

	s.logger.Debug("Saved scenario",
		logging.F(logging.FieldScenario, path),
		logging.F(logging.FieldFormat, string(format)))
	return nil
}
