package normalizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// RawAmount is an amount exactly as the editing surface supplied it.
// Numbers and strings are both accepted from YAML, JSON and TOML; coercion
// happens in the Normalizer so that one bad amount only rejects its record.
type RawAmount string

// AmountOf returns the raw form of a whole amount.
func AmountOf(v int64) RawAmount {
	return RawAmount(strconv.FormatInt(v, 10))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *RawAmount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a scalar", node.Line)
	}
	*a = RawAmount(node.Value)
	return nil
}

// MarshalYAML writes integral amounts as YAML integers.
func (a RawAmount) MarshalYAML() (interface{}, error) {
	if n, err := strconv.ParseInt(string(a), 10, 64); err == nil {
		return n, nil
	}
	return string(a), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *RawAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = RawAmount(s)
	case len(data) > 0 && (data[0] == '{' || data[0] == '['):
		return fmt.Errorf("amount must be a number or string, got %s", data)
	default:
		*a = RawAmount(data)
	}
	return nil
}

// MarshalJSON writes integral amounts as JSON numbers.
func (a RawAmount) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(a), 10, 64); err == nil {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return json.Marshal(string(a))
}

// UnmarshalTOML implements toml.Unmarshaler.
func (a *RawAmount) UnmarshalTOML(value interface{}) error {
	switch v := value.(type) {
	case string:
		*a = RawAmount(v)
	case int64:
		*a = RawAmount(strconv.FormatInt(v, 10))
	case float64:
		*a = RawAmount(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("amount must be a number or string, got %T", value)
	}
	return nil
}

// MarshalTOML implements toml.Marshaler.
func (a RawAmount) MarshalTOML() ([]byte, error) {
	if n, err := strconv.ParseInt(string(a), 10, 64); err == nil {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return []byte(strconv.Quote(string(a))), nil
}

// RawRecurringItem is a recurring expense record before validation.
// A nil Active means the flag was absent.
type RawRecurringItem struct {
	ID          string    `yaml:"id,omitempty" json:"id,omitempty" toml:"id,omitempty"`
	Description string    `yaml:"description" json:"description" toml:"description"`
	Amount      RawAmount `yaml:"amount" json:"amount" toml:"amount"`
	Active      *bool     `yaml:"active,omitempty" json:"active,omitempty" toml:"active"`
}

// RawWishlistItem is a wishlist record before validation.
// A nil Enabled means the flag was absent.
type RawWishlistItem struct {
	ID      string    `yaml:"id,omitempty" json:"id,omitempty" toml:"id,omitempty"`
	Name    string    `yaml:"name" json:"name" toml:"name"`
	Price   RawAmount `yaml:"price" json:"price" toml:"price"`
	Month   string    `yaml:"month" json:"month" toml:"month"`
	Enabled *bool     `yaml:"enabled,omitempty" json:"enabled,omitempty" toml:"enabled"`
}

// RawOverride is a per-month recurring expense override before validation.
type RawOverride struct {
	Month  string    `yaml:"month" json:"month" toml:"month"`
	Amount RawAmount `yaml:"amount" json:"amount" toml:"amount"`
}

// RawInput is everything the editing surface hands over for one projection.
type RawInput struct {
	InitialBalance int64
	MonthlySalary  int64
	THRBonus       int64
	Recurring      []RawRecurringItem
	Wishlist       []RawWishlistItem
	Overrides      []RawOverride
}

// Bool returns a pointer to b, for building raw records.
func Bool(b bool) *bool {
	return &b
}
