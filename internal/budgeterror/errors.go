// Package budgeterror defines the error and notice types surfaced by the
// normalizer, the planner and the scenario store.
package budgeterror

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrItemNotFound      = errors.New("item not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ValidationError reports a raw record field that could not be coerced.
// The offending record is rejected; other records are unaffected.
type ValidationError struct {
	Record string // "recurring", "wishlist" or "override"
	Index  int
	Field  string
	Value  string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s #%d: invalid %s='%s': %v",
		e.Record, e.Index+1, e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// UnknownMonthFallback notes that a wishlist month label was not recognised
// and the item was scheduled in January instead. It is not a failure.
type UnknownMonthFallback struct {
	Record string
	Index  int
	Label  string
}

func (n *UnknownMonthFallback) Error() string {
	return fmt.Sprintf("%s #%d: unknown month '%s', scheduled in January",
		n.Record, n.Index+1, n.Label)
}

// ScenarioError wraps a failure reading or writing a scenario file.
type ScenarioError struct {
	Path string
	Op   string
	Err  error
}

func (e *ScenarioError) Error() string {
	return fmt.Sprintf("scenario %s '%s': %v", e.Op, e.Path, e.Err)
}

func (e *ScenarioError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err contains a *ValidationError.
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
