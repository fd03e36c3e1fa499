package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount parsing failures.
var (
	ErrEmptyAmount      = errors.New("amount is empty")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrFractionalAmount = errors.New("amount must be a whole number")
	ErrAmountOverflow   = errors.New("amount is out of range")
)

// MaxAmount is the largest magnitude accepted for a single amount. Twelve
// months of sums over thousands of such amounts stay inside int64.
const MaxAmount int64 = 1_000_000_000_000_000

var maxAmount = decimal.NewFromInt(MaxAmount)

// currencyPrefixes are stripped before parsing. Only the display currency of
// the original planner is known; anything else must be a plain number.
var currencyPrefixes = []string{"rp.", "rp", "idr"}

// ParseAmount coerces a raw amount such as "3840000", "3,840,000",
// "Rp 3_840_000" or "3840000.00" into a non-negative whole number.
func ParseAmount(raw string) (int64, error) {
	cleaned := strings.TrimSpace(raw)
	lower := strings.ToLower(cleaned)
	for _, prefix := range currencyPrefixes {
		if strings.HasPrefix(lower, prefix) {
			cleaned = cleaned[len(prefix):]
			break
		}
	}
	cleaned = strings.NewReplacer(" ", "", "_", "", ",", "").Replace(cleaned)
	if cleaned == "" {
		return 0, ErrEmptyAmount
	}

	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("invalid amount string '%s': %w", raw, err)
	}
	if dec.IsNegative() {
		return 0, ErrNegativeAmount
	}
	if !dec.IsInteger() {
		return 0, ErrFractionalAmount
	}
	if dec.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%s exceeds %d: %w", cleaned, MaxAmount, ErrAmountOverflow)
	}
	return dec.IntPart(), nil
}

// CheckAmount reports ErrAmountOverflow when v lies outside
// [-MaxAmount, MaxAmount]. Signed values such as a starting balance use it
// instead of ParseAmount.
func CheckAmount(v int64) error {
	if v > MaxAmount || v < -MaxAmount {
		return fmt.Errorf("%d exceeds %d: %w", v, MaxAmount, ErrAmountOverflow)
	}
	return nil
}

// Ratio divides numerator by denominator and rounds to places decimals.
// ok is false when the denominator is zero.
func Ratio(numerator, denominator decimal.Decimal, places int32) (result decimal.Decimal, ok bool) {
	if denominator.IsZero() {
		return decimal.Zero, false
	}
	return numerator.DivRound(denominator, places+2).Round(places), true
}
