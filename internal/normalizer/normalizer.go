// Package normalizer validates raw recurring, wishlist and override records
// and coerces them into the typed configuration consumed by the projection
// engine.
package normalizer

import (
	"errors"
	"strconv"
	"strings"

	"fjacquet/budget-projector/internal/budgeterror"
	"fjacquet/budget-projector/internal/logging"
	"fjacquet/budget-projector/internal/models"

	"github.com/google/uuid"
)

// Record kinds used in errors and log fields.
const (
	RecordRecurring = "recurring"
	RecordWishlist  = "wishlist"
	RecordOverride  = "override"
	RecordScenario  = "scenario"
)

// Result is the outcome of normalizing a RawInput.
type Result struct {
	Configuration models.Configuration
	// Rejected lists the records dropped because a field could not be coerced.
	Rejected []*budgeterror.ValidationError
	// Fallbacks lists wishlist items whose month label was remapped to January.
	Fallbacks []*budgeterror.UnknownMonthFallback
}

// HasIssues reports whether any record was rejected or remapped.
func (r Result) HasIssues() bool {
	return len(r.Rejected) > 0 || len(r.Fallbacks) > 0
}

// Normalizer turns raw records into validated models.
//
// In lenient mode (the default) a record with an invalid amount is dropped
// and reported in Result.Rejected. In strict mode Normalize additionally
// returns every validation error joined together.
type Normalizer struct {
	strict bool
	logger logging.Logger
	newID  func() string
}

// New creates a Normalizer. A nil logger discards log output.
func New(strict bool, logger logging.Logger) *Normalizer {
	if logger == nil {
		logger = logging.NewMockLogger()
	}
	return &Normalizer{
		strict: strict,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Strict reports whether validation errors abort normalization.
func (n *Normalizer) Strict() bool {
	return n.strict
}

// Normalize validates every record of raw. A failure in one record never
// prevents the others from being normalized.
//
// The starting balance, salary and bonus cannot be dropped like a record, so
// an out-of-range value among them is zeroed, reported in Result.Rejected and
// returned as an error in both modes.
func (n *Normalizer) Normalize(raw RawInput) (Result, error) {
	result := Result{
		Configuration: models.Configuration{
			InitialBalance: raw.InitialBalance,
			MonthlySalary:  raw.MonthlySalary,
			THRBonus:       raw.THRBonus,
			RecurringItems: make([]models.RecurringExpenseItem, 0, len(raw.Recurring)),
			WishlistItems:  make([]models.WishlistItem, 0, len(raw.Wishlist)),
		},
	}
	scenarioErrs := n.checkScenarioAmounts(&result)
	seen := make(map[string]bool, len(raw.Recurring)+len(raw.Wishlist))

	for i, r := range raw.Recurring {
		item, err := n.Recurring(i, r)
		if err != nil {
			n.reject(&result, err)
			continue
		}
		item.ID = n.uniqueID(seen, item.ID, RecordRecurring, i)
		result.Configuration.RecurringItems = append(result.Configuration.RecurringItems, item)
	}

	for i, r := range raw.Wishlist {
		item, fallback, err := n.Wishlist(i, r)
		if err != nil {
			n.reject(&result, err)
			continue
		}
		if fallback != nil {
			result.Fallbacks = append(result.Fallbacks, fallback)
		}
		item.ID = n.uniqueID(seen, item.ID, RecordWishlist, i)
		result.Configuration.WishlistItems = append(result.Configuration.WishlistItems, item)
	}

	for i, r := range raw.Overrides {
		override, err := n.Override(i, r)
		if err != nil {
			n.reject(&result, err)
			continue
		}
		if _, exists := result.Configuration.Override(override.Month); exists {
			n.logger.Warn("Duplicate override replaces earlier one",
				logging.F(logging.FieldIndex, i),
				logging.F(logging.FieldMonth, override.Month.String()))
		}
		result.Configuration.SetOverride(override)
	}

	n.logger.Debug("Normalized raw input",
		logging.F("recurring", len(result.Configuration.RecurringItems)),
		logging.F("wishlist", len(result.Configuration.WishlistItems)),
		logging.F("overrides", len(result.Configuration.Overrides)),
		logging.F("rejected", len(result.Rejected)))

	if len(scenarioErrs) > 0 && !n.strict {
		return result, errors.Join(scenarioErrs...)
	}
	if n.strict && len(result.Rejected) > 0 {
		errs := make([]error, len(result.Rejected))
		for i, verr := range result.Rejected {
			errs[i] = verr
		}
		return result, errors.Join(errs...)
	}
	return result, nil
}

// Recurring validates a single recurring record. A missing active flag
// defaults to true.
func (n *Normalizer) Recurring(index int, raw RawRecurringItem) (models.RecurringExpenseItem, error) {
	amount, err := models.ParseAmount(string(raw.Amount))
	if err != nil {
		return models.RecurringExpenseItem{}, &budgeterror.ValidationError{
			Record: RecordRecurring,
			Index:  index,
			Field:  "amount",
			Value:  string(raw.Amount),
			Err:    err,
		}
	}
	return models.RecurringExpenseItem{
		ID:          strings.TrimSpace(raw.ID),
		Description: strings.TrimSpace(raw.Description),
		Amount:      amount,
		Active:      flagOrTrue(raw.Active),
	}, nil
}

// Wishlist validates a single wishlist record. An unrecognised month label
// schedules the item in January and is reported as a fallback, not an error.
// A missing enabled flag defaults to true.
func (n *Normalizer) Wishlist(index int, raw RawWishlistItem) (models.WishlistItem, *budgeterror.UnknownMonthFallback, error) {
	price, err := models.ParseAmount(string(raw.Price))
	if err != nil {
		return models.WishlistItem{}, nil, &budgeterror.ValidationError{
			Record: RecordWishlist,
			Index:  index,
			Field:  "price",
			Value:  string(raw.Price),
			Err:    err,
		}
	}

	var fallback *budgeterror.UnknownMonthFallback
	month, err := models.ParseMonth(raw.Month)
	if err != nil {
		month = models.January
		fallback = &budgeterror.UnknownMonthFallback{Record: RecordWishlist, Index: index, Label: raw.Month}
		n.logger.Warn("Unknown wishlist month, scheduling in January",
			logging.F(logging.FieldIndex, index),
			logging.F(logging.FieldMonth, raw.Month))
	}

	return models.WishlistItem{
		ID:      strings.TrimSpace(raw.ID),
		Name:    strings.TrimSpace(raw.Name),
		Price:   price,
		Month:   month,
		Enabled: flagOrTrue(raw.Enabled),
	}, fallback, nil
}

// Override validates a single override record. Unlike wishlist items an
// override with an unknown month is rejected, since remapping it would
// silently change January's expense.
func (n *Normalizer) Override(index int, raw RawOverride) (models.MonthlyOverride, error) {
	month, err := models.ParseMonth(raw.Month)
	if err != nil {
		return models.MonthlyOverride{}, &budgeterror.ValidationError{
			Record: RecordOverride,
			Index:  index,
			Field:  "month",
			Value:  raw.Month,
			Err:    err,
		}
	}
	amount, err := models.ParseAmount(string(raw.Amount))
	if err != nil {
		return models.MonthlyOverride{}, &budgeterror.ValidationError{
			Record: RecordOverride,
			Index:  index,
			Field:  "amount",
			Value:  string(raw.Amount),
			Err:    err,
		}
	}
	return models.MonthlyOverride{Month: month, Amount: amount}, nil
}

// checkScenarioAmounts zeroes and rejects top-level amounts outside the
// accepted range.
func (n *Normalizer) checkScenarioAmounts(result *Result) []error {
	cfg := &result.Configuration
	fields := []struct {
		name  string
		value *int64
	}{
		{"initial_balance", &cfg.InitialBalance},
		{"monthly_salary", &cfg.MonthlySalary},
		{"thr_bonus", &cfg.THRBonus},
	}

	var errs []error
	for _, f := range fields {
		if err := models.CheckAmount(*f.value); err != nil {
			verr := &budgeterror.ValidationError{
				Record: RecordScenario,
				Field:  f.name,
				Value:  strconv.FormatInt(*f.value, 10),
				Err:    err,
			}
			*f.value = 0
			n.reject(result, verr)
			errs = append(errs, verr)
		}
	}
	return errs
}

func (n *Normalizer) reject(result *Result, err error) {
	var verr *budgeterror.ValidationError
	if !errors.As(err, &verr) {
		verr = &budgeterror.ValidationError{Err: err}
	}
	result.Rejected = append(result.Rejected, verr)
	n.logger.WithError(verr.Err).Warn("Dropping invalid record",
		logging.F(logging.FieldRecord, verr.Record),
		logging.F(logging.FieldIndex, verr.Index),
		logging.F(logging.FieldReason, verr.Field))
}

// uniqueID keeps a supplied ID unless it is empty or already taken, in which
// case a fresh one is generated.
func (n *Normalizer) uniqueID(seen map[string]bool, id, record string, index int) string {
	if id != "" && !seen[id] {
		seen[id] = true
		return id
	}
	if id != "" {
		n.logger.Warn("Duplicate item ID, assigning a new one",
			logging.F(logging.FieldRecord, record),
			logging.F(logging.FieldIndex, index),
			logging.F(logging.FieldItemID, id))
	}
	fresh := n.newID()
	seen[fresh] = true
	return fresh
}

func flagOrTrue(flag *bool) bool {
	if flag == nil {
		return true
	}
	return *flag
}
