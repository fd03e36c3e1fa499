package normalizer

import (
	"errors"
	"fmt"
	"testing"

	"fjacquet/budget-projector/internal/budgeterror"
	"fjacquet/budget-projector/internal/logging"
	"fjacquet/budget-projector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNormalizer(strict bool) (*Normalizer, *logging.MockLogger) {
	mock := logging.NewMockLogger()
	n := New(strict, mock)
	counter := 0
	n.newID = func() string {
		counter++
		return fmt.Sprintf("gen-%d", counter)
	}
	return n, mock
}

func TestNormalize_HappyPath(t *testing.T) {
	n, _ := newTestNormalizer(false)

	result, err := n.Normalize(RawInput{
		InitialBalance: 6400000,
		MonthlySalary:  5200000,
		THRBonus:       1800000,
		Recurring: []RawRecurringItem{
			{Description: " Transfer to mother ", Amount: "2000000"},
			{ID: "food", Description: "Personal needs", Amount: "1,840,000", Active: Bool(false)},
		},
		Wishlist: []RawWishlistItem{
			{Name: "Tablet", Price: "6000000", Month: "Maret"},
			{ID: "trip", Name: "Trip", Price: "2500000", Month: "June", Enabled: Bool(false)},
		},
		Overrides: []RawOverride{{Month: "June", Amount: "0"}},
	})
	require.NoError(t, err)
	assert.False(t, result.HasIssues())

	cfg := result.Configuration
	assert.Equal(t, int64(6400000), cfg.InitialBalance)
	assert.Equal(t, int64(5200000), cfg.MonthlySalary)
	assert.Equal(t, int64(1800000), cfg.THRBonus)

	require.Len(t, cfg.RecurringItems, 2)
	assert.Equal(t, models.RecurringExpenseItem{ID: "gen-1", Description: "Transfer to mother", Amount: 2000000, Active: true}, cfg.RecurringItems[0])
	assert.Equal(t, models.RecurringExpenseItem{ID: "food", Description: "Personal needs", Amount: 1840000, Active: false}, cfg.RecurringItems[1])

	require.Len(t, cfg.WishlistItems, 2)
	assert.Equal(t, models.WishlistItem{ID: "gen-2", Name: "Tablet", Price: 6000000, Month: models.March, Enabled: true}, cfg.WishlistItems[0])
	assert.Equal(t, models.WishlistItem{ID: "trip", Name: "Trip", Price: 2500000, Month: models.June, Enabled: false}, cfg.WishlistItems[1])

	o, ok := cfg.Override(models.June)
	require.True(t, ok, "zero override is kept as an inactive sentinel")
	assert.False(t, o.IsActive())
}

func TestNormalize_LenientDropsInvalidRecords(t *testing.T) {
	n, mock := newTestNormalizer(false)

	result, err := n.Normalize(RawInput{
		Recurring: []RawRecurringItem{
			{Description: "ok", Amount: "100"},
			{Description: "bad", Amount: "lots"},
			{Description: "negative", Amount: "-5"},
		},
		Wishlist: []RawWishlistItem{
			{Name: "fraction", Price: "10.5", Month: "May"},
			{Name: "fine", Price: "10", Month: "May"},
		},
		Overrides: []RawOverride{
			{Month: "Smarch", Amount: "10"},
			{Month: "July", Amount: "x"},
		},
	})
	require.NoError(t, err)

	assert.Len(t, result.Configuration.RecurringItems, 1)
	assert.Len(t, result.Configuration.WishlistItems, 1)
	assert.Empty(t, result.Configuration.Overrides)
	require.Len(t, result.Rejected, 5)

	assert.Equal(t, RecordRecurring, result.Rejected[0].Record)
	assert.Equal(t, 1, result.Rejected[0].Index)
	assert.Equal(t, "amount", result.Rejected[0].Field)
	assert.ErrorIs(t, result.Rejected[1], models.ErrNegativeAmount)
	assert.ErrorIs(t, result.Rejected[2], models.ErrFractionalAmount)
	assert.Equal(t, "month", result.Rejected[3].Field)
	assert.Equal(t, RecordOverride, result.Rejected[4].Record)

	assert.Len(t, mock.GetEntriesByLevel("WARN"), 5)
}

func TestNormalize_StrictReturnsJoinedErrors(t *testing.T) {
	n, _ := newTestNormalizer(true)

	result, err := n.Normalize(RawInput{
		Recurring: []RawRecurringItem{{Amount: "nope"}, {Amount: "7"}},
		Wishlist:  []RawWishlistItem{{Price: ""}},
	})
	require.Error(t, err)
	assert.True(t, budgeterror.IsValidationError(err))
	assert.Contains(t, err.Error(), "recurring #1")
	assert.Contains(t, err.Error(), "wishlist #1")
	assert.ErrorIs(t, err, models.ErrEmptyAmount)

	// Valid records are still normalized.
	assert.Len(t, result.Configuration.RecurringItems, 1)
	assert.Len(t, result.Rejected, 2)
}

func TestNormalize_RejectsAmountsThatWouldOverflowSums(t *testing.T) {
	n, _ := newTestNormalizer(false)

	result, err := n.Normalize(RawInput{
		Recurring: []RawRecurringItem{
			{Description: "huge", Amount: "9223372036854775807"},
			{Description: "one", Amount: "1"},
			{Description: "limit", Amount: "1000000000000000"},
		},
		Wishlist:  []RawWishlistItem{{Name: "huge", Price: "1000000000000001", Month: "May"}},
		Overrides: []RawOverride{{Month: "June", Amount: "9223372036854775807"}},
	})
	require.NoError(t, err)

	require.Len(t, result.Rejected, 3)
	for _, rejected := range result.Rejected {
		assert.ErrorIs(t, rejected, models.ErrAmountOverflow)
	}
	require.Len(t, result.Configuration.RecurringItems, 2)
	assert.Equal(t, int64(1), result.Configuration.RecurringItems[0].Amount)
	assert.Equal(t, models.MaxAmount, result.Configuration.RecurringItems[1].Amount)
	assert.Equal(t, models.MaxAmount+1, result.Configuration.ActiveRecurringTotal())
	assert.Empty(t, result.Configuration.WishlistItems)
	assert.Empty(t, result.Configuration.Overrides)
}

func TestNormalize_ScenarioAmountsOutOfRange(t *testing.T) {
	for _, strict := range []bool{false, true} {
		t.Run(fmt.Sprintf("strict=%v", strict), func(t *testing.T) {
			n, _ := newTestNormalizer(strict)

			result, err := n.Normalize(RawInput{
				InitialBalance: -models.MaxAmount - 1,
				MonthlySalary:  models.MaxAmount,
				THRBonus:       9223372036854775807,
				Recurring:      []RawRecurringItem{{Amount: "7"}},
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrAmountOverflow)
			assert.Contains(t, err.Error(), "initial_balance")
			assert.Contains(t, err.Error(), "thr_bonus")
			assert.NotContains(t, err.Error(), "monthly_salary")

			require.Len(t, result.Rejected, 2)
			assert.Equal(t, RecordScenario, result.Rejected[0].Record)
			assert.Zero(t, result.Configuration.InitialBalance)
			assert.Equal(t, models.MaxAmount, result.Configuration.MonthlySalary)
			assert.Zero(t, result.Configuration.THRBonus)
			assert.Len(t, result.Configuration.RecurringItems, 1)
		})
	}
}

func TestNormalize_StrictWithoutErrors(t *testing.T) {
	n, _ := newTestNormalizer(true)
	assert.True(t, n.Strict())

	_, err := n.Normalize(RawInput{Recurring: []RawRecurringItem{{Amount: "7"}}})
	assert.NoError(t, err)
}

func TestNormalize_UnknownMonthFallsBackToJanuary(t *testing.T) {
	for _, strict := range []bool{false, true} {
		t.Run(fmt.Sprintf("strict=%t", strict), func(t *testing.T) {
			n, mock := newTestNormalizer(strict)

			result, err := n.Normalize(RawInput{
				Wishlist: []RawWishlistItem{{Name: "odd", Price: "100", Month: "Smarch"}, {Name: "blank", Price: "1"}},
			})
			require.NoError(t, err, "a fallback is never an error")

			require.Len(t, result.Configuration.WishlistItems, 2)
			assert.Equal(t, models.January, result.Configuration.WishlistItems[0].Month)
			assert.Equal(t, models.January, result.Configuration.WishlistItems[1].Month)
			require.Len(t, result.Fallbacks, 2)
			assert.Equal(t, "Smarch", result.Fallbacks[0].Label)
			assert.True(t, result.HasIssues())
			assert.True(t, mock.HasEntry("WARN", "Unknown wishlist month, scheduling in January"))
		})
	}
}

func TestNormalize_DuplicateIDsAreReassigned(t *testing.T) {
	n, mock := newTestNormalizer(false)

	result, err := n.Normalize(RawInput{
		Recurring: []RawRecurringItem{{ID: "x", Amount: "1"}, {ID: "x", Amount: "2"}},
		Wishlist:  []RawWishlistItem{{ID: "x", Price: "3", Month: "May"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "x", result.Configuration.RecurringItems[0].ID)
	assert.Equal(t, "gen-1", result.Configuration.RecurringItems[1].ID)
	assert.Equal(t, "gen-2", result.Configuration.WishlistItems[0].ID)
	assert.Len(t, mock.GetEntriesByLevel("WARN"), 2)
}

func TestNormalize_DefaultIDGenerator(t *testing.T) {
	n := New(false, nil)
	result, err := n.Normalize(RawInput{Recurring: []RawRecurringItem{{Amount: "1"}, {Amount: "2"}}})
	require.NoError(t, err)

	a, b := result.Configuration.RecurringItems[0].ID, result.Configuration.RecurringItems[1].ID
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestNormalize_LaterOverrideForSameMonthWins(t *testing.T) {
	n, _ := newTestNormalizer(false)
	result, err := n.Normalize(RawInput{
		Overrides: []RawOverride{{Month: "May", Amount: "10"}, {Month: "Mei", Amount: "20"}},
	})
	require.NoError(t, err)
	o, ok := result.Configuration.Override(models.May)
	require.True(t, ok)
	assert.Equal(t, int64(20), o.Amount)
}

func TestRecurring_SingleRecord(t *testing.T) {
	n, _ := newTestNormalizer(false)

	_, err := n.Recurring(4, RawRecurringItem{Amount: "1.5"})
	var verr *budgeterror.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 4, verr.Index)
	assert.Equal(t, "1.5", verr.Value)
}
