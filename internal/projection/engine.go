// Package projection runs the twelve-month running-balance simulation.
//
// The engine is a pure function of its Configuration: it performs no I/O,
// keeps no state between calls and never fails for a well-typed input.
// Negative balances are valid outcomes and are propagated unchanged.
package projection

import "fjacquet/budget-projector/internal/models"

// Policy selects the legacy behaviours of the original planner.
type Policy struct {
	// LegacyJanuaryExpense replaces January's itemized recurring total with
	// JanuaryExpense. A non-zero January override still takes precedence.
	LegacyJanuaryExpense bool
	JanuaryExpense       int64
}

// DefaultPolicy has every legacy quirk disabled.
func DefaultPolicy() Policy {
	return Policy{JanuaryExpense: models.LegacyJanuaryRecurringExpense}
}

// Engine projects configurations under a fixed Policy.
type Engine struct {
	policy Policy
}

// NewEngine creates an Engine.
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Policy returns the engine's policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Project is Engine.Project with DefaultPolicy.
func Project(cfg models.Configuration) models.Ledger {
	return NewEngine(DefaultPolicy()).Project(cfg)
}

// Project simulates January through December and returns the ledger.
func (e *Engine) Project(cfg models.Configuration) models.Ledger {
	baseline := cfg.ActiveRecurringTotal()
	rows := make([]models.LedgerRow, 0, models.MonthsPerYear)
	balance := cfg.InitialBalance

	for _, month := range models.AllMonths() {
		income := e.income(cfg, month)
		recurring := e.recurringExpense(cfg, month, baseline)
		wishlist := wishlistExpense(cfg.WishlistItems, month)
		total := recurring + wishlist
		closing := balance + income - total

		rows = append(rows, models.LedgerRow{
			Month:            month,
			OpeningBalance:   balance,
			Income:           income,
			RecurringExpense: recurring,
			WishlistExpense:  wishlist,
			TotalExpense:     total,
			ClosingBalance:   closing,
		})
		balance = closing
	}

	return models.NewLedger(rows)
}

// income is the salary, plus the THR bonus in BonusMonth only.
func (e *Engine) income(cfg models.Configuration, month models.Month) int64 {
	income := cfg.MonthlySalary
	if month == models.BonusMonth {
		income += cfg.THRBonus
	}
	return income
}

// recurringExpense applies, in order: the itemized baseline, the legacy
// January constant, then an active override, which replaces rather than adds.
// A zero override is the "no override" sentinel.
func (e *Engine) recurringExpense(cfg models.Configuration, month models.Month, baseline int64) int64 {
	expense := baseline
	if e.policy.LegacyJanuaryExpense && month == models.January {
		expense = e.policy.JanuaryExpense
	}
	if o, ok := cfg.Override(month); ok && o.IsActive() {
		expense = o.Amount
	}
	return expense
}

func wishlistExpense(items []models.WishlistItem, month models.Month) int64 {
	var total int64
	for _, item := range items {
		if item.Enabled && item.Month == month {
			total += item.Price
		}
	}
	return total
}
