package models

import "github.com/shopspring/decimal"

// LedgerRow is the projected cash flow of one month.
type LedgerRow struct {
	Month            Month `json:"month" yaml:"month" xml:"month"`
	OpeningBalance   int64 `json:"opening_balance" yaml:"opening_balance" xml:"opening_balance"`
	Income           int64 `json:"income" yaml:"income" xml:"income"`
	RecurringExpense int64 `json:"recurring_expense" yaml:"recurring_expense" xml:"recurring_expense"`
	WishlistExpense  int64 `json:"wishlist_expense" yaml:"wishlist_expense" xml:"wishlist_expense"`
	TotalExpense     int64 `json:"total_expense" yaml:"total_expense" xml:"total_expense"`
	ClosingBalance   int64 `json:"closing_balance" yaml:"closing_balance" xml:"closing_balance"`
}

// IsNegative reports whether the month closes below zero.
func (r LedgerRow) IsNegative() bool {
	return r.ClosingBalance < 0
}

// Ledger is an immutable twelve-month projection.
type Ledger struct {
	rows [MonthsPerYear]LedgerRow
}

// NewLedger builds a ledger from rows in month order.
// Rows beyond the twelfth are ignored.
func NewLedger(rows []LedgerRow) Ledger {
	var l Ledger
	copy(l.rows[:], rows)
	return l
}

// Rows returns a copy of the ledger rows in month order.
func (l Ledger) Rows() []LedgerRow {
	out := make([]LedgerRow, MonthsPerYear)
	copy(out, l.rows[:])
	return out
}

// Row returns the row for month m.
func (l Ledger) Row(m Month) (LedgerRow, bool) {
	if !m.IsValid() {
		return LedgerRow{}, false
	}
	return l.rows[m.Index()], true
}

// Len is always MonthsPerYear.
func (l Ledger) Len() int {
	return len(l.rows)
}

// Last returns the December row.
func (l Ledger) Last() LedgerRow {
	return l.rows[MonthsPerYear-1]
}

// Summary holds the year-end aggregates of a ledger.
type Summary struct {
	TotalIncome             int64            `json:"total_income" yaml:"total_income" xml:"total_income"`
	TotalExpense            int64            `json:"total_expense" yaml:"total_expense" xml:"total_expense"`
	TotalRecurringExpense   int64            `json:"total_recurring_expense" yaml:"total_recurring_expense" xml:"total_recurring_expense"`
	TotalWishlistExpense    int64            `json:"total_wishlist_expense" yaml:"total_wishlist_expense" xml:"total_wishlist_expense"`
	FinalBalance            int64            `json:"final_balance" yaml:"final_balance" xml:"final_balance"`
	AverageRecurringExpense decimal.Decimal  `json:"average_recurring_expense" yaml:"average_recurring_expense" xml:"average_recurring_expense"`
	// SurvivalMonths is nil when the estimate is meaningless: a final balance
	// at or below zero, or no recurring expense to divide by.
	SurvivalMonths     *decimal.Decimal `json:"survival_months,omitempty" yaml:"survival_months,omitempty" xml:"survival_months,omitempty"`
	LowestBalance      int64            `json:"lowest_balance" yaml:"lowest_balance" xml:"lowest_balance"`
	LowestBalanceMonth Month            `json:"lowest_balance_month" yaml:"lowest_balance_month" xml:"lowest_balance_month"`
	NegativeMonths     []Month          `json:"negative_months,omitempty" yaml:"negative_months,omitempty" xml:"negative_months>month,omitempty"`
}

// HasSurvivalEstimate reports whether SurvivalMonths is defined.
func (s Summary) HasSurvivalEstimate() bool {
	return s.SurvivalMonths != nil
}
