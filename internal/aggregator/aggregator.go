// Package aggregator derives year-end summary metrics from a projected ledger.
package aggregator

import (
	"fjacquet/budget-projector/internal/models"

	"github.com/shopspring/decimal"
)

// SurvivalPrecision is the number of decimals kept in the survival estimate.
const SurvivalPrecision int32 = 1

// Summarize computes totals, the final balance and the survival estimate.
//
// SurvivalMonths is the final balance divided by the average monthly
// recurring expense. It is left nil when the final balance is at or below
// zero, or when there is no recurring expense to divide by.
func Summarize(ledger models.Ledger) models.Summary {
	rows := ledger.Rows()
	summary := models.Summary{
		FinalBalance:       ledger.Last().ClosingBalance,
		LowestBalance:      rows[0].ClosingBalance,
		LowestBalanceMonth: rows[0].Month,
	}

	for _, row := range rows {
		summary.TotalIncome += row.Income
		summary.TotalExpense += row.TotalExpense
		summary.TotalRecurringExpense += row.RecurringExpense
		summary.TotalWishlistExpense += row.WishlistExpense

		if row.ClosingBalance < summary.LowestBalance {
			summary.LowestBalance = row.ClosingBalance
			summary.LowestBalanceMonth = row.Month
		}
		if row.IsNegative() {
			summary.NegativeMonths = append(summary.NegativeMonths, row.Month)
		}
	}

	summary.AverageRecurringExpense = decimal.NewFromInt(summary.TotalRecurringExpense).
		DivRound(decimal.NewFromInt(int64(len(rows))), 2)

	if summary.FinalBalance > 0 {
		if months, ok := models.Ratio(decimal.NewFromInt(summary.FinalBalance), summary.AverageRecurringExpense, SurvivalPrecision); ok {
			summary.SurvivalMonths = &months
		}
	}

	return summary
}
