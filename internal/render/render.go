// Package render draws projections for the terminal: summary cards, a
// stacked expense chart, a balance sparkline and the monthly table.
package render

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/budget-projector/internal/budgeterror"
	"fjacquet/budget-projector/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	defaultWidth = 88
	chartWidth   = 40
)

var million = decimal.NewFromInt(1_000_000)

// Renderer formats amounts with a currency symbol and labels in a locale.
type Renderer struct {
	currency string
	locale   string
	width    int
	labels   labels
}

// NewRenderer creates a Renderer. Unknown locales fall back to English.
func NewRenderer(currency, locale string) *Renderer {
	return &Renderer{
		currency: currency,
		locale:   locale,
		width:    defaultWidth,
		labels:   labelsFor(locale),
	}
}

// Locale returns the locale used for month names and labels.
func (r *Renderer) Locale() string {
	return r.locale
}

// Currency formats a whole amount as "Rp 7,760,000".
func (r *Renderer) Currency(v int64) string {
	if r.currency == "" {
		return humanize.Comma(v)
	}
	return r.currency + " " + humanize.Comma(v)
}

// Millions formats an amount scaled to millions with one decimal,
// e.g. "Rp 69.4 Jt".
func (r *Renderer) Millions(v int64) string {
	scaled := decimal.NewFromInt(v).Div(million).StringFixed(1)
	out := scaled + " " + r.labels.MillionSuffix
	if r.currency != "" {
		out = r.currency + " " + out
	}
	return out
}

// Title renders a centered title bar in a bordered box.
func (r *Renderer) Title(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(r.width - 2).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// Cards renders the summary metrics side by side.
func (r *Renderer) Cards(s models.Summary) string {
	l := r.labels

	survival := l.NoSurvival
	if s.HasSurvivalEstimate() {
		survival = fmt.Sprintf(l.Survival, s.SurvivalMonths.String())
	}

	widths := layoutRow(r.width, 4)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard(l.TotalIncome, r.Millions(s.TotalIncome), valueStyle, "", widths[0]),
		metricCard(l.TotalExpense, r.Millions(s.TotalExpense), valueStyle, "", widths[1]),
		metricCard(l.WishlistCost, r.Millions(s.TotalWishlistExpense), valueStyle, "", widths[2]),
		metricCard(l.FinalBalance, r.Millions(s.FinalBalance), finalBalanceStyle(s.FinalBalance), survival, widths[3]),
	)
}

// ExpenseChart renders one stacked bar per month: recurring then wishlist.
func (r *Renderer) ExpenseChart(ledger models.Ledger) string {
	rows := ledger.Rows()

	var maxTotal int64
	for _, row := range rows {
		if row.TotalExpense > maxTotal {
			maxTotal = row.TotalExpense
		}
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render(r.labels.ExpenseChart))
	b.WriteString("\n")
	for _, row := range rows {
		recurring := barLength(row.RecurringExpense, maxTotal, chartWidth)
		wishlist := barLength(row.WishlistExpense, maxTotal, chartWidth)
		fmt.Fprintf(&b, "  %-9s %s%s %s\n",
			row.Month.Label(r.locale),
			recurringBarStyle.Render(strings.Repeat("█", recurring)),
			wishlistBarStyle.Render(strings.Repeat("▓", wishlist)),
			mutedStyle.Render(r.Currency(row.TotalExpense)))
	}
	return b.String()
}

// BalanceTrend renders the closing balances as a sparkline.
func (r *Renderer) BalanceTrend(ledger models.Ledger) string {
	rows := ledger.Rows()
	values := make([]int64, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.ClosingBalance)
	}
	last := rows[len(rows)-1].ClosingBalance

	return fmt.Sprintf("  %s\n  %s %s\n",
		headerStyle.Render(r.labels.BalanceTrend),
		valueStyle.Render(Sparkline(values)),
		balanceStyle(last).Render(r.Currency(last)))
}

// LedgerTable renders the twelve rows with closing balances coloured by sign.
func (r *Renderer) LedgerTable(ledger models.Ledger) string {
	l := r.labels
	t := Table{
		Title:   l.DetailTitle,
		Headers: []string{l.Month, l.Opening, l.Income, l.Recurring, l.Wishlist, l.TotalExpense, l.Closing},
	}
	for _, row := range ledger.Rows() {
		t.Rows = append(t.Rows, []string{
			row.Month.Label(r.locale),
			r.Currency(row.OpeningBalance),
			r.Currency(row.Income),
			r.Currency(row.RecurringExpense),
			r.Currency(row.WishlistExpense),
			r.Currency(row.TotalExpense),
			balanceStyle(row.ClosingBalance).Render(r.Currency(row.ClosingBalance)),
		})
	}
	return RenderTable(t)
}

// Notes lists the lowest balance and any months that close below zero.
func (r *Renderer) Notes(s models.Summary) string {
	var b strings.Builder
	lowest := fmt.Sprintf(r.labels.Lowest, r.Currency(s.LowestBalance), s.LowestBalanceMonth.Label(r.locale))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(lowest))
	b.WriteString("\n")

	if len(s.NegativeMonths) > 0 {
		names := make([]string, 0, len(s.NegativeMonths))
		for _, m := range s.NegativeMonths {
			names = append(names, m.Label(r.locale))
		}
		b.WriteString("  ")
		b.WriteString(negativeStyle.Render(fmt.Sprintf(r.labels.NegativeMonths, strings.Join(names, ", "))))
		b.WriteString("\n")
	}
	return b.String()
}

// Dashboard renders the complete terminal view of a projection.
func (r *Renderer) Dashboard(title string, ledger models.Ledger, s models.Summary) string {
	sections := []string{
		r.Title(title),
		r.Cards(s),
		r.ExpenseChart(ledger),
		r.BalanceTrend(ledger),
		r.LedgerTable(ledger),
		r.Notes(s),
	}
	return strings.Join(sections, "\n")
}

// Issue renders a normalizer notice or validation error in the locale.
// Other errors are returned as their Error text.
func (r *Renderer) Issue(err error) string {
	var validation *budgeterror.ValidationError
	if errors.As(err, &validation) {
		return warnStyle.Render(fmt.Sprintf(r.labels.Rejected,
			validation.Record, validation.Index+1, validation.Field, validation.Value))
	}
	var fallback *budgeterror.UnknownMonthFallback
	if errors.As(err, &fallback) {
		return mutedStyle.Render(fmt.Sprintf(r.labels.MonthFallback,
			fallback.Record, fallback.Index+1, fallback.Label))
	}
	return warnStyle.Render(err.Error())
}

func metricCard(label, value string, style lipgloss.Style, delta string, outerWidth int) string {
	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(contentWidth).
		Padding(0, 1)

	content := mutedStyle.Render(label) + "\n" + style.Bold(true).Render(value)
	if delta != "" {
		content += "\n" + dimStyle.Render(delta)
	}
	return cardStyle.Render(content)
}

// layoutRow splits totalWidth into n widths; the first ones take the remainder.
func layoutRow(totalWidth, n int) []int {
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

func barLength(v, maxValue int64, width int) int {
	if maxValue <= 0 || v <= 0 {
		return 0
	}
	n := int(decimal.NewFromInt(v).Mul(decimal.NewFromInt(int64(width))).
		Div(decimal.NewFromInt(maxValue)).Round(0).IntPart())
	if n == 0 {
		n = 1
	}
	return n
}
