package render

import (
	"fmt"
	"strconv"

	"fjacquet/budget-projector/internal/models"
)

// WishlistTable lists wishlist items with their 1-based position and ID.
func (r *Renderer) WishlistTable(items []models.WishlistItem) string {
	l := r.labels
	t := Table{
		Title:   l.WishlistTitle,
		Headers: []string{"#", "ID", l.Name, l.Price, l.Month, l.Status},
	}
	for i, item := range items {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			item.ID,
			item.Name,
			r.Currency(item.Price),
			item.Month.Label(r.locale),
			r.status(item.Enabled),
		})
	}
	return r.itemTable(t)
}

// RecurringTable lists recurring expenses followed by the active total.
func (r *Renderer) RecurringTable(items []models.RecurringExpenseItem) string {
	l := r.labels
	t := Table{
		Title:   l.RecurringTitle,
		Headers: []string{"#", "ID", l.Description, l.Amount, l.Status},
	}
	var total int64
	for i, item := range items {
		if item.Active {
			total += item.Amount
		}
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			item.ID,
			item.Description,
			r.Currency(item.Amount),
			r.status(item.Active),
		})
	}
	if len(items) > 0 {
		t.Rows = append(t.Rows, []string{"", "", l.TotalExpense, r.Currency(total), ""})
	}
	return r.itemTable(t)
}

// OverrideTable lists the overrides in month order. Zero amounts are shown
// as off since they leave the month on its itemized total.
func (r *Renderer) OverrideTable(overrides map[models.Month]int64) string {
	l := r.labels
	t := Table{
		Title:   l.OverrideTitle,
		Headers: []string{l.Month, l.Amount, l.Status},
	}
	for _, m := range models.AllMonths() {
		amount, ok := overrides[m]
		if !ok {
			continue
		}
		o := models.MonthlyOverride{Month: m, Amount: amount}
		t.Rows = append(t.Rows, []string{m.Label(r.locale), r.Currency(amount), r.status(o.IsActive())})
	}
	return r.itemTable(t)
}

func (r *Renderer) itemTable(t Table) string {
	if len(t.Rows) == 0 {
		return fmt.Sprintf("  %s\n  %s\n", headerStyle.Render(t.Title), mutedStyle.Render(r.labels.NoItems))
	}
	return RenderTable(t)
}

func (r *Renderer) status(on bool) string {
	if on {
		return positiveStyle.Render(r.labels.On)
	}
	return mutedStyle.Render(r.labels.Off)
}
