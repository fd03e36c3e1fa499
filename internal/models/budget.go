package models

// RecurringExpenseItem is a fixed monthly cost.
type RecurringExpenseItem struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Amount      int64  `json:"amount" yaml:"amount"`
	Active      bool   `json:"active" yaml:"active"`
}

// WishlistItem is a one-off purchase scheduled for exactly one month.
type WishlistItem struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Price   int64  `json:"price" yaml:"price"`
	Month   Month  `json:"month" yaml:"month"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// MonthlyOverride replaces the itemized recurring expense of one month.
// An Amount of zero means the override is inactive.
type MonthlyOverride struct {
	Month  Month `json:"month" yaml:"month"`
	Amount int64 `json:"amount" yaml:"amount"`
}

// IsActive reports whether the override replaces the recurring baseline.
func (o MonthlyOverride) IsActive() bool {
	return o.Month.IsValid() && o.Amount != 0
}

// Configuration is the complete input of a projection.
// All monetary values are whole currency units.
type Configuration struct {
	InitialBalance int64                  `json:"initial_balance" yaml:"initial_balance"`
	MonthlySalary  int64                  `json:"monthly_salary" yaml:"monthly_salary"`
	THRBonus       int64                  `json:"thr_bonus" yaml:"thr_bonus"`
	RecurringItems []RecurringExpenseItem `json:"recurring_items" yaml:"recurring_items"`
	WishlistItems  []WishlistItem         `json:"wishlist_items" yaml:"wishlist_items"`
	Overrides      map[Month]int64        `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// SetOverride stores an override for its month, replacing any previous one.
// Zero amounts are stored too; they keep the slot but leave the month untouched.
func (c *Configuration) SetOverride(o MonthlyOverride) {
	if !o.Month.IsValid() {
		return
	}
	if c.Overrides == nil {
		c.Overrides = make(map[Month]int64)
	}
	c.Overrides[o.Month] = o.Amount
}

// ClearOverride removes the override for m, if any.
func (c *Configuration) ClearOverride(m Month) {
	delete(c.Overrides, m)
}

// Override returns the override configured for m and whether one exists.
func (c Configuration) Override(m Month) (MonthlyOverride, bool) {
	amount, ok := c.Overrides[m]
	if !ok {
		return MonthlyOverride{}, false
	}
	return MonthlyOverride{Month: m, Amount: amount}, true
}

// ActiveRecurringTotal sums the amounts of all active recurring items.
func (c Configuration) ActiveRecurringTotal() int64 {
	var total int64
	for _, item := range c.RecurringItems {
		if item.Active {
			total += item.Amount
		}
	}
	return total
}

// Clone returns a deep copy so callers can hand out snapshots safely.
func (c Configuration) Clone() Configuration {
	out := c
	out.RecurringItems = append([]RecurringExpenseItem(nil), c.RecurringItems...)
	out.WishlistItems = append([]WishlistItem(nil), c.WishlistItems...)
	if c.Overrides != nil {
		out.Overrides = make(map[Month]int64, len(c.Overrides))
		for m, amount := range c.Overrides {
			out.Overrides[m] = amount
		}
	}
	return out
}
