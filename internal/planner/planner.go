// Package planner is the editing surface of the budget projector: it owns a
// configuration, exposes explicit add/update/remove operations over its
// recurring and wishlist items, and recomputes the ledger after every write.
//
// Items are addressed by stable IDs; removing an item never shifts the
// identity of the others. A Planner is not safe for concurrent use.
package planner

import (
	"fmt"

	"fjacquet/budget-projector/internal/aggregator"
	"fjacquet/budget-projector/internal/budgeterror"
	"fjacquet/budget-projector/internal/logging"
	"fjacquet/budget-projector/internal/models"
	"fjacquet/budget-projector/internal/projection"

	"github.com/google/uuid"
)

// Planner holds a configuration together with its latest projection.
type Planner struct {
	engine *projection.Engine
	logger logging.Logger
	newID  func() string

	initialBalance int64
	monthlySalary  int64
	thrBonus       int64

	recurring      map[string]models.RecurringExpenseItem
	recurringOrder []string
	wishlist       map[string]models.WishlistItem
	wishlistOrder  []string
	overrides      map[models.Month]int64

	ledger  models.Ledger
	summary models.Summary
}

// New creates a Planner seeded with cfg. Items without an ID get one.
func New(cfg models.Configuration, engine *projection.Engine, logger logging.Logger) *Planner {
	if engine == nil {
		engine = projection.NewEngine(projection.DefaultPolicy())
	}
	if logger == nil {
		logger = logging.NewMockLogger()
	}
	p := &Planner{
		engine:    engine,
		logger:    logger,
		newID:     uuid.NewString,
		recurring: make(map[string]models.RecurringExpenseItem),
		wishlist:  make(map[string]models.WishlistItem),
		overrides: make(map[models.Month]int64),
	}
	p.load(cfg)
	p.recompute("load")
	return p
}

func (p *Planner) load(cfg models.Configuration) {
	p.initialBalance = cfg.InitialBalance
	p.monthlySalary = cfg.MonthlySalary
	p.thrBonus = cfg.THRBonus
	for _, item := range cfg.RecurringItems {
		if item.ID == "" || p.hasID(item.ID) {
			item.ID = p.newID()
		}
		p.recurring[item.ID] = item
		p.recurringOrder = append(p.recurringOrder, item.ID)
	}
	for _, item := range cfg.WishlistItems {
		if item.ID == "" || p.hasID(item.ID) {
			item.ID = p.newID()
		}
		p.wishlist[item.ID] = item
		p.wishlistOrder = append(p.wishlistOrder, item.ID)
	}
	for m, amount := range cfg.Overrides {
		if m.IsValid() {
			p.overrides[m] = amount
		}
	}
}

func (p *Planner) hasID(id string) bool {
	_, inRecurring := p.recurring[id]
	_, inWishlist := p.wishlist[id]
	return inRecurring || inWishlist
}

// recompute regenerates the ledger and summary from the current state.
func (p *Planner) recompute(operation string) {
	p.ledger = p.engine.Project(p.Configuration())
	p.summary = aggregator.Summarize(p.ledger)
	p.logger.Debug("Recomputed projection",
		logging.F(logging.FieldOperation, operation),
		logging.F(logging.FieldBalance, p.summary.FinalBalance))
}

// Configuration returns a snapshot of the current configuration with items
// in insertion order.
func (p *Planner) Configuration() models.Configuration {
	cfg := models.Configuration{
		InitialBalance: p.initialBalance,
		MonthlySalary:  p.monthlySalary,
		THRBonus:       p.thrBonus,
		RecurringItems: make([]models.RecurringExpenseItem, 0, len(p.recurringOrder)),
		WishlistItems:  make([]models.WishlistItem, 0, len(p.wishlistOrder)),
	}
	for _, id := range p.recurringOrder {
		cfg.RecurringItems = append(cfg.RecurringItems, p.recurring[id])
	}
	for _, id := range p.wishlistOrder {
		cfg.WishlistItems = append(cfg.WishlistItems, p.wishlist[id])
	}
	for m, amount := range p.overrides {
		cfg.SetOverride(models.MonthlyOverride{Month: m, Amount: amount})
	}
	return cfg
}

// Ledger returns the projection of the current configuration.
func (p *Planner) Ledger() models.Ledger {
	return p.ledger
}

// Summary returns the aggregates of the current ledger.
func (p *Planner) Summary() models.Summary {
	return p.summary
}

// SetInitialBalance updates the opening balance of January.
func (p *Planner) SetInitialBalance(v int64) error {
	if err := models.CheckAmount(v); err != nil {
		return err
	}
	p.initialBalance = v
	p.recompute("set_initial_balance")
	return nil
}

// SetMonthlySalary updates the monthly salary.
func (p *Planner) SetMonthlySalary(v int64) error {
	if err := models.CheckAmount(v); err != nil {
		return err
	}
	p.monthlySalary = v
	p.recompute("set_monthly_salary")
	return nil
}

// SetTHRBonus updates the bonus paid in March.
func (p *Planner) SetTHRBonus(v int64) error {
	if err := models.CheckAmount(v); err != nil {
		return err
	}
	p.thrBonus = v
	p.recompute("set_thr_bonus")
	return nil
}

// AddRecurring appends a recurring item and returns its ID.
func (p *Planner) AddRecurring(item models.RecurringExpenseItem) string {
	if item.ID == "" || p.hasID(item.ID) {
		item.ID = p.newID()
	}
	p.recurring[item.ID] = item
	p.recurringOrder = append(p.recurringOrder, item.ID)
	p.logger.Debug("Added recurring item", logging.F(logging.FieldItemID, item.ID))
	p.recompute("add_recurring")
	return item.ID
}

// AddDefaultRecurring appends an active recurring item with default values.
func (p *Planner) AddDefaultRecurring() string {
	return p.AddRecurring(models.RecurringExpenseItem{
		Description: models.DefaultRecurringDescription,
		Amount:      models.DefaultRecurringAmount,
		Active:      true,
	})
}

// UpdateRecurring applies fn to the item with the given ID. The ID itself
// cannot be changed.
func (p *Planner) UpdateRecurring(id string, fn func(*models.RecurringExpenseItem)) error {
	item, ok := p.recurring[id]
	if !ok {
		return fmt.Errorf("recurring item %s: %w", id, budgeterror.ErrItemNotFound)
	}
	fn(&item)
	item.ID = id
	p.recurring[id] = item
	p.recompute("update_recurring")
	return nil
}

// RemoveRecurring deletes the item with the given ID.
func (p *Planner) RemoveRecurring(id string) error {
	if _, ok := p.recurring[id]; !ok {
		return fmt.Errorf("recurring item %s: %w", id, budgeterror.ErrItemNotFound)
	}
	delete(p.recurring, id)
	p.recurringOrder = removeID(p.recurringOrder, id)
	p.recompute("remove_recurring")
	return nil
}

// Recurring returns the item with the given ID.
func (p *Planner) Recurring(id string) (models.RecurringExpenseItem, bool) {
	item, ok := p.recurring[id]
	return item, ok
}

// AddWishlist appends a wishlist item and returns its ID.
func (p *Planner) AddWishlist(item models.WishlistItem) string {
	if item.ID == "" || p.hasID(item.ID) {
		item.ID = p.newID()
	}
	p.wishlist[item.ID] = item
	p.wishlistOrder = append(p.wishlistOrder, item.ID)
	p.logger.Debug("Added wishlist item", logging.F(logging.FieldItemID, item.ID))
	p.recompute("add_wishlist")
	return item.ID
}

// AddDefaultWishlist appends the default new wishlist item.
func (p *Planner) AddDefaultWishlist() string {
	return p.AddWishlist(models.WishlistItem{
		Name:    models.DefaultWishlistName,
		Price:   models.DefaultWishlistPrice,
		Month:   models.DefaultWishlistMonth,
		Enabled: true,
	})
}

// UpdateWishlist applies fn to the item with the given ID. An invalid month
// set by fn is replaced by January, as the normalizer does.
func (p *Planner) UpdateWishlist(id string, fn func(*models.WishlistItem)) error {
	item, ok := p.wishlist[id]
	if !ok {
		return fmt.Errorf("wishlist item %s: %w", id, budgeterror.ErrItemNotFound)
	}
	fn(&item)
	item.ID = id
	if !item.Month.IsValid() {
		item.Month = models.January
	}
	p.wishlist[id] = item
	p.recompute("update_wishlist")
	return nil
}

// RemoveWishlist deletes the item with the given ID.
func (p *Planner) RemoveWishlist(id string) error {
	if _, ok := p.wishlist[id]; !ok {
		return fmt.Errorf("wishlist item %s: %w", id, budgeterror.ErrItemNotFound)
	}
	delete(p.wishlist, id)
	p.wishlistOrder = removeID(p.wishlistOrder, id)
	p.recompute("remove_wishlist")
	return nil
}

// Wishlist returns the item with the given ID.
func (p *Planner) Wishlist(id string) (models.WishlistItem, bool) {
	item, ok := p.wishlist[id]
	return item, ok
}

// DisableAllWishlist disables every wishlist item and returns how many changed.
func (p *Planner) DisableAllWishlist() int {
	changed := 0
	for id, item := range p.wishlist {
		if item.Enabled {
			item.Enabled = false
			p.wishlist[id] = item
			changed++
		}
	}
	p.recompute("disable_all_wishlist")
	return changed
}

// ClearWishlist removes every wishlist item and returns how many were removed.
func (p *Planner) ClearWishlist() int {
	n := len(p.wishlistOrder)
	p.wishlist = make(map[string]models.WishlistItem)
	p.wishlistOrder = nil
	p.recompute("clear_wishlist")
	return n
}

// SetOverride stores an override. A zero amount keeps the month on its
// itemized recurring total.
func (p *Planner) SetOverride(o models.MonthlyOverride) error {
	if !o.Month.IsValid() {
		return fmt.Errorf("override month %d is not a valid month", int(o.Month))
	}
	if o.Amount < 0 {
		return fmt.Errorf("override amount must not be negative: %w", models.ErrNegativeAmount)
	}
	if err := models.CheckAmount(o.Amount); err != nil {
		return fmt.Errorf("override amount: %w", err)
	}
	p.overrides[o.Month] = o.Amount
	p.recompute("set_override")
	return nil
}

// ClearOverride removes the override of month m.
func (p *Planner) ClearOverride(m models.Month) {
	delete(p.overrides, m)
	p.recompute("clear_override")
}

// ClearOverrides removes every override.
func (p *Planner) ClearOverrides() {
	p.overrides = make(map[models.Month]int64)
	p.recompute("clear_overrides")
}

func removeID(order []string, id string) []string {
	out := order[:0]
	for _, existing := range order {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
