package store

import (
	"sort"

	"fjacquet/budget-projector/internal/models"
	"fjacquet/budget-projector/internal/normalizer"
)

// DefaultTitle is the title of the seed scenario.
const DefaultTitle = "Budget 2026"

// Scenario is the on-disk form of a budget. Amounts stay raw so that the
// normalizer, not the decoder, decides what a bad value means.
//
// Override is the single "edit one month" slot of the original planner;
// Overrides lists any number of months. When both name the same month the
// entry from Overrides wins.
type Scenario struct {
	Title          string                        `yaml:"title,omitempty" json:"title,omitempty" toml:"title,omitempty"`
	InitialBalance int64                         `yaml:"initial_balance" json:"initial_balance" toml:"initial_balance"`
	MonthlySalary  int64                         `yaml:"monthly_salary" json:"monthly_salary" toml:"monthly_salary"`
	THRBonus       int64                         `yaml:"thr_bonus" json:"thr_bonus" toml:"thr_bonus"`
	Recurring      []normalizer.RawRecurringItem `yaml:"recurring" json:"recurring" toml:"recurring"`
	Wishlist       []normalizer.RawWishlistItem  `yaml:"wishlist" json:"wishlist" toml:"wishlist"`
	Override       *normalizer.RawOverride       `yaml:"override,omitempty" json:"override,omitempty" toml:"override,omitempty"`
	Overrides      []normalizer.RawOverride      `yaml:"overrides,omitempty" json:"overrides,omitempty" toml:"overrides,omitempty"`
}

// Default returns the seed scenario the planner starts from.
func Default() *Scenario {
	return &Scenario{
		Title:          DefaultTitle,
		InitialBalance: 6_400_000,
		MonthlySalary:  5_200_000,
		THRBonus:       1_800_000,
		Recurring: []normalizer.RawRecurringItem{
			{ID: "transfer-to-mother", Description: "Transfer to mother", Amount: normalizer.AmountOf(2_000_000), Active: normalizer.Bool(true)},
			{ID: "personal-needs", Description: "Personal needs", Amount: normalizer.AmountOf(1_840_000), Active: normalizer.Bool(true)},
		},
		Wishlist: []normalizer.RawWishlistItem{
			{ID: "samsung-tab-s10-fe", Name: "Samsung Tab S10 FE", Price: normalizer.AmountOf(6_000_000), Month: models.March.String(), Enabled: normalizer.Bool(true)},
			{ID: "motorola-edge-60-fusion", Name: "Motorola Edge 60 Fusion", Price: normalizer.AmountOf(4_300_000), Month: models.April.String(), Enabled: normalizer.Bool(true)},
			{ID: "trip-jogja", Name: "Trip Jogja", Price: normalizer.AmountOf(2_000_000), Month: models.May.String(), Enabled: normalizer.Bool(false)},
			{ID: "trip-malang", Name: "Trip Malang", Price: normalizer.AmountOf(2_500_000), Month: models.June.String(), Enabled: normalizer.Bool(false)},
		},
	}
}

// RawInput flattens the scenario into normalizer input.
func (s *Scenario) RawInput() normalizer.RawInput {
	in := normalizer.RawInput{
		InitialBalance: s.InitialBalance,
		MonthlySalary:  s.MonthlySalary,
		THRBonus:       s.THRBonus,
		Recurring:      s.Recurring,
		Wishlist:       s.Wishlist,
	}
	if s.Override != nil {
		in.Overrides = append(in.Overrides, *s.Override)
	}
	in.Overrides = append(in.Overrides, s.Overrides...)
	return in
}

// FromConfiguration builds the scenario that round-trips cfg. Overrides are
// written as a list ordered by month.
func FromConfiguration(title string, cfg models.Configuration) *Scenario {
	s := &Scenario{
		Title:          title,
		InitialBalance: cfg.InitialBalance,
		MonthlySalary:  cfg.MonthlySalary,
		THRBonus:       cfg.THRBonus,
		Recurring:      make([]normalizer.RawRecurringItem, 0, len(cfg.RecurringItems)),
		Wishlist:       make([]normalizer.RawWishlistItem, 0, len(cfg.WishlistItems)),
	}
	for _, item := range cfg.RecurringItems {
		s.Recurring = append(s.Recurring, normalizer.RawRecurringItem{
			ID:          item.ID,
			Description: item.Description,
			Amount:      normalizer.AmountOf(item.Amount),
			Active:      normalizer.Bool(item.Active),
		})
	}
	for _, item := range cfg.WishlistItems {
		s.Wishlist = append(s.Wishlist, normalizer.RawWishlistItem{
			ID:      item.ID,
			Name:    item.Name,
			Price:   normalizer.AmountOf(item.Price),
			Month:   item.Month.String(),
			Enabled: normalizer.Bool(item.Enabled),
		})
	}

	months := make([]models.Month, 0, len(cfg.Overrides))
	for m := range cfg.Overrides {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	for _, m := range months {
		s.Overrides = append(s.Overrides, normalizer.RawOverride{
			Month:  m.String(),
			Amount: normalizer.AmountOf(cfg.Overrides[m]),
		})
	}
	return s
}
