package models

// BonusMonth is the only month in which the THR bonus is paid.
const BonusMonth = March

// LegacyJanuaryRecurringExpense is the fixed January expense used by the
// original planner regardless of the itemized recurring total.
const LegacyJanuaryRecurringExpense int64 = 2_840_000

// Defaults applied when the editing surface adds an item.
const (
	DefaultWishlistName        = "New item"
	DefaultWishlistPrice int64 = 1_000_000
	DefaultWishlistMonth       = December

	DefaultRecurringDescription        = "New expense"
	DefaultRecurringAmount       int64 = 0
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
