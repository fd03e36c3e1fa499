package render

// labels holds the user-facing strings of one locale.
type labels struct {
	Month          string
	Opening        string
	Income         string
	Recurring      string
	Wishlist       string
	TotalExpense   string
	Closing        string
	TotalIncome    string
	WishlistCost   string
	FinalBalance   string
	Survival       string
	NoSurvival     string
	Lowest         string
	ExpenseChart   string
	BalanceTrend   string
	DetailTitle    string
	MillionSuffix  string
	Rejected       string
	MonthFallback  string
	NegativeMonths string

	Name           string
	Description    string
	Price          string
	Amount         string
	Status         string
	On             string
	Off            string
	WishlistTitle  string
	RecurringTitle string
	OverrideTitle  string
	NoItems        string
}

var localeLabels = map[string]labels{
	"en": {
		Month:          "Month",
		Opening:        "Opening",
		Income:         "Income",
		Recurring:      "Recurring",
		Wishlist:       "Wishlist",
		TotalExpense:   "Total expense",
		Closing:        "Closing",
		TotalIncome:    "Total income",
		WishlistCost:   "Wishlist cost",
		FinalBalance:   "Final balance",
		Survival:       "%s months of recurring expenses",
		NoSurvival:     "no survival estimate",
		Lowest:         "Lowest balance %s in %s",
		ExpenseChart:   "Expenses per month (recurring / wishlist)",
		BalanceTrend:   "Closing balance trend",
		DetailTitle:    "Monthly detail",
		MillionSuffix:  "M",
		Rejected:       "%s #%d dropped: %s %q is not valid",
		MonthFallback:  "%s #%d: month %q not recognised, scheduled in January",
		NegativeMonths: "Balance below zero in: %s",

		Name:           "Name",
		Description:    "Description",
		Price:          "Price",
		Amount:         "Amount",
		Status:         "Status",
		On:             "on",
		Off:            "off",
		WishlistTitle:  "Wishlist",
		RecurringTitle: "Recurring expenses",
		OverrideTitle:  "Monthly overrides",
		NoItems:        "(none)",
	},
	"id": {
		Month:          "Bulan",
		Opening:        "Saldo awal",
		Income:         "Pemasukan",
		Recurring:      "Rutin",
		Wishlist:       "Wishlist",
		TotalExpense:   "Total pengeluaran",
		Closing:        "Saldo akhir",
		TotalIncome:    "Total pemasukan",
		WishlistCost:   "Biaya wishlist",
		FinalBalance:   "Saldo akhir tahun",
		Survival:       "cukup %s bulan pengeluaran rutin",
		NoSurvival:     "tidak ada estimasi",
		Lowest:         "Saldo terendah %s di %s",
		ExpenseChart:   "Pengeluaran per bulan (rutin / wishlist)",
		BalanceTrend:   "Tren saldo akhir",
		DetailTitle:    "Rincian bulanan",
		MillionSuffix:  "Jt",
		Rejected:       "%s #%d dibuang: %s %q tidak valid",
		MonthFallback:  "%s #%d: bulan %q tidak dikenal, dijadwalkan di Januari",
		NegativeMonths: "Saldo minus di: %s",

		Name:           "Nama",
		Description:    "Keterangan",
		Price:          "Harga",
		Amount:         "Jumlah",
		Status:         "Status",
		On:             "aktif",
		Off:            "nonaktif",
		WishlistTitle:  "Wishlist",
		RecurringTitle: "Pengeluaran rutin",
		OverrideTitle:  "Override bulanan",
		NoItems:        "(kosong)",
	},
}

func labelsFor(locale string) labels {
	if l, ok := localeLabels[locale]; ok {
		return l
	}
	return localeLabels["en"]
}
