package report

import "time"

// MonthlySpendRow is one month of total purchase spend. PriorMonthChange is
// nil when there is no prior month to compare against or the prior month's
// spend was zero. The delta is ordered across the entire history while the
// running total resets each year; the asymmetry is deliberate.
type MonthlySpendRow struct {
	Year               int
	MonthNumber        int
	MonthName          string
	TotalSpend         float64
	PriorMonthChange   *float64
	YearlyRunningTotal float64
}

// CategoryMonthlySpendRow ranks category spend within a month. Ties share a
// rank and the next rank skips by the tie-group size.
type CategoryMonthlySpendRow struct {
	Year         int
	MonthNumber  int
	MonthName    string
	CategoryID   int64
	Category     string
	TotalSpend   float64
	MonthRanking int
}

// DailySpendRow covers every day of the horizon, including days with no
// purchases (spend 0).
type DailySpendRow struct {
	Date               time.Time
	TotalSpend         float64
	SevenDayAverage    float64
	YearlyRunningTotal float64
}

// DailyCategoryBalanceRow is one cell of the dense date x category grid.
type DailyCategoryBalanceRow struct {
	Date       time.Time
	CategoryID int64
	Category   string
	TotalSpend float64
}

// MonthlyAccountBalanceRow is the signed balance of an account as of the end
// of a year-month period.
type MonthlyAccountBalanceRow struct {
	AccountID   int64
	AccountType string
	Period      string
	NetChange   float64
	Balance     float64
}

// Snapshot bundles all five datasets computed from one ledger state.
type Snapshot struct {
	MonthlySpend         []MonthlySpendRow
	MonthlySpendCategory []CategoryMonthlySpendRow
	DailySpend           []DailySpendRow
	DailyCategoryBalance []DailyCategoryBalanceRow
	AccountBalances      []MonthlyAccountBalanceRow
}
