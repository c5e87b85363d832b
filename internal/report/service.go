package report

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/ledgerlens/internal/calendar"
	"github.com/MrJamesThe3rd/ledgerlens/internal/grid"
	"github.com/MrJamesThe3rd/ledgerlens/internal/ledger"
	"github.com/MrJamesThe3rd/ledgerlens/internal/window"
)

const movingAverageDays = 7

//go:generate mockgen -source=service.go -destination=ledger_mock.go -package=report
type Ledger interface {
	Purchases(ctx context.Context, excludedYear int) ([]ledger.PurchaseRow, error)
	AccountEntries(ctx context.Context) ([]ledger.AccountEntry, error)
	Categories(ctx context.Context) ([]ledger.Category, error)
	FactDateSpan(ctx context.Context) (time.Time, time.Time, error)
}

// Options configure the reporting horizon. The same engine serves other
// horizons by changing these, nothing is hardcoded into the views.
type Options struct {
	// ExcludedYear is omitted from every spend view.
	ExcludedYear int
	// HorizonEnd bounds daily views; the zero value means today.
	HorizonEnd time.Time
}

// Service materializes the five derived datasets. Each dataset is recomputed
// from the ledger on every call; identical ledger state yields identical
// output, and no state is carried between invocations.
type Service struct {
	ledger Ledger
	opts   Options
}

func NewService(l Ledger, opts Options) *Service {
	return &Service{ledger: l, opts: opts}
}

// Snapshot computes all five datasets. They only share read-only inputs, so
// they run concurrently.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.MonthlySpend, err = s.MonthlySpendSummary(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.MonthlySpendCategory, err = s.MonthlySpendByCategory(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.DailySpend, err = s.DailySpend(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.DailyCategoryBalance, err = s.DailyCategoryBalance(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.AccountBalances, err = s.MonthlyAccountBalance(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snap, nil
}

type monthKey struct {
	year  int
	month int
}

// MonthlySpendSummary groups purchases into per-month absolute spend, with a
// month-over-month change across the whole history and a running total that
// resets each year.
func (s *Service) MonthlySpendSummary(ctx context.Context) ([]MonthlySpendRow, error) {
	purchases, err := s.ledger.Purchases(ctx, s.opts.ExcludedYear)
	if err != nil {
		return nil, fmt.Errorf("monthly spend: %w", err)
	}

	byMonth := make(map[monthKey]int64)
	for _, p := range purchases {
		k := monthKey{p.Fact.Date.Year(), int(p.Fact.Date.Month())}
		byMonth[k] += absCents(p.Fact.AmountCents)
	}

	rows := make([]MonthlySpendRow, 0, len(byMonth))
	for k, cents := range byMonth {
		rows = append(rows, MonthlySpendRow{
			Year:        k.year,
			MonthNumber: k.month,
			MonthName:   time.Month(k.month).String(),
			TotalSpend:  toUnits(cents),
		})
	}

	slices.SortFunc(rows, func(a, b MonthlySpendRow) int {
		if c := cmp.Compare(a.Year, b.Year); c != 0 {
			return c
		}
		return cmp.Compare(a.MonthNumber, b.MonthNumber)
	})

	// The delta spans year boundaries (one global partition); the running
	// total partitions by year.
	deltas := window.LagDelta(rows,
		func(MonthlySpendRow) int { return 0 },
		func(r MonthlySpendRow) float64 { return r.TotalSpend })
	totals := window.RunningTotal(rows,
		func(r MonthlySpendRow) int { return r.Year },
		func(r MonthlySpendRow) float64 { return r.TotalSpend })

	for i := range rows {
		rows[i].PriorMonthChange = deltas[i]
		rows[i].YearlyRunningTotal = window.Round2(totals[i])
	}

	return rows, nil
}

// MonthlySpendByCategory groups purchases by month and category and ranks
// categories by spend within each month.
func (s *Service) MonthlySpendByCategory(ctx context.Context) ([]CategoryMonthlySpendRow, error) {
	purchases, err := s.ledger.Purchases(ctx, s.opts.ExcludedYear)
	if err != nil {
		return nil, fmt.Errorf("monthly spend by category: %w", err)
	}

	type catKey struct {
		monthKey
		categoryID int64
	}

	sums := make(map[catKey]int64)
	names := make(map[int64]string)

	for _, p := range purchases {
		k := catKey{monthKey{p.Fact.Date.Year(), int(p.Fact.Date.Month())}, p.Category.ID}
		sums[k] += absCents(p.Fact.AmountCents)
		names[p.Category.ID] = p.Category.Description
	}

	rows := make([]CategoryMonthlySpendRow, 0, len(sums))
	for k, cents := range sums {
		rows = append(rows, CategoryMonthlySpendRow{
			Year:        k.year,
			MonthNumber: k.month,
			MonthName:   time.Month(k.month).String(),
			CategoryID:  k.categoryID,
			Category:    names[k.categoryID],
			TotalSpend:  toUnits(cents),
		})
	}

	slices.SortFunc(rows, func(a, b CategoryMonthlySpendRow) int {
		if c := cmp.Compare(a.Year, b.Year); c != 0 {
			return c
		}
		if c := cmp.Compare(a.MonthNumber, b.MonthNumber); c != 0 {
			return c
		}
		if c := cmp.Compare(b.TotalSpend, a.TotalSpend); c != 0 {
			return c
		}
		return cmp.Compare(a.CategoryID, b.CategoryID)
	})

	ranks := window.Rank(rows,
		func(r CategoryMonthlySpendRow) monthKey { return monthKey{r.Year, r.MonthNumber} },
		func(r CategoryMonthlySpendRow) float64 { return r.TotalSpend })

	for i := range rows {
		rows[i].MonthRanking = ranks[i]
	}

	return rows, nil
}

// DailySpend covers every horizon day with its purchase spend, a 7-day moving
// average over the full date order, and a per-year running total. Days with
// no purchases appear with spend 0.
func (s *Service) DailySpend(ctx context.Context) ([]DailySpendRow, error) {
	dates, err := s.horizonDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("daily spend: %w", err)
	}

	purchases, err := s.ledger.Purchases(ctx, s.opts.ExcludedYear)
	if err != nil {
		return nil, fmt.Errorf("daily spend: %w", err)
	}

	byDay := make(map[time.Time]int64)
	for _, p := range purchases {
		byDay[dayOf(p.Fact.Date)] += absCents(p.Fact.AmountCents)
	}

	rows := make([]DailySpendRow, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, DailySpendRow{
			Date:       d.Date,
			TotalSpend: toUnits(byDay[d.Date]),
		})
	}

	averages := window.MovingAverage(rows,
		func(r DailySpendRow) float64 { return r.TotalSpend },
		movingAverageDays)
	totals := window.RunningTotal(rows,
		func(r DailySpendRow) int { return r.Date.Year() },
		func(r DailySpendRow) float64 { return r.TotalSpend })

	for i := range rows {
		rows[i].SevenDayAverage = averages[i]
		rows[i].YearlyRunningTotal = window.Round2(totals[i])
	}

	return rows, nil
}

// DailyCategoryBalance fills the dense date x category grid with purchase
// sums, zero where no activity occurred. No windowing beyond the zero-fill.
func (s *Service) DailyCategoryBalance(ctx context.Context) ([]DailyCategoryBalanceRow, error) {
	dates, err := s.horizonDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("daily category balance: %w", err)
	}

	categories, err := s.ledger.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("daily category balance: %w", err)
	}

	purchases, err := s.ledger.Purchases(ctx, s.opts.ExcludedYear)
	if err != nil {
		return nil, fmt.Errorf("daily category balance: %w", err)
	}

	type cellKey struct {
		date       time.Time
		categoryID int64
	}

	sums := make(map[cellKey]int64)
	for _, p := range purchases {
		sums[cellKey{dayOf(p.Fact.Date), p.Category.ID}] += absCents(p.Fact.AmountCents)
	}

	cells := grid.DateCategory(dates, categories)

	rows := make([]DailyCategoryBalanceRow, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, DailyCategoryBalanceRow{
			Date:       c.Date.Date,
			CategoryID: c.Category.ID,
			Category:   c.Category.Description,
			TotalSpend: toUnits(sums[cellKey{c.Date.Date, c.Category.ID}]),
		})
	}

	return rows, nil
}

// MonthlyAccountBalance sums signed amounts of all transactions per account
// and year-month period, then accumulates per account to the balance as of
// period end. Purchase-type and excluded-year filters do not apply here.
func (s *Service) MonthlyAccountBalance(ctx context.Context) ([]MonthlyAccountBalanceRow, error) {
	entries, err := s.ledger.AccountEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("account balances: %w", err)
	}

	type periodKey struct {
		accountID int64
		period    string
	}

	sums := make(map[periodKey]int64)
	types := make(map[int64]string)

	for _, e := range entries {
		sums[periodKey{e.AccountID, e.Date.Format("2006-01")}] += e.AmountCents
		types[e.AccountID] = e.AccountType
	}

	rows := make([]MonthlyAccountBalanceRow, 0, len(sums))
	for k, cents := range sums {
		rows = append(rows, MonthlyAccountBalanceRow{
			AccountID:   k.accountID,
			AccountType: types[k.accountID],
			Period:      k.period,
			NetChange:   toUnits(cents),
		})
	}

	slices.SortFunc(rows, func(a, b MonthlyAccountBalanceRow) int {
		if c := cmp.Compare(a.AccountID, b.AccountID); c != 0 {
			return c
		}
		return cmp.Compare(a.Period, b.Period)
	})

	balances := window.RunningTotal(rows,
		func(r MonthlyAccountBalanceRow) int64 { return r.AccountID },
		func(r MonthlyAccountBalanceRow) float64 { return r.NetChange })

	for i := range rows {
		rows[i].Balance = window.Round2(balances[i])
	}

	return rows, nil
}

// horizonDates builds the calendar for the daily views: every day from the
// earliest fact to the horizon end, minus the excluded year. An empty ledger
// yields an empty horizon, not an error.
func (s *Service) horizonDates(ctx context.Context) ([]calendar.DateEntry, error) {
	start, _, err := s.ledger.FactDateSpan(ctx)
	if err != nil {
		if errors.Is(err, ledger.ErrEmptyLedger) {
			return nil, nil
		}

		return nil, err
	}

	end := s.opts.HorizonEnd
	if end.IsZero() {
		end = dayOf(time.Now().UTC())
	}

	if dayOf(start).After(end) {
		return nil, nil
	}

	dates, err := calendar.Generate(start, end)
	if err != nil {
		return nil, err
	}

	filtered := dates[:0]
	for _, d := range dates {
		if d.Year != s.opts.ExcludedYear {
			filtered = append(filtered, d)
		}
	}

	return filtered, nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func absCents(c int64) int64 {
	if c < 0 {
		return -c
	}

	return c
}

func toUnits(cents int64) float64 {
	return float64(cents) / 100
}
