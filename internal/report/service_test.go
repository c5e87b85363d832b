package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ledgerlens/internal/ledger"
	"github.com/MrJamesThe3rd/ledgerlens/internal/report"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func purchase(on time.Time, category ledger.Category, amountCents int64) ledger.PurchaseRow {
	return ledger.PurchaseRow{
		Fact: ledger.Fact{
			TransactionID: uuid.New(),
			Date:          on,
			AccountID:     1,
			CategoryID:    category.ID,
			TypeID:        ledger.TypePurchase,
			AmountCents:   amountCents,
		},
		Category: category,
		Account:  ledger.Account{ID: 1, Type: "checking"},
		Type:     ledger.TransactionType{ID: ledger.TypePurchase, Purchase: true},
	}
}

var (
	catGroceries = ledger.Category{ID: 1, Description: "Groceries"}
	catTravel    = ledger.Category{ID: 2, Description: "Travel"}
)

// The worked example: one purchase of -50 on 2023-01-10 and one of -30 on
// 2023-01-11, horizon ending 2023-01-12.
func exampleLedger(ctrl *gomock.Controller) *report.MockLedger {
	l := report.NewMockLedger(ctrl)
	l.EXPECT().
		Purchases(gomock.Any(), 2022).
		Return([]ledger.PurchaseRow{
			purchase(date(2023, 1, 10), catGroceries, -5000),
			purchase(date(2023, 1, 11), catGroceries, -3000),
		}, nil).
		AnyTimes()
	l.EXPECT().
		FactDateSpan(gomock.Any()).
		Return(date(2023, 1, 10), date(2023, 1, 11), nil).
		AnyTimes()
	l.EXPECT().
		Categories(gomock.Any()).
		Return([]ledger.Category{catGroceries, catTravel}, nil).
		AnyTimes()

	return l
}

func exampleOptions() report.Options {
	return report.Options{ExcludedYear: 2022, HorizonEnd: date(2023, 1, 12)}
}

func TestMonthlySpendSummary_Example(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := report.NewService(exampleLedger(ctrl), exampleOptions())

	rows, err := svc.MonthlySpendSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 2023, rows[0].Year)
	assert.Equal(t, 1, rows[0].MonthNumber)
	assert.Equal(t, "January", rows[0].MonthName)
	assert.Equal(t, 80.0, rows[0].TotalSpend)
	assert.Nil(t, rows[0].PriorMonthChange, "first month in history has no prior comparison")
	assert.Equal(t, 80.0, rows[0].YearlyRunningTotal)
}

func TestMonthlySpendSummary_DeltaSpansYears_RunningTotalResets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := report.NewMockLedger(ctrl)
	l.EXPECT().
		Purchases(gomock.Any(), 2022).
		Return([]ledger.PurchaseRow{
			purchase(date(2023, 11, 5), catGroceries, -10000),
			purchase(date(2023, 12, 5), catGroceries, -20000),
			purchase(date(2024, 1, 5), catGroceries, -15000),
		}, nil)

	svc := report.NewService(l, report.Options{ExcludedYear: 2022})

	rows, err := svc.MonthlySpendSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// November -> December within 2023.
	require.NotNil(t, rows[1].PriorMonthChange)
	assert.Equal(t, 1.0, *rows[1].PriorMonthChange)
	assert.Equal(t, 300.0, rows[1].YearlyRunningTotal)

	// December 2023 -> January 2024: the delta crosses the year boundary
	// while the running total starts over.
	require.NotNil(t, rows[2].PriorMonthChange)
	assert.Equal(t, -0.25, *rows[2].PriorMonthChange)
	assert.Equal(t, 150.0, rows[2].YearlyRunningTotal)
}

func TestMonthlySpendByCategory_Ranking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catDining := ledger.Category{ID: 3, Description: "Dining"}

	l := report.NewMockLedger(ctrl)
	l.EXPECT().
		Purchases(gomock.Any(), 2022).
		Return([]ledger.PurchaseRow{
			purchase(date(2023, 1, 3), catGroceries, -4000),
			purchase(date(2023, 1, 9), catGroceries, -1000),
			purchase(date(2023, 1, 4), catTravel, -5000),
			purchase(date(2023, 1, 5), catDining, -5000),
		}, nil)

	svc := report.NewService(l, report.Options{ExcludedYear: 2022})

	rows, err := svc.MonthlySpendByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Groceries sums to 50 across two purchases; Travel and Dining are 50
	// each. A three-way tie, all rank 1.
	for _, r := range rows {
		assert.Equal(t, 50.0, r.TotalSpend)
		assert.Equal(t, 1, r.MonthRanking)
	}
}

func TestMonthlySpendByCategory_TieSkipsRank(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catDining := ledger.Category{ID: 3, Description: "Dining"}

	l := report.NewMockLedger(ctrl)
	l.EXPECT().
		Purchases(gomock.Any(), 2022).
		Return([]ledger.PurchaseRow{
			purchase(date(2023, 1, 3), catGroceries, -5000),
			purchase(date(2023, 1, 4), catTravel, -5000),
			purchase(date(2023, 1, 5), catDining, -2000),
		}, nil)

	svc := report.NewService(l, report.Options{ExcludedYear: 2022})

	rows, err := svc.MonthlySpendByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 1, rows[0].MonthRanking)
	assert.Equal(t, 1, rows[1].MonthRanking)
	assert.Equal(t, 3, rows[2].MonthRanking, "rank after a two-way tie skips to 3")
}

func TestDailySpend_Example(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := report.NewService(exampleLedger(ctrl), exampleOptions())

	rows, err := svc.DailySpend(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3, "every horizon day appears, including the empty one")

	assert.Equal(t, date(2023, 1, 10), rows[0].Date)
	assert.Equal(t, 50.0, rows[0].TotalSpend)
	assert.Equal(t, 50.0, rows[0].YearlyRunningTotal)

	assert.Equal(t, 30.0, rows[1].TotalSpend)
	assert.Equal(t, 80.0, rows[1].YearlyRunningTotal)
	assert.Equal(t, 40.0, rows[1].SevenDayAverage)

	// 2023-01-12 had no transactions: explicit zero row, not an absent one.
	assert.Equal(t, date(2023, 1, 12), rows[2].Date)
	assert.Equal(t, 0.0, rows[2].TotalSpend)
	assert.Equal(t, 80.0, rows[2].YearlyRunningTotal)
	assert.Equal(t, 26.67, rows[2].SevenDayAverage)
}

func TestDailySpend_ExcludedYearDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := report.NewMockLedger(ctrl)
	l.EXPECT().
		Purchases(gomock.Any(), 2022).
		Return([]ledger.PurchaseRow{
			purchase(date(2023, 1, 1), catGroceries, -1000),
		}, nil)
	l.EXPECT().
		FactDateSpan(gomock.Any()).
		Return(date(2022, 12, 30), date(2023, 1, 1), nil)

	svc := report.NewService(l, report.Options{ExcludedYear: 2022, HorizonEnd: date(2023, 1, 2)})

	rows, err := svc.DailySpend(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2, "2022 days are omitted entirely")

	assert.Equal(t, date(2023, 1, 1), rows[0].Date)
	assert.Equal(t, date(2023, 1, 2), rows[1].Date)
}

func TestDailySpend_EmptyLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := report.NewMockLedger(ctrl)
	l.EXPECT().
		FactDateSpan(gomock.Any()).
		Return(time.Time{}, time.Time{}, ledger.ErrEmptyLedger)
	l.EXPECT().Purchases(gomock.Any(), 2022).Return(nil, nil)

	svc := report.NewService(l, report.Options{ExcludedYear: 2022})

	rows, err := svc.DailySpend(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDailyCategoryBalance_ZeroFill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := report.NewService(exampleLedger(ctrl), exampleOptions())

	rows, err := svc.DailyCategoryBalance(context.Background())
	require.NoError(t, err)

	// 3 horizon days x 2 categories.
	require.Len(t, rows, 6)

	byCell := make(map[string]float64, len(rows))
	for _, r := range rows {
		byCell[r.Date.Format(time.DateOnly)+"/"+r.Category] = r.TotalSpend
	}

	assert.Equal(t, 50.0, byCell["2023-01-10/Groceries"])
	assert.Equal(t, 30.0, byCell["2023-01-11/Groceries"])
	assert.Equal(t, 0.0, byCell["2023-01-12/Groceries"])
	assert.Equal(t, 0.0, byCell["2023-01-10/Travel"])
	assert.Equal(t, 0.0, byCell["2023-01-11/Travel"])
	assert.Equal(t, 0.0, byCell["2023-01-12/Travel"])
}

func TestMonthlyAccountBalance_SignedRunningBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := report.NewMockLedger(ctrl)
	l.EXPECT().
		AccountEntries(gomock.Any()).
		Return([]ledger.AccountEntry{
			{AccountID: 10, AccountType: "checking", Date: date(2023, 1, 5), AmountCents: 10000},
			{AccountID: 10, AccountType: "checking", Date: date(2023, 2, 7), AmountCents: -4000},
			{AccountID: 20, AccountType: "savings", Date: date(2023, 1, 9), AmountCents: 2500},
		}, nil)

	svc := report.NewService(l, report.Options{ExcludedYear: 2022})

	rows, err := svc.MonthlyAccountBalance(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, int64(10), rows[0].AccountID)
	assert.Equal(t, "2023-01", rows[0].Period)
	assert.Equal(t, 100.0, rows[0].Balance)

	assert.Equal(t, "2023-02", rows[1].Period)
	assert.Equal(t, -40.0, rows[1].NetChange)
	assert.Equal(t, 60.0, rows[1].Balance, "balance is signed, never absolute")

	assert.Equal(t, int64(20), rows[2].AccountID)
	assert.Equal(t, 25.0, rows[2].Balance)
}

func TestSnapshot_AllDatasets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := exampleLedger(ctrl)
	l.EXPECT().
		AccountEntries(gomock.Any()).
		Return([]ledger.AccountEntry{
			{AccountID: 1, AccountType: "checking", Date: date(2023, 1, 10), AmountCents: -5000},
		}, nil)

	svc := report.NewService(l, exampleOptions())

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.MonthlySpend, 1)
	assert.Len(t, snap.MonthlySpendCategory, 1)
	assert.Len(t, snap.DailySpend, 3)
	assert.Len(t, snap.DailyCategoryBalance, 6)
	assert.Len(t, snap.AccountBalances, 1)
}

func TestSnapshot_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := exampleLedger(ctrl)
	l.EXPECT().
		AccountEntries(gomock.Any()).
		Return([]ledger.AccountEntry{
			{AccountID: 1, AccountType: "checking", Date: date(2023, 1, 10), AmountCents: -5000},
		}, nil).
		Times(2)

	svc := report.NewService(l, exampleOptions())

	first, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	second, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
