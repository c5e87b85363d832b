package report

import (
	"time"

	"github.com/MrJamesThe3rd/ledgerlens/internal/report"
)

type monthlySpendResponse struct {
	Year               int      `json:"year"`
	MonthNumber        int      `json:"month_number"`
	MonthName          string   `json:"month_name"`
	TotalSpend         float64  `json:"total_spend"`
	PriorMonthChange   *float64 `json:"prior_month_change,omitempty"`
	YearlyRunningTotal float64  `json:"yearly_running_total"`
}

type categorySpendResponse struct {
	Year         int     `json:"year"`
	MonthNumber  int     `json:"month_number"`
	MonthName    string  `json:"month_name"`
	CategoryID   int64   `json:"category_id"`
	Category     string  `json:"category"`
	TotalSpend   float64 `json:"total_spend"`
	MonthRanking int     `json:"month_ranking"`
}

type dailySpendResponse struct {
	Date               string  `json:"date"`
	TotalSpend         float64 `json:"total_spend"`
	SevenDayAverage    float64 `json:"seven_day_average"`
	YearlyRunningTotal float64 `json:"yearly_running_total"`
}

type dailyCategoryResponse struct {
	Date       string  `json:"date"`
	CategoryID int64   `json:"category_id"`
	Category   string  `json:"category"`
	TotalSpend float64 `json:"total_spend"`
}

type accountBalanceResponse struct {
	AccountID   int64   `json:"account_id"`
	AccountType string  `json:"account_type"`
	Period      string  `json:"period"`
	NetChange   float64 `json:"net_change"`
	Balance     float64 `json:"balance"`
}

type snapshotResponse struct {
	MonthlySpend         []monthlySpendResponse   `json:"monthly_spend"`
	MonthlySpendCategory []categorySpendResponse  `json:"monthly_spend_by_category"`
	DailySpend           []dailySpendResponse     `json:"daily_spend"`
	DailyCategoryBalance []dailyCategoryResponse  `json:"daily_category_balance"`
	AccountBalances      []accountBalanceResponse `json:"monthly_account_balance"`
}

func toMonthlySpend(rows []report.MonthlySpendRow) []monthlySpendResponse {
	resp := make([]monthlySpendResponse, len(rows))
	for i, r := range rows {
		resp[i] = monthlySpendResponse{
			Year:               r.Year,
			MonthNumber:        r.MonthNumber,
			MonthName:          r.MonthName,
			TotalSpend:         r.TotalSpend,
			PriorMonthChange:   r.PriorMonthChange,
			YearlyRunningTotal: r.YearlyRunningTotal,
		}
	}

	return resp
}

func toCategorySpend(rows []report.CategoryMonthlySpendRow) []categorySpendResponse {
	resp := make([]categorySpendResponse, len(rows))
	for i, r := range rows {
		resp[i] = categorySpendResponse{
			Year:         r.Year,
			MonthNumber:  r.MonthNumber,
			MonthName:    r.MonthName,
			CategoryID:   r.CategoryID,
			Category:     r.Category,
			TotalSpend:   r.TotalSpend,
			MonthRanking: r.MonthRanking,
		}
	}

	return resp
}

func toDailySpend(rows []report.DailySpendRow) []dailySpendResponse {
	resp := make([]dailySpendResponse, len(rows))
	for i, r := range rows {
		resp[i] = dailySpendResponse{
			Date:               r.Date.Format(time.DateOnly),
			TotalSpend:         r.TotalSpend,
			SevenDayAverage:    r.SevenDayAverage,
			YearlyRunningTotal: r.YearlyRunningTotal,
		}
	}

	return resp
}

func toDailyCategory(rows []report.DailyCategoryBalanceRow) []dailyCategoryResponse {
	resp := make([]dailyCategoryResponse, len(rows))
	for i, r := range rows {
		resp[i] = dailyCategoryResponse{
			Date:       r.Date.Format(time.DateOnly),
			CategoryID: r.CategoryID,
			Category:   r.Category,
			TotalSpend: r.TotalSpend,
		}
	}

	return resp
}

func toAccountBalances(rows []report.MonthlyAccountBalanceRow) []accountBalanceResponse {
	resp := make([]accountBalanceResponse, len(rows))
	for i, r := range rows {
		resp[i] = accountBalanceResponse{
			AccountID:   r.AccountID,
			AccountType: r.AccountType,
			Period:      r.Period,
			NetChange:   r.NetChange,
			Balance:     r.Balance,
		}
	}

	return resp
}

func toSnapshot(snap *report.Snapshot) snapshotResponse {
	return snapshotResponse{
		MonthlySpend:         toMonthlySpend(snap.MonthlySpend),
		MonthlySpendCategory: toCategorySpend(snap.MonthlySpendCategory),
		DailySpend:           toDailySpend(snap.DailySpend),
		DailyCategoryBalance: toDailyCategory(snap.DailyCategoryBalance),
		AccountBalances:      toAccountBalances(snap.AccountBalances),
	}
}
