package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MrJamesThe3rd/ledgerlens/internal/report"
)

// Item represents one exported dataset with its local file path.
type Item struct {
	Name     string
	FilePath string
	Rows     int
}

// Snapshotter produces the full set of report datasets.
type Snapshotter interface {
	Snapshot(ctx context.Context) (*report.Snapshot, error)
}

// Service writes report datasets to CSV files.
type Service struct {
	reports Snapshotter
}

func NewService(reports Snapshotter) *Service {
	return &Service{reports: reports}
}

// Export materializes every dataset and writes one CSV file per dataset to
// the output directory. It returns an item per file written.
func (s *Service) Export(ctx context.Context, outputDir string) ([]Item, error) {
	snap, err := s.reports.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("building snapshot: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	datasets := []struct {
		name    string
		headers []string
		rows    [][]string
	}{
		{"monthly_spend", monthlySpendHeaders, monthlySpendRows(snap.MonthlySpend)},
		{"monthly_spend_by_category", categorySpendHeaders, categorySpendRows(snap.MonthlySpendCategory)},
		{"daily_spend", dailySpendHeaders, dailySpendRows(snap.DailySpend)},
		{"daily_category_balance", dailyCategoryHeaders, dailyCategoryRows(snap.DailyCategoryBalance)},
		{"monthly_account_balance", accountBalanceHeaders, accountBalanceRows(snap.AccountBalances)},
	}

	items := make([]Item, 0, len(datasets))

	for _, ds := range datasets {
		path := filepath.Join(outputDir, ds.name+".csv")
		if err := writeCSV(path, ds.headers, ds.rows); err != nil {
			return nil, fmt.Errorf("writing %s: %w", ds.name, err)
		}

		items = append(items, Item{Name: ds.name, FilePath: path, Rows: len(ds.rows)})
	}

	return items, nil
}

func writeCSV(path string, headers []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(headers); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()

	return w.Error()
}

var (
	monthlySpendHeaders   = []string{"year", "month_number", "month_name", "total_spend", "prior_month_change", "yearly_running_total"}
	categorySpendHeaders  = []string{"year", "month_number", "month_name", "category", "total_spend", "month_ranking"}
	dailySpendHeaders     = []string{"date", "total_spend", "seven_day_average", "yearly_running_total"}
	dailyCategoryHeaders  = []string{"date", "category", "total_spend"}
	accountBalanceHeaders = []string{"account_id", "account_type", "period", "net_change", "balance"}
)

func monthlySpendRows(rows []report.MonthlySpendRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.Year),
			strconv.Itoa(r.MonthNumber),
			r.MonthName,
			formatFloat(r.TotalSpend),
			formatDelta(r.PriorMonthChange),
			formatFloat(r.YearlyRunningTotal),
		})
	}

	return out
}

func categorySpendRows(rows []report.CategoryMonthlySpendRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.Year),
			strconv.Itoa(r.MonthNumber),
			r.MonthName,
			r.Category,
			formatFloat(r.TotalSpend),
			strconv.Itoa(r.MonthRanking),
		})
	}

	return out
}

func dailySpendRows(rows []report.DailySpendRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Date.Format("2006-01-02"),
			formatFloat(r.TotalSpend),
			formatFloat(r.SevenDayAverage),
			formatFloat(r.YearlyRunningTotal),
		})
	}

	return out
}

func dailyCategoryRows(rows []report.DailyCategoryBalanceRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Date.Format("2006-01-02"),
			r.Category,
			formatFloat(r.TotalSpend),
		})
	}

	return out
}

func accountBalanceRows(rows []report.MonthlyAccountBalanceRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.FormatInt(r.AccountID, 10),
			r.AccountType,
			r.Period,
			formatFloat(r.NetChange),
			formatFloat(r.Balance),
		})
	}

	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatDelta(v *float64) string {
	if v == nil {
		return ""
	}

	return formatFloat(*v)
}

// Summary creates a short text report from the exported items, one line per
// dataset.
func (s *Service) Summary(items []Item) string {
	var sb strings.Builder

	for _, item := range items {
		sb.WriteString(fmt.Sprintf("* %s | %d rows | %s\n", item.Name, item.Rows, filepath.Base(item.FilePath)))
	}

	return sb.String()
}
