package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/ledgerlens/internal/report"
)

type dataset int

const (
	datasetMonthlySpend dataset = iota
	datasetCategorySpend
	datasetDailySpend
	datasetDailyCategory
	datasetAccountBalance
	datasetCount
)

func (d dataset) String() string {
	switch d {
	case datasetMonthlySpend:
		return "Monthly Spend"
	case datasetCategorySpend:
		return "Monthly Spend by Category"
	case datasetDailySpend:
		return "Daily Spend"
	case datasetDailyCategory:
		return "Daily Category Balance"
	case datasetAccountBalance:
		return "Monthly Account Balance"
	}

	return "Unknown"
}

type ReportsModel struct {
	CommonModel
	reportService *report.Service

	dataset dataset
	table   table.Model
	snap    *report.Snapshot

	loading bool
	err     error
}

func NewReportsModel(svc *report.Service) ReportsModel {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ReportsModel{
		reportService: svc,
		table:         t,
		loading:       true,
	}
}

func (m ReportsModel) Title() string { return "Reports" }

func (m ReportsModel) ShortHelp() string {
	return "Esc: back | tab: next dataset | 1-5: jump | r: refresh"
}

func (m ReportsModel) Init() tea.Cmd {
	return m.loadSnapshotCmd()
}

func (m ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadSnapshotMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.snap = msg.snap
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadSnapshotCmd()
		case "tab":
			m.dataset = (m.dataset + 1) % datasetCount
			m.refreshTable()

			return m, nil
		case "1", "2", "3", "4", "5":
			n, _ := strconv.Atoi(msg.String())
			m.dataset = dataset(n - 1)
			m.refreshTable()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ReportsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Building reports...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Dataset: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(m.dataset.String()))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			tableView,
		),
	)
}

func (m *ReportsModel) refreshTable() {
	if m.snap == nil {
		return
	}

	switch m.dataset {
	case datasetMonthlySpend:
		m.table.SetColumns([]table.Column{
			{Title: "Year", Width: 6},
			{Title: "Month", Width: 10},
			{Title: "Spend", Width: 12},
			{Title: "Change", Width: 10},
			{Title: "Running", Width: 12},
		})

		rows := make([]table.Row, 0, len(m.snap.MonthlySpend))
		for _, r := range m.snap.MonthlySpend {
			change := ""
			if r.PriorMonthChange != nil {
				change = fmt.Sprintf("%+.2f%%", *r.PriorMonthChange*100)
			}

			rows = append(rows, table.Row{
				strconv.Itoa(r.Year),
				r.MonthName,
				FormatUnits(r.TotalSpend),
				change,
				FormatUnits(r.YearlyRunningTotal),
			})
		}

		m.table.SetRows(rows)

	case datasetCategorySpend:
		m.table.SetColumns([]table.Column{
			{Title: "Year", Width: 6},
			{Title: "Month", Width: 10},
			{Title: "Category", Width: 24},
			{Title: "Spend", Width: 12},
			{Title: "Rank", Width: 6},
		})

		rows := make([]table.Row, 0, len(m.snap.MonthlySpendCategory))
		for _, r := range m.snap.MonthlySpendCategory {
			rows = append(rows, table.Row{
				strconv.Itoa(r.Year),
				r.MonthName,
				r.Category,
				FormatUnits(r.TotalSpend),
				strconv.Itoa(r.MonthRanking),
			})
		}

		m.table.SetRows(rows)

	case datasetDailySpend:
		m.table.SetColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Spend", Width: 12},
			{Title: "7d Avg", Width: 12},
			{Title: "Running", Width: 12},
		})

		rows := make([]table.Row, 0, len(m.snap.DailySpend))
		for _, r := range m.snap.DailySpend {
			rows = append(rows, table.Row{
				FormatDate(r.Date),
				FormatUnits(r.TotalSpend),
				FormatUnits(r.SevenDayAverage),
				FormatUnits(r.YearlyRunningTotal),
			})
		}

		m.table.SetRows(rows)

	case datasetDailyCategory:
		m.table.SetColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Category", Width: 24},
			{Title: "Spend", Width: 12},
		})

		rows := make([]table.Row, 0, len(m.snap.DailyCategoryBalance))
		for _, r := range m.snap.DailyCategoryBalance {
			rows = append(rows, table.Row{
				FormatDate(r.Date),
				r.Category,
				FormatUnits(r.TotalSpend),
			})
		}

		m.table.SetRows(rows)

	case datasetAccountBalance:
		m.table.SetColumns([]table.Column{
			{Title: "Account", Width: 8},
			{Title: "Type", Width: 12},
			{Title: "Period", Width: 10},
			{Title: "Net", Width: 12},
			{Title: "Balance", Width: 12},
		})

		rows := make([]table.Row, 0, len(m.snap.AccountBalances))
		for _, r := range m.snap.AccountBalances {
			rows = append(rows, table.Row{
				strconv.FormatInt(r.AccountID, 10),
				r.AccountType,
				r.Period,
				FormatUnits(r.NetChange),
				FormatUnits(r.Balance),
			})
		}

		m.table.SetRows(rows)
	}

	m.table.SetCursor(0)
}

// Messages

type loadSnapshotMsg struct {
	snap *report.Snapshot
	err  error
}

func (m ReportsModel) loadSnapshotCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		snap, err := m.reportService.Snapshot(ctx)

		return loadSnapshotMsg{snap: snap, err: err}
	}
}
