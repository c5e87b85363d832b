package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/ledgerlens/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/ledgerlens/internal/categorize"
	categorizeStore "github.com/MrJamesThe3rd/ledgerlens/internal/categorize/store"
	"github.com/MrJamesThe3rd/ledgerlens/internal/config"
	"github.com/MrJamesThe3rd/ledgerlens/internal/database"
	"github.com/MrJamesThe3rd/ledgerlens/internal/export"
	"github.com/MrJamesThe3rd/ledgerlens/internal/ingest"
	"github.com/MrJamesThe3rd/ledgerlens/internal/ingest/ledgercsv"
	ingestStore "github.com/MrJamesThe3rd/ledgerlens/internal/ingest/store"
	"github.com/MrJamesThe3rd/ledgerlens/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/ledgerlens/internal/ledger/store"
	"github.com/MrJamesThe3rd/ledgerlens/internal/report"
)

type model struct {
	ledgerService *ledger.Service
	reportService *report.Service
	ingestService *ingest.Service
	exportService *export.Service

	currentView View

	reportsView view.ReportsModel
	ingestView  view.IngestModel
	qualityView view.QualityModel
	exportView  view.ExportModel
}

type View int

const (
	ViewMenu    View = 0
	ViewReports View = 1
	ViewIngest  View = 2
	ViewQuality View = 3
	ViewExport  View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	horizonEnd, err := cfg.HorizonEnd()
	if err != nil {
		slog.Error("invalid report horizon", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	ledgerSvc := ledger.NewService(ledgerStore.New(db))
	categorizeSvc := categorize.NewService(categorizeStore.New(db))
	ingestSvc := ingest.NewService(ingestStore.New(db), categorizeSvc, map[ingest.Format]ingest.Parser{
		ingest.FormatLedgerCSV: ledgercsv.NewParser(),
	})
	reportSvc := report.NewService(ledgerSvc, report.Options{
		ExcludedYear: cfg.Report.ExcludedYear,
		HorizonEnd:   horizonEnd,
	})
	exportSvc := export.NewService(reportSvc)

	return model{
		ledgerService: ledgerSvc,
		reportService: reportSvc,
		ingestService: ingestSvc,
		exportService: exportSvc,
		currentView:   ViewMenu,
		reportsView:   view.NewReportsModel(reportSvc),
		ingestView:    view.NewIngestModel(ingestSvc),
		qualityView:   view.NewQualityModel(ledgerSvc),
		exportView:    view.NewExportModel(exportSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewReports
				m.reportsView = view.NewReportsModel(m.reportService)

				return m, m.reportsView.Init()
			case "2":
				m.currentView = ViewIngest
				m.ingestView = view.NewIngestModel(m.ingestService)

				return m, m.ingestView.Init()
			case "3":
				m.currentView = ViewQuality
				m.qualityView = view.NewQualityModel(m.ledgerService)

				return m, m.qualityView.Init()
			case "4":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewReports:
		var newModel tea.Model
		newModel, cmd = m.reportsView.Update(msg)
		m.reportsView = newModel.(view.ReportsModel)
	case ViewIngest:
		var newModel tea.Model
		newModel, cmd = m.ingestView.Update(msg)
		m.ingestView = newModel.(view.IngestModel)
	case ViewQuality:
		var newModel tea.Model
		newModel, cmd = m.qualityView.Update(msg)
		m.qualityView = newModel.(view.QualityModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Ledgerlens TUI\n\n" +
				"1. Browse Reports\n" +
				"2. Ingest Export File\n" +
				"3. Ledger Quality\n" +
				"4. Export Report CSVs\n\n" +
				"q. Quit",
		)
	case ViewReports:
		return m.reportsView.View()
	case ViewIngest:
		return m.ingestView.View()
	case ViewQuality:
		return m.qualityView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
