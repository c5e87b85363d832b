package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/MrJamesThe3rd/ledgerlens/internal/categorize"
	categorizeStore "github.com/MrJamesThe3rd/ledgerlens/internal/categorize/store"
	"github.com/MrJamesThe3rd/ledgerlens/internal/config"
	"github.com/MrJamesThe3rd/ledgerlens/internal/database"
	"github.com/MrJamesThe3rd/ledgerlens/internal/export"
	lensHttp "github.com/MrJamesThe3rd/ledgerlens/internal/http"
	categorizeHandler "github.com/MrJamesThe3rd/ledgerlens/internal/http/categorize"
	exportHandler "github.com/MrJamesThe3rd/ledgerlens/internal/http/export"
	ingestHandler "github.com/MrJamesThe3rd/ledgerlens/internal/http/ingest"
	reportHandler "github.com/MrJamesThe3rd/ledgerlens/internal/http/report"
	"github.com/MrJamesThe3rd/ledgerlens/internal/ingest"
	"github.com/MrJamesThe3rd/ledgerlens/internal/ingest/ledgercsv"
	ingestStore "github.com/MrJamesThe3rd/ledgerlens/internal/ingest/store"
	"github.com/MrJamesThe3rd/ledgerlens/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/ledgerlens/internal/ledger/store"
	"github.com/MrJamesThe3rd/ledgerlens/internal/report"
)

func main() {
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
	defer db.Close()

	var (
		ledgerService     = ledger.NewService(ledgerStore.New(db))
		categorizeService = categorize.NewService(categorizeStore.New(db))
		ingestService     = ingest.NewService(ingestStore.New(db), categorizeService, map[ingest.Format]ingest.Parser{
			ingest.FormatLedgerCSV: ledgercsv.NewParser(),
		})
		reportService = report.NewService(ledgerService, report.Options{
			ExcludedYear: cfg.Report.ExcludedYear,
			HorizonEnd:   horizonEnd,
		})
		exportService = export.NewService(reportService)
	)

	var (
		reportH     = reportHandler.NewHandler(reportService)
		ingestH     = ingestHandler.NewHandler(ingestService)
		categorizeH = categorizeHandler.NewHandler(categorizeService)
		exportH     = exportHandler.NewHandler(exportService)
	)

	router := lensHttp.New(reportH, ingestH, categorizeH, exportH, cfg.Auth.Secret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
