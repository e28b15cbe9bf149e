package main

import (
	"context"
	"fmt"
	"os"

	"costbase/internal/config"
	"costbase/internal/engine"
	"costbase/internal/feed"
	"costbase/internal/repository"
	"costbase/types"

	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	db, err := repository.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect datasource")
	}
	defer db.Close()

	eng := engine.NewEngine(feed.NewCSVFeed(cfg.OrdersCSV), &db, log)
	report, err := eng.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("replay order history")
	}

	view := eng.Ledger().Portfolio()
	printPortfolio(view)

	if cfg.ReportCSV != "" {
		if err := engine.WritePortfolioCSVFile(cfg.ReportCSV, view); err != nil {
			log.Fatal().Err(err).Msg("write csv report")
		}
		log.Info().Str("path", cfg.ReportCSV).Msg("csv report written")
	}

	log.Info().
		Int("processed", report.Processed).
		Int("dropped", report.Dropped).
		Int("rejected", len(report.Rejected)).
		Msg("done")
}

func printPortfolio(view types.PortfolioView) {
	fmt.Println()
	for _, pos := range view.Positions {
		avg := "-"
		if pos.AvgCostOK {
			avg = pos.AvgCost.StringFixed(2)
		}
		fmt.Printf("%-8s qty=%-12s cost=%-12s avg=%s\n",
			pos.Symbol, pos.Quantity.String(), pos.TotalCost.StringFixed(2), avg)
	}
	fmt.Println()
}
