package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"costbase/types"
)

// WritePortfolioCSVFile writes the portfolio summary to a CSV file at the
// given path.
func WritePortfolioCSVFile(path string, view types.PortfolioView) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	return WritePortfolioCSV(f, view)
}

// WritePortfolioCSV writes the portfolio summary to any io.Writer as CSV.
// You can pass os.Stdout for debugging, or a file. The avg_cost column is
// empty for positions with no defined average.
func WritePortfolioCSV(w io.Writer, view types.PortfolioView) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"symbol",
		"quantity",
		"total_cost",
		"avg_cost",
		"last_event_at", // RFC3339
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, pos := range view.Positions {
		avg := ""
		if pos.AvgCostOK {
			avg = pos.AvgCost.String()
		}
		record := []string{
			pos.Symbol,
			pos.Quantity.String(),
			pos.TotalCost.String(),
			avg,
			pos.LastEventAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteHistoryCSV writes one symbol's transaction history to any io.Writer
// as CSV, oldest trade first.
func WriteHistoryCSV(w io.Writer, trades []types.Trade) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"symbol",
		"side",
		"quantity",
		"price",
		"cost",
		"executed_at", // RFC3339
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, t := range trades {
		record := []string{
			t.Symbol,
			string(t.Side),
			t.Quantity.String(),
			t.Price.String(),
			t.Cost().String(),
			t.ExecutedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
