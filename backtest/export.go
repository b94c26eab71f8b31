package backtest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteResults serializes the portfolio-value series as CSV with a
// Day,PortfolioValue header. Values use the shortest lossless float
// representation so an exported file reloads to identical numbers.
func (e *Engine) WriteResults(w io.Writer) error {
	if e.values == nil {
		return fmt.Errorf("backtest: no results to export, run a backtest first")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Day", "PortfolioValue"}); err != nil {
		return err
	}

	for day, value := range e.values {
		row := []string{
			strconv.Itoa(day),
			strconv.FormatFloat(value, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportResults writes the portfolio-value series to a CSV file.
func (e *Engine) ExportResults(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("backtest: create %s: %w", path, err)
	}
	defer f.Close()

	if err := e.WriteResults(f); err != nil {
		return err
	}
	return f.Close()
}
