// Package market holds the date-indexed price table a backtest runs
// against. Data is loaded once from CSV and is read-only afterwards, so
// a single *Data is safely shared by reference across all pair models.
package market

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
)

// Data is a date-indexed, symbol-keyed table of daily prices. All
// series share one date index; a missing or unparseable cell is NaN.
type Data struct {
	dates  []string
	prices map[string][]float64
}

// Load parses tabular price data. The first header cell is the date
// key and is discarded as a symbol; the remaining header cells name
// symbols. Each row is a date string followed by one price per symbol.
func Load(r io.Reader) (*Data, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("market: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("market: read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("market: header needs a date column and at least one symbol, got %d columns", len(header))
	}

	symbols := header[1:]
	d := &Data{prices: make(map[string][]float64, len(symbols))}
	for _, sym := range symbols {
		d.prices[sym] = nil
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("market: read row %d: %w", len(d.dates)+2, err)
		}
		if len(row) == 0 {
			continue
		}

		d.dates = append(d.dates, row[0])

		for i, sym := range symbols {
			cell := math.NaN()
			if i+1 < len(row) {
				if v, err := strconv.ParseFloat(row[i+1], 64); err == nil {
					cell = v
				}
			}
			d.prices[sym] = append(d.prices[sym], cell)
		}
	}

	return d, nil
}

// LoadFile loads price data from a CSV file on disk.
func LoadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("market: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// PriceSeries returns the full price series for a symbol. The slice is
// owned by the store and must not be mutated.
func (d *Data) PriceSeries(symbol string) ([]float64, bool) {
	if d == nil {
		return nil, false
	}
	s, ok := d.prices[symbol]
	return s, ok
}

// Symbols returns the available symbols in sorted order.
func (d *Data) Symbols() []string {
	if d == nil {
		return nil
	}
	syms := make([]string, 0, len(d.prices))
	for sym := range d.prices {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}

// Dates returns the shared date index.
func (d *Data) Dates() []string {
	if d == nil {
		return nil
	}
	return d.dates
}

// Len returns the number of trading days loaded.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.dates)
}
