// Package dataset loads batch scoring input from CSV files.
//
// A batch file has a header row and one product per data row:
//
//	name,purpose,budget,shelf_life
//	Cold Brew Coffee,retail display,Premium,Weeks
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/psinghania/packadvisor/internal/profile"
)

// Row represents a single CSV row with column name to value mapping.
type Row map[string]string

// Entry is one parsed batch input: a product to infer a profile for and score.
type Entry struct {
	Name      string
	Purpose   string
	Budget    profile.Budget
	ShelfLife profile.ShelfLife
}

// LoadCSV reads a CSV file and returns rows as maps of column to value.
// The first row is treated as headers (column names).
func LoadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("csv: %s is empty (no header row)", path)
	}

	headers := records[0]
	rows := make([]Row, 0, len(records)-1)

	for _, record := range records[1:] {
		row := make(Row, len(headers))
		for j, h := range headers {
			row[strings.TrimSpace(h)] = record[j]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// LoadEntries reads a batch input file and parses each row into an Entry.
// The name column is required; purpose defaults to empty, budget to Standard
// and shelf_life to Months when the column is absent or blank. A present but
// invalid budget or shelf_life value is an error naming the row.
func LoadEntries(path string) ([]Entry, error) {
	rows, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row["name"])
		if name == "" {
			return nil, fmt.Errorf("csv: row %d has no product name", i+2)
		}

		e := Entry{
			Name:      name,
			Purpose:   strings.TrimSpace(row["purpose"]),
			Budget:    profile.BudgetStandard,
			ShelfLife: profile.ShelfMonths,
		}
		if v := strings.TrimSpace(row["budget"]); v != "" {
			b, err := profile.ParseBudget(v)
			if err != nil {
				return nil, fmt.Errorf("csv: row %d (%s): %w", i+2, name, err)
			}
			e.Budget = b
		}
		if v := strings.TrimSpace(row["shelf_life"]); v != "" {
			sl, err := profile.ParseShelfLife(v)
			if err != nil {
				return nil, fmt.Errorf("csv: row %d (%s): %w", i+2, name, err)
			}
			e.ShelfLife = sl
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// LoadEntriesRange reads entries in the given range [start, end] (1-based,
// inclusive). Row 1 is the first data row (after headers). An end beyond the
// available rows is clamped.
func LoadEntriesRange(path string, start, end int) ([]Entry, error) {
	if start < 1 {
		return nil, fmt.Errorf("csv: range start must be >= 1, got %d", start)
	}
	if end < start {
		return nil, fmt.Errorf("csv: range end (%d) must be >= start (%d)", end, start)
	}

	all, err := LoadEntries(path)
	if err != nil {
		return nil, err
	}

	if end > len(all) {
		end = len(all)
	}
	if start > len(all) {
		return []Entry{}, nil
	}

	return all[start-1 : end], nil
}
