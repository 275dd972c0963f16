// Package statement turns a raw bank statement export into the canonical
// transaction table. Only the ICICI savings-account layout is handled:
// a fixed banner block above the real header, dd/mm/yyyy dates, and
// separate withdrawal/deposit columns.
package statement

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/classify"
	"github.com/spendlens-dev/spendlens/internal/model"
	"github.com/spendlens-dev/spendlens/internal/narration"
)

const (
	// bannerRows is the number of banner/disclaimer rows above the real
	// column header in the export.
	bannerRows = 12
	dateLayout = "02/01/2006"
	sourceBank = "ICICI"
)

// ErrColumnNotFound means header discovery could not locate the date
// column, without which no row can be anchored in time.
var ErrColumnNotFound = errors.New("date column not found")

// columns holds discovered column indices; -1 marks an absent column.
type columns struct {
	date      int
	narration int
	debit     int
	credit    int
	balance   int
}

// Load reads a statement export and returns the canonical transaction
// table. Rows with unparseable dates are dropped; non-numeric debit or
// credit cells coerce to zero. A missing file satisfies
// errors.Is(err, fs.ErrNotExist).
func Load(path string) ([]model.Transaction, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("statement %s: %w", path, err)
	}

	grid, err := readGrid(path)
	if err != nil {
		return nil, fmt.Errorf("reading statement %s: %w", path, err)
	}

	txns, err := buildTable(grid)
	if err != nil {
		return nil, fmt.Errorf("parsing statement %s: %w", path, err)
	}
	return txns, nil
}

// buildTable applies the full normalization pipeline to a raw cell grid.
func buildTable(grid [][]string) ([]model.Transaction, error) {
	if len(grid) <= bannerRows {
		return nil, ErrColumnNotFound
	}

	header := grid[bannerRows]
	data := dropEmptyRows(grid[bannerRows+1:])
	kept := nonEmptyColumns(data)

	cols, err := discoverColumns(header, kept)
	if err != nil {
		return nil, err
	}

	txns := make([]model.Transaction, 0, len(data))
	for _, row := range data {
		txn, ok := buildRow(row, cols)
		if !ok {
			continue
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// buildRow converts one data row; ok is false when the date fails to
// parse, which drops the row rather than failing the load.
func buildRow(row []string, cols columns) (model.Transaction, bool) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(cell(row, cols.date)))
	if err != nil {
		return model.Transaction{}, false
	}

	rawText := cell(row, cols.narration)
	debit := coerceAmount(cell(row, cols.debit))
	credit := coerceAmount(cell(row, cols.credit))
	amount := credit.Sub(debit)
	txnType := model.TxnTypeOf(amount)

	return model.Transaction{
		Date:        date,
		Year:        date.Year(),
		Month:       int(date.Month()),
		MonthName:   date.Month().String(),
		Day:         date.Day(),
		Weekday:     date.Weekday().String(),
		Description: narration.Clean(rawText),
		TxnType:     txnType,
		Amount:      amount,
		Balance:     parseBalance(cell(row, cols.balance)),
		RawText:     rawText,
		Category:    classify.Classify(rawText, txnType),
		SourceBank:  sourceBank,
	}, true
}

// discoverColumns fuzzy-matches header names against a fixed vocabulary:
// case-insensitive substring, first matching header wins. Each field is
// discovered independently. Only the date column is required; the rest
// default when absent.
func discoverColumns(header []string, kept []int) (columns, error) {
	find := func(keywords ...string) int {
		for _, j := range kept {
			name := strings.ToLower(strings.TrimSpace(cell(header, j)))
			for _, kw := range keywords {
				if strings.Contains(name, kw) {
					return j
				}
			}
		}
		return -1
	}

	cols := columns{
		date:      find("date"),
		narration: find("remark", "narration"),
		debit:     find("withdraw", "debit"),
		credit:    find("deposit", "credit"),
		balance:   find("balance"),
	}

	if cols.date < 0 {
		return columns{}, ErrColumnNotFound
	}
	return cols, nil
}

// dropEmptyRows removes rows whose cells are all blank.
func dropEmptyRows(rows [][]string) [][]string {
	out := rows[:0:0]
	for _, row := range rows {
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// nonEmptyColumns returns indices of columns with at least one non-blank
// data cell, mirroring the drop of all-empty columns before header
// discovery.
func nonEmptyColumns(rows [][]string) []int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	var kept []int
	for j := 0; j < width; j++ {
		for _, row := range rows {
			if strings.TrimSpace(cell(row, j)) != "" {
				kept = append(kept, j)
				break
			}
		}
	}
	return kept
}

// cell returns row[j], tolerating ragged rows and absent (-1) columns.
func cell(row []string, j int) string {
	if j < 0 || j >= len(row) {
		return ""
	}
	return row[j]
}

// coerceAmount parses a debit/credit cell. Thousands separators and
// currency symbols are stripped; anything still non-numeric coerces to
// zero so a single malformed cell never fails the load.
func coerceAmount(s string) decimal.Decimal {
	d, ok := parseNumber(s)
	if !ok {
		return decimal.Zero
	}
	return d
}

// parseBalance parses a balance cell, nil when blank or non-numeric.
func parseBalance(s string) *decimal.Decimal {
	d, ok := parseNumber(s)
	if !ok {
		return nil
	}
	return &d
}

func parseNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return decimal.Decimal{}, false
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.TrimSpace(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
