package statement

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// readGrid loads a statement file into a raw cell grid. The format is
// picked by extension: legacy .xls, .xlsx, or .csv.
func readGrid(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		return readXLSGrid(path)
	case ".xlsx":
		return readXLSXGrid(path)
	case ".csv":
		return readCSVGrid(path)
	default:
		return nil, fmt.Errorf("unsupported statement format %q", filepath.Ext(path))
	}
}

func readXLSGrid(path string) ([][]string, error) {
	book, err := xls.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening xls: %w", err)
	}

	sheet, err := book.GetSheet(0)
	if err != nil || sheet == nil {
		return nil, fmt.Errorf("xls has no sheets")
	}

	var grid [][]string
	for _, r := range sheet.GetRows() {
		var cells []string
		for _, c := range r.GetCols() {
			cells = append(cells, c.GetString())
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

func readXLSXGrid(path string) ([][]string, error) {
	xl, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening xlsx: %w", err)
	}
	defer xl.Close()

	rows, err := xl.GetRows(xl.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading xlsx rows: %w", err)
	}
	return rows, nil
}

func readCSVGrid(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	grid, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return grid, nil
}
