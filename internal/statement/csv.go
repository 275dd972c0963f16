package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// Header is the CSV header for canonical transaction exports. The column
// order is fixed and exhaustive.
const Header = "date,year,month,month_name,day,weekday,description,txn_type,amount,balance,raw_text,category_l1,category_l2,category_l3,category_l4,source_bank"

const exportDateFormat = "2006-01-02"

// WriteTable writes the canonical transaction table as CSV (including the
// header row).
func WriteTable(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(marshalRow(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func marshalRow(t model.Transaction) []string {
	balance := ""
	if t.Balance != nil {
		balance = t.Balance.String()
	}

	return []string{
		t.Date.Format(exportDateFormat),
		strconv.Itoa(t.Year),
		strconv.Itoa(t.Month),
		t.MonthName,
		strconv.Itoa(t.Day),
		t.Weekday,
		t.Description,
		string(t.TxnType),
		t.Amount.String(),
		balance,
		t.RawText,
		t.L1,
		t.L2,
		t.L3,
		t.L4,
		t.SourceBank,
	}
}
