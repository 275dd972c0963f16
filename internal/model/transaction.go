package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnType classifies a transaction by the sign of its amount.
type TxnType string

const (
	TxnCredit  TxnType = "credit"
	TxnDebit   TxnType = "debit"
	TxnNeutral TxnType = "neutral"
)

// TxnTypeOf derives the transaction type from a signed amount.
func TxnTypeOf(amount decimal.Decimal) TxnType {
	switch amount.Sign() {
	case 1:
		return TxnCredit
	case -1:
		return TxnDebit
	default:
		return TxnNeutral
	}
}

// Category is the 4-level classification hierarchy assigned at load time,
// e.g. Expense -> Food -> swiggy -> swiggy.
type Category struct {
	L1 string `json:"category_l1"`
	L2 string `json:"category_l2"`
	L3 string `json:"category_l3"`
	L4 string `json:"category_l4"`
}

// Transaction is one canonical row of a normalized bank statement.
// Amount is signed (credit minus debit), so positive = money in.
// Categories are assigned once at load time and never mutated.
type Transaction struct {
	Date        time.Time        `json:"date"`
	Year        int              `json:"year"`
	Month       int              `json:"month"` // 1-12
	MonthName   string           `json:"month_name"`
	Day         int              `json:"day"`
	Weekday     string           `json:"weekday"`
	Description string           `json:"description"` // normalized narration
	TxnType     TxnType          `json:"txn_type"`
	Amount      decimal.Decimal  `json:"amount"`
	Balance     *decimal.Decimal `json:"balance"`  // nil when the export has no balance column
	RawText     string           `json:"raw_text"` // original narration, used for classification
	Category
	SourceBank string `json:"source_bank"`
}

// MonthKey returns the YYYY-MM grouping key used by all monthly series.
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}
