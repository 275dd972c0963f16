package model

// ExpensePoint is one month of total spending.
type ExpensePoint struct {
	Month  string  `json:"month"` // YYYY-MM
	Amount float64 `json:"amount"`
}

// CreditDebitPoint is one month of credit and debit totals. A month that
// appears on only one side still yields a point, with the other side zero.
type CreditDebitPoint struct {
	Month  string  `json:"month"`
	Credit float64 `json:"credit"`
	Debit  float64 `json:"debit"`
}

// CategoryLinePoint is one month of the fixed dashboard buckets. All five
// keys are always present, zero when the bucket is empty that month.
type CategoryLinePoint struct {
	Month  string  `json:"month"`
	Rent   float64 `json:"rent"`
	Income float64 `json:"income"`
	Refund float64 `json:"refund"`
	Food   float64 `json:"food"`
	Travel float64 `json:"travel"`
}

// CategoryBreakdownPoint is one month of a dynamic breakdown: the key set
// is whatever category values occur in that month's data.
type CategoryBreakdownPoint struct {
	Month      string             `json:"month"`
	Categories map[string]float64 `json:"categories"`
}

// ExpenseTransaction is one row of the top-expenses list.
type ExpenseTransaction struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	Amount      float64 `json:"amount"` // absolute value
}

// ExpenseSummary is the full aggregate result consumed by the dashboard.
// Every monetary figure is rounded to two decimal places at emission.
type ExpenseSummary struct {
	TotalExpense float64 `json:"total_expense"`
	TotalIncome  float64 `json:"total_income"`
	NetCashflow  float64 `json:"net_cashflow"`

	MonthlyExpenses    []ExpensePoint     `json:"monthly_expenses"`
	MonthlyCreditDebit []CreditDebitPoint `json:"monthly_credit_debit"`

	MonthlyCategoryLines       []CategoryLinePoint `json:"monthly_category_lines"`
	MonthlyCreditCategoryLines []CategoryLinePoint `json:"monthly_credit_category_lines"`
	MonthlyDebitCategoryLines  []CategoryLinePoint `json:"monthly_debit_category_lines"`

	MonthlyCreditL1Breakdown []CategoryBreakdownPoint `json:"monthly_credit_l1_breakdown"`
	MonthlyCreditL2Breakdown []CategoryBreakdownPoint `json:"monthly_credit_l2_breakdown"`
	MonthlyDebitL1Breakdown  []CategoryBreakdownPoint `json:"monthly_debit_l1_breakdown"`
	MonthlyDebitL2Breakdown  []CategoryBreakdownPoint `json:"monthly_debit_l2_breakdown"`

	TopExpenses []ExpenseTransaction `json:"top_expenses"`
}

// EmptySummary returns a summary with zero scalars and empty (non-nil)
// series, the result for a statement with no valid rows.
func EmptySummary() *ExpenseSummary {
	return &ExpenseSummary{
		MonthlyExpenses:            []ExpensePoint{},
		MonthlyCreditDebit:         []CreditDebitPoint{},
		MonthlyCategoryLines:       []CategoryLinePoint{},
		MonthlyCreditCategoryLines: []CategoryLinePoint{},
		MonthlyDebitCategoryLines:  []CategoryLinePoint{},
		MonthlyCreditL1Breakdown:   []CategoryBreakdownPoint{},
		MonthlyCreditL2Breakdown:   []CategoryBreakdownPoint{},
		MonthlyDebitL1Breakdown:    []CategoryBreakdownPoint{},
		MonthlyDebitL2Breakdown:    []CategoryBreakdownPoint{},
		TopExpenses:                []ExpenseTransaction{},
	}
}
