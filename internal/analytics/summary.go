// Package analytics computes the dashboard aggregates from a canonical
// transaction table. Every function here is a pure transformation of its
// input: no shared state, no I/O, deterministic output.
package analytics

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/classify"
	"github.com/spendlens-dev/spendlens/internal/model"
)

// Bounds for the top-expenses list length.
const (
	MinTopN     = 1
	MaxTopN     = 50
	DefaultTopN = 10
)

// ErrInvalidTopN means top_n fell outside [MinTopN, MaxTopN]. It is
// rejected before any computation begins.
var ErrInvalidTopN = errors.New("top_n out of range")

// bucketedTxn is a transaction the dashboard categorizer placed in one of
// the fixed buckets, with its absolute value precomputed.
type bucketedTxn struct {
	txn    model.Transaction
	bucket classify.Bucket
	value  decimal.Decimal
}

// BuildExpenseSummary aggregates the canonical table into the full
// dashboard result. An empty table yields a zero summary, not an error.
// Sums are kept as unrounded decimals internally; every emitted figure is
// rounded to two decimal places.
func BuildExpenseSummary(txns []model.Transaction, topN int) (*model.ExpenseSummary, error) {
	if topN < MinTopN || topN > MaxTopN {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidTopN, topN, MinTopN, MaxTopN)
	}

	summary := model.EmptySummary()
	if len(txns) == 0 {
		return summary, nil
	}

	summary.TotalExpense, summary.TotalIncome, summary.NetCashflow = totals(txns)
	summary.MonthlyExpenses = monthlyExpenses(txns)
	summary.MonthlyCreditDebit = monthlyCreditDebit(txns)
	summary.TopExpenses = topExpenses(txns, topN)

	// The fixed-bucket lines and the dynamic breakdowns both run over the
	// subset of rows the dashboard categorizer placed in a bucket.
	categorized := bucketize(txns)
	credits := filterBySign(categorized, 1)
	debits := filterBySign(categorized, -1)

	summary.MonthlyCategoryLines = categoryLines(categorized)
	summary.MonthlyCreditCategoryLines = categoryLines(credits)
	summary.MonthlyDebitCategoryLines = categoryLines(debits)

	summary.MonthlyCreditL1Breakdown = dynamicBreakdown(credits, levelOne)
	summary.MonthlyCreditL2Breakdown = dynamicBreakdown(credits, levelTwo)
	summary.MonthlyDebitL1Breakdown = dynamicBreakdown(debits, levelOne)
	summary.MonthlyDebitL2Breakdown = dynamicBreakdown(debits, levelTwo)

	return summary, nil
}

// totals computes total expense, income and net cashflow. When the table
// carries top-level category data, income and expense come from the
// Income/Expense tagged rows; otherwise only the amount sign decides.
func totals(txns []model.Transaction) (expense, income, net float64) {
	hasCategory := false
	for _, t := range txns {
		if strings.TrimSpace(t.L1) != "" {
			hasCategory = true
			break
		}
	}

	var expenseSum, incomeSum, netSum decimal.Decimal
	if hasCategory {
		for _, t := range txns {
			switch strings.ToLower(t.L1) {
			case "income":
				if t.Amount.Sign() > 0 {
					incomeSum = incomeSum.Add(t.Amount)
				}
			case "expense":
				if t.Amount.Sign() < 0 {
					expenseSum = expenseSum.Add(t.Amount.Abs())
				}
			}
		}
		netSum = incomeSum.Sub(expenseSum)
	} else {
		for _, t := range txns {
			netSum = netSum.Add(t.Amount)
			switch t.Amount.Sign() {
			case 1:
				incomeSum = incomeSum.Add(t.Amount)
			case -1:
				expenseSum = expenseSum.Add(t.Amount.Abs())
			}
		}
	}

	return round2(expenseSum), round2(incomeSum), round2(netSum)
}

// monthlyExpenses sums debit magnitudes per month, ascending by month key.
func monthlyExpenses(txns []model.Transaction) []model.ExpensePoint {
	sums := map[string]decimal.Decimal{}
	for _, t := range txns {
		if t.Amount.Sign() < 0 {
			sums[t.MonthKey()] = sums[t.MonthKey()].Add(t.Amount.Abs())
		}
	}

	points := make([]model.ExpensePoint, 0, len(sums))
	for _, month := range sortedKeys(sums) {
		points = append(points, model.ExpensePoint{Month: month, Amount: round2(sums[month])})
	}
	return points
}

// monthlyCreditDebit computes per-month credit and debit totals
// independently, then outer-joins them on month key: a month present on
// only one side still appears, with the other side zero.
func monthlyCreditDebit(txns []model.Transaction) []model.CreditDebitPoint {
	credits := map[string]decimal.Decimal{}
	debits := map[string]decimal.Decimal{}
	for _, t := range txns {
		switch t.Amount.Sign() {
		case 1:
			credits[t.MonthKey()] = credits[t.MonthKey()].Add(t.Amount)
		case -1:
			debits[t.MonthKey()] = debits[t.MonthKey()].Add(t.Amount.Abs())
		}
	}

	months := map[string]struct{}{}
	for m := range credits {
		months[m] = struct{}{}
	}
	for m := range debits {
		months[m] = struct{}{}
	}

	points := make([]model.CreditDebitPoint, 0, len(months))
	for _, month := range sortedKeys(months) {
		points = append(points, model.CreditDebitPoint{
			Month:  month,
			Credit: round2(credits[month]),
			Debit:  round2(debits[month]),
		})
	}
	return points
}

// topExpenses returns up to topN debit rows by absolute amount descending.
// Ties keep the input order (stable sort).
func topExpenses(txns []model.Transaction, topN int) []model.ExpenseTransaction {
	var debits []model.Transaction
	for _, t := range txns {
		if t.Amount.Sign() < 0 {
			debits = append(debits, t)
		}
	}

	sort.SliceStable(debits, func(i, j int) bool {
		return debits[i].Amount.Abs().GreaterThan(debits[j].Amount.Abs())
	})

	if len(debits) > topN {
		debits = debits[:topN]
	}

	top := make([]model.ExpenseTransaction, 0, len(debits))
	for _, t := range debits {
		top = append(top, model.ExpenseTransaction{
			Date:        t.Date.Format("2006-01-02"),
			Description: t.Description,
			Amount:      round2(t.Amount.Abs()),
		})
	}
	return top
}

// bucketize runs the dashboard categorizer over the table and keeps the
// rows that landed in a bucket.
func bucketize(txns []model.Transaction) []bucketedTxn {
	var out []bucketedTxn
	for _, t := range txns {
		bucket := classify.DashboardBucket(t.RawText, t.Amount)
		if bucket == classify.BucketNone {
			continue
		}
		out = append(out, bucketedTxn{txn: t, bucket: bucket, value: t.Amount.Abs()})
	}
	return out
}

func filterBySign(frame []bucketedTxn, sign int) []bucketedTxn {
	var out []bucketedTxn
	for _, b := range frame {
		if b.txn.Amount.Sign() == sign {
			out = append(out, b)
		}
	}
	return out
}

// categoryLines pivots bucketed rows into per-month fixed-bucket sums.
// Every point carries all five bucket keys, zero when absent that month.
func categoryLines(frame []bucketedTxn) []model.CategoryLinePoint {
	if len(frame) == 0 {
		return []model.CategoryLinePoint{}
	}

	sums := map[string]map[classify.Bucket]decimal.Decimal{}
	for _, b := range frame {
		month := b.txn.MonthKey()
		if sums[month] == nil {
			sums[month] = map[classify.Bucket]decimal.Decimal{}
		}
		sums[month][b.bucket] = sums[month][b.bucket].Add(b.value)
	}

	points := make([]model.CategoryLinePoint, 0, len(sums))
	for _, month := range sortedKeys(sums) {
		row := sums[month]
		points = append(points, model.CategoryLinePoint{
			Month:  month,
			Rent:   round2(row[classify.BucketRent]),
			Income: round2(row[classify.BucketIncome]),
			Refund: round2(row[classify.BucketRefund]),
			Food:   round2(row[classify.BucketFood]),
			Travel: round2(row[classify.BucketTravel]),
		})
	}
	return points
}

func levelOne(t model.Transaction) string { return t.L1 }
func levelTwo(t model.Transaction) string { return t.L2 }

// dynamicBreakdown pivots bucketed rows into per-month sums keyed by a
// ledger category level. The key set is whatever distinct values occur in
// that month; blank-after-trim categories are excluded.
func dynamicBreakdown(frame []bucketedTxn, level func(model.Transaction) string) []model.CategoryBreakdownPoint {
	sums := map[string]map[string]decimal.Decimal{}
	for _, b := range frame {
		name := level(b.txn)
		if strings.TrimSpace(name) == "" {
			continue
		}
		month := b.txn.MonthKey()
		if sums[month] == nil {
			sums[month] = map[string]decimal.Decimal{}
		}
		sums[month][name] = sums[month][name].Add(b.value)
	}

	if len(sums) == 0 {
		return []model.CategoryBreakdownPoint{}
	}

	points := make([]model.CategoryBreakdownPoint, 0, len(sums))
	for _, month := range sortedKeys(sums) {
		categories := make(map[string]float64, len(sums[month]))
		for name, sum := range sums[month] {
			categories[name] = round2(sum)
		}
		points = append(points, model.CategoryBreakdownPoint{Month: month, Categories: categories})
	}
	return points
}

// round2 rounds a decimal sum to two places for emission.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
