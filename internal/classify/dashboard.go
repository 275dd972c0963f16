package classify

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Bucket is one of the fixed dashboard chart categories.
type Bucket string

const (
	BucketNone   Bucket = ""
	BucketRent   Bucket = "rent"
	BucketIncome Bucket = "income"
	BucketRefund Bucket = "refund"
	BucketFood   Bucket = "food"
	BucketTravel Bucket = "travel"
)

var (
	refundKeywords = []string{"refund", "reversal", "cashback", "chargeback", "returned"}
	incomeKeywords = []string{"salary", "interest", "dividend", "bonus", "payout", "income"}
	rentKeywords   = []string{"rent", "lease", "landlord", "house rent"}
	foodKeywords   = []string{
		"swiggy", "zomato", "restaurant", "cafe", "food", "dine",
		"blinkit", "instamart", "grocery", "bigbasket",
	}
	travelKeywords = []string{
		"uber", "ola", "irctc", "flight", "metro", "taxi", "bus", "train",
		"makemytrip", "goibibo",
	}
)

// DashboardBucket maps a narration and signed amount to a fixed dashboard
// bucket, or BucketNone. Every positive transaction is at minimum income
// unless it carries a refund keyword; negative transactions scan the
// keyword groups in priority order; zero amounts are never bucketed.
//
// This rule set is independent of the ledger classifier and may bucket a
// transaction differently; both operate on the raw narration.
func DashboardBucket(rawText string, amount decimal.Decimal) Bucket {
	text := strings.ToLower(rawText)

	switch amount.Sign() {
	case 1:
		if containsAny(text, refundKeywords) {
			return BucketRefund
		}
		return BucketIncome
	case -1:
		switch {
		case containsAny(text, rentKeywords):
			return BucketRent
		case containsAny(text, foodKeywords):
			return BucketFood
		case containsAny(text, travelKeywords):
			return BucketTravel
		case containsAny(text, incomeKeywords):
			return BucketIncome
		case containsAny(text, refundKeywords):
			return BucketRefund
		}
	}
	return BucketNone
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
