// Package classify assigns categories to bank transactions using ordered
// keyword rule tables. Two independent rule sets live here: the 4-level
// ledger classifier and the smaller fixed-bucket dashboard categorizer.
// They intentionally use different vocabularies and may disagree on the
// same transaction.
package classify

import (
	"strings"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// rule maps a narration substring to a category. Rules are evaluated in
// slice order with first match wins, so ordering is behavior: reordering
// rules changes classification outcomes.
type rule struct {
	substr string
	also   string // when set, this substring must also be present
	cat    model.Category
}

var creditRules = []rule{
	{substr: "medicare", cat: model.Category{L1: "Income", L2: "Refund", L3: "Medical", L4: "QRG"}},
	{substr: "barclays", cat: model.Category{L1: "Income", L2: "ESOP", L3: "Buyback", L4: "Buyback"}},
	{substr: "zerodha broking", cat: model.Category{L1: "Transfer", L2: "Equity", L3: "Zerodha", L4: "Zerodha"}},
	{substr: "salary", cat: model.Category{L1: "Income", L2: "Salary", L3: "Monthly Salary", L4: "Employer"}},
	{substr: "flipkart", cat: model.Category{L1: "Income", L2: "Salary", L3: "Monthly Salary", L4: "Flipkart"}},
	{substr: "interest", cat: model.Category{L1: "Income", L2: "Interest", L3: "Bank Interest", L4: "Savings Interest"}},
	{substr: "rajasthan marud", cat: model.Category{L1: "Transfer", L2: "Home", L3: "Home", L4: "Home"}},
	{substr: "ratan", cat: model.Category{L1: "Transfer", L2: "Home", L3: "Father", L4: "Home"}},
	{substr: "rupinder", cat: model.Category{L1: "Transfer", L2: "Home", L3: "Mother", L4: "Home"}},
	{substr: "priya", cat: model.Category{L1: "Transfer", L2: "Priya", L3: "Priya", L4: "Priya"}},
	{substr: "the new india assu", cat: model.Category{L1: "Income", L2: "Refund", L3: "Medical", L4: "Insurance"}},
	{substr: "avinder", also: "state", cat: model.Category{L1: "Transfer", L2: "Self", L3: "SBI", L4: "SBI"}},
	{substr: "avinder", cat: model.Category{L1: "Transfer", L2: "Self", L3: "Others", L4: "Others"}},
}

var debitRules = []rule{
	{substr: "dainikbhaskar4", cat: model.Category{L1: "Expense", L2: "Miscellaneous", L3: "News Paper", L4: "DB"}},
	{substr: "zerodhabroking", cat: model.Category{L1: "Investment", L2: "Equity", L3: "Zerodha", L4: "Zerodha"}},
	{substr: "zerodhamf", cat: model.Category{L1: "Investment", L2: "Mutual Fund", L3: "SIP", L4: "Mutual Fund"}},
	{substr: "appleservices", cat: model.Category{L1: "Expense", L2: "Miscellaneous", L3: "Subscription", L4: "Apple"}},
	{substr: "altbalaji.razor", cat: model.Category{L1: "Expense", L2: "Miscellaneous", L3: "Subscription", L4: "Alt Balaji"}},
	{substr: "blinkit", cat: model.Category{L1: "Expense", L2: "Grocery", L3: "blinkit", L4: "blinkit"}},
	{substr: "zomato", cat: model.Category{L1: "Expense", L2: "Food", L3: "zomato", L4: "zomato"}},
	{substr: "swiggy", cat: model.Category{L1: "Expense", L2: "Food", L3: "swiggy", L4: "swiggy"}},
	{substr: "pizza", cat: model.Category{L1: "Expense", L2: "Food", L3: "Others", L4: "pizza"}},
	{substr: "rajasthan marud", cat: model.Category{L1: "Transfer", L2: "Home", L3: "Home", L4: "Home"}},
	{substr: "ratan", cat: model.Category{L1: "Transfer", L2: "Home", L3: "Father", L4: "Home"}},
	{substr: "rupinder", cat: model.Category{L1: "Transfer", L2: "Home", L3: "Mother", L4: "Home"}},
	{substr: "priya", cat: model.Category{L1: "Transfer", L2: "Priya", L3: "Priya", L4: "Priya"}},
	{substr: "bbpsbp", cat: model.Category{L1: "Expense", L2: "Utility", L3: "Electricity", L4: "Electricity"}},
	{substr: "airtelpostpaidb", cat: model.Category{L1: "Expense", L2: "Utility", L3: "Internet", L4: "Airtel"}},
	{substr: "akshayakalpafar", cat: model.Category{L1: "Expense", L2: "Grocery", L3: "Milk", L4: "Akshayakalpa"}},
	{substr: "neft", cat: model.Category{L1: "Transfer", L2: "Internal", L3: "Bank Transfer", L4: "NEFT/IMPS"}},
	{substr: "imps", cat: model.Category{L1: "Transfer", L2: "Internal", L3: "Bank Transfer", L4: "NEFT/IMPS"}},
	{substr: "rtgs", cat: model.Category{L1: "Transfer", L2: "Internal", L3: "Bank Transfer", L4: "NEFT/IMPS"}},
	{substr: "card payment", cat: model.Category{L1: "Transfer", L2: "Credit Card", L3: "Card Payment", L4: "Credit Card Bill"}},
	{substr: "cred", cat: model.Category{L1: "Transfer", L2: "Credit Card", L3: "Card Payment", L4: "Credit Card Bill"}},
	{substr: "ppf", cat: model.Category{L1: "Investment", L2: "Debt", L3: "PPF", L4: "PPF Contribution"}},
	{substr: "sip", cat: model.Category{L1: "Investment", L2: "Mutual Fund", L3: "SIP", L4: "Mutual Fund"}},
	{substr: "mutual", cat: model.Category{L1: "Investment", L2: "Mutual Fund", L3: "SIP", L4: "Mutual Fund"}},
	{substr: "qrg", cat: model.Category{L1: "Expense", L2: "Medical", L3: "Hospital", L4: "QRG"}},
	{substr: "trf to fd", cat: model.Category{L1: "Investment", L2: "Debt", L3: "FD", L4: "FD"}},
	{substr: "cc billpay/self", cat: model.Category{L1: "Transfer", L2: "Credit Card", L3: "Card Payment", L4: "Credit Card Bill"}},
	{substr: "groww", cat: model.Category{L1: "Investment", L2: "Equity", L3: "Groww", L4: "Groww"}},
	{substr: "cloudnine", cat: model.Category{L1: "Expense", L2: "Medical", L3: "Hospital", L4: "Cloudnine"}},
	{substr: "8750043112@ptye", cat: model.Category{L1: "Expense", L2: "Rent", L3: "Rent", L4: "Rent"}},
	{substr: "personal loan", cat: model.Category{L1: "Expense", L2: "Loan", L3: "Loan EMI", L4: "Loan EMI"}},
	{substr: "gst", cat: model.Category{L1: "Expense", L2: "Financial", L3: "Bank Charges", L4: "Charges"}},
	{substr: "charge", cat: model.Category{L1: "Expense", L2: "Financial", L3: "Bank Charges", L4: "Charges"}},
	{substr: "atm", cat: model.Category{L1: "Expense", L2: "Operational", L3: "Cash Withdrawal", L4: "ATM"}},
}

var (
	creditFallback = model.Category{L1: "Income", L2: "Transfer", L3: "Others", L4: "Miscellaneous"}
	debitFallback  = model.Category{L1: "Expense", L2: "Miscellaneous", L3: "Others", L4: "Other"}
)

// Classify maps a raw narration and transaction type to a 4-level category.
// The transaction type selects which rule table is scanned; credit and
// debit tables are disjoint. Total and pure: every input yields exactly
// one category.
func Classify(rawText string, txnType model.TxnType) model.Category {
	text := strings.ToLower(rawText)

	rules, fallback := debitRules, debitFallback
	if txnType == model.TxnCredit {
		rules, fallback = creditRules, creditFallback
	}

	for _, r := range rules {
		if !strings.Contains(text, r.substr) {
			continue
		}
		if r.also != "" && !strings.Contains(text, r.also) {
			continue
		}
		return r.cat
	}
	return fallback
}
