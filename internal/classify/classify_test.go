package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendlens-dev/spendlens/internal/model"
)

func TestClassify_SalaryCredit(t *testing.T) {
	cat := Classify("SALARY CREDIT XYZCORP", model.TxnCredit)
	assert.Equal(t, model.Category{L1: "Income", L2: "Salary", L3: "Monthly Salary", L4: "Employer"}, cat)
}

func TestClassify_SwiggyDebit(t *testing.T) {
	cat := Classify("SWIGGY ORDER 123", model.TxnDebit)
	assert.Equal(t, model.Category{L1: "Expense", L2: "Food", L3: "swiggy", L4: "swiggy"}, cat)
}

func TestClassify_CreditFallback(t *testing.T) {
	cat := Classify("UPI 123456 UNKNOWN PARTY", model.TxnCredit)
	assert.Equal(t, model.Category{L1: "Income", L2: "Transfer", L3: "Others", L4: "Miscellaneous"}, cat)
}

func TestClassify_DebitFallback(t *testing.T) {
	cat := Classify("UPI 123456 UNKNOWN PARTY", model.TxnDebit)
	assert.Equal(t, model.Category{L1: "Expense", L2: "Miscellaneous", L3: "Others", L4: "Other"}, cat)
}

func TestClassify_NeutralUsesDebitTable(t *testing.T) {
	cat := Classify("ATM WDL", model.TxnNeutral)
	assert.Equal(t, model.Category{L1: "Expense", L2: "Operational", L3: "Cash Withdrawal", L4: "ATM"}, cat)
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Matches both "zomato" and "neft"; zomato's rule appears earlier.
	cat := Classify("NEFT ZOMATO PAYMENT", model.TxnDebit)
	assert.Equal(t, "Food", cat.L2)
}

func TestClassify_TwoStageCreditRule(t *testing.T) {
	sbi := Classify("AVINDER STATE BANK TRANSFER", model.TxnCredit)
	assert.Equal(t, model.Category{L1: "Transfer", L2: "Self", L3: "SBI", L4: "SBI"}, sbi)

	other := Classify("AVINDER TRANSFER", model.TxnCredit)
	assert.Equal(t, model.Category{L1: "Transfer", L2: "Self", L3: "Others", L4: "Others"}, other)
}

func TestClassify_GenericDebitFallbacks(t *testing.T) {
	assert.Equal(t, "Internal", Classify("IMPS P2A 1234", model.TxnDebit).L2)
	assert.Equal(t, "Mutual Fund", Classify("ACH D SIP JAN", model.TxnDebit).L2)
	assert.Equal(t, "Financial", Classify("SMS CHARGES Q3", model.TxnDebit).L2)
	assert.Equal(t, "Operational", Classify("ATM WDL DELHI", model.TxnDebit).L2)
}

func TestClassify_RawSlashesPreserved(t *testing.T) {
	// Classification runs on the raw narration; separators matter.
	cat := Classify("CC BILLPAY/SELF", model.TxnDebit)
	assert.Equal(t, "Credit Card", cat.L2)
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("swiggy", model.TxnDebit), Classify("SWIGGY", model.TxnDebit))
}

func TestClassify_Total(t *testing.T) {
	inputs := []string{"", "   ", "!!??", "salary swiggy neft atm", "\x00\xff"}
	for _, in := range inputs {
		for _, tt := range []model.TxnType{model.TxnCredit, model.TxnDebit, model.TxnNeutral} {
			cat := Classify(in, tt)
			assert.NotEmpty(t, cat.L1, "input %q type %s", in, tt)
			assert.NotEmpty(t, cat.L4, "input %q type %s", in, tt)
		}
	}
}
