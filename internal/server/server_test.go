package server

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens-dev/spendlens/internal/config"
	"github.com/spendlens-dev/spendlens/internal/model"
)

// writeStatement writes a minimal ICICI-shaped CSV export: 12 banner
// rows, the header, then the given data rows.
func writeStatement(t *testing.T, data ...[]string) string {
	t.Helper()
	rows := make([][]string, 12)
	for i := range rows {
		rows[i] = []string{"banner"}
	}
	rows = append(rows, []string{
		"S No.", "Transaction Date", "Transaction Remarks",
		"Withdrawal Amount (INR )", "Deposit Amount (INR )", "Balance (INR )",
	})
	rows = append(rows, data...)

	path := filepath.Join(t.TempDir(), "statement.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, csv.NewWriter(f).WriteAll(rows))
	return path
}

func testServer(t *testing.T, statementPath string) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Statement.Path = statementPath
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, logger)
}

func get(t *testing.T, s *Server, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := testServer(t, "unused")
	rec := get(t, s, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestExpenses(t *testing.T) {
	path := writeStatement(t,
		[]string{"1", "05/03/2024", "UPI/SWIGGY ORDER 123", "450.00", "0", "49550.00"},
		[]string{"2", "07/03/2024", "NEFT SALARY CREDIT XYZCORP", "0", "50000.00", "99550.00"},
	)
	rec := get(t, testServer(t, path), "/api/dashboard/expenses")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary model.ExpenseSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 450.0, summary.TotalExpense)
	assert.Equal(t, 50000.0, summary.TotalIncome)
	assert.Equal(t, 49550.0, summary.NetCashflow)
	require.Len(t, summary.TopExpenses, 1)
	assert.Equal(t, "UPI SWIGGY ORDER 123", summary.TopExpenses[0].Description)
}

func TestExpenses_StatementPathOverride(t *testing.T) {
	path := writeStatement(t,
		[]string{"1", "05/03/2024", "UPI/SWIGGY ORDER 123", "450.00", "0", ""},
	)
	s := testServer(t, "does-not-exist.csv")

	rec := get(t, s, "/api/dashboard/expenses?statement_path="+path)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExpenses_MissingStatement(t *testing.T) {
	s := testServer(t, filepath.Join(t.TempDir(), "nope.csv"))
	rec := get(t, s, "/api/dashboard/expenses")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "statement not found")
}

func TestExpenses_BadTopN(t *testing.T) {
	path := writeStatement(t,
		[]string{"1", "05/03/2024", "X", "10", "0", ""},
	)
	s := testServer(t, path)

	rec := get(t, s, "/api/dashboard/expenses?top_n=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, s, "/api/dashboard/expenses?top_n=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, s, "/api/dashboard/expenses?top_n=51")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransactions(t *testing.T) {
	path := writeStatement(t,
		[]string{"1", "05/03/2024", "UPI/SWIGGY ORDER 123", "450.00", "0", ""},
	)
	rec := get(t, testServer(t, path), "/api/transactions")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Transactions []model.Transaction `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "Expense", resp.Transactions[0].L1)
}

func TestAccounts(t *testing.T) {
	rec := get(t, testServer(t, "unused"), "/api/accounts")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"accounts":[]}`, rec.Body.String())
}

func TestFire(t *testing.T) {
	s := testServer(t, "unused")

	rec := get(t, s, "/api/dashboard/fire?annual_expense=600000")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 15000000.0, resp["fire_number"])

	rec = get(t, s, "/api/dashboard/fire?annual_expense=100000&withdrawal_rate=0.05")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2000000.0, resp["fire_number"])
}

func TestFire_BadInput(t *testing.T) {
	s := testServer(t, "unused")

	assert.Equal(t, http.StatusBadRequest, get(t, s, "/api/dashboard/fire").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/api/dashboard/fire?annual_expense=abc").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/api/dashboard/fire?annual_expense=100&withdrawal_rate=0").Code)
}

func TestCORS(t *testing.T) {
	s := testServer(t, "unused")

	rec := get(t, s, "/health")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/api/dashboard/expenses", nil)
	opt := httptest.NewRecorder()
	s.Handler().ServeHTTP(opt, req)
	assert.Equal(t, http.StatusNoContent, opt.Code)
}
