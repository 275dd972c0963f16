package server

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/analytics"
	"github.com/spendlens-dev/spendlens/internal/model"
	"github.com/spendlens-dev/spendlens/internal/statement"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleExpenses runs the full pipeline: load the statement at
// statement_path (default from config), aggregate with top_n, return the
// summary. The pipeline is a one-shot computation; nothing is cached.
func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("statement_path")
	if path == "" {
		path = s.cfg.Statement.Path
	}

	topN := s.cfg.Dashboard.TopN
	if topN == 0 {
		topN = analytics.DefaultTopN
	}
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "top_n must be an integer")
			return
		}
		topN = n
	}

	txns, err := statement.Load(path)
	if err != nil {
		s.writeLoadError(w, path, err)
		return
	}

	summary, err := analytics.BuildExpenseSummary(txns, topN)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidTopN) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("aggregating statement", "path", path, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to aggregate statement")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleFire(w http.ResponseWriter, r *http.Request) {
	annualStr := r.URL.Query().Get("annual_expense")
	if annualStr == "" {
		writeError(w, http.StatusBadRequest, "annual_expense is required")
		return
	}
	annual, err := decimal.NewFromString(annualStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "annual_expense must be numeric")
		return
	}

	rate := decimal.NewFromFloat(s.cfg.Dashboard.WithdrawalRate)
	if rate.IsZero() {
		rate = analytics.DefaultWithdrawalRate
	}
	if raw := r.URL.Query().Get("withdrawal_rate"); raw != "" {
		rate, err = decimal.NewFromString(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "withdrawal_rate must be numeric")
			return
		}
	}

	fire, err := analytics.EstimateFireNumber(annual, rate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]float64{
		"annual_expense":  annual.InexactFloat64(),
		"withdrawal_rate": rate.InexactFloat64(),
		"fire_number":     fire.InexactFloat64(),
	})
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("statement_path")
	if path == "" {
		path = s.cfg.Statement.Path
	}

	txns, err := statement.Load(path)
	if err != nil {
		s.writeLoadError(w, path, err)
		return
	}
	if txns == nil {
		txns = []model.Transaction{}
	}

	writeJSON(w, http.StatusOK, map[string][]model.Transaction{"transactions": txns})
}

func (s *Server) handleAccounts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"accounts": {}})
}

// writeLoadError maps loader failures onto the HTTP error taxonomy:
// missing file is the caller's mistake, everything else is a statement
// we could not understand.
func (s *Server) writeLoadError(w http.ResponseWriter, path string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		writeError(w, http.StatusNotFound, "statement not found: "+path)
		return
	}
	s.logger.Error("loading statement", "path", path, "error", err)
	writeError(w, http.StatusInternalServerError, "failed to parse statement")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
