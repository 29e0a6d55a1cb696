package httpadapter

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tracklab/internal/core/domain"
	"tracklab/internal/core/port"
)

type transactionView struct {
	ID          string                 `json:"id"`
	Type        domain.TransactionType `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description"`
	Date        time.Time              `json:"date"`
	TestID      *uuid.UUID             `json:"test_id,omitempty"`
}

type ledgerView struct {
	InitialCapital  decimal.Decimal   `json:"initial_capital"`
	CurrentBalance  decimal.Decimal   `json:"current_balance"`
	TotalInvestment decimal.Decimal   `json:"total_investment"`
	TotalRevenue    decimal.Decimal   `json:"total_revenue"`
	NetProfit       decimal.Decimal   `json:"net_profit"`
	Transactions    []transactionView `json:"transactions"`
}

func newLedgerView(l domain.Ledger) ledgerView {
	view := ledgerView{
		InitialCapital:  l.InitialCapital,
		CurrentBalance:  l.CurrentBalance,
		TotalInvestment: l.TotalInvestment,
		TotalRevenue:    l.TotalRevenue,
		NetProfit:       l.NetProfit,
		Transactions:    make([]transactionView, 0, len(l.Transactions)),
	}
	for _, t := range l.Transactions {
		view.Transactions = append(view.Transactions, transactionView{
			ID:          t.ID.String(),
			Type:        t.Type,
			Amount:      t.Amount,
			Description: t.Description,
			Date:        t.Date,
			TestID:      t.TestID,
		})
	}
	return view
}

func (h *Handler) handleLedger(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	ledger, err := h.finance.Ledger(r.Context(), p.Grant)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newLedgerView(*ledger))
}

type transactionRequest struct {
	Type        domain.TransactionType `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description"`
}

func (h *Handler) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	var req transactionRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	tx, err := h.finance.AddManualTransaction(r.Context(), p.Grant, port.ManualTransactionInput{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, transactionView{
		ID:          tx.ID.String(),
		Type:        tx.Type,
		Amount:      tx.Amount,
		Description: tx.Description,
		Date:        tx.Date,
	})
}

type capitalRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Password string          `json:"password"`
}

// handleUpdateCapital performs the step-up protected capital update. A wrong
// password returns 401 and the caller may retry with the amount intact; no
// ledger state is written on failure.
func (h *Handler) handleUpdateCapital(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	var req capitalRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	ledger, err := h.finance.UpdateCapital(r.Context(), p.Grant, p.Identity, req.Amount, req.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newLedgerView(*ledger))
}

type dashboardResponse struct {
	Metrics struct {
		TotalInvestment decimal.Decimal `json:"total_investment"`
		TotalTests      int             `json:"total_tests"`
		SuccessRate     float64         `json:"success_rate"`
		NetResult       decimal.Decimal `json:"net_result"`
		AvgROI          float64         `json:"avg_roi"`
		AvgCPA          decimal.Decimal `json:"avg_cpa"`
	} `json:"metrics"`
	Ranking []offerRankView `json:"ranking"`
}

type offerRankView struct {
	Offer           offerView       `json:"offer"`
	TotalTests      int             `json:"total_tests"`
	TotalInvestment decimal.Decimal `json:"total_investment"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	AvgROI          float64         `json:"avg_roi"`
	AvgROAS         float64         `json:"avg_roas"`
	SuccessRate     float64         `json:"success_rate"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	Score           float64         `json:"score"`
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	overview, err := h.dashboard.Overview(r.Context(), p.Grant)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var resp dashboardResponse
	resp.Metrics.TotalInvestment = overview.Metrics.TotalInvestment
	resp.Metrics.TotalTests = overview.Metrics.TotalTests
	resp.Metrics.SuccessRate = overview.Metrics.SuccessRate
	resp.Metrics.NetResult = overview.Metrics.NetResult
	resp.Metrics.AvgROI = overview.Metrics.AvgROI
	resp.Metrics.AvgCPA = overview.Metrics.AvgCPA
	resp.Ranking = make([]offerRankView, 0, len(overview.Ranking))
	for _, s := range overview.Ranking {
		resp.Ranking = append(resp.Ranking, offerRankView{
			Offer:           newOfferView(s.Offer),
			TotalTests:      s.TotalTests,
			TotalInvestment: s.TotalInvestment,
			TotalRevenue:    s.TotalRevenue,
			AvgROI:          s.AvgROI,
			AvgROAS:         s.AvgROAS,
			SuccessRate:     s.SuccessRate,
			NetProfit:       s.NetProfit,
			Score:           s.Score,
		})
	}
	h.respondJSON(w, http.StatusOK, resp)
}
