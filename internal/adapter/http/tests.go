package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tracklab/internal/core/domain"
	"tracklab/internal/core/port"
)

type testRequest struct {
	OfferID        *uuid.UUID        `json:"offer_id"`
	StartDate      time.Time         `json:"start_date"`
	ProductName    string            `json:"product_name"`
	Niche          string            `json:"niche"`
	TrafficSource  string            `json:"traffic_source"`
	LandingPageURL string            `json:"landing_page_url"`
	InvestedAmount decimal.Decimal   `json:"invested_amount"`
	ReturnValue    decimal.Decimal   `json:"return_value"`
	Impressions    int64             `json:"impressions"`
	Clicks         int64             `json:"clicks"`
	Conversions    int64             `json:"conversions"`
	Status         domain.TestStatus `json:"status"`
	Observations   string            `json:"observations"`
}

func (req testRequest) input() port.TestInput {
	return port.TestInput{
		OfferID:        req.OfferID,
		StartDate:      req.StartDate,
		ProductName:    req.ProductName,
		Niche:          req.Niche,
		TrafficSource:  req.TrafficSource,
		LandingPageURL: req.LandingPageURL,
		InvestedAmount: req.InvestedAmount,
		ReturnValue:    req.ReturnValue,
		Impressions:    req.Impressions,
		Clicks:         req.Clicks,
		Conversions:    req.Conversions,
		Status:         req.Status,
		Observations:   req.Observations,
	}
}

// testView is the wire shape of a test. Ratios are recomputed on every
// response; they are never read from storage.
type testView struct {
	ID             string            `json:"id"`
	OfferID        *uuid.UUID        `json:"offer_id,omitempty"`
	StartDate      time.Time         `json:"start_date"`
	ProductName    string            `json:"product_name"`
	Niche          string            `json:"niche"`
	TrafficSource  string            `json:"traffic_source"`
	LandingPageURL string            `json:"landing_page_url"`
	InvestedAmount decimal.Decimal   `json:"invested_amount"`
	ReturnValue    decimal.Decimal   `json:"return_value"`
	Impressions    int64             `json:"impressions"`
	Clicks         int64             `json:"clicks"`
	Conversions    int64             `json:"conversions"`
	Status         domain.TestStatus `json:"status"`
	Observations   string            `json:"observations"`
	CreatedAt      time.Time         `json:"created_at"`
	CTR            float64           `json:"ctr"`
	ConversionRate float64           `json:"conversion_rate"`
	CPC            decimal.Decimal   `json:"cpc"`
	CPA            decimal.Decimal   `json:"cpa"`
	ROI            float64           `json:"roi"`
	ROAS           float64           `json:"roas"`
}

func newTestView(t domain.Test) testView {
	return testView{
		ID:             t.ID.String(),
		OfferID:        t.OfferID,
		StartDate:      t.StartDate,
		ProductName:    t.ProductName,
		Niche:          t.Niche,
		TrafficSource:  t.TrafficSource,
		LandingPageURL: t.LandingPageURL,
		InvestedAmount: t.InvestedAmount,
		ReturnValue:    t.ReturnValue,
		Impressions:    t.Impressions,
		Clicks:         t.Clicks,
		Conversions:    t.Conversions,
		Status:         t.Status,
		Observations:   t.Observations,
		CreatedAt:      t.CreatedAt,
		CTR:            t.CTR(),
		ConversionRate: t.ConversionRate(),
		CPC:            t.CPC(),
		CPA:            t.CPA(),
		ROI:            t.ROI(),
		ROAS:           t.ROAS(),
	}
}

func (h *Handler) handleListTests(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	tests, err := h.tests.List(r.Context(), p.Grant)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	views := make([]testView, 0, len(tests))
	for _, t := range tests {
		views = append(views, newTestView(t))
	}
	h.respondJSON(w, http.StatusOK, views)
}

func (h *Handler) handleCreateTest(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	var req testRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	test, err := h.tests.Create(r.Context(), p.Grant, req.input())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, newTestView(*test))
}

func (h *Handler) handleUpdateTest(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, domain.ErrValidation)
		return
	}
	var req testRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	test, err := h.tests.Update(r.Context(), p.Grant, id, req.input())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newTestView(*test))
}

func (h *Handler) handleDeleteTest(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, domain.ErrValidation)
		return
	}
	if err := h.tests.Delete(r.Context(), p.Grant, id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
