package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tracklab/internal/core/domain"
	"tracklab/internal/core/port"
)

type offerRequest struct {
	Name            string `json:"name"`
	Niche           string `json:"niche"`
	LibraryLink     string `json:"library_link"`
	LandingPageLink string `json:"landing_page_link"`
	CheckoutLink    string `json:"checkout_link"`
}

func (req offerRequest) input() port.OfferInput {
	return port.OfferInput{
		Name:            req.Name,
		Niche:           req.Niche,
		LibraryLink:     req.LibraryLink,
		LandingPageLink: req.LandingPageLink,
		CheckoutLink:    req.CheckoutLink,
	}
}

type offerView struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Niche           string    `json:"niche"`
	LibraryLink     string    `json:"library_link"`
	LandingPageLink string    `json:"landing_page_link"`
	CheckoutLink    string    `json:"checkout_link"`
	CreatedAt       time.Time `json:"created_at"`
}

func newOfferView(o domain.Offer) offerView {
	return offerView{
		ID:              o.ID.String(),
		Name:            o.Name,
		Niche:           o.Niche,
		LibraryLink:     o.LibraryLink,
		LandingPageLink: o.LandingPageLink,
		CheckoutLink:    o.CheckoutLink,
		CreatedAt:       o.CreatedAt,
	}
}

func (h *Handler) handleListOffers(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	offers, err := h.offers.List(r.Context(), p.Grant)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	views := make([]offerView, 0, len(offers))
	for _, o := range offers {
		views = append(views, newOfferView(o))
	}
	h.respondJSON(w, http.StatusOK, views)
}

func (h *Handler) handleCreateOffer(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	var req offerRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	offer, err := h.offers.Create(r.Context(), p.Grant, req.input())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, newOfferView(*offer))
}

func (h *Handler) handleUpdateOffer(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, domain.ErrValidation)
		return
	}
	var req offerRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	offer, err := h.offers.Update(r.Context(), p.Grant, id, req.input())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newOfferView(*offer))
}

func (h *Handler) handleDeleteOffer(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, domain.ErrValidation)
		return
	}
	if err := h.offers.Delete(r.Context(), p.Grant, id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
