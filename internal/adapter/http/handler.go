package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tracklab/internal/core/port"
)

// Handler is the inbound HTTP adapter. It wires the usecase ports onto a
// chi.Router and owns the request-scoped authentication middleware.
type Handler struct {
	access    port.AccessUseCase
	invites   port.InvitationUseCase
	finance   port.FinanceUseCase
	tests     port.TestUseCase
	offers    port.OfferUseCase
	dashboard port.DashboardUseCase
	ids       port.IdentityProvider
	logger    *slog.Logger
	router    chi.Router
}

// Deps bundles the handler's dependencies.
type Deps struct {
	Access    port.AccessUseCase
	Invites   port.InvitationUseCase
	Finance   port.FinanceUseCase
	Tests     port.TestUseCase
	Offers    port.OfferUseCase
	Dashboard port.DashboardUseCase
	Identity  port.IdentityProvider
	Logger    *slog.Logger
}

// NewHandler creates a handler with all routes configured. Invitation
// validation and acceptance are reachable without a session; everything else
// goes through the authentication middleware.
func NewHandler(deps Deps) *Handler {
	h := &Handler{
		access:    deps.Access,
		invites:   deps.Invites,
		finance:   deps.Finance,
		tests:     deps.Tests,
		offers:    deps.Offers,
		dashboard: deps.Dashboard,
		ids:       deps.Identity,
		logger:    deps.Logger,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", h.handleSignUp)
		r.Post("/auth/signin", h.handleSignIn)
		r.Post("/auth/signout", h.handleSignOut)

		r.Get("/invitations/validate/{token}", h.handleValidateInvitation)
		r.Post("/invitations/accept/{token}", h.handleAcceptInvitation)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)

			r.Get("/me/permissions", h.handleMyPermissions)
			r.Get("/dashboard", h.handleDashboard)

			r.Get("/tests", h.handleListTests)
			r.Post("/tests", h.handleCreateTest)
			r.Put("/tests/{id}", h.handleUpdateTest)
			r.Delete("/tests/{id}", h.handleDeleteTest)

			r.Get("/offers", h.handleListOffers)
			r.Post("/offers", h.handleCreateOffer)
			r.Put("/offers/{id}", h.handleUpdateOffer)
			r.Delete("/offers/{id}", h.handleDeleteOffer)

			r.Get("/finance", h.handleLedger)
			r.Post("/finance/transactions", h.handleAddTransaction)
			r.Put("/finance/capital", h.handleUpdateCapital)

			r.Get("/members", h.handleListMembers)
			r.Put("/members/{id}/permissions", h.handleUpdateMemberPermissions)
			r.Delete("/members/{id}", h.handleRemoveMember)

			r.Get("/invitations", h.handlePendingInvitations)
			r.Post("/invitations", h.handleIssueInvitation)
			r.Delete("/invitations/{id}", h.handleRevokeInvitation)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
