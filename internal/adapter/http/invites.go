package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tracklab/internal/core/domain"
	"tracklab/internal/core/port"
)

type invitationView struct {
	ID          string               `json:"id"`
	Email       string               `json:"email"`
	Permissions domain.PermissionSet `json:"permissions"`
	Token       string               `json:"token"`
	ExpiresAt   time.Time            `json:"expires_at"`
	CreatedAt   time.Time            `json:"created_at"`
}

func newInvitationView(inv domain.Invitation) invitationView {
	return invitationView{
		ID:          inv.ID.String(),
		Email:       inv.Email,
		Permissions: inv.Permissions,
		Token:       inv.Token,
		ExpiresAt:   inv.ExpiresAt,
		CreatedAt:   inv.CreatedAt,
	}
}

type issueInvitationRequest struct {
	Email       string               `json:"email"`
	Permissions domain.PermissionSet `json:"permissions"`
}

func (h *Handler) handleIssueInvitation(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	var req issueInvitationRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	inv, err := h.invites.Issue(r.Context(), p.Grant, p.Identity, port.IssueInvitationInput{
		Email:       req.Email,
		Permissions: req.Permissions,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, newInvitationView(*inv))
}

func (h *Handler) handlePendingInvitations(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	invitations, err := h.invites.Pending(r.Context(), p.Grant)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	views := make([]invitationView, 0, len(invitations))
	for _, inv := range invitations {
		views = append(views, newInvitationView(inv))
	}
	h.respondJSON(w, http.StatusOK, views)
}

func (h *Handler) handleRevokeInvitation(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, domain.ErrValidation)
		return
	}
	if err := h.invites.Revoke(r.Context(), p.Grant, id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type invitationPreviewResponse struct {
	Email       string               `json:"email"`
	WorkspaceID string               `json:"workspace_id"`
	Permissions domain.PermissionSet `json:"permissions"`
	ExpiresAt   time.Time            `json:"expires_at"`
}

// handleValidateInvitation is reachable without a session: the token is the
// only credential. Validation never mutates the invitation.
func (h *Handler) handleValidateInvitation(w http.ResponseWriter, r *http.Request) {
	preview, err := h.invites.Validate(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, invitationPreviewResponse{
		Email:       preview.Email,
		WorkspaceID: preview.WorkspaceID.String(),
		Permissions: preview.Permissions,
		ExpiresAt:   preview.ExpiresAt,
	})
}

type acceptInvitationRequest struct {
	Password string `json:"password"`
	// Existing selects the existing-identity path: the password is checked
	// against the already registered account instead of creating one.
	Existing bool `json:"existing"`
}

type acceptInvitationResponse struct {
	Member  memberView      `json:"member"`
	Session sessionResponse `json:"session"`
}

// handleAcceptInvitation joins the workspace on either acceptance path. When
// the new-identity path hits an already registered email the 409 response
// tells the client to retry with existing=true; nothing is created in that
// case.
func (h *Handler) handleAcceptInvitation(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	var req acceptInvitationRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	var (
		result *port.AcceptResult
		err    error
	)
	if req.Existing {
		result, err = h.invites.AcceptExisting(r.Context(), token, req.Password)
	} else {
		result, err = h.invites.AcceptNew(r.Context(), token, req.Password)
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, acceptInvitationResponse{
		Member:  newMemberView(result.Member),
		Session: sessionView(result.Session.Token, result.Session.Identity),
	})
}
