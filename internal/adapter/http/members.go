package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tracklab/internal/core/domain"
)

type memberView struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	Email       string               `json:"email"`
	Role        domain.Role          `json:"role"`
	Permissions domain.PermissionSet `json:"permissions"`
	InvitedBy   *uuid.UUID           `json:"invited_by,omitempty"`
	JoinedAt    time.Time            `json:"joined_at"`
}

func newMemberView(m domain.Member) memberView {
	return memberView{
		ID:          m.ID.String(),
		UserID:      m.UserID.String(),
		Email:       m.Email,
		Role:        m.Role,
		Permissions: m.Permissions,
		InvitedBy:   m.InvitedBy,
		JoinedAt:    m.JoinedAt,
	}
}

func (h *Handler) handleListMembers(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	members, err := h.access.Members(r.Context(), p.Grant)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	views := make([]memberView, 0, len(members))
	for _, m := range members {
		views = append(views, newMemberView(m))
	}
	h.respondJSON(w, http.StatusOK, views)
}

type memberPermissionsRequest struct {
	Permissions domain.PermissionSet `json:"permissions"`
}

func (h *Handler) handleUpdateMemberPermissions(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, domain.ErrValidation)
		return
	}
	var req memberPermissionsRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	member, err := h.access.UpdateMemberPermissions(r.Context(), p.Grant, id, req.Permissions)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newMemberView(*member))
}

func (h *Handler) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, domain.ErrValidation)
		return
	}
	if err := h.access.RemoveMember(r.Context(), p.Grant, id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
