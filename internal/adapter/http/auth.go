package httpadapter

import (
	"net/http"

	"tracklab/internal/core/domain"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func sessionView(token string, identity domain.Identity) sessionResponse {
	var resp sessionResponse
	resp.Token = token
	resp.User.ID = identity.ID.String()
	resp.User.Email = identity.Email
	return resp
}

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	session, err := h.ids.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, sessionView(session.Token, session.Identity))
}

func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	session, err := h.ids.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, sessionView(session.Token, session.Identity))
}

func (h *Handler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.ids.SignOut(r.Context(), bearerToken(r)); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type permissionsResponse struct {
	WorkspaceID string               `json:"workspace_id"`
	IsOwner     bool                 `json:"is_owner"`
	Permissions domain.PermissionSet `json:"permissions"`
}

func (h *Handler) handleMyPermissions(w http.ResponseWriter, r *http.Request) {
	p := callerFrom(r.Context())
	h.respondJSON(w, http.StatusOK, permissionsResponse{
		WorkspaceID: p.Grant.WorkspaceID.String(),
		IsOwner:     p.Grant.IsOwner,
		Permissions: p.Grant.Permissions,
	})
}
