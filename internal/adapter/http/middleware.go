package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"tracklab/internal/core/domain"
)

type contextKey int

const principalKey contextKey = iota

// principal is the request-scoped caller: identity plus resolved grant. It
// replaces ambient session state so authorization inputs are always explicit.
type principal struct {
	Identity domain.Identity
	Grant    domain.Grant
}

// authenticate resolves the bearer token to an identity and the identity to
// a permission grant, then stores both in the request context.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			h.respondError(w, r, domain.ErrInvalidCredentials)
			return
		}
		identity, err := h.ids.IdentityFromToken(r.Context(), token)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		grant, err := h.access.ResolvePermissions(r.Context(), *identity)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), principalKey, principal{Identity: *identity, Grant: grant})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func callerFrom(ctx context.Context) principal {
	p, _ := ctx.Value(principalKey).(principal)
	return p
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
