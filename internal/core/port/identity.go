package port

import (
	"context"

	"tracklab/internal/core/domain"
)

// Session is an authenticated session issued by the identity provider.
type Session struct {
	Token    string
	Identity domain.Identity
}

// IdentityProvider is the outbound port to the external identity service.
// SignUp returns domain.ErrEmailTaken for an already registered email;
// SignIn and Reauthenticate return domain.ErrInvalidCredentials on a wrong
// password.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, token string) error
	// IdentityFromToken resolves a session token to the caller's identity.
	IdentityFromToken(ctx context.Context, token string) (*domain.Identity, error)
	// Reauthenticate verifies the password for an already signed-in
	// identity without issuing a new session. Used for step-up checks.
	Reauthenticate(ctx context.Context, identity domain.Identity, password string) error
}
