// Package identity implements the identity-provider port on top of the
// application database: bcrypt password hashes at rest, stateless HS256
// session tokens on the wire.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"tracklab/internal/core/domain"
	"tracklab/internal/core/port"
)

const uniqueViolation = "23505"

const minPasswordLength = 6

// Provider implements port.IdentityProvider.
type Provider struct {
	pool     *pgxpool.Pool
	secret   []byte
	tokenTTL time.Duration

	now func() time.Time
}

// NewProvider creates an identity provider signing session tokens with the
// given secret.
func NewProvider(pool *pgxpool.Pool, secret []byte, tokenTTL time.Duration) *Provider {
	return &Provider{pool: pool, secret: secret, tokenTTL: tokenTTL, now: time.Now}
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SignUp registers a new identity and returns a fresh session. An already
// registered email yields domain.ErrEmailTaken without creating anything.
func (p *Provider) SignUp(ctx context.Context, email, password string) (*port.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	_, err = p.pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, created_at) VALUES ($1,$2,$3,$4)`,
		id, email, string(hash), p.now().UTC())
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, domain.ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	return p.issue(domain.Identity{ID: id, Email: email})
}

// SignIn authenticates an existing identity and returns a fresh session. A
// wrong password and an unknown email are indistinguishable to the caller.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*port.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var (
		id   uuid.UUID
		hash string
	)
	err := p.pool.QueryRow(ctx,
		`SELECT id, password_hash FROM users WHERE email = $1`, email).Scan(&id, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return p.issue(domain.Identity{ID: id, Email: email})
}

// SignOut invalidates a session. Tokens are stateless, so expiry is the only
// server-side bound; the call exists so the port matches providers that do
// keep session state.
func (p *Provider) SignOut(ctx context.Context, token string) error {
	return nil
}

// IdentityFromToken resolves a session token to the caller's identity.
func (p *Provider) IdentityFromToken(ctx context.Context, token string) (*domain.Identity, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidCredentials
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.Identity{ID: id, Email: claims.Email}, nil
}

// Reauthenticate verifies the password for an already signed-in identity.
// Used as the step-up check before capital updates; each failed attempt is
// terminal, retry is up to the caller.
func (p *Provider) Reauthenticate(ctx context.Context, identity domain.Identity, password string) error {
	var hash string
	err := p.pool.QueryRow(ctx,
		`SELECT password_hash FROM users WHERE id = $1`, identity.ID).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrInvalidCredentials
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

func (p *Provider) issue(identity domain.Identity) (*port.Session, error) {
	now := p.now().UTC()
	claims := sessionClaims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return nil, err
	}
	return &port.Session{Token: token, Identity: identity}, nil
}
