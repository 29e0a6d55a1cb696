package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tracklab/internal/core/domain"
	"tracklab/internal/core/port"
)

const minPasswordLength = 6

// InvitationService drives the invitation lifecycle. It implements
// port.InvitationUseCase.
type InvitationService struct {
	repo port.WorkspaceRepository
	ids  port.IdentityProvider

	now func() time.Time
}

// NewInvitationService creates the invitation service.
func NewInvitationService(repo port.WorkspaceRepository, ids port.IdentityProvider) *InvitationService {
	return &InvitationService{repo: repo, ids: ids, now: time.Now}
}

// Issue creates a pending invitation with an unguessable single-use token
// and a seven-day expiry. At most one live invitation may exist per email
// per workspace.
func (s *InvitationService) Issue(ctx context.Context, grant domain.Grant, identity domain.Identity, input port.IssueInvitationInput) (*domain.Invitation, error) {
	if !grant.CanEdit(domain.ResourceMembers) {
		return nil, domain.ErrUnauthorized
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invitee email is required", domain.ErrValidation)
	}

	now := s.now().UTC()
	exists, err := s.repo.LiveInvitationExists(ctx, grant.WorkspaceID, email, now)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateInvitation
	}

	inv := &domain.Invitation{
		ID:          uuid.New(),
		WorkspaceID: grant.WorkspaceID,
		Email:       email,
		Permissions: input.Permissions.Normalize(),
		InvitedBy:   identity.ID,
		Token:       uuid.NewString(),
		ExpiresAt:   now.Add(domain.InvitationTTL),
		CreatedAt:   now,
	}
	if err := s.repo.CreateInvitation(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Pending lists the workspace's un-accepted, un-expired invitations, newest
// first.
func (s *InvitationService) Pending(ctx context.Context, grant domain.Grant) ([]domain.Invitation, error) {
	return s.repo.PendingInvitations(ctx, grant.WorkspaceID, s.now().UTC())
}

// Validate looks up a pending invitation by token. It performs no mutation:
// expiry is a computed predicate and the row stays in place for audit. A
// consumed token is indistinguishable from one that never existed.
func (s *InvitationService) Validate(ctx context.Context, token string) (*port.InvitationPreview, error) {
	inv, err := s.lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	return &port.InvitationPreview{
		Email:       inv.Email,
		WorkspaceID: inv.WorkspaceID,
		Permissions: inv.Permissions,
		ExpiresAt:   inv.ExpiresAt,
	}, nil
}

// AcceptNew creates a fresh identity for the invitee's email and joins the
// workspace. The member insert and invitation marking happen atomically in
// the repository. When the email is already registered no duplicate identity
// is created and domain.ErrEmailTaken tells the caller to use AcceptExisting.
func (s *InvitationService) AcceptNew(ctx context.Context, token, password string) (*port.AcceptResult, error) {
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}
	inv, err := s.lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	session, err := s.ids.SignUp(ctx, inv.Email, password)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, token, session)
}

// AcceptExisting authenticates the invitee's pre-existing identity and joins
// the workspace.
func (s *InvitationService) AcceptExisting(ctx context.Context, token, password string) (*port.AcceptResult, error) {
	inv, err := s.lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	session, err := s.ids.SignIn(ctx, inv.Email, password)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, token, session)
}

func (s *InvitationService) join(ctx context.Context, token string, session *port.Session) (*port.AcceptResult, error) {
	member, err := s.repo.AcceptInvitation(ctx, token, session.Identity)
	if err != nil {
		return nil, err
	}
	return &port.AcceptResult{Member: *member, Session: *session}, nil
}

// Revoke hard-deletes a pending invitation. An invitee revisiting the link
// afterwards gets NotFound, same as a link that never existed.
func (s *InvitationService) Revoke(ctx context.Context, grant domain.Grant, invitationID uuid.UUID) error {
	if !grant.CanEdit(domain.ResourceMembers) {
		return domain.ErrUnauthorized
	}
	return s.repo.DeleteInvitation(ctx, grant.WorkspaceID, invitationID)
}

func (s *InvitationService) lookup(ctx context.Context, token string) (*domain.Invitation, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}
	inv, err := s.repo.InvitationByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Expired(s.now().UTC()) {
		return nil, domain.ErrExpired
	}
	return inv, nil
}
