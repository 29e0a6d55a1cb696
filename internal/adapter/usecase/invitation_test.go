package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tracklab/internal/core/domain"
	"tracklab/internal/core/port"
	"tracklab/internal/core/port/mocks"
)

func ownerTestGrant() domain.Grant {
	return domain.Grant{
		WorkspaceID: uuid.New(),
		IsOwner:     true,
		Permissions: domain.PermissionSet{FullAccess: true},
	}
}

func TestIssueInvitation(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	ids := mocks.NewMockIdentityProvider(t)
	grant := ownerTestGrant()
	identity := domain.Identity{ID: uuid.New(), Email: "owner@example.com"}

	repo.EXPECT().
		LiveInvitationExists(mock.Anything, grant.WorkspaceID, "invitee@example.com", mock.Anything).
		Return(false, nil)

	var created *domain.Invitation
	repo.EXPECT().
		CreateInvitation(mock.Anything, mock.AnythingOfType("*domain.Invitation")).
		Run(func(ctx context.Context, inv *domain.Invitation) { created = inv }).
		Return(nil)

	svc := NewInvitationService(repo, ids)

	inv, err := svc.Issue(context.Background(), grant, identity, port.IssueInvitationInput{
		Email:       "  Invitee@Example.COM ",
		Permissions: domain.PermissionSet{FullAccess: true, EditTests: true},
	})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if created == nil {
		t.Fatal("expected an invitation to be stored")
	}
	if inv.Email != "invitee@example.com" {
		t.Fatalf("email = %q, want lowercased and trimmed", inv.Email)
	}
	if inv.Token == "" {
		t.Fatal("invitation should carry a token")
	}
	if inv.Permissions.EditTests {
		t.Fatal("permission set should be normalized before storing")
	}
	ttl := inv.ExpiresAt.Sub(inv.CreatedAt)
	if ttl != domain.InvitationTTL {
		t.Fatalf("ttl = %s, want %s", ttl, domain.InvitationTTL)
	}
	if inv.InvitedBy != identity.ID {
		t.Fatalf("invited by = %s, want %s", inv.InvitedBy, identity.ID)
	}
}

func TestIssueInvitationDuplicate(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	ids := mocks.NewMockIdentityProvider(t)
	grant := ownerTestGrant()

	repo.EXPECT().
		LiveInvitationExists(mock.Anything, grant.WorkspaceID, "invitee@example.com", mock.Anything).
		Return(true, nil)

	svc := NewInvitationService(repo, ids)

	_, err := svc.Issue(context.Background(), grant, domain.Identity{ID: uuid.New()},
		port.IssueInvitationInput{Email: "invitee@example.com"})
	if !errors.Is(err, domain.ErrDuplicateInvitation) {
		t.Fatalf("second live invitation should be ErrDuplicateInvitation, got %v", err)
	}
}

func TestIssueInvitationValidation(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	ids := mocks.NewMockIdentityProvider(t)
	svc := NewInvitationService(repo, ids)

	for _, email := range []string{"", "   ", "not-an-email"} {
		_, err := svc.Issue(context.Background(), ownerTestGrant(), domain.Identity{ID: uuid.New()},
			port.IssueInvitationInput{Email: email})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("email %q should be ErrValidation, got %v", email, err)
		}
	}

	viewer := domain.Grant{WorkspaceID: uuid.New(), Permissions: domain.PermissionSet{ViewOnly: true}}
	_, err := svc.Issue(context.Background(), viewer, domain.Identity{ID: uuid.New()},
		port.IssueInvitationInput{Email: "invitee@example.com"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("issuing without manage-members should be ErrUnauthorized, got %v", err)
	}
}

// TestValidateInvitation covers the token lookup outcomes. A consumed token
// is reported the same as an unknown one.
func TestValidateInvitation(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	ids := mocks.NewMockIdentityProvider(t)
	svc := NewInvitationService(repo, ids)

	repo.EXPECT().InvitationByToken(mock.Anything, "unknown").Return(nil, nil)
	if _, err := svc.Validate(context.Background(), "unknown"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown token should be ErrNotFound, got %v", err)
	}

	if _, err := svc.Validate(context.Background(), ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("empty token should be ErrNotFound, got %v", err)
	}

	expired := &domain.Invitation{
		Token:     "expired",
		Email:     "invitee@example.com",
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}
	repo.EXPECT().InvitationByToken(mock.Anything, "expired").Return(expired, nil)
	if _, err := svc.Validate(context.Background(), "expired"); !errors.Is(err, domain.ErrExpired) {
		t.Fatalf("expired token should be ErrExpired, got %v", err)
	}

	live := &domain.Invitation{
		Token:       "live",
		WorkspaceID: uuid.New(),
		Email:       "invitee@example.com",
		Permissions: domain.PermissionSet{EditTests: true},
		ExpiresAt:   time.Now().UTC().Add(time.Hour),
	}
	repo.EXPECT().InvitationByToken(mock.Anything, "live").Return(live, nil)
	preview, err := svc.Validate(context.Background(), "live")
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if preview.Email != live.Email || preview.WorkspaceID != live.WorkspaceID {
		t.Fatalf("preview = %+v, want invitation fields", preview)
	}
}

func TestAcceptNew(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	ids := mocks.NewMockIdentityProvider(t)

	inv := &domain.Invitation{
		Token:       "tok",
		WorkspaceID: uuid.New(),
		Email:       "invitee@example.com",
		ExpiresAt:   time.Now().UTC().Add(time.Hour),
	}
	session := &port.Session{
		Token:    "jwt",
		Identity: domain.Identity{ID: uuid.New(), Email: inv.Email},
	}
	member := &domain.Member{
		ID:          uuid.New(),
		WorkspaceID: inv.WorkspaceID,
		UserID:      session.Identity.ID,
		Email:       inv.Email,
	}

	repo.EXPECT().InvitationByToken(mock.Anything, "tok").Return(inv, nil)
	ids.EXPECT().SignUp(mock.Anything, inv.Email, "secret1").Return(session, nil)
	repo.EXPECT().AcceptInvitation(mock.Anything, "tok", session.Identity).Return(member, nil)

	svc := NewInvitationService(repo, ids)

	result, err := svc.AcceptNew(context.Background(), "tok", "secret1")
	if err != nil {
		t.Fatalf("AcceptNew error: %v", err)
	}
	if result.Member.ID != member.ID {
		t.Fatalf("member = %s, want %s", result.Member.ID, member.ID)
	}
	if result.Session.Token != "jwt" {
		t.Fatal("acceptance should return the fresh session")
	}
}

func TestAcceptNewShortPassword(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	ids := mocks.NewMockIdentityProvider(t)
	svc := NewInvitationService(repo, ids)

	_, err := svc.AcceptNew(context.Background(), "tok", "12345")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("short password should be ErrValidation, got %v", err)
	}
}

// TestAcceptNewEmailTaken ensures a registered email surfaces ErrEmailTaken
// without consuming the invitation.
func TestAcceptNewEmailTaken(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	ids := mocks.NewMockIdentityProvider(t)

	inv := &domain.Invitation{
		Token:     "tok",
		Email:     "taken@example.com",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	repo.EXPECT().InvitationByToken(mock.Anything, "tok").Return(inv, nil)
	ids.EXPECT().SignUp(mock.Anything, inv.Email, "secret1").Return(nil, domain.ErrEmailTaken)

	svc := NewInvitationService(repo, ids)

	_, err := svc.AcceptNew(context.Background(), "tok", "secret1")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestAcceptExisting(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	ids := mocks.NewMockIdentityProvider(t)

	inv := &domain.Invitation{
		Token:     "tok",
		Email:     "invitee@example.com",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	session := &port.Session{
		Token:    "jwt",
		Identity: domain.Identity{ID: uuid.New(), Email: inv.Email},
	}

	repo.EXPECT().InvitationByToken(mock.Anything, "tok").Return(inv, nil)
	ids.EXPECT().SignIn(mock.Anything, inv.Email, "secret1").Return(session, nil)
	repo.EXPECT().
		AcceptInvitation(mock.Anything, "tok", session.Identity).
		Return(&domain.Member{UserID: session.Identity.ID}, nil)

	svc := NewInvitationService(repo, ids)

	if _, err := svc.AcceptExisting(context.Background(), "tok", "secret1"); err != nil {
		t.Fatalf("AcceptExisting error: %v", err)
	}
}

func TestAcceptExistingWrongPassword(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	ids := mocks.NewMockIdentityProvider(t)

	inv := &domain.Invitation{
		Token:     "tok",
		Email:     "invitee@example.com",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	repo.EXPECT().InvitationByToken(mock.Anything, "tok").Return(inv, nil)
	ids.EXPECT().
		SignIn(mock.Anything, inv.Email, "wrong-pass").
		Return(nil, domain.ErrInvalidCredentials)

	svc := NewInvitationService(repo, ids)

	_, err := svc.AcceptExisting(context.Background(), "tok", "wrong-pass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

// TestAcceptTwiceConsumesToken drives the full double-accept sequence: the
// first acceptance succeeds, the second sees the consumed token as unknown
// and fails terminally.
func TestAcceptTwiceConsumesToken(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	ids := mocks.NewMockIdentityProvider(t)

	inv := &domain.Invitation{
		Token:     "tok",
		Email:     "invitee@example.com",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	session := &port.Session{
		Token:    "jwt",
		Identity: domain.Identity{ID: uuid.New(), Email: inv.Email},
	}

	repo.EXPECT().InvitationByToken(mock.Anything, "tok").Return(inv, nil).Once()
	ids.EXPECT().SignIn(mock.Anything, inv.Email, "secret1").Return(session, nil).Once()
	repo.EXPECT().
		AcceptInvitation(mock.Anything, "tok", session.Identity).
		Return(&domain.Member{UserID: session.Identity.ID}, nil).
		Once()
	// Acceptance nulls the token lookup, so the retry sees nothing.
	repo.EXPECT().InvitationByToken(mock.Anything, "tok").Return(nil, nil).Once()

	svc := NewInvitationService(repo, ids)

	if _, err := svc.AcceptExisting(context.Background(), "tok", "secret1"); err != nil {
		t.Fatalf("first accept error: %v", err)
	}
	_, err := svc.AcceptExisting(context.Background(), "tok", "secret1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second accept should be ErrNotFound, got %v", err)
	}
}

// TestAcceptRacesStoreValidation covers the narrow race where the token is
// consumed between the service lookup and the store's locked re-validation.
func TestAcceptRacesStoreValidation(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	ids := mocks.NewMockIdentityProvider(t)

	inv := &domain.Invitation{
		Token:     "tok",
		Email:     "invitee@example.com",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	session := &port.Session{
		Token:    "jwt",
		Identity: domain.Identity{ID: uuid.New(), Email: inv.Email},
	}

	repo.EXPECT().InvitationByToken(mock.Anything, "tok").Return(inv, nil)
	ids.EXPECT().SignIn(mock.Anything, inv.Email, "secret1").Return(session, nil)
	repo.EXPECT().
		AcceptInvitation(mock.Anything, "tok", session.Identity).
		Return(nil, domain.ErrNotFound)

	svc := NewInvitationService(repo, ids)

	_, err := svc.AcceptExisting(context.Background(), "tok", "secret1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound from the locked re-validation, got %v", err)
	}
}

func TestRevokeInvitation(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	ids := mocks.NewMockIdentityProvider(t)
	grant := ownerTestGrant()
	invID := uuid.New()

	repo.EXPECT().DeleteInvitation(mock.Anything, grant.WorkspaceID, invID).Return(nil)

	svc := NewInvitationService(repo, ids)

	if err := svc.Revoke(context.Background(), grant, invID); err != nil {
		t.Fatalf("Revoke error: %v", err)
	}

	viewer := domain.Grant{WorkspaceID: grant.WorkspaceID}
	if err := svc.Revoke(context.Background(), viewer, invID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("revoking without manage-members should be ErrUnauthorized, got %v", err)
	}
}
