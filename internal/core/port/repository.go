package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"tracklab/internal/core/domain"
)

// ErrWorkspaceExists is returned by CreateWorkspace when the owner already
// has a workspace. Callers treat it as "already provisioned, proceed".
var ErrWorkspaceExists = errors.New("workspace already exists for owner")

// TestRepository is the persistence port for campaign tests. Implementations
// must scope every operation to the given workspace. Lookup methods return
// (nil, nil) when no row matches.
type TestRepository interface {
	ListTests(ctx context.Context, workspaceID uuid.UUID) ([]domain.Test, error)
	GetTest(ctx context.Context, workspaceID, id uuid.UUID) (*domain.Test, error)
	// CreateTestWithPostings inserts the test row together with its
	// auto-generated ledger transactions inside a single database
	// transaction, so a partial failure cannot commit a test without its
	// postings or postings without their test.
	CreateTestWithPostings(ctx context.Context, test *domain.Test, postings []domain.Transaction) error
	UpdateTest(ctx context.Context, test *domain.Test) error
	// DeleteTestCascade removes the test and every transaction referencing
	// it inside a single database transaction, so a partial failure cannot
	// leave orphaned ledger entries.
	DeleteTestCascade(ctx context.Context, workspaceID, id uuid.UUID) error
}

// OfferRepository is the persistence port for offers.
type OfferRepository interface {
	ListOffers(ctx context.Context, workspaceID uuid.UUID) ([]domain.Offer, error)
	GetOffer(ctx context.Context, workspaceID, id uuid.UUID) (*domain.Offer, error)
	CreateOffer(ctx context.Context, offer *domain.Offer) error
	UpdateOffer(ctx context.Context, offer *domain.Offer) error
	DeleteOffer(ctx context.Context, workspaceID, id uuid.UUID) error
}

// FinanceRepository is the persistence port for the ledger. GetOrCreateLedger
// provisions a zeroed ledger row on first access; the upsert keys on the
// workspace so concurrent first reads collapse into one row.
type FinanceRepository interface {
	GetOrCreateLedger(ctx context.Context, workspaceID uuid.UUID) (*domain.Ledger, error)
	// SaveLedger overwrites the ledger's capital, balance and derived
	// totals. Each save is a full-state overwrite, which is what makes the
	// debounced latest-wins write safe.
	SaveLedger(ctx context.Context, ledger *domain.Ledger) error
	AddTransaction(ctx context.Context, tx *domain.Transaction) error
}

// WorkspaceRepository is the persistence port for workspaces, members and
// invitations.
type WorkspaceRepository interface {
	WorkspaceByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Workspace, error)
	// CreateWorkspace inserts a workspace, returning ErrWorkspaceExists on
	// the owner uniqueness constraint.
	CreateWorkspace(ctx context.Context, ws *domain.Workspace) error
	MemberByUser(ctx context.Context, userID uuid.UUID) (*domain.Member, error)
	ListMembers(ctx context.Context, workspaceID uuid.UUID) ([]domain.Member, error)
	UpdateMemberPermissions(ctx context.Context, workspaceID, memberID uuid.UUID, perms domain.PermissionSet) (*domain.Member, error)
	RemoveMember(ctx context.Context, workspaceID, memberID uuid.UUID) error

	CreateInvitation(ctx context.Context, inv *domain.Invitation) error
	// LiveInvitationExists reports whether an un-accepted, un-expired
	// invitation already exists for the email in the workspace.
	LiveInvitationExists(ctx context.Context, workspaceID uuid.UUID, email string, now time.Time) (bool, error)
	PendingInvitations(ctx context.Context, workspaceID uuid.UUID, now time.Time) ([]domain.Invitation, error)
	// InvitationByToken looks up an invitation whose acceptance timestamp
	// is still null. Consumed or unknown tokens both return (nil, nil).
	InvitationByToken(ctx context.Context, token string) (*domain.Invitation, error)
	DeleteInvitation(ctx context.Context, workspaceID, invitationID uuid.UUID) error
	// AcceptInvitation re-validates the token, inserts the member row and
	// marks the invitation accepted as one atomic unit. It returns
	// domain.ErrNotFound when the token is unknown or already consumed and
	// domain.ErrExpired when past expiry.
	AcceptInvitation(ctx context.Context, token string, identity domain.Identity) (*domain.Member, error)
}
