package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tracklab/internal/core/domain"
)

// AccessUseCase resolves a caller's authorization state and manages the
// workspace member list. This is the primary port every gated operation
// starts from.
type AccessUseCase interface {
	// ResolvePermissions returns the caller's grant for the current
	// workspace, auto-provisioning a workspace on first resolution.
	ResolvePermissions(ctx context.Context, identity domain.Identity) (domain.Grant, error)
	Members(ctx context.Context, grant domain.Grant) ([]domain.Member, error)
	UpdateMemberPermissions(ctx context.Context, grant domain.Grant, memberID uuid.UUID, perms domain.PermissionSet) (*domain.Member, error)
	RemoveMember(ctx context.Context, grant domain.Grant, memberID uuid.UUID) error
}

// IssueInvitationInput carries the invitee email and proposed permissions.
type IssueInvitationInput struct {
	Email       string
	Permissions domain.PermissionSet
}

// InvitationPreview is what an unauthenticated invitee sees after token
// validation. Validation performs no mutation.
type InvitationPreview struct {
	Email       string
	WorkspaceID uuid.UUID
	Permissions domain.PermissionSet
	ExpiresAt   time.Time
}

// AcceptResult is returned after a successful acceptance on either path.
type AcceptResult struct {
	Member  domain.Member
	Session Session
}

// InvitationUseCase drives the invitation state machine:
// issued -> (expired | revoked | accepted), all terminal.
type InvitationUseCase interface {
	Issue(ctx context.Context, grant domain.Grant, identity domain.Identity, input IssueInvitationInput) (*domain.Invitation, error)
	Pending(ctx context.Context, grant domain.Grant) ([]domain.Invitation, error)
	// Validate is unauthenticated-reachable by token only.
	Validate(ctx context.Context, token string) (*InvitationPreview, error)
	// AcceptNew creates a fresh identity for the invitee email and joins
	// the workspace. If the email turns out to be registered already it
	// returns domain.ErrEmailTaken so the caller can switch to AcceptExisting.
	AcceptNew(ctx context.Context, token, password string) (*AcceptResult, error)
	// AcceptExisting authenticates a pre-existing identity and joins the
	// workspace.
	AcceptExisting(ctx context.Context, token, password string) (*AcceptResult, error)
	Revoke(ctx context.Context, grant domain.Grant, invitationID uuid.UUID) error
}

// ManualTransactionInput is a user-entered expense or revenue entry not tied
// to any test.
type ManualTransactionInput struct {
	Type        domain.TransactionType
	Amount      decimal.Decimal
	Description string
}

// FinanceUseCase exposes the ledger and its mutations.
type FinanceUseCase interface {
	Ledger(ctx context.Context, grant domain.Grant) (*domain.Ledger, error)
	AddManualTransaction(ctx context.Context, grant domain.Grant, input ManualTransactionInput) (*domain.Transaction, error)
	// UpdateCapital re-authenticates the caller before touching the
	// baseline. A failed password check mutates and persists nothing.
	UpdateCapital(ctx context.Context, grant domain.Grant, identity domain.Identity, amount decimal.Decimal, password string) (*domain.Ledger, error)
}

// Reconciler keeps the ledger consistent with the test set. TestUseCase
// calls it after every campaign mutation.
type Reconciler interface {
	// ReconcileWorkspace recomputes the derived ledger fields from the
	// full current test set.
	ReconcileWorkspace(ctx context.Context, workspaceID uuid.UUID) error
}

// TestInput carries the mutable fields of a campaign test.
type TestInput struct {
	OfferID        *uuid.UUID
	StartDate      time.Time
	ProductName    string
	Niche          string
	TrafficSource  string
	LandingPageURL string
	InvestedAmount decimal.Decimal
	ReturnValue    decimal.Decimal
	Impressions    int64
	Clicks         int64
	Conversions    int64
	Status         domain.TestStatus
	Observations   string
}

// TestUseCase is the campaign-test CRUD surface. Mutations are gated on the
// edit-tests permission and feed the reconciler.
type TestUseCase interface {
	List(ctx context.Context, grant domain.Grant) ([]domain.Test, error)
	Create(ctx context.Context, grant domain.Grant, input TestInput) (*domain.Test, error)
	Update(ctx context.Context, grant domain.Grant, id uuid.UUID, input TestInput) (*domain.Test, error)
	Delete(ctx context.Context, grant domain.Grant, id uuid.UUID) error
}

// OfferInput carries the mutable fields of an offer.
type OfferInput struct {
	Name            string
	Niche           string
	LibraryLink     string
	LandingPageLink string
	CheckoutLink    string
}

// OfferUseCase is the offer CRUD surface, gated on edit-offers.
type OfferUseCase interface {
	List(ctx context.Context, grant domain.Grant) ([]domain.Offer, error)
	Create(ctx context.Context, grant domain.Grant, input OfferInput) (*domain.Offer, error)
	Update(ctx context.Context, grant domain.Grant, id uuid.UUID, input OfferInput) (*domain.Offer, error)
	Delete(ctx context.Context, grant domain.Grant, id uuid.UUID) error
}

// DashboardOverview bundles aggregate metrics with the offer ranking.
type DashboardOverview struct {
	Metrics domain.Metrics
	Ranking []domain.OfferStats
}

// DashboardUseCase is a stateless read over the workspace's tests and offers.
type DashboardUseCase interface {
	Overview(ctx context.Context, grant domain.Grant) (*DashboardOverview, error)
}
