package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tracklab/internal/core/domain"
	"tracklab/internal/core/port"
)

// FailureMode selects what ResolvePermissions does when membership cannot be
// resolved because of an unexpected store failure.
type FailureMode int

const (
	// FailOpen grants owner-level full access on resolution failure so a
	// transient store error never locks the caller out of their own data.
	// This mirrors the product's original behaviour and is the default.
	FailOpen FailureMode = iota
	// FailClosed rejects the caller with domain.ErrUnauthorized instead.
	FailClosed
)

// AccessService resolves callers to permission grants and manages the member
// list. It implements port.AccessUseCase.
type AccessService struct {
	repo        port.WorkspaceRepository
	failureMode FailureMode
	logger      *slog.Logger

	now func() time.Time
}

// NewAccessService creates the access-control service. The failure mode is
// an explicit, named policy so swapping FailOpen for FailClosed is a config
// change, not a code hunt.
func NewAccessService(repo port.WorkspaceRepository, mode FailureMode, logger *slog.Logger) *AccessService {
	return &AccessService{repo: repo, failureMode: mode, logger: logger, now: time.Now}
}

// ResolvePermissions resolves the caller to a grant. Owners get full access;
// members of someone else's workspace get their stored permission set; a
// caller with neither gets a workspace auto-provisioned and becomes its
// owner. Provisioning is idempotent: a concurrent duplicate insert surfaces
// as port.ErrWorkspaceExists and resolves to the already created workspace.
func (s *AccessService) ResolvePermissions(ctx context.Context, identity domain.Identity) (domain.Grant, error) {
	ws, err := s.repo.WorkspaceByOwner(ctx, identity.ID)
	if err != nil {
		return s.resolveFailure(identity, err)
	}
	if ws != nil {
		return ownerGrant(ws.ID), nil
	}

	member, err := s.repo.MemberByUser(ctx, identity.ID)
	if err != nil {
		return s.resolveFailure(identity, err)
	}
	if member != nil {
		return domain.Grant{
			WorkspaceID: member.WorkspaceID,
			IsOwner:     false,
			Permissions: member.Permissions,
		}, nil
	}

	created := &domain.Workspace{
		ID:        uuid.New(),
		OwnerID:   identity.ID,
		Name:      "My Workspace",
		CreatedAt: s.now().UTC(),
		UpdatedAt: s.now().UTC(),
	}
	err = s.repo.CreateWorkspace(ctx, created)
	if errors.Is(err, port.ErrWorkspaceExists) {
		// Lost the provisioning race; the other resolution won.
		existing, lookupErr := s.repo.WorkspaceByOwner(ctx, identity.ID)
		if lookupErr != nil || existing == nil {
			return s.resolveFailure(identity, lookupErr)
		}
		return ownerGrant(existing.ID), nil
	}
	if err != nil {
		return s.resolveFailure(identity, err)
	}
	return ownerGrant(created.ID), nil
}

func ownerGrant(workspaceID uuid.UUID) domain.Grant {
	return domain.Grant{
		WorkspaceID: workspaceID,
		IsOwner:     true,
		Permissions: domain.PermissionSet{FullAccess: true},
	}
}

func (s *AccessService) resolveFailure(identity domain.Identity, err error) (domain.Grant, error) {
	if s.failureMode == FailClosed {
		return domain.Grant{}, fmt.Errorf("%w: resolve permissions: %v", domain.ErrUnauthorized, err)
	}
	s.logger.Warn("permission resolution failed, failing open",
		slog.String("user_id", identity.ID.String()),
		slog.Any("error", err))
	return domain.Grant{IsOwner: true, Permissions: domain.PermissionSet{FullAccess: true}}, nil
}

// Members lists the workspace's members, newest first. Viewing is never
// gated.
func (s *AccessService) Members(ctx context.Context, grant domain.Grant) ([]domain.Member, error) {
	return s.repo.ListMembers(ctx, grant.WorkspaceID)
}

// UpdateMemberPermissions replaces a member's permission set. The stored set
// is normalized so full access clears the granular flags.
func (s *AccessService) UpdateMemberPermissions(ctx context.Context, grant domain.Grant, memberID uuid.UUID, perms domain.PermissionSet) (*domain.Member, error) {
	if !grant.CanEdit(domain.ResourceMembers) {
		return nil, domain.ErrUnauthorized
	}
	member, err := s.repo.UpdateMemberPermissions(ctx, grant.WorkspaceID, memberID, perms.Normalize())
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrNotFound
	}
	return member, nil
}

// RemoveMember deletes a member from the workspace.
func (s *AccessService) RemoveMember(ctx context.Context, grant domain.Grant, memberID uuid.UUID) error {
	if !grant.CanEdit(domain.ResourceMembers) {
		return domain.ErrUnauthorized
	}
	return s.repo.RemoveMember(ctx, grant.WorkspaceID, memberID)
}
