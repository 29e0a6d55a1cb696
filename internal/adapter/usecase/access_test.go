package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tracklab/internal/core/domain"
	"tracklab/internal/core/port"
	"tracklab/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestResolvePermissionsOwner ensures a workspace owner resolves to a
// full-access grant without touching the member table.
func TestResolvePermissionsOwner(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	identity := domain.Identity{ID: uuid.New(), Email: "owner@example.com"}
	ws := &domain.Workspace{ID: uuid.New(), OwnerID: identity.ID}

	repo.EXPECT().WorkspaceByOwner(mock.Anything, identity.ID).Return(ws, nil)

	svc := NewAccessService(repo, FailClosed, discardLogger())

	grant, err := svc.ResolvePermissions(context.Background(), identity)
	if err != nil {
		t.Fatalf("ResolvePermissions error: %v", err)
	}
	if !grant.IsOwner {
		t.Fatal("owner should resolve to an owner grant")
	}
	if grant.WorkspaceID != ws.ID {
		t.Fatalf("grant workspace = %s, want %s", grant.WorkspaceID, ws.ID)
	}
	if !grant.Permissions.FullAccess {
		t.Fatal("owner grant should carry full access")
	}
}

// TestResolvePermissionsMember ensures membership in someone else's workspace
// wins over provisioning a new one.
func TestResolvePermissionsMember(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	identity := domain.Identity{ID: uuid.New(), Email: "member@example.com"}
	member := &domain.Member{
		ID:          uuid.New(),
		WorkspaceID: uuid.New(),
		UserID:      identity.ID,
		Permissions: domain.PermissionSet{EditTests: true},
	}

	repo.EXPECT().WorkspaceByOwner(mock.Anything, identity.ID).Return(nil, nil)
	repo.EXPECT().MemberByUser(mock.Anything, identity.ID).Return(member, nil)

	svc := NewAccessService(repo, FailClosed, discardLogger())

	grant, err := svc.ResolvePermissions(context.Background(), identity)
	if err != nil {
		t.Fatalf("ResolvePermissions error: %v", err)
	}
	if grant.IsOwner {
		t.Fatal("member should not resolve to an owner grant")
	}
	if grant.WorkspaceID != member.WorkspaceID {
		t.Fatalf("grant workspace = %s, want %s", grant.WorkspaceID, member.WorkspaceID)
	}
	if !grant.Permissions.EditTests || grant.Permissions.FullAccess {
		t.Fatalf("grant should carry the stored permission set, got %+v", grant.Permissions)
	}
}

// TestResolvePermissionsProvisions ensures a caller with neither a workspace
// nor a membership gets one provisioned and becomes its owner.
func TestResolvePermissionsProvisions(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	identity := domain.Identity{ID: uuid.New(), Email: "new@example.com"}

	repo.EXPECT().WorkspaceByOwner(mock.Anything, identity.ID).Return(nil, nil)
	repo.EXPECT().MemberByUser(mock.Anything, identity.ID).Return(nil, nil)

	var created *domain.Workspace
	repo.EXPECT().
		CreateWorkspace(mock.Anything, mock.AnythingOfType("*domain.Workspace")).
		Run(func(ctx context.Context, ws *domain.Workspace) { created = ws }).
		Return(nil)

	svc := NewAccessService(repo, FailClosed, discardLogger())

	grant, err := svc.ResolvePermissions(context.Background(), identity)
	if err != nil {
		t.Fatalf("ResolvePermissions error: %v", err)
	}
	if created == nil {
		t.Fatal("expected a workspace to be created")
	}
	if created.OwnerID != identity.ID {
		t.Fatalf("created owner = %s, want %s", created.OwnerID, identity.ID)
	}
	if !grant.IsOwner || grant.WorkspaceID != created.ID {
		t.Fatalf("grant should own the created workspace, got %+v", grant)
	}
}

// TestResolvePermissionsProvisionRace ensures losing the provisioning race to
// a concurrent resolution still lands on the winner's workspace.
func TestResolvePermissionsProvisionRace(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	identity := domain.Identity{ID: uuid.New(), Email: "racer@example.com"}
	winner := &domain.Workspace{ID: uuid.New(), OwnerID: identity.ID}

	repo.EXPECT().WorkspaceByOwner(mock.Anything, identity.ID).Return(nil, nil).Once()
	repo.EXPECT().MemberByUser(mock.Anything, identity.ID).Return(nil, nil)
	repo.EXPECT().
		CreateWorkspace(mock.Anything, mock.AnythingOfType("*domain.Workspace")).
		Return(port.ErrWorkspaceExists)
	repo.EXPECT().WorkspaceByOwner(mock.Anything, identity.ID).Return(winner, nil).Once()

	svc := NewAccessService(repo, FailClosed, discardLogger())

	grant, err := svc.ResolvePermissions(context.Background(), identity)
	if err != nil {
		t.Fatalf("ResolvePermissions error: %v", err)
	}
	if grant.WorkspaceID != winner.ID {
		t.Fatalf("grant workspace = %s, want the winner %s", grant.WorkspaceID, winner.ID)
	}
	if !grant.IsOwner {
		t.Fatal("caller should own the surviving workspace")
	}
}

func TestResolvePermissionsFailOpen(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	identity := domain.Identity{ID: uuid.New(), Email: "user@example.com"}

	repo.EXPECT().
		WorkspaceByOwner(mock.Anything, identity.ID).
		Return(nil, errors.New("connection refused"))

	svc := NewAccessService(repo, FailOpen, discardLogger())

	grant, err := svc.ResolvePermissions(context.Background(), identity)
	if err != nil {
		t.Fatalf("fail-open should swallow the store error, got %v", err)
	}
	if !grant.IsOwner || !grant.Permissions.FullAccess {
		t.Fatalf("fail-open should grant full access, got %+v", grant)
	}
}

func TestResolvePermissionsFailClosed(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	identity := domain.Identity{ID: uuid.New(), Email: "user@example.com"}

	repo.EXPECT().
		WorkspaceByOwner(mock.Anything, identity.ID).
		Return(nil, errors.New("connection refused"))

	svc := NewAccessService(repo, FailClosed, discardLogger())

	_, err := svc.ResolvePermissions(context.Background(), identity)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("fail-closed should reject with ErrUnauthorized, got %v", err)
	}
}

func TestUpdateMemberPermissionsNormalizes(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	grant := domain.Grant{WorkspaceID: uuid.New(), IsOwner: true}
	memberID := uuid.New()

	// Full access must reach the store with the granular flags cleared.
	want := domain.PermissionSet{FullAccess: true}
	repo.EXPECT().
		UpdateMemberPermissions(mock.Anything, grant.WorkspaceID, memberID, want).
		Return(&domain.Member{ID: memberID, Permissions: want}, nil)

	svc := NewAccessService(repo, FailClosed, discardLogger())

	member, err := svc.UpdateMemberPermissions(context.Background(), grant, memberID,
		domain.PermissionSet{FullAccess: true, EditTests: true, ViewOnly: true})
	if err != nil {
		t.Fatalf("UpdateMemberPermissions error: %v", err)
	}
	if !member.Permissions.FullAccess {
		t.Fatalf("stored permissions = %+v, want full access", member.Permissions)
	}
}

func TestUpdateMemberPermissionsUnknownMember(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	grant := domain.Grant{WorkspaceID: uuid.New(), IsOwner: true}
	memberID := uuid.New()

	repo.EXPECT().
		UpdateMemberPermissions(mock.Anything, grant.WorkspaceID, memberID, mock.Anything).
		Return(nil, nil)

	svc := NewAccessService(repo, FailClosed, discardLogger())

	_, err := svc.UpdateMemberPermissions(context.Background(), grant, memberID, domain.PermissionSet{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown member should be ErrNotFound, got %v", err)
	}
}

func TestMemberManagementRequiresPermission(t *testing.T) {
	repo := mocks.NewMockWorkspaceRepository(t)
	grant := domain.Grant{
		WorkspaceID: uuid.New(),
		Permissions: domain.PermissionSet{EditTests: true},
	}

	svc := NewAccessService(repo, FailClosed, discardLogger())

	if _, err := svc.UpdateMemberPermissions(context.Background(), grant, uuid.New(), domain.PermissionSet{}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("update without manage-members should be ErrUnauthorized, got %v", err)
	}
	if err := svc.RemoveMember(context.Background(), grant, uuid.New()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("remove without manage-members should be ErrUnauthorized, got %v", err)
	}
}
