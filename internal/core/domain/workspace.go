package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role distinguishes the workspace owner from invited members. The owner is
// never created through the invitation flow and cannot be demoted by it.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

// Workspace is the tenant boundary. Every test, offer, ledger entry and
// member belongs to exactly one workspace, and each user owns at most one.
type Workspace struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Member binds a non-owner identity to a workspace. Members are created only
// by accepting an invitation.
type Member struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	UserID      uuid.UUID
	Email       string
	Role        Role
	Permissions PermissionSet
	InvitedBy   *uuid.UUID
	JoinedAt    time.Time
	CreatedAt   time.Time
}

// Identity is the authenticated caller as reported by the identity provider.
type Identity struct {
	ID    uuid.UUID
	Email string
}
