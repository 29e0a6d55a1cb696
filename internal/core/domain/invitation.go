package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvitationTTL is how long an invitation link stays valid.
const InvitationTTL = 7 * 24 * time.Hour

// Invitation is a single-use, token-addressed offer to join a workspace with
// a proposed permission set. Once accepted or revoked it is terminal:
// acceptance sets AcceptedAt, revocation deletes the row outright.
type Invitation struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	Email       string
	Permissions PermissionSet
	InvitedBy   uuid.UUID
	Token       string
	ExpiresAt   time.Time
	AcceptedAt  *time.Time
	CreatedAt   time.Time
}

// Expired reports whether the invitation is past its expiry at the given
// instant. Plain comparison, no grace period.
func (i Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// Pending reports whether the invitation can still be accepted.
func (i Invitation) Pending(now time.Time) bool {
	return i.AcceptedAt == nil && !i.Expired(now)
}
