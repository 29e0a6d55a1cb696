package domain

import "github.com/google/uuid"

// Resource names an editable area of the workspace for authorization checks.
type Resource string

const (
	ResourceTests     Resource = "tests"
	ResourceOffers    Resource = "offers"
	ResourceFinancial Resource = "financial"
	ResourceMembers   Resource = "members"
)

// PermissionSet is six independent capability flags stored per member. The
// JSON tags match the jsonb column layout. FullAccess overrides the other
// flags at authorization time regardless of what else is stored; the
// exclusivity between FullAccess and the granular flags is only a
// convenience applied when a set is edited (see Normalize).
type PermissionSet struct {
	ViewOnly      bool `json:"view_only,omitempty"`
	EditTests     bool `json:"edit_tests,omitempty"`
	EditOffers    bool `json:"edit_offers,omitempty"`
	EditFinancial bool `json:"edit_financial,omitempty"`
	ManageMembers bool `json:"manage_members,omitempty"`
	FullAccess    bool `json:"full_access,omitempty"`
}

// Normalize applies the editing rule that FullAccess and the granular flags
// are mutually exclusive: when FullAccess is set, everything else is cleared.
func (p PermissionSet) Normalize() PermissionSet {
	if p.FullAccess {
		return PermissionSet{FullAccess: true}
	}
	return p
}

// Grant is the resolved authorization state for a caller in the current
// workspace. It is passed explicitly into every gated operation rather than
// living in ambient session state.
type Grant struct {
	WorkspaceID uuid.UUID
	IsOwner     bool
	Permissions PermissionSet
}

// CanEdit answers whether the grant allows mutating the given resource.
// Owners and full-access holders can edit everything; otherwise the
// resource-specific flag decides. ViewOnly never grants edit rights.
func (g Grant) CanEdit(r Resource) bool {
	if g.IsOwner || g.Permissions.FullAccess {
		return true
	}
	switch r {
	case ResourceTests:
		return g.Permissions.EditTests
	case ResourceOffers:
		return g.Permissions.EditOffers
	case ResourceFinancial:
		return g.Permissions.EditFinancial
	case ResourceMembers:
		return g.Permissions.ManageMembers
	}
	return false
}

// CanView is always true for a resolved caller: viewing is never gated.
func (g Grant) CanView() bool {
	return true
}
