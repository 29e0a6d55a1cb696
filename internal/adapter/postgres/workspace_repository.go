package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tracklab/internal/core/domain"
	"tracklab/internal/core/port"
)

const uniqueViolation = "23505"

// WorkspaceRepository implements port.WorkspaceRepository using pgxpool.
// Member permission sets are stored as jsonb.
type WorkspaceRepository struct {
	pool *pgxpool.Pool
}

// NewWorkspaceRepository returns a new repository instance.
func NewWorkspaceRepository(pool *pgxpool.Pool) *WorkspaceRepository {
	return &WorkspaceRepository{pool: pool}
}

// WorkspaceByOwner returns the workspace owned by the user, or (nil, nil).
func (r *WorkspaceRepository) WorkspaceByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Workspace, error) {
	var ws domain.Workspace
	err := r.pool.QueryRow(ctx,
		`SELECT id, owner_id, name, created_at, updated_at FROM workspaces WHERE owner_id = $1`,
		ownerID).Scan(&ws.ID, &ws.OwnerID, &ws.Name, &ws.CreatedAt, &ws.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

// CreateWorkspace inserts a workspace. The unique constraint on owner_id
// turns a concurrent double-provision into port.ErrWorkspaceExists.
func (r *WorkspaceRepository) CreateWorkspace(ctx context.Context, ws *domain.Workspace) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO workspaces (id, owner_id, name, created_at, updated_at) VALUES ($1,$2,$3,$4,$5)`,
		ws.ID, ws.OwnerID, ws.Name, ws.CreatedAt, ws.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return port.ErrWorkspaceExists
	}
	return err
}

const memberColumns = `id, workspace_id, user_id, email, role, permissions, invited_by, joined_at, created_at`

func scanMember(row pgx.CollectableRow) (domain.Member, error) {
	var (
		m        domain.Member
		permsRaw []byte
	)
	err := row.Scan(&m.ID, &m.WorkspaceID, &m.UserID, &m.Email, &m.Role, &permsRaw, &m.InvitedBy, &m.JoinedAt, &m.CreatedAt)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(permsRaw, &m.Permissions); err != nil {
		return m, err
	}
	return m, nil
}

// MemberByUser returns the membership row for a user, or (nil, nil).
func (r *WorkspaceRepository) MemberByUser(ctx context.Context, userID uuid.UUID) (*domain.Member, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+memberColumns+` FROM workspace_members WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	m, err := pgx.CollectOneRow(rows, scanMember)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMembers returns the workspace's members, newest first.
func (r *WorkspaceRepository) ListMembers(ctx context.Context, workspaceID uuid.UUID) ([]domain.Member, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+memberColumns+` FROM workspace_members WHERE workspace_id = $1 ORDER BY created_at DESC`,
		workspaceID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanMember)
}

// UpdateMemberPermissions replaces a member's stored permission set and
// returns the updated row, or (nil, nil) if the member is not in the
// workspace.
func (r *WorkspaceRepository) UpdateMemberPermissions(ctx context.Context, workspaceID, memberID uuid.UUID, perms domain.PermissionSet) (*domain.Member, error) {
	permsJSON, err := json.Marshal(perms)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `UPDATE workspace_members SET permissions = $3
		WHERE workspace_id = $1 AND id = $2
		RETURNING `+memberColumns,
		workspaceID, memberID, permsJSON)
	if err != nil {
		return nil, err
	}
	m, err := pgx.CollectOneRow(rows, scanMember)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// RemoveMember deletes a member from the workspace.
func (r *WorkspaceRepository) RemoveMember(ctx context.Context, workspaceID, memberID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM workspace_members WHERE workspace_id = $1 AND id = $2`, workspaceID, memberID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateInvitation inserts a pending invitation.
func (r *WorkspaceRepository) CreateInvitation(ctx context.Context, inv *domain.Invitation) error {
	permsJSON, err := json.Marshal(inv.Permissions)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO member_invitations
		(id, workspace_id, email, permissions, invited_by, token, expires_at, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		inv.ID, inv.WorkspaceID, inv.Email, permsJSON, inv.InvitedBy, inv.Token, inv.ExpiresAt, inv.CreatedAt)
	return err
}

// LiveInvitationExists reports whether an un-accepted, un-expired invitation
// already exists for the email in the workspace.
func (r *WorkspaceRepository) LiveInvitationExists(ctx context.Context, workspaceID uuid.UUID, email string, now time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (
		SELECT 1 FROM member_invitations
		WHERE workspace_id = $1 AND email = $2 AND accepted_at IS NULL AND expires_at > $3)`,
		workspaceID, email, now).Scan(&exists)
	return exists, err
}

const invitationColumns = `id, workspace_id, email, permissions, invited_by, token, expires_at, accepted_at, created_at`

func scanInvitation(row pgx.CollectableRow) (domain.Invitation, error) {
	var (
		inv      domain.Invitation
		permsRaw []byte
	)
	err := row.Scan(&inv.ID, &inv.WorkspaceID, &inv.Email, &permsRaw, &inv.InvitedBy,
		&inv.Token, &inv.ExpiresAt, &inv.AcceptedAt, &inv.CreatedAt)
	if err != nil {
		return inv, err
	}
	if err := json.Unmarshal(permsRaw, &inv.Permissions); err != nil {
		return inv, err
	}
	return inv, nil
}

// PendingInvitations returns the workspace's un-accepted, un-expired
// invitations, newest first.
func (r *WorkspaceRepository) PendingInvitations(ctx context.Context, workspaceID uuid.UUID, now time.Time) ([]domain.Invitation, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invitationColumns+` FROM member_invitations
		WHERE workspace_id = $1 AND accepted_at IS NULL AND expires_at > $2
		ORDER BY created_at DESC`,
		workspaceID, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanInvitation)
}

// InvitationByToken looks up an invitation whose acceptance timestamp is
// still null. A consumed or unknown token both return (nil, nil).
func (r *WorkspaceRepository) InvitationByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+invitationColumns+` FROM member_invitations WHERE token = $1 AND accepted_at IS NULL`,
		token)
	if err != nil {
		return nil, err
	}
	inv, err := pgx.CollectOneRow(rows, scanInvitation)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// DeleteInvitation hard-deletes a pending invitation.
func (r *WorkspaceRepository) DeleteInvitation(ctx context.Context, workspaceID, invitationID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM member_invitations WHERE workspace_id = $1 AND id = $2`, workspaceID, invitationID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AcceptInvitation consumes the token inside one database transaction: the
// invitation row is locked, re-validated, the member inserted and the
// acceptance timestamp set. Of two concurrent attempts on the same token the
// second observes accepted_at already set and gets domain.ErrNotFound.
func (r *WorkspaceRepository) AcceptInvitation(ctx context.Context, token string, identity domain.Identity) (*domain.Member, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var (
		inv      domain.Invitation
		permsRaw []byte
	)
	err = tx.QueryRow(ctx, `SELECT id, workspace_id, email, permissions, invited_by, expires_at, accepted_at
		FROM member_invitations WHERE token = $1 FOR UPDATE`, token).
		Scan(&inv.ID, &inv.WorkspaceID, &inv.Email, &permsRaw, &inv.InvitedBy, &inv.ExpiresAt, &inv.AcceptedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if inv.AcceptedAt != nil {
		err = domain.ErrNotFound
		return nil, err
	}
	now := time.Now().UTC()
	if now.After(inv.ExpiresAt) {
		err = domain.ErrExpired
		return nil, err
	}
	if err = json.Unmarshal(permsRaw, &inv.Permissions); err != nil {
		return nil, err
	}

	member := &domain.Member{
		ID:          uuid.New(),
		WorkspaceID: inv.WorkspaceID,
		UserID:      identity.ID,
		Email:       inv.Email,
		Role:        domain.RoleMember,
		Permissions: inv.Permissions,
		InvitedBy:   &inv.InvitedBy,
		JoinedAt:    now,
		CreatedAt:   now,
	}
	_, err = tx.Exec(ctx, `INSERT INTO workspace_members
		(id, workspace_id, user_id, email, role, permissions, invited_by, joined_at, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		member.ID, member.WorkspaceID, member.UserID, member.Email, member.Role,
		permsRaw, member.InvitedBy, member.JoinedAt, member.CreatedAt)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx,
		`UPDATE member_invitations SET accepted_at = $2 WHERE id = $1`, inv.ID, now)
	if err != nil {
		return nil, err
	}
	return member, nil
}
