package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tracklab/internal/core/domain"
)

// OfferRepository implements port.OfferRepository using pgxpool.
type OfferRepository struct {
	pool *pgxpool.Pool
}

// NewOfferRepository returns a new repository instance.
func NewOfferRepository(pool *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{pool: pool}
}

const offerColumns = `id, workspace_id, name, niche, library_link, landing_page_link, checkout_link, created_at`

func scanOffer(row pgx.CollectableRow) (domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(
		&o.ID,
		&o.WorkspaceID,
		&o.Name,
		&o.Niche,
		&o.LibraryLink,
		&o.LandingPageLink,
		&o.CheckoutLink,
		&o.CreatedAt,
	)
	return o, err
}

// ListOffers returns the workspace's offers, newest first.
func (r *OfferRepository) ListOffers(ctx context.Context, workspaceID uuid.UUID) ([]domain.Offer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE workspace_id = $1 ORDER BY created_at DESC`,
		workspaceID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanOffer)
}

// GetOffer returns an offer by id scoped to the workspace.
func (r *OfferRepository) GetOffer(ctx context.Context, workspaceID, id uuid.UUID) (*domain.Offer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE workspace_id = $1 AND id = $2`,
		workspaceID, id)
	if err != nil {
		return nil, err
	}
	o, err := pgx.CollectOneRow(rows, scanOffer)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOffer inserts an offer.
func (r *OfferRepository) CreateOffer(ctx context.Context, o *domain.Offer) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO offers
		(id, workspace_id, name, niche, library_link, landing_page_link, checkout_link, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		o.ID, o.WorkspaceID, o.Name, o.Niche, o.LibraryLink, o.LandingPageLink, o.CheckoutLink, o.CreatedAt)
	return err
}

// UpdateOffer overwrites the mutable columns of an offer.
func (r *OfferRepository) UpdateOffer(ctx context.Context, o *domain.Offer) error {
	tag, err := r.pool.Exec(ctx, `UPDATE offers SET
		name = $3, niche = $4, library_link = $5, landing_page_link = $6, checkout_link = $7
		WHERE workspace_id = $1 AND id = $2`,
		o.WorkspaceID, o.ID, o.Name, o.Niche, o.LibraryLink, o.LandingPageLink, o.CheckoutLink)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteOffer removes an offer. The tests.offer_id foreign key is declared
// ON DELETE SET NULL, so referencing tests survive with the reference
// cleared.
func (r *OfferRepository) DeleteOffer(ctx context.Context, workspaceID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM offers WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
