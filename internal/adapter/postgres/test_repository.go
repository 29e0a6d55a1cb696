package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tracklab/internal/core/domain"
)

// TestRepository implements port.TestRepository using pgxpool.
type TestRepository struct {
	pool *pgxpool.Pool
}

// NewTestRepository returns a new repository instance.
func NewTestRepository(pool *pgxpool.Pool) *TestRepository {
	return &TestRepository{pool: pool}
}

const testColumns = `id, workspace_id, offer_id, start_date, product_name, niche, traffic_source,
	landing_page_url, invested_amount, return_value, impressions, clicks, conversions,
	status, observations, created_at`

func scanTest(row pgx.CollectableRow) (domain.Test, error) {
	var t domain.Test
	err := row.Scan(
		&t.ID,
		&t.WorkspaceID,
		&t.OfferID,
		&t.StartDate,
		&t.ProductName,
		&t.Niche,
		&t.TrafficSource,
		&t.LandingPageURL,
		&t.InvestedAmount,
		&t.ReturnValue,
		&t.Impressions,
		&t.Clicks,
		&t.Conversions,
		&t.Status,
		&t.Observations,
		&t.CreatedAt,
	)
	return t, err
}

// ListTests returns the workspace's tests, newest first.
func (r *TestRepository) ListTests(ctx context.Context, workspaceID uuid.UUID) ([]domain.Test, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+testColumns+` FROM tests WHERE workspace_id = $1 ORDER BY created_at DESC`,
		workspaceID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanTest)
}

// GetTest returns a test by id scoped to the workspace.
func (r *TestRepository) GetTest(ctx context.Context, workspaceID, id uuid.UUID) (*domain.Test, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+testColumns+` FROM tests WHERE workspace_id = $1 AND id = $2`,
		workspaceID, id)
	if err != nil {
		return nil, err
	}
	t, err := pgx.CollectOneRow(rows, scanTest)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTestWithPostings inserts the test row and its auto-generated
// ledger transactions in a single database transaction, so a partial
// failure cannot commit a test without its postings.
func (r *TestRepository) CreateTestWithPostings(ctx context.Context, t *domain.Test, postings []domain.Transaction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `INSERT INTO tests
		(id, workspace_id, offer_id, start_date, product_name, niche, traffic_source,
		 landing_page_url, invested_amount, return_value, impressions, clicks, conversions,
		 status, observations, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		t.ID, t.WorkspaceID, t.OfferID, t.StartDate, t.ProductName, t.Niche, t.TrafficSource,
		t.LandingPageURL, t.InvestedAmount, t.ReturnValue, t.Impressions, t.Clicks, t.Conversions,
		t.Status, t.Observations, t.CreatedAt); err != nil {
		return err
	}
	for _, p := range postings {
		if _, err = tx.Exec(ctx, `INSERT INTO transactions
			(id, workspace_id, type, amount, description, date, test_id)
			VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			p.ID, p.WorkspaceID, p.Type, p.Amount, p.Description, p.Date, p.TestID); err != nil {
			return err
		}
	}
	return nil
}

// UpdateTest overwrites the mutable columns of a test.
func (r *TestRepository) UpdateTest(ctx context.Context, t *domain.Test) error {
	tag, err := r.pool.Exec(ctx, `UPDATE tests SET
		offer_id = $3, start_date = $4, product_name = $5, niche = $6, traffic_source = $7,
		landing_page_url = $8, invested_amount = $9, return_value = $10, impressions = $11,
		clicks = $12, conversions = $13, status = $14, observations = $15
		WHERE workspace_id = $1 AND id = $2`,
		t.WorkspaceID, t.ID, t.OfferID, t.StartDate, t.ProductName, t.Niche, t.TrafficSource,
		t.LandingPageURL, t.InvestedAmount, t.ReturnValue, t.Impressions, t.Clicks, t.Conversions,
		t.Status, t.Observations)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteTestCascade removes the test and its linked ledger transactions in a
// single database transaction, closing the partial-failure window of doing
// it as two independent calls.
func (r *TestRepository) DeleteTestCascade(ctx context.Context, workspaceID, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx,
		`DELETE FROM transactions WHERE workspace_id = $1 AND test_id = $2`,
		workspaceID, id); err != nil {
		return err
	}
	var tag pgconn.CommandTag
	tag, err = tx.Exec(ctx,
		`DELETE FROM tests WHERE workspace_id = $1 AND id = $2`,
		workspaceID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrNotFound
		return err
	}
	return nil
}
