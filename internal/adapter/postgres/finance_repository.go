package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tracklab/internal/core/domain"
)

// FinanceRepository implements port.FinanceRepository using pgxpool.
type FinanceRepository struct {
	pool *pgxpool.Pool
}

// NewFinanceRepository returns a new repository instance.
func NewFinanceRepository(pool *pgxpool.Pool) *FinanceRepository {
	return &FinanceRepository{pool: pool}
}

// GetOrCreateLedger returns the workspace ledger together with its
// transaction log, newest first. The upsert keys on workspace_id so
// concurrent first reads collapse into one row.
func (r *FinanceRepository) GetOrCreateLedger(ctx context.Context, workspaceID uuid.UUID) (*domain.Ledger, error) {
	ledger := &domain.Ledger{WorkspaceID: workspaceID}
	err := r.pool.QueryRow(ctx, `INSERT INTO financial_data (workspace_id)
		VALUES ($1)
		ON CONFLICT (workspace_id) DO UPDATE SET workspace_id = EXCLUDED.workspace_id
		RETURNING initial_capital, current_balance, total_investment, total_revenue, net_profit`,
		workspaceID).Scan(
		&ledger.InitialCapital,
		&ledger.CurrentBalance,
		&ledger.TotalInvestment,
		&ledger.TotalRevenue,
		&ledger.NetProfit,
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT id, workspace_id, type, amount, description, date, test_id
		FROM transactions WHERE workspace_id = $1 ORDER BY date DESC`, workspaceID)
	if err != nil {
		return nil, err
	}
	ledger.Transactions, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var t domain.Transaction
		err := row.Scan(&t.ID, &t.WorkspaceID, &t.Type, &t.Amount, &t.Description, &t.Date, &t.TestID)
		return t, err
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

// SaveLedger overwrites the ledger's capital, balance and derived totals.
// A full-state overwrite per write is what makes the debounced latest-wins
// persistence safe.
func (r *FinanceRepository) SaveLedger(ctx context.Context, ledger *domain.Ledger) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO financial_data
		(workspace_id, initial_capital, current_balance, total_investment, total_revenue, net_profit, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,now())
		ON CONFLICT (workspace_id) DO UPDATE SET
			initial_capital = EXCLUDED.initial_capital,
			current_balance = EXCLUDED.current_balance,
			total_investment = EXCLUDED.total_investment,
			total_revenue = EXCLUDED.total_revenue,
			net_profit = EXCLUDED.net_profit,
			updated_at = now()`,
		ledger.WorkspaceID, ledger.InitialCapital, ledger.CurrentBalance,
		ledger.TotalInvestment, ledger.TotalRevenue, ledger.NetProfit)
	return err
}

// AddTransaction appends a ledger entry.
func (r *FinanceRepository) AddTransaction(ctx context.Context, t *domain.Transaction) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO transactions
		(id, workspace_id, type, amount, description, date, test_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		t.ID, t.WorkspaceID, t.Type, t.Amount, t.Description, t.Date, t.TestID)
	return err
}
