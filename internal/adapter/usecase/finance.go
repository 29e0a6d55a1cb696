package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tracklab/internal/core/domain"
	"tracklab/internal/core/port"
)

// FinanceService maintains the ledger invariants as tests and manual
// transactions change. It implements port.FinanceUseCase and
// port.Reconciler.
//
// Recomputed ledger state is applied to an in-memory snapshot immediately
// and persisted through a debounced writer, so bursts of edits collapse into
// a single store write. The snapshot is authoritative for the session.
type FinanceService struct {
	repo   port.FinanceRepository
	tests  port.TestRepository
	ids    port.IdentityProvider
	writer *ledgerWriter
	logger *slog.Logger

	mu    sync.Mutex
	cache map[uuid.UUID]domain.Ledger

	now func() time.Time
}

// NewFinanceService creates the reconciliation engine. debounce controls the
// quiet period before a recomputed ledger is persisted.
func NewFinanceService(repo port.FinanceRepository, tests port.TestRepository, ids port.IdentityProvider, debounce time.Duration, logger *slog.Logger) *FinanceService {
	s := &FinanceService{
		repo:   repo,
		tests:  tests,
		ids:    ids,
		logger: logger,
		cache:  make(map[uuid.UUID]domain.Ledger),
		now:    time.Now,
	}
	s.writer = newLedgerWriter(debounce, repo.SaveLedger, logger)
	return s
}

// Close flushes any pending debounced writes. Call on shutdown.
func (s *FinanceService) Close(ctx context.Context) {
	s.writer.Flush(ctx)
}

// Ledger returns the workspace ledger with its transaction log. When a
// fresher in-memory snapshot exists its derived fields overlay the stored
// row.
func (s *FinanceService) Ledger(ctx context.Context, grant domain.Grant) (*domain.Ledger, error) {
	ledger, err := s.repo.GetOrCreateLedger(ctx, grant.WorkspaceID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	if cached, ok := s.cache[grant.WorkspaceID]; ok {
		ledger.InitialCapital = cached.InitialCapital
		ledger.CurrentBalance = cached.CurrentBalance
		ledger.TotalInvestment = cached.TotalInvestment
		ledger.TotalRevenue = cached.TotalRevenue
		ledger.NetProfit = cached.NetProfit
	}
	s.mu.Unlock()
	return ledger, nil
}

// AddManualTransaction appends a manual expense or revenue entry and moves
// the balance by its amount. Campaign-derived totals are untouched. The
// transaction insert is a direct user write and its failure is surfaced; the
// balance update rides the debounced writer.
func (s *FinanceService) AddManualTransaction(ctx context.Context, grant domain.Grant, input port.ManualTransactionInput) (*domain.Transaction, error) {
	if !grant.CanEdit(domain.ResourceFinancial) {
		return nil, domain.ErrUnauthorized
	}
	if input.Type != domain.TransactionExpense && input.Type != domain.TransactionRevenue {
		return nil, fmt.Errorf("%w: manual transactions must be expense or revenue", domain.ErrValidation)
	}
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}

	tx := &domain.Transaction{
		ID:          uuid.New(),
		WorkspaceID: grant.WorkspaceID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        s.now().UTC(),
	}
	if err := s.repo.AddTransaction(ctx, tx); err != nil {
		return nil, err
	}

	ledger, err := s.snapshot(ctx, grant.WorkspaceID)
	if err != nil {
		return nil, err
	}
	ledger.Apply(*tx)
	s.commit(ledger)
	return tx, nil
}

// UpdateCapital sets the baseline capital after a step-up password check.
// A wrong password leaves the capital untouched and persists nothing; the
// caller may retry. On success the ledger is persisted synchronously and any
// stale debounced write is dropped.
func (s *FinanceService) UpdateCapital(ctx context.Context, grant domain.Grant, identity domain.Identity, amount decimal.Decimal, password string) (*domain.Ledger, error) {
	if !grant.CanEdit(domain.ResourceFinancial) {
		return nil, domain.ErrUnauthorized
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: capital cannot be negative", domain.ErrValidation)
	}
	if err := s.ids.Reauthenticate(ctx, identity, password); err != nil {
		return nil, err
	}

	ledger, err := s.snapshot(ctx, grant.WorkspaceID)
	if err != nil {
		return nil, err
	}
	ledger.SetCapital(amount)

	s.writer.Cancel(grant.WorkspaceID)
	if err := s.repo.SaveLedger(ctx, &ledger); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.cache[grant.WorkspaceID] = ledger
	s.mu.Unlock()
	return &ledger, nil
}

// ReconcileWorkspace recomputes the derived ledger fields by folding the
// full current test set, never by applying deltas. That bounds damage from
// interleaved writers to "briefly stale" rather than permanently divergent.
func (s *FinanceService) ReconcileWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	tests, err := s.tests.ListTests(ctx, workspaceID)
	if err != nil {
		return err
	}
	ledger, err := s.snapshot(ctx, workspaceID)
	if err != nil {
		return err
	}
	ledger.Recompute(tests)
	s.commit(ledger)
	return nil
}

// snapshot returns the current authoritative ledger state: the in-memory
// copy when present, otherwise the stored row.
func (s *FinanceService) snapshot(ctx context.Context, workspaceID uuid.UUID) (domain.Ledger, error) {
	s.mu.Lock()
	cached, ok := s.cache[workspaceID]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}
	ledger, err := s.repo.GetOrCreateLedger(ctx, workspaceID)
	if err != nil {
		return domain.Ledger{}, err
	}
	ledger.Transactions = nil
	return *ledger, nil
}

// commit applies the snapshot in memory and schedules the debounced write.
func (s *FinanceService) commit(ledger domain.Ledger) {
	s.mu.Lock()
	s.cache[ledger.WorkspaceID] = ledger
	s.mu.Unlock()
	s.writer.Schedule(ledger)
}
