package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"tracklab/internal/core/domain"
	"tracklab/internal/core/port"
	"tracklab/internal/core/port/mocks"
)

// financeFixture wires a FinanceService against mocks with a debounce long
// enough that nothing fires mid-test; persistence is observed through Close.
type financeFixture struct {
	svc   *FinanceService
	repo  *mocks.MockFinanceRepository
	tests *mocks.MockTestRepository
	ids   *mocks.MockIdentityProvider
}

func newFinanceFixture(t *testing.T) financeFixture {
	repo := mocks.NewMockFinanceRepository(t)
	tests := mocks.NewMockTestRepository(t)
	ids := mocks.NewMockIdentityProvider(t)
	svc := NewFinanceService(repo, tests, ids, time.Hour, discardLogger())
	return financeFixture{svc: svc, repo: repo, tests: tests, ids: ids}
}

func freshLedger(workspaceID uuid.UUID, capital int64) func(context.Context, uuid.UUID) (*domain.Ledger, error) {
	return func(ctx context.Context, id uuid.UUID) (*domain.Ledger, error) {
		c := decimal.NewFromInt(capital)
		return &domain.Ledger{
			WorkspaceID:     workspaceID,
			InitialCapital:  c,
			CurrentBalance:  c,
			TotalInvestment: decimal.Zero,
			TotalRevenue:    decimal.Zero,
			NetProfit:       decimal.Zero,
		}, nil
	}
}

// TestReconcileWorkspace verifies a reconcile folds the full test set into
// the derived totals and that the flush persists them.
func TestReconcileWorkspace(t *testing.T) {
	f := newFinanceFixture(t)
	workspaceID := uuid.New()
	test := domain.Test{
		ID:             uuid.New(),
		WorkspaceID:    workspaceID,
		ProductName:    "Creatine",
		InvestedAmount: decimal.NewFromInt(100),
		ReturnValue:    decimal.NewFromInt(150),
	}

	f.tests.EXPECT().ListTests(mock.Anything, workspaceID).Return([]domain.Test{test}, nil)
	f.repo.EXPECT().
		GetOrCreateLedger(mock.Anything, workspaceID).
		RunAndReturn(freshLedger(workspaceID, 0))

	if err := f.svc.ReconcileWorkspace(context.Background(), workspaceID); err != nil {
		t.Fatalf("ReconcileWorkspace error: %v", err)
	}

	var saved *domain.Ledger
	f.repo.EXPECT().
		SaveLedger(mock.Anything, mock.AnythingOfType("*domain.Ledger")).
		Run(func(ctx context.Context, l *domain.Ledger) { saved = l }).
		Return(nil).
		Once()
	f.svc.Close(context.Background())

	if saved == nil {
		t.Fatal("close should flush the reconciled ledger")
	}
	if !saved.TotalInvestment.Equal(decimal.NewFromInt(100)) ||
		!saved.TotalRevenue.Equal(decimal.NewFromInt(150)) ||
		!saved.NetProfit.Equal(decimal.NewFromInt(50)) ||
		!saved.CurrentBalance.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("flushed ledger = %+v, want 100/150/50/50", saved)
	}
}

func TestAddManualTransaction(t *testing.T) {
	f := newFinanceFixture(t)
	grant := ownerTestGrant()

	f.repo.EXPECT().
		GetOrCreateLedger(mock.Anything, grant.WorkspaceID).
		RunAndReturn(freshLedger(grant.WorkspaceID, 1000))

	var inserted *domain.Transaction
	f.repo.EXPECT().
		AddTransaction(mock.Anything, mock.AnythingOfType("*domain.Transaction")).
		Run(func(ctx context.Context, tx *domain.Transaction) { inserted = tx }).
		Return(nil).
		Once()

	tx, err := f.svc.AddManualTransaction(context.Background(), grant, port.ManualTransactionInput{
		Type:        domain.TransactionExpense,
		Amount:      decimal.NewFromInt(200),
		Description: "Office rent",
	})
	if err != nil {
		t.Fatalf("AddManualTransaction error: %v", err)
	}
	if inserted == nil || inserted.ID != tx.ID {
		t.Fatal("transaction should be inserted directly")
	}
	if tx.TestID != nil {
		t.Fatal("manual transactions carry no test link")
	}

	// The balance moved in the session snapshot.
	ledger, err := f.svc.Ledger(context.Background(), grant)
	if err != nil {
		t.Fatalf("Ledger error: %v", err)
	}
	if !ledger.CurrentBalance.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("balance = %s, want 800", ledger.CurrentBalance)
	}
	// Campaign-derived totals are untouched by manual entries.
	if !ledger.TotalInvestment.IsZero() || !ledger.TotalRevenue.IsZero() {
		t.Fatalf("manual entry must not move campaign totals, got %+v", ledger)
	}

	var saved *domain.Ledger
	f.repo.EXPECT().
		SaveLedger(mock.Anything, mock.AnythingOfType("*domain.Ledger")).
		Run(func(ctx context.Context, l *domain.Ledger) { saved = l }).
		Return(nil).
		Once()
	f.svc.Close(context.Background())

	if saved == nil || !saved.CurrentBalance.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("flushed balance should be 800, got %+v", saved)
	}
}

func TestAddManualTransactionValidation(t *testing.T) {
	f := newFinanceFixture(t)
	grant := ownerTestGrant()

	_, err := f.svc.AddManualTransaction(context.Background(), grant, port.ManualTransactionInput{
		Type:   domain.TransactionInvestment,
		Amount: decimal.NewFromInt(10),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("investment type should be ErrValidation, got %v", err)
	}

	_, err = f.svc.AddManualTransaction(context.Background(), grant, port.ManualTransactionInput{
		Type:   domain.TransactionExpense,
		Amount: decimal.Zero,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("zero amount should be ErrValidation, got %v", err)
	}

	viewer := domain.Grant{WorkspaceID: grant.WorkspaceID}
	_, err = f.svc.AddManualTransaction(context.Background(), viewer, port.ManualTransactionInput{
		Type:   domain.TransactionExpense,
		Amount: decimal.NewFromInt(10),
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("without edit-financial should be ErrUnauthorized, got %v", err)
	}
}

// TestUpdateCapital verifies the step-up path: the new baseline persists
// synchronously and no stale debounced write survives.
func TestUpdateCapital(t *testing.T) {
	f := newFinanceFixture(t)
	grant := ownerTestGrant()
	identity := domain.Identity{ID: uuid.New(), Email: "owner@example.com"}

	f.ids.EXPECT().Reauthenticate(mock.Anything, identity, "secret1").Return(nil)
	f.repo.EXPECT().
		GetOrCreateLedger(mock.Anything, grant.WorkspaceID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*domain.Ledger, error) {
			return &domain.Ledger{
				WorkspaceID:    grant.WorkspaceID,
				InitialCapital: decimal.NewFromInt(1000),
				CurrentBalance: decimal.NewFromInt(1050),
				NetProfit:      decimal.NewFromInt(50),
			}, nil
		})

	var saved *domain.Ledger
	f.repo.EXPECT().
		SaveLedger(mock.Anything, mock.AnythingOfType("*domain.Ledger")).
		Run(func(ctx context.Context, l *domain.Ledger) { saved = l }).
		Return(nil).
		Once()

	ledger, err := f.svc.UpdateCapital(context.Background(), grant, identity, decimal.NewFromInt(2000), "secret1")
	if err != nil {
		t.Fatalf("UpdateCapital error: %v", err)
	}
	if !ledger.InitialCapital.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("capital = %s, want 2000", ledger.InitialCapital)
	}
	if !ledger.CurrentBalance.Equal(decimal.NewFromInt(2050)) {
		t.Fatalf("balance = %s, want rebased 2050", ledger.CurrentBalance)
	}
	if saved == nil {
		t.Fatal("capital update must persist synchronously")
	}

	// Nothing left pending: the SaveLedger expectation above is Once.
	f.svc.Close(context.Background())
}

// TestUpdateCapitalWrongPassword ensures a failed step-up check mutates and
// persists nothing, and the caller can retry.
func TestUpdateCapitalWrongPassword(t *testing.T) {
	f := newFinanceFixture(t)
	grant := ownerTestGrant()
	identity := domain.Identity{ID: uuid.New(), Email: "owner@example.com"}

	f.ids.EXPECT().
		Reauthenticate(mock.Anything, identity, "wrong-pass").
		Return(domain.ErrInvalidCredentials)

	_, err := f.svc.UpdateCapital(context.Background(), grant, identity, decimal.NewFromInt(2000), "wrong-pass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}

	f.svc.Close(context.Background())
}

func TestUpdateCapitalNegative(t *testing.T) {
	f := newFinanceFixture(t)
	grant := ownerTestGrant()

	_, err := f.svc.UpdateCapital(context.Background(), grant, domain.Identity{ID: uuid.New()},
		decimal.NewFromInt(-1), "secret1")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("negative capital should be ErrValidation, got %v", err)
	}
}
