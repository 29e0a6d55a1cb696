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

func validTestInput() port.TestInput {
	return port.TestInput{
		StartDate:      time.Now().UTC(),
		ProductName:    "Creatine",
		Niche:          "fitness",
		TrafficSource:  "facebook",
		InvestedAmount: decimal.NewFromInt(100),
		ReturnValue:    decimal.NewFromInt(150),
		Impressions:    1000,
		Clicks:         50,
		Conversions:    5,
		Status:         domain.StatusScale,
	}
}

func TestCreateTest(t *testing.T) {
	repo := mocks.NewMockTestRepository(t)
	rec := mocks.NewMockReconciler(t)
	grant := ownerTestGrant()

	var created *domain.Test
	var posted []domain.Transaction
	repo.EXPECT().
		CreateTestWithPostings(mock.Anything, mock.AnythingOfType("*domain.Test"), mock.Anything).
		Run(func(ctx context.Context, test *domain.Test, postings []domain.Transaction) {
			created = test
			posted = postings
		}).
		Return(nil)
	rec.EXPECT().ReconcileWorkspace(mock.Anything, grant.WorkspaceID).Return(nil)

	svc := NewTestService(repo, rec)

	test, err := svc.Create(context.Background(), grant, validTestInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created == nil || created.ID != test.ID {
		t.Fatal("test should be handed to the store")
	}
	if test.WorkspaceID != grant.WorkspaceID {
		t.Fatalf("workspace = %s, want the grant's %s", test.WorkspaceID, grant.WorkspaceID)
	}
	if len(posted) != 2 {
		t.Fatalf("posted %d transactions alongside the test, want 2", len(posted))
	}
	inv, rev := posted[0], posted[1]
	if inv.Type != domain.TransactionInvestment || !inv.Amount.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("first posting = %+v, want the investment", inv)
	}
	if rev.Type != domain.TransactionRevenue || !rev.Amount.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("second posting = %+v, want the revenue", rev)
	}
	if inv.TestID == nil || *inv.TestID != test.ID || rev.TestID == nil || *rev.TestID != test.ID {
		t.Fatal("postings must link back to the created test")
	}
}

// TestCreateTestStoreFailure checks that a failed atomic insert surfaces
// the error and triggers no reconcile, leaving nothing half-committed.
func TestCreateTestStoreFailure(t *testing.T) {
	repo := mocks.NewMockTestRepository(t)
	rec := mocks.NewMockReconciler(t)
	grant := ownerTestGrant()
	boom := errors.New("connection reset")

	repo.EXPECT().
		CreateTestWithPostings(mock.Anything, mock.Anything, mock.Anything).
		Return(boom)

	svc := NewTestService(repo, rec)

	if _, err := svc.Create(context.Background(), grant, validTestInput()); !errors.Is(err, boom) {
		t.Fatalf("want the store error back, got %v", err)
	}
	rec.AssertNotCalled(t, "ReconcileWorkspace", mock.Anything, mock.Anything)
}

// TestCreateTestZeroAmountsNoPostings ensures a test with no money attached
// reaches the store with an empty posting set.
func TestCreateTestZeroAmountsNoPostings(t *testing.T) {
	repo := mocks.NewMockTestRepository(t)
	rec := mocks.NewMockReconciler(t)
	grant := ownerTestGrant()

	var posted []domain.Transaction
	postedSet := false
	repo.EXPECT().
		CreateTestWithPostings(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, test *domain.Test, postings []domain.Transaction) {
			posted = postings
			postedSet = true
		}).
		Return(nil)
	rec.EXPECT().ReconcileWorkspace(mock.Anything, grant.WorkspaceID).Return(nil)

	svc := NewTestService(repo, rec)

	in := validTestInput()
	in.InvestedAmount = decimal.Zero
	in.ReturnValue = decimal.Zero
	if _, err := svc.Create(context.Background(), grant, in); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !postedSet || len(posted) != 0 {
		t.Fatalf("zero amounts should post nothing, got %v", posted)
	}
}

func TestCreateTestUnauthorized(t *testing.T) {
	repo := mocks.NewMockTestRepository(t)
	rec := mocks.NewMockReconciler(t)
	viewer := domain.Grant{
		WorkspaceID: uuid.New(),
		Permissions: domain.PermissionSet{ViewOnly: true},
	}

	svc := NewTestService(repo, rec)

	_, err := svc.Create(context.Background(), viewer, validTestInput())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("create without edit-tests should be ErrUnauthorized, got %v", err)
	}
}

func TestCreateTestValidation(t *testing.T) {
	repo := mocks.NewMockTestRepository(t)
	rec := mocks.NewMockReconciler(t)
	svc := NewTestService(repo, rec)
	grant := ownerTestGrant()

	cases := map[string]func(*port.TestInput){
		"missing product name": func(in *port.TestInput) { in.ProductName = "" },
		"unknown status":       func(in *port.TestInput) { in.Status = "Archived" },
		"negative amount":      func(in *port.TestInput) { in.InvestedAmount = decimal.NewFromInt(-1) },
		"negative counter":     func(in *port.TestInput) { in.Clicks = -1 },
	}
	for name, mutate := range cases {
		in := validTestInput()
		mutate(&in)
		if _, err := svc.Create(context.Background(), grant, in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: want ErrValidation, got %v", name, err)
		}
	}
}

func TestUpdateTest(t *testing.T) {
	repo := mocks.NewMockTestRepository(t)
	rec := mocks.NewMockReconciler(t)
	grant := ownerTestGrant()
	existing := &domain.Test{
		ID:          uuid.New(),
		WorkspaceID: grant.WorkspaceID,
		ProductName: "Old name",
		Status:      domain.StatusPause,
	}

	repo.EXPECT().GetTest(mock.Anything, grant.WorkspaceID, existing.ID).Return(existing, nil)
	repo.EXPECT().UpdateTest(mock.Anything, existing).Return(nil)
	rec.EXPECT().ReconcileWorkspace(mock.Anything, grant.WorkspaceID).Return(nil)

	svc := NewTestService(repo, rec)

	updated, err := svc.Update(context.Background(), grant, existing.ID, validTestInput())
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.ProductName != "Creatine" || updated.Status != domain.StatusScale {
		t.Fatalf("update did not apply the input, got %+v", updated)
	}
}

func TestUpdateTestNotFound(t *testing.T) {
	repo := mocks.NewMockTestRepository(t)
	rec := mocks.NewMockReconciler(t)
	grant := ownerTestGrant()
	id := uuid.New()

	repo.EXPECT().GetTest(mock.Anything, grant.WorkspaceID, id).Return(nil, nil)

	svc := NewTestService(repo, rec)

	_, err := svc.Update(context.Background(), grant, id, validTestInput())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

// TestDeleteTest ensures deletion goes through the cascading repository call
// and reconciles afterwards.
func TestDeleteTest(t *testing.T) {
	repo := mocks.NewMockTestRepository(t)
	rec := mocks.NewMockReconciler(t)
	grant := ownerTestGrant()
	id := uuid.New()

	repo.EXPECT().DeleteTestCascade(mock.Anything, grant.WorkspaceID, id).Return(nil)
	rec.EXPECT().ReconcileWorkspace(mock.Anything, grant.WorkspaceID).Return(nil)

	svc := NewTestService(repo, rec)

	if err := svc.Delete(context.Background(), grant, id); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDeleteTestMissing(t *testing.T) {
	repo := mocks.NewMockTestRepository(t)
	rec := mocks.NewMockReconciler(t)
	grant := ownerTestGrant()
	id := uuid.New()

	repo.EXPECT().
		DeleteTestCascade(mock.Anything, grant.WorkspaceID, id).
		Return(domain.ErrNotFound)

	svc := NewTestService(repo, rec)

	if err := svc.Delete(context.Background(), grant, id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
