package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tracklab/internal/core/domain"
	"tracklab/internal/core/port"
)

// TestService is the campaign-test CRUD surface. Every mutation is gated on
// the edit-tests permission and feeds the reconciler so the ledger always
// reflects the current test set. It implements port.TestUseCase.
type TestService struct {
	repo port.TestRepository
	rec  port.Reconciler

	now func() time.Time
}

// NewTestService creates the test service.
func NewTestService(repo port.TestRepository, rec port.Reconciler) *TestService {
	return &TestService{repo: repo, rec: rec, now: time.Now}
}

// List returns the workspace's tests, newest first.
func (s *TestService) List(ctx context.Context, grant domain.Grant) ([]domain.Test, error) {
	return s.repo.ListTests(ctx, grant.WorkspaceID)
}

// Create persists a new test together with its auto-posted ledger
// transactions as one atomic store operation, then reconciles. The single
// write means no failure can commit the test without its postings.
func (s *TestService) Create(ctx context.Context, grant domain.Grant, input port.TestInput) (*domain.Test, error) {
	if !grant.CanEdit(domain.ResourceTests) {
		return nil, domain.ErrUnauthorized
	}
	if err := validateTestInput(input); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	test := &domain.Test{
		ID:          uuid.New(),
		WorkspaceID: grant.WorkspaceID,
		CreatedAt:   now,
	}
	applyTestInput(test, input)
	if err := s.repo.CreateTestWithPostings(ctx, test, domain.AutoPostings(*test, now)); err != nil {
		return nil, err
	}
	if err := s.rec.ReconcileWorkspace(ctx, grant.WorkspaceID); err != nil {
		return nil, err
	}
	return test, nil
}

// Update edits an existing test and reconciles the ledger afterwards.
func (s *TestService) Update(ctx context.Context, grant domain.Grant, id uuid.UUID, input port.TestInput) (*domain.Test, error) {
	if !grant.CanEdit(domain.ResourceTests) {
		return nil, domain.ErrUnauthorized
	}
	if err := validateTestInput(input); err != nil {
		return nil, err
	}
	test, err := s.repo.GetTest(ctx, grant.WorkspaceID, id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, domain.ErrNotFound
	}
	applyTestInput(test, input)
	if err := s.repo.UpdateTest(ctx, test); err != nil {
		return nil, err
	}
	if err := s.rec.ReconcileWorkspace(ctx, grant.WorkspaceID); err != nil {
		return nil, err
	}
	return test, nil
}

// Delete removes a test together with its auto-posted transactions (one
// atomic store operation) and reconciles the ledger.
func (s *TestService) Delete(ctx context.Context, grant domain.Grant, id uuid.UUID) error {
	if !grant.CanEdit(domain.ResourceTests) {
		return domain.ErrUnauthorized
	}
	if err := s.repo.DeleteTestCascade(ctx, grant.WorkspaceID, id); err != nil {
		return err
	}
	return s.rec.ReconcileWorkspace(ctx, grant.WorkspaceID)
}

func validateTestInput(input port.TestInput) error {
	if input.ProductName == "" {
		return fmt.Errorf("%w: product name is required", domain.ErrValidation)
	}
	if !input.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, input.Status)
	}
	if input.InvestedAmount.IsNegative() || input.ReturnValue.IsNegative() {
		return fmt.Errorf("%w: amounts cannot be negative", domain.ErrValidation)
	}
	if input.Impressions < 0 || input.Clicks < 0 || input.Conversions < 0 {
		return fmt.Errorf("%w: counters cannot be negative", domain.ErrValidation)
	}
	return nil
}

func applyTestInput(test *domain.Test, input port.TestInput) {
	test.OfferID = input.OfferID
	test.StartDate = input.StartDate
	test.ProductName = input.ProductName
	test.Niche = input.Niche
	test.TrafficSource = input.TrafficSource
	test.LandingPageURL = input.LandingPageURL
	test.InvestedAmount = input.InvestedAmount
	test.ReturnValue = input.ReturnValue
	test.Impressions = input.Impressions
	test.Clicks = input.Clicks
	test.Conversions = input.Conversions
	test.Status = input.Status
	test.Observations = input.Observations
}
