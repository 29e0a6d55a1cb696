package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tracklab/internal/core/domain"
	"tracklab/internal/core/port"
)

// OfferService is the offer CRUD surface, gated on edit-offers. It
// implements port.OfferUseCase.
type OfferService struct {
	repo port.OfferRepository

	now func() time.Time
}

// NewOfferService creates the offer service.
func NewOfferService(repo port.OfferRepository) *OfferService {
	return &OfferService{repo: repo, now: time.Now}
}

// List returns the workspace's offers, newest first.
func (s *OfferService) List(ctx context.Context, grant domain.Grant) ([]domain.Offer, error) {
	return s.repo.ListOffers(ctx, grant.WorkspaceID)
}

// Create persists a new offer.
func (s *OfferService) Create(ctx context.Context, grant domain.Grant, input port.OfferInput) (*domain.Offer, error) {
	if !grant.CanEdit(domain.ResourceOffers) {
		return nil, domain.ErrUnauthorized
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: offer name is required", domain.ErrValidation)
	}
	offer := &domain.Offer{
		ID:              uuid.New(),
		WorkspaceID:     grant.WorkspaceID,
		Name:            input.Name,
		Niche:           input.Niche,
		LibraryLink:     input.LibraryLink,
		LandingPageLink: input.LandingPageLink,
		CheckoutLink:    input.CheckoutLink,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.repo.CreateOffer(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// Update edits an existing offer.
func (s *OfferService) Update(ctx context.Context, grant domain.Grant, id uuid.UUID, input port.OfferInput) (*domain.Offer, error) {
	if !grant.CanEdit(domain.ResourceOffers) {
		return nil, domain.ErrUnauthorized
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: offer name is required", domain.ErrValidation)
	}
	offer, err := s.repo.GetOffer(ctx, grant.WorkspaceID, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrNotFound
	}
	offer.Name = input.Name
	offer.Niche = input.Niche
	offer.LibraryLink = input.LibraryLink
	offer.LandingPageLink = input.LandingPageLink
	offer.CheckoutLink = input.CheckoutLink
	if err := s.repo.UpdateOffer(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// Delete removes an offer. Tests referencing it keep existing, their offer
// reference is cleared by the store so the id cannot silently resurrect.
func (s *OfferService) Delete(ctx context.Context, grant domain.Grant, id uuid.UUID) error {
	if !grant.CanEdit(domain.ResourceOffers) {
		return domain.ErrUnauthorized
	}
	return s.repo.DeleteOffer(ctx, grant.WorkspaceID, id)
}
