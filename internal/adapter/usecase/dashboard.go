package usecase

import (
	"context"

	"tracklab/internal/core/domain"
	"tracklab/internal/core/port"
)

// DashboardService computes aggregate metrics and the offer ranking. Both
// are stateless folds over the workspace's records. It implements
// port.DashboardUseCase.
type DashboardService struct {
	tests  port.TestRepository
	offers port.OfferRepository
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(tests port.TestRepository, offers port.OfferRepository) *DashboardService {
	return &DashboardService{tests: tests, offers: offers}
}

// Overview returns aggregate metrics over all tests plus the ranked offers.
func (s *DashboardService) Overview(ctx context.Context, grant domain.Grant) (*port.DashboardOverview, error) {
	tests, err := s.tests.ListTests(ctx, grant.WorkspaceID)
	if err != nil {
		return nil, err
	}
	offers, err := s.offers.ListOffers(ctx, grant.WorkspaceID)
	if err != nil {
		return nil, err
	}
	return &port.DashboardOverview{
		Metrics: domain.CalculateMetrics(tests),
		Ranking: domain.RankOffers(offers, tests),
	}, nil
}
