package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmertens/portfolio-tracker-backend/internal/model"
	"github.com/jmertens/portfolio-tracker-backend/internal/repository"
)

// PortfolioService handles portfolio-level business logic operations.
type PortfolioService struct {
	portfolioRepo *repository.PortfolioRepository
	holdingRepo   *repository.HoldingRepository
}

// NewPortfolioService creates a new PortfolioService with the provided repository dependencies.
func NewPortfolioService(
	portfolioRepo *repository.PortfolioRepository,
	holdingRepo *repository.HoldingRepository,
) *PortfolioService {
	return &PortfolioService{
		portfolioRepo: portfolioRepo,
		holdingRepo:   holdingRepo,
	}
}

// GetAllPortfolios retrieves every portfolio.
func (s *PortfolioService) GetAllPortfolios(ctx context.Context) ([]model.Portfolio, error) {
	return s.portfolioRepo.GetAll(ctx)
}

// CreatePortfolio creates a new, empty portfolio with the given name.
// Names are immutable after creation.
func (s *PortfolioService) CreatePortfolio(ctx context.Context, name string) (model.Portfolio, error) {
	portfolio := model.Portfolio{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.portfolioRepo.Insert(ctx, portfolio); err != nil {
		return model.Portfolio{}, err
	}

	return portfolio, nil
}

// GetPortfolioWithHoldings retrieves a portfolio together with its holdings,
// each enriched with derived performance fields. Fails with
// ErrPortfolioNotFound for an unknown portfolio.
func (s *PortfolioService) GetPortfolioWithHoldings(ctx context.Context, portfolioID string) (model.PortfolioDetail, error) {
	portfolio, err := s.portfolioRepo.GetOnID(ctx, portfolioID)
	if err != nil {
		return model.PortfolioDetail{}, err
	}

	holdings, err := s.holdingRepo.GetByPortfolio(ctx, portfolioID)
	if err != nil {
		return model.PortfolioDetail{}, err
	}

	return model.PortfolioDetail{
		Portfolio: portfolio,
		Holdings:  EnrichHoldings(holdings),
	}, nil
}
