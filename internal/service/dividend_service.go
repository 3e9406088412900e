package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmertens/portfolio-tracker-backend/internal/model"
	"github.com/jmertens/portfolio-tracker-backend/internal/repository"
)

// DividendService handles dividend-related business logic operations.
type DividendService struct {
	dividendRepo  *repository.DividendRepository
	portfolioRepo *repository.PortfolioRepository
}

// NewDividendService creates a new DividendService with the provided repository dependencies.
func NewDividendService(
	dividendRepo *repository.DividendRepository,
	portfolioRepo *repository.PortfolioRepository,
) *DividendService {
	return &DividendService{
		dividendRepo:  dividendRepo,
		portfolioRepo: portfolioRepo,
	}
}

// CreateDividend records a dividend payment for a symbol in a portfolio.
// The symbol does not need an active holding: dividends remain valid after
// the position has been fully sold.
func (s *DividendService) CreateDividend(ctx context.Context, portfolioID, symbol string, amount float64, date time.Time) (model.Dividend, error) {
	if _, err := s.portfolioRepo.GetOnID(ctx, portfolioID); err != nil {
		return model.Dividend{}, err
	}

	dividend := model.Dividend{
		ID:          uuid.New().String(),
		PortfolioID: portfolioID,
		Symbol:      normalizeSymbol(symbol),
		Amount:      amount,
		Date:        date,
	}

	if err := s.dividendRepo.Insert(ctx, dividend); err != nil {
		return model.Dividend{}, err
	}

	return dividend, nil
}

// GetDividendsPerPortfolio retrieves all dividends for a portfolio, newest
// first. Fails with ErrPortfolioNotFound for an unknown portfolio.
func (s *DividendService) GetDividendsPerPortfolio(ctx context.Context, portfolioID string) ([]model.Dividend, error) {
	if _, err := s.portfolioRepo.GetOnID(ctx, portfolioID); err != nil {
		return nil, err
	}
	return s.dividendRepo.GetByPortfolio(ctx, portfolioID)
}
