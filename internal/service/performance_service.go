package service

import (
	"context"

	"github.com/jmertens/portfolio-tracker-backend/internal/model"
	"github.com/jmertens/portfolio-tracker-backend/internal/repository"
)

// PerformanceService derives performance metrics from a snapshot of holdings
// and dividends. The calculations themselves are pure functions; the service
// only adds the data loading.
type PerformanceService struct {
	holdingRepo   *repository.HoldingRepository
	dividendRepo  *repository.DividendRepository
	portfolioRepo *repository.PortfolioRepository
}

// NewPerformanceService creates a new PerformanceService with the provided repository dependencies.
func NewPerformanceService(
	holdingRepo *repository.HoldingRepository,
	dividendRepo *repository.DividendRepository,
	portfolioRepo *repository.PortfolioRepository,
) *PerformanceService {
	return &PerformanceService{
		holdingRepo:   holdingRepo,
		dividendRepo:  dividendRepo,
		portfolioRepo: portfolioRepo,
	}
}

// EnrichHolding attaches derived performance fields to a holding.
//
// gain_loss_percent is 0 whenever the cost basis is not positive. This is a
// hard contract: percentage fields never resolve to NaN or Infinity, for any
// current price including 0.
func EnrichHolding(h model.Holding) model.EnrichedHolding {
	marketValue := h.Shares * h.CurrentPrice
	costBasis := h.Shares * h.AverageCost
	gainLoss := marketValue - costBasis

	gainLossPercent := 0.0
	if costBasis > 0 {
		gainLossPercent = (gainLoss / costBasis) * 100
	}

	return model.EnrichedHolding{
		Holding:         h,
		MarketValue:     marketValue,
		CostBasis:       costBasis,
		GainLoss:        gainLoss,
		GainLossPercent: gainLossPercent,
	}
}

// EnrichHoldings applies EnrichHolding to each holding in the slice.
func EnrichHoldings(holdings []model.Holding) []model.EnrichedHolding {
	enriched := make([]model.EnrichedHolding, len(holdings))
	for i, h := range holdings {
		enriched[i] = EnrichHolding(h)
	}
	return enriched
}

// Summarize computes the portfolio-level aggregate from a holdings snapshot
// and the all-time dividend total. total_return_percent is 0 whenever the
// total cost basis is not positive, never NaN or Infinity.
func Summarize(holdings []model.Holding, totalDividends float64) model.PerformanceSummary {
	var totalMarketValue, totalCostBasis float64

	for _, h := range holdings {
		totalMarketValue += h.Shares * h.CurrentPrice
		totalCostBasis += h.Shares * h.AverageCost
	}

	unrealized := totalMarketValue - totalCostBasis
	totalReturn := unrealized + totalDividends

	totalReturnPercent := 0.0
	if totalCostBasis > 0 {
		totalReturnPercent = (totalReturn / totalCostBasis) * 100
	}

	return model.PerformanceSummary{
		TotalMarketValue:   totalMarketValue,
		TotalCostBasis:     totalCostBasis,
		UnrealizedGainLoss: unrealized,
		TotalDividends:     totalDividends,
		TotalReturn:        totalReturn,
		TotalReturnPercent: totalReturnPercent,
	}
}

// GetPortfolioPerformance loads the portfolio's holdings and dividend total
// and returns the aggregate summary. Fails with ErrPortfolioNotFound for an
// unknown portfolio.
func (s *PerformanceService) GetPortfolioPerformance(ctx context.Context, portfolioID string) (model.PerformanceSummary, error) {
	if _, err := s.portfolioRepo.GetOnID(ctx, portfolioID); err != nil {
		return model.PerformanceSummary{}, err
	}

	holdings, err := s.holdingRepo.GetByPortfolio(ctx, portfolioID)
	if err != nil {
		return model.PerformanceSummary{}, err
	}

	totalDividends, err := s.dividendRepo.SumByPortfolio(ctx, portfolioID)
	if err != nil {
		return model.PerformanceSummary{}, err
	}

	return Summarize(holdings, totalDividends), nil
}
