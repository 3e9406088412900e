package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jmertens/portfolio-tracker-backend/internal/repository"
)

// quoteFetchConcurrency bounds parallel quote lookups during a refresh.
const quoteFetchConcurrency = 4

// QuoteSource fetches the latest price for a symbol.
// Implemented by quotes.Client.
type QuoteSource interface {
	GlobalQuote(ctx context.Context, symbol string) (float64, error)
}

// PriceService refreshes holding prices from the external quote source.
// Refreshes are best-effort per symbol: a failed lookup is counted and
// skipped, never fatal for the rest of the batch.
type PriceService struct {
	ledger        *LedgerService
	portfolioRepo *repository.PortfolioRepository
	holdingRepo   *repository.HoldingRepository
	quotes        QuoteSource
	log           zerolog.Logger
}

// NewPriceService creates a new PriceService with the provided dependencies.
func NewPriceService(
	ledger *LedgerService,
	portfolioRepo *repository.PortfolioRepository,
	holdingRepo *repository.HoldingRepository,
	quotes QuoteSource,
	log zerolog.Logger,
) *PriceService {
	return &PriceService{
		ledger:        ledger,
		portfolioRepo: portfolioRepo,
		holdingRepo:   holdingRepo,
		quotes:        quotes,
		log:           log,
	}
}

// RefreshResult reports how many symbols were updated and how many failed
// during a price refresh.
type RefreshResult struct {
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// RefreshPortfolioPrices fetches a current quote for every held symbol in the
// portfolio and applies it through the ledger. Lookups run with bounded
// concurrency; per-symbol failures are logged and counted in the result.
func (s *PriceService) RefreshPortfolioPrices(ctx context.Context, portfolioID string) (RefreshResult, error) {
	if _, err := s.portfolioRepo.GetOnID(ctx, portfolioID); err != nil {
		return RefreshResult{}, err
	}

	holdings, err := s.holdingRepo.GetByPortfolio(ctx, portfolioID)
	if err != nil {
		return RefreshResult{}, err
	}

	var mu sync.Mutex
	var result RefreshResult

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(quoteFetchConcurrency)

	for _, h := range holdings {
		h := h // per-iteration copy; required while go.mod targets go < 1.22
		g.Go(func() error {
			price, err := s.quotes.GlobalQuote(ctx, h.Symbol)
			if err == nil {
				err = s.ledger.UpdatePrice(ctx, portfolioID, h.Symbol, price)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.log.Warn().Err(err).Str("symbol", h.Symbol).Msg("price refresh failed for symbol")
				result.Failed++
			} else {
				result.Updated++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	return result, nil
}

// RefreshAllPrices refreshes prices for every portfolio. Used by the
// background scheduler; per-portfolio failures are logged and skipped.
func (s *PriceService) RefreshAllPrices(ctx context.Context) {
	portfolios, err := s.portfolioRepo.GetAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("scheduled price refresh could not list portfolios")
		return
	}

	for _, p := range portfolios {
		result, err := s.RefreshPortfolioPrices(ctx, p.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("portfolio", p.ID).Msg("scheduled price refresh failed")
			continue
		}
		s.log.Info().
			Str("portfolio", p.ID).
			Int("updated", result.Updated).
			Int("failed", result.Failed).
			Msg("scheduled price refresh complete")
	}
}
