package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jmertens/portfolio-tracker-backend/internal/model"
	"github.com/jmertens/portfolio-tracker-backend/internal/quotes"
)

// enrichmentTimeout bounds a single background metadata lookup.
const enrichmentTimeout = 5 * time.Second

// ProfileSource fetches company metadata for a symbol.
// Implemented by quotes.Client.
type ProfileSource interface {
	Overview(ctx context.Context, symbol string) (quotes.CompanyProfile, error)
}

// EnrichmentService attaches sector and asset-class metadata to holdings from
// an external lookup. It is strictly best-effort: lookups run in detached
// goroutines with a bounded timeout, failures are logged and dropped, and the
// ledger's synchronous operations never wait on it. A result arriving after
// the holding was sold off matches no row and is silently discarded.
type EnrichmentService struct {
	ledger   *LedgerService
	profiles ProfileSource
	log      zerolog.Logger
}

// NewEnrichmentService creates a new EnrichmentService with the provided dependencies.
func NewEnrichmentService(ledger *LedgerService, profiles ProfileSource, log zerolog.Logger) *EnrichmentService {
	return &EnrichmentService{
		ledger:   ledger,
		profiles: profiles,
		log:      log,
	}
}

// Enrich schedules a background metadata lookup for the holding.
// It returns immediately; there is no cancellation mechanism for the
// in-flight lookup, and the metadata fields are last-write-wins.
func (s *EnrichmentService) Enrich(portfolioID, symbol string) {
	go s.enrich(portfolioID, symbol)
}

// enrich performs one lookup synchronously. Split out from Enrich so tests
// can run it without racing the goroutine.
func (s *EnrichmentService) enrich(portfolioID, symbol string) {
	ctx, cancel := context.WithTimeout(context.Background(), enrichmentTimeout)
	defer cancel()

	profile, err := s.profiles.Overview(ctx, symbol)
	if err != nil {
		s.log.Warn().Err(err).Str("symbol", symbol).Msg("metadata enrichment failed")
		return
	}

	var patch model.MetadataPatch
	if profile.Sector != "" {
		patch.Sector = &profile.Sector
	}
	if profile.AssetClass != "" {
		patch.AssetClass = &profile.AssetClass
	}
	if patch.IsEmpty() {
		s.log.Debug().Str("symbol", symbol).Msg("no metadata available for symbol")
		return
	}

	applied, err := s.ledger.UpdateMetadata(ctx, portfolioID, symbol, patch)
	if err != nil {
		s.log.Warn().Err(err).Str("symbol", symbol).Msg("failed to store enriched metadata")
		return
	}
	if !applied {
		s.log.Debug().Str("symbol", symbol).Msg("holding gone before enrichment completed")
		return
	}

	s.log.Debug().
		Str("symbol", symbol).
		Str("sector", profile.Sector).
		Str("assetClass", profile.AssetClass).
		Msg("holding metadata enriched")
}
