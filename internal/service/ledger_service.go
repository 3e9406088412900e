package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jmertens/portfolio-tracker-backend/internal/apperrors"
	"github.com/jmertens/portfolio-tracker-backend/internal/model"
	"github.com/jmertens/portfolio-tracker-backend/internal/repository"
)

// sharesEpsilon is the tolerance for treating a share count as zero after a
// sell. Fractional share arithmetic can leave a tiny residue after repeated
// buy/sell cycles; a position at or below this threshold is closed out
// rather than kept as a dust row.
const sharesEpsilon = 1e-9

// MetadataEnricher receives fire-and-forget enrichment requests for holdings
// that lack descriptive metadata. Implementations must not block the caller.
type MetadataEnricher interface {
	Enrich(portfolioID, symbol string)
}

// LedgerService is the ledger engine: it applies buy and sell events to the
// holding table while keeping the append-only transaction log in step.
// Every mutation and its audit record commit or roll back together in a
// single database transaction.
type LedgerService struct {
	db              *sql.DB
	portfolioRepo   *repository.PortfolioRepository
	holdingRepo     *repository.HoldingRepository
	transactionRepo *repository.TransactionRepository
	enricher        MetadataEnricher
	log             zerolog.Logger
}

// NewLedgerService creates a new LedgerService with the provided dependencies.
func NewLedgerService(
	db *sql.DB,
	portfolioRepo *repository.PortfolioRepository,
	holdingRepo *repository.HoldingRepository,
	transactionRepo *repository.TransactionRepository,
	log zerolog.Logger,
) *LedgerService {
	return &LedgerService{
		db:              db,
		portfolioRepo:   portfolioRepo,
		holdingRepo:     holdingRepo,
		transactionRepo: transactionRepo,
		log:             log,
	}
}

// SetEnricher attaches the metadata enricher. The ledger works without one;
// holdings then simply keep empty sector and asset-class fields.
func (s *LedgerService) SetEnricher(e MetadataEnricher) {
	s.enricher = e
}

// SellResult reports the outcome of a sell.
type SellResult struct {
	RemainingShares float64 `json:"remaining_shares"`
}

// AddHolding applies a buy event.
//
// The first buy for a (portfolio, symbol) pair creates the holding with
// average_cost equal to the purchase price and current_price 0. Subsequent
// buys recompute the shares-weighted average cost in place; current_price
// is untouched. The BUY transaction records the raw lot as entered, not the
// aggregated holding state.
//
// Returns the post-aggregation holding.
func (s *LedgerService) AddHolding(ctx context.Context, portfolioID, symbol string, shares, price float64, date time.Time, notes string) (model.Holding, error) {
	symbol = normalizeSymbol(symbol)

	if symbol == "" {
		return model.Holding{}, apperrors.ErrInvalidSymbol
	}
	if shares <= 0 {
		return model.Holding{}, apperrors.ErrInvalidShares
	}
	if price < 0 {
		return model.Holding{}, apperrors.ErrInvalidPrice
	}

	if _, err := s.portfolioRepo.GetOnID(ctx, portfolioID); err != nil {
		return model.Holding{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	holdings := s.holdingRepo.WithTx(tx)

	holding, err := holdings.GetBySymbol(ctx, portfolioID, symbol)
	switch {
	case errors.Is(err, apperrors.ErrHoldingNotFound):
		holding = model.Holding{
			ID:           uuid.New().String(),
			PortfolioID:  portfolioID,
			Symbol:       symbol,
			Shares:       shares,
			AverageCost:  price,
			CurrentPrice: 0,
			LastUpdated:  time.Now().UTC(),
		}
		if err := holdings.Insert(ctx, holding); err != nil {
			return model.Holding{}, err
		}
	case err != nil:
		return model.Holding{}, err
	default:
		newShares := holding.Shares + shares
		newAverageCost := (holding.Shares*holding.AverageCost + shares*price) / newShares

		if err := holdings.UpdatePosition(ctx, holding.ID, newShares, newAverageCost); err != nil {
			return model.Holding{}, err
		}

		holding.Shares = newShares
		holding.AverageCost = newAverageCost
		holding.LastUpdated = time.Now().UTC()
	}

	buy := model.Transaction{
		ID:          uuid.New().String(),
		PortfolioID: portfolioID,
		Symbol:      symbol,
		Type:        model.TransactionTypeBuy,
		Shares:      shares,
		Price:       price,
		Date:        date,
		Notes:       notes,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.transactionRepo.WithTx(tx).Insert(ctx, buy); err != nil {
		return model.Holding{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Holding{}, fmt.Errorf("failed to commit buy: %w", err)
	}

	s.maybeEnrich(holding)

	return holding, nil
}

// SellHolding applies a sell event.
//
// Fails with ErrHoldingNotFound when no position exists and with
// ErrInsufficientShares when the sell exceeds the position; state is left
// unchanged in both cases. A sell that brings the share count to zero
// (within sharesEpsilon) deletes the holding row. Average cost and current
// price are never changed by a sell; realized gains are derivable from the
// transaction log only.
func (s *LedgerService) SellHolding(ctx context.Context, portfolioID, symbol string, shares, price float64, date time.Time) (SellResult, error) {
	symbol = normalizeSymbol(symbol)

	if symbol == "" {
		return SellResult{}, apperrors.ErrInvalidSymbol
	}
	if shares <= 0 {
		return SellResult{}, apperrors.ErrInvalidShares
	}
	if price < 0 {
		return SellResult{}, apperrors.ErrInvalidPrice
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SellResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	holdings := s.holdingRepo.WithTx(tx)

	holding, err := holdings.GetBySymbol(ctx, portfolioID, symbol)
	if err != nil {
		return SellResult{}, err
	}

	if shares > holding.Shares {
		return SellResult{}, apperrors.ErrInsufficientShares
	}

	newShares := holding.Shares - shares

	if newShares <= sharesEpsilon {
		newShares = 0
		if err := holdings.Delete(ctx, holding.ID); err != nil {
			return SellResult{}, err
		}
	} else {
		if err := holdings.UpdateShares(ctx, holding.ID, newShares); err != nil {
			return SellResult{}, err
		}
	}

	sell := model.Transaction{
		ID:          uuid.New().String(),
		PortfolioID: portfolioID,
		Symbol:      symbol,
		Type:        model.TransactionTypeSell,
		Shares:      shares,
		Price:       price,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.transactionRepo.WithTx(tx).Insert(ctx, sell); err != nil {
		return SellResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return SellResult{}, fmt.Errorf("failed to commit sell: %w", err)
	}

	return SellResult{RemainingShares: newShares}, nil
}

// UpdatePrice sets the current price for a holding. Shares and average cost
// are untouched. Negative prices are rejected; zero is accepted and means
// "no quote available".
func (s *LedgerService) UpdatePrice(ctx context.Context, portfolioID, symbol string, price float64) error {
	symbol = normalizeSymbol(symbol)

	if symbol == "" {
		return apperrors.ErrInvalidSymbol
	}
	if price < 0 {
		return apperrors.ErrInvalidPrice
	}

	affected, err := s.holdingRepo.UpdatePrice(ctx, portfolioID, symbol, price)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}

	holding, err := s.holdingRepo.GetBySymbol(ctx, portfolioID, symbol)
	if err != nil {
		s.log.Debug().Err(err).Str("symbol", symbol).Msg("failed to reload holding after price update")
		return nil
	}
	s.maybeEnrich(holding)

	return nil
}

// UpdateMetadata applies a typed metadata patch to a holding.
//
// Returns (false, ErrEmptyMetadataPatch) when the patch carries no fields;
// last_updated is not touched in that case. Returns (false, nil) when no
// matching holding exists, which covers an enrichment result arriving after
// the holding was sold off: the stale update is silently dropped.
func (s *LedgerService) UpdateMetadata(ctx context.Context, portfolioID, symbol string, patch model.MetadataPatch) (bool, error) {
	symbol = normalizeSymbol(symbol)

	if symbol == "" {
		return false, apperrors.ErrInvalidSymbol
	}
	if patch.IsEmpty() {
		return false, apperrors.ErrEmptyMetadataPatch
	}

	affected, err := s.holdingRepo.ApplyMetadataPatch(ctx, portfolioID, symbol, patch)
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// DeleteHolding removes a holding row directly, without recording a sell.
// Returns ErrHoldingNotFound when the holding does not belong to the portfolio.
func (s *LedgerService) DeleteHolding(ctx context.Context, portfolioID, holdingID string) error {
	affected, err := s.holdingRepo.DeleteOnPortfolio(ctx, portfolioID, holdingID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}

// maybeEnrich requests background metadata enrichment for a holding that
// lacks both sector and asset class. Holdings with either field already set
// are not re-enriched.
func (s *LedgerService) maybeEnrich(h model.Holding) {
	if s.enricher == nil {
		return
	}
	if h.Sector != "" || h.AssetClass != "" {
		return
	}
	s.enricher.Enrich(h.PortfolioID, h.Symbol)
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
