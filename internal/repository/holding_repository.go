package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmertens/portfolio-tracker-backend/internal/apperrors"
	"github.com/jmertens/portfolio-tracker-backend/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
// The table carries the aggregated position per (portfolio, symbol) pair;
// all mutations that must stay in step with the transaction log are run
// through a transaction-scoped copy obtained via WithTx.
type HoldingRepository struct {
	q Querier
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{q: db}
}

// WithTx returns a copy of the repository scoped to the given transaction.
func (s *HoldingRepository) WithTx(tx *sql.Tx) *HoldingRepository {
	return &HoldingRepository{q: tx}
}

const holdingColumns = `id, portfolio_id, symbol, shares, average_cost, current_price, sector, asset_class, last_updated`

func scanHolding(scan func(dest ...any) error) (model.Holding, error) {
	var h model.Holding
	var sector, assetClass sql.NullString
	var lastUpdatedStr string

	err := scan(
		&h.ID,
		&h.PortfolioID,
		&h.Symbol,
		&h.Shares,
		&h.AverageCost,
		&h.CurrentPrice,
		&sector,
		&assetClass,
		&lastUpdatedStr,
	)
	if err != nil {
		return model.Holding{}, err
	}

	h.Sector = sector.String
	h.AssetClass = assetClass.String

	h.LastUpdated, err = ParseTime(lastUpdatedStr)
	if err != nil {
		return model.Holding{}, err
	}

	return h, nil
}

// GetByPortfolio retrieves all holdings for a portfolio, ordered by symbol.
// Returns an empty slice if the portfolio holds nothing.
func (s *HoldingRepository) GetByPortfolio(ctx context.Context, portfolioID string) ([]model.Holding, error) {
	query := `
          SELECT ` + holdingColumns + `
          FROM holding
          WHERE portfolio_id = ?
          ORDER BY symbol ASC
      `
	rows, err := s.q.QueryContext(ctx, query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}

	for rows.Next() {
		h, err := scanHolding(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}
		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

// GetBySymbol retrieves the holding for a (portfolio, symbol) pair.
// Returns apperrors.ErrHoldingNotFound if no row exists.
func (s *HoldingRepository) GetBySymbol(ctx context.Context, portfolioID, symbol string) (model.Holding, error) {
	query := `
          SELECT ` + holdingColumns + `
          FROM holding
          WHERE portfolio_id = ? AND symbol = ?
      `
	h, err := scanHolding(s.q.QueryRowContext(ctx, query, portfolioID, symbol).Scan)
	if err == sql.ErrNoRows {
		return model.Holding{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to query holding: %w", err)
	}

	return h, nil
}

// Insert stores a new holding row.
func (s *HoldingRepository) Insert(ctx context.Context, h model.Holding) error {
	query := `
          INSERT INTO holding (id, portfolio_id, symbol, shares, average_cost, current_price, last_updated)
          VALUES (?, ?, ?, ?, ?, ?, ?)
      `
	_, err := s.q.ExecContext(ctx, query,
		h.ID,
		h.PortfolioID,
		h.Symbol,
		h.Shares,
		h.AverageCost,
		h.CurrentPrice,
		h.LastUpdated.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}
	return nil
}

// UpdatePosition updates the share count and average cost of a holding after a buy.
func (s *HoldingRepository) UpdatePosition(ctx context.Context, holdingID string, shares, averageCost float64) error {
	query := `
          UPDATE holding
          SET shares = ?, average_cost = ?, last_updated = ?
          WHERE id = ?
      `
	if _, err := s.q.ExecContext(ctx, query, shares, averageCost, time.Now().UTC().Format(time.RFC3339), holdingID); err != nil {
		return fmt.Errorf("failed to update holding position: %w", err)
	}
	return nil
}

// UpdateShares updates only the share count of a holding after a partial sell.
// Average cost and current price are left untouched.
func (s *HoldingRepository) UpdateShares(ctx context.Context, holdingID string, shares float64) error {
	query := `
          UPDATE holding
          SET shares = ?, last_updated = ?
          WHERE id = ?
      `
	if _, err := s.q.ExecContext(ctx, query, shares, time.Now().UTC().Format(time.RFC3339), holdingID); err != nil {
		return fmt.Errorf("failed to update holding shares: %w", err)
	}
	return nil
}

// UpdatePrice sets the current price for a (portfolio, symbol) pair.
// Returns the number of rows affected; zero means the holding does not exist.
func (s *HoldingRepository) UpdatePrice(ctx context.Context, portfolioID, symbol string, price float64) (int64, error) {
	query := `
          UPDATE holding
          SET current_price = ?, last_updated = ?
          WHERE portfolio_id = ? AND symbol = ?
      `
	result, err := s.q.ExecContext(ctx, query, price, time.Now().UTC().Format(time.RFC3339), portfolioID, symbol)
	if err != nil {
		return 0, fmt.Errorf("failed to update holding price: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected, nil
}

// ApplyMetadataPatch writes the supplied metadata fields for a (portfolio, symbol)
// pair through a fixed parameterized statement per field combination. The
// last_updated timestamp is bumped whenever any field is written. Returns the
// number of rows affected; zero means the holding no longer exists, which is
// not an error (a stale enrichment result is simply dropped).
func (s *HoldingRepository) ApplyMetadataPatch(ctx context.Context, portfolioID, symbol string, patch model.MetadataPatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, apperrors.ErrEmptyMetadataPatch
	}

	now := time.Now().UTC().Format(time.RFC3339)

	var result sql.Result
	var err error

	switch {
	case patch.Sector != nil && patch.AssetClass != nil:
		result, err = s.q.ExecContext(ctx, `
          UPDATE holding
          SET sector = ?, asset_class = ?, last_updated = ?
          WHERE portfolio_id = ? AND symbol = ?
      `, *patch.Sector, *patch.AssetClass, now, portfolioID, symbol)
	case patch.Sector != nil:
		result, err = s.q.ExecContext(ctx, `
          UPDATE holding
          SET sector = ?, last_updated = ?
          WHERE portfolio_id = ? AND symbol = ?
      `, *patch.Sector, now, portfolioID, symbol)
	default:
		result, err = s.q.ExecContext(ctx, `
          UPDATE holding
          SET asset_class = ?, last_updated = ?
          WHERE portfolio_id = ? AND symbol = ?
      `, *patch.AssetClass, now, portfolioID, symbol)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update holding metadata: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected, nil
}

// Delete removes a holding row by its ID.
func (s *HoldingRepository) Delete(ctx context.Context, holdingID string) error {
	if _, err := s.q.ExecContext(ctx, `DELETE FROM holding WHERE id = ?`, holdingID); err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	return nil
}

// DeleteOnPortfolio removes a holding row scoped to a portfolio.
// Returns the number of rows affected.
func (s *HoldingRepository) DeleteOnPortfolio(ctx context.Context, portfolioID, holdingID string) (int64, error) {
	result, err := s.q.ExecContext(ctx, `DELETE FROM holding WHERE id = ? AND portfolio_id = ?`, holdingID, portfolioID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected, nil
}
