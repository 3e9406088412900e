package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmertens/portfolio-tracker-backend/internal/model"
)

// DividendRepository provides data access methods for the dividend table.
// Dividend rows are append-only and independent of holding existence.
type DividendRepository struct {
	q Querier
}

// NewDividendRepository creates a new DividendRepository with the provided database connection.
func NewDividendRepository(db *sql.DB) *DividendRepository {
	return &DividendRepository{q: db}
}

// Insert stores a new dividend row.
func (s *DividendRepository) Insert(ctx context.Context, d model.Dividend) error {
	query := `
          INSERT INTO dividend (id, portfolio_id, symbol, amount, dividend_date)
          VALUES (?, ?, ?, ?, ?)
      `
	_, err := s.q.ExecContext(ctx, query,
		d.ID,
		d.PortfolioID,
		d.Symbol,
		d.Amount,
		d.Date.UTC().Format("2006-01-02"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert dividend: %w", err)
	}
	return nil
}

// GetByPortfolio retrieves all dividends for a portfolio, newest first.
// Returns an empty slice if the portfolio has no dividends.
func (s *DividendRepository) GetByPortfolio(ctx context.Context, portfolioID string) ([]model.Dividend, error) {
	query := `
          SELECT id, portfolio_id, symbol, amount, dividend_date
          FROM dividend
          WHERE portfolio_id = ?
          ORDER BY dividend_date DESC
      `
	rows, err := s.q.QueryContext(ctx, query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query dividend table: %w", err)
	}
	defer rows.Close()

	dividends := []model.Dividend{}

	for rows.Next() {
		var d model.Dividend
		var dateStr string

		err := rows.Scan(&d.ID, &d.PortfolioID, &d.Symbol, &d.Amount, &dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dividend table results: %w", err)
		}

		d.Date, err = ParseTime(dateStr)
		if err != nil {
			return nil, err
		}

		dividends = append(dividends, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dividend table: %w", err)
	}

	return dividends, nil
}

// SumByPortfolio returns the all-time dividend total for a portfolio.
// Returns 0 when the portfolio has no dividends.
func (s *DividendRepository) SumByPortfolio(ctx context.Context, portfolioID string) (float64, error) {
	query := `
          SELECT SUM(amount)
          FROM dividend
          WHERE portfolio_id = ?
      `
	var total sql.NullFloat64

	if err := s.q.QueryRowContext(ctx, query, portfolioID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum dividend table: %w", err)
	}

	return total.Float64, nil
}
