package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmertens/portfolio-tracker-backend/internal/apperrors"
	"github.com/jmertens/portfolio-tracker-backend/internal/model"
)

// PortfolioRepository provides data access methods for the portfolio table.
type PortfolioRepository struct {
	q Querier
}

// NewPortfolioRepository creates a new PortfolioRepository with the provided database connection.
func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{q: db}
}

// WithTx returns a copy of the repository scoped to the given transaction.
func (s *PortfolioRepository) WithTx(tx *sql.Tx) *PortfolioRepository {
	return &PortfolioRepository{q: tx}
}

// Insert stores a new portfolio row.
func (s *PortfolioRepository) Insert(ctx context.Context, p model.Portfolio) error {
	query := `
          INSERT INTO portfolio (id, name, created_at)
          VALUES (?, ?, ?)
      `
	if _, err := s.q.ExecContext(ctx, query, p.ID, p.Name, p.CreatedAt.UTC().Format("2006-01-02 15:04:05")); err != nil {
		return fmt.Errorf("failed to insert portfolio: %w", err)
	}
	return nil
}

// GetAll retrieves every portfolio, oldest first.
// Returns an empty slice if no portfolios exist.
func (s *PortfolioRepository) GetAll(ctx context.Context) ([]model.Portfolio, error) {
	query := `
          SELECT id, name, created_at
          FROM portfolio
          ORDER BY created_at ASC
      `
	rows, err := s.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio table: %w", err)
	}
	defer rows.Close()

	portfolios := []model.Portfolio{}

	for rows.Next() {
		var p model.Portfolio
		var createdAtStr string

		if err := rows.Scan(&p.ID, &p.Name, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio table results: %w", err)
		}

		p.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, err
		}

		portfolios = append(portfolios, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio table: %w", err)
	}

	return portfolios, nil
}

// GetOnID retrieves a single portfolio by its ID.
// Returns apperrors.ErrPortfolioNotFound if no row exists.
func (s *PortfolioRepository) GetOnID(ctx context.Context, portfolioID string) (model.Portfolio, error) {
	query := `
          SELECT id, name, created_at
          FROM portfolio
          WHERE id = ?
      `
	var p model.Portfolio
	var createdAtStr string

	err := s.q.QueryRowContext(ctx, query, portfolioID).Scan(&p.ID, &p.Name, &createdAtStr)
	if err == sql.ErrNoRows {
		return model.Portfolio{}, apperrors.ErrPortfolioNotFound
	}
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to query portfolio: %w", err)
	}

	p.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Portfolio{}, err
	}

	return p, nil
}
