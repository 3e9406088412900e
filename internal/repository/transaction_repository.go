package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmertens/portfolio-tracker-backend/internal/model"
)

// TransactionRepository provides data access methods for the transactions table.
// The table is an append-only audit log: rows record the raw lot of each buy
// and sell and are never mutated or deleted.
type TransactionRepository struct {
	q Querier
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{q: db}
}

// WithTx returns a copy of the repository scoped to the given transaction.
func (s *TransactionRepository) WithTx(tx *sql.Tx) *TransactionRepository {
	return &TransactionRepository{q: tx}
}

// Insert appends a transaction to the audit log.
func (s *TransactionRepository) Insert(ctx context.Context, t model.Transaction) error {
	query := `
          INSERT INTO transactions (id, portfolio_id, symbol, transaction_type, shares, price, transaction_date, notes, created_at)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
      `
	var notes any
	if t.Notes != "" {
		notes = t.Notes
	}

	_, err := s.q.ExecContext(ctx, query,
		t.ID,
		t.PortfolioID,
		t.Symbol,
		t.Type,
		t.Shares,
		t.Price,
		t.Date.UTC().Format("2006-01-02"),
		notes,
		t.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetByPortfolio retrieves all transactions for a portfolio, newest first.
// Returns an empty slice if the portfolio has no transactions.
func (s *TransactionRepository) GetByPortfolio(ctx context.Context, portfolioID string) ([]model.Transaction, error) {
	query := `
          SELECT id, portfolio_id, symbol, transaction_type, shares, price, transaction_date, notes, created_at
          FROM transactions
          WHERE portfolio_id = ?
          ORDER BY transaction_date DESC, created_at DESC
      `
	rows, err := s.q.QueryContext(ctx, query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		var t model.Transaction
		var dateStr, createdAtStr string
		var notes sql.NullString

		err := rows.Scan(
			&t.ID,
			&t.PortfolioID,
			&t.Symbol,
			&t.Type,
			&t.Shares,
			&t.Price,
			&dateStr,
			&notes,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transactions table results: %w", err)
		}

		t.Date, err = ParseTime(dateStr)
		if err != nil {
			return nil, err
		}

		t.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, err
		}

		t.Notes = notes.String

		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions table: %w", err)
	}

	return transactions, nil
}
