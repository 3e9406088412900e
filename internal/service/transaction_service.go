package service

import (
	"context"

	"github.com/jmertens/portfolio-tracker-backend/internal/model"
	"github.com/jmertens/portfolio-tracker-backend/internal/repository"
)

// TransactionService exposes read access to the append-only transaction log.
// Writes happen exclusively through the LedgerService, atomically with the
// holding mutation they accompany.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	portfolioRepo   *repository.PortfolioRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	portfolioRepo *repository.PortfolioRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		portfolioRepo:   portfolioRepo,
	}
}

// GetTransactionsPerPortfolio retrieves all transactions for a portfolio,
// newest first. Fails with ErrPortfolioNotFound for an unknown portfolio.
func (s *TransactionService) GetTransactionsPerPortfolio(ctx context.Context, portfolioID string) ([]model.Transaction, error) {
	if _, err := s.portfolioRepo.GetOnID(ctx, portfolioID); err != nil {
		return nil, err
	}
	return s.transactionRepo.GetByPortfolio(ctx, portfolioID)
}
