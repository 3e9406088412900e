package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jmertens/portfolio-tracker-backend/internal/repository"
	"github.com/jmertens/portfolio-tracker-backend/internal/service"
)

// MakeID returns a fresh UUID string for test entities.
func MakeID() string {
	return uuid.New().String()
}

// SilentLogger returns a logger that discards everything, for wiring
// services under test.
func SilentLogger() zerolog.Logger {
	return zerolog.New(nil).Level(zerolog.Disabled)
}

// NewTestLedgerService builds a LedgerService over the given test database.
// No enricher is attached; tests that need one call SetEnricher themselves.
func NewTestLedgerService(t *testing.T, db *sql.DB) *service.LedgerService {
	t.Helper()

	return service.NewLedgerService(
		db,
		repository.NewPortfolioRepository(db),
		repository.NewHoldingRepository(db),
		repository.NewTransactionRepository(db),
		SilentLogger(),
	)
}

// NewTestPortfolioService builds a PortfolioService over the given test database.
func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(
		repository.NewPortfolioRepository(db),
		repository.NewHoldingRepository(db),
	)
}

// NewTestPerformanceService builds a PerformanceService over the given test database.
func NewTestPerformanceService(t *testing.T, db *sql.DB) *service.PerformanceService {
	t.Helper()

	return service.NewPerformanceService(
		repository.NewHoldingRepository(db),
		repository.NewDividendRepository(db),
		repository.NewPortfolioRepository(db),
	)
}

// NewTestTransactionService builds a TransactionService over the given test database.
func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(
		repository.NewTransactionRepository(db),
		repository.NewPortfolioRepository(db),
	)
}

// NewTestDividendService builds a DividendService over the given test database.
func NewTestDividendService(t *testing.T, db *sql.DB) *service.DividendService {
	t.Helper()

	return service.NewDividendService(
		repository.NewDividendRepository(db),
		repository.NewPortfolioRepository(db),
	)
}
