package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPortfolioNotFound indicates that a portfolio with the given ID does not exist.
	ErrPortfolioNotFound = errors.New("portfolio not found")

	// ErrHoldingNotFound indicates that no holding exists for the given portfolio and symbol.
	ErrHoldingNotFound = errors.New("holding not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInsufficientShares indicates that a sell cannot be completed because
	// the holding does not contain enough shares. Short selling is not supported.
	ErrInsufficientShares = errors.New("insufficient shares to sell")

	// ErrInvalidShares indicates that a share count is zero or negative.
	ErrInvalidShares = errors.New("shares must be positive")

	// ErrInvalidPrice indicates that a price has an invalid negative value.
	ErrInvalidPrice = errors.New("price cannot be negative")

	// ErrInvalidSymbol indicates that a required symbol is empty or missing.
	ErrInvalidSymbol = errors.New("symbol is required")

	// ErrInvalidDate indicates that a date is missing or not a valid calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount must be positive")

	// ErrEmptyMetadataPatch indicates a metadata update that carries no fields to write.
	ErrEmptyMetadataPatch = errors.New("no metadata fields to update")
)

// Configuration errors.
var (
	// ErrAPIKeyNotConfigured indicates that no quotes API key has been stored or set.
	ErrAPIKeyNotConfigured = errors.New("quotes API key not configured")

	// ErrEncryptionKeyMissing indicates that the key used to encrypt stored secrets is not set.
	ErrEncryptionKeyMissing = errors.New("encryption key not configured")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	ErrFailedToRetrievePortfolios   = errors.New("failed to retrieve portfolios")
	ErrFailedToRetrievePortfolio    = errors.New("failed to retrieve portfolio")
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveDividends    = errors.New("failed to retrieve dividends")
	ErrFailedToGetPerformance       = errors.New("failed to get portfolio performance")
)
