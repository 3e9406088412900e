package validation

import (
	"strings"
	"time"

	"github.com/jmertens/portfolio-tracker-backend/internal/api/request"
)

// ValidateAddHolding validates a buy request.
//
// Required fields:
//   - symbol: non-empty
//   - shares: must be positive
//   - price: must not be negative (zero is allowed, e.g. stock grants)
//   - date: must be in YYYY-MM-DD format
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateAddHolding(req request.AddHoldingRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if req.Shares <= 0.0 {
		errors["shares"] = "shares must be positive"
	}

	if req.Price < 0.0 {
		errors["price"] = "price cannot be negative"
	}

	validateDate(errors, "date", req.Date)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateSellHolding validates a sell request. The share-count check against
// the existing position happens in the ledger, not here.
func ValidateSellHolding(req request.SellHoldingRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if req.Shares <= 0.0 {
		errors["shares"] = "shares must be positive"
	}

	if req.Price < 0.0 {
		errors["price"] = "price cannot be negative"
	}

	validateDate(errors, "date", req.Date)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdatePrice validates a manual price update.
// Negative prices are rejected; zero is accepted and treated as "no quote".
func ValidateUpdatePrice(req request.UpdatePriceRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if req.Price < 0.0 {
		errors["price"] = "price cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateMetadata validates a metadata patch request.
// An empty patch is legal at this layer; the ledger reports it as a no-op.
func ValidateUpdateMetadata(req request.UpdateMetadataRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func validateDate(errors map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		errors[field] = "date is required"
		return
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		errors[field] = err.Error()
	}
}
