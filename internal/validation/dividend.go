package validation

import (
	"strings"

	"github.com/jmertens/portfolio-tracker-backend/internal/api/request"
)

// ValidateCreateDividend validates a dividend creation request.
//
// Required fields:
//   - symbol: non-empty
//   - amount: must be positive
//   - date: must be in YYYY-MM-DD format
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateDividend(req request.CreateDividendRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if req.Amount <= 0.0 {
		errors["amount"] = "amount must be positive"
	}

	validateDate(errors, "date", req.Date)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
