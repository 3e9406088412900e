package validation

import (
	"strings"

	"github.com/jmertens/portfolio-tracker-backend/internal/api/request"
)

// ValidateCreatePortfolio validates a portfolio creation request.
func ValidateCreatePortfolio(req request.CreatePortfolioRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or fewer"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
