// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmertens/portfolio-tracker-backend/internal/api/response"
	"github.com/jmertens/portfolio-tracker-backend/internal/validation"
)

// ValidatePortfolioIDMiddleware validates that the portfolioId URL parameter
// is present and is a valid UUID. Returns 400 Bad Request otherwise.
// Applied to all routes nested under /portfolios/{portfolioId}.
func ValidatePortfolioIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		portfolioID := chi.URLParam(r, "portfolioId")

		if portfolioID == "" {
			response.RespondError(w, http.StatusBadRequest, "valid portfolio ID is required", "")
			return
		}

		if err := validation.ValidateUUID(portfolioID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid portfolio ID", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
