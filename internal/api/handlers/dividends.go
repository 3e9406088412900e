package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jmertens/portfolio-tracker-backend/internal/api/request"
	"github.com/jmertens/portfolio-tracker-backend/internal/api/response"
	"github.com/jmertens/portfolio-tracker-backend/internal/apperrors"
	"github.com/jmertens/portfolio-tracker-backend/internal/service"
	"github.com/jmertens/portfolio-tracker-backend/internal/validation"
)

// DividendHandler handles HTTP requests for dividend endpoints.
type DividendHandler struct {
	dividendService *service.DividendService
}

// NewDividendHandler creates a new DividendHandler with the provided service dependency.
func NewDividendHandler(dividendService *service.DividendService) *DividendHandler {
	return &DividendHandler{
		dividendService: dividendService,
	}
}

// CreateDividend handles POST requests to record a dividend payment.
// The symbol does not need an active holding.
//
// Endpoint: POST /api/portfolios/{portfolioId}/dividends
// Request Body: CreateDividendRequest (symbol, amount, date)
// Response: 201 Created with Dividend
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the portfolio does not exist
func (h *DividendHandler) CreateDividend(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "portfolioId")

	req, err := parseJSON[request.CreateDividendRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateDividend(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	dividend, err := h.dividendService.CreateDividend(r.Context(), portfolioID, req.Symbol, req.Amount, date)
	if err != nil {
		respondServiceError(w, err, "failed to create dividend")
		return
	}

	response.RespondJSON(w, http.StatusCreated, dividend)
}

// Dividends handles GET requests for a portfolio's dividends, newest first.
//
// Endpoint: GET /api/portfolios/{portfolioId}/dividends
// Response: 200 OK with array of Dividend
// Error: 404 Not Found if the portfolio does not exist
func (h *DividendHandler) Dividends(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "portfolioId")

	dividends, err := h.dividendService.GetDividendsPerPortfolio(r.Context(), portfolioID)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveDividends.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, dividends)
}
