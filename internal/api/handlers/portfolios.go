package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmertens/portfolio-tracker-backend/internal/api/request"
	"github.com/jmertens/portfolio-tracker-backend/internal/api/response"
	"github.com/jmertens/portfolio-tracker-backend/internal/apperrors"
	"github.com/jmertens/portfolio-tracker-backend/internal/service"
	"github.com/jmertens/portfolio-tracker-backend/internal/validation"
)

// PortfolioHandler handles portfolio-related HTTP requests.
type PortfolioHandler struct {
	portfolioService   *service.PortfolioService
	performanceService *service.PerformanceService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependencies.
func NewPortfolioHandler(portfolioService *service.PortfolioService, performanceService *service.PerformanceService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService:   portfolioService,
		performanceService: performanceService,
	}
}

// Portfolios handles GET requests to list all portfolios.
//
// Endpoint: GET /api/portfolios
// Response: 200 OK with array of Portfolio
func (h *PortfolioHandler) Portfolios(w http.ResponseWriter, r *http.Request) {
	portfolios, err := h.portfolioService.GetAllPortfolios(r.Context())
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrievePortfolios.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, portfolios)
}

// CreatePortfolio handles POST requests to create a new portfolio.
//
// Endpoint: POST /api/portfolios
// Request Body: CreatePortfolioRequest (name)
// Response: 201 Created with Portfolio
// Error: 400 Bad Request if the name is missing or invalid
func (h *PortfolioHandler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePortfolioRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreatePortfolio(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	portfolio, err := h.portfolioService.CreatePortfolio(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, err, "failed to create portfolio")
		return
	}

	response.RespondJSON(w, http.StatusCreated, portfolio)
}

// Portfolio handles GET requests for a single portfolio with enriched holdings.
//
// Endpoint: GET /api/portfolios/{portfolioId}
// Response: 200 OK with {portfolio, holdings}
// Error: 404 Not Found if the portfolio does not exist
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "portfolioId")

	detail, err := h.portfolioService.GetPortfolioWithHoldings(r.Context(), portfolioID)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrievePortfolio.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, detail)
}

// Performance handles GET requests for the portfolio performance summary.
//
// Endpoint: GET /api/portfolios/{portfolioId}/performance
// Response: 200 OK with PerformanceSummary
// Error: 404 Not Found if the portfolio does not exist
func (h *PortfolioHandler) Performance(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "portfolioId")

	summary, err := h.performanceService.GetPortfolioPerformance(r.Context(), portfolioID)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToGetPerformance.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}
