package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jmertens/portfolio-tracker-backend/internal/api/request"
	"github.com/jmertens/portfolio-tracker-backend/internal/api/response"
	"github.com/jmertens/portfolio-tracker-backend/internal/model"
	"github.com/jmertens/portfolio-tracker-backend/internal/service"
	"github.com/jmertens/portfolio-tracker-backend/internal/validation"
)

// HoldingHandler handles holding and price related HTTP requests.
// All mutations delegate to the ledger so every holding change is recorded
// atomically with its transaction-log entry.
type HoldingHandler struct {
	ledgerService *service.LedgerService
	priceService  *service.PriceService
}

// NewHoldingHandler creates a new HoldingHandler with the provided service dependencies.
func NewHoldingHandler(ledgerService *service.LedgerService, priceService *service.PriceService) *HoldingHandler {
	return &HoldingHandler{
		ledgerService: ledgerService,
		priceService:  priceService,
	}
}

// AddHolding handles POST requests to record a buy.
//
// Endpoint: POST /api/portfolios/{portfolioId}/holdings
// Request Body: AddHoldingRequest (symbol, shares, price, date, notes?)
// Response: 201 Created with the post-aggregation Holding
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the portfolio does not exist
func (h *HoldingHandler) AddHolding(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "portfolioId")

	req, err := parseJSON[request.AddHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateAddHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	holding, err := h.ledgerService.AddHolding(r.Context(), portfolioID, req.Symbol, req.Shares, req.Price, date, req.Notes)
	if err != nil {
		respondServiceError(w, err, "failed to add holding")
		return
	}

	response.RespondJSON(w, http.StatusCreated, holding)
}

// SellHolding handles POST requests to record a sell.
//
// Endpoint: POST /api/portfolios/{portfolioId}/holdings/sell
// Request Body: SellHoldingRequest (symbol, shares, price, date)
// Response: 200 OK with {remaining_shares}
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if no holding exists for the symbol
// Error: 409 Conflict if the sell exceeds the position
func (h *HoldingHandler) SellHolding(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "portfolioId")

	req, err := parseJSON[request.SellHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSellHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	result, err := h.ledgerService.SellHolding(r.Context(), portfolioID, req.Symbol, req.Shares, req.Price, date)
	if err != nil {
		respondServiceError(w, err, "failed to sell holding")
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// DeleteHolding handles DELETE requests to remove a holding without a sell.
//
// Endpoint: DELETE /api/portfolios/{portfolioId}/holdings/{holdingId}
// Response: 200 OK with {success: true}
// Error: 404 Not Found if the holding does not belong to the portfolio
func (h *HoldingHandler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "portfolioId")
	holdingID := chi.URLParam(r, "holdingId")

	if err := h.ledgerService.DeleteHolding(r.Context(), portfolioID, holdingID); err != nil {
		respondServiceError(w, err, "failed to delete holding")
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// UpdatePrice handles PUT requests to set the current price of a holding.
//
// Endpoint: PUT /api/portfolios/{portfolioId}/prices
// Request Body: UpdatePriceRequest (symbol, price)
// Response: 200 OK with {success: true}
// Error: 400 Bad Request if the price is negative or the symbol is missing
// Error: 404 Not Found if no holding exists for the symbol
func (h *HoldingHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "portfolioId")

	req, err := parseJSON[request.UpdatePriceRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdatePrice(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.ledgerService.UpdatePrice(r.Context(), portfolioID, req.Symbol, req.Price); err != nil {
		respondServiceError(w, err, "failed to update price")
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// RefreshPrices handles POST requests to refresh all holding prices from the
// external quote source.
//
// Endpoint: POST /api/portfolios/{portfolioId}/prices/refresh
// Response: 200 OK with {updated, failed}
// Error: 404 Not Found if the portfolio does not exist
func (h *HoldingHandler) RefreshPrices(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "portfolioId")

	result, err := h.priceService.RefreshPortfolioPrices(r.Context(), portfolioID)
	if err != nil {
		respondServiceError(w, err, "failed to refresh prices")
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// UpdateMetadata handles PUT requests to patch a holding's sector and
// asset-class metadata. An empty patch is reported as a failed no-op,
// distinguishable from success, and does not touch last_updated.
//
// Endpoint: PUT /api/portfolios/{portfolioId}/holdings/metadata
// Request Body: UpdateMetadataRequest (symbol, sector?, assetClass?)
// Response: 200 OK with {success: true} or {success: false, message}
func (h *HoldingHandler) UpdateMetadata(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "portfolioId")

	req, err := parseJSON[request.UpdateMetadataRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateMetadata(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	patch := model.MetadataPatch{Sector: req.Sector, AssetClass: req.AssetClass}

	if patch.IsEmpty() {
		response.RespondJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "no metadata fields to update",
		})
		return
	}

	applied, err := h.ledgerService.UpdateMetadata(r.Context(), portfolioID, req.Symbol, patch)
	if err != nil {
		respondServiceError(w, err, "failed to update metadata")
		return
	}
	if !applied {
		response.RespondJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "holding not found",
		})
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
