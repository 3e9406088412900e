package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmertens/portfolio-tracker-backend/internal/api/response"
	"github.com/jmertens/portfolio-tracker-backend/internal/apperrors"
	"github.com/jmertens/portfolio-tracker-backend/internal/service"
)

// TransactionHandler handles HTTP requests for the transaction log.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Transactions handles GET requests for a portfolio's transaction log,
// newest first.
//
// Endpoint: GET /api/portfolios/{portfolioId}/transactions
// Response: 200 OK with array of Transaction
// Error: 404 Not Found if the portfolio does not exist
func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "portfolioId")

	transactions, err := h.transactionService.GetTransactionsPerPortfolio(r.Context(), portfolioID)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveTransactions.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}
