package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/jmertens/portfolio-tracker-backend/internal/api/handlers"
	custommiddleware "github.com/jmertens/portfolio-tracker-backend/internal/api/middleware"
	"github.com/jmertens/portfolio-tracker-backend/internal/config"
	"github.com/jmertens/portfolio-tracker-backend/internal/service"
)

// Services bundles the service dependencies the router wires into handlers.
type Services struct {
	Portfolio   *service.PortfolioService
	Ledger      *service.LedgerService
	Performance *service.PerformanceService
	Transaction *service.TransactionService
	Dividend    *service.DividendService
	Price       *service.PriceService
	Settings    *service.SettingsService
}

// NewRouter creates and configures the HTTP router
func NewRouter(db *sql.DB, svcs Services, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	systemHandler := handlers.NewSystemHandler(db)
	portfolioHandler := handlers.NewPortfolioHandler(svcs.Portfolio, svcs.Performance)
	holdingHandler := handlers.NewHoldingHandler(svcs.Ledger, svcs.Price)
	transactionHandler := handlers.NewTransactionHandler(svcs.Transaction)
	dividendHandler := handlers.NewDividendHandler(svcs.Dividend)
	settingsHandler := handlers.NewSettingsHandler(svcs.Settings)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", systemHandler.Health)

		r.Route("/portfolios", func(r chi.Router) {
			r.Get("/", portfolioHandler.Portfolios)
			r.Post("/", portfolioHandler.CreatePortfolio)

			r.Route("/{portfolioId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidatePortfolioIDMiddleware)

				r.Get("/", portfolioHandler.Portfolio)
				r.Get("/performance", portfolioHandler.Performance)

				r.Post("/holdings", holdingHandler.AddHolding)
				r.Post("/holdings/sell", holdingHandler.SellHolding)
				r.Put("/holdings/metadata", holdingHandler.UpdateMetadata)
				r.Delete("/holdings/{holdingId}", holdingHandler.DeleteHolding)

				r.Put("/prices", holdingHandler.UpdatePrice)
				r.Post("/prices/refresh", holdingHandler.RefreshPrices)

				r.Get("/transactions", transactionHandler.Transactions)

				r.Get("/dividends", dividendHandler.Dividends)
				r.Post("/dividends", dividendHandler.CreateDividend)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			r.Put("/api-key", settingsHandler.SetAPIKey)
		})
	})

	return r
}
