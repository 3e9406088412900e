package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	stdlog "log"

	"github.com/jmertens/portfolio-tracker-backend/internal/api"
	"github.com/jmertens/portfolio-tracker-backend/internal/config"
	"github.com/jmertens/portfolio-tracker-backend/internal/database"
	"github.com/jmertens/portfolio-tracker-backend/internal/logger"
	"github.com/jmertens/portfolio-tracker-backend/internal/quotes"
	"github.com/jmertens/portfolio-tracker-backend/internal/repository"
	"github.com/jmertens/portfolio-tracker-backend/internal/scheduler"
	"github.com/jmertens/portfolio-tracker-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	log.Info().Str("path", cfg.Database.Path).Msg("connected to database")

	// Create repositories
	portfolioRepo := repository.NewPortfolioRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	dividendRepo := repository.NewDividendRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Create services
	settingsService, err := service.NewSettingsService(settingsRepo, cfg.Quotes.FernetKey, cfg.Quotes.APIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize settings service")
	}

	quotesClient := quotes.NewClient(cfg.Quotes.BaseURL, settingsService)

	ledgerService := service.NewLedgerService(db, portfolioRepo, holdingRepo, transactionRepo, log)
	enrichmentService := service.NewEnrichmentService(ledgerService, quotesClient, log)
	ledgerService.SetEnricher(enrichmentService)

	portfolioService := service.NewPortfolioService(portfolioRepo, holdingRepo)
	performanceService := service.NewPerformanceService(holdingRepo, dividendRepo, portfolioRepo)
	transactionService := service.NewTransactionService(transactionRepo, portfolioRepo)
	dividendService := service.NewDividendService(dividendRepo, portfolioRepo)
	priceService := service.NewPriceService(ledgerService, portfolioRepo, holdingRepo, quotesClient, log)

	// Background price refresh
	sched := scheduler.New(priceService, log)
	cronSpec := cfg.Scheduler.CronSpec
	if !settingsService.HasAPIKey(context.Background()) {
		log.Warn().Msg("no quotes API key configured, scheduled price refresh disabled")
		cronSpec = ""
	}
	if err := sched.Start(cronSpec); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}

	// Create router
	router := api.NewRouter(db, api.Services{
		Portfolio:   portfolioService,
		Ledger:      ledgerService,
		Performance: performanceService,
		Transaction: transactionService,
		Dividend:    dividendService,
		Price:       priceService,
		Settings:    settingsService,
	}, cfg, log)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	sched.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
