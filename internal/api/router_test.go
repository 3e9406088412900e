package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmertens/portfolio-tracker-backend/internal/api"
	"github.com/jmertens/portfolio-tracker-backend/internal/config"
	"github.com/jmertens/portfolio-tracker-backend/internal/repository"
	"github.com/jmertens/portfolio-tracker-backend/internal/service"
	"github.com/jmertens/portfolio-tracker-backend/internal/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	portfolio := testutil.NewPortfolio().Build(t, db)

	ledger := testutil.NewTestLedgerService(t, db)
	settings, err := service.NewSettingsService(repository.NewSettingsRepository(db), "", "")
	if err != nil {
		t.Fatalf("NewSettingsService() returned unexpected error: %v", err)
	}

	svcs := api.Services{
		Portfolio:   testutil.NewTestPortfolioService(t, db),
		Ledger:      ledger,
		Performance: testutil.NewTestPerformanceService(t, db),
		Transaction: testutil.NewTestTransactionService(t, db),
		Dividend:    testutil.NewTestDividendService(t, db),
		Price: service.NewPriceService(
			ledger,
			repository.NewPortfolioRepository(db),
			repository.NewHoldingRepository(db),
			nil,
			testutil.SilentLogger(),
		),
		Settings: settings,
	}

	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	return api.NewRouter(db, svcs, cfg, testutil.SilentLogger()), portfolio.ID
}

// TestRouter exercises routing and middleware through the full HTTP stack.
//
// WHY: Handler unit tests inject chi URL parameters by hand; this test makes
// sure the real route patterns and the portfolio ID middleware line up with
// what the handlers expect.
func TestRouter(t *testing.T) {
	t.Run("health endpoint responds", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rec.Code)
		}
	})

	t.Run("malformed portfolio ID is rejected before the handler", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolios/not-a-uuid", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})

	t.Run("buy then read back through the routes", func(t *testing.T) {
		router, portfolioID := newTestRouter(t)

		body := strings.NewReader(`{"symbol":"AAPL","shares":10,"price":150,"date":"2024-01-15"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/portfolios/"+portfolioID+"/holdings", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolios/"+portfolioID, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"AAPL"`) {
			t.Errorf("Expected the holding in the detail response, got %s", rec.Body.String())
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolios/"+portfolioID+"/transactions", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"BUY"`) {
			t.Errorf("Expected a BUY entry in the transaction log, got %s", rec.Body.String())
		}
	})

	t.Run("unknown route returns 404", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})
}
