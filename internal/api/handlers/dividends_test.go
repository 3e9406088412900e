package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fernet/fernet-go"

	"github.com/jmertens/portfolio-tracker-backend/internal/api/handlers"
	"github.com/jmertens/portfolio-tracker-backend/internal/api/request"
	"github.com/jmertens/portfolio-tracker-backend/internal/model"
	"github.com/jmertens/portfolio-tracker-backend/internal/repository"
	"github.com/jmertens/portfolio-tracker-backend/internal/service"
	"github.com/jmertens/portfolio-tracker-backend/internal/testutil"
)

// TestDividendHandler_CreateDividend tests the dividend endpoint.
func TestDividendHandler_CreateDividend(t *testing.T) {
	t.Run("valid request returns 201", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDividendHandler(testutil.NewTestDividendService(t, db))
		portfolio := testutil.NewPortfolio().Build(t, db)

		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPost, "/api/portfolios/"+portfolio.ID+"/dividends",
			request.CreateDividendRequest{Symbol: "MSFT", Amount: 12.5, Date: "2024-03-15"},
			map[string]string{"portfolioId": portfolio.ID},
		)
		rec := httptest.NewRecorder()
		handler.CreateDividend(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var dividend model.Dividend
		decodeBody(t, rec, &dividend)
		if dividend.Symbol != "MSFT" || dividend.Amount != 12.5 {
			t.Errorf("Unexpected dividend in response: %+v", dividend)
		}
	})

	t.Run("non-positive amount returns 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDividendHandler(testutil.NewTestDividendService(t, db))
		portfolio := testutil.NewPortfolio().Build(t, db)

		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPost, "/api/portfolios/"+portfolio.ID+"/dividends",
			request.CreateDividendRequest{Symbol: "MSFT", Amount: 0, Date: "2024-03-15"},
			map[string]string{"portfolioId": portfolio.ID},
		)
		rec := httptest.NewRecorder()
		handler.CreateDividend(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})

	t.Run("unknown portfolio returns 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewDividendHandler(testutil.NewTestDividendService(t, db))
		id := testutil.MakeID()

		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPost, "/api/portfolios/"+id+"/dividends",
			request.CreateDividendRequest{Symbol: "MSFT", Amount: 12.5, Date: "2024-03-15"},
			map[string]string{"portfolioId": id},
		)
		rec := httptest.NewRecorder()
		handler.CreateDividend(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})
}

// TestSettingsHandler_SetAPIKey tests the API key endpoint.
func TestSettingsHandler_SetAPIKey(t *testing.T) {
	newService := func(t *testing.T, fernetKey string) *service.SettingsService {
		t.Helper()
		db := testutil.SetupTestDB(t)
		svc, err := service.NewSettingsService(repository.NewSettingsRepository(db), fernetKey, "")
		if err != nil {
			t.Fatalf("NewSettingsService() returned unexpected error: %v", err)
		}
		return svc
	}

	generateKey := func(t *testing.T) string {
		t.Helper()
		var key fernet.Key
		if err := key.Generate(); err != nil {
			t.Fatalf("Failed to generate fernet key: %v", err)
		}
		return key.Encode()
	}

	t.Run("stores the key", func(t *testing.T) {
		handler := handlers.NewSettingsHandler(newService(t, generateKey(t)))

		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPut, "/api/settings/api-key",
			request.SetAPIKeyRequest{APIKey: "demo-key"}, nil)
		rec := httptest.NewRecorder()
		handler.SetAPIKey(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("empty key returns 400", func(t *testing.T) {
		handler := handlers.NewSettingsHandler(newService(t, generateKey(t)))

		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPut, "/api/settings/api-key",
			request.SetAPIKeyRequest{APIKey: "  "}, nil)
		rec := httptest.NewRecorder()
		handler.SetAPIKey(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})

	t.Run("missing encryption key returns 503", func(t *testing.T) {
		handler := handlers.NewSettingsHandler(newService(t, ""))

		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPut, "/api/settings/api-key",
			request.SetAPIKeyRequest{APIKey: "demo-key"}, nil)
		rec := httptest.NewRecorder()
		handler.SetAPIKey(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected status 503, got %d", rec.Code)
		}
	})
}

// TestSystemHandler_Health tests the health endpoint.
func TestSystemHandler_Health(t *testing.T) {
	t.Run("healthy database returns 200", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(db)

		rec := httptest.NewRecorder()
		handler.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rec.Code)
		}
	})

	t.Run("closed database returns 503", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		db.Close()
		handler := handlers.NewSystemHandler(db)

		rec := httptest.NewRecorder()
		handler.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected status 503, got %d", rec.Code)
		}
	})
}
