package quotes_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmertens/portfolio-tracker-backend/internal/quotes"
	"github.com/jmertens/portfolio-tracker-backend/internal/testutil"
)

// TestClient_GlobalQuote tests price lookups against a mock Alpha Vantage.
//
// WHY: The free-tier API signals problems through the response body, not
// status codes: an empty "Global Quote" object for unknown symbols and a
// "Note" field when rate limited. The client must map both to typed errors.
func TestClient_GlobalQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("parses the price from the quote payload", func(t *testing.T) {
		server := testutil.NewQuoteServer(t, testutil.QuoteServerConfig{
			Prices: map[string]float64{"AAPL": 187.5},
		})
		client := quotes.NewClient(server.URL, testutil.StaticKeySource("demo"))

		price, err := client.GlobalQuote(ctx, "AAPL")
		if err != nil {
			t.Fatalf("GlobalQuote() returned unexpected error: %v", err)
		}
		if price != 187.5 {
			t.Errorf("Expected price 187.5, got %v", price)
		}
	})

	t.Run("unknown symbol yields ErrPriceNotFound", func(t *testing.T) {
		server := testutil.NewQuoteServer(t, testutil.QuoteServerConfig{})
		client := quotes.NewClient(server.URL, testutil.StaticKeySource("demo"))

		_, err := client.GlobalQuote(ctx, "NOPE")
		if !errors.Is(err, quotes.ErrPriceNotFound) {
			t.Errorf("Expected ErrPriceNotFound, got %v", err)
		}
	})

	t.Run("rate limit note yields ErrRateLimited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
				"Note": "Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day.",
			})
		}))
		t.Cleanup(server.Close)
		client := quotes.NewClient(server.URL, testutil.StaticKeySource("demo"))

		_, err := client.GlobalQuote(ctx, "AAPL")
		if !errors.Is(err, quotes.ErrRateLimited) {
			t.Errorf("Expected ErrRateLimited, got %v", err)
		}
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}))
		t.Cleanup(server.Close)
		client := quotes.NewClient(server.URL, testutil.StaticKeySource("demo"))

		if _, err := client.GlobalQuote(ctx, "AAPL"); err == nil {
			t.Error("Expected an error for HTTP 500")
		}
	})

	t.Run("symbol is upper-cased and key attached to the request", func(t *testing.T) {
		var gotSymbol, gotKey string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotSymbol = r.URL.Query().Get("symbol")
			gotKey = r.URL.Query().Get("apikey")
			json.NewEncoder(w).Encode(map[string]map[string]string{ //nolint:errcheck
				"Global Quote": {"05. price": "10.0000"},
			})
		}))
		t.Cleanup(server.Close)
		client := quotes.NewClient(server.URL, testutil.StaticKeySource("secret-key"))

		if _, err := client.GlobalQuote(ctx, " aapl "); err != nil {
			t.Fatalf("GlobalQuote() returned unexpected error: %v", err)
		}
		if gotSymbol != "AAPL" {
			t.Errorf("Expected symbol AAPL on the wire, got %q", gotSymbol)
		}
		if gotKey != "secret-key" {
			t.Errorf("Expected API key on the wire, got %q", gotKey)
		}
	})

	t.Run("key source failure aborts the lookup", func(t *testing.T) {
		client := quotes.NewClient("http://localhost:1", failingKeySource{})

		if _, err := client.GlobalQuote(ctx, "AAPL"); err == nil {
			t.Error("Expected an error when no API key is available")
		}
	})
}

// TestClient_Overview tests company metadata lookups.
func TestClient_Overview(t *testing.T) {
	ctx := context.Background()

	t.Run("maps sector and asset type", func(t *testing.T) {
		server := testutil.NewQuoteServer(t, testutil.QuoteServerConfig{
			Sectors:    map[string]string{"AAPL": "Technology"},
			AssetTypes: map[string]string{"AAPL": "Common Stock"},
		})
		client := quotes.NewClient(server.URL, testutil.StaticKeySource("demo"))

		profile, err := client.Overview(ctx, "AAPL")
		if err != nil {
			t.Fatalf("Overview() returned unexpected error: %v", err)
		}
		if profile.Sector != "Technology" {
			t.Errorf("Expected sector Technology, got %q", profile.Sector)
		}
		if profile.AssetClass != "Common Stock" {
			t.Errorf("Expected asset class Common Stock, got %q", profile.AssetClass)
		}
	})

	t.Run("unknown symbol yields an empty profile, not an error", func(t *testing.T) {
		server := testutil.NewQuoteServer(t, testutil.QuoteServerConfig{})
		client := quotes.NewClient(server.URL, testutil.StaticKeySource("demo"))

		profile, err := client.Overview(ctx, "NOPE")
		if err != nil {
			t.Fatalf("Overview() returned unexpected error: %v", err)
		}
		if profile.Sector != "" || profile.AssetClass != "" {
			t.Errorf("Expected empty profile, got %+v", profile)
		}
	})
}

type failingKeySource struct{}

func (failingKeySource) APIKey(_ context.Context) (string, error) {
	return "", errors.New("no key configured")
}
