package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// StaticKeySource is a quotes.KeySource returning a fixed API key.
type StaticKeySource string

// APIKey returns the fixed key.
func (s StaticKeySource) APIKey(_ context.Context) (string, error) {
	return string(s), nil
}

// QuoteServerConfig drives the mock Alpha Vantage server.
type QuoteServerConfig struct {
	// Prices maps symbol to the price returned by GLOBAL_QUOTE.
	Prices map[string]float64

	// Sectors and AssetTypes map symbol to the OVERVIEW metadata fields.
	Sectors    map[string]string
	AssetTypes map[string]string
}

// NewQuoteServer starts a mock Alpha Vantage server answering GLOBAL_QUOTE
// and OVERVIEW calls from the config. Symbols absent from the config get an
// empty payload, matching the real API's behavior for unknown symbols.
// The server is shut down when the test completes.
func NewQuoteServer(t *testing.T, cfg QuoteServerConfig) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := r.URL.Query().Get("symbol")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Query().Get("function") {
		case "GLOBAL_QUOTE":
			body := map[string]any{"Global Quote": map[string]string{}}
			if price, ok := cfg.Prices[symbol]; ok {
				body["Global Quote"] = map[string]string{
					"01. symbol": symbol,
					"05. price":  fmt.Sprintf("%.4f", price),
				}
			}
			json.NewEncoder(w).Encode(body) //nolint:errcheck
		case "OVERVIEW":
			body := map[string]string{}
			if sector, ok := cfg.Sectors[symbol]; ok {
				body["Symbol"] = symbol
				body["Sector"] = sector
				body["AssetType"] = cfg.AssetTypes[symbol]
			}
			json.NewEncoder(w).Encode(body) //nolint:errcheck
		default:
			http.Error(w, "unknown function", http.StatusBadRequest)
		}
	}))

	t.Cleanup(server.Close)

	return server
}
