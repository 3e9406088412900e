// Package quotes provides a client for the Alpha Vantage API, used for
// current price lookups and best-effort company metadata enrichment.
package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client errors.
var (
	// ErrPriceNotFound indicates the API returned no usable price for the symbol.
	ErrPriceNotFound = errors.New("price not found")

	// ErrRateLimited indicates the API answered with a rate-limit or
	// information note instead of data.
	ErrRateLimited = errors.New("quote API rate limit reached")
)

// KeySource supplies the API key at request time, so a key stored through
// the settings endpoint takes effect without a restart.
type KeySource interface {
	APIKey(ctx context.Context) (string, error)
}

// Client provides methods for fetching quote and company data from Alpha Vantage.
type Client struct {
	baseURL    string
	keys       KeySource
	httpClient *http.Client
}

// NewClient creates a new Alpha Vantage client.
// baseURL is the API root without a trailing slash, e.g. "https://www.alphavantage.co".
func NewClient(baseURL string, keys KeySource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		keys:    keys,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GlobalQuote fetches the latest price for a symbol.
//
// Returns ErrPriceNotFound when the API has no price for the symbol and
// ErrRateLimited when the free-tier quota is exhausted.
func (c *Client) GlobalQuote(ctx context.Context, symbol string) (float64, error) {
	var result globalQuoteResponse
	if err := c.query(ctx, "GLOBAL_QUOTE", symbol, &result); err != nil {
		return 0, err
	}

	if result.Note != "" || result.Information != "" {
		return 0, ErrRateLimited
	}
	if result.ErrorMessage != "" {
		return 0, fmt.Errorf("quote API error: %s", result.ErrorMessage)
	}
	if result.GlobalQuote.Price == "" {
		return 0, ErrPriceNotFound
	}

	price, err := strconv.ParseFloat(result.GlobalQuote.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse price %q: %w", result.GlobalQuote.Price, err)
	}

	return price, nil
}

// Overview fetches company metadata (sector, asset type) for a symbol.
// An empty profile with no error means the API knows nothing about the symbol.
func (c *Client) Overview(ctx context.Context, symbol string) (CompanyProfile, error) {
	var result overviewResponse
	if err := c.query(ctx, "OVERVIEW", symbol, &result); err != nil {
		return CompanyProfile{}, err
	}

	if result.Note != "" || result.Information != "" {
		return CompanyProfile{}, ErrRateLimited
	}
	if result.ErrorMessage != "" {
		return CompanyProfile{}, fmt.Errorf("quote API error: %s", result.ErrorMessage)
	}

	return CompanyProfile{
		Symbol:     result.Symbol,
		Sector:     result.Sector,
		AssetClass: result.AssetType,
	}, nil
}

// query executes a single API function call and decodes the JSON response.
func (c *Client) query(ctx context.Context, function, symbol string, out any) error {
	apiKey, err := c.keys.APIKey(ctx)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/query?function=%s&symbol=%s&apikey=%s",
		c.baseURL,
		function,
		url.QueryEscape(strings.ToUpper(strings.TrimSpace(symbol))),
		url.QueryEscape(apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build quote request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "portfolio-tracker/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("quote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode quote response: %w", err)
	}

	return nil
}
