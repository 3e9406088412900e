package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/jmertens/portfolio-tracker-backend/internal/model"
)

// PortfolioBuilder provides a fluent interface for creating test portfolios.
//
// Example usage:
//
//	portfolio := testutil.NewPortfolio().WithName("Retirement").Build(t, db)
type PortfolioBuilder struct {
	ID   string
	Name string
}

// NewPortfolio creates a PortfolioBuilder with sensible defaults.
func NewPortfolio() *PortfolioBuilder {
	return &PortfolioBuilder{
		ID:   MakeID(),
		Name: "Test Portfolio",
	}
}

// WithID sets a custom ID.
func (b *PortfolioBuilder) WithID(id string) *PortfolioBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *PortfolioBuilder) WithName(name string) *PortfolioBuilder {
	b.Name = name
	return b
}

// Build inserts the portfolio and returns the resulting model.
func (b *PortfolioBuilder) Build(t *testing.T, db *sql.DB) model.Portfolio {
	t.Helper()

	createdAt := time.Now().UTC()
	_, err := db.Exec(
		`INSERT INTO portfolio (id, name, created_at) VALUES (?, ?, ?)`,
		b.ID, b.Name, createdAt.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		t.Fatalf("Failed to insert test portfolio: %v", err)
	}

	return model.Portfolio{ID: b.ID, Name: b.Name, CreatedAt: createdAt}
}

// HoldingBuilder provides a fluent interface for creating test holdings.
type HoldingBuilder struct {
	ID           string
	PortfolioID  string
	Symbol       string
	Shares       float64
	AverageCost  float64
	CurrentPrice float64
	Sector       string
	AssetClass   string
}

// NewHolding creates a HoldingBuilder with sensible defaults for the given portfolio.
func NewHolding(portfolioID string) *HoldingBuilder {
	return &HoldingBuilder{
		ID:          MakeID(),
		PortfolioID: portfolioID,
		Symbol:      "AAPL",
		Shares:      10,
		AverageCost: 100,
	}
}

// WithSymbol sets a custom symbol.
func (b *HoldingBuilder) WithSymbol(symbol string) *HoldingBuilder {
	b.Symbol = symbol
	return b
}

// WithShares sets a custom share count.
func (b *HoldingBuilder) WithShares(shares float64) *HoldingBuilder {
	b.Shares = shares
	return b
}

// WithAverageCost sets a custom average cost.
func (b *HoldingBuilder) WithAverageCost(cost float64) *HoldingBuilder {
	b.AverageCost = cost
	return b
}

// WithCurrentPrice sets a custom current price.
func (b *HoldingBuilder) WithCurrentPrice(price float64) *HoldingBuilder {
	b.CurrentPrice = price
	return b
}

// WithMetadata sets sector and asset class.
func (b *HoldingBuilder) WithMetadata(sector, assetClass string) *HoldingBuilder {
	b.Sector = sector
	b.AssetClass = assetClass
	return b
}

// Build inserts the holding and returns the resulting model.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.Holding {
	t.Helper()

	var sector, assetClass any
	if b.Sector != "" {
		sector = b.Sector
	}
	if b.AssetClass != "" {
		assetClass = b.AssetClass
	}

	lastUpdated := time.Now().UTC()
	_, err := db.Exec(
		`INSERT INTO holding (id, portfolio_id, symbol, shares, average_cost, current_price, sector, asset_class, last_updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.PortfolioID, b.Symbol, b.Shares, b.AverageCost, b.CurrentPrice, sector, assetClass, lastUpdated.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to insert test holding: %v", err)
	}

	return model.Holding{
		ID:           b.ID,
		PortfolioID:  b.PortfolioID,
		Symbol:       b.Symbol,
		Shares:       b.Shares,
		AverageCost:  b.AverageCost,
		CurrentPrice: b.CurrentPrice,
		Sector:       b.Sector,
		AssetClass:   b.AssetClass,
		LastUpdated:  lastUpdated,
	}
}

// DividendBuilder provides a fluent interface for creating test dividends.
type DividendBuilder struct {
	ID          string
	PortfolioID string
	Symbol      string
	Amount      float64
	Date        time.Time
}

// NewDividend creates a DividendBuilder with sensible defaults for the given portfolio.
func NewDividend(portfolioID string) *DividendBuilder {
	return &DividendBuilder{
		ID:          MakeID(),
		PortfolioID: portfolioID,
		Symbol:      "AAPL",
		Amount:      10,
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithSymbol sets a custom symbol.
func (b *DividendBuilder) WithSymbol(symbol string) *DividendBuilder {
	b.Symbol = symbol
	return b
}

// WithAmount sets a custom amount.
func (b *DividendBuilder) WithAmount(amount float64) *DividendBuilder {
	b.Amount = amount
	return b
}

// WithDate sets a custom payment date.
func (b *DividendBuilder) WithDate(date time.Time) *DividendBuilder {
	b.Date = date
	return b
}

// Build inserts the dividend and returns the resulting model.
func (b *DividendBuilder) Build(t *testing.T, db *sql.DB) model.Dividend {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO dividend (id, portfolio_id, symbol, amount, dividend_date) VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.PortfolioID, b.Symbol, b.Amount, b.Date.Format("2006-01-02"),
	)
	if err != nil {
		t.Fatalf("Failed to insert test dividend: %v", err)
	}

	return model.Dividend{
		ID:          b.ID,
		PortfolioID: b.PortfolioID,
		Symbol:      b.Symbol,
		Amount:      b.Amount,
		Date:        b.Date,
	}
}
