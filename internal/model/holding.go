package model

import "time"

// Holding represents a position in a single symbol within a portfolio.
// At most one holding row exists per (portfolio, symbol) pair; the row is
// deleted when a sell brings the share count to zero.
//
// AverageCost is the shares-weighted mean purchase price across all buys and
// is never changed by a sell. CurrentPrice is informational only and plays no
// part in cost-basis math; it defaults to 0 until a price update arrives.
type Holding struct {
	ID           string    `json:"id"`
	PortfolioID  string    `json:"portfolioId"`
	Symbol       string    `json:"symbol"`
	Shares       float64   `json:"shares"`
	AverageCost  float64   `json:"averageCost"`
	CurrentPrice float64   `json:"currentPrice"`
	Sector       string    `json:"sector,omitempty"`
	AssetClass   string    `json:"assetClass,omitempty"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// EnrichedHolding is a holding with derived performance fields attached.
// Used for API responses that list holdings.
type EnrichedHolding struct {
	Holding
	MarketValue     float64 `json:"marketValue"`
	CostBasis       float64 `json:"costBasis"`
	GainLoss        float64 `json:"gainLoss"`
	GainLossPercent float64 `json:"gainLossPercent"`
}

// MetadataPatch is a typed partial update for a holding's descriptive
// metadata. Only non-nil fields are written. An empty patch is a no-op and
// is reported as such, distinguishable from a successful update.
type MetadataPatch struct {
	Sector     *string `json:"sector,omitempty"`
	AssetClass *string `json:"assetClass,omitempty"`
}

// IsEmpty reports whether the patch carries no fields to write.
func (p MetadataPatch) IsEmpty() bool {
	return p.Sector == nil && p.AssetClass == nil
}
