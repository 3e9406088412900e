package model

import "time"

// Portfolio represents a portfolio from the database.
// Names are immutable once created; there is no rename or delete path.
type Portfolio struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// PortfolioDetail combines a portfolio with its holdings, each enriched
// with computed performance fields for display.
type PortfolioDetail struct {
	Portfolio Portfolio         `json:"portfolio"`
	Holdings  []EnrichedHolding `json:"holdings"`
}
