package model

import "time"

// Transaction types recorded in the audit log.
const (
	TransactionTypeBuy  = "BUY"
	TransactionTypeSell = "SELL"
)

// Transaction represents a buy or sell event for a portfolio symbol.
// Rows are append-only: they record the raw lot (shares and price as entered),
// never the rolled-up holding state, and are never mutated or deleted.
type Transaction struct {
	ID          string    `json:"id"`
	PortfolioID string    `json:"portfolioId"`
	Symbol      string    `json:"symbol"`
	Type        string    `json:"transactionType"`
	Shares      float64   `json:"shares"`
	Price       float64   `json:"price"`
	Date        time.Time `json:"transactionDate"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
