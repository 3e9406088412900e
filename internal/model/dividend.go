package model

import "time"

// Dividend represents a cash dividend received for a symbol in a portfolio.
// Rows are append-only and independent of holding existence: a dividend may
// reference a symbol whose holding was later fully sold.
type Dividend struct {
	ID          string    `json:"id"`
	PortfolioID string    `json:"portfolioId"`
	Symbol      string    `json:"symbol"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"dividendDate"`
}
