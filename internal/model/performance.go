package model

// PerformanceSummary represents the aggregate performance of a portfolio.
// Percentage fields resolve to 0 when the corresponding cost basis is 0
// (no holdings, or all holdings sold) rather than NaN or Infinity.
type PerformanceSummary struct {
	TotalMarketValue   float64 `json:"totalMarketValue"`   // Current market value over all holdings
	TotalCostBasis     float64 `json:"totalCostBasis"`     // Current cost basis over all holdings
	UnrealizedGainLoss float64 `json:"unrealizedGainLoss"` // Market value minus cost basis
	TotalDividends     float64 `json:"totalDividends"`     // Cumulative dividends, all-time
	TotalReturn        float64 `json:"totalReturn"`        // Unrealized gain/loss plus dividends
	TotalReturnPercent float64 `json:"totalReturnPercent"` // Total return over cost basis, in percent
}
