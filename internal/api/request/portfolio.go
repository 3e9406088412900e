package request

// CreatePortfolioRequest is the payload for creating a portfolio.
type CreatePortfolioRequest struct {
	Name string `json:"name"`
}
