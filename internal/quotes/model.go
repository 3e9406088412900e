package quotes

// globalQuoteResponse mirrors the Alpha Vantage GLOBAL_QUOTE payload.
// Numeric fields arrive as strings and are parsed by the client.
type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol string `json:"01. symbol"`
		Price  string `json:"05. price"`
	} `json:"Global Quote"`
	Note         string `json:"Note"`
	Information  string `json:"Information"`
	ErrorMessage string `json:"Error Message"`
}

// overviewResponse mirrors the Alpha Vantage OVERVIEW payload, reduced to
// the fields used for holding metadata.
type overviewResponse struct {
	Symbol       string `json:"Symbol"`
	AssetType    string `json:"AssetType"`
	Sector       string `json:"Sector"`
	Note         string `json:"Note"`
	Information  string `json:"Information"`
	ErrorMessage string `json:"Error Message"`
}

// CompanyProfile holds the descriptive metadata attached to a holding.
type CompanyProfile struct {
	Symbol     string
	Sector     string
	AssetClass string
}
