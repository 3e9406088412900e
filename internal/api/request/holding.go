// Package request defines the JSON payloads accepted at the API boundary.
package request

// AddHoldingRequest is the payload for recording a buy.
// Date is the purchase date in YYYY-MM-DD format.
type AddHoldingRequest struct {
	Symbol string  `json:"symbol"`
	Shares float64 `json:"shares"`
	Price  float64 `json:"price"`
	Date   string  `json:"date"`
	Notes  string  `json:"notes,omitempty"`
}

// SellHoldingRequest is the payload for recording a sell.
type SellHoldingRequest struct {
	Symbol string  `json:"symbol"`
	Shares float64 `json:"shares"`
	Price  float64 `json:"price"`
	Date   string  `json:"date"`
}

// UpdatePriceRequest is the payload for a manual price update.
type UpdatePriceRequest struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// UpdateMetadataRequest is the payload for a partial metadata update.
// Absent fields are left untouched.
type UpdateMetadataRequest struct {
	Symbol     string  `json:"symbol"`
	Sector     *string `json:"sector,omitempty"`
	AssetClass *string `json:"assetClass,omitempty"`
}
