package request

// CreateDividendRequest is the payload for recording a dividend.
// Date is the payment date in YYYY-MM-DD format.
type CreateDividendRequest struct {
	Symbol string  `json:"symbol"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}
