package request

// SetAPIKeyRequest is the payload for storing the quotes API key.
type SetAPIKeyRequest struct {
	APIKey string `json:"apiKey"`
}
