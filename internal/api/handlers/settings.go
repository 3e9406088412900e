package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jmertens/portfolio-tracker-backend/internal/api/request"
	"github.com/jmertens/portfolio-tracker-backend/internal/api/response"
	"github.com/jmertens/portfolio-tracker-backend/internal/apperrors"
	"github.com/jmertens/portfolio-tracker-backend/internal/service"
)

// SettingsHandler handles HTTP requests for application settings.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler with the provided service dependency.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// SetAPIKey handles PUT requests to store the quotes API key.
// The key is encrypted before it touches the database.
//
// Endpoint: PUT /api/settings/api-key
// Request Body: SetAPIKeyRequest (apiKey)
// Response: 200 OK with {success: true}
// Error: 400 Bad Request if the key is empty
// Error: 503 Service Unavailable if no encryption key is configured
func (h *SettingsHandler) SetAPIKey(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SetAPIKeyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.APIKey) == "" {
		response.RespondError(w, http.StatusBadRequest, "apiKey is required", "")
		return
	}

	if err := h.settingsService.SetAPIKey(r.Context(), req.APIKey); err != nil {
		if errors.Is(err, apperrors.ErrEncryptionKeyMissing) {
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrEncryptionKeyMissing.Error(), "set FERNET_KEY to store API keys")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to store API key", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
