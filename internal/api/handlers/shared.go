package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmertens/portfolio-tracker-backend/internal/apperrors"
	"github.com/jmertens/portfolio-tracker-backend/internal/api/response"
	"github.com/jmertens/portfolio-tracker-backend/internal/validation"
)

// parseJSON decodes a request body into the given type, rejecting unknown fields.
func parseJSON[T any](r *http.Request) (T, error) {
	var payload T

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&payload); err != nil {
		return payload, fmt.Errorf("invalid JSON body: %w", err)
	}

	return payload, nil
}

// respondServiceError translates service-layer errors into the uniform error
// envelope: validation and bad-input errors map to 400, missing entities to
// 404, oversells to 409 and everything else to 500 with the given fallback
// message. Internal failures never propagate as raised errors across the
// boundary.
func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	var ve *validation.Error

	switch {
	case errors.As(err, &ve):
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
	case errors.Is(err, apperrors.ErrPortfolioNotFound),
		errors.Is(err, apperrors.ErrHoldingNotFound):
		response.RespondError(w, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, apperrors.ErrInsufficientShares):
		response.RespondError(w, http.StatusConflict, apperrors.ErrInsufficientShares.Error(), "")
	case errors.Is(err, apperrors.ErrInvalidShares),
		errors.Is(err, apperrors.ErrInvalidPrice),
		errors.Is(err, apperrors.ErrInvalidSymbol),
		errors.Is(err, apperrors.ErrInvalidDate),
		errors.Is(err, apperrors.ErrNegativeAmount),
		errors.Is(err, apperrors.ErrEmptyMetadataPatch):
		response.RespondError(w, http.StatusBadRequest, err.Error(), "")
	default:
		response.RespondError(w, http.StatusInternalServerError, fallback, err.Error())
	}
}
