package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/catalog"
	"storefront/internal/logger"
	"storefront/internal/order"
	"storefront/internal/session"
	"storefront/internal/storefront"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, storefront.ErrUnknownProduct):
		return http.StatusNotFound
	case errors.Is(err, storefront.ErrCartEmpty):
		return http.StatusUnprocessableEntity
	case errors.Is(err, storefront.ErrOrderInFlight),
		errors.Is(err, storefront.ErrComparisonFull):
		return http.StatusConflict
	case errors.Is(err, order.ErrProcessingFailed):
		return http.StatusBadGateway
	case errors.Is(err, storefront.ErrInvalidTheme),
		errors.Is(err, session.ErrInvalidEmail),
		errors.Is(err, session.ErrInvalidName),
		errors.Is(err, catalog.ErrInvalidPriceRange),
		errors.Is(err, catalog.ErrInvalidSortOrder):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request failed", zap.Error(err))
		respondError(w, status, http.StatusText(status))
		return
	}
	respondError(w, status, err.Error())
}
