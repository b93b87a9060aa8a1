package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/platform/logger"
)

func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, model.ErrComponentNotFound),
		errors.Is(err, model.ErrOrderNotFound),
		errors.Is(err, model.ErrPresetNotFound),
		errors.Is(err, model.ErrSessionNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, model.ErrReadOnly),
		errors.Is(err, model.ErrOrderConflict),
		errors.Is(err, model.ErrPresetExists):
		return http.StatusConflict // 409
	case errors.Is(err, model.ErrIncompatible):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, model.ErrCatalogLookup),
		errors.Is(err, model.ErrPersistence):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, state *stateResponse) {
	code := statusFromError(err)
	if code == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", logger.String("path", r.URL.Path), logger.ErrorF(err))
	}

	writeJSON(w, r, code, errorResponse{Code: code, Message: err.Error(), State: state})
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}
