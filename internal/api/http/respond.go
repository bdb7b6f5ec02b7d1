package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"carrental-backend/internal/logger"
	"carrental-backend/internal/service"
	"carrental-backend/internal/validator"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error  string                      `json:"error"`
	Fields []validator.ValidationError `json:"fields,omitempty"`
}

// writeError maps service sentinels and validation failures onto HTTP
// status codes; anything unrecognized is a 500 with a generic message so
// datastore details never leak to callers.
func writeError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Fields: verrs})
		return
	}

	switch {
	case errors.Is(err, service.ErrVehicleNotFound),
		errors.Is(err, service.ErrBookingNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrVehicleUnavailable),
		errors.Is(err, service.ErrInvalidOverride),
		errors.Is(err, service.ErrInvalidStatus):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
