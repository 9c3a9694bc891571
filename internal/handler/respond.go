package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/templui/momentum/internal/service"
	"github.com/templui/momentum/internal/storage"
	"github.com/templui/momentum/internal/store"
	"github.com/templui/momentum/internal/wizard"
)

const maxBodyBytes = 1 << 20

var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", errBadRequest)
		}
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

// writeError maps domain errors to status codes. Anything unrecognised is a
// 500 and gets logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err, "method", r.Method, "path", r.URL.Path)
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrActionNotFound),
		errors.Is(err, service.ErrPostNotFound):
		return http.StatusNotFound

	case errors.Is(err, wizard.ErrWrongStep),
		errors.Is(err, wizard.ErrValidation),
		errors.Is(err, wizard.ErrAtFirstStep),
		errors.Is(err, wizard.ErrInvalidTransition):
		return http.StatusUnprocessableEntity

	case errors.Is(err, store.ErrShareDraftOccupied),
		errors.Is(err, store.ErrNoShareDraft):
		return http.StatusConflict

	case errors.Is(err, errBadRequest),
		errors.Is(err, store.ErrUnknownVisibility),
		errors.Is(err, store.ErrUnknownPhase),
		errors.Is(err, store.ErrInconsistentAction),
		errors.Is(err, service.ErrInvalidGoal),
		errors.Is(err, service.ErrInvalidAction),
		errors.Is(err, service.ErrInvalidPost),
		errors.Is(err, service.ErrInvalidDraft),
		errors.Is(err, service.ErrInvalidMedia):
		return http.StatusBadRequest

	case errors.Is(err, storage.ErrStorageDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
