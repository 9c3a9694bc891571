package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/momentum/internal/service"
	"github.com/templui/momentum/internal/storage"
	"github.com/templui/momentum/internal/store"
	"github.com/templui/momentum/internal/wizard"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrActionNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", service.ErrPostNotFound), http.StatusNotFound},
		{wizard.ErrWrongStep, http.StatusUnprocessableEntity},
		{wizard.ErrValidation, http.StatusUnprocessableEntity},
		{store.ErrShareDraftOccupied, http.StatusConflict},
		{store.ErrNoShareDraft, http.StatusConflict},
		{store.ErrUnknownVisibility, http.StatusBadRequest},
		{service.ErrInvalidMedia, http.StatusBadRequest},
		{fmt.Errorf("failed to save media: %w", storage.ErrStorageDisabled), http.StatusServiceUnavailable},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestWriteErrorHidesInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("dsn=postgres://secret"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.Contains(t, rec.Body.String(), "internal error")
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	rec := httptest.NewRecorder()
	err := decodeJSON(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")), &v)
	assert.ErrorIs(t, err, errBadRequest)

	err = decodeJSON(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`)), &v)
	assert.ErrorIs(t, err, errBadRequest)

	err = decodeJSON(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}`)), &v)
	require.NoError(t, err)
	assert.Equal(t, "a", v.Name)
}
