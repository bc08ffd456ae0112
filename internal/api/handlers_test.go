package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/corebank/ledger-service/internal/app"
	"github.com/corebank/ledger-service/internal/store"
)

func TestWriteServiceError_StatusMapping(t *testing.T) {
	h := &Handlers{}

	tests := []struct {
		err    error
		status int
	}{
		{app.ErrInvalidCommand, http.StatusBadRequest},
		{app.ErrInvalidQuery, http.StatusBadRequest},
		{store.ErrUserNotFound, http.StatusNotFound},
		{store.ErrAccountNotFound, http.StatusNotFound},
		{store.ErrTransactionNotFound, http.StatusNotFound},
		{app.ErrInsufficientBalance, http.StatusPaymentRequired},
		{app.ErrNotAuthorized, http.StatusUnauthorized},
		{app.ErrNoEventsGenerated, http.StatusInternalServerError},
		{fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.writeServiceError(rec, "test", tt.err)

			if rec.Code != tt.status {
				t.Fatalf("expected status %d for %v, got %d", tt.status, tt.err, rec.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("error body is not JSON: %v", err)
			}
			if body["error"] == "" {
				t.Fatal("expected an error message in the body")
			}
		})
	}
}

func TestWriteServiceError_InternalErrorsAreOpaque(t *testing.T) {
	h := &Handlers{}
	rec := httptest.NewRecorder()
	h.writeServiceError(rec, "test", fmt.Errorf("pq: password authentication failed for user ledger"))

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal failure leaked detail: %q", body["error"])
	}
}
