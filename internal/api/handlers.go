/**
 * @description
 * This file contains the shared plumbing for the HTTP handlers: the Handlers
 * struct wiring the application services, the JSON response helpers, and the
 * mapping from service errors onto HTTP statuses.
 *
 * @dependencies
 * - encoding/json, errors, log, net/http: Standard Go libraries.
 * - internal/app, internal/store: For service logic and custom errors.
 */

package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/corebank/ledger-service/internal/app"
	"github.com/corebank/ledger-service/internal/store"
)

// Handlers holds the application services that handlers will use.
type Handlers struct {
	auth                *app.AuthService
	userCommands        *app.UserCommandService
	accountCommands     *app.AccountCommandService
	transactionCommands *app.TransactionCommandService
	queries             *app.QueryService
}

// NewHandlers creates a new instance of Handlers.
func NewHandlers(
	auth *app.AuthService,
	userCommands *app.UserCommandService,
	accountCommands *app.AccountCommandService,
	transactionCommands *app.TransactionCommandService,
	queries *app.QueryService,
) *Handlers {
	return &Handlers{
		auth:                auth,
		userCommands:        userCommands,
		accountCommands:     accountCommands,
		transactionCommands: transactionCommands,
		queries:             queries,
	}
}

// commandResponse is the body returned by every successful command. The saved
// events are echoed back so callers can pick up generated aggregate ids.
type commandResponse struct {
	Success     bool        `json:"success"`
	EventsSaved interface{} `json:"events_saved"`
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("level=error component=api msg=\"response encode failed\" err=%v", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps a service error onto its HTTP status. Unmapped
// errors (store failures, ErrNoEventsGenerated) surface as 500 without
// leaking internals.
func (h *Handlers) writeServiceError(w http.ResponseWriter, endpoint string, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidCommand):
		h.writeError(w, http.StatusBadRequest, "invalid command")
	case errors.Is(err, app.ErrInvalidQuery):
		h.writeError(w, http.StatusBadRequest, "invalid query")
	case errors.Is(err, store.ErrUserNotFound):
		h.writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, store.ErrAccountNotFound):
		h.writeError(w, http.StatusNotFound, "account not found")
	case errors.Is(err, store.ErrTransactionNotFound):
		h.writeError(w, http.StatusNotFound, "transaction not found")
	case errors.Is(err, app.ErrInsufficientBalance):
		h.writeError(w, http.StatusPaymentRequired, "insufficient balance")
	case errors.Is(err, app.ErrNotAuthorized):
		h.writeError(w, http.StatusUnauthorized, "not authorized")
	default:
		log.Printf("level=error component=api endpoint=%s msg=\"request failed\" err=%v", endpoint, err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
