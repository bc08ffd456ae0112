/**
 * @description
 * HTTP handlers for the command surface. Each handler decodes its command
 * type from the request body, delegates to the matching command service, and
 * echoes the saved events back to the caller. Malformed JSON is rejected
 * before the service is involved; everything else is the service's call.
 *
 * @dependencies
 * - net/http: Standard Go library.
 * - internal/domain: Command types.
 */

package api

import (
	"net/http"

	"github.com/corebank/ledger-service/internal/domain"
)

// CreateNewUserHandler handles requests to create a user aggregate.
func (h *Handlers) CreateNewUserHandler(w http.ResponseWriter, r *http.Request) {
	var cmd domain.CreateNewUserCommand
	if err := decodeBody(r, &cmd); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	events, err := h.userCommands.CreateNewUser(r.Context(), cmd)
	if err != nil {
		h.writeServiceError(w, "create_new_user", err)
		return
	}
	h.writeJSON(w, http.StatusOK, commandResponse{Success: true, EventsSaved: events})
}

// ChangeUserAddressHandler handles requests to change a user's address.
func (h *Handlers) ChangeUserAddressHandler(w http.ResponseWriter, r *http.Request) {
	var cmd domain.ChangeUserAddressCommand
	if err := decodeBody(r, &cmd); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	events, err := h.userCommands.ChangeUserAddress(r.Context(), cmd)
	if err != nil {
		h.writeServiceError(w, "change_user_address", err)
		return
	}
	h.writeJSON(w, http.StatusOK, commandResponse{Success: true, EventsSaved: events})
}

// CreateNewAccountHandler handles requests to open an account for an existing
// user.
func (h *Handlers) CreateNewAccountHandler(w http.ResponseWriter, r *http.Request) {
	var cmd domain.CreateNewAccountCommand
	if err := decodeBody(r, &cmd); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	events, err := h.accountCommands.CreateNewAccount(r.Context(), cmd)
	if err != nil {
		h.writeServiceError(w, "create_new_account", err)
		return
	}
	h.writeJSON(w, http.StatusOK, commandResponse{Success: true, EventsSaved: events})
}

// ChangeAccountTypeHandler handles requests to change an account's type.
func (h *Handlers) ChangeAccountTypeHandler(w http.ResponseWriter, r *http.Request) {
	var cmd domain.ChangeAccountTypeCommand
	if err := decodeBody(r, &cmd); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	events, err := h.accountCommands.ChangeAccountType(r.Context(), cmd)
	if err != nil {
		h.writeServiceError(w, "change_account_type", err)
		return
	}
	h.writeJSON(w, http.StatusOK, commandResponse{Success: true, EventsSaved: events})
}

// TransferAmountHandler handles requests to transfer between two accounts.
func (h *Handlers) TransferAmountHandler(w http.ResponseWriter, r *http.Request) {
	var cmd domain.TransferAmountCommand
	if err := decodeBody(r, &cmd); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	events, err := h.transactionCommands.TransferAmount(r.Context(), cmd)
	if err != nil {
		h.writeServiceError(w, "transfer_amount", err)
		return
	}
	h.writeJSON(w, http.StatusOK, commandResponse{Success: true, EventsSaved: events})
}

// DepositAmountHandler handles requests to deposit into an account.
func (h *Handlers) DepositAmountHandler(w http.ResponseWriter, r *http.Request) {
	var cmd domain.DepositAmountCommand
	if err := decodeBody(r, &cmd); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	events, err := h.transactionCommands.DepositAmount(r.Context(), cmd)
	if err != nil {
		h.writeServiceError(w, "deposit_amount", err)
		return
	}
	h.writeJSON(w, http.StatusOK, commandResponse{Success: true, EventsSaved: events})
}
