/**
 * @description
 * HTTP handlers for the query surface. Query keys arrive in the query string;
 * key presence validation lives in the query service so that a missing key
 * maps to 400 through the shared error mapping.
 */

package api

import (
	"net/http"
)

// GetUserHistoryHandler returns a user and their profile event history.
func (h *Handlers) GetUserHistoryHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.GetUserHistory(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		h.writeServiceError(w, "get_user_history", err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// GetUserTransactionHistoryHandler returns a user and every transaction event
// they participated in.
func (h *Handlers) GetUserTransactionHistoryHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.GetUserTransactionHistory(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		h.writeServiceError(w, "get_user_transaction_history", err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// GetUserAccountsInfoHandler returns a user and the current state of every
// account they own.
func (h *Handlers) GetUserAccountsInfoHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.GetUserAccountsInfo(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		h.writeServiceError(w, "get_user_accounts_info", err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// GetAccountFullHistoryHandler returns an account, its balance, and both its
// entity and transaction histories.
func (h *Handlers) GetAccountFullHistoryHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.GetAccountFullHistory(r.Context(), r.URL.Query().Get("account_id"))
	if err != nil {
		h.writeServiceError(w, "get_account_full_history", err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// GetAccountTransactionHistoryHandler returns an account and every transaction
// event touching it.
func (h *Handlers) GetAccountTransactionHistoryHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.GetAccountTransactionHistory(r.Context(), r.URL.Query().Get("account_id"))
	if err != nil {
		h.writeServiceError(w, "get_account_transaction_history", err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// GetAccountEntityHistoryHandler returns an account and its entity event
// history.
func (h *Handlers) GetAccountEntityHistoryHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.GetAccountEntityHistory(r.Context(), r.URL.Query().Get("account_id"))
	if err != nil {
		h.writeServiceError(w, "get_account_entity_history", err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// GetAccountBalanceHandler returns the derived balance of an account.
func (h *Handlers) GetAccountBalanceHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.GetAccountBalance(r.Context(), r.URL.Query().Get("account_id"))
	if err != nil {
		h.writeServiceError(w, "get_account_balance", err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// GetTransactionByIDHandler returns the event recorded for a transaction id.
func (h *Handlers) GetTransactionByIDHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.GetTransactionByID(r.Context(), r.URL.Query().Get("transaction_id"))
	if err != nil {
		h.writeServiceError(w, "get_transaction_by_transaction_id", err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}
