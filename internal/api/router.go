/**
 * @description
 * This file sets up the HTTP router for the ledger-service. It defines the API
 * endpoints, associates them with their corresponding handlers, and applies
 * the authentication and rate limiting middleware.
 *
 * @dependencies
 * - net/http: Standard Go library for HTTP functionality.
 * - github.com/go-chi/chi/v5: A lightweight and idiomatic router for Go.
 */

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/corebank/ledger-service/internal/app"
)

// LedgerRoutes creates and returns the router for the ledger service.
func LedgerRoutes(h *Handlers, auth *app.AuthService, limiter app.CommandRateLimiter, commandLimitPerMinute int) http.Handler {
	r := chi.NewRouter()

	// Add standard middleware for logging, panic recovery, and timeouts.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	r.Route("/auth/v1", func(r chi.Router) {
		r.Post("/login", h.LoginHandler)
		r.Post("/auth", h.AuthCheckHandler)
	})

	// Command surface: authenticated and rate limited.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(auth))
		r.Use(RateLimitMiddleware(limiter, commandLimitPerMinute))
		r.Use(CommandLogMiddleware)

		r.Post("/command/user/v1/create-new-user", h.CreateNewUserHandler)
		r.Post("/command/user/v1/change-user-address", h.ChangeUserAddressHandler)
		r.Post("/command/account/v1/create-new-account", h.CreateNewAccountHandler)
		r.Post("/command/account/v1/change-account-type", h.ChangeAccountTypeHandler)
		r.Post("/command/transaction/v1/transfer-amount", h.TransferAmountHandler)
		r.Post("/command/transaction/v1/deposit-amount", h.DepositAmountHandler)
	})

	// Query surface: authenticated, not rate limited.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(auth))

		r.Get("/query/user/v1/get-user-history", h.GetUserHistoryHandler)
		r.Get("/query/user/v1/get-user-transaction-history", h.GetUserTransactionHistoryHandler)
		r.Get("/query/account/v1/get-user-accounts-info", h.GetUserAccountsInfoHandler)
		r.Get("/query/account/v1/get-account-full-history", h.GetAccountFullHistoryHandler)
		r.Get("/query/account/v1/get-account-transaction-history", h.GetAccountTransactionHistoryHandler)
		r.Get("/query/account/v1/get-account-entity-history", h.GetAccountEntityHistoryHandler)
		r.Get("/query/account/v1/get-account-balance", h.GetAccountBalanceHandler)
		r.Get("/query/transaction/v1/get-transaction-by-transaction-id", h.GetTransactionByIDHandler)
	})

	return r
}
