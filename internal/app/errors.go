/**
 * @description
 * Sentinel errors returned by the application services. The API layer maps
 * these (together with the store's not-found sentinels) onto HTTP statuses.
 */

package app

import "errors"

var (
	// ErrInvalidCommand marks a command that failed structural validation.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrInvalidQuery marks a query with a missing or empty key.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInsufficientBalance marks a transfer whose sender account cannot
	// cover the amount.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrNoEventsGenerated marks a valid command whose event factory produced
	// nothing. Nothing was persisted.
	ErrNoEventsGenerated = errors.New("no events generated")

	// ErrNotAuthorized marks a failed login or an invalid token.
	ErrNotAuthorized = errors.New("not authorized")
)
