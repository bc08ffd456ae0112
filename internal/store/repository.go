/**
 * @description
 * This file defines the repository interfaces for the ledger-service's
 * append-only event store. One interface per aggregate family keeps the
 * command and query services decoupled from the PostgreSQL implementation
 * and lets tests substitute in-memory fakes.
 *
 * Store contract: every event read returns the matching events sorted by
 * occurrence time ascending, and an appended event set is written atomically.
 * Events are never updated or deleted.
 *
 * @dependencies
 * - context, errors: Standard Go libraries.
 * - internal/domain: Event and entity models.
 */

package store

import (
	"context"
	"errors"

	"github.com/corebank/ledger-service/internal/domain"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// UserRepository is the event store surface for the User aggregate.
type UserRepository interface {
	// GetEventsByUserID returns the user's event stream, oldest first.
	GetEventsByUserID(ctx context.Context, userID string) ([]domain.UserEvent, error)
	// GetUserByID folds the user's event stream into their current state.
	// Returns ErrUserNotFound when the stream is empty.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// SaveUserEvents appends the event set atomically.
	SaveUserEvents(ctx context.Context, events []domain.UserEvent) error
}

// AccountRepository is the event store surface for the Account aggregate.
type AccountRepository interface {
	GetEventsByAccountID(ctx context.Context, accountID string) ([]domain.AccountEvent, error)
	GetEventsByOwnerID(ctx context.Context, ownerID string) ([]domain.AccountEvent, error)
	// GetAccountByID folds the account's event stream into its current state.
	// Returns ErrAccountNotFound when the stream is empty.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// GetAccountsByOwnerID folds every account owned by the given user. An
	// owner with no accounts yields an empty slice, not an error.
	GetAccountsByOwnerID(ctx context.Context, ownerID string) ([]domain.Account, error)
	SaveAccountEvents(ctx context.Context, events []domain.AccountEvent) error
}

// TransactionRepository is the event store surface for the Transaction
// aggregate.
type TransactionRepository interface {
	// GetEventsByAccountID returns every transaction event where the account
	// appears as sender or receiver, oldest first.
	GetEventsByAccountID(ctx context.Context, accountID string) ([]domain.TransactionEvent, error)
	// GetEventsByUserID returns every transaction event where the user
	// appears as sender or receiver, oldest first.
	GetEventsByUserID(ctx context.Context, userID string) ([]domain.TransactionEvent, error)
	// GetTransactionByID returns the single event for a transaction id.
	// Returns ErrTransactionNotFound when no such event exists.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.TransactionEvent, error)
	SaveTransactionEvents(ctx context.Context, events []domain.TransactionEvent) error
}

// CredentialRepository resolves API login credentials.
type CredentialRepository interface {
	// FindAuthorizedUser returns the credential row for a username. Returns
	// ErrUserNotFound when no such login exists.
	FindAuthorizedUser(ctx context.Context, username string) (*domain.AuthorizedUser, error)
}
