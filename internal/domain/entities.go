/**
 * @description
 * This file defines the projected entities of the ledger-service. Entities are
 * never stored directly; they are recomputed on demand by folding the event
 * stream of their aggregate (see reducers.go).
 */

package domain

// AccountType enumerates the supported account categories.
type AccountType string

const (
	AccountTypePrivate    AccountType = "private"
	AccountTypeCommercial AccountType = "commercial"
)

// User is the current state of a user aggregate.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Account is the current state of an account aggregate. Its balance is not a
// field here: balances are always derived from the transaction event stream.
type Account struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	AccountType string `json:"account_type"`
	BranchID    string `json:"branch_id"`
	IsActive    bool   `json:"is_active"`
}

// AuthorizedUser is a login credential for the API, unrelated to the User
// aggregate. Passwords are stored as bcrypt hashes.
type AuthorizedUser struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
