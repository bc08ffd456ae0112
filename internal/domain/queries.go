/**
 * @description
 * Read-model response shapes returned by the query service. Each composes a
 * projected entity with the raw event history it was derived from.
 */

package domain

// UserHistoryResult is the current user plus their profile event history.
type UserHistoryResult struct {
	User    User        `json:"user"`
	History []UserEvent `json:"history"`
}

// UserTransactionsResult is the current user plus every transaction event
// they participated in, as sender or receiver.
type UserTransactionsResult struct {
	User                User               `json:"user"`
	TransactionsHistory []TransactionEvent `json:"transactions_history"`
}

// UserAccountsResult is the current user plus the current state of every
// account they own.
type UserAccountsResult struct {
	User     User      `json:"user"`
	Accounts []Account `json:"accounts"`
}

// AccountFullHistoryResult is the current account, its derived balance, and
// both its entity and transaction event histories.
type AccountFullHistoryResult struct {
	Account             Account            `json:"account"`
	Balance             float64            `json:"balance"`
	AccountHistory      []AccountEvent     `json:"account_history"`
	TransactionsHistory []TransactionEvent `json:"transactions_history"`
}

// AccountTransactionsResult is the current account plus every transaction
// event touching it.
type AccountTransactionsResult struct {
	Account             Account            `json:"account"`
	TransactionsHistory []TransactionEvent `json:"transactions_history"`
}

// AccountEntityHistoryResult is the current account plus its entity event
// history.
type AccountEntityHistoryResult struct {
	Account Account        `json:"account"`
	History []AccountEvent `json:"history"`
}

// AccountBalanceResult is an account id and its derived balance.
type AccountBalanceResult struct {
	AccountID string  `json:"account_id"`
	Balance   float64 `json:"balance"`
}
