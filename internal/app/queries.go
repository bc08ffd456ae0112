/**
 * @description
 * Query service: read-side operations that fold event streams into response
 * shapes. Queries never write. An empty query key is rejected up front; an
 * empty event stream for an entity means the aggregate does not exist, while
 * an empty transaction stream for an existing account simply means balance 0.
 *
 * @dependencies
 * - internal/domain: Reducers and response shapes.
 * - internal/store: Event store repositories.
 */

package app

import (
	"context"
	"strings"

	"github.com/corebank/ledger-service/internal/domain"
	"github.com/corebank/ledger-service/internal/store"
)

// QueryService answers read requests from the event store.
type QueryService struct {
	users        store.UserRepository
	accounts     store.AccountRepository
	transactions store.TransactionRepository
}

func NewQueryService(users store.UserRepository, accounts store.AccountRepository, transactions store.TransactionRepository) *QueryService {
	return &QueryService{users: users, accounts: accounts, transactions: transactions}
}

// GetUserHistory returns the user's current state plus their full profile
// event history.
func (s *QueryService) GetUserHistory(ctx context.Context, userID string) (*domain.UserHistoryResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidQuery
	}
	events, err := s.users.GetEventsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user := domain.ReduceUser(events)
	if user == nil {
		return nil, store.ErrUserNotFound
	}
	return &domain.UserHistoryResult{User: *user, History: events}, nil
}

// GetUserTransactionHistory returns the user's current state plus every
// transaction event they participated in.
func (s *QueryService) GetUserTransactionHistory(ctx context.Context, userID string) (*domain.UserTransactionsResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidQuery
	}
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactions.GetEventsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.UserTransactionsResult{User: *user, TransactionsHistory: transactions}, nil
}

// GetUserAccountsInfo returns the user's current state plus the current state
// of every account they own. A user with no accounts gets an empty list.
func (s *QueryService) GetUserAccountsInfo(ctx context.Context, userID string) (*domain.UserAccountsResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidQuery
	}
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accounts.GetAccountsByOwnerID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.UserAccountsResult{User: *user, Accounts: accounts}, nil
}

// GetAccountFullHistory returns the account's current state, its derived
// balance, and both its entity and transaction event histories.
func (s *QueryService) GetAccountFullHistory(ctx context.Context, accountID string) (*domain.AccountFullHistoryResult, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, ErrInvalidQuery
	}
	accountEvents, err := s.accounts.GetEventsByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	account := domain.ReduceAccount(accountEvents)
	if account == nil {
		return nil, store.ErrAccountNotFound
	}
	transactions, err := s.transactions.GetEventsByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &domain.AccountFullHistoryResult{
		Account:             *account,
		Balance:             domain.ReduceBalance(transactions, accountID),
		AccountHistory:      accountEvents,
		TransactionsHistory: transactions,
	}, nil
}

// GetAccountTransactionHistory returns the account's current state plus every
// transaction event touching it.
func (s *QueryService) GetAccountTransactionHistory(ctx context.Context, accountID string) (*domain.AccountTransactionsResult, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, ErrInvalidQuery
	}
	account, err := s.accounts.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactions.GetEventsByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &domain.AccountTransactionsResult{Account: *account, TransactionsHistory: transactions}, nil
}

// GetAccountEntityHistory returns the account's current state plus its entity
// event history.
func (s *QueryService) GetAccountEntityHistory(ctx context.Context, accountID string) (*domain.AccountEntityHistoryResult, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, ErrInvalidQuery
	}
	events, err := s.accounts.GetEventsByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	account := domain.ReduceAccount(events)
	if account == nil {
		return nil, store.ErrAccountNotFound
	}
	return &domain.AccountEntityHistoryResult{Account: *account, History: events}, nil
}

// GetAccountBalance returns the derived balance for an existing account. An
// account with no transaction history has balance 0.
func (s *QueryService) GetAccountBalance(ctx context.Context, accountID string) (*domain.AccountBalanceResult, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, ErrInvalidQuery
	}
	if _, err := s.accounts.GetAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	transactions, err := s.transactions.GetEventsByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &domain.AccountBalanceResult{
		AccountID: accountID,
		Balance:   domain.ReduceBalance(transactions, accountID),
	}, nil
}

// GetTransactionByID returns the single event recorded for a transaction id.
func (s *QueryService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.TransactionEvent, error) {
	if strings.TrimSpace(transactionID) == "" {
		return nil, ErrInvalidQuery
	}
	return s.transactions.GetTransactionByID(ctx, transactionID)
}
