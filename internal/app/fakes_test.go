package app

import (
	"context"
	"sync"

	"github.com/corebank/ledger-service/internal/domain"
	"github.com/corebank/ledger-service/internal/store"
)

// fakeUserRepo is an in-memory UserRepository keyed by user id.
type fakeUserRepo struct {
	events  map[string][]domain.UserEvent
	saveErr error
	saved   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{events: make(map[string][]domain.UserEvent)}
}

func (f *fakeUserRepo) GetEventsByUserID(ctx context.Context, userID string) ([]domain.UserEvent, error) {
	return f.events[userID], nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user := domain.ReduceUser(f.events[userID])
	if user == nil {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) SaveUserEvents(ctx context.Context, events []domain.UserEvent) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for _, ev := range events {
		f.events[ev.UserID] = append(f.events[ev.UserID], ev)
	}
	f.saved += len(events)
	return nil
}

// fakeAccountRepo is an in-memory AccountRepository keyed by account id.
type fakeAccountRepo struct {
	events map[string][]domain.AccountEvent
	saved  int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{events: make(map[string][]domain.AccountEvent)}
}

func (f *fakeAccountRepo) GetEventsByAccountID(ctx context.Context, accountID string) ([]domain.AccountEvent, error) {
	return f.events[accountID], nil
}

func (f *fakeAccountRepo) GetEventsByOwnerID(ctx context.Context, ownerID string) ([]domain.AccountEvent, error) {
	var matched []domain.AccountEvent
	for _, stream := range f.events {
		for _, ev := range stream {
			if ev.OwnerID == ownerID {
				matched = append(matched, ev)
			}
		}
	}
	return matched, nil
}

func (f *fakeAccountRepo) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account := domain.ReduceAccount(f.events[accountID])
	if account == nil {
		return nil, store.ErrAccountNotFound
	}
	return account, nil
}

func (f *fakeAccountRepo) GetAccountsByOwnerID(ctx context.Context, ownerID string) ([]domain.Account, error) {
	events, _ := f.GetEventsByOwnerID(ctx, ownerID)
	return domain.ReduceAccounts(events), nil
}

func (f *fakeAccountRepo) SaveAccountEvents(ctx context.Context, events []domain.AccountEvent) error {
	for _, ev := range events {
		f.events[ev.AccountID] = append(f.events[ev.AccountID], ev)
	}
	f.saved += len(events)
	return nil
}

// fakeTransactionRepo is an in-memory TransactionRepository. Access is
// mutex-guarded so concurrent transfers can exercise it safely.
type fakeTransactionRepo struct {
	mu     sync.Mutex
	events []domain.TransactionEvent
}

func (f *fakeTransactionRepo) GetEventsByAccountID(ctx context.Context, accountID string) ([]domain.TransactionEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []domain.TransactionEvent
	for _, ev := range f.events {
		if ev.SenderAccountID == accountID || ev.ReceiverAccountID == accountID {
			matched = append(matched, ev)
		}
	}
	return matched, nil
}

func (f *fakeTransactionRepo) GetEventsByUserID(ctx context.Context, userID string) ([]domain.TransactionEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []domain.TransactionEvent
	for _, ev := range f.events {
		if ev.SenderID == userID || ev.ReceiverID == userID {
			matched = append(matched, ev)
		}
	}
	return matched, nil
}

func (f *fakeTransactionRepo) GetTransactionByID(ctx context.Context, transactionID string) (*domain.TransactionEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ev := range f.events {
		if ev.TransactionID == transactionID {
			found := ev
			return &found, nil
		}
	}
	return nil, store.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) SaveTransactionEvents(ctx context.Context, events []domain.TransactionEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, events...)
	return nil
}

func (f *fakeTransactionRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

// fakeCredentialRepo holds login credentials keyed by username.
type fakeCredentialRepo struct {
	users map[string]domain.AuthorizedUser
}

func (f *fakeCredentialRepo) FindAuthorizedUser(ctx context.Context, username string) (*domain.AuthorizedUser, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// recordingPublisher captures routing keys of published events.
type recordingPublisher struct {
	mu          sync.Mutex
	routingKeys []string
	publishErr  error
}

func (p *recordingPublisher) Publish(ctx context.Context, routingKey string, body interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.routingKeys = append(p.routingKeys, routingKey)
	return p.publishErr
}

func (p *recordingPublisher) Close() {}

func (p *recordingPublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.routingKeys...)
}

// silentUserFactory produces no events for any command.
type silentUserFactory struct{}

func (silentUserFactory) CreateNewUser(domain.CreateNewUserCommand) []domain.UserEvent { return nil }
func (silentUserFactory) ChangeUserAddress(domain.ChangeUserAddressCommand) []domain.UserEvent {
	return nil
}

// silentTransactionFactory produces no events for any command.
type silentTransactionFactory struct{}

func (silentTransactionFactory) TransferAmount(domain.TransferAmountCommand) []domain.TransactionEvent {
	return nil
}
func (silentTransactionFactory) DepositAmount(domain.DepositAmountCommand) []domain.TransactionEvent {
	return nil
}

func seedUser(repo *fakeUserRepo, id, name string) {
	repo.events[id] = append(repo.events[id], domain.UserEvent{
		Kind:     domain.UserCreated,
		UserID:   id,
		UserName: name,
		Data:     domain.UserEventData{Address: name + " street"},
	})
}

func seedAccount(repo *fakeAccountRepo, id, ownerID string) {
	repo.events[id] = append(repo.events[id], domain.AccountEvent{
		Kind:        domain.AccountCreated,
		AccountID:   id,
		OwnerID:     ownerID,
		BranchID:    "branch-1",
		AccountType: "private",
		IsActive:    true,
	})
}

func seedDeposit(repo *fakeTransactionRepo, accountID, userID string, amount float64) {
	repo.events = append(repo.events, domain.TransactionEvent{
		Kind:              domain.AmountDeposited,
		TransactionID:     "seed-" + accountID,
		ReceiverID:        userID,
		ReceiverAccountID: accountID,
		TerminalID:        "term-1",
		BranchID:          "branch-1",
		Amount:            amount,
	})
}
