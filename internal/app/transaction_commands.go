/**
 * @description
 * Command service for the Transaction aggregate. Transfers verify both
 * parties and both accounts, then run the balance check and the event append
 * inside the sender account's lock so concurrent transfers cannot overdraw.
 * Deposits have no sender and need no balance check.
 *
 * @dependencies
 * - internal/domain: Commands, events, reducers, and the event factories.
 * - internal/store: Event store repositories.
 * - pkg/rabbitmq: Event bus publisher.
 */

package app

import (
	"context"
	"fmt"
	"log"

	"github.com/corebank/ledger-service/internal/domain"
	"github.com/corebank/ledger-service/internal/store"
	"github.com/corebank/ledger-service/pkg/rabbitmq"
)

// TransactionCommandService handles transfers and deposits.
type TransactionCommandService struct {
	users        store.UserRepository
	accounts     store.AccountRepository
	transactions store.TransactionRepository
	factory      TransactionEventFactory
	publisher    rabbitmq.Publisher
	locks        *accountLocks
}

func NewTransactionCommandService(
	users store.UserRepository,
	accounts store.AccountRepository,
	transactions store.TransactionRepository,
	factory TransactionEventFactory,
	publisher rabbitmq.Publisher,
) *TransactionCommandService {
	return &TransactionCommandService{
		users:        users,
		accounts:     accounts,
		transactions: transactions,
		factory:      factory,
		publisher:    publisher,
		locks:        newAccountLocks(),
	}
}

// TransferAmount validates the command, confirms sender, receiver, and both
// accounts exist, then checks the sender's derived balance and appends the
// transfer event. The balance check and the append run under the sender
// account's lock.
func (s *TransactionCommandService) TransferAmount(ctx context.Context, cmd domain.TransferAmountCommand) ([]domain.TransactionEvent, error) {
	if !cmd.Validate(domain.TransferAmount) {
		return nil, ErrInvalidCommand
	}
	if _, err := s.users.GetUserByID(ctx, cmd.SenderID); err != nil {
		return nil, fmt.Errorf("sender %s: %w", cmd.SenderID, err)
	}
	if _, err := s.users.GetUserByID(ctx, cmd.ReceiverID); err != nil {
		return nil, fmt.Errorf("receiver %s: %w", cmd.ReceiverID, err)
	}
	if _, err := s.accounts.GetAccountByID(ctx, cmd.SenderAccountID); err != nil {
		return nil, fmt.Errorf("sender account %s: %w", cmd.SenderAccountID, err)
	}
	if _, err := s.accounts.GetAccountByID(ctx, cmd.ReceiverAccountID); err != nil {
		return nil, fmt.Errorf("receiver account %s: %w", cmd.ReceiverAccountID, err)
	}

	unlock := s.locks.Lock(cmd.SenderAccountID)
	defer unlock()

	history, err := s.transactions.GetEventsByAccountID(ctx, cmd.SenderAccountID)
	if err != nil {
		return nil, err
	}
	if domain.ReduceBalance(history, cmd.SenderAccountID) < *cmd.Amount {
		return nil, ErrInsufficientBalance
	}

	events := s.factory.TransferAmount(cmd)
	if len(events) == 0 {
		return nil, ErrNoEventsGenerated
	}
	if err := s.transactions.SaveTransactionEvents(ctx, events); err != nil {
		return nil, err
	}
	s.publishTransactionEvents(ctx, events)
	return events, nil
}

// DepositAmount validates the command, confirms the receiver and their account
// exist, and appends the deposit event. Deposits never fail on balance.
func (s *TransactionCommandService) DepositAmount(ctx context.Context, cmd domain.DepositAmountCommand) ([]domain.TransactionEvent, error) {
	if !cmd.Validate(domain.DepositAmount) {
		return nil, ErrInvalidCommand
	}
	if _, err := s.users.GetUserByID(ctx, cmd.ReceiverID); err != nil {
		return nil, fmt.Errorf("receiver %s: %w", cmd.ReceiverID, err)
	}
	if _, err := s.accounts.GetAccountByID(ctx, cmd.ReceiverAccountID); err != nil {
		return nil, fmt.Errorf("receiver account %s: %w", cmd.ReceiverAccountID, err)
	}

	events := s.factory.DepositAmount(cmd)
	if len(events) == 0 {
		return nil, ErrNoEventsGenerated
	}
	if err := s.transactions.SaveTransactionEvents(ctx, events); err != nil {
		return nil, err
	}
	s.publishTransactionEvents(ctx, events)
	return events, nil
}

func (s *TransactionCommandService) publishTransactionEvents(ctx context.Context, events []domain.TransactionEvent) {
	if s.publisher == nil {
		return
	}
	for _, ev := range events {
		if err := s.publisher.Publish(ctx, routingKeyFor(ev.Kind), ev); err != nil {
			log.Printf("level=warn component=transaction_commands msg=\"event publish failed\" event_type=%s transaction_id=%s err=%v", ev.Kind, ev.TransactionID, err)
		}
	}
}
