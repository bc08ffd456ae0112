/**
 * @description
 * Command service for the Account aggregate. Account creation requires an
 * existing owner; type changes require an existing account. Events are
 * appended atomically and then published best-effort.
 *
 * @dependencies
 * - internal/domain: Commands, events, and the event factories.
 * - internal/store: Event store repositories.
 * - pkg/rabbitmq: Event bus publisher.
 */

package app

import (
	"context"
	"log"

	"github.com/corebank/ledger-service/internal/domain"
	"github.com/corebank/ledger-service/internal/store"
	"github.com/corebank/ledger-service/pkg/rabbitmq"
)

// AccountCommandService handles account creation and type changes.
type AccountCommandService struct {
	users     store.UserRepository
	accounts  store.AccountRepository
	factory   AccountEventFactory
	publisher rabbitmq.Publisher
}

func NewAccountCommandService(users store.UserRepository, accounts store.AccountRepository, factory AccountEventFactory, publisher rabbitmq.Publisher) *AccountCommandService {
	return &AccountCommandService{users: users, accounts: accounts, factory: factory, publisher: publisher}
}

// CreateNewAccount validates the command, confirms the owner exists, and
// appends the creation event for a fresh account id.
func (s *AccountCommandService) CreateNewAccount(ctx context.Context, cmd domain.CreateNewAccountCommand) ([]domain.AccountEvent, error) {
	if !cmd.Validate(domain.CreateNewAccount) {
		return nil, ErrInvalidCommand
	}
	if _, err := s.users.GetUserByID(ctx, cmd.OwnerID); err != nil {
		return nil, err
	}

	events := s.factory.CreateNewAccount(cmd)
	if len(events) == 0 {
		return nil, ErrNoEventsGenerated
	}
	if err := s.accounts.SaveAccountEvents(ctx, events); err != nil {
		return nil, err
	}
	s.publishAccountEvents(ctx, events)
	return events, nil
}

// ChangeAccountType validates the command, confirms the account exists, and
// appends the type change event.
func (s *AccountCommandService) ChangeAccountType(ctx context.Context, cmd domain.ChangeAccountTypeCommand) ([]domain.AccountEvent, error) {
	if !cmd.Validate(domain.ChangeAccountType) {
		return nil, ErrInvalidCommand
	}
	if _, err := s.accounts.GetAccountByID(ctx, cmd.AccountID); err != nil {
		return nil, err
	}

	events := s.factory.ChangeAccountType(cmd)
	if len(events) == 0 {
		return nil, ErrNoEventsGenerated
	}
	if err := s.accounts.SaveAccountEvents(ctx, events); err != nil {
		return nil, err
	}
	s.publishAccountEvents(ctx, events)
	return events, nil
}

func (s *AccountCommandService) publishAccountEvents(ctx context.Context, events []domain.AccountEvent) {
	if s.publisher == nil {
		return
	}
	for _, ev := range events {
		if err := s.publisher.Publish(ctx, routingKeyFor(ev.Kind), ev); err != nil {
			log.Printf("level=warn component=account_commands msg=\"event publish failed\" event_type=%s account_id=%s err=%v", ev.Kind, ev.AccountID, err)
		}
	}
}
