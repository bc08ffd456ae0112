/**
 * @description
 * Command service for the User aggregate. The pipeline for every command is
 * the same: structural validation, referential existence checks, event
 * generation through the factory, atomic append, then best-effort publish to
 * the event bus.
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

// UserCommandService handles user creation and profile changes.
type UserCommandService struct {
	users     store.UserRepository
	factory   UserEventFactory
	publisher rabbitmq.Publisher
}

func NewUserCommandService(users store.UserRepository, factory UserEventFactory, publisher rabbitmq.Publisher) *UserCommandService {
	return &UserCommandService{users: users, factory: factory, publisher: publisher}
}

// CreateNewUser validates the command, generates the creation event for a
// fresh user id, and appends it. No existence check applies: the aggregate is
// new by definition.
func (s *UserCommandService) CreateNewUser(ctx context.Context, cmd domain.CreateNewUserCommand) ([]domain.UserEvent, error) {
	if !cmd.Validate(domain.CreateNewUser) {
		return nil, ErrInvalidCommand
	}

	events := s.factory.CreateNewUser(cmd)
	if len(events) == 0 {
		return nil, ErrNoEventsGenerated
	}
	if err := s.users.SaveUserEvents(ctx, events); err != nil {
		return nil, err
	}
	s.publishUserEvents(ctx, events)
	return events, nil
}

// ChangeUserAddress validates the command, confirms the user exists, and
// appends the address change event.
func (s *UserCommandService) ChangeUserAddress(ctx context.Context, cmd domain.ChangeUserAddressCommand) ([]domain.UserEvent, error) {
	if !cmd.Validate(domain.ChangeUserAddress) {
		return nil, ErrInvalidCommand
	}
	if _, err := s.users.GetUserByID(ctx, cmd.UserID); err != nil {
		return nil, err
	}

	events := s.factory.ChangeUserAddress(cmd)
	if len(events) == 0 {
		return nil, ErrNoEventsGenerated
	}
	if err := s.users.SaveUserEvents(ctx, events); err != nil {
		return nil, err
	}
	s.publishUserEvents(ctx, events)
	return events, nil
}

func (s *UserCommandService) publishUserEvents(ctx context.Context, events []domain.UserEvent) {
	if s.publisher == nil {
		return
	}
	for _, ev := range events {
		if err := s.publisher.Publish(ctx, routingKeyFor(ev.Kind), ev); err != nil {
			log.Printf("level=warn component=user_commands msg=\"event publish failed\" event_type=%s user_id=%s err=%v", ev.Kind, ev.UserID, err)
		}
	}
}
