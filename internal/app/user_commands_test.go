package app

import (
	"context"
	"errors"
	"testing"

	"github.com/corebank/ledger-service/internal/domain"
	"github.com/corebank/ledger-service/internal/store"
)

const testTimestamp = "2021-04-01T12:00:00Z"

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func createUserCommand() domain.CreateNewUserCommand {
	return domain.CreateNewUserCommand{
		Kind:      domain.CreateNewUser,
		Timestamp: testTimestamp,
		UserName:  "Hans",
		Data:      &domain.UserCreatedData{Address: "Hansstrasse 1"},
	}
}

func TestUserCommandService_CreateNewUser(t *testing.T) {
	users := newFakeUserRepo()
	publisher := &recordingPublisher{}
	service := NewUserCommandService(users, domain.UserModel{}, publisher)

	events, err := service.CreateNewUser(context.Background(), createUserCommand())
	if err != nil {
		t.Fatalf("CreateNewUser returned error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if users.saved != 1 {
		t.Fatalf("expected 1 saved event, got %d", users.saved)
	}
	keys := publisher.keys()
	if len(keys) != 1 || keys[0] != "user.created" {
		t.Fatalf("expected routing key user.created, got %v", keys)
	}
}

func TestUserCommandService_InvalidCommandSavesNothing(t *testing.T) {
	users := newFakeUserRepo()
	service := NewUserCommandService(users, domain.UserModel{}, &recordingPublisher{})

	cmd := createUserCommand()
	cmd.Timestamp = "not-a-time"

	if _, err := service.CreateNewUser(context.Background(), cmd); !errors.Is(err, ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
	if users.saved != 0 {
		t.Fatalf("expected nothing saved, got %d events", users.saved)
	}
}

func TestUserCommandService_ChangeAddressRequiresExistingUser(t *testing.T) {
	users := newFakeUserRepo()
	service := NewUserCommandService(users, domain.UserModel{}, &recordingPublisher{})

	cmd := domain.ChangeUserAddressCommand{
		Kind:      domain.ChangeUserAddress,
		Timestamp: testTimestamp,
		UserID:    "missing",
		UserName:  "Hans",
		Data:      &domain.UserAddressChangedData{Address: "new", PreviousAddress: "old"},
	}

	if _, err := service.ChangeUserAddress(context.Background(), cmd); !errors.Is(err, store.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if users.saved != 0 {
		t.Fatalf("expected nothing saved, got %d events", users.saved)
	}
}

func TestUserCommandService_ChangeAddressAppendsAndPublishes(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(users, "u1", "Hans")
	publisher := &recordingPublisher{}
	service := NewUserCommandService(users, domain.UserModel{}, publisher)

	cmd := domain.ChangeUserAddressCommand{
		Kind:      domain.ChangeUserAddress,
		Timestamp: testTimestamp,
		UserID:    "u1",
		UserName:  "Hans",
		Data:      &domain.UserAddressChangedData{Address: "Hansweg 3", PreviousAddress: "Hans street"},
	}

	if _, err := service.ChangeUserAddress(context.Background(), cmd); err != nil {
		t.Fatalf("ChangeUserAddress returned error: %v", err)
	}

	user, err := users.GetUserByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetUserByID returned error: %v", err)
	}
	if user.Address != "Hansweg 3" {
		t.Fatalf("expected folded address change, got %q", user.Address)
	}
	keys := publisher.keys()
	if len(keys) != 1 || keys[0] != "user.address_changed" {
		t.Fatalf("expected routing key user.address_changed, got %v", keys)
	}
}

func TestUserCommandService_SilentFactoryIsAnError(t *testing.T) {
	users := newFakeUserRepo()
	service := NewUserCommandService(users, silentUserFactory{}, &recordingPublisher{})

	if _, err := service.CreateNewUser(context.Background(), createUserCommand()); !errors.Is(err, ErrNoEventsGenerated) {
		t.Fatalf("expected ErrNoEventsGenerated, got %v", err)
	}
	if users.saved != 0 {
		t.Fatalf("expected nothing saved, got %d events", users.saved)
	}
}

func TestUserCommandService_PublishFailureDoesNotFailCommand(t *testing.T) {
	users := newFakeUserRepo()
	publisher := &recordingPublisher{publishErr: errors.New("broker down")}
	service := NewUserCommandService(users, domain.UserModel{}, publisher)

	if _, err := service.CreateNewUser(context.Background(), createUserCommand()); err != nil {
		t.Fatalf("expected command to succeed despite publish failure, got %v", err)
	}
	if users.saved != 1 {
		t.Fatalf("expected 1 saved event, got %d", users.saved)
	}
}
