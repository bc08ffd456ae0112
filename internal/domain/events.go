/**
 * @description
 * This file defines the event model for the ledger-service. All state in the
 * system is derived from these events: they are appended once to the event
 * store and never updated or deleted. Each aggregate family (User, Account,
 * Transaction) has its own event envelope carrying the aggregate key and a
 * kind-specific data payload.
 *
 * @notes
 * - Events are immutable once appended. Projections (see reducers.go) fold
 *   ascending-timestamp streams of these events into current entities.
 * - Aggregate ids are strings on the wire and in storage; freshly created
 *   aggregates receive UUID strings but ids are never required to be UUIDs
 *   on input.
 */

package domain

import "time"

// EventKind identifies the concrete kind of a persisted event.
type EventKind string

const (
	UserCreated        EventKind = "UserCreatedEvent"
	UserAddressChanged EventKind = "UserAddressChangedEvent"
	AccountCreated     EventKind = "AccountCreatedEvent"
	AccountTypeChanged EventKind = "AccountTypeChangedEvent"
	AmountTransferred  EventKind = "AmountTransferredEvent"
	AmountDeposited    EventKind = "AmountDepositedEvent"
)

// UserEventData is the kind-specific payload of a user event. PreviousAddress
// is only populated for UserAddressChanged events.
type UserEventData struct {
	Address         string `json:"address"`
	PreviousAddress string `json:"previous_address,omitempty"`
}

// UserEvent records the creation of a user or a change to their profile.
type UserEvent struct {
	Kind      EventKind     `json:"type"`
	Timestamp time.Time     `json:"timestamp"`
	UserID    string        `json:"user_id"`
	UserName  string        `json:"user_name"`
	Data      UserEventData `json:"data"`
}

// AccountEventData is the kind-specific payload of an account event.
// InitialBalance is only meaningful for AccountCreated events and
// PreviousAccountType for AccountTypeChanged events.
type AccountEventData struct {
	InitialBalance      float64 `json:"initial_balance,omitempty"`
	PreviousAccountType string  `json:"previous_account_type,omitempty"`
}

// AccountEvent records the creation of an account or a change to it.
type AccountEvent struct {
	Kind        EventKind        `json:"type"`
	Timestamp   time.Time        `json:"timestamp"`
	AccountID   string           `json:"account_id"`
	OwnerID     string           `json:"owner_id"`
	BranchID    string           `json:"branch_id"`
	AccountType string           `json:"account_type"`
	IsActive    bool             `json:"is_active"`
	Data        AccountEventData `json:"data"`
}

// TransactionEventData is reserved for future transaction event payloads;
// transfers and deposits currently carry everything in the envelope.
type TransactionEventData struct{}

// TransactionEvent records money movement. Deposits have no sender: SenderID
// and SenderAccountID are empty for AmountDeposited events.
type TransactionEvent struct {
	Kind              EventKind            `json:"type"`
	Timestamp         time.Time            `json:"timestamp"`
	TransactionID     string               `json:"transaction_id"`
	SenderID          string               `json:"sender_id,omitempty"`
	SenderAccountID   string               `json:"sender_account_id,omitempty"`
	ReceiverID        string               `json:"receiver_id"`
	ReceiverAccountID string               `json:"receiver_account_id"`
	TerminalID        string               `json:"terminal_id"`
	BranchID          string               `json:"branch_id"`
	Amount            float64              `json:"amount"`
	Data              TransactionEventData `json:"data"`
}
