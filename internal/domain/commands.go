/**
 * @description
 * This file defines the command model: one tagged struct per command kind,
 * decoded directly from the request body. Fields whose absence must be
 * detectable on externally-sourced wire data (booleans, amounts, nested data
 * payloads) are pointers so that a missing field is distinguishable from a
 * zero value.
 *
 * Validation is purely structural: each command's Validate method reports
 * whether the declared kind matches the expected kind, the timestamp parses,
 * and every field (including the nested data payload, where one exists) is
 * present and non-empty. Referential existence is checked separately by the
 * command services.
 */

package domain

import (
	"strings"
	"time"
)

// CommandKind identifies the declared kind of an incoming command.
type CommandKind string

const (
	CreateNewUser     CommandKind = "CreateNewUserCommand"
	ChangeUserAddress CommandKind = "ChangeUserAddressCommand"
	CreateNewAccount  CommandKind = "CreateNewAccountCommand"
	ChangeAccountType CommandKind = "ChangeAccountTypeCommand"
	TransferAmount    CommandKind = "TransferAmountCommand"
	DepositAmount     CommandKind = "DepositAmountCommand"
)

// ParseCommandTime parses the RFC3339 timestamp carried by every command. The
// instant is preserved as-is; no timezone normalization is applied.
func ParseCommandTime(ts string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(ts))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func present(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// UserCreatedData is the nested payload of a CreateNewUserCommand.
type UserCreatedData struct {
	Address string `json:"address"`
}

// UserAddressChangedData is the nested payload of a ChangeUserAddressCommand.
type UserAddressChangedData struct {
	Address         string `json:"address"`
	PreviousAddress string `json:"previous_address"`
}

// AccountCreatedData is the nested payload of a CreateNewAccountCommand.
type AccountCreatedData struct {
	InitialBalance *float64 `json:"initial_balance"`
}

// AccountTypeChangedData is the nested payload of a ChangeAccountTypeCommand.
type AccountTypeChangedData struct {
	PreviousAccountType string `json:"previous_account_type"`
}

// TransactionData is the nested payload of transfer and deposit commands.
// It carries no fields today but must still be present on the wire.
type TransactionData struct{}

// CreateNewUserCommand requests the creation of a new user aggregate.
type CreateNewUserCommand struct {
	Kind      CommandKind      `json:"type"`
	Timestamp string           `json:"timestamp"`
	UserName  string           `json:"user_name"`
	Data      *UserCreatedData `json:"data"`
}

func (c CreateNewUserCommand) Validate(expected CommandKind) bool {
	if c.Kind != expected {
		return false
	}
	if _, ok := ParseCommandTime(c.Timestamp); !ok {
		return false
	}
	if !present(c.UserName) {
		return false
	}
	return c.Data != nil && present(c.Data.Address)
}

// ChangeUserAddressCommand requests an address change on an existing user.
type ChangeUserAddressCommand struct {
	Kind      CommandKind             `json:"type"`
	Timestamp string                  `json:"timestamp"`
	UserID    string                  `json:"user_id"`
	UserName  string                  `json:"user_name"`
	Data      *UserAddressChangedData `json:"data"`
}

func (c ChangeUserAddressCommand) Validate(expected CommandKind) bool {
	if c.Kind != expected {
		return false
	}
	if _, ok := ParseCommandTime(c.Timestamp); !ok {
		return false
	}
	if !present(c.UserID, c.UserName) {
		return false
	}
	return c.Data != nil && present(c.Data.Address, c.Data.PreviousAddress)
}

// CreateNewAccountCommand requests the creation of a new account for an
// existing owner.
type CreateNewAccountCommand struct {
	Kind        CommandKind         `json:"type"`
	Timestamp   string              `json:"timestamp"`
	OwnerID     string              `json:"owner_id"`
	TerminalID  string              `json:"terminal_id"`
	BranchID    string              `json:"branch_id"`
	IsActive    *bool               `json:"is_active"`
	AccountType string              `json:"account_type"`
	Data        *AccountCreatedData `json:"data"`
}

func (c CreateNewAccountCommand) Validate(expected CommandKind) bool {
	if c.Kind != expected {
		return false
	}
	if _, ok := ParseCommandTime(c.Timestamp); !ok {
		return false
	}
	if !present(c.OwnerID, c.TerminalID, c.BranchID, c.AccountType) {
		return false
	}
	if c.IsActive == nil {
		return false
	}
	return c.Data != nil && c.Data.InitialBalance != nil
}

// ChangeAccountTypeCommand requests a type change on an existing account.
type ChangeAccountTypeCommand struct {
	Kind        CommandKind             `json:"type"`
	Timestamp   string                  `json:"timestamp"`
	AccountType string                  `json:"account_type"`
	AccountID   string                  `json:"account_id"`
	OwnerID     string                  `json:"owner_id"`
	BranchID    string                  `json:"branch_id"`
	IsActive    *bool                   `json:"is_active"`
	Data        *AccountTypeChangedData `json:"data"`
}

func (c ChangeAccountTypeCommand) Validate(expected CommandKind) bool {
	if c.Kind != expected {
		return false
	}
	if _, ok := ParseCommandTime(c.Timestamp); !ok {
		return false
	}
	if !present(c.AccountType, c.AccountID, c.OwnerID, c.BranchID) {
		return false
	}
	if c.IsActive == nil {
		return false
	}
	return c.Data != nil && present(c.Data.PreviousAccountType)
}

// TransferAmountCommand requests a transfer between two accounts.
type TransferAmountCommand struct {
	Kind              CommandKind      `json:"type"`
	Timestamp         string           `json:"timestamp"`
	ReceiverID        string           `json:"receiver_id"`
	ReceiverAccountID string           `json:"receiver_account_id"`
	SenderID          string           `json:"sender_id"`
	SenderAccountID   string           `json:"sender_account_id"`
	TerminalID        string           `json:"terminal_id"`
	BranchID          string           `json:"branch_id"`
	Amount            *float64         `json:"amount"`
	Data              *TransactionData `json:"data"`
}

func (c TransferAmountCommand) Validate(expected CommandKind) bool {
	if c.Kind != expected {
		return false
	}
	if _, ok := ParseCommandTime(c.Timestamp); !ok {
		return false
	}
	if !present(c.ReceiverID, c.ReceiverAccountID, c.SenderID, c.SenderAccountID, c.TerminalID, c.BranchID) {
		return false
	}
	return c.Amount != nil && c.Data != nil
}

// DepositAmountCommand requests a deposit into an account. Deposits have no
// sender party.
type DepositAmountCommand struct {
	Kind              CommandKind      `json:"type"`
	Timestamp         string           `json:"timestamp"`
	ReceiverID        string           `json:"receiver_id"`
	ReceiverAccountID string           `json:"receiver_account_id"`
	TerminalID        string           `json:"terminal_id"`
	BranchID          string           `json:"branch_id"`
	Amount            *float64         `json:"amount"`
	Data              *TransactionData `json:"data"`
}

func (c DepositAmountCommand) Validate(expected CommandKind) bool {
	if c.Kind != expected {
		return false
	}
	if _, ok := ParseCommandTime(c.Timestamp); !ok {
		return false
	}
	if !present(c.ReceiverID, c.ReceiverAccountID, c.TerminalID, c.BranchID) {
		return false
	}
	return c.Amount != nil && c.Data != nil
}
