/**
 * @description
 * Event factory for the Account aggregate. Pure transformation of validated
 * commands into events; never touches the store.
 */

package domain

import "github.com/google/uuid"

// AccountModel generates account events from validated commands.
type AccountModel struct{}

// CreateNewAccount produces the AccountCreated event for a new account,
// assigning it a fresh id.
func (AccountModel) CreateNewAccount(cmd CreateNewAccountCommand) []AccountEvent {
	ts, _ := ParseCommandTime(cmd.Timestamp)
	return []AccountEvent{{
		Kind:        AccountCreated,
		Timestamp:   ts,
		AccountID:   uuid.NewString(),
		OwnerID:     cmd.OwnerID,
		BranchID:    cmd.BranchID,
		AccountType: cmd.AccountType,
		IsActive:    *cmd.IsActive,
		Data:        AccountEventData{InitialBalance: *cmd.Data.InitialBalance},
	}}
}

// ChangeAccountType produces the AccountTypeChanged event for an existing
// account.
func (AccountModel) ChangeAccountType(cmd ChangeAccountTypeCommand) []AccountEvent {
	ts, _ := ParseCommandTime(cmd.Timestamp)
	return []AccountEvent{{
		Kind:        AccountTypeChanged,
		Timestamp:   ts,
		AccountID:   cmd.AccountID,
		OwnerID:     cmd.OwnerID,
		BranchID:    cmd.BranchID,
		AccountType: cmd.AccountType,
		IsActive:    *cmd.IsActive,
		Data:        AccountEventData{PreviousAccountType: cmd.Data.PreviousAccountType},
	}}
}
