/**
 * @description
 * Event factory for the Transaction aggregate. Transfers and deposits both
 * yield a single event with a fresh transaction id; deposits carry no sender
 * party. Commands never produce balances; balances are always derived by
 * folding the transaction stream (see reducers.go).
 */

package domain

import "github.com/google/uuid"

// TransactionModel generates transaction events from validated commands.
type TransactionModel struct{}

// TransferAmount produces the AmountTransferred event for a transfer between
// two accounts.
func (TransactionModel) TransferAmount(cmd TransferAmountCommand) []TransactionEvent {
	ts, _ := ParseCommandTime(cmd.Timestamp)
	return []TransactionEvent{{
		Kind:              AmountTransferred,
		Timestamp:         ts,
		TransactionID:     uuid.NewString(),
		SenderID:          cmd.SenderID,
		SenderAccountID:   cmd.SenderAccountID,
		ReceiverID:        cmd.ReceiverID,
		ReceiverAccountID: cmd.ReceiverAccountID,
		TerminalID:        cmd.TerminalID,
		BranchID:          cmd.BranchID,
		Amount:            *cmd.Amount,
	}}
}

// DepositAmount produces the AmountDeposited event for a deposit into an
// account.
func (TransactionModel) DepositAmount(cmd DepositAmountCommand) []TransactionEvent {
	ts, _ := ParseCommandTime(cmd.Timestamp)
	return []TransactionEvent{{
		Kind:              AmountDeposited,
		Timestamp:         ts,
		TransactionID:     uuid.NewString(),
		ReceiverID:        cmd.ReceiverID,
		ReceiverAccountID: cmd.ReceiverAccountID,
		TerminalID:        cmd.TerminalID,
		BranchID:          cmd.BranchID,
		Amount:            *cmd.Amount,
	}}
}
