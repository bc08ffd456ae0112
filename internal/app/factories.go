/**
 * @description
 * Event factory interfaces consumed by the command services, satisfied by the
 * pure models in internal/domain. The indirection lets tests substitute
 * factories with controlled output.
 *
 * Routing keys for the event bus are derived here from the event kind.
 */

package app

import (
	"github.com/corebank/ledger-service/internal/domain"
)

// UserEventFactory turns validated user commands into events.
type UserEventFactory interface {
	CreateNewUser(cmd domain.CreateNewUserCommand) []domain.UserEvent
	ChangeUserAddress(cmd domain.ChangeUserAddressCommand) []domain.UserEvent
}

// AccountEventFactory turns validated account commands into events.
type AccountEventFactory interface {
	CreateNewAccount(cmd domain.CreateNewAccountCommand) []domain.AccountEvent
	ChangeAccountType(cmd domain.ChangeAccountTypeCommand) []domain.AccountEvent
}

// TransactionEventFactory turns validated transaction commands into events.
type TransactionEventFactory interface {
	TransferAmount(cmd domain.TransferAmountCommand) []domain.TransactionEvent
	DepositAmount(cmd domain.DepositAmountCommand) []domain.TransactionEvent
}

// routingKeyFor maps an event kind to its topic routing key on the ledger
// event exchange.
func routingKeyFor(kind domain.EventKind) string {
	switch kind {
	case domain.UserCreated:
		return "user.created"
	case domain.UserAddressChanged:
		return "user.address_changed"
	case domain.AccountCreated:
		return "account.created"
	case domain.AccountTypeChanged:
		return "account.type_changed"
	case domain.AmountTransferred:
		return "amount.transferred"
	case domain.AmountDeposited:
		return "amount.deposited"
	default:
		return "ledger.unknown"
	}
}
