/**
 * @description
 * Projection engine: pure fold functions turning ordered event streams into
 * current entities or derived scalars. Callers must supply events in
 * ascending timestamp order; the store contract guarantees this and the
 * reducers do not re-sort.
 *
 * All reducers are deterministic and side-effect free: reducing the same
 * stream twice yields the same result.
 */

package domain

// ReduceUser folds a user event stream into the current User. The creating
// event seeds the full entity; each UserAddressChanged overwrites only the
// address. Returns nil for an empty stream: an empty stream means the
// aggregate does not exist, never a default entity.
func ReduceUser(events []UserEvent) *User {
	if len(events) == 0 {
		return nil
	}

	var user User
	for _, ev := range events {
		switch ev.Kind {
		case UserCreated:
			user = User{
				ID:      ev.UserID,
				Name:    ev.UserName,
				Address: ev.Data.Address,
			}
		case UserAddressChanged:
			user.Address = ev.Data.Address
		}
	}
	return &user
}

// ReduceAccount folds an account event stream into the current Account. The
// creating event seeds the full attribute set; each AccountTypeChanged
// overwrites only the account type. Returns nil for an empty stream.
func ReduceAccount(events []AccountEvent) *Account {
	if len(events) == 0 {
		return nil
	}

	var account Account
	for _, ev := range events {
		switch ev.Kind {
		case AccountCreated:
			account = Account{
				ID:          ev.AccountID,
				OwnerID:     ev.OwnerID,
				AccountType: ev.AccountType,
				BranchID:    ev.BranchID,
				IsActive:    ev.IsActive,
			}
		case AccountTypeChanged:
			account.AccountType = ev.AccountType
		}
	}
	return &account
}

// ReduceAccounts groups a mixed-owner account event stream by account id,
// preserving stream order within each group, and folds each group into its
// current Account.
func ReduceAccounts(events []AccountEvent) []Account {
	grouped := make(map[string][]AccountEvent)
	var order []string
	for _, ev := range events {
		if _, seen := grouped[ev.AccountID]; !seen {
			order = append(order, ev.AccountID)
		}
		grouped[ev.AccountID] = append(grouped[ev.AccountID], ev)
	}

	accounts := make([]Account, 0, len(order))
	for _, id := range order {
		if account := ReduceAccount(grouped[id]); account != nil {
			accounts = append(accounts, *account)
		}
	}
	return accounts
}

// ReduceBalance folds a transaction event stream into the balance of the
// given account: amounts received add, amounts sent subtract. Both sides are
// checked independently, so an event where the account is sender and receiver
// nets to zero. An empty stream yields 0; a balance always has a value.
func ReduceBalance(events []TransactionEvent, accountID string) float64 {
	var balance float64
	for _, ev := range events {
		if ev.ReceiverAccountID == accountID {
			balance += ev.Amount
		}
		if ev.SenderAccountID == accountID {
			balance -= ev.Amount
		}
	}
	return balance
}
