package domain

import "testing"

const validTimestamp = "2021-04-01T12:00:00Z"

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func validTransferCommand() TransferAmountCommand {
	return TransferAmountCommand{
		Kind:              TransferAmount,
		Timestamp:         validTimestamp,
		ReceiverID:        "u2",
		ReceiverAccountID: "a2",
		SenderID:          "u1",
		SenderAccountID:   "a1",
		TerminalID:        "term-1",
		BranchID:          "branch-1",
		Amount:            floatPtr(10),
		Data:              &TransactionData{},
	}
}

func TestCreateNewUserCommand_Validate(t *testing.T) {
	valid := CreateNewUserCommand{
		Kind:      CreateNewUser,
		Timestamp: validTimestamp,
		UserName:  "Hans",
		Data:      &UserCreatedData{Address: "Hansstrasse 1"},
	}

	tests := []struct {
		name   string
		mutate func(c *CreateNewUserCommand)
		want   bool
	}{
		{"valid", func(c *CreateNewUserCommand) {}, true},
		{"wrong kind", func(c *CreateNewUserCommand) { c.Kind = ChangeUserAddress }, false},
		{"bad timestamp", func(c *CreateNewUserCommand) { c.Timestamp = "yesterday" }, false},
		{"empty name", func(c *CreateNewUserCommand) { c.UserName = "  " }, false},
		{"missing data", func(c *CreateNewUserCommand) { c.Data = nil }, false},
		{"empty address", func(c *CreateNewUserCommand) { c.Data = &UserCreatedData{} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := valid
			tt.mutate(&cmd)
			if got := cmd.Validate(CreateNewUser); got != tt.want {
				t.Fatalf("Validate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChangeUserAddressCommand_Validate(t *testing.T) {
	valid := ChangeUserAddressCommand{
		Kind:      ChangeUserAddress,
		Timestamp: validTimestamp,
		UserID:    "u1",
		UserName:  "Hans",
		Data:      &UserAddressChangedData{Address: "Hansweg 3", PreviousAddress: "Hansstrasse 1"},
	}

	tests := []struct {
		name   string
		mutate func(c *ChangeUserAddressCommand)
		want   bool
	}{
		{"valid", func(c *ChangeUserAddressCommand) {}, true},
		{"wrong kind", func(c *ChangeUserAddressCommand) { c.Kind = CreateNewUser }, false},
		{"empty user id", func(c *ChangeUserAddressCommand) { c.UserID = "" }, false},
		{"missing previous address", func(c *ChangeUserAddressCommand) {
			c.Data = &UserAddressChangedData{Address: "Hansweg 3"}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := valid
			tt.mutate(&cmd)
			if got := cmd.Validate(ChangeUserAddress); got != tt.want {
				t.Fatalf("Validate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreateNewAccountCommand_Validate(t *testing.T) {
	valid := CreateNewAccountCommand{
		Kind:        CreateNewAccount,
		Timestamp:   validTimestamp,
		OwnerID:     "u1",
		TerminalID:  "term-1",
		BranchID:    "branch-1",
		IsActive:    boolPtr(true),
		AccountType: "private",
		Data:        &AccountCreatedData{InitialBalance: floatPtr(0)},
	}

	tests := []struct {
		name   string
		mutate func(c *CreateNewAccountCommand)
		want   bool
	}{
		{"valid", func(c *CreateNewAccountCommand) {}, true},
		{"explicit false is_active is valid", func(c *CreateNewAccountCommand) { c.IsActive = boolPtr(false) }, true},
		{"missing is_active", func(c *CreateNewAccountCommand) { c.IsActive = nil }, false},
		{"missing initial balance", func(c *CreateNewAccountCommand) { c.Data = &AccountCreatedData{} }, false},
		{"missing data", func(c *CreateNewAccountCommand) { c.Data = nil }, false},
		{"empty owner", func(c *CreateNewAccountCommand) { c.OwnerID = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := valid
			tt.mutate(&cmd)
			if got := cmd.Validate(CreateNewAccount); got != tt.want {
				t.Fatalf("Validate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChangeAccountTypeCommand_Validate(t *testing.T) {
	valid := ChangeAccountTypeCommand{
		Kind:        ChangeAccountType,
		Timestamp:   validTimestamp,
		AccountType: "commercial",
		AccountID:   "a1",
		OwnerID:     "u1",
		BranchID:    "branch-1",
		IsActive:    boolPtr(true),
		Data:        &AccountTypeChangedData{PreviousAccountType: "private"},
	}

	if !valid.Validate(ChangeAccountType) {
		t.Fatal("expected valid command to pass")
	}

	missingPrev := valid
	missingPrev.Data = &AccountTypeChangedData{}
	if missingPrev.Validate(ChangeAccountType) {
		t.Fatal("expected command without previous type to fail")
	}
}

func TestTransferAmountCommand_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *TransferAmountCommand)
		want   bool
	}{
		{"valid", func(c *TransferAmountCommand) {}, true},
		{"zero amount is structurally valid", func(c *TransferAmountCommand) { c.Amount = floatPtr(0) }, true},
		{"missing amount", func(c *TransferAmountCommand) { c.Amount = nil }, false},
		{"missing data", func(c *TransferAmountCommand) { c.Data = nil }, false},
		{"empty sender account", func(c *TransferAmountCommand) { c.SenderAccountID = " " }, false},
		{"wrong kind", func(c *TransferAmountCommand) { c.Kind = DepositAmount }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validTransferCommand()
			tt.mutate(&cmd)
			if got := cmd.Validate(TransferAmount); got != tt.want {
				t.Fatalf("Validate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDepositAmountCommand_Validate(t *testing.T) {
	valid := DepositAmountCommand{
		Kind:              DepositAmount,
		Timestamp:         validTimestamp,
		ReceiverID:        "u1",
		ReceiverAccountID: "a1",
		TerminalID:        "term-1",
		BranchID:          "branch-1",
		Amount:            floatPtr(100),
		Data:              &TransactionData{},
	}

	if !valid.Validate(DepositAmount) {
		t.Fatal("expected valid deposit to pass")
	}

	badTime := valid
	badTime.Timestamp = "not-a-time"
	if badTime.Validate(DepositAmount) {
		t.Fatal("expected deposit with bad timestamp to fail")
	}

	missingReceiver := valid
	missingReceiver.ReceiverAccountID = ""
	if missingReceiver.Validate(DepositAmount) {
		t.Fatal("expected deposit without receiver account to fail")
	}
}
