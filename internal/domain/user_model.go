/**
 * @description
 * Event factory for the User aggregate: pure functions mapping a validated
 * command to the event(s) representing its effect. No I/O happens here; the
 * command services own persistence.
 *
 * Every factory returns a slice even though each current command yields
 * exactly one event, keeping the door open for multi-event commands.
 */

package domain

import "github.com/google/uuid"

// UserModel generates user events from validated commands.
type UserModel struct{}

// CreateNewUser produces the UserCreated event for a new user aggregate,
// assigning it a fresh id.
func (UserModel) CreateNewUser(cmd CreateNewUserCommand) []UserEvent {
	ts, _ := ParseCommandTime(cmd.Timestamp)
	return []UserEvent{{
		Kind:      UserCreated,
		Timestamp: ts,
		UserID:    uuid.NewString(),
		UserName:  cmd.UserName,
		Data:      UserEventData{Address: cmd.Data.Address},
	}}
}

// ChangeUserAddress produces the UserAddressChanged event for an existing
// user. The command's fields are carried into the envelope unchanged.
func (UserModel) ChangeUserAddress(cmd ChangeUserAddressCommand) []UserEvent {
	ts, _ := ParseCommandTime(cmd.Timestamp)
	return []UserEvent{{
		Kind:      UserAddressChanged,
		Timestamp: ts,
		UserID:    cmd.UserID,
		UserName:  cmd.UserName,
		Data: UserEventData{
			Address:         cmd.Data.Address,
			PreviousAddress: cmd.Data.PreviousAddress,
		},
	}}
}
