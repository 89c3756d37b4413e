package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	EventTypeClientRegistered EventType = "Client.Registered"
	EventTypeAccountOpened    EventType = "Account.Opened"

	EventTypeDepositCompleted EventType = "Deposit.Completed"
	EventTypeDepositFailed    EventType = "Deposit.Failed"

	EventTypeWithdrawCompleted EventType = "Withdraw.Completed"
	EventTypeWithdrawFailed    EventType = "Withdraw.Failed"
)

func (t EventType) String() string { return string(t) }
