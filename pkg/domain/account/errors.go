package account

import "errors"

var (
	// ErrInvalidAmount is returned when a deposit is not positive or a withdrawal is negative.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrLimitExceeded is returned when a checking withdrawal exceeds the per-withdrawal limit.
	ErrLimitExceeded = errors.New("amount exceeds per-withdrawal limit")

	// ErrWithdrawalCountExceeded is returned when a checking account already
	// reached its maximum number of withdrawals for the period.
	ErrWithdrawalCountExceeded = errors.New("withdrawal count for the period exceeded")

	// ErrNilAccount is returned when a transaction is applied to a nil account.
	ErrNilAccount = errors.New("nil account")
)
