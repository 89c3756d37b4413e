package cli

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/amirasaad/ledger/pkg/registry"
)

// describe turns a service error into the message shown to the operator.
func describe(err error) string {
	switch {
	case errors.Is(err, money.ErrInvalidAmount):
		return "Invalid amount, please type a number."
	case errors.Is(err, account.ErrInvalidAmount):
		return "Operation failed! Invalid amount."
	case errors.Is(err, account.ErrInsufficientFunds):
		return "Amount is greater than the current balance, operation not allowed."
	case errors.Is(err, account.ErrLimitExceeded):
		return "Amount exceeds the per-withdrawal limit, operation not allowed."
	case errors.Is(err, account.ErrWithdrawalCountExceeded):
		return "Withdrawal limit for the period reached! Come back tomorrow."
	case errors.Is(err, registry.ErrClientNotFound):
		return "No client is registered with this ID."
	case errors.Is(err, registry.ErrNoAccounts):
		return "This client has no linked accounts."
	case errors.Is(err, registry.ErrAccountNotFound):
		return "Selected account does not exist."
	case errors.Is(err, registry.ErrDuplicateClient):
		return "A client with this ID already exists."
	case errors.Is(err, commands.ErrInvalidCommand):
		return "Invalid input: " + err.Error()
	default:
		return err.Error()
	}
}
