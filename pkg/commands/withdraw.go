package commands

import "github.com/shopspring/decimal"

// Withdraw is a DTO for withdrawal operations (command pattern).
type Withdraw struct {
	LegalID       string `validate:"required"`
	AccountNumber int    `validate:"gt=0"`
	Amount        decimal.Decimal
}
