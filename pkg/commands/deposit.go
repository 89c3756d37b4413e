// Package commands contains command DTOs for service and CLI orchestration.
package commands

import "github.com/shopspring/decimal"

// Deposit is a DTO for deposit operations (command pattern).
type Deposit struct {
	LegalID       string `validate:"required"`
	AccountNumber int    `validate:"gt=0"`
	Amount        decimal.Decimal
}
