package money

import "errors"

// ErrInvalidAmount is returned when user input cannot be read as a decimal amount.
var ErrInvalidAmount = errors.New("invalid amount")
