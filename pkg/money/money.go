// Package money parses and formats the decimal amounts moved by deposits and
// withdrawals.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the currency symbol printed in front of formatted amounts.
const DefaultSymbol = "R$"

// Exponent window for parsed amounts. Decimal arithmetic rescales operands to
// the smaller exponent, so the window bounds the cost of every add.
const (
	minExponent = -2
	maxExponent = 18
)

// Parse reads a decimal amount typed by an operator. A comma is accepted as
// the decimal separator when no dot is present ("10,50" == "10.50").
// Sign is preserved: rejecting non-positive amounts is an account rule.
// More than two decimal places, or an exponent beyond 10^18, is rejected.
func Parse(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}
	if !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if exp := d.Exponent(); exp < minExponent || exp > maxExponent {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, raw)
	}
	return d, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(raw string) decimal.Decimal {
	d, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return d
}

// Format renders an amount with two decimal places behind the given symbol.
func Format(symbol string, amount decimal.Decimal) string {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return fmt.Sprintf("%s %s", symbol, amount.StringFixed(2))
}
