// Package account holds the ledger side of the bank: accounts, their
// transaction history and the deposit/withdrawal transactions applied to them.
package account

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultBranch is the branch code every account is opened under.
	DefaultBranch = "0001"
	// DefaultWithdrawalLimit caps a single checking withdrawal.
	DefaultWithdrawalLimit = 500
	// DefaultMaxWithdrawals caps checking withdrawals per statement period.
	DefaultMaxWithdrawals = 3
)

// Owner is the party an account belongs to.
type Owner interface {
	Name() string
}

// Ledger is the behaviour shared by every account variant. Transactions are
// applied against a Ledger, so a variant only overrides the rules it changes.
type Ledger interface {
	Number() int
	Branch() string
	Owner() Owner
	Balance() decimal.Decimal
	History() *History
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	fmt.Stringer
}

// Account is a plain account with a balance that can never go negative.
//
// Invariants:
//   - The balance only changes through Deposit and Withdraw.
//   - A withdrawal never leaves the balance below zero.
//   - The account owns its History for its whole lifetime.
type Account struct {
	number   int
	branch   string
	owner    Owner
	balance  decimal.Decimal
	history  *History
	openedAt time.Time
}

type options struct {
	branch          string
	withdrawalLimit decimal.Decimal
	maxWithdrawals  int
}

// Option customises a newly opened account.
type Option func(*options)

// WithBranch overrides DefaultBranch.
func WithBranch(code string) Option {
	return func(o *options) {
		if code != "" {
			o.branch = code
		}
	}
}

// WithWithdrawalLimit sets the per-withdrawal cap of a checking account.
func WithWithdrawalLimit(limit decimal.Decimal) Option {
	return func(o *options) { o.withdrawalLimit = limit }
}

// WithMaxWithdrawals sets how many withdrawals a checking account allows per period.
func WithMaxWithdrawals(n int) Option {
	return func(o *options) { o.maxWithdrawals = n }
}

func buildOptions(opts []Option) options {
	o := options{
		branch:          DefaultBranch,
		withdrawalLimit: decimal.NewFromInt(DefaultWithdrawalLimit),
		maxWithdrawals:  DefaultMaxWithdrawals,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Open creates an account for owner with a zero balance and an empty history.
// It does not attach the account to the owner; that is up to the caller.
func Open(owner Owner, number int, opts ...Option) *Account {
	o := buildOptions(opts)
	return newAccount(owner, number, o)
}

func newAccount(owner Owner, number int, o options) *Account {
	return &Account{
		number:   number,
		branch:   o.branch,
		owner:    owner,
		balance:  decimal.Zero,
		history:  NewHistory(),
		openedAt: time.Now().UTC(),
	}
}

func (a *Account) Number() int              { return a.number }
func (a *Account) Branch() string           { return a.branch }
func (a *Account) Owner() Owner             { return a.owner }
func (a *Account) Balance() decimal.Decimal { return a.balance }
func (a *Account) History() *History        { return a.history }
func (a *Account) OpenedAt() time.Time      { return a.openedAt }

// Deposit adds amount to the balance. Amount must be positive.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw removes amount from the balance. The balance check runs before the
// sign check. A zero amount is accepted.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	switch {
	case amount.GreaterThan(a.balance):
		return ErrInsufficientFunds
	case amount.IsNegative():
		return ErrInvalidAmount
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// String renders the branch, number and holder the way statements list accounts.
func (a *Account) String() string {
	holder := ""
	if a.owner != nil {
		holder = a.owner.Name()
	}
	return fmt.Sprintf("Branch:\t%s\nAccount:\t%d\nHolder:\t%s", a.branch, a.number, holder)
}

var _ Ledger = (*Account)(nil)
