package account

import "github.com/shopspring/decimal"

// Checking is an account with a per-withdrawal cap and a maximum number of
// withdrawals per statement period. The period is the account's history:
// every recorded withdrawal counts against it.
type Checking struct {
	*Account
	withdrawalLimit decimal.Decimal
	maxWithdrawals  int
}

// OpenChecking creates a checking account for owner. Limits default to
// DefaultWithdrawalLimit and DefaultMaxWithdrawals.
func OpenChecking(owner Owner, number int, opts ...Option) *Checking {
	o := buildOptions(opts)
	return &Checking{
		Account:         newAccount(owner, number, o),
		withdrawalLimit: o.withdrawalLimit,
		maxWithdrawals:  o.maxWithdrawals,
	}
}

func (c *Checking) WithdrawalLimit() decimal.Decimal { return c.withdrawalLimit }
func (c *Checking) MaxWithdrawals() int              { return c.maxWithdrawals }

// Withdraw checks, in order: the per-withdrawal limit, the withdrawal count,
// then the base balance rules.
func (c *Checking) Withdraw(amount decimal.Decimal) error {
	withdrawals := c.History().CountOf(KindWithdrawal)
	switch {
	case amount.GreaterThan(c.withdrawalLimit):
		return ErrLimitExceeded
	case withdrawals >= c.maxWithdrawals:
		return ErrWithdrawalCountExceeded
	}
	return c.Account.Withdraw(amount)
}

var _ Ledger = (*Checking)(nil)
