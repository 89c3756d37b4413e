package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is an intent to change a ledger's balance. It is recorded in
// the ledger's history only when applying it succeeds.
type Transaction interface {
	ID() uuid.UUID
	Kind() Kind
	Amount() decimal.Decimal
	CreatedAt() time.Time
	// Apply performs the balance change on l and records the transaction
	// in l's history on success.
	Apply(l Ledger) error
}

type base struct {
	id        uuid.UUID
	amount    decimal.Decimal
	createdAt time.Time
}

func newBase(amount decimal.Decimal) base {
	return base{
		id:        uuid.New(),
		amount:    amount,
		createdAt: time.Now().UTC(),
	}
}

func (b base) ID() uuid.UUID           { return b.id }
func (b base) Amount() decimal.Decimal { return b.amount }
func (b base) CreatedAt() time.Time    { return b.createdAt }

// Deposit adds funds to a ledger.
type Deposit struct {
	base
}

// NewDeposit creates a deposit of amount. The amount is checked when applied.
func NewDeposit(amount decimal.Decimal) *Deposit {
	return &Deposit{base: newBase(amount)}
}

func (d *Deposit) Kind() Kind { return KindDeposit }

func (d *Deposit) Apply(l Ledger) error {
	if l == nil {
		return ErrNilAccount
	}
	if err := l.Deposit(d.amount); err != nil {
		return err
	}
	l.History().Record(d)
	return nil
}

// Withdrawal removes funds from a ledger.
type Withdrawal struct {
	base
}

// NewWithdrawal creates a withdrawal of amount. The amount is checked when applied.
func NewWithdrawal(amount decimal.Decimal) *Withdrawal {
	return &Withdrawal{base: newBase(amount)}
}

func (w *Withdrawal) Kind() Kind { return KindWithdrawal }

func (w *Withdrawal) Apply(l Ledger) error {
	if l == nil {
		return ErrNilAccount
	}
	if err := l.Withdraw(w.amount); err != nil {
		return err
	}
	l.History().Record(w)
	return nil
}

var (
	_ Transaction = (*Deposit)(nil)
	_ Transaction = (*Withdrawal)(nil)
)
