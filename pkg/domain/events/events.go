// Package events defines the domain events emitted by the bank service.
package events

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event is implemented by every domain event.
type Event interface {
	Type() string
}

// ClientRegistered is emitted after a new client joins the registry.
type ClientRegistered struct {
	ClientID   uuid.UUID
	LegalID    string
	OccurredAt time.Time
}

func (e ClientRegistered) Type() string { return EventTypeClientRegistered.String() }

// AccountOpened is emitted after an account is attached to its client.
type AccountOpened struct {
	LegalID    string
	Number     int
	Branch     string
	OccurredAt time.Time
}

func (e AccountOpened) Type() string { return EventTypeAccountOpened.String() }

// TransactionCompleted is emitted after a transaction was applied and recorded.
type TransactionCompleted struct {
	TransactionID uuid.UUID
	Kind          account.Kind
	LegalID       string
	Number        int
	Amount        decimal.Decimal
	Balance       decimal.Decimal
	OccurredAt    time.Time
}

func (e TransactionCompleted) Type() string {
	if e.Kind == account.KindWithdrawal {
		return EventTypeWithdrawCompleted.String()
	}
	return EventTypeDepositCompleted.String()
}

// TransactionFailed is emitted when an account rejected a transaction.
type TransactionFailed struct {
	TransactionID uuid.UUID
	Kind          account.Kind
	LegalID       string
	Number        int
	Amount        decimal.Decimal
	Reason        string
	OccurredAt    time.Time
}

func (e TransactionFailed) Type() string {
	if e.Kind == account.KindWithdrawal {
		return EventTypeWithdrawFailed.String()
	}
	return EventTypeDepositFailed.String()
}

var (
	_ Event = ClientRegistered{}
	_ Event = AccountOpened{}
	_ Event = TransactionCompleted{}
	_ Event = TransactionFailed{}
)
