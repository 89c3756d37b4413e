package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind labels a recorded transaction.
type Kind string

const (
	KindDeposit    Kind = "Deposit"
	KindWithdrawal Kind = "Withdrawal"
)

func (k Kind) String() string { return string(k) }

// Entry is one line of an account's history.
type Entry struct {
	TransactionID uuid.UUID
	Kind          Kind
	Amount        decimal.Decimal
	RecordedAt    time.Time
}

// History is the append-only log of transactions applied to one account.
// Entries are kept in insertion order and are never altered or removed.
type History struct {
	entries []Entry
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{entries: make([]Entry, 0)}
}

// Record appends tx, stamped with the current time. Callers record only
// transactions whose account operation already succeeded.
func (h *History) Record(tx Transaction) {
	h.entries = append(h.entries, Entry{
		TransactionID: tx.ID(),
		Kind:          tx.Kind(),
		Amount:        tx.Amount(),
		RecordedAt:    time.Now().UTC(),
	})
}

// Entries returns a copy of the recorded entries in chronological order.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// CountOf returns how many entries carry the given kind.
func (h *History) CountOf(kind Kind) int {
	n := 0
	for _, e := range h.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}
