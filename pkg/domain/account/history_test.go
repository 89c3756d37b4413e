package account_test

import (
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_RecordKeepsOrder(t *testing.T) {
	t.Parallel()
	h := account.NewHistory()
	txs := []account.Transaction{
		account.NewDeposit(dec(100)),
		account.NewWithdrawal(dec(20)),
		account.NewDeposit(dec(5)),
	}
	for _, tx := range txs {
		h.Record(tx)
	}

	entries := h.Entries()
	require.Len(t, entries, 3)
	for i, tx := range txs {
		assert.Equal(t, tx.ID(), entries[i].TransactionID)
		assert.Equal(t, tx.Kind(), entries[i].Kind)
		assert.True(t, tx.Amount().Equal(entries[i].Amount))
	}
}

func TestHistory_CountOf(t *testing.T) {
	t.Parallel()
	h := account.NewHistory()
	assert.Equal(t, 0, h.CountOf(account.KindWithdrawal))

	h.Record(account.NewDeposit(dec(1)))
	h.Record(account.NewWithdrawal(dec(1)))
	h.Record(account.NewWithdrawal(dec(2)))

	assert.Equal(t, 1, h.CountOf(account.KindDeposit))
	assert.Equal(t, 2, h.CountOf(account.KindWithdrawal))
	assert.Equal(t, 3, h.Len())
}

func TestHistory_EntriesIsACopy(t *testing.T) {
	t.Parallel()
	h := account.NewHistory()
	h.Record(account.NewDeposit(dec(100)))

	entries := h.Entries()
	entries[0].Kind = account.KindWithdrawal
	entries[0].Amount = dec(1)
	_ = append(entries, account.Entry{Kind: account.KindDeposit})

	fresh := h.Entries()
	require.Len(t, fresh, 1)
	assert.Equal(t, account.KindDeposit, fresh[0].Kind)
	assert.True(t, dec(100).Equal(fresh[0].Amount))
}

func TestKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Deposit", account.KindDeposit.String())
	assert.Equal(t, "Withdrawal", account.KindWithdrawal.String())
}

// staleDeposit is a deposit created long before it gets recorded.
type staleDeposit struct {
	*account.Deposit
	createdAt time.Time
}

func (d staleDeposit) CreatedAt() time.Time { return d.createdAt }

func TestHistory_RecordStampsRecordTime(t *testing.T) {
	t.Parallel()
	created := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	tx := staleDeposit{Deposit: account.NewDeposit(dec(10)), createdAt: created}

	h := account.NewHistory()
	h.Record(tx)

	entries := h.Entries()
	require.Len(t, entries, 1)
	assert.NotEqual(t, created, entries[0].RecordedAt)
	assert.WithinDuration(t, time.Now(), entries[0].RecordedAt, time.Minute)
	assert.Equal(t, time.UTC, entries[0].RecordedAt.Location())
}
