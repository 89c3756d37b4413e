package client_test

import (
	"errors"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/client"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTransaction struct {
	mock.Mock
}

func (m *mockTransaction) ID() uuid.UUID           { return uuid.Nil }
func (m *mockTransaction) Kind() account.Kind      { return account.KindDeposit }
func (m *mockTransaction) Amount() decimal.Decimal { return decimal.Zero }
func (m *mockTransaction) CreatedAt() time.Time    { return time.Time{} }

func (m *mockTransaction) Apply(l account.Ledger) error {
	args := m.Called(l)
	return args.Error(0)
}

func newIndividual(t *testing.T) *client.Individual {
	t.Helper()
	birth, err := time.Parse(client.BirthDateLayout, "15-03-1990")
	require.NoError(t, err)
	c, err := client.NewIndividual("111", "Ana Souza", birth, "Rua A, 1 - Centro SP")
	require.NoError(t, err)
	return c
}

func TestNewIndividual(t *testing.T) {
	t.Parallel()
	c := newIndividual(t)
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, "111", c.LegalID)
	assert.Equal(t, "Ana Souza", c.Name())
	assert.Equal(t, "Rua A, 1 - Centro SP", c.Address())
	assert.Equal(t, 1990, c.BirthDate.Year())
	assert.Empty(t, c.Accounts())
}

func TestNewIndividual_Validation(t *testing.T) {
	t.Parallel()
	_, err := client.NewIndividual("", "Ana", time.Time{}, "")
	assert.ErrorIs(t, err, client.ErrEmptyLegalID)

	_, err = client.NewIndividual("111", "", time.Time{}, "")
	assert.ErrorIs(t, err, client.ErrEmptyName)
}

func TestAddAccount(t *testing.T) {
	t.Parallel()
	c := newIndividual(t)
	first := account.OpenChecking(c, 1)
	second := account.Open(c, 2)

	c.AddAccount(first)
	c.AddAccount(second)

	accounts := c.Accounts()
	require.Len(t, accounts, 2)
	assert.Same(t, first, accounts[0])
	assert.Same(t, second, accounts[1])
	assert.Equal(t, "Ana Souza", accounts[0].Owner().Name())
}

func TestAccounts_ReturnsCopy(t *testing.T) {
	t.Parallel()
	c := newIndividual(t)
	c.AddAccount(account.Open(c, 1))

	accounts := c.Accounts()
	accounts[0] = nil
	assert.NotNil(t, c.Accounts()[0])
}

func TestExecute_DelegatesToTransaction(t *testing.T) {
	t.Parallel()
	c := newIndividual(t)
	acc := account.Open(c, 1)

	tx := new(mockTransaction)
	tx.On("Apply", acc).Return(nil).Once()
	require.NoError(t, c.Execute(acc, tx))

	boom := errors.New("boom")
	failing := new(mockTransaction)
	failing.On("Apply", acc).Return(boom).Once()
	assert.ErrorIs(t, c.Execute(acc, failing), boom)

	tx.AssertExpectations(t)
	failing.AssertExpectations(t)
}

func TestExecute_RealTransactions(t *testing.T) {
	t.Parallel()
	c := newIndividual(t)
	acc := account.OpenChecking(c, 1)
	c.AddAccount(acc)

	require.NoError(t, c.Execute(acc, account.NewDeposit(decimal.NewFromInt(1000))))
	require.NoError(t, c.Execute(acc, account.NewWithdrawal(decimal.NewFromInt(200))))
	assert.True(t, decimal.NewFromInt(800).Equal(acc.Balance()))
	assert.Equal(t, 2, acc.History().Len())
}
