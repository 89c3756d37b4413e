package registry_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/client"
	"github.com/amirasaad/ledger/pkg/registry"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
	reg *registry.Registry
	ana *client.Individual
}

func (s *RegistryTestSuite) SetupTest() {
	s.reg = registry.New()
	s.ana = s.newClient("111", "Ana Souza")
}

func (s *RegistryTestSuite) newClient(legalID, name string) *client.Individual {
	c, err := client.NewIndividual(legalID, name, time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC), "Rua A, 1")
	s.Require().NoError(err)
	return c
}

func (s *RegistryTestSuite) openAccount(c *client.Individual) account.Ledger {
	l := account.OpenChecking(c, s.reg.NextAccountNumber())
	s.Require().NoError(s.reg.AddAccount(c, l))
	return l
}

func (s *RegistryTestSuite) TestRegisterAndFind() {
	s.Require().NoError(s.reg.RegisterClient(s.ana))

	found, err := s.reg.FindClient("111")
	s.Require().NoError(err)
	s.Same(s.ana, found)
}

func (s *RegistryTestSuite) TestFindClient_NotFound() {
	_, err := s.reg.FindClient("999")
	s.ErrorIs(err, registry.ErrClientNotFound)
}

func (s *RegistryTestSuite) TestRegisterClient_Duplicate() {
	s.Require().NoError(s.reg.RegisterClient(s.ana))
	s.openAccount(s.ana)

	dup := s.newClient("111", "Someone Else")
	err := s.reg.RegisterClient(dup)
	s.ErrorIs(err, registry.ErrDuplicateClient)

	s.Len(s.reg.Clients(), 1)
	found, err := s.reg.FindClient("111")
	s.Require().NoError(err)
	s.Same(s.ana, found)
	s.Len(found.Accounts(), 1)
}

func (s *RegistryTestSuite) TestRegisterClient_Nil() {
	s.ErrorIs(s.reg.RegisterClient(nil), registry.ErrNilClient)
}

func (s *RegistryTestSuite) TestAccountNumbersAreSequential() {
	s.Require().NoError(s.reg.RegisterClient(s.ana))
	bob := s.newClient("222", "Bob")
	s.Require().NoError(s.reg.RegisterClient(bob))

	first := s.openAccount(s.ana)
	second := s.openAccount(bob)
	third := s.openAccount(s.ana)

	s.Equal(1, first.Number())
	s.Equal(2, second.Number())
	s.Equal(3, third.Number())
	s.Equal(4, s.reg.NextAccountNumber())

	all := s.reg.Accounts()
	s.Require().Len(all, 3)
	s.Same(first, all[0])
	s.Same(third, all[2])
	s.Len(s.ana.Accounts(), 2)
	s.Len(bob.Accounts(), 1)
}

func (s *RegistryTestSuite) TestAddAccount_Invalid() {
	s.ErrorIs(s.reg.AddAccount(nil, account.Open(s.ana, 1)), registry.ErrNilClient)
	s.ErrorIs(s.reg.AddAccount(s.ana, nil), account.ErrNilAccount)
	s.Empty(s.reg.Accounts())
}

func (s *RegistryTestSuite) TestChooseAccount() {
	s.Require().NoError(s.reg.RegisterClient(s.ana))

	_, err := s.reg.ChooseAccount(s.ana, 1)
	s.ErrorIs(err, registry.ErrNoAccounts)

	first := s.openAccount(s.ana)
	second := s.openAccount(s.ana)

	got, err := s.reg.ChooseAccount(s.ana, 2)
	s.Require().NoError(err)
	s.Same(second, got)

	got, err = s.reg.ChooseAccount(s.ana, 1)
	s.Require().NoError(err)
	s.Same(first, got)

	_, err = s.reg.ChooseAccount(s.ana, 42)
	s.ErrorIs(err, registry.ErrAccountNotFound)

	_, err = s.reg.ChooseAccount(nil, 1)
	s.ErrorIs(err, registry.ErrNilClient)
}

func (s *RegistryTestSuite) TestChooseAccount_OtherClientsAccount() {
	bob := s.newClient("222", "Bob")
	s.Require().NoError(s.reg.RegisterClient(s.ana))
	s.Require().NoError(s.reg.RegisterClient(bob))
	s.openAccount(s.ana)
	bobs := s.openAccount(bob)

	_, err := s.reg.ChooseAccount(s.ana, bobs.Number())
	s.ErrorIs(err, registry.ErrAccountNotFound)
}

func (s *RegistryTestSuite) TestChooseAccount_ConcurrentWithAddAccount() {
	s.Require().NoError(s.reg.RegisterClient(s.ana))
	const n = 50

	var wg sync.WaitGroup
	for i := 1; i <= n; i++ {
		wg.Add(2)
		go func(number int) {
			defer wg.Done()
			s.NoError(s.reg.AddAccount(s.ana, account.OpenChecking(s.ana, number)))
		}(i)
		go func(number int) {
			defer wg.Done()
			_, err := s.reg.ChooseAccount(s.ana, number)
			if err != nil {
				s.True(
					errors.Is(err, registry.ErrAccountNotFound) || errors.Is(err, registry.ErrNoAccounts),
					"unexpected error: %v", err,
				)
			}
		}(i)
	}
	wg.Wait()

	s.Len(s.ana.Accounts(), n)
	for i := 1; i <= n; i++ {
		_, err := s.reg.ChooseAccount(s.ana, i)
		s.NoError(err)
	}
}

func (s *RegistryTestSuite) TestFindAccount() {
	s.Require().NoError(s.reg.RegisterClient(s.ana))
	l := s.openAccount(s.ana)

	got, err := s.reg.FindAccount(l.Number())
	s.Require().NoError(err)
	s.Same(l, got)

	_, err = s.reg.FindAccount(99)
	s.ErrorIs(err, registry.ErrAccountNotFound)
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}
