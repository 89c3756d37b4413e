// Package bank is the entry point the CLI calls into. It registers clients,
// opens accounts and runs deposits and withdrawals against the registry,
// emitting a domain event for every outcome.
package bank

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/client"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/registry"
	"github.com/shopspring/decimal"
)

// Service runs bank operations. Every operation holds the service lock for
// its whole duration, so a checking account's withdrawal count check, the
// balance change and the history append happen as one unit.
type Service struct {
	registry *registry.Registry
	bus      eventbus.Bus
	cfg      *config.Bank
	logger   *slog.Logger
	mu       sync.Mutex
}

// New creates a Service. A nil cfg falls back to the account package defaults.
func New(reg *registry.Registry, bus eventbus.Bus, cfg *config.Bank, logger *slog.Logger) *Service {
	if cfg == nil {
		cfg = &config.Bank{
			BranchCode:      account.DefaultBranch,
			WithdrawalLimit: decimal.NewFromInt(account.DefaultWithdrawalLimit),
			MaxWithdrawals:  account.DefaultMaxWithdrawals,
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		registry: reg,
		bus:      bus,
		cfg:      cfg,
		logger:   logger.With("service", "bank"),
	}
}

// RegisterClient validates cmd and adds a new individual client.
// A legal identifier that is already registered yields registry.ErrDuplicateClient.
func (s *Service) RegisterClient(ctx context.Context, cmd commands.RegisterClient) (*client.Individual, error) {
	log := s.logger.With("op", "RegisterClient", "legal_id", cmd.LegalID)
	if err := commands.Validate(cmd); err != nil {
		log.Warn("Invalid registration", "error", err)
		return nil, err
	}
	birthDate, err := time.Parse(client.BirthDateLayout, cmd.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: birth date: %v", commands.ErrInvalidCommand, err)
	}
	c, err := client.NewIndividual(cmd.LegalID, cmd.Name, birthDate, cmd.Address)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	err = s.registry.RegisterClient(c)
	s.mu.Unlock()
	if err != nil {
		log.Warn("Registration rejected", "error", err)
		return nil, err
	}

	log.Info("Client registered", "client_id", c.ID)
	s.emit(ctx, events.ClientRegistered{
		ClientID:   c.ID,
		LegalID:    c.LegalID,
		OccurredAt: c.CreatedAt,
	})
	return c, nil
}

// FindClient looks a client up by legal identifier.
func (s *Service) FindClient(_ context.Context, legalID string) (*client.Individual, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.FindClient(legalID)
}

// OpenAccount opens a checking account for the client with legalID, using
// the configured branch and withdrawal rules, and attaches it to the client.
func (s *Service) OpenAccount(ctx context.Context, legalID string) (account.Ledger, error) {
	log := s.logger.With("op", "OpenAccount", "legal_id", legalID)

	s.mu.Lock()
	c, err := s.registry.FindClient(legalID)
	if err != nil {
		s.mu.Unlock()
		log.Warn("Cannot open account", "error", err)
		return nil, err
	}
	l := account.OpenChecking(c, s.registry.NextAccountNumber(),
		account.WithBranch(s.cfg.BranchCode),
		account.WithWithdrawalLimit(s.cfg.WithdrawalLimit),
		account.WithMaxWithdrawals(s.cfg.MaxWithdrawals),
	)
	err = s.registry.AddAccount(c, l)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	log.Info("Account opened", "number", l.Number(), "branch", l.Branch())
	s.emit(ctx, events.AccountOpened{
		LegalID:    legalID,
		Number:     l.Number(),
		Branch:     l.Branch(),
		OccurredAt: time.Now().UTC(),
	})
	return l, nil
}

// Deposit adds cmd.Amount to the client's account.
func (s *Service) Deposit(ctx context.Context, cmd commands.Deposit) (account.Ledger, error) {
	if err := commands.Validate(cmd); err != nil {
		return nil, err
	}
	return s.execute(ctx, cmd.LegalID, cmd.AccountNumber, account.NewDeposit(cmd.Amount))
}

// Withdraw removes cmd.Amount from the client's account.
func (s *Service) Withdraw(ctx context.Context, cmd commands.Withdraw) (account.Ledger, error) {
	if err := commands.Validate(cmd); err != nil {
		return nil, err
	}
	return s.execute(ctx, cmd.LegalID, cmd.AccountNumber, account.NewWithdrawal(cmd.Amount))
}

func (s *Service) execute(
	ctx context.Context,
	legalID string,
	number int,
	tx account.Transaction,
) (account.Ledger, error) {
	log := s.logger.With(
		"op", tx.Kind().String(),
		"legal_id", legalID,
		"number", number,
		"amount", tx.Amount().String(),
		"transaction_id", tx.ID(),
	)

	l, balance, err := s.apply(legalID, number, tx)
	if l == nil && err != nil {
		log.Warn("Lookup failed", "error", err)
		return nil, err
	}
	if err != nil {
		log.Warn("Transaction rejected", "error", err)
		s.emit(ctx, events.TransactionFailed{
			TransactionID: tx.ID(),
			Kind:          tx.Kind(),
			LegalID:       legalID,
			Number:        number,
			Amount:        tx.Amount(),
			Reason:        err.Error(),
			OccurredAt:    time.Now().UTC(),
		})
		return nil, fmt.Errorf("%s rejected: %w", tx.Kind(), err)
	}

	log.Info("Transaction completed", "balance", balance.String())
	s.emit(ctx, events.TransactionCompleted{
		TransactionID: tx.ID(),
		Kind:          tx.Kind(),
		LegalID:       legalID,
		Number:        number,
		Amount:        tx.Amount(),
		Balance:       balance,
		OccurredAt:    tx.CreatedAt(),
	})
	return l, nil
}

// apply resolves the client and account and executes tx under the service lock.
// A nil ledger with an error means the lookup failed.
func (s *Service) apply(legalID string, number int, tx account.Transaction) (account.Ledger, decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.registry.FindClient(legalID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	l, err := s.registry.ChooseAccount(c, number)
	if err != nil {
		return nil, decimal.Zero, err
	}
	err = c.Execute(l, tx)
	return l, l.Balance(), err
}

// Statement is a snapshot of one account's history and balance.
type Statement struct {
	Branch  string
	Number  int
	Holder  string
	Entries []account.Entry
	Balance decimal.Decimal
}

// Statement returns the history and balance of the client's account.
func (s *Service) Statement(_ context.Context, legalID string, number int) (*Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.registry.FindClient(legalID)
	if err != nil {
		return nil, err
	}
	l, err := s.registry.ChooseAccount(c, number)
	if err != nil {
		return nil, err
	}
	return &Statement{
		Branch:  l.Branch(),
		Number:  l.Number(),
		Holder:  c.Name(),
		Entries: l.History().Entries(),
		Balance: l.Balance(),
	}, nil
}

// Balance returns the current balance of l.
func (s *Service) Balance(l account.Ledger) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return l.Balance()
}

// HistoryEntries returns the recorded entries of l in chronological order.
func (s *Service) HistoryEntries(l account.Ledger) []account.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return l.History().Entries()
}

// Accounts returns every account in opening order.
func (s *Service) Accounts(_ context.Context) []account.Ledger {
	return s.registry.Accounts()
}

func (s *Service) emit(ctx context.Context, e events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, e); err != nil {
		s.logger.Error("Failed to emit event", "event_type", e.Type(), "error", err)
	}
}
