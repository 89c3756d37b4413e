// Package registry keeps every client and account known to a running bank.
// It replaces process-wide lists with an explicit object that is created at
// startup and passed to whoever needs lookups.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/client"
)

var (
	// ErrClientNotFound is returned when no client has the requested legal identifier.
	ErrClientNotFound = errors.New("client not found")
	// ErrDuplicateClient is returned when registering a legal identifier that is already taken.
	ErrDuplicateClient = errors.New("client already exists")
	// ErrAccountNotFound is returned when no account has the requested number.
	ErrAccountNotFound = errors.New("account not found")
	// ErrNoAccounts is returned when a client has no linked accounts.
	ErrNoAccounts = errors.New("client has no linked accounts")
	// ErrNilClient is returned when a nil client is passed in.
	ErrNilClient = errors.New("nil client")
)

// Registry is a thread-safe, ordered store of clients and accounts. Client
// account lists are only read or appended while holding mu.
type Registry struct {
	clients  []*client.Individual
	accounts []account.Ledger
	mu       sync.RWMutex
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		clients:  make([]*client.Individual, 0),
		accounts: make([]account.Ledger, 0),
	}
}

// RegisterClient adds c. Legal identifiers are unique across the registry.
func (r *Registry) RegisterClient(c *client.Individual) error {
	if c == nil {
		return ErrNilClient
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.findClient(c.LegalID); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateClient, c.LegalID)
	}
	r.clients = append(r.clients, c)
	return nil
}

// FindClient returns the first client whose legal identifier matches.
func (r *Registry) FindClient(legalID string) (*client.Individual, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.findClient(legalID); ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrClientNotFound, legalID)
}

func (r *Registry) findClient(legalID string) (*client.Individual, bool) {
	for _, c := range r.clients {
		if c.LegalID == legalID {
			return c, true
		}
	}
	return nil, false
}

// NextAccountNumber returns the number the next opened account should get.
func (r *Registry) NextAccountNumber() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts) + 1
}

// AddAccount attaches l to c and to the registry's account list.
func (r *Registry) AddAccount(c *client.Individual, l account.Ledger) error {
	if c == nil {
		return ErrNilClient
	}
	if l == nil {
		return account.ErrNilAccount
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = append(r.accounts, l)
	c.AddAccount(l)
	return nil
}

// ChooseAccount returns the account of c with the given number.
// An unknown number is an error; there is no fallback to another account.
func (r *Registry) ChooseAccount(c *client.Individual, number int) (account.Ledger, error) {
	if c == nil {
		return nil, ErrNilClient
	}
	r.mu.RLock()
	accounts := c.Accounts()
	r.mu.RUnlock()
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAccounts, c.LegalID)
	}
	for _, l := range accounts {
		if l.Number() == number {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrAccountNotFound, number)
}

// FindAccount looks an account up by number across all clients.
func (r *Registry) FindAccount(number int) (account.Ledger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.accounts {
		if l.Number() == number {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrAccountNotFound, number)
}

// Accounts returns every account in opening order.
func (r *Registry) Accounts() []account.Ledger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]account.Ledger, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// Clients returns every client in registration order.
func (r *Registry) Clients() []*client.Individual {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*client.Individual, len(r.clients))
	copy(out, r.clients)
	return out
}
