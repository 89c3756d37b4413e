// Package client models the parties that own accounts and initiate transactions.
package client

import (
	"errors"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/google/uuid"
)

// BirthDateLayout is the dd-mm-yyyy layout birth dates are entered in.
const BirthDateLayout = "02-01-2006"

var (
	// ErrEmptyLegalID is returned when an individual is created without a legal identifier.
	ErrEmptyLegalID = errors.New("legal identifier cannot be empty")
	// ErrEmptyName is returned when an individual is created without a name.
	ErrEmptyName = errors.New("name cannot be empty")
)

// Client owns accounts and is the entry point for executing transactions on them.
type Client struct {
	address  string
	accounts []account.Ledger
}

// New creates a client living at address with no accounts.
func New(address string) *Client {
	return &Client{
		address:  address,
		accounts: make([]account.Ledger, 0),
	}
}

func (c *Client) Address() string { return c.address }

// Execute applies tx to l on behalf of the client.
func (c *Client) Execute(l account.Ledger, tx account.Transaction) error {
	return tx.Apply(l)
}

// AddAccount appends l to the client's accounts. No duplicate check is made.
func (c *Client) AddAccount(l account.Ledger) {
	c.accounts = append(c.accounts, l)
}

// Accounts returns the client's accounts in the order they were added.
func (c *Client) Accounts() []account.Ledger {
	out := make([]account.Ledger, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Individual is a natural person identified by a legal identifier.
type Individual struct {
	*Client
	ID        uuid.UUID
	LegalID   string
	FullName  string
	BirthDate time.Time
	CreatedAt time.Time
}

// NewIndividual creates an individual client.
func NewIndividual(legalID, name string, birthDate time.Time, address string) (*Individual, error) {
	if legalID == "" {
		return nil, ErrEmptyLegalID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Individual{
		Client:    New(address),
		ID:        uuid.New(),
		LegalID:   legalID,
		FullName:  name,
		BirthDate: birthDate,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Name implements account.Owner.
func (i *Individual) Name() string { return i.FullName }

var _ account.Owner = (*Individual)(nil)
