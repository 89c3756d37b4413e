// Package cli is the interactive text menu operators use to drive the bank.
// It only parses input and renders results; every rule lives in the service.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/client"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/amirasaad/ledger/pkg/registry"
	"github.com/amirasaad/ledger/pkg/service/bank"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Bank is the part of the bank service the menu needs.
type Bank interface {
	RegisterClient(ctx context.Context, cmd commands.RegisterClient) (*client.Individual, error)
	FindClient(ctx context.Context, legalID string) (*client.Individual, error)
	OpenAccount(ctx context.Context, legalID string) (account.Ledger, error)
	Deposit(ctx context.Context, cmd commands.Deposit) (account.Ledger, error)
	Withdraw(ctx context.Context, cmd commands.Withdraw) (account.Ledger, error)
	Statement(ctx context.Context, legalID string, number int) (*bank.Statement, error)
	Accounts(ctx context.Context) []account.Ledger
}

const menu = `
================ MENU ================
[1]	Deposit
[2]	Withdraw
[3]	Statement
[4]	New account
[5]	List accounts
[6]	New client
[7]	Exit
=> `

// CLI reads menu choices and prompts from in and writes to out.
type CLI struct {
	bank   Bank
	in     *bufio.Scanner
	out    io.Writer
	symbol string

	ok    *color.Color
	fail  *color.Color
	title lipgloss.Style
}

// Option configures a CLI.
type Option func(*CLI)

// WithSymbol sets the currency symbol amounts are printed with.
func WithSymbol(symbol string) Option {
	return func(c *CLI) {
		if symbol != "" {
			c.symbol = symbol
		}
	}
}

// WithColor forces colored output on or off.
func WithColor(enabled bool) Option {
	return func(c *CLI) {
		if enabled {
			c.ok.EnableColor()
			c.fail.EnableColor()
		} else {
			c.ok.DisableColor()
			c.fail.DisableColor()
		}
	}
}

// New creates a CLI over b.
func New(b Bank, in io.Reader, out io.Writer, opts ...Option) *CLI {
	renderer := lipgloss.NewRenderer(out)
	c := &CLI{
		bank:   b,
		in:     bufio.NewScanner(in),
		out:    out,
		symbol: money.DefaultSymbol,
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed, color.Bold),
		title:  renderer.NewStyle().Bold(true),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the menu until the operator exits, input ends, or ctx is done.
func (c *CLI) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		option, ok := c.prompt(menu)
		if !ok {
			return c.in.Err()
		}
		switch option {
		case "1":
			c.transact(ctx, account.KindDeposit)
		case "2":
			c.transact(ctx, account.KindWithdrawal)
		case "3":
			c.statement(ctx)
		case "4":
			c.newAccount(ctx)
		case "5":
			c.listAccounts(ctx)
		case "6":
			c.newClient(ctx)
		case "7":
			return nil
		default:
			c.failure("Invalid option, please select a valid operation.")
		}
	}
}

func (c *CLI) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *CLI) success(msg string) {
	_, _ = c.ok.Fprintln(c.out, msg)
}

func (c *CLI) failure(msg string) {
	_, _ = c.fail.Fprintln(c.out, "@@@ "+msg+" @@@")
}

func (c *CLI) client(ctx context.Context) (*client.Individual, bool) {
	legalID, ok := c.prompt("Client ID: ")
	if !ok {
		return nil, false
	}
	cl, err := c.bank.FindClient(ctx, legalID)
	if err != nil {
		c.failure(describe(err))
		return nil, false
	}
	return cl, true
}

func (c *CLI) accountNumber(cl *client.Individual) (int, bool) {
	if len(cl.Accounts()) == 0 {
		c.failure(describe(registry.ErrNoAccounts))
		return 0, false
	}
	raw, ok := c.prompt("Account number: ")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		c.failure("Account number must be a positive whole number.")
		return 0, false
	}
	return n, true
}

func (c *CLI) transact(ctx context.Context, kind account.Kind) {
	cl, ok := c.client(ctx)
	if !ok {
		return
	}
	raw, ok := c.prompt(fmt.Sprintf("%s amount: ", kind))
	if !ok {
		return
	}
	amount, err := money.Parse(raw)
	if err != nil {
		c.failure(describe(err))
		return
	}
	number, ok := c.accountNumber(cl)
	if !ok {
		return
	}

	var l account.Ledger
	if kind == account.KindWithdrawal {
		l, err = c.bank.Withdraw(ctx, commands.Withdraw{LegalID: cl.LegalID, AccountNumber: number, Amount: amount})
	} else {
		l, err = c.bank.Deposit(ctx, commands.Deposit{LegalID: cl.LegalID, AccountNumber: number, Amount: amount})
	}
	if err != nil {
		c.failure(describe(err))
		return
	}
	c.success(fmt.Sprintf("%s completed. Balance: %s", kind, money.Format(c.symbol, l.Balance())))
}

func (c *CLI) statement(ctx context.Context) {
	cl, ok := c.client(ctx)
	if !ok {
		return
	}
	number, ok := c.accountNumber(cl)
	if !ok {
		return
	}
	st, err := c.bank.Statement(ctx, cl.LegalID, number)
	if err != nil {
		c.failure(describe(err))
		return
	}

	fmt.Fprintln(c.out, c.title.Render("-------------- STATEMENT --------------"))
	if len(st.Entries) == 0 {
		fmt.Fprintln(c.out, "No transactions recorded.")
	}
	for _, e := range st.Entries {
		fmt.Fprintf(c.out, "%s: %s\n", e.Kind, money.Format(c.symbol, e.Amount))
	}
	fmt.Fprintf(c.out, "\nBalance: %s\n", money.Format(c.symbol, st.Balance))
	fmt.Fprintln(c.out, "---------------------------------------")
}

func (c *CLI) newAccount(ctx context.Context) {
	legalID, ok := c.prompt("Client ID: ")
	if !ok {
		return
	}
	l, err := c.bank.OpenAccount(ctx, legalID)
	if err != nil {
		c.failure(describe(err))
		return
	}
	c.success(fmt.Sprintf("Account %d created at branch %s.", l.Number(), l.Branch()))
}

func (c *CLI) listAccounts(ctx context.Context) {
	fmt.Fprintln(c.out, c.title.Render("--------------- ACCOUNTS ---------------"))
	accounts := c.bank.Accounts(ctx)
	if len(accounts) == 0 {
		fmt.Fprintln(c.out, "No accounts opened yet.")
	}
	for _, l := range accounts {
		fmt.Fprintln(c.out, l.String())
		fmt.Fprintln(c.out)
	}
	fmt.Fprintln(c.out, "----------------------------------------")
}

func (c *CLI) newClient(ctx context.Context) {
	legalID, ok := c.prompt("Client ID: ")
	if !ok {
		return
	}
	if _, err := c.bank.FindClient(ctx, legalID); err == nil {
		c.failure(describe(registry.ErrDuplicateClient))
		return
	}
	name, ok := c.prompt("Full name: ")
	if !ok {
		return
	}
	birthDate, ok := c.prompt("Birth date (dd-mm-yyyy): ")
	if !ok {
		return
	}
	address, ok := c.prompt("Address (street, number - district city/state): ")
	if !ok {
		return
	}

	cl, err := c.bank.RegisterClient(ctx, commands.RegisterClient{
		LegalID:   legalID,
		Name:      name,
		BirthDate: birthDate,
		Address:   address,
	})
	if err != nil {
		c.failure(describe(err))
		return
	}
	c.success(fmt.Sprintf("Client %s registered.", cl.Name()))
}
