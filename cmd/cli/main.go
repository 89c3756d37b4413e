package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/internal/cli"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	log "github.com/charmbracelet/log"
	"github.com/fatih/color"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Logs go to stderr so they never interleave with the menu on stdout.
	deps, err := initializer.InitializeDependencies(cfg, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	a := app.New(deps, cfg)

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	color.NoColor = !tty

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps.Logger.Info("Starting ledger", "env", cfg.Env, "branch", cfg.Bank.BranchCode)

	menu := cli.New(a.BankService, os.Stdin, os.Stdout,
		cli.WithSymbol(cfg.Bank.CurrencySymbol),
		cli.WithColor(tty),
	)
	if err := menu.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Thank you for banking with us. Bye!")
	return nil
}
