package app

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/registry"
	"github.com/amirasaad/ledger/pkg/service/bank"
)

// Deps contains the infrastructure the application is built from.
type Deps struct {
	Registry *registry.Registry
	EventBus eventbus.Bus
	Logger   *slog.Logger
}

type App struct {
	Deps        *Deps
	Config      *config.App
	BankService *bank.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	SetupBus(deps.EventBus, deps.Logger)
	app.BankService = bank.New(deps.Registry, deps.EventBus, cfg.Bank, deps.Logger)
	return app
}
