// Package app wires the bank service, its registry and the event bus handlers
// into a runnable application.
package app

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/handler/audit"
)

// SetupBus registers all event handlers with the provided event Bus.
func SetupBus(bus eventbus.Bus, logger *slog.Logger) {
	if bus == nil {
		return
	}
	h := audit.Handle(logger)
	for _, t := range []events.EventType{
		events.EventTypeClientRegistered,
		events.EventTypeAccountOpened,
		events.EventTypeDepositCompleted,
		events.EventTypeDepositFailed,
		events.EventTypeWithdrawCompleted,
		events.EventTypeWithdrawFailed,
	} {
		bus.Register(t, h)
	}
}
