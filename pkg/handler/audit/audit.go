// Package audit logs every domain event the bank emits, giving operators a
// trail of who did what to which account.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
)

// Handle returns a handler that writes one structured log line per event.
func Handle(logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		log := logger.With(
			"handler", "audit.Handle",
			"event_type", e.Type(),
		)
		switch ev := e.(type) {
		case events.ClientRegistered:
			log.InfoContext(ctx, "👤 Client registered",
				"client_id", ev.ClientID,
				"legal_id", ev.LegalID,
			)
		case events.AccountOpened:
			log.InfoContext(ctx, "🏦 Account opened",
				"legal_id", ev.LegalID,
				"branch", ev.Branch,
				"number", ev.Number,
			)
		case events.TransactionCompleted:
			log.InfoContext(ctx, "✅ Transaction completed",
				"transaction_id", ev.TransactionID,
				"kind", ev.Kind,
				"legal_id", ev.LegalID,
				"number", ev.Number,
				"amount", ev.Amount.String(),
				"balance", ev.Balance.String(),
			)
		case events.TransactionFailed:
			log.WarnContext(ctx, "⚠️ Transaction rejected",
				"transaction_id", ev.TransactionID,
				"kind", ev.Kind,
				"legal_id", ev.LegalID,
				"number", ev.Number,
				"amount", ev.Amount.String(),
				"reason", ev.Reason,
			)
		default:
			log.ErrorContext(ctx, "❌ Unexpected event type")
			return fmt.Errorf("unexpected event type: %s", e.Type())
		}
		return nil
	}
}
