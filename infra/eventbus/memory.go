package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
)

// DefaultPublishedLimit is how many recent events the bus keeps for Published.
const DefaultPublishedLimit = 256

// MemoryEventBus is a synchronous in-memory implementation of eventbus.Bus.
// Handlers run on the emitting goroutine, in registration order.
type MemoryEventBus struct {
	handlers  map[events.EventType][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	published []events.Event
	limit     int
}

// Option configures a MemoryEventBus.
type Option func(*MemoryEventBus)

// WithPublishedLimit keeps at most n of the most recent events.
// Zero or less disables recording.
func WithPublishedLimit(n int) Option {
	return func(b *MemoryEventBus) {
		if n < 0 {
			n = 0
		}
		b.limit = n
	}
}

// NewWithMemory creates a new in-memory event bus.
func NewWithMemory(logger *slog.Logger, opts ...Option) *MemoryEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	b := &MemoryEventBus{
		handlers:  make(map[events.EventType][]eventbus.HandlerFunc),
		logger:    logger.With("bus", "memory"),
		published: make([]events.Event, 0),
		limit:     DefaultPublishedLimit,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register registers a handler for a specific event type.
func (b *MemoryEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit dispatches the event to all registered handlers for its type.
// Every handler runs even if an earlier one fails; their errors are joined.
func (b *MemoryEventBus) Emit(ctx context.Context, event events.Event) error {
	eventType := events.EventType(event.Type())

	b.mu.Lock()
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[eventType]...)
	b.record(event)
	b.mu.Unlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			b.logger.Error("failed to process event", "type", eventType, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// record appends event and drops the oldest ones past the limit. Callers hold mu.
func (b *MemoryEventBus) record(event events.Event) {
	if b.limit == 0 {
		return
	}
	b.published = append(b.published, event)
	if over := len(b.published) - b.limit; over > 0 {
		n := copy(b.published, b.published[over:])
		clear(b.published[n:])
		b.published = b.published[:n]
	}
}

// ClearPublished clears the list of published events. This is useful for testing.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = make([]events.Event, 0)
}

// Published returns a copy of the most recent events, oldest first.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]events.Event, len(b.published))
	copy(out, b.published)
	return out
}

// Ensure MemoryEventBus implements the Bus interface.
var _ eventbus.Bus = (*MemoryEventBus)(nil)
