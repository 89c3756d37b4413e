package initializer

import (
	"errors"
	"io"

	infraeventbus "github.com/amirasaad/ledger/infra/eventbus"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/registry"
)

// ErrNilConfig is returned when dependencies are requested without a configuration.
var ErrNilConfig = errors.New("nil configuration")

// InitializeDependencies builds the logger, the in-memory registry and the
// event bus. Logs are written to logOut.
func InitializeDependencies(cfg *config.App, logOut io.Writer) (
	deps *app.Deps,
	err error,
) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	logger := setupLogger(cfg.Log, logOut)

	deps = &app.Deps{
		Logger:   logger,
		Registry: registry.New(),
		EventBus: infraeventbus.NewWithMemory(logger),
	}
	logger.Debug("Dependencies initialized", "env", cfg.Env)
	return deps, nil
}
