package menu

import (
	"BankLedger/internal/core/ports"
	"BankLedger/internal/shared/config"

	"github.com/rs/zerolog"
)

// HandlerConstructor builds one menu option from its dependencies.
// This allows us to pass dependencies from main.go.
type HandlerConstructor func(
	cfg *config.Config,
	ledger ports.Ledger,
	console ports.ConsolePort,
	baseLogger *zerolog.Logger,
) ports.MenuHandler

// handlerRegistry collects constructors from handler init() functions.
var handlerRegistry []HandlerConstructor

// RegisterHandler is called by handlers in their init() function.
func RegisterHandler(constructor HandlerConstructor) {
	handlerRegistry = append(handlerRegistry, constructor)
}

// RegisterAllHandlers is the single function called by main.go.
// It builds all registered handlers and installs them on the router.
func RegisterAllHandlers(
	cfg *config.Config,
	router *Router,
	ledger ports.Ledger,
	console ports.ConsolePort,
	baseLogger *zerolog.Logger,
) {
	log := baseLogger.With().Str("component", "menu_registry").Logger()

	for _, constructor := range handlerRegistry {
		handler := constructor(cfg, ledger, console, baseLogger)
		router.RegisterHandler(handler)
	}

	log.Info().Int("handlers", len(handlerRegistry)).Msg("Registered all menu handlers")
}
