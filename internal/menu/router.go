package menu

import (
	"BankLedger/internal/core/domain"
	"BankLedger/internal/core/ports"
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// ErrExit is returned by a handler to end the menu loop cleanly.
var ErrExit = errors.New("exit requested")

// Router is the "Menu Facade." It holds all option "plugins" and routes
// each entered choice to the matching handler. Domain errors coming back
// from a handler are reported on the console and the session continues.
type Router struct {
	log      zerolog.Logger
	console  ports.ConsolePort
	handlers map[string]ports.MenuHandler
	keys     []string // render order, kept sorted
}

// NewRouter creates a new menu facade/router.
func NewRouter(console ports.ConsolePort, baseLogger *zerolog.Logger) *Router {
	return &Router{
		log:      baseLogger.With().Str("component", "menu_router").Logger(),
		console:  console,
		handlers: make(map[string]ports.MenuHandler),
	}
}

// RegisterHandler adds a "plugin" to the router.
func (r *Router) RegisterHandler(handler ports.MenuHandler) {
	key := handler.Key()
	if _, exists := r.handlers[key]; !exists {
		r.keys = append(r.keys, key)
		sort.Strings(r.keys)
	}
	r.handlers[key] = handler
	r.log.Info().Str("key", key).Str("label", handler.Label()).Msg("Registered new menu handler")
}

// Run drives the interactive session until the exit option is chosen or
// the input stream ends.
func (r *Router) Run(ctx context.Context) {
	for {
		r.renderMenu()

		choice, err := r.console.ReadString("Choose an option: ")
		if err != nil {
			// Input is gone (e.g. EOF on a piped session); stop quietly.
			r.log.Info().Err(err).Msg("Console input closed, ending session")
			return
		}
		choice = strings.TrimSpace(choice)

		handler, ok := r.handlers[choice]
		if !ok {
			r.console.Println("Invalid choice.")
			continue
		}

		r.log.Info().Str("choice", choice).Str("handler", handler.Label()).Msg("Routing to menu handler")
		if err := handler.Handle(ctx); err != nil {
			if errors.Is(err, ErrExit) {
				return
			}
			r.report(err)
		}
	}
}

func (r *Router) renderMenu() {
	r.console.Println("")
	r.console.Println("===== BANK MENU =====")
	for _, key := range r.keys {
		r.console.Printf("%s. %s\n", key, r.handlers[key].Label())
	}
}

// report turns a handler error into a user-facing message. Domain errors
// are expected rejections; anything else is surfaced as unexpected but
// never terminates the session.
func (r *Router) report(err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrIllegalAmount),
		errors.Is(err, domain.ErrIllegalArgument),
		errors.Is(err, domain.ErrInsufficientFunds):
		r.console.Printf("Error: %v\n", err)
	default:
		r.log.Warn().Err(err).Msg("Menu handler failed with non-domain error")
		r.console.Printf("Unexpected error: %v\n", err)
	}
}
