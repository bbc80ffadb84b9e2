package handlers

import (
	"BankLedger/internal/core/ports"
	"BankLedger/internal/menu"
	"BankLedger/internal/shared/config"
	"context"

	"github.com/rs/zerolog"
)

func init() {
	menu.RegisterHandler(NewExitHandler)
}

// exitHandler is the plugin for the "Exit" option.
type exitHandler struct {
	log     zerolog.Logger
	console ports.ConsolePort
}

// NewExitHandler creates the handler that ends the session.
func NewExitHandler(
	cfg *config.Config,
	ledger ports.Ledger,
	console ports.ConsolePort,
	baseLogger *zerolog.Logger,
) ports.MenuHandler {
	return &exitHandler{
		log:     baseLogger.With().Str("component", "exit_handler").Logger(),
		console: console,
	}
}

func (h *exitHandler) Key() string   { return "9" }
func (h *exitHandler) Label() string { return "Exit" }

func (h *exitHandler) Handle(ctx context.Context) error {
	h.console.Println("Exiting. Goodbye!")
	return menu.ErrExit
}
