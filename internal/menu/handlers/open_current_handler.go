package handlers

import (
	"BankLedger/internal/core/ports"
	"BankLedger/internal/menu"
	"BankLedger/internal/shared/config"
	"context"

	"github.com/rs/zerolog"
)

func init() {
	menu.RegisterHandler(NewOpenCurrentHandler)
}

// openCurrentHandler is the plugin for the "Open Current Account" option.
type openCurrentHandler struct {
	log     zerolog.Logger
	ledger  ports.Ledger
	console ports.ConsolePort
}

// NewOpenCurrentHandler creates the handler for opening current accounts.
func NewOpenCurrentHandler(
	cfg *config.Config,
	ledger ports.Ledger,
	console ports.ConsolePort,
	baseLogger *zerolog.Logger,
) ports.MenuHandler {
	return &openCurrentHandler{
		log:     baseLogger.With().Str("component", "open_current_handler").Logger(),
		ledger:  ledger,
		console: console,
	}
}

func (h *openCurrentHandler) Key() string   { return "2" }
func (h *openCurrentHandler) Label() string { return "Open Current Account" }

// Handle prompts for the customer and account terms, then opens the account.
func (h *openCurrentHandler) Handle(ctx context.Context) error {
	name, err := h.console.ReadString("Customer name: ")
	if err != nil {
		return err
	}
	initial, err := h.console.ReadFloat("Initial deposit: ")
	if err != nil {
		return err
	}
	limit, err := h.console.ReadFloat("Overdraft limit: ")
	if err != nil {
		return err
	}

	id, err := h.ledger.OpenCurrentAccount(ctx, name, initial, limit)
	if err != nil {
		return err
	}

	h.log.Info().Str("account_id", id).Msg("Current account opened from menu")
	h.console.Printf("Current account created with ID: %s\n", id)
	return nil
}
