package handlers

import (
	"BankLedger/internal/core/ports"
	"BankLedger/internal/menu"
	"BankLedger/internal/shared/config"
	"context"

	"github.com/rs/zerolog"
)

func init() {
	menu.RegisterHandler(NewOpenSavingsHandler)
}

// openSavingsHandler is the plugin for the "Open Savings Account" option.
type openSavingsHandler struct {
	log     zerolog.Logger
	ledger  ports.Ledger
	console ports.ConsolePort
}

// NewOpenSavingsHandler creates the handler for opening savings accounts.
func NewOpenSavingsHandler(
	cfg *config.Config,
	ledger ports.Ledger,
	console ports.ConsolePort,
	baseLogger *zerolog.Logger,
) ports.MenuHandler {
	return &openSavingsHandler{
		log:     baseLogger.With().Str("component", "open_savings_handler").Logger(),
		ledger:  ledger,
		console: console,
	}
}

func (h *openSavingsHandler) Key() string   { return "1" }
func (h *openSavingsHandler) Label() string { return "Open Savings Account" }

// Handle prompts for the customer and account terms, then opens the account.
func (h *openSavingsHandler) Handle(ctx context.Context) error {
	name, err := h.console.ReadString("Customer name: ")
	if err != nil {
		return err
	}
	initial, err := h.console.ReadFloat("Initial deposit: ")
	if err != nil {
		return err
	}
	rate, err := h.console.ReadFloat("Annual interest rate (e.g., 0.05 for 5%): ")
	if err != nil {
		return err
	}

	id, err := h.ledger.OpenSavingsAccount(ctx, name, initial, rate)
	if err != nil {
		return err
	}

	h.log.Info().Str("account_id", id).Msg("Savings account opened from menu")
	h.console.Printf("Savings account created with ID: %s\n", id)
	return nil
}
