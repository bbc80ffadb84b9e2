package handlers

import (
	"BankLedger/internal/core/ports"
	"BankLedger/internal/menu"
	"BankLedger/internal/shared/config"
	"context"

	"github.com/rs/zerolog"
)

func init() {
	menu.RegisterHandler(NewDepositHandler)
}

// depositHandler is the plugin for the "Deposit" option.
type depositHandler struct {
	log     zerolog.Logger
	ledger  ports.Ledger
	console ports.ConsolePort
}

// NewDepositHandler creates the handler for deposits.
func NewDepositHandler(
	cfg *config.Config,
	ledger ports.Ledger,
	console ports.ConsolePort,
	baseLogger *zerolog.Logger,
) ports.MenuHandler {
	return &depositHandler{
		log:     baseLogger.With().Str("component", "deposit_handler").Logger(),
		ledger:  ledger,
		console: console,
	}
}

func (h *depositHandler) Key() string   { return "3" }
func (h *depositHandler) Label() string { return "Deposit" }

func (h *depositHandler) Handle(ctx context.Context) error {
	id, err := h.console.ReadString("Account ID: ")
	if err != nil {
		return err
	}
	amount, err := h.console.ReadFloat("Amount: ")
	if err != nil {
		return err
	}

	if err := h.ledger.Deposit(ctx, id, amount); err != nil {
		return err
	}

	h.console.Println("Deposit successful.")
	return nil
}
