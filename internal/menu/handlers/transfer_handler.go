package handlers

import (
	"BankLedger/internal/core/ports"
	"BankLedger/internal/menu"
	"BankLedger/internal/shared/config"
	"context"

	"github.com/rs/zerolog"
)

func init() {
	menu.RegisterHandler(NewTransferHandler)
}

// transferHandler is the plugin for the "Transfer" option.
type transferHandler struct {
	log     zerolog.Logger
	ledger  ports.Ledger
	console ports.ConsolePort
}

// NewTransferHandler creates the handler for transfers between accounts.
func NewTransferHandler(
	cfg *config.Config,
	ledger ports.Ledger,
	console ports.ConsolePort,
	baseLogger *zerolog.Logger,
) ports.MenuHandler {
	return &transferHandler{
		log:     baseLogger.With().Str("component", "transfer_handler").Logger(),
		ledger:  ledger,
		console: console,
	}
}

func (h *transferHandler) Key() string   { return "5" }
func (h *transferHandler) Label() string { return "Transfer" }

func (h *transferHandler) Handle(ctx context.Context) error {
	fromID, err := h.console.ReadString("From Account ID: ")
	if err != nil {
		return err
	}
	toID, err := h.console.ReadString("To Account ID: ")
	if err != nil {
		return err
	}
	amount, err := h.console.ReadFloat("Amount: ")
	if err != nil {
		return err
	}

	if err := h.ledger.Transfer(ctx, fromID, toID, amount); err != nil {
		return err
	}

	h.console.Println("Transfer successful.")
	return nil
}
