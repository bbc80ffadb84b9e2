package handlers

import (
	"BankLedger/internal/core/ports"
	"BankLedger/internal/menu"
	"BankLedger/internal/shared/config"
	"context"

	"github.com/rs/zerolog"
)

func init() {
	menu.RegisterHandler(NewWithdrawHandler)
}

// withdrawHandler is the plugin for the "Withdraw" option.
type withdrawHandler struct {
	log     zerolog.Logger
	ledger  ports.Ledger
	console ports.ConsolePort
}

// NewWithdrawHandler creates the handler for withdrawals.
func NewWithdrawHandler(
	cfg *config.Config,
	ledger ports.Ledger,
	console ports.ConsolePort,
	baseLogger *zerolog.Logger,
) ports.MenuHandler {
	return &withdrawHandler{
		log:     baseLogger.With().Str("component", "withdraw_handler").Logger(),
		ledger:  ledger,
		console: console,
	}
}

func (h *withdrawHandler) Key() string   { return "4" }
func (h *withdrawHandler) Label() string { return "Withdraw" }

func (h *withdrawHandler) Handle(ctx context.Context) error {
	id, err := h.console.ReadString("Account ID: ")
	if err != nil {
		return err
	}
	amount, err := h.console.ReadFloat("Amount: ")
	if err != nil {
		return err
	}

	if err := h.ledger.Withdraw(ctx, id, amount); err != nil {
		return err
	}

	h.console.Println("Withdrawal successful.")
	return nil
}
