package handlers

import (
	"BankLedger/internal/core/ports"
	"BankLedger/internal/menu"
	"BankLedger/internal/shared/config"
	"context"

	"github.com/rs/zerolog"
)

func init() {
	menu.RegisterHandler(NewBalanceHandler)
}

// balanceHandler is the plugin for the "Check Balance" option.
type balanceHandler struct {
	log     zerolog.Logger
	ledger  ports.Ledger
	console ports.ConsolePort
}

// NewBalanceHandler creates the handler for balance queries.
func NewBalanceHandler(
	cfg *config.Config,
	ledger ports.Ledger,
	console ports.ConsolePort,
	baseLogger *zerolog.Logger,
) ports.MenuHandler {
	return &balanceHandler{
		log:     baseLogger.With().Str("component", "balance_handler").Logger(),
		ledger:  ledger,
		console: console,
	}
}

func (h *balanceHandler) Key() string   { return "6" }
func (h *balanceHandler) Label() string { return "Check Balance" }

func (h *balanceHandler) Handle(ctx context.Context) error {
	id, err := h.console.ReadString("Account ID: ")
	if err != nil {
		return err
	}

	balance, err := h.ledger.GetBalance(ctx, id)
	if err != nil {
		return err
	}

	h.console.Printf("Balance = %.2f\n", balance)
	return nil
}
