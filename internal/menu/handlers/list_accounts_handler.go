package handlers

import (
	"BankLedger/internal/core/ports"
	"BankLedger/internal/menu"
	"BankLedger/internal/shared/config"
	"context"

	"github.com/rs/zerolog"
)

func init() {
	menu.RegisterHandler(NewListAccountsHandler)
}

// listAccountsHandler is the plugin for the "Show All Accounts" option.
type listAccountsHandler struct {
	log      zerolog.Logger
	ledger   ports.Ledger
	console  ports.ConsolePort
	bankName string
}

// NewListAccountsHandler creates the handler that prints the account
// listing, sorted ascending by account id.
func NewListAccountsHandler(
	cfg *config.Config,
	ledger ports.Ledger,
	console ports.ConsolePort,
	baseLogger *zerolog.Logger,
) ports.MenuHandler {
	return &listAccountsHandler{
		log:      baseLogger.With().Str("component", "list_accounts_handler").Logger(),
		ledger:   ledger,
		console:  console,
		bankName: cfg.Bank.Name,
	}
}

func (h *listAccountsHandler) Key() string   { return "8" }
func (h *listAccountsHandler) Label() string { return "Show All Accounts" }

func (h *listAccountsHandler) Handle(ctx context.Context) error {
	summaries := h.ledger.ListAccounts(ctx)

	h.console.Printf("=== %s Accounts ===\n", h.bankName)
	for _, s := range summaries {
		h.console.Printf("%s{id='%s', owner='%s', balance=%.2f}\n",
			s.Type, s.ID, s.OwnerName, s.Balance)
	}
	h.console.Println("")
	return nil
}
