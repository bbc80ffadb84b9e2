package handlers

import (
	"BankLedger/internal/core/ports"
	"BankLedger/internal/menu"
	"BankLedger/internal/shared/config"
	"context"

	"github.com/rs/zerolog"
)

func init() {
	menu.RegisterHandler(NewMonthlyUpdatesHandler)
}

// monthlyUpdatesHandler is the plugin for the "Apply Monthly Updates" option.
type monthlyUpdatesHandler struct {
	log     zerolog.Logger
	ledger  ports.Ledger
	console ports.ConsolePort
}

// NewMonthlyUpdatesHandler creates the handler for the interest run.
func NewMonthlyUpdatesHandler(
	cfg *config.Config,
	ledger ports.Ledger,
	console ports.ConsolePort,
	baseLogger *zerolog.Logger,
) ports.MenuHandler {
	return &monthlyUpdatesHandler{
		log:     baseLogger.With().Str("component", "monthly_updates_handler").Logger(),
		ledger:  ledger,
		console: console,
	}
}

func (h *monthlyUpdatesHandler) Key() string   { return "7" }
func (h *monthlyUpdatesHandler) Label() string { return "Apply Monthly Updates" }

func (h *monthlyUpdatesHandler) Handle(ctx context.Context) error {
	h.ledger.ApplyMonthlyUpdates(ctx)
	h.console.Println("Monthly updates applied.")
	return nil
}
