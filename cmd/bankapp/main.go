package main

import (
	"BankLedger/internal/adapters/console"
	"BankLedger/internal/adapters/eventbus"
	"BankLedger/internal/core/ledger"
	"BankLedger/internal/menu"
	"BankLedger/internal/notify"
	"BankLedger/internal/shared/config"
	"BankLedger/internal/shared/logger"
	"context"
	"fmt"
	"os"

	// Menu handlers self-register via init().
	_ "BankLedger/internal/menu/handlers"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	isDevMode := cfg.AppEnv == "dev"
	baseLogger := logger.New(isDevMode)
	baseLogger.Info().Msg("Logger initialized")

	// 3. Print loaded config
	baseLogger.Info().
		Str("app_env", cfg.AppEnv).
		Str("bank_name", cfg.Bank.Name).
		Int64("id_seed", cfg.Bank.IDSeed).
		Msg("Configuration loaded")

	// 4. Initialize the Event Bus and the Ledger
	bus := eventbus.NewInMemoryEventBus(&baseLogger)
	bank := ledger.New(cfg.Bank.Name, cfg.Bank.IDSeed, bus, &baseLogger)

	// 5. Attach the operation notifier to the bus
	notifier := notify.NewNotifier(&baseLogger)
	notifier.SubscribeAll(bus)

	// 6. Build the menu front end over stdin/stdout
	term := console.New(os.Stdin, os.Stdout, &baseLogger)
	router := menu.NewRouter(term, &baseLogger)
	menu.RegisterAllHandlers(cfg, router, bank, term, &baseLogger)

	baseLogger.Info().Msg("All services initialized successfully")

	// 7. Run the interactive session until exit or EOF
	router.Run(context.Background())

	baseLogger.Info().Msg("Session ended")
}
