package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BankConfig holds the ledger-level settings.
type BankConfig struct {
	// Name is the display name printed in the account listing header.
	Name string
	// IDSeed is the starting value of the account identifier counter.
	// The first minted id uses IDSeed+1 (e.g. seed 1000 -> "SAV-1001").
	IDSeed int64
}

// Config holds all configuration for the application.
type Config struct {
	AppEnv string
	Bank   BankConfig
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {

	// 1. Load .env file into the process environment.
	// A missing file is fine (prod relies on OS-set env vars),
	// but any other error should surface.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// 2. Explicitly bind viper keys to env var names
	if err := viper.BindEnv("app.env", "APP_ENV"); err != nil {
		return nil, fmt.Errorf("could not bind app.env: %w", err)
	}
	if err := viper.BindEnv("bank.name", "BANK_NAME"); err != nil {
		return nil, fmt.Errorf("could not bind bank.name: %w", err)
	}
	if err := viper.BindEnv("bank.id_seed", "BANK_ID_SEED"); err != nil {
		return nil, fmt.Errorf("could not bind bank.id_seed: %w", err)
	}

	// 3. Set defaults
	viper.SetDefault("app.env", "dev")
	viper.SetDefault("bank.name", "Demo Bank")
	viper.SetDefault("bank.id_seed", 1000)

	// 4. Get values directly from viper
	cfg := Config{
		AppEnv: viper.GetString("app.env"),
		Bank: BankConfig{
			Name:   viper.GetString("bank.name"),
			IDSeed: viper.GetInt64("bank.id_seed"),
		},
	}

	// 5. Validation
	if cfg.Bank.Name == "" {
		return nil, fmt.Errorf("BANK_NAME must not be empty")
	}
	if cfg.Bank.IDSeed < 0 {
		return nil, fmt.Errorf("BANK_ID_SEED must be >= 0, got %d", cfg.Bank.IDSeed)
	}

	return &cfg, nil
}
