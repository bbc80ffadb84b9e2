package ports

import "context"

// AccountSummary is a read-only snapshot of one account, handed to the
// presentation layer by the listing operation.
type AccountSummary struct {
	ID        string
	Type      string
	OwnerName string
	Balance   float64
}

// Ledger is the single entry point for account opening and every
// money-movement operation. All account-affecting operations resolve the
// account id first and return domain.ErrAccountNotFound if it is absent.
type Ledger interface {
	// OpenSavingsAccount opens a savings account for the named customer
	// (creating the customer on first sight) and returns the minted id.
	OpenSavingsAccount(ctx context.Context, customerName string, initial, annualRate float64) (string, error)

	// OpenCurrentAccount opens a current account for the named customer
	// (creating the customer on first sight) and returns the minted id.
	OpenCurrentAccount(ctx context.Context, customerName string, initial, overdraftLimit float64) (string, error)

	// Deposit credits the account. The amount must be > 0.
	Deposit(ctx context.Context, accountID string, amount float64) error

	// Withdraw debits the account subject to the variant's balance floor.
	Withdraw(ctx context.Context, accountID string, amount float64) error

	// Transfer atomically moves amount from one account to another.
	Transfer(ctx context.Context, fromID, toID string, amount float64) error

	// GetBalance returns the current balance of the account.
	GetBalance(ctx context.Context, accountID string) (float64, error)

	// ApplyMonthlyUpdates credits one month's interest to every
	// interest-bearing account.
	ApplyMonthlyUpdates(ctx context.Context)

	// ListAccounts returns snapshots of all accounts sorted ascending
	// by account id.
	ListAccounts(ctx context.Context) []AccountSummary
}
