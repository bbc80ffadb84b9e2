package domain

import "errors"

// Domain errors returned by account and ledger operations.
// Callers classify them with errors.Is; the menu layer turns
// them into user-facing messages.
var (
	// ErrAccountNotFound means the referenced account id is not in the ledger.
	ErrAccountNotFound = errors.New("account not found")

	// ErrIllegalAmount means a monetary argument was <= 0 where a positive
	// amount is required, or a negative initial balance was supplied.
	ErrIllegalAmount = errors.New("illegal amount")

	// ErrIllegalArgument means a negative interest rate or overdraft limit
	// was supplied at construction.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrInsufficientFunds means a withdrawal would breach the account's
	// balance floor (zero for savings, -overdraftLimit for current).
	ErrInsufficientFunds = errors.New("insufficient funds")
)
