package ports

import "github.com/google/uuid"

// Topics published by the ledger after each committed operation.
// Events are fire-and-forget notifications, not stored history.
const (
	TopicAccountOpened    = "account:opened"
	TopicFundsDeposited   = "funds:deposited"
	TopicFundsWithdrawn   = "funds:withdrawn"
	TopicFundsTransferred = "funds:transferred"
	TopicInterestApplied  = "interest:applied"
)

// AccountOpenedEvent is the payload for TopicAccountOpened.
type AccountOpenedEvent struct {
	AccountID    string
	AccountType  string
	CustomerID   uuid.UUID
	CustomerName string
	Initial      float64
}

// FundsMovedEvent is the payload for TopicFundsDeposited and
// TopicFundsWithdrawn. Balance is the balance after the operation.
type FundsMovedEvent struct {
	AccountID string
	Amount    float64
	Balance   float64
}

// FundsTransferredEvent is the payload for TopicFundsTransferred.
type FundsTransferredEvent struct {
	FromID string
	ToID   string
	Amount float64
}

// InterestAppliedEvent is the payload for TopicInterestApplied,
// published once per credited account during a monthly update run.
type InterestAppliedEvent struct {
	AccountID string
	Interest  float64
	Balance   float64
}
