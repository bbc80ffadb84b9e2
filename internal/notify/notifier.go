package notify

import (
	"BankLedger/internal/core/ports"
	"context"

	"github.com/rs/zerolog"
)

// Notifier listens for ledger events on the EventBus and emits one
// structured log line per committed operation. It is NOT a stored audit
// trail; events are dropped once logged.
type Notifier struct {
	log zerolog.Logger
}

// NewNotifier creates a notifier. Call SubscribeAll to attach it to a bus.
func NewNotifier(baseLogger *zerolog.Logger) *Notifier {
	return &Notifier{
		log: baseLogger.With().Str("component", "notifier").Logger(),
	}
}

// SubscribeAll registers the notifier on every ledger topic.
func (n *Notifier) SubscribeAll(bus ports.EventBus) {
	bus.Subscribe(ports.TopicAccountOpened, n.HandleAccountOpened)
	bus.Subscribe(ports.TopicFundsDeposited, n.HandleFundsDeposited)
	bus.Subscribe(ports.TopicFundsWithdrawn, n.HandleFundsWithdrawn)
	bus.Subscribe(ports.TopicFundsTransferred, n.HandleFundsTransferred)
	bus.Subscribe(ports.TopicInterestApplied, n.HandleInterestApplied)
}

// HandleAccountOpened is an EventHandler for the "account:opened" topic.
func (n *Notifier) HandleAccountOpened(ctx context.Context, event ports.Event) error {
	e, ok := event.Data.(ports.AccountOpenedEvent)
	if !ok {
		n.log.Error().Msg("Received invalid data for 'account:opened' event")
		return nil // Don't retry
	}
	n.log.Info().
		Str("account_id", e.AccountID).
		Str("account_type", e.AccountType).
		Str("customer_id", e.CustomerID.String()).
		Str("customer", e.CustomerName).
		Float64("initial", e.Initial).
		Msg("Account opened")
	return nil
}

// HandleFundsDeposited is an EventHandler for the "funds:deposited" topic.
func (n *Notifier) HandleFundsDeposited(ctx context.Context, event ports.Event) error {
	e, ok := event.Data.(ports.FundsMovedEvent)
	if !ok {
		n.log.Error().Msg("Received invalid data for 'funds:deposited' event")
		return nil // Don't retry
	}
	n.log.Info().
		Str("account_id", e.AccountID).
		Float64("amount", e.Amount).
		Float64("balance", e.Balance).
		Msg("Funds deposited")
	return nil
}

// HandleFundsWithdrawn is an EventHandler for the "funds:withdrawn" topic.
func (n *Notifier) HandleFundsWithdrawn(ctx context.Context, event ports.Event) error {
	e, ok := event.Data.(ports.FundsMovedEvent)
	if !ok {
		n.log.Error().Msg("Received invalid data for 'funds:withdrawn' event")
		return nil // Don't retry
	}
	n.log.Info().
		Str("account_id", e.AccountID).
		Float64("amount", e.Amount).
		Float64("balance", e.Balance).
		Msg("Funds withdrawn")
	return nil
}

// HandleFundsTransferred is an EventHandler for the "funds:transferred" topic.
func (n *Notifier) HandleFundsTransferred(ctx context.Context, event ports.Event) error {
	e, ok := event.Data.(ports.FundsTransferredEvent)
	if !ok {
		n.log.Error().Msg("Received invalid data for 'funds:transferred' event")
		return nil // Don't retry
	}
	n.log.Info().
		Str("from_id", e.FromID).
		Str("to_id", e.ToID).
		Float64("amount", e.Amount).
		Msg("Funds transferred")
	return nil
}

// HandleInterestApplied is an EventHandler for the "interest:applied" topic.
func (n *Notifier) HandleInterestApplied(ctx context.Context, event ports.Event) error {
	e, ok := event.Data.(ports.InterestAppliedEvent)
	if !ok {
		n.log.Error().Msg("Received invalid data for 'interest:applied' event")
		return nil // Don't retry
	}
	n.log.Info().
		Str("account_id", e.AccountID).
		Float64("interest", e.Interest).
		Float64("balance", e.Balance).
		Msg("Monthly interest applied")
	return nil
}
