package notify

import (
	"BankLedger/internal/core/ports"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNotifier_HandlesWellFormedEvents(t *testing.T) {
	nopLogger := zerolog.Nop()
	n := NewNotifier(&nopLogger)
	ctx := context.Background()

	err := n.HandleAccountOpened(ctx, ports.Event{
		Topic: ports.TopicAccountOpened,
		Data: ports.AccountOpenedEvent{
			AccountID:    "SAV-1001",
			AccountType:  "SavingsAccount",
			CustomerID:   uuid.New(),
			CustomerName: "Alice",
			Initial:      100,
		},
	})
	assert.NoError(t, err)

	err = n.HandleFundsTransferred(ctx, ports.Event{
		Topic: ports.TopicFundsTransferred,
		Data:  ports.FundsTransferredEvent{FromID: "SAV-1001", ToID: "CUR-1002", Amount: 30},
	})
	assert.NoError(t, err)
}

func TestNotifier_IgnoresMalformedPayloads(t *testing.T) {
	// A bad payload must not error: the bus would log it as a handler
	// failure and there is nothing to retry.
	nopLogger := zerolog.Nop()
	n := NewNotifier(&nopLogger)
	ctx := context.Background()

	event := ports.Event{Topic: "whatever", Data: "not-a-struct"}

	assert.NoError(t, n.HandleAccountOpened(ctx, event))
	assert.NoError(t, n.HandleFundsDeposited(ctx, event))
	assert.NoError(t, n.HandleFundsWithdrawn(ctx, event))
	assert.NoError(t, n.HandleFundsTransferred(ctx, event))
	assert.NoError(t, n.HandleInterestApplied(ctx, event))
}
