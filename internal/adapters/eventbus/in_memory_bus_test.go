package eventbus

import (
	"BankLedger/internal/core/ports"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_DeliversToAllSubscribers(t *testing.T) {
	// 1. Setup
	nopLogger := zerolog.Nop()
	bus := NewInMemoryEventBus(&nopLogger)

	var mu sync.Mutex
	var received []ports.Event
	var wg sync.WaitGroup
	wg.Add(2)

	handler := func(ctx context.Context, event ports.Event) error {
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
		wg.Done()
		return nil
	}

	// 2. Two subscribers on the same topic
	bus.Subscribe("funds:deposited", handler)
	bus.Subscribe("funds:deposited", handler)

	// 3. Publish once
	err := bus.Publish(context.Background(), "funds:deposited", "payload")
	require.NoError(t, err)

	// 4. Handlers run on their own goroutines; wait for both
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event delivery")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 2)
	for _, event := range received {
		assert.Equal(t, "funds:deposited", event.Topic)
		assert.Equal(t, "payload", event.Data)
	}
}

func TestPublish_NoSubscribersIsFine(t *testing.T) {
	nopLogger := zerolog.Nop()
	bus := NewInMemoryEventBus(&nopLogger)

	err := bus.Publish(context.Background(), "nobody:listening", 42)
	assert.NoError(t, err)
}

func TestPublish_DoesNotDeliverAcrossTopics(t *testing.T) {
	nopLogger := zerolog.Nop()
	bus := NewInMemoryEventBus(&nopLogger)

	calls := make(chan ports.Event, 1)
	bus.Subscribe("topic:a", func(ctx context.Context, event ports.Event) error {
		calls <- event
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), "topic:b", "b-payload"))
	require.NoError(t, bus.Publish(context.Background(), "topic:a", "a-payload"))

	select {
	case event := <-calls:
		assert.Equal(t, "topic:a", event.Topic)
		assert.Equal(t, "a-payload", event.Data)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event delivery")
	}

	// Nothing else should arrive
	select {
	case event := <-calls:
		t.Fatalf("unexpected extra delivery: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}
