package events

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(eventType string) BaseEvent {
	return BaseEvent{
		AggregateID: "OCB-20260830-0001",
		EventType:   eventType,
		OccurredAt:  time.Now().UTC(),
		Version:     1,
	}
}

func TestDispatcherDeliversOnlySubscribedType(t *testing.T) {
	dispatcher := NewInMemoryEventDispatcher(10)

	var handled int64
	handler := NewSimpleEventHandler("ticket.created", func(e DomainEvent) error {
		atomic.AddInt64(&handled, 1)
		return nil
	})
	require.NoError(t, dispatcher.Subscribe("ticket.created", handler))
	require.NoError(t, dispatcher.Start())

	require.NoError(t, dispatcher.Publish(testEvent("ticket.created")))
	require.NoError(t, dispatcher.Publish(testEvent("ticket.closed")))
	require.NoError(t, dispatcher.Publish(testEvent("ticket.created")))

	require.NoError(t, dispatcher.Stop())
	assert.Equal(t, int64(2), atomic.LoadInt64(&handled))
}

func TestDispatcherStopWaitsForInFlightHandlers(t *testing.T) {
	dispatcher := NewInMemoryEventDispatcher(10)

	var handled int64
	handler := NewSimpleEventHandler("ticket.created", func(e DomainEvent) error {
		time.Sleep(50 * time.Millisecond)
		atomic.AddInt64(&handled, 1)
		return nil
	})
	require.NoError(t, dispatcher.Subscribe("ticket.created", handler))
	require.NoError(t, dispatcher.Start())

	require.NoError(t, dispatcher.Publish(testEvent("ticket.created")))

	require.NoError(t, dispatcher.Stop())
	assert.Equal(t, int64(1), atomic.LoadInt64(&handled))
}

func TestDispatcherRejectsPublishWhenStopped(t *testing.T) {
	dispatcher := NewInMemoryEventDispatcher(10)

	err := dispatcher.Publish(testEvent("ticket.created"))
	require.Error(t, err)
}
