package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishReachesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []Event
	d.Subscribe(EventUserRegistered, func(_ context.Context, e Event) error {
		seen = append(seen, e)
		return nil
	})

	err := d.Publish(context.Background(), Event{
		ID:     "evt-1",
		Type:   EventUserRegistered,
		UserID: "user-1",
	})
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, "user-1", seen[0].UserID)
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var called int
	d.Subscribe(EventProfileUpdated, func(context.Context, Event) error {
		called++
		return errors.New("first handler failed")
	})
	d.Subscribe(EventProfileUpdated, func(context.Context, Event) error {
		called++
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventProfileUpdated})
	require.NoError(t, err)
	assert.Equal(t, 2, called)
}

func TestDispatcher_UnsubscribedTypeIsNoop(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventUserRegistered}))
}
