package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventStaffProvisioned, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "1", Type: EventStaffProvisioned})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "1", got[0].ID)

	// events of other types do not reach the handler
	err = d.Publish(context.Background(), Event{ID: "2", Type: EventStaffRemoved})
	require.NoError(t, err)
	require.Len(t, got, 1)
}

// A failing handler neither aborts the publish nor starves later handlers.
func TestDispatcherSwallowsHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls int
	d.Subscribe(EventStaffProvisioned, func(context.Context, Event) error {
		calls++
		return errors.New("boom")
	})
	d.Subscribe(EventStaffProvisioned, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventStaffProvisioned})
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}
