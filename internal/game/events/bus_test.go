package events_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/boardgame/internal/game/core"
	"github.com/mitchelldurbincs/boardgame/internal/game/events"
)

// TestSubscriber records the events it is interested in
type TestSubscriber struct {
	id         string
	events     []events.Event
	interested map[string]bool
}

func NewTestSubscriber(id string, interestedTypes ...string) *TestSubscriber {
	interested := make(map[string]bool)
	for _, t := range interestedTypes {
		interested[t] = true
	}
	return &TestSubscriber{id: id, interested: interested}
}

func (ts *TestSubscriber) ID() string { return ts.id }
func (ts *TestSubscriber) HandleEvent(event events.Event) { ts.events = append(ts.events, event) }

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if len(ts.interested) == 0 {
		return true
	}
	return ts.interested[eventType]
}

func TestEventBusFiltersByType(t *testing.T) {
	bus := events.NewEventBus(zerolog.Nop())

	subscriber := NewTestSubscriber("moves", events.TypePieceMoved)
	bus.Subscribe(subscriber)
	assert.Equal(t, 1, bus.SubscriberCount())

	bus.Publish(events.NewGameCreatedEvent("game1", 8, 8, 1))
	assert.Empty(t, subscriber.events)

	bus.Publish(events.NewPieceMovedEvent("game1", 3, core.Vector{X: 0, Y: 0}, core.Vector{X: 1, Y: 1}, core.UpRight, core.Vector{X: 5, Y: 5}))
	require.Len(t, subscriber.events, 1)

	moved, ok := subscriber.events[0].(*events.PieceMovedEvent)
	require.True(t, ok)
	assert.Equal(t, "game1", moved.GameID())
	assert.Equal(t, 3, moved.PieceID)
	assert.Equal(t, core.UpRight, moved.Direction)
	assert.Equal(t, core.Vector{X: 1, Y: 1}, moved.To)
	assert.False(t, moved.Timestamp().IsZero())
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := events.NewEventBus(zerolog.Nop())

	subscriber := NewTestSubscriber("all")
	bus.Subscribe(subscriber)
	bus.Publish(events.NewPieceBlockedEvent("game2", 1, core.Vector{}, core.Vector{}))
	assert.Len(t, subscriber.events, 1)

	bus.Unsubscribe(subscriber.ID())
	assert.Equal(t, 0, bus.SubscriberCount())

	bus.Publish(events.NewPieceBlockedEvent("game2", 1, core.Vector{}, core.Vector{}))
	assert.Len(t, subscriber.events, 1)
}

func TestEventBusFunctionHandlers(t *testing.T) {
	bus := events.NewEventBus(zerolog.Nop())

	var received []events.Event
	id1 := bus.SubscribeFunc(events.TypeGameCreated, func(e events.Event) {
		received = append(received, e)
	})
	id2 := bus.SubscribeFunc(events.TypeGameCreated, func(e events.Event) {
		received = append(received, e)
	})
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, bus.FuncHandlerCount(events.TypeGameCreated))

	bus.Publish(events.NewGameCreatedEvent("game3", 4, 4, 2))
	require.Len(t, received, 2)
	assert.Equal(t, events.TypeGameCreated, received[0].Type())
}

func TestEventBusRecoversFromPanics(t *testing.T) {
	bus := events.NewEventBus(zerolog.Nop())

	called := false
	bus.SubscribeFunc(events.TypePieceMoved, func(events.Event) { panic("boom") })
	bus.SubscribeFunc(events.TypePieceMoved, func(events.Event) { called = true })

	assert.NotPanics(t, func() {
		bus.Publish(events.NewPieceMovedEvent("game4", 0, core.Vector{}, core.Vector{X: 1}, core.Right, core.Vector{X: 2}))
	})
	assert.True(t, called)
}
