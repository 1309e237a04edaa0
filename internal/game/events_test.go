package game

import "testing"

func TestEventBusDelivery(t *testing.T) {
	bus := NewEventBus()

	var order []int
	bus.Subscribe(EventEnemyKilled, func(e Event) { order = append(order, 1) })
	bus.Subscribe(EventEnemyKilled, func(e Event) { order = append(order, 2) })

	bus.Emit(Event{Type: EventEnemyKilled})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Expected handlers to run in subscription order, got %v", order)
	}
}

func TestEventBusPayload(t *testing.T) {
	bus := NewEventBus()

	var got Event
	bus.Subscribe(EventGameOver, func(e Event) { got = e })
	bus.Emit(Event{Type: EventGameOver, X: 3, Y: 4, Data: 99})

	if got.X != 3 || got.Y != 4 || got.Data != 99 {
		t.Errorf("Expected payload (3, 4, 99), got (%v, %v, %d)", got.X, got.Y, got.Data)
	}
}

func TestEventBusIgnoresOtherTypes(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	bus.Subscribe(EventLevelUp, func(e Event) { calls++ })
	bus.Emit(Event{Type: EventEnemyKilled})
	bus.Emit(Event{Type: EventRunStarted})

	if calls != 0 {
		t.Errorf("Expected no deliveries to other types, got %d", calls)
	}
}
