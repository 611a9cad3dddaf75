package ecs

import (
	"testing"

	"github.com/phanxgames/wheel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitChange(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []wheel.ChangeEvent
	ChangeEventType.Subscribe(world, func(w donburi.World, e wheel.ChangeEvent) {
		received = append(received, e)
	})

	store.EmitChange(wheel.ChangeEvent{Index: 2, Value: "C"})
	store.EmitChange(wheel.ChangeEvent{Index: -1})

	// Events are queued; process them.
	ChangeEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Index != 2 || received[0].Value != "C" {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Index != -1 || received[1].Value != nil {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_PickerWheel(t *testing.T) {
	world := donburi.NewWorld()

	p := wheel.New([]wheel.Item{"A", "B", "C"}, wheel.Config{
		ItemHeight:   40,
		Capabilities: &wheel.Capabilities{WheelSign: 1},
	})
	p.SetInputSource(nil)
	p.SetEntityStore(NewDonburiStore(world))
	p.Build()

	var received []wheel.ChangeEvent
	ChangeEventType.Subscribe(world, func(w donburi.World, e wheel.ChangeEvent) {
		received = append(received, e)
	})

	p.Wheel(1)
	p.Wheel(1)
	events.ProcessAllEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[1].Index != 2 || received[1].Value != "C" {
		t.Errorf("last event = %+v, want {2 C}", received[1])
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	ChangeEventType.Subscribe(world, func(w donburi.World, e wheel.ChangeEvent) {
		count1++
	})
	ChangeEventType.Subscribe(world, func(w donburi.World, e wheel.ChangeEvent) {
		count2++
	})

	store.EmitChange(wheel.ChangeEvent{Index: 0, Value: "A"})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
