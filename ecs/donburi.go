package ecs

import (
	"github.com/phanxgames/wheel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ChangeEventType is the Donburi event type for picker selection changes.
// Subscribe to this in your ECS systems to react to settled selections.
var ChangeEventType = events.NewEventType[wheel.ChangeEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Change events are published to ChangeEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) wheel.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitChange(event wheel.ChangeEvent) {
	ChangeEventType.Publish(s.world, event)
}
