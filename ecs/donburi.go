package ecs

import (
	"github.com/phanxgames/bramble"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GeometryEventType is the Donburi event type for polygon geometry changes.
// Subscribe to this in your ECS systems to learn when a polygon bound to an
// entity was re-triangulated or re-textured.
var GeometryEventType = events.NewEventType[bramble.GeometryEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Geometry events are published to GeometryEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) bramble.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event bramble.GeometryEvent) {
	GeometryEventType.Publish(s.world, event)
}
