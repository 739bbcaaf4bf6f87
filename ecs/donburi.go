// Package ecs provides ECS adapters for grove.
package ecs

import (
	"github.com/phanxgames/grove"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HierarchyEventType is the Donburi event type for grove hierarchy events.
// Subscribe to this in your ECS systems to observe node add/remove,
// activation, and component attach/detach.
var HierarchyEventType = events.NewEventType[grove.HierarchyEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates a HierarchyStore backed by a Donburi world.
// Hierarchy events are published to HierarchyEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) grove.HierarchyStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event grove.HierarchyEvent) {
	HierarchyEventType.Publish(s.world, event)
}
