// Package ecs provides ECS adapters for grove's hierarchy event system.
//
// The primary adapter is [NewDonburiStore], which bridges grove hierarchy
// events (node add/remove, activation, component attach/detach) into a
// [Donburi] world as typed events. Subscribe to [HierarchyEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	tree.SetHierarchyStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
