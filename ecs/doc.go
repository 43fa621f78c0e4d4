// Package ecs provides ECS adapters for gesture events.
//
// The primary adapter is [NewDonburiStore], which bridges gesture events
// (touch down, drag, touch up, zoom) into a [Donburi] world as typed events.
// Subscribe to [GestureEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	sys.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
