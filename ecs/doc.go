// Package ecs provides ECS adapters for wheel pickers.
//
// The primary adapter is [NewDonburiStore], which bridges settled picker
// selections into a [Donburi] world as typed events. Subscribe to
// [ChangeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	picker.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
