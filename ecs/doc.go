// Package ecs provides ECS adapters for bramble's geometry events.
//
// The primary adapter is [NewDonburiStore], which forwards polygon geometry
// changes (re-triangulation after SetOutline, texture coordinate rebuilds
// after SetTexture) into a [Donburi] world as typed events. Only polygons
// whose Node.EntityID is nonzero are reported.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//	ecs.GeometryEventType.Subscribe(world, func(w donburi.World, e bramble.GeometryEvent) {
//		// e.EntityID, e.Triangles, e.ContentSize ...
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
