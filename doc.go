// Package bramble draws textured, arbitrarily shaped polygons for [Ebitengine].
//
// A [FilledPolygon] takes a simple (non self-intersecting) outline, possibly
// concave, triangulates it by ear clipping, and fills the triangles with a
// texture mapped in outline space. Polygons live in a small retained-mode
// scene graph: [Node] trees with inherited transforms and alpha, a
// [CommandQueue] of render commands sorted by layer and order, and
// [Scene.Draw] submitting each polygon as one DrawTriangles32 call.
//
// # Quick start
//
//	scene := bramble.NewScene()
//	tex := bramble.NewTexture("rock", img, false)
//	_, node := bramble.NewFilledPolygon("rock", tex, []bramble.Vec2{
//		{0, 0}, {120, 0}, {160, 80}, {60, 40}, {0, 90},
//	}, true)
//	tex.Release() // the polygon holds its own reference
//	node.SetPosition(100, 100)
//	scene.Root().AddChild(node)
//	bramble.Run(scene, bramble.RunConfig{Title: "Rocks", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Coordinates
//
// Scene space is Y-up: the origin is the bottom-left corner of the target
// image and rotation is counter-clockwise. Texture coordinates follow the
// same convention, so an outline point (x, y) samples texel
// (x, texHeight - y), scaled by [ContentScaleFactor]. Use
// [Scene.ScreenToScene] to convert cursor positions.
//
// # Textures
//
// [Texture] is reference counted. [NewTexture] returns one reference owned
// by the caller; every polygon using the texture retains another, and
// [Node.Dispose] or [FilledPolygon.Release] drops it. Textures whose sides
// are both powers of two are switched to repeat addressing so they tile
// across large polygons. [TextureCache] shares textures by name.
//
// # Outline files
//
// [LoadOutlines] reads named outlines from JSON; [OutlineDef.Build] turns one
// into a polygon using a [TextureCache].
//
// # Animation
//
// [TweenPosition], [TweenColor], [TweenAlpha] and [TweenRotation] animate
// node fields with gween easing functions. [TweenOutline] morphs a polygon
// between two outlines of equal length, re-triangulating every frame.
//
// # ECS integration
//
// Set an [EntityStore] with [Scene.SetEntityStore] to receive
// [GeometryEvent] values for polygons with a nonzero [Node.EntityID]. The
// ecs submodule provides a Donburi adapter.
//
// # Debug mode
//
// [Scene.SetDebugMode] enables disposed-node checks, per-frame timing on
// stderr, a triangle wireframe overlay, and logging of degenerate outlines
// that the triangulator had to force through.
//
// [Ebitengine]: https://ebitengine.org
package bramble
