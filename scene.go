package bramble

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, geometry changes of polygons with a nonzero EntityID
// are forwarded to the store during Update.
type EntityStore interface {
	EmitEvent(event GeometryEvent)
}

// GeometryEvent reports that a polygon's triangle list or texture
// coordinates were rebuilt.
type GeometryEvent struct {
	EntityID        uint32
	Name            string
	Triangles       int
	Origin          Vec2
	ContentSize     Vec2
	DetermineBounds bool
}

// Scene owns the node tree and the per-frame render queue. Scene space is
// Y-up with its origin at the bottom-left corner of the target image.
type Scene struct {
	// ClearColor fills the target before drawing when its alpha is nonzero.
	ClearColor Color

	root       *Node
	camera     *Camera
	store      EntityStore
	debug      bool
	updateFunc func() error

	queue      *CommandQueue
	sub        submitter
	viewHeight float64
	lastStats  debugStats
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:  NewContainer("root"),
		queue: NewCommandQueue(),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetCamera sets the camera used by Draw, hit conversion and culling.
// nil restores the default view.
func (s *Scene) SetCamera(c *Camera) {
	s.camera = c
}

// Camera returns the scene's camera, or nil.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetUpdateFunc sets a callback run at the start of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, per-frame stats are logged to stderr, and triangulated
// polygons are drawn with a wireframe overlay.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that code
// without a Scene pointer (node and texture operations, the triangulator)
// can check it cheaply.
var globalDebug bool

// Update runs the update callback and per-node OnUpdate hooks, refreshes world
// transforms, and reports polygon geometry changes to the entity store.
func (s *Scene) Update() error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	dt := 1.0 / float64(ebiten.TPS())
	s.updateNodes(s.root, dt)
	updateWorldTransforms(s.root, identityTransform, 1, false)
	if s.camera != nil {
		s.camera.update(float32(dt))
	}
	return nil
}

// updateNodes runs OnUpdate hooks and flushes geometry events depth-first.
func (s *Scene) updateNodes(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	if p := n.Polygon(); p != nil && p.geometryChanged {
		p.geometryChanged = false
		if s.store != nil && n.EntityID != 0 {
			s.store.EmitEvent(GeometryEvent{
				EntityID:        n.EntityID,
				Name:            n.Name,
				Triangles:       len(p.positions) / 3,
				Origin:          p.origin,
				ContentSize:     p.contentSize,
				DetermineBounds: p.determineBounds,
			})
		}
	}
	for _, child := range n.children {
		s.updateNodes(child, dt)
	}
}

// Draw traverses the scene tree, queues render commands, sorts them, and
// submits them to target.
func (s *Scene) Draw(target *ebiten.Image) {
	if s.ClearColor.A > 0 {
		target.Fill(s.ClearColor.toRGBA())
	}

	s.viewHeight = float64(target.Bounds().Dy())
	view := yUpView(s.viewHeight)
	cull := false
	var visible Rect
	if s.camera != nil {
		view = s.camera.computeViewMatrix()
		cull = s.camera.CullEnabled
		visible = s.camera.VisibleBounds()
	}

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.queue.Reset()
	s.traverse(s.root, view, cull, visible)

	if s.debug {
		stats.traverseTime = time.Since(t0)
		t0 = time.Now()
	}

	s.queue.Sort()

	if s.debug {
		stats.sortTime = time.Since(t0)
		t0 = time.Now()
	}

	stats.drawCalls = s.sub.submit(s.queue, target)

	if s.debug {
		stats.submitTime = time.Since(t0)
		stats.commandCount = s.queue.Len()
		stats.triangleCount = s.queue.TriangleCount()
		s.lastStats = stats
		s.debugLog(stats)
		s.drawDebugOverlay(target)
	}
}

// traverse queues commands for visible, renderable nodes depth-first in
// ZIndex order. Invisible nodes hide their whole subtree.
func (s *Scene) traverse(n *Node, view [6]float64, cull bool, visible Rect) {
	if !n.Visible {
		return
	}
	if n.Renderable && n.Drawable != nil && !(cull && shouldCull(n, visible)) {
		n.Drawable.Draw(s.queue, DrawContext{
			Transform:   multiplyAffine(view, n.worldTransform),
			Color:       Color{n.Color.R, n.Color.G, n.Color.B, n.Color.A * n.worldAlpha},
			RenderLayer: n.RenderLayer,
			GlobalOrder: n.GlobalOrder,
		})
	}
	if len(n.children) == 0 {
		return
	}
	for _, child := range sortedChildrenOf(n) {
		s.traverse(child, view, cull, visible)
	}
}

// ScreenToScene converts a point on the target (Y-down pixels) to scene
// space, through the camera if one is set and otherwise using the height of
// the last drawn target.
func (s *Scene) ScreenToScene(sx, sy float64) (x, y float64) {
	if s.camera != nil {
		return s.camera.ScreenToWorld(sx, sy)
	}
	return sx, s.viewHeight - sy
}

// PolygonAt returns the top-most visible polygon node whose triangles contain
// the scene-space point (x, y), or nil. "Top-most" follows draw order:
// render layer, then global order, then traversal order.
func (s *Scene) PolygonAt(x, y float64) *Node {
	var best *Node
	var bestLayer uint8
	var bestOrder int
	s.hitWalk(s.root, x, y, func(n *Node) {
		if best == nil || n.RenderLayer > bestLayer ||
			(n.RenderLayer == bestLayer && n.GlobalOrder >= bestOrder) {
			best, bestLayer, bestOrder = n, n.RenderLayer, n.GlobalOrder
		}
	})
	return best
}

func (s *Scene) hitWalk(n *Node, x, y float64, hit func(*Node)) {
	if !n.Visible {
		return
	}
	if n.Renderable && n.HitShape != nil {
		lx, ly := n.WorldToLocal(x, y)
		if n.HitShape.Contains(lx, ly) {
			hit(n)
		}
	}
	for _, child := range sortedChildrenOf(n) {
		s.hitWalk(child, x, y, hit)
	}
}
