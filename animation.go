package bramble

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenColor,
// TweenAlpha, TweenRotation) and call Update(dt) each frame. The group writes
// values and marks the node dirty. If the target node is disposed, the group
// stops immediately.
//
// There is no global animation manager; callers drive Update themselves,
// usually from Node.OnUpdate or the scene update func.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenPosition animates node.X and node.Y to (toX, toY).
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.X, toX, duration, fn)
	g.add(&node.Y, toY, duration, fn)
	return g
}

// TweenColor animates all four components of node.Color to the target tint.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Color.R, to.R, duration, fn)
	g.add(&node.Color.G, to.G, duration, fn)
	g.add(&node.Color.B, to.B, duration, fn)
	g.add(&node.Color.A, to.A, duration, fn)
	return g
}

// TweenAlpha animates node.Alpha, which is inherited by the subtree.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Alpha, to, duration, fn)
	return g
}

// TweenRotation animates node.Rotation in radians.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Rotation, to, duration, fn)
	return g
}

// OutlineTween morphs a polygon's outline point by point. Every Update
// re-triangulates the interpolated outline, so both outlines should stay
// simple (non self-intersecting) throughout the morph.
type OutlineTween struct {
	poly     *FilledPolygon
	from, to []Vec2
	buf      []Vec2
	progress *gween.Tween
	Done     bool
}

// TweenOutline creates an OutlineTween from the polygon's current outline to
// the given points. The bounds mode of the polygon is kept.
//
// Panics if len(to) differs from the current outline's length.
func TweenOutline(poly *FilledPolygon, to []Vec2, duration float32, fn ease.TweenFunc) *OutlineTween {
	from := poly.Outline()
	if len(from) != len(to) {
		panic("bramble: TweenOutline needs outlines with the same number of points")
	}
	return &OutlineTween{
		poly:     poly,
		from:     append([]Vec2(nil), from...),
		to:       append([]Vec2(nil), to...),
		buf:      make([]Vec2, len(from)),
		progress: gween.New(0, 1, duration, fn),
	}
}

// Update advances the morph by dt seconds and rebuilds the polygon geometry.
// If the polygon's node has been disposed, Done is set and nothing is written.
func (t *OutlineTween) Update(dt float32) {
	if t.Done {
		return
	}
	if t.poly.node != nil && t.poly.node.IsDisposed() {
		t.Done = true
		return
	}
	v, finished := t.progress.Update(dt)
	k := float64(v)
	for i := range t.buf {
		t.buf[i] = Vec2{
			X: t.from[i].X + (t.to[i].X-t.from[i].X)*k,
			Y: t.from[i].Y + (t.to[i].Y-t.from[i].Y)*k,
		}
	}
	t.poly.SetOutline(t.buf, t.poly.determineBounds)
	t.Done = finished
}
