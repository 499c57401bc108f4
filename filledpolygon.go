package bramble

import "github.com/hajimehoshi/ebiten/v2"

// FilledPolygon fills a simple polygon outline with a texture. The outline is
// triangulated once per SetOutline; texture coordinates are recomputed when
// the outline or the texture changes.
//
// The texture is mapped in outline space: a point (x, y) of the outline
// samples texel (x, texH - y) (times the content scale factor), so several
// polygons cut from the same texture line up with each other. Textures with
// power-of-two dimensions are switched to repeat addressing and tile beyond
// their edges.
type FilledPolygon struct {
	node *Node

	texture *Texture
	blend   BlendFunc

	outline   []Vec2
	positions []Vec2
	texCoords []Vec2

	determineBounds bool
	origin          Vec2
	contentSize     Vec2
	localBounds     Rect // bounds of positions, for camera culling

	geometryChanged bool // cleared by Scene.Update after the entity store sees it
}

// NewFilledPolygon creates a polygon node that fills outline with tex. If
// determineBounds is true the triangle positions are moved so the outline's
// bounding box starts at the node origin, and ContentSize reports the box
// size. The polygon takes its own reference to tex.
func NewFilledPolygon(name string, tex *Texture, outline []Vec2, determineBounds bool) (*FilledPolygon, *Node) {
	n := &Node{Name: name, Type: NodeTypePolygon}
	nodeDefaults(n)
	p := &FilledPolygon{node: n}
	n.Drawable = p
	n.HitShape = p
	p.SetTexture(tex)
	p.SetOutline(outline, determineBounds)
	return p, n
}

// Node returns the scene node that draws this polygon.
func (p *FilledPolygon) Node() *Node {
	return p.node
}

// SetOutline triangulates points and replaces the polygon's geometry. Prior
// geometry is discarded. Fewer than 3 points leaves the polygon empty and
// it draws nothing.
func (p *FilledPolygon) SetOutline(points []Vec2, determineBounds bool) {
	var texW, texH int
	if p.texture != nil {
		texW, texH = p.texture.PixelsWide(), p.texture.PixelsHigh()
	}
	tris := Triangulate(points)
	g := MapTexCoords(tris, texW, texH, contentScaleFactor, determineBounds)

	p.outline = append(p.outline[:0], points...)
	p.determineBounds = determineBounds
	p.positions = g.Positions
	p.texCoords = g.TexCoords
	p.origin = g.Origin
	p.contentSize = g.ContentSize
	p.localBounds = ComputeBounds(g.Positions)
	p.geometryChanged = true
}

// SetTexture replaces the polygon's texture. The new texture is retained and
// the old one released. The blend function is reset to match the texture's
// alpha format, power-of-two textures are switched to repeat addressing, and
// texture coordinates are recomputed for the new pixel size.
//
// Panics if tex is nil or already released.
func (p *FilledPolygon) SetTexture(tex *Texture) {
	if tex == p.texture {
		return
	}
	if tex == nil || tex.IsReleased() {
		panic("bramble: SetTexture expects a live *Texture")
	}

	tex.Retain()
	if p.texture != nil {
		p.texture.Release()
	}
	p.texture = tex

	if tex.IsPowerOfTwo() {
		tex.SetSampling(ebiten.FilterLinear, ebiten.AddressRepeat)
	}

	if tex.Premultiplied() {
		p.blend = BlendFuncPremultiplied
	} else {
		p.blend = BlendFuncNonPremultiplied
	}

	if p.texCoords != nil {
		texCoordsInto(p.texCoords, p.positions, p.origin, tex.PixelsWide(), tex.PixelsHigh(), contentScaleFactor)
		p.geometryChanged = true
	}
}

// Texture returns the current texture.
func (p *FilledPolygon) Texture() *Texture {
	return p.texture
}

// BlendFunc returns the blend factor pair used when drawing.
func (p *FilledPolygon) BlendFunc() BlendFunc {
	return p.blend
}

// SetBlendFunc overrides the blend factor pair. SetTexture resets it.
func (p *FilledPolygon) SetBlendFunc(b BlendFunc) {
	p.blend = b
}

// BoundsOrigin returns the bounding-box origin subtracted from the positions,
// or zero if bounds were not determined.
func (p *FilledPolygon) BoundsOrigin() Vec2 {
	return p.origin
}

// DetermineBounds reports whether the last SetOutline determined bounds.
func (p *FilledPolygon) DetermineBounds() bool {
	return p.determineBounds
}

// ContentSize returns the bounding-box size when bounds were determined.
func (p *FilledPolygon) ContentSize() Vec2 {
	return p.contentSize
}

// Outline returns the points passed to the last SetOutline. The returned
// slice MUST NOT be mutated.
func (p *FilledPolygon) Outline() []Vec2 {
	return p.outline
}

// Positions returns the triangle list. The returned slice MUST NOT be mutated.
func (p *FilledPolygon) Positions() []Vec2 {
	return p.positions
}

// TexCoords returns the texture coordinates, parallel to Positions. The
// returned slice MUST NOT be mutated.
func (p *FilledPolygon) TexCoords() []Vec2 {
	return p.texCoords
}

// VertexCount returns the number of triangle-list points.
func (p *FilledPolygon) VertexCount() int {
	return len(p.positions)
}

// Draw queues one command for the polygon. Empty or degenerate geometry
// queues nothing.
func (p *FilledPolygon) Draw(q *CommandQueue, ctx DrawContext) {
	if len(p.positions) <= 1 || p.texture == nil {
		return
	}
	q.AddCommand(RenderCommand{
		Transform:   affine32(ctx.Transform),
		Texture:     p.texture,
		Blend:       p.blend,
		Color:       color32{float32(ctx.Color.R), float32(ctx.Color.G), float32(ctx.Color.B), float32(ctx.Color.A)},
		Positions:   p.positions,
		TexCoords:   p.texCoords,
		RenderLayer: ctx.RenderLayer,
		GlobalOrder: ctx.GlobalOrder,
	})
}

// Contains reports whether the local point (x, y) lies on any triangle of the
// polygon. Edges count as inside.
func (p *FilledPolygon) Contains(x, y float64) bool {
	pt := Vec2{x, y}
	for i := 0; i+2 < len(p.positions); i += 3 {
		a, b, c := p.positions[i], p.positions[i+1], p.positions[i+2]
		if triangleArea(a, b, c) < 0 {
			b, c = c, b
		}
		if insideTriangle(a, b, c, pt) {
			return true
		}
	}
	return false
}

// Release drops the polygon's texture reference. The polygon draws nothing
// afterwards. Called by Node.Dispose.
func (p *FilledPolygon) Release() {
	if p.texture != nil {
		p.texture.Release()
		p.texture = nil
	}
	p.outline = nil
	p.positions = nil
	p.texCoords = nil
}
