package bramble

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ Textured = (*FilledPolygon)(nil)
var _ Drawable = (*FilledPolygon)(nil)
var _ HitShape = (*FilledPolygon)(nil)

func TestNewFilledPolygon(t *testing.T) {
	tex := newTestTexture(64, 64)
	p, n := NewFilledPolygon("sq", tex, square(0, 0, 10), false)

	if n.Type != NodeTypePolygon || n.Name != "sq" {
		t.Errorf("node = %v/%q, want NodeTypePolygon/sq", n.Type, n.Name)
	}
	if n.Polygon() != p || p.Node() != n {
		t.Error("node and polygon should point at each other")
	}
	if p.VertexCount() != 6 {
		t.Errorf("VertexCount = %d, want 6", p.VertexCount())
	}
	if tex.RefCount() != 2 {
		t.Errorf("RefCount = %d, want 2 (creator + polygon)", tex.RefCount())
	}
	if p.Texture() != tex {
		t.Error("Texture() mismatch")
	}
	if p.DetermineBounds() {
		t.Error("DetermineBounds = true, want false")
	}
}

func TestFilledPolygonBlendFollowsAlphaFormat(t *testing.T) {
	straight := NewTexture("straight", ebiten.NewImage(8, 8), false)
	pre := NewTexture("pre", ebiten.NewImage(8, 8), true)

	p, _ := NewFilledPolygon("p", straight, square(0, 0, 4), false)
	if p.BlendFunc() != BlendFuncNonPremultiplied {
		t.Errorf("straight alpha blend = %+v", p.BlendFunc())
	}

	p.SetBlendFunc(BlendFuncAdditive)
	if p.BlendFunc() != BlendFuncAdditive {
		t.Error("SetBlendFunc not applied")
	}

	p.SetTexture(pre)
	if p.BlendFunc() != BlendFuncPremultiplied {
		t.Errorf("premultiplied blend = %+v", p.BlendFunc())
	}
}

func TestFilledPolygonPowerOfTwoRepeats(t *testing.T) {
	pot := newTestTexture(64, 32)
	NewFilledPolygon("pot", pot, square(0, 0, 10), false)
	if pot.Address() != ebiten.AddressRepeat {
		t.Errorf("POT address = %v, want repeat", pot.Address())
	}

	npot := newTestTexture(100, 60)
	NewFilledPolygon("npot", npot, square(0, 0, 10), false)
	if npot.Address() != ebiten.AddressClampToZero {
		t.Errorf("NPOT address = %v, want clamp-to-zero", npot.Address())
	}
}

func TestFilledPolygonSetTextureRecomputesTexCoords(t *testing.T) {
	small := newTestTexture(100, 100)
	large := newTestTexture(200, 200)
	p, _ := NewFilledPolygon("p", small, square(0, 0, 100), false)

	before := append([]Vec2(nil), p.Positions()...)

	p.SetTexture(large)
	if small.RefCount() != 1 || large.RefCount() != 2 {
		t.Errorf("refcounts = %d/%d, want 1/2", small.RefCount(), large.RefCount())
	}
	for i, pos := range p.Positions() {
		if pos != before[i] {
			t.Errorf("position %d = %+v, want unchanged %+v", i, pos, before[i])
		}
		assertVec(t, "texcoord", p.TexCoords()[i], Vec2{pos.X / 200, 1 - pos.Y/200})
	}
}

func TestFilledPolygonSetTextureKeepsBoundsOrigin(t *testing.T) {
	small := newTestTexture(100, 100)
	large := newTestTexture(200, 200)
	p, _ := NewFilledPolygon("p", small, square(50, 50, 100), true)
	before := append([]Vec2(nil), p.Positions()...)

	p.SetTexture(large)
	assertVec(t, "BoundsOrigin", p.BoundsOrigin(), Vec2{50, 50})
	assertVec(t, "ContentSize", p.ContentSize(), Vec2{100, 100})
	for i, pos := range p.Positions() {
		if pos != before[i] {
			t.Errorf("position %d = %+v, want unchanged %+v", i, pos, before[i])
		}
		// Texture coordinates come from the untranslated outline.
		assertVec(t, "texcoord", p.TexCoords()[i], Vec2{(pos.X + 50) / 200, 1 - (pos.Y+50)/200})
	}
}

func TestFilledPolygonSetTextureSameIsNoop(t *testing.T) {
	tex := newTestTexture(16, 16)
	p, _ := NewFilledPolygon("p", tex, square(0, 0, 4), false)
	p.SetTexture(tex)
	if tex.RefCount() != 2 {
		t.Errorf("RefCount = %d, want 2", tex.RefCount())
	}
}

func TestFilledPolygonSetTextureNilPanics(t *testing.T) {
	p, _ := NewFilledPolygon("p", newTestTexture(8, 8), square(0, 0, 4), false)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil texture")
		}
	}()
	p.SetTexture(nil)
}

func TestFilledPolygonSetTextureReleasedPanics(t *testing.T) {
	p, _ := NewFilledPolygon("p", newTestTexture(8, 8), square(0, 0, 4), false)
	dead := newTestTexture(8, 8)
	dead.Release()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for released texture")
		}
	}()
	p.SetTexture(dead)
}

func TestFilledPolygonSetOutlineIdempotent(t *testing.T) {
	p, _ := NewFilledPolygon("p", newTestTexture(64, 64), lShape, true)
	pos := append([]Vec2(nil), p.Positions()...)
	uv := append([]Vec2(nil), p.TexCoords()...)

	p.SetOutline(lShape, true)
	for i := range pos {
		if p.Positions()[i] != pos[i] || p.TexCoords()[i] != uv[i] {
			t.Fatalf("vertex %d changed on repeated SetOutline", i)
		}
	}
}

func TestFilledPolygonSetOutlineBounds(t *testing.T) {
	p, _ := NewFilledPolygon("p", newTestTexture(100, 100), square(50, 50, 100), true)
	if !p.DetermineBounds() {
		t.Error("DetermineBounds = false, want true")
	}
	assertVec(t, "BoundsOrigin", p.BoundsOrigin(), Vec2{50, 50})
	assertVec(t, "ContentSize", p.ContentSize(), Vec2{100, 100})

	p.SetOutline(square(50, 50, 100), false)
	assertVec(t, "BoundsOrigin", p.BoundsOrigin(), Vec2{})
	assertVec(t, "ContentSize", p.ContentSize(), Vec2{})
}

func TestFilledPolygonOutlineIsCopied(t *testing.T) {
	pts := square(0, 0, 10)
	p, _ := NewFilledPolygon("p", newTestTexture(8, 8), pts, false)
	pts[0] = Vec2{-100, -100}
	if p.Outline()[0] != (Vec2{0, 0}) {
		t.Errorf("Outline aliased caller slice: %v", p.Outline()[0])
	}
}

func TestFilledPolygonTooFewPointsDrawsNothing(t *testing.T) {
	p, _ := NewFilledPolygon("p", newTestTexture(8, 8), []Vec2{{0, 0}, {1, 1}}, false)
	if p.VertexCount() != 0 {
		t.Fatalf("VertexCount = %d, want 0", p.VertexCount())
	}
	q := NewCommandQueue()
	p.Draw(q, DrawContext{Transform: identityTransform, Color: ColorWhite})
	if q.Len() != 0 {
		t.Errorf("queued %d commands, want 0", q.Len())
	}
}

func TestFilledPolygonDrawQueuesOneCommand(t *testing.T) {
	tex := newTestTexture(32, 32)
	p, _ := NewFilledPolygon("p", tex, lShape, false)
	q := NewCommandQueue()
	p.Draw(q, DrawContext{
		Transform:   [6]float64{1, 0, 0, -1, 5, 100},
		Color:       Color{1, 0.5, 0.25, 0.5},
		RenderLayer: 3,
		GlobalOrder: -2,
	})

	if q.Len() != 1 {
		t.Fatalf("queued %d commands, want 1", q.Len())
	}
	cmd := q.Commands()[0]
	if cmd.Texture != tex || cmd.Blend != BlendFuncNonPremultiplied {
		t.Error("texture or blend not carried into the command")
	}
	if len(cmd.Positions) != 12 || len(cmd.TexCoords) != 12 {
		t.Errorf("command has %d/%d vertices, want 12", len(cmd.Positions), len(cmd.TexCoords))
	}
	if cmd.Transform != [6]float32{1, 0, 0, -1, 5, 100} {
		t.Errorf("Transform = %v", cmd.Transform)
	}
	if cmd.Color != (color32{1, 0.5, 0.25, 0.5}) {
		t.Errorf("Color = %+v", cmd.Color)
	}
	if cmd.RenderLayer != 3 || cmd.GlobalOrder != -2 {
		t.Errorf("ordering = %d/%d, want 3/-2", cmd.RenderLayer, cmd.GlobalOrder)
	}
}

func TestFilledPolygonContains(t *testing.T) {
	for _, outline := range [][]Vec2{lShape, reversed(lShape)} {
		p, _ := NewFilledPolygon("l", newTestTexture(8, 8), outline, false)
		if !p.Contains(0.5, 1.5) || !p.Contains(1.5, 0.5) {
			t.Error("point inside the L reported outside")
		}
		if !p.Contains(0, 0) {
			t.Error("vertex should count as inside")
		}
		if p.Contains(1.5, 1.5) {
			t.Error("point in the notch reported inside")
		}
	}
}

func TestFilledPolygonRelease(t *testing.T) {
	tex := newTestTexture(8, 8)
	p, _ := NewFilledPolygon("p", tex, square(0, 0, 4), false)
	p.Release()

	if tex.RefCount() != 1 {
		t.Errorf("RefCount = %d, want 1", tex.RefCount())
	}
	if p.Texture() != nil || p.VertexCount() != 0 {
		t.Error("released polygon should have no texture or geometry")
	}
	q := NewCommandQueue()
	p.Draw(q, DrawContext{Transform: identityTransform, Color: ColorWhite})
	if q.Len() != 0 {
		t.Error("released polygon should not draw")
	}

	// Outline changes after release still work, with zero texture coordinates.
	p.SetOutline(square(0, 0, 4), false)
	if p.VertexCount() != 6 {
		t.Errorf("VertexCount = %d, want 6", p.VertexCount())
	}
}

func TestFilledPolygonDisposeReleasesTexture(t *testing.T) {
	tex := newTestTexture(8, 8)
	_, n := NewFilledPolygon("p", tex, square(0, 0, 4), false)
	n.Dispose()
	if tex.RefCount() != 1 {
		t.Errorf("RefCount = %d, want 1", tex.RefCount())
	}
	tex.Release()
	if !tex.IsReleased() {
		t.Error("texture should be released once the creator drops it")
	}
}

func TestFilledPolygonGeometryChangedFlag(t *testing.T) {
	p, _ := NewFilledPolygon("p", newTestTexture(8, 8), square(0, 0, 4), false)
	if !p.geometryChanged {
		t.Fatal("new polygon should report a geometry change")
	}
	p.geometryChanged = false
	p.SetTexture(newTestTexture(16, 16))
	if !p.geometryChanged {
		t.Error("SetTexture should flag a geometry change")
	}
}
