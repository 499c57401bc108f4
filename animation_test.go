package bramble

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	node := NewContainer("pos")
	node.X = 10
	node.Y = 20

	g := TweenPosition(node, 100, 200, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.X-100) > 0.5 || math.Abs(node.Y-200) > 0.5 {
		t.Errorf("position = (%f, %f), want ~(100, 200)", node.X, node.Y)
	}
}

func TestTweenColorAllComponents(t *testing.T) {
	node := NewContainer("color")
	node.Color = Color{R: 1, G: 0, B: 0, A: 1}
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}

	g := TweenColor(node, target, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	got := []float64{node.Color.R, node.Color.G, node.Color.B, node.Color.A}
	want := []float64{target.R, target.G, target.B, target.A}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 0.01 {
			t.Errorf("component %d = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestTweenAlphaInterpolates(t *testing.T) {
	node := NewContainer("alpha")
	tw := TweenAlpha(node, 0.0, 1.0, ease.Linear)

	tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(node.Alpha-0.5) > 0.05 {
		t.Errorf("Alpha = %f, want ~0.5 at halfway", node.Alpha)
	}

	tw.Update(0.5)
	if !tw.Done || math.Abs(node.Alpha) > 0.01 {
		t.Errorf("Alpha = %f Done = %v, want ~0 and done", node.Alpha, tw.Done)
	}
}

func TestTweenRotationReachesTarget(t *testing.T) {
	node := NewContainer("rot")
	tw := TweenRotation(node, math.Pi, 1.0, ease.Linear)
	tw.Update(0.5)
	tw.Update(0.5)

	if !tw.Done {
		t.Fatal("expected done after full duration")
	}
	if math.Abs(node.Rotation-math.Pi) > 0.05 {
		t.Errorf("Rotation = %f, want ~%f", node.Rotation, math.Pi)
	}
}

func TestTweenGroupDoneStaysDone(t *testing.T) {
	node := NewContainer("done")
	g := TweenPosition(node, 50, 50, 0.5, ease.Linear)

	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}
	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
}

func TestTweenGroupMarksDirty(t *testing.T) {
	node := NewContainer("dirty")
	node.transformDirty = false

	g := TweenPosition(node, 100, 100, 1.0, ease.Linear)
	g.Update(0.1)

	if !node.transformDirty {
		t.Fatal("expected node to be marked dirty after TweenGroup update")
	}
}

func TestTweenGroupDisposedNode(t *testing.T) {
	node := NewContainer("disposed")
	node.X = 10

	g := TweenPosition(node, 100, 200, 1.0, ease.Linear)
	node.Dispose()
	g.Update(0.1)

	if !g.Done {
		t.Fatal("expected Done after disposed node detected")
	}
	if node.X != 10 {
		t.Errorf("X changed to %f on disposed node", node.X)
	}
}

// --- OutlineTween ---

func TestTweenOutlineMorphs(t *testing.T) {
	p, _ := NewFilledPolygon("morph", newTestTexture(64, 64), square(0, 0, 10), false)
	to := square(0, 0, 20)

	tw := TweenOutline(p, to, 1.0, ease.Linear)

	tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done at halfway")
	}
	assertVecNear(t, "halfway corner", p.Outline()[2], Vec2{15, 15}, 0.05)
	if p.VertexCount() != 6 {
		t.Errorf("VertexCount = %d, want 6", p.VertexCount())
	}

	tw.Update(0.5)
	if !tw.Done {
		t.Fatal("should be done after full duration")
	}
	for i := range to {
		assertVecNear(t, "final", p.Outline()[i], to[i], 0.01)
	}
	if a := TriangleListArea(p.Positions()); math.Abs(a-400) > 1 {
		t.Errorf("final area = %v, want ~400", a)
	}
}

func TestTweenOutlineKeepsBoundsMode(t *testing.T) {
	p, _ := NewFilledPolygon("morph", newTestTexture(64, 64), square(10, 10, 10), true)
	tw := TweenOutline(p, square(20, 20, 10), 1.0, ease.Linear)
	tw.Update(1.0)

	if !p.DetermineBounds() {
		t.Fatal("bounds mode lost")
	}
	assertVecNear(t, "BoundsOrigin", p.BoundsOrigin(), Vec2{20, 20}, 0.01)
}

func TestTweenOutlineLengthMismatchPanics(t *testing.T) {
	p, _ := NewFilledPolygon("morph", newTestTexture(8, 8), square(0, 0, 10), false)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched outline length")
		}
	}()
	TweenOutline(p, lShape, 1.0, ease.Linear)
}

func TestTweenOutlineDisposedNode(t *testing.T) {
	p, n := NewFilledPolygon("morph", newTestTexture(8, 8), square(0, 0, 10), false)
	tw := TweenOutline(p, square(0, 0, 20), 1.0, ease.Linear)
	n.Dispose()
	tw.Update(0.5)
	if !tw.Done {
		t.Error("expected Done after disposal")
	}
	if p.VertexCount() != 0 {
		t.Error("disposed polygon should not be rebuilt")
	}
}

func assertVecNear(t *testing.T, label string, got, want Vec2, eps float64) {
	t.Helper()
	if !approxEqual(got.X, want.X, eps) || !approxEqual(got.Y, want.Y, eps) {
		t.Errorf("%s = (%v, %v), want (%v, %v)", label, got.X, got.Y, want.X, want.Y)
	}
}
