package bramble

import "math"

// Geometry is a triangle list ready for drawing together with its texture
// coordinates. Positions and TexCoords always have the same length.
type Geometry struct {
	Positions []Vec2
	TexCoords []Vec2

	// Origin is the bounding-box minimum corner that was subtracted from the
	// positions. Zero when bounds were not determined.
	Origin Vec2

	// ContentSize is the bounding-box extent. Zero when bounds were not
	// determined.
	ContentSize Vec2
}

// ComputeBounds returns the axis-aligned bounding box of points.
func ComputeBounds(points []Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// MapTexCoords computes texture coordinates for a triangle list against a
// texture of texW x texH pixels.
//
// Without bounds the positions are kept as they are and each coordinate is
// (x/texW*scale, 1 - y/texH*scale). With bounds the positions are moved so
// the bounding box starts at (0, 0), but the coordinates are still computed
// from the original positions, so the texture stays anchored to outline
// space. Coordinates are not clamped.
func MapTexCoords(tris []Vec2, texW, texH int, scale float64, determineBounds bool) Geometry {
	g := Geometry{
		Positions: make([]Vec2, len(tris)),
		TexCoords: make([]Vec2, len(tris)),
	}
	if len(tris) == 0 {
		return g
	}

	if determineBounds {
		// Max corner starts at zero rather than -inf, so the content size is
		// measured from the origin up to at least (0, 0).
		origin := Vec2{math.MaxFloat64, math.MaxFloat64}
		var maxBound Vec2
		for _, v := range tris {
			if v.X < origin.X {
				origin.X = v.X
			}
			if v.Y < origin.Y {
				origin.Y = v.Y
			}
			if v.X > maxBound.X {
				maxBound.X = v.X
			}
			if v.Y > maxBound.Y {
				maxBound.Y = v.Y
			}
		}
		g.Origin = origin
		g.ContentSize = maxBound.Sub(origin)
		for i, v := range tris {
			g.Positions[i] = v.Sub(origin)
		}
	} else {
		copy(g.Positions, tris)
	}

	texCoordsInto(g.TexCoords, g.Positions, g.Origin, texW, texH, scale)
	return g
}

// texCoordsInto writes texture coordinates for positions into dst. origin is
// added back to each position first, so bounding-box-relative positions map
// the same as the outline they came from. A zero-sized texture yields zero
// coordinates instead of dividing by zero.
func texCoordsInto(dst, positions []Vec2, origin Vec2, texW, texH int, scale float64) {
	if texW <= 0 || texH <= 0 {
		for i := range dst {
			dst[i] = Vec2{}
		}
		return
	}
	w := float64(texW)
	h := float64(texH)
	for i, p := range positions {
		dst[i] = Vec2{
			X: (p.X + origin.X) / w * scale,
			Y: 1 - (p.Y+origin.Y)/h*scale,
		}
	}
}
