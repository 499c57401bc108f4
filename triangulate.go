package bramble

import "log"

// triangulateEpsilon is the minimum doubled area for an ear to count as convex.
const triangulateEpsilon = 1e-10

// Triangulate splits a simple polygon outline into triangles by ear clipping.
// The result is a flat list where every consecutive triple of points is one
// triangle. An n-vertex outline always produces 3*(n-2) points. Outlines with
// fewer than 3 points produce nil.
//
// The outline may be concave and wound either way; each emitted triangle has
// the same winding as the outline. Self-intersecting outlines are not
// supported: when no ear can be found the three lowest-index remaining
// vertices are emitted as a triangle and clipping continues, so the call
// always terminates, but the result may overlap itself.
func Triangulate(outline []Vec2) []Vec2 {
	n := len(outline)
	if n < 3 {
		return nil
	}

	// Walk the outline counter-clockwise regardless of its winding so the
	// convexity test in snip has a fixed sign.
	cw := PolygonArea(outline) <= 0
	idx := make([]int, n)
	for i := range idx {
		if cw {
			idx[i] = n - 1 - i
		} else {
			idx[i] = i
		}
	}

	out := make([]Vec2, 0, 3*(n-2))
	emit := func(a, b, c int) {
		if cw {
			out = append(out, outline[a], outline[c], outline[b])
		} else {
			out = append(out, outline[a], outline[b], outline[c])
		}
	}

	nv := n
	count := 2 * nv
	for v := nv - 1; nv > 2; {
		// A full scan without finding an ear: numerically degenerate or
		// self-intersecting input.
		if count <= 0 {
			emit(idx[0], idx[1], idx[2])
			if globalDebug {
				log.Printf("bramble: no ear among %d vertices, emitting fallback triangle", nv)
			}
			idx = append(idx[:1], idx[2:nv]...)
			nv--
			count = 2 * nv
			v = 0
			continue
		}
		count--

		u := v
		if u >= nv {
			u = 0
		}
		v = u + 1
		if v >= nv {
			v = 0
		}
		w := v + 1
		if w >= nv {
			w = 0
		}

		if !snip(outline, idx[:nv], u, v, w) {
			continue
		}

		emit(idx[u], idx[v], idx[w])

		copy(idx[v:nv-1], idx[v+1:nv])
		nv--
		count = 2 * nv
	}
	return out
}

// snip reports whether (u, v, w) of the working index list is an ear: a
// convex corner whose triangle contains no other remaining vertex.
func snip(outline []Vec2, idx []int, u, v, w int) bool {
	a, b, c := outline[idx[u]], outline[idx[v]], outline[idx[w]]

	if (b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X) < triangulateEpsilon {
		return false
	}

	for p := range idx {
		if p == u || p == v || p == w {
			continue
		}
		if insideTriangle(a, b, c, outline[idx[p]]) {
			return false
		}
	}
	return true
}

// insideTriangle reports whether p lies inside or on the edge of the
// counter-clockwise triangle (a, b, c).
func insideTriangle(a, b, c, p Vec2) bool {
	aCrossBP := (c.X-b.X)*(p.Y-b.Y) - (c.Y-b.Y)*(p.X-b.X)
	cCrossAP := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	bCrossCP := (a.X-c.X)*(p.Y-c.Y) - (a.Y-c.Y)*(p.X-c.X)
	return aCrossBP >= 0 && bCrossCP >= 0 && cCrossAP >= 0
}

// PolygonArea returns the signed area of the outline (shoelace formula).
// Positive for counter-clockwise winding in a Y-up space.
func PolygonArea(points []Vec2) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var a float64
	for p, q := n-1, 0; q < n; p, q = q, q+1 {
		a += points[p].X*points[q].Y - points[q].X*points[p].Y
	}
	return a * 0.5
}

// IsClockwise reports whether the outline winds clockwise in a Y-up space.
func IsClockwise(points []Vec2) bool {
	return PolygonArea(points) < 0
}

// TriangleListArea returns the summed unsigned area of a flat triangle list.
// Trailing points that do not form a full triangle are ignored.
func TriangleListArea(tris []Vec2) float64 {
	var total float64
	for i := 0; i+2 < len(tris); i += 3 {
		total += abs(triangleArea(tris[i], tris[i+1], tris[i+2]))
	}
	return total
}

// triangleArea returns the signed area of triangle (a, b, c).
func triangleArea(a, b, c Vec2) float64 {
	return 0.5 * ((b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
