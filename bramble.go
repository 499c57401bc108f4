package bramble

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorFromRGBA converts an 8-bit color.RGBA (such as the values in
// golang.org/x/image/colornames) into a Color.
func ColorFromRGBA(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point or vector. Outlines, triangle lists and texture
// coordinate lists are all slices of Vec2.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Rect is an axis-aligned rectangle. In scene space the origin is the
// bottom-left corner and Y increases upward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Min returns the minimum corner.
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Max returns the maximum corner.
func (r Rect) Max() Vec2 { return Vec2{r.X + r.Width, r.Y + r.Height} }

// BlendFunc is a source/destination blend factor pair, applied to both the
// color and alpha channels with additive blending.
type BlendFunc struct {
	Src, Dst ebiten.BlendFactor
}

var (
	// BlendFuncNonPremultiplied is used for textures whose pixel data is
	// not premultiplied by alpha.
	BlendFuncNonPremultiplied = BlendFunc{ebiten.BlendFactorSourceAlpha, ebiten.BlendFactorOneMinusSourceAlpha}

	// BlendFuncPremultiplied is the default pair for premultiplied textures.
	BlendFuncPremultiplied = BlendFunc{ebiten.BlendFactorOne, ebiten.BlendFactorOneMinusSourceAlpha}

	// BlendFuncAdditive adds source onto destination.
	BlendFuncAdditive = BlendFunc{ebiten.BlendFactorOne, ebiten.BlendFactorOne}
)

// EbitenBlend returns the ebiten.Blend value for this factor pair.
func (b BlendFunc) EbitenBlend() ebiten.Blend {
	return ebiten.Blend{
		BlendFactorSourceRGB:        b.Src,
		BlendFactorSourceAlpha:      b.Src,
		BlendFactorDestinationRGB:   b.Dst,
		BlendFactorDestinationAlpha: b.Dst,
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypePolygon                   // textured filled polygon
)

// contentScaleFactor reconciles logical units with texture pixel density.
// Plain variable, no locking: bramble runs on the game goroutine only.
var contentScaleFactor = 1.0

// SetContentScaleFactor sets the scale used when mapping polygon positions to
// texture coordinates. Polygons pick it up on their next SetOutline or
// SetTexture. Panics if f is not positive.
func SetContentScaleFactor(f float64) {
	if f <= 0 {
		panic("bramble: content scale factor must be positive")
	}
	contentScaleFactor = f
}

// ContentScaleFactor returns the current content scale factor (default 1).
func ContentScaleFactor() float64 {
	return contentScaleFactor
}
