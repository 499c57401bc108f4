package bramble

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// submitter converts queued commands into DrawTriangles32 calls. Vertex and
// index buffers grow to a high-water mark and are reused across frames.
type submitter struct {
	verts []ebiten.Vertex
	inds  []uint32
}

// Flush sorts the queue and draws every command onto target. The queue is
// left intact so callers can inspect it; call Reset before the next frame.
func (q *CommandQueue) Flush(target *ebiten.Image) {
	var s submitter
	s.flush(q, target)
}

func (s *submitter) flush(q *CommandQueue, target *ebiten.Image) int {
	q.Sort()
	return s.submit(q, target)
}

// submit draws the queue in its current order and returns the draw call count.
func (s *submitter) submit(q *CommandQueue, target *ebiten.Image) int {
	drawCalls := 0
	for i := range q.commands {
		if s.submitPolygon(target, &q.commands[i]) {
			drawCalls++
		}
	}
	return drawCalls
}

// submitPolygon draws one polygon command. Commands with a released texture
// or fewer than one full triangle are skipped.
func (s *submitter) submitPolygon(target *ebiten.Image, cmd *RenderCommand) bool {
	tex := cmd.Texture
	n := len(cmd.Positions)
	n -= n % 3
	if tex == nil || tex.IsReleased() || n < 3 || len(cmd.TexCoords) < n {
		return false
	}

	if cap(s.verts) < n {
		s.verts = make([]ebiten.Vertex, n)
	}
	s.verts = s.verts[:n]
	if cap(s.inds) < n {
		s.inds = make([]uint32, n)
	}
	s.inds = s.inds[:n]

	src := tex.Image().Bounds()
	buildVertices(s.verts, cmd, float32(src.Dx()), float32(src.Dy()), float32(src.Min.X), float32(src.Min.Y))
	for i := range s.inds {
		s.inds[i] = uint32(i)
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.Blend = cmd.Blend.EbitenBlend()
	triOp.Filter = tex.Filter()
	triOp.Address = tex.Address()
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha

	target.DrawTriangles32(s.verts, s.inds, tex.Image(), &triOp)
	return true
}

// buildVertices fills dst from the first len(dst) vertices of a command:
// positions go through the command's affine transform, normalized texture
// coordinates are scaled to the source rectangle at (srcX, srcY) of size
// texW by texH, and the tint is premultiplied.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
func buildVertices(dst []ebiten.Vertex, cmd *RenderCommand, texW, texH, srcX, srcY float32) {
	t := &cmd.Transform
	a, b, c, d, tx, ty := t[0], t[1], t[2], t[3], t[4], t[5]

	ca := cmd.Color.A
	cr := cmd.Color.R * ca
	cg := cmd.Color.G * ca
	cb := cmd.Color.B * ca

	for i, p := range cmd.Positions[:len(dst)] {
		x := float32(p.X)
		y := float32(p.Y)
		uv := cmd.TexCoords[i]
		dst[i] = ebiten.Vertex{
			DstX:   a*x + c*y + tx,
			DstY:   b*x + d*y + ty,
			SrcX:   srcX + float32(uv.X)*texW,
			SrcY:   srcY + float32(uv.Y)*texH,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}
}
