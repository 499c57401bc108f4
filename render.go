package bramble

// color32 is a compact RGBA color using float32, for render commands only.
type color32 struct {
	R, G, B, A float32
}

// RenderCommand is a single queued draw: everything the submitter needs to
// issue one DrawTriangles call. Slices reference the polygon's buffers and
// are not copied.
type RenderCommand struct {
	Transform   [6]float32
	Texture     *Texture
	Blend       BlendFunc
	Color       color32
	Positions   []Vec2
	TexCoords   []Vec2
	RenderLayer uint8
	GlobalOrder int
	seq         int // insertion order, keeps the sort stable
}

// DrawContext is what the host passes to a Drawable: the resolved transform,
// the tint with inherited alpha baked into A, and the ordering key.
type DrawContext struct {
	Transform   [6]float64
	Color       Color
	RenderLayer uint8
	GlobalOrder int
}

// Drawable is implemented by primitives that emit draw commands.
type Drawable interface {
	Draw(q *CommandQueue, ctx DrawContext)
}

// Textured is implemented by primitives that carry a texture and blend function.
type Textured interface {
	Texture() *Texture
	SetTexture(tex *Texture)
	BlendFunc() BlendFunc
	SetBlendFunc(b BlendFunc)
}

// affine32 converts a [6]float64 affine matrix to [6]float32.
func affine32(m [6]float64) [6]float32 {
	return [6]float32{float32(m[0]), float32(m[1]), float32(m[2]), float32(m[3]), float32(m[4]), float32(m[5])}
}

const defaultCommandCap = 256

// CommandQueue collects render commands for one frame. Commands are sorted by
// render layer, then global order, then insertion order before submission.
type CommandQueue struct {
	commands []RenderCommand
	sortBuf  []RenderCommand
}

// NewCommandQueue creates an empty queue.
func NewCommandQueue() *CommandQueue {
	return &CommandQueue{
		commands: make([]RenderCommand, 0, defaultCommandCap),
		sortBuf:  make([]RenderCommand, 0, defaultCommandCap),
	}
}

// AddCommand appends cmd to the queue.
func (q *CommandQueue) AddCommand(cmd RenderCommand) {
	cmd.seq = len(q.commands)
	q.commands = append(q.commands, cmd)
}

// Len returns the number of queued commands.
func (q *CommandQueue) Len() int {
	return len(q.commands)
}

// Commands returns the queued commands. The returned slice MUST NOT be
// retained past the next Reset.
func (q *CommandQueue) Commands() []RenderCommand {
	return q.commands
}

// Reset empties the queue, keeping its buffers.
func (q *CommandQueue) Reset() {
	q.commands = q.commands[:0]
}

// TriangleCount returns the number of triangles across all queued commands.
func (q *CommandQueue) TriangleCount() int {
	n := 0
	for i := range q.commands {
		n += len(q.commands[i].Positions) / 3
	}
	return n
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should sort before or at the same position as b.
// Using <= for seq ensures stability.
func commandLessOrEqual(a, b *RenderCommand) bool {
	if a.RenderLayer != b.RenderLayer {
		return a.RenderLayer < b.RenderLayer
	}
	if a.GlobalOrder != b.GlobalOrder {
		return a.GlobalOrder < b.GlobalOrder
	}
	return a.seq <= b.seq
}

// Sort orders the queue in place. Bottom-up merge sort: zero allocations
// once the scratch buffer reaches its high-water mark.
func (q *CommandQueue) Sort() {
	n := len(q.commands)
	if n <= 1 {
		return
	}
	if cap(q.sortBuf) < n {
		q.sortBuf = make([]RenderCommand, n)
	}
	q.sortBuf = q.sortBuf[:n]

	a := q.commands
	b := q.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(q.commands, q.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []RenderCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}
