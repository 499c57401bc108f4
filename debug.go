package bramble

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// debugStats holds per-frame timing and draw-call metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	traverseTime  time.Duration
	sortTime      time.Duration
	submitTime    time.Duration
	commandCount  int
	triangleCount int
	drawCalls     int
}

// wireframeColor is the edge color of the debug triangle overlay.
var wireframeColor = color.RGBA{R: 0, G: 255, B: 128, A: 200}

// debugLog prints timing and draw-call stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.traverseTime + stats.sortTime + stats.submitTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[bramble] traverse: %v | sort: %v | submit: %v | total: %v\n",
		stats.traverseTime, stats.sortTime, stats.submitTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[bramble] commands: %d | triangles: %d | draw calls: %d\n",
		stats.commandCount, stats.triangleCount, stats.drawCalls)
}

// drawDebugOverlay outlines every queued triangle and prints the frame stats
// in the top-left corner.
func (s *Scene) drawDebugOverlay(target *ebiten.Image) {
	for i := range s.queue.commands {
		cmd := &s.queue.commands[i]
		t := &cmd.Transform
		pts := cmd.Positions
		for j := 0; j+2 < len(pts); j += 3 {
			var xs, ys [3]float32
			for k := 0; k < 3; k++ {
				x, y := float32(pts[j+k].X), float32(pts[j+k].Y)
				xs[k] = t[0]*x + t[2]*y + t[4]
				ys[k] = t[1]*x + t[3]*y + t[5]
			}
			vector.StrokeLine(target, xs[0], ys[0], xs[1], ys[1], 1, wireframeColor, false)
			vector.StrokeLine(target, xs[1], ys[1], xs[2], ys[2], 1, wireframeColor, false)
			vector.StrokeLine(target, xs[2], ys[2], xs[0], ys[0], 1, wireframeColor, false)
		}
	}
	st := s.lastStats
	ebitenutil.DebugPrint(target, fmt.Sprintf("FPS: %0.1f\ncommands: %d\ntriangles: %d\ndraw calls: %d",
		ebiten.ActualFPS(), st.commandCount, st.triangleCount, st.drawCalls))
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Callers only invoke it in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("bramble debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[bramble] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
