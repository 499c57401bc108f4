package bramble

import "testing"

func TestCommandQueueAddAndReset(t *testing.T) {
	q := NewCommandQueue()
	q.AddCommand(RenderCommand{Positions: make([]Vec2, 6)})
	q.AddCommand(RenderCommand{Positions: make([]Vec2, 9)})

	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}
	if q.TriangleCount() != 5 {
		t.Errorf("TriangleCount = %d, want 5", q.TriangleCount())
	}
	if q.Commands()[1].seq != 1 {
		t.Errorf("seq = %d, want 1", q.Commands()[1].seq)
	}

	before := cap(q.commands)
	q.Reset()
	if q.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", q.Len())
	}
	if cap(q.commands) != before {
		t.Error("Reset should keep the buffer")
	}
}

func TestCommandQueueSortOrder(t *testing.T) {
	q := NewCommandQueue()
	q.AddCommand(RenderCommand{RenderLayer: 1, GlobalOrder: 0})
	q.AddCommand(RenderCommand{RenderLayer: 0, GlobalOrder: 5})
	q.AddCommand(RenderCommand{RenderLayer: 0, GlobalOrder: 0})
	q.AddCommand(RenderCommand{RenderLayer: 1, GlobalOrder: -1})
	q.AddCommand(RenderCommand{RenderLayer: 0, GlobalOrder: 0})

	q.Sort()

	want := []int{2, 4, 1, 3, 0}
	for i, cmd := range q.Commands() {
		if cmd.seq != want[i] {
			t.Errorf("position %d: seq = %d, want %d", i, cmd.seq, want[i])
		}
	}
}

func TestCommandQueueSortStableLarge(t *testing.T) {
	q := NewCommandQueue()
	const n = 1000
	for i := 0; i < n; i++ {
		q.AddCommand(RenderCommand{RenderLayer: uint8(i % 3)})
	}
	q.Sort()

	cmds := q.Commands()
	for i := 1; i < n; i++ {
		a, b := cmds[i-1], cmds[i]
		if a.RenderLayer > b.RenderLayer {
			t.Fatalf("layer out of order at %d", i)
		}
		if a.RenderLayer == b.RenderLayer && a.seq > b.seq {
			t.Fatalf("unstable at %d: seq %d before %d", i, a.seq, b.seq)
		}
	}
}

func TestCommandQueueSortEmptyAndSingle(t *testing.T) {
	q := NewCommandQueue()
	q.Sort()
	q.AddCommand(RenderCommand{GlobalOrder: 7})
	q.Sort()
	if q.Len() != 1 || q.Commands()[0].GlobalOrder != 7 {
		t.Error("single command changed by Sort")
	}
}

func TestAffine32(t *testing.T) {
	got := affine32([6]float64{1, 2, 3, 4, 5.5, -6})
	want := [6]float32{1, 2, 3, 4, 5.5, -6}
	if got != want {
		t.Errorf("affine32 = %v, want %v", got, want)
	}
}
