package blade

import "testing"

func ringPositions(r *pointRing) []Point {
	return r.appendTo(nil)
}

func TestPointRing_PushWithinCapacity(t *testing.T) {
	r := newPointRing(4)
	for i := range 3 {
		if r.push(trailPoint{pos: Pt(float64(i), 0)}) {
			t.Fatalf("push %d evicted with room left", i)
		}
	}
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	if r.Cap() != 4 {
		t.Errorf("Cap() = %d, want 4", r.Cap())
	}
	got := ringPositions(r)
	for i, p := range got {
		if p.X != float64(i) {
			t.Errorf("point %d = %v, want X=%d", i, p, i)
		}
	}
}

func TestPointRing_OverflowEvictsOldest(t *testing.T) {
	r := newPointRing(3)
	for i := range 7 {
		evicted := r.push(trailPoint{pos: Pt(float64(i), 0)})
		if want := i >= 3; evicted != want {
			t.Errorf("push %d evicted = %v, want %v", i, evicted, want)
		}
		if r.Len() > r.Cap() {
			t.Fatalf("Len() = %d exceeds Cap() = %d", r.Len(), r.Cap())
		}
	}
	got := ringPositions(r)
	want := []float64{4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].X != want[i] {
			t.Errorf("point %d = %v, want X=%v", i, got[i], want[i])
		}
	}
	if last := r.last(); last.pos.X != 6 {
		t.Errorf("last() = %v, want X=6", last.pos)
	}
}

func TestPointRing_Pop(t *testing.T) {
	tests := []struct {
		name    string
		fill    int
		n       int
		removed int
		left    int
	}{
		{"zero", 4, 0, 0, 4},
		{"negative", 4, -3, 0, 4},
		{"one", 4, 1, 1, 3},
		{"all", 4, 4, 4, 0},
		{"clamped", 4, 10, 4, 0},
		{"empty", 0, 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newPointRing(5)
			for i := range tt.fill {
				r.push(trailPoint{pos: Pt(float64(i), 0)})
			}
			if got := r.pop(tt.n); got != tt.removed {
				t.Errorf("pop(%d) = %d, want %d", tt.n, got, tt.removed)
			}
			if r.Len() != tt.left {
				t.Errorf("Len() = %d, want %d", r.Len(), tt.left)
			}
			if tt.left > 0 {
				if first := r.at(0).pos.X; first != float64(tt.fill-tt.left) {
					t.Errorf("oldest = %v, want %d", first, tt.fill-tt.left)
				}
			}
		})
	}
}

func TestPointRing_WrapAround(t *testing.T) {
	r := newPointRing(4)
	for i := range 4 {
		r.push(trailPoint{pos: Pt(float64(i), 0)})
	}
	r.pop(3)
	r.push(trailPoint{pos: Pt(4, 0)})
	r.push(trailPoint{pos: Pt(5, 0)})

	got := ringPositions(r)
	want := []float64{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want X values %v", got, want)
	}
	for i := range want {
		if got[i].X != want[i] {
			t.Errorf("point %d = %v, want X=%v", i, got[i], want[i])
		}
	}
}

func TestPointRing_Clear(t *testing.T) {
	r := newPointRing(3)
	r.push(trailPoint{pos: Pt(1, 1)})
	r.push(trailPoint{pos: Pt(2, 2)})
	r.clear()
	if r.Len() != 0 {
		t.Errorf("Len() after clear = %d, want 0", r.Len())
	}
	if r.last() != nil {
		t.Error("last() after clear should be nil")
	}
}
