package blade

import (
	"math"
	"testing"
)

func TestPoint_Arithmetic(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, -2)

	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"add", p.Add(q), Pt(4, 2)},
		{"sub", p.Sub(q), Pt(2, 6)},
		{"mul", p.Mul(2), Pt(6, 8)},
		{"div", p.Div(2), Pt(1.5, 2)},
		{"perp", Pt(1, 0).Perp(), Pt(0, 1)},
		{"lerp mid", p.Lerp(q, 0.5), Pt(2, 1)},
		{"normalize", p.Normalize(), Pt(0.6, 0.8)},
		{"normalize zero", Pt(0, 0).Normalize(), Pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.want, 1e-12) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPoint_Scalars(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, -2)
	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("Dot() = %v, want -5", got)
	}
	if got := p.Distance(Pt(0, 0)); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
	if got := Pt(2, 7).Perp().Dot(Pt(2, 7)); got != 0 {
		t.Errorf("Perp is not perpendicular: dot = %v", got)
	}
	if n := Pt(-7, 24).Normalize().Length(); math.Abs(n-1) > 1e-12 {
		t.Errorf("normalized length = %v, want 1", n)
	}
}
