package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/blade"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	a, err := newApp(8, 2, blade.WithWidth(2))
	if err != nil {
		t.Fatalf("newApp failed: %v", err)
	}
	return a
}

func swing(t *testing.T, a *app) {
	t.Helper()
	for _, x := range []int{1, 5, 9} {
		if err := a.mouse(x, 1, true); err != nil {
			t.Fatal(err)
		}
	}
}

func TestAppSwingAndDrain(t *testing.T) {
	a := newTestApp(t)
	swing(t, a)

	if got := a.active.Len(); got != 3 {
		t.Fatalf("active points = %d, want 3", got)
	}
	if got := a.active.Path()[1]; got != blade.Pt(11, 3) {
		t.Errorf("second point = %v, want (11, 3)", got)
	}

	if err := a.mouse(9, 1, false); err != nil {
		t.Fatal(err)
	}
	if len(a.fading) != 1 || !a.fading[0].Finishing() {
		t.Fatalf("release should move the ribbon to the fading list, got %d", len(a.fading))
	}
	if a.active.Len() != 0 || a.active.Finishing() {
		t.Error("release should start a fresh active ribbon")
	}

	a.tick(1)
	if len(a.fading) != 0 {
		t.Errorf("fading ribbons = %d after draining, want 0", len(a.fading))
	}
	if a.swings != 1 {
		t.Errorf("swings = %d, want 1", a.swings)
	}
}

func TestAppReleaseEmpty(t *testing.T) {
	a := newTestApp(t)
	first := a.active

	if err := a.mouse(0, 0, false); err != nil {
		t.Fatal(err)
	}
	if _, err := a.key('f'); err != nil {
		t.Fatal(err)
	}
	if a.active != first || len(a.fading) != 0 || a.swings != 0 {
		t.Error("finishing an empty ribbon should change nothing")
	}
}

func TestAppPressStartsNewSegment(t *testing.T) {
	a := newTestApp(t)
	swing(t, a)
	a.down = false // lost release, e.g. the button came up outside the terminal

	if err := a.mouse(2, 3, true); err != nil {
		t.Fatal(err)
	}
	if got := a.active.Segments(); got != 2 {
		t.Errorf("segments = %d, want 2", got)
	}
}

func TestAppKeys(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		key   rune
		quit  bool
		check func() bool
	}{
		{'d', false, func() bool { return a.dim && a.active.AutoDim() }},
		{'d', false, func() bool { return !a.dim && !a.active.AutoDim() }},
		{'r', false, func() bool { return a.active.ResetPending() }},
		{'x', false, func() bool { return true }},
		{'q', true, func() bool { return true }},
	}
	for _, tt := range tests {
		quit, err := a.key(tt.key)
		if err != nil {
			t.Fatalf("key(%q): %v", tt.key, err)
		}
		if quit != tt.quit {
			t.Errorf("key(%q) quit = %v, want %v", tt.key, quit, tt.quit)
		}
		if !tt.check() {
			t.Errorf("key(%q) did not have the expected effect", tt.key)
		}
	}
}

func TestAppClear(t *testing.T) {
	a := newTestApp(t)
	swing(t, a)
	if err := a.mouse(9, 1, false); err != nil {
		t.Fatal(err)
	}
	swing(t, a)

	if _, err := a.key('c'); err != nil {
		t.Fatal(err)
	}
	if a.active.Len() != 0 || len(a.fading) != 0 {
		t.Error("clear should drop every ribbon")
	}
}

func TestAppRender(t *testing.T) {
	a := newTestApp(t)
	swing(t, a)

	img := a.render(10, 4)
	if got := img.Bounds().Size(); got != image.Pt(10, 8) {
		t.Fatalf("render size = %v, want 10x8", got)
	}
	if img.RGBAAt(6, 1).A == 0 {
		t.Error("ribbon missing from the rendered frame")
	}
	if img.RGBAAt(6, 7).A != 0 {
		t.Error("pixel far from the ribbon should be empty")
	}

	// The frame is reused and cleared between renders.
	frame := a.frame
	a.active.Clear()
	img = a.render(10, 4)
	if a.frame != frame {
		t.Error("frame was reallocated for the same size")
	}
	if img.RGBAAt(6, 1).A != 0 {
		t.Error("stale pixels survived a render")
	}
}

type cell struct {
	r     rune
	style tcell.Style
}

type fakeScreen map[image.Point]cell

func (f fakeScreen) SetContent(x, y int, mainc rune, _ []rune, style tcell.Style) {
	f[image.Pt(x, y)] = cell{mainc, style}
}

func TestPaint(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 4))
	img.SetRGBA(1, 2, color.RGBA{R: 200, A: 255})
	img.SetRGBA(1, 3, color.RGBA{B: 100, A: 255})

	s := fakeScreen{}
	paint(s, img)

	if len(s) != 4 {
		t.Fatalf("painted %d cells, want 4", len(s))
	}
	c := s[image.Pt(1, 1)]
	if c.r != upperHalf {
		t.Errorf("rune = %q, want %q", c.r, upperHalf)
	}
	fg, bg, _ := c.style.Decompose()
	if fg != tcell.NewRGBColor(200, 0, 0) {
		t.Errorf("foreground = %v, want top pixel", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 100) {
		t.Errorf("background = %v, want bottom pixel", bg)
	}
}

func TestStatus(t *testing.T) {
	a := newTestApp(t)
	s := fakeScreen{}
	status(s, 3, 12, a)

	if len(s) != 12 {
		t.Fatalf("status wrote %d cells, want 12", len(s))
	}
	if got := s[image.Pt(1, 3)].r; got != 's' {
		t.Errorf("status starts with %q, want 's'", got)
	}
}
