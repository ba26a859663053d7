package main

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/blade"
	"github.com/gogpu/blade/raster"
)

// app holds the ribbon being drawn with the mouse and the finished ribbons
// still draining from earlier swings.
type app struct {
	points int
	opts   []blade.Option
	scale  int
	dim    bool
	active *blade.Ribbon
	fading []*blade.Ribbon
	down   bool
	swings int

	rr    *raster.Renderer
	frame *image.RGBA
	trail color.Color
}

func newApp(points, scale int, opts ...blade.Option) (*app, error) {
	a := &app{
		points: points,
		opts:   opts,
		scale:  max(scale, 1),
		rr:     raster.NewRenderer(),
		trail:  color.NRGBA{R: 255, G: 190, B: 90, A: 255},
	}
	r, err := a.newRibbon()
	if err != nil {
		return nil, err
	}
	a.active = r
	return a, nil
}

func (a *app) newRibbon() (*blade.Ribbon, error) {
	opts := append([]blade.Option{}, a.opts...)
	opts = append(opts,
		blade.WithAutoDim(a.dim),
		blade.WithDrainedFunc(func() { a.swings++ }),
	)
	return blade.New(a.points, opts...)
}

// cellPoint maps a terminal cell to the center of its pixels in the
// supersampled frame. Each cell is two pixels tall.
func (a *app) cellPoint(x, y int) blade.Point {
	s := float64(a.scale)
	return blade.Pt((float64(x)+0.5)*s, (float64(y)+0.5)*2*s)
}

// mouse handles a mouse report with the primary button held or released.
func (a *app) mouse(x, y int, pressed bool) error {
	switch {
	case pressed && !a.down:
		a.down = true
		if a.active.Len() > 0 {
			a.active.Reset()
		}
		a.active.Push(a.cellPoint(x, y))
	case pressed:
		a.active.Push(a.cellPoint(x, y))
	case a.down:
		a.down = false
		return a.release()
	}
	return nil
}

// release finishes the active ribbon and starts a fresh one. An empty
// ribbon is kept as is.
func (a *app) release() error {
	if a.active.Len() == 0 {
		return nil
	}
	next, err := a.newRibbon()
	if err != nil {
		return err
	}
	a.active.Finish()
	if !a.active.Drained() {
		a.fading = append(a.fading, a.active)
	}
	a.active = next
	return nil
}

// key handles a key press and reports whether the program should quit.
func (a *app) key(r rune) (quit bool, err error) {
	switch r {
	case 'q':
		return true, nil
	case 'd':
		a.dim = !a.dim
		a.active.Dim(a.dim)
	case 'r':
		a.active.Reset()
	case 'f':
		a.down = false
		err = a.release()
	case 'c':
		a.active.Clear()
		a.fading = a.fading[:0]
	}
	return false, err
}

// tick advances every ribbon by dt seconds and forgets drained ones.
func (a *app) tick(dt float64) {
	a.active.Update(dt)
	kept := a.fading[:0]
	for _, r := range a.fading {
		r.Update(dt)
		if !r.Drained() {
			kept = append(kept, r)
		}
	}
	clear(a.fading[len(kept):])
	a.fading = kept
}

// render draws all ribbons for a cols×rows terminal and returns one pixel
// per half cell.
func (a *app) render(cols, rows int) *image.RGBA {
	w, h := cols*a.scale, rows*2*a.scale
	if a.frame == nil || a.frame.Bounds().Dx() != w || a.frame.Bounds().Dy() != h {
		a.frame = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		draw.Draw(a.frame, a.frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
	}
	for _, r := range a.fading {
		a.rr.Draw(a.frame, r.Mesh(), a.trail)
	}
	a.rr.Draw(a.frame, a.active.Mesh(), a.trail)
	return raster.Downsample(a.frame, cols, rows*2)
}
