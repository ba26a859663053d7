// Command bladeterm draws blade trails in the terminal with the mouse.
//
// Drag with the left button to swing; releasing the button finishes the
// trail and lets it drain. Cells are drawn with half blocks, so the ribbon
// is rendered at two pixels per cell row.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/blade"
)

func main() {
	var (
		points = flag.Int("points", 32, "ribbon point capacity")
		width  = flag.Float64("width", 1.5, "ribbon half width in cells")
		scale  = flag.Int("scale", 4, "supersampling factor")
		fps    = flag.Int("fps", 30, "redraw rate")
		retire = flag.Duration("retire", 25*time.Millisecond, "time between retired points")
	)
	flag.Parse()

	if *fps <= 0 {
		log.Fatalf("-fps must be positive")
	}

	a, err := newApp(*points, *scale,
		blade.WithWidth(*width*float64(*scale)),
		blade.WithTaper(true),
		blade.WithRetireInterval(retire.Seconds()),
		blade.WithInterpolation(float64(*scale)),
	)
	if err != nil {
		log.Fatalf("Failed to create ribbon: %v", err)
	}

	if err := run(a, time.Second/time.Duration(*fps)); err != nil {
		log.Fatal(err)
	}
}

func run(a *app, frame time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorReset))
	screen.HideCursor()
	screen.EnableMouse()

	quit := make(chan struct{})
	defer close(quit)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			done, err := handle(a, screen, ev)
			if err != nil || done {
				return err
			}
		case now := <-ticker.C:
			a.tick(now.Sub(last).Seconds())
			last = now

			cols, rows := screen.Size()
			if rows < 2 {
				continue
			}
			paint(screen, a.render(cols, rows-1))
			status(screen, rows-1, cols, a)
			screen.Show()
		}
	}
}

func handle(a *app, screen tcell.Screen, ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()
	case *tcell.EventMouse:
		x, y := ev.Position()
		return false, a.mouse(x, y, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyRune:
			return a.key(ev.Rune())
		}
	}
	return false, nil
}
