// Command bladedemo renders a sword swing trail to a sequence of PNG frames.
//
// The blade tip sweeps an arc while points are pushed into the ribbon, then
// the ribbon is finished and left to drain, one frame per tick.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/blade"
	"github.com/gogpu/blade/raster"
)

func main() {
	var (
		width     = flag.Int("width", 640, "image width")
		height    = flag.Int("height", 480, "image height")
		output    = flag.String("output", "frames", "output directory")
		capacity  = flag.Int("points", 24, "ribbon point capacity")
		bladeW    = flag.Float64("blade-width", 18, "ribbon half width in pixels")
		fps       = flag.Float64("fps", 60, "simulation ticks per second")
		swing     = flag.Int("swing", 30, "ticks spent swinging before the trail is finished")
		every     = flag.Int("every", 1, "save every n-th frame")
		taper     = flag.Bool("taper", true, "narrow the ribbon toward the tail")
		autoDim   = flag.Bool("dim", false, "retire points while swinging")
		verbose   = flag.Bool("v", false, "log ribbon state changes")
		maxFrames = flag.Int("max-frames", 600, "stop after this many frames")
	)
	flag.Parse()

	if *every < 1 || *fps <= 0 {
		log.Fatalf("-every must be at least 1 and -fps positive")
	}
	if *verbose {
		blade.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ribbon, err := blade.New(*capacity,
		blade.WithWidth(*bladeW),
		blade.WithTaper(*taper),
		blade.WithAutoDim(*autoDim),
		blade.WithRetireInterval(1 / *fps),
		blade.WithInterpolation(*bladeW),
	)
	if err != nil {
		log.Fatalf("Failed to create ribbon: %v", err)
	}

	if err := os.MkdirAll(*output, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	bg := background(*width, *height)
	frame := image.NewRGBA(bg.Bounds())
	rr := raster.NewRenderer()
	trail := color.NRGBA{R: 140, G: 200, B: 255, A: 255}

	cx, cy := float64(*width)/2, float64(*height)*0.65
	radius := math.Min(float64(*width), float64(*height)) * 0.45
	dt := 1 / *fps

	saved := 0
	for tick := 0; tick < *maxFrames && !ribbon.Drained(); tick++ {
		if tick < *swing {
			ribbon.Push(swingTip(cx, cy, radius, float64(tick)/float64(*swing)))
		} else if tick == *swing {
			ribbon.Finish()
		}
		ribbon.Update(dt)

		if tick%*every != 0 {
			continue
		}
		draw.Draw(frame, frame.Bounds(), bg, image.Point{}, draw.Src)
		rr.Draw(frame, ribbon.Mesh(), trail)

		path := filepath.Join(*output, fmt.Sprintf("frame%04d.png", tick))
		if err := raster.SavePNG(path, frame); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		saved++
	}

	log.Printf("Saved %d frames to %s (%dx%d), final state %s\n",
		saved, *output, *width, *height, ribbon.State())
}

// swingTip returns the blade tip at progress t in [0, 1] of an overhead
// swing. The sweep eases out so the points bunch up at the end.
func swingTip(cx, cy, radius, t float64) blade.Point {
	eased := 1 - (1-t)*(1-t)
	angle := math.Pi*1.15 + eased*math.Pi*0.85
	return blade.Pt(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
}

// background returns a vertical gradient, darker at the top.
func background(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		t := float64(y) / float64(max(h-1, 1))
		c := color.RGBA{
			R: uint8(20 + t*30),
			G: uint8(24 + t*40),
			B: uint8(40 + t*60),
			A: 255,
		}
		draw.Draw(img, image.Rect(0, y, w, y+1), image.NewUniform(c), image.Point{}, draw.Src)
	}
	return img
}
