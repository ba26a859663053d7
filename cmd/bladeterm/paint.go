package main

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
)

// upperHalf is drawn with the top pixel as foreground and the bottom pixel
// as background, giving two pixels per cell.
const upperHalf = '▀'

// cellSetter is the part of tcell.Screen paint writes to.
type cellSetter interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// paint writes img to the screen, two pixel rows per cell row. Pixels are
// premultiplied, so over a black terminal their RGB is the final color.
func paint(s cellSetter, img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y+1 < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top, bottom := img.RGBAAt(x, y), img.RGBAAt(x, y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			s.SetContent(x-b.Min.X, (y-b.Min.Y)/2, upperHalf, nil, style)
		}
	}
}

// status writes one line of text at row y.
func status(s cellSetter, y, width int, a *app) {
	dim := "off"
	if a.dim {
		dim = "on"
	}
	line := fmt.Sprintf(" swings %d  points %d  %s  [d]im:%s [r]eset [f]inish [c]lear [q]uit",
		a.swings, a.active.Len(), a.active.State(), dim)
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	x := 0
	for _, r := range line {
		if x >= width {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}
