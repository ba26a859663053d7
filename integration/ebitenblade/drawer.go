// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenblade

import (
	"image"
	"image/color"

	"github.com/gogpu/blade"
	"github.com/hajimehoshi/ebiten/v2"
)

// DrawOptions controls how a mesh is drawn to the target.
type DrawOptions struct {
	// X, Y translate the ribbon on the target (default: 0, 0)
	X, Y float32

	// Tint multiplies the texture, or fills an untextured ribbon
	// (default: white)
	Tint color.Color

	// Blend is the blend mode (default: ebiten.BlendLighter). The zero
	// value is regular alpha blending.
	Blend ebiten.Blend
}

// DefaultDrawOptions returns options with sensible defaults.
func DefaultDrawOptions() DrawOptions {
	return DrawOptions{
		Tint:  color.White,
		Blend: ebiten.BlendLighter,
	}
}

// Drawer converts meshes to Ebitengine vertices and draws them.
// Scratch buffers are reused across frames.
type Drawer struct {
	vertices []ebiten.Vertex
	fades    []float32
	white    *ebiten.Image
	opts     ebiten.DrawTrianglesOptions
}

// NewDrawer creates a Drawer.
func NewDrawer() *Drawer {
	return &Drawer{}
}

// Draw draws m onto dst. It is a no-op for a nil target or an empty mesh.
func (d *Drawer) Draw(dst *ebiten.Image, m blade.Mesh, opts DrawOptions) {
	if dst == nil || m.Empty() {
		return
	}

	src, textured := m.Texture.(*ebiten.Image)
	if !textured || src == nil {
		src = d.whiteImage()
		textured = false
	}

	d.fades = m.Fades(d.fades)
	d.vertices = appendVertices(d.vertices[:0], m, d.fades, src.Bounds(), textured, opts)

	d.opts = ebiten.DrawTrianglesOptions{Blend: opts.Blend}
	if textured {
		d.opts.Address = ebiten.AddressRepeat
	}
	dst.DrawTriangles(d.vertices, m.Indices, src, &d.opts)
}

// whiteImage returns a 1x1 white source image. It is cut from the middle of
// a 3x3 image so filtering never samples past its edge.
func (d *Drawer) whiteImage() *ebiten.Image {
	if d.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		d.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return d.white
}

// appendVertices converts the mesh vertices into ebiten vertices sampling
// src. Untextured meshes sample the center of src.
func appendVertices(dst []ebiten.Vertex, m blade.Mesh, fades []float32, src image.Rectangle, textured bool, opts DrawOptions) []ebiten.Vertex {
	tint := opts.Tint
	if tint == nil {
		tint = color.White
	}
	r, g, b, a := straight(tint)

	sx, sy := float32(src.Min.X), float32(src.Min.Y)
	sw, sh := float32(src.Dx()), float32(src.Dy())

	for i, p := range m.Vertices {
		v := ebiten.Vertex{
			DstX:   float32(p.X) + opts.X,
			DstY:   float32(p.Y) + opts.Y,
			SrcX:   sx + sw/2,
			SrcY:   sy + sh/2,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a * fades[i],
		}
		if textured {
			uv := m.TexCoords[i]
			v.SrcX = sx + float32(uv.X)*sw
			v.SrcY = sy + float32(uv.Y)*sh
		}
		dst = append(dst, v)
	}
	return dst
}

// straight returns c as non-premultiplied components in [0, 1].
func straight(c color.Color) (r, g, b, a float32) {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return float32(n.R) / 0xffff, float32(n.G) / 0xffff, float32(n.B) / 0xffff, float32(n.A) / 0xffff
}
