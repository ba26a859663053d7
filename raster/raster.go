// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster draws blade meshes into Go images on the CPU.
//
// Each triangle is filled with golang.org/x/image/vector, so edges are
// anti-aliased. The color of a triangle is the mesh texture (when it is an
// image.Image) sampled at the triangle centroid, multiplied by the tint and
// by the fade of its vertices along the segment. No GPU is required, which
// makes the package useful for tests, previews and terminal output.
//
// Usage:
//
//	img := raster.Render(ribbon.Mesh(), 320, 240, color.White)
//	_ = raster.SavePNG("frame.png", img)
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/blade"
	"golang.org/x/image/vector"
)

// Renderer rasterizes meshes. The zero value is ready to use; reusing a
// Renderer across frames avoids reallocating its scratch buffers.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	z     vector.Rasterizer
	fades []float32
	src   image.Uniform
}

// NewRenderer returns a ready to use Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws m into a new transparent w×h image.
func Render(m blade.Mesh, w, h int, tint color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	NewRenderer().Draw(dst, m, tint)
	return dst
}

// Draw composites m over dst. A nil tint draws untinted.
func (r *Renderer) Draw(dst draw.Image, m blade.Mesh, tint color.Color) {
	if m.Empty() {
		return
	}
	if tint == nil {
		tint = color.White
	}
	tr, tg, tb, ta := tint.RGBA()
	tex, _ := m.Texture.(image.Image)

	r.fades = m.Fades(r.fades)
	clip := dst.Bounds()

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		a, b, c := m.Vertices[i0], m.Vertices[i1], m.Vertices[i2]

		bounds := triangleBounds(a, b, c).Intersect(clip)
		if bounds.Empty() {
			continue
		}

		fade := float64(r.fades[i0]+r.fades[i1]+r.fades[i2]) / 3
		if fade <= 0 {
			continue
		}

		cr, cg, cb, ca := tr, tg, tb, ta
		if tex != nil {
			uv := m.TexCoords[i0].Add(m.TexCoords[i1]).Add(m.TexCoords[i2]).Div(3)
			xr, xg, xb, xa := sampleTexture(tex, uv).RGBA()
			cr, cg, cb, ca = mul16(cr, xr), mul16(cg, xg), mul16(cb, xb), mul16(ca, xa)
		}
		r.src.C = color.RGBA64{
			R: scale16(cr, fade),
			G: scale16(cg, fade),
			B: scale16(cb, fade),
			A: scale16(ca, fade),
		}

		r.fillTriangle(dst, bounds, a, b, c)
	}
}

// fillTriangle rasterizes one triangle restricted to bounds.
func (r *Renderer) fillTriangle(dst draw.Image, bounds image.Rectangle, a, b, c blade.Point) {
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	r.z.Reset(bounds.Dx(), bounds.Dy())
	r.z.DrawOp = draw.Over
	r.z.MoveTo(float32(a.X-ox), float32(a.Y-oy))
	r.z.LineTo(float32(b.X-ox), float32(b.Y-oy))
	r.z.LineTo(float32(c.X-ox), float32(c.Y-oy))
	r.z.ClosePath()
	r.z.Draw(dst, bounds, &r.src, image.Point{})
}

// triangleBounds returns the pixel rectangle covering the triangle.
func triangleBounds(a, b, c blade.Point) image.Rectangle {
	minX := math.Floor(math.Min(a.X, math.Min(b.X, c.X)))
	minY := math.Floor(math.Min(a.Y, math.Min(b.Y, c.Y)))
	maxX := math.Ceil(math.Max(a.X, math.Max(b.X, c.X)))
	maxY := math.Ceil(math.Max(a.Y, math.Max(b.Y, c.Y)))
	if math.IsNaN(minX+minY+maxX+maxY) || math.IsInf(minX+minY+maxX+maxY, 0) {
		return image.Rectangle{}
	}
	return image.Rect(int(minX), int(minY), int(maxX), int(maxY))
}

// sampleTexture reads tex at uv. U wraps so long ribbons repeat the
// texture; V is clamped.
func sampleTexture(tex image.Image, uv blade.Point) color.Color {
	b := tex.Bounds()
	if b.Empty() {
		return color.Transparent
	}
	u := uv.X - math.Floor(uv.X)
	v := math.Max(0, math.Min(1, uv.Y))
	x := b.Min.X + min(int(u*float64(b.Dx())), b.Dx()-1)
	y := b.Min.Y + min(int(v*float64(b.Dy())), b.Dy()-1)
	return tex.At(x, y)
}

func mul16(a, b uint32) uint32 {
	return a * b / 0xffff
}

func scale16(v uint32, f float64) uint16 {
	return uint16(math.Round(float64(v) * f)) //nolint:gosec // f is in [0,1]
}
