// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggblade

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/blade"
	"github.com/gogpu/blade/raster"
	"github.com/gogpu/gpucontext"
)

// Common errors returned by Layer operations.
var (
	// ErrLayerClosed is returned when operations are attempted on a closed layer.
	ErrLayerClosed = errors.New("ggblade: layer is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggblade: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("ggblade: nil DeviceProvider")

	// ErrNoTextureCreator is returned when the draw context cannot create textures.
	ErrNoTextureCreator = errors.New("ggblade: draw context has no TextureCreator")

	// ErrInvalidTexture is returned when the created texture cannot be drawn.
	ErrInvalidTexture = errors.New("ggblade: texture does not implement gpucontext.Texture")
)

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// DrawOptions controls where and how a ribbon frame is drawn.
type DrawOptions struct {
	// X, Y is the position of the layer in the window (default: 0, 0).
	X, Y float32

	// Tint multiplies the ribbon color. Nil draws the texture untinted, or
	// white when the ribbon has no image texture.
	Tint color.Color
}

// DefaultDrawOptions returns options drawing an untinted layer at the origin.
func DefaultDrawOptions() DrawOptions {
	return DrawOptions{}
}

// Layer rasterizes ribbon meshes into a frame and keeps that frame on the
// GPU as a texture.
type Layer struct {
	provider    gpucontext.DeviceProvider
	raster      *raster.Renderer
	frame       *image.RGBA
	texture     any // Lazy-created texture (*gogpu.Texture)
	sizeChanged bool
	width       int
	height      int
	closed      bool
}

// New creates a Layer of the given size.
// The provider should come from gogpu.App.GPUContextProvider().
func New(provider gpucontext.DeviceProvider, width, height int) (*Layer, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Layer{
		provider: provider,
		raster:   raster.NewRenderer(),
		frame:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:    width,
		height:   height,
	}, nil
}

// Size returns the layer width and height in pixels.
func (l *Layer) Size() (width, height int) {
	return l.width, l.height
}

// Provider returns the DeviceProvider associated with this layer.
// Returns nil if the layer is closed.
func (l *Layer) Provider() gpucontext.DeviceProvider {
	if l.closed {
		return nil
	}
	return l.provider
}

// Texture returns the current GPU texture, or nil before the first upload.
func (l *Layer) Texture() any {
	return l.texture
}

// Resize changes the layer dimensions. The texture is recreated on the
// next Draw.
func (l *Layer) Resize(width, height int) error {
	if l.closed {
		return ErrLayerClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if l.width == width && l.height == height {
		return nil
	}
	l.frame = image.NewRGBA(image.Rect(0, 0, width, height))
	l.width = width
	l.height = height
	l.sizeChanged = true
	return nil
}

// Draw rasterizes m, uploads the frame and draws it to dc.
// An empty mesh draws nothing and leaves the texture untouched.
func (l *Layer) Draw(dc gpucontext.TextureDrawer, m blade.Mesh, opts DrawOptions) error {
	if l.closed {
		return ErrLayerClosed
	}
	if m.Empty() {
		return nil
	}

	draw.Draw(l.frame, l.frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
	l.raster.Draw(l.frame, m, opts.Tint)

	if err := l.upload(dc); err != nil {
		return err
	}
	tex, ok := l.texture.(gpucontext.Texture)
	if !ok {
		return ErrInvalidTexture
	}
	return dc.DrawTexture(tex, opts.X, opts.Y)
}

// DrawRibbon is a convenience for Draw(dc, r.Mesh(), opts).
func (l *Layer) DrawRibbon(dc gpucontext.TextureDrawer, r *blade.Ribbon, opts DrawOptions) error {
	return l.Draw(dc, r.Mesh(), opts)
}

// upload creates the texture on first use or after a resize, and updates it
// in place otherwise.
func (l *Layer) upload(dc gpucontext.TextureDrawer) error {
	if l.texture != nil && !l.sizeChanged {
		if updater, ok := l.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(l.frame.Pix); err != nil {
				return fmt.Errorf("ggblade: texture update failed: %w", err)
			}
		}
		return nil
	}

	creator := dc.TextureCreator()
	if creator == nil {
		return ErrNoTextureCreator
	}
	tex, err := creator.NewTextureFromRGBA(l.width, l.height, l.frame.Pix)
	if err != nil {
		return fmt.Errorf("ggblade: NewTextureFromRGBA failed: %w", err)
	}
	// image.RGBA holds premultiplied alpha.
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}
	blade.Logger().Debug("ggblade: texture created", "width", l.width, "height", l.height)

	// NewTextureFromRGBA waits for the GPU, so the old texture is idle now.
	destroyTexture(l.texture)
	l.texture = tex
	l.sizeChanged = false
	return nil
}

// Close releases the texture. Close is idempotent.
func (l *Layer) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	destroyTexture(l.texture)
	l.texture = nil
	l.frame = nil
	l.provider = nil
	return nil
}

func destroyTexture(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}
