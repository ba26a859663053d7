// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggblade draws blade ribbons in gogpu windows through the
// gpucontext texture interfaces.
//
// The ribbon mesh is rasterized on the CPU with the raster package and the
// frame is uploaded as a texture. The data flow is:
//
//	blade.Mesh -> raster (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	layer, err := ggblade.New(app.GPUContextProvider(), 800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer layer.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    ribbon.Update(dc.DeltaTime())
//	    layer.Draw(dc.AsTextureDrawer(), ribbon.Mesh(), ggblade.DefaultDrawOptions())
//	})
//
// The texture is created lazily on the first non-empty frame and updated in
// place afterwards. Resize recreates it on the next Draw.
//
// # Thread Safety
//
// Layer is NOT safe for concurrent use.
//
// Use the gpu package instead when the host exposes a HAL device and the
// ribbon should be drawn without the CPU pass.
package ggblade
