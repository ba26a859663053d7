// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

// Package gpu draws blade ribbons with WebGPU through the gogpu/wgpu HAL.
//
// The host owns the device, the queue and the render pass; this package
// only creates the ribbon pipelines and per-frame buffers, following the
// same "receive the device, never create it" rule as the rest of gogpu.
//
// Typical frame:
//
//	res, err := renderer.Prepare(ribbon.Mesh(), width, height, gpu.White)
//	if err != nil {
//	    return err
//	}
//	defer renderer.Release(res)
//	renderer.RecordDraws(renderPass, res)
//
// # Textures
//
// Texture binding stays with the host. A ribbon whose texture handle is a
// hal.BindGroup created against Renderer.TextureLayout (binding 0: 2D float
// texture, binding 1: filtering sampler) is drawn with the textured
// pipeline; any other handle falls back to the solid tint pipeline.
//
// Build with -tags nogpu to exclude this package.
package gpu
