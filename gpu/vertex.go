// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/blade"
	"github.com/gogpu/gputypes"
)

// ribbonVertexStride is the byte stride per vertex in the ribbon pipelines.
// Layout per vertex:
//
//	position (vec2<f32>) = 8 bytes (location 0)
//	uv       (vec2<f32>) = 8 bytes (location 1)
//	fade     (f32)       = 4 bytes (location 2)
//
// Total = 20 bytes per vertex.
const ribbonVertexStride = 20

// ribbonUniformSize is the size of the Uniforms struct in the shaders:
// viewport (vec2) + padding (vec2) + tint (vec4).
const ribbonUniformSize = 32

// ribbonVertexLayout returns the vertex buffer layout shared by both
// ribbon pipelines.
func ribbonVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: ribbonVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},  // uv
				{Format: gputypes.VertexFormatFloat32, Offset: 16, ShaderLocation: 2},   // fade
			},
		},
	}
}

// EncodeVertices expands the mesh's indexed triangles into a flat
// triangle-list vertex stream in the ribbon pipeline layout.
func EncodeVertices(m blade.Mesh) []byte {
	_, _, data := encodeVerticesReuse(m, nil, nil)
	return data
}

// encodeVerticesReuse writes the vertex stream into staging, growing it if
// needed. fades is scratch space for per-vertex fade values. Returns the
// (possibly reallocated) staging and scratch buffers and the valid slice of
// staging.
func encodeVerticesReuse(m blade.Mesh, staging []byte, fades []float32) ([]byte, []float32, []byte) {
	if len(m.Indices) == 0 {
		return staging, fades, nil
	}

	fades = m.Fades(fades)

	needed := len(m.Indices) * ribbonVertexStride
	if cap(staging) < needed {
		staging = make([]byte, needed)
	} else {
		staging = staging[:needed]
	}

	offset := 0
	for _, idx := range m.Indices {
		v := m.Vertices[idx]
		uv := m.TexCoords[idx]
		writeRibbonVertex(staging[offset:], float32(v.X), float32(v.Y), float32(uv.X), float32(uv.Y), fades[idx])
		offset += ribbonVertexStride
	}
	return staging, fades, staging[:offset]
}

// writeRibbonVertex writes a single ribbon vertex into buf.
func writeRibbonVertex(buf []byte, px, py, u, v, fade float32) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(px))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(py))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(u))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(fade))
}

// makeRibbonUniform packs the viewport size and premultiplied tint.
func makeRibbonUniform(w, h uint32, tint Color) []byte {
	buf := make([]byte, ribbonUniformSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(float32(w)))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(float32(h)))
	// Padding bytes 8..15 remain zero.
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(tint.R))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(tint.G))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(tint.B))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(tint.A))
	return buf
}
