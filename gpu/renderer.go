// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/blade"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Color is a premultiplied RGBA tint applied to the ribbon.
type Color struct {
	R, G, B, A float32
}

// White leaves the ribbon texture (or solid ribbon) untinted.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithTargetFormat sets the color attachment format of the render passes the
// renderer records into. Defaults to BGRA8Unorm.
func WithTargetFormat(format gputypes.TextureFormat) RendererOption {
	return func(r *Renderer) {
		r.format = format
	}
}

// WithSampleCount sets the MSAA sample count of the target. Defaults to 1.
func WithSampleCount(n uint32) RendererOption {
	return func(r *Renderer) {
		if n > 0 {
			r.samples = n
		}
	}
}

// Renderer draws blade meshes into a host-owned render pass.
//
// Pipelines are created lazily on the first Prepare or TextureLayout call.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	device  hal.Device
	queue   hal.Queue
	format  gputypes.TextureFormat
	samples uint32

	solidShader    hal.ShaderModule
	texturedShader hal.ShaderModule
	uniformLayout  hal.BindGroupLayout
	textureLayout  hal.BindGroupLayout
	solidLayout    hal.PipelineLayout
	texturedLayout hal.PipelineLayout

	solidPipeline    hal.RenderPipeline
	texturedPipeline hal.RenderPipeline

	// Reused across frames to avoid per-frame allocations.
	staging []byte
	fades   []float32
}

// FrameResources holds the per-frame GPU buffers for one ribbon.
type FrameResources struct {
	vertBuf    hal.Buffer
	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup
	texture    hal.BindGroup // borrowed from the mesh, never destroyed here
	vertCount  uint32
}

// VertexCount returns the number of vertices the draw will submit.
func (f *FrameResources) VertexCount() uint32 {
	if f == nil {
		return 0
	}
	return f.vertCount
}

// Textured reports whether the frame uses the textured pipeline.
func (f *FrameResources) Textured() bool {
	return f != nil && f.texture != nil
}

// NewRenderer creates a ribbon renderer on the host's device and queue.
func NewRenderer(device hal.Device, queue hal.Queue, opts ...RendererOption) *Renderer {
	r := &Renderer{
		device:  device,
		queue:   queue,
		format:  gputypes.TextureFormatBGRA8Unorm,
		samples: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TextureLayout returns the bind group layout hosts must use for the
// texture bind groups they hand to ribbons.
func (r *Renderer) TextureLayout() (hal.BindGroupLayout, error) {
	if err := r.ensurePipelines(); err != nil {
		return nil, err
	}
	return r.textureLayout, nil
}

// Prepare uploads the mesh for drawing into a target of the given size.
// It returns nil resources (and no error) for a mesh with nothing to draw.
// The caller releases the resources with Release after the frame.
func (r *Renderer) Prepare(m blade.Mesh, width, height uint32, tint Color) (*FrameResources, error) {
	if r.device == nil || r.queue == nil {
		return nil, fmt.Errorf("ribbon renderer: device and queue are required")
	}
	if m.Empty() {
		return nil, nil //nolint:nilnil // empty mesh is a valid no-op, not an error
	}
	if err := r.ensurePipelines(); err != nil {
		return nil, err
	}

	var data []byte
	r.staging, r.fades, data = encodeVerticesReuse(m, r.staging, r.fades)

	vertBuf, err := r.createAndUploadBuffer("ribbon_verts", data,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, fmt.Errorf("create ribbon vertex buffer: %w", err)
	}

	uniformBuf, err := r.createAndUploadBuffer("ribbon_uniform", makeRibbonUniform(width, height, tint),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		r.device.DestroyBuffer(vertBuf)
		return nil, fmt.Errorf("create ribbon uniform buffer: %w", err)
	}

	bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "ribbon_uniform_bind",
		Layout: r.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: ribbonUniformSize,
			}},
		},
	})
	if err != nil {
		r.device.DestroyBuffer(uniformBuf)
		r.device.DestroyBuffer(vertBuf)
		return nil, fmt.Errorf("create ribbon bind group: %w", err)
	}

	res := &FrameResources{
		vertBuf:    vertBuf,
		uniformBuf: uniformBuf,
		bindGroup:  bindGroup,
		vertCount:  uint32(len(data) / ribbonVertexStride), //nolint:gosec // bounded by 3*(2*MaxCapacity-4)
	}
	if tex, ok := m.Texture.(hal.BindGroup); ok && tex != nil {
		res.texture = tex
	}
	return res, nil
}

// RecordDraws records the ribbon draw into a render pass owned by the host.
// This is a no-op if resources is nil or empty.
func (r *Renderer) RecordDraws(rp hal.RenderPassEncoder, res *FrameResources) {
	if res == nil || res.vertCount == 0 {
		return
	}
	if res.texture != nil {
		rp.SetPipeline(r.texturedPipeline)
		rp.SetBindGroup(0, res.bindGroup, nil)
		rp.SetBindGroup(1, res.texture, nil)
	} else {
		rp.SetPipeline(r.solidPipeline)
		rp.SetBindGroup(0, res.bindGroup, nil)
	}
	rp.SetVertexBuffer(0, res.vertBuf, 0)
	rp.Draw(res.vertCount, 1, 0, 0)
}

// Release destroys the per-frame buffers. Safe to call with nil.
func (r *Renderer) Release(res *FrameResources) {
	if res == nil || r.device == nil {
		return
	}
	if res.bindGroup != nil {
		r.device.DestroyBindGroup(res.bindGroup)
		res.bindGroup = nil
	}
	if res.uniformBuf != nil {
		r.device.DestroyBuffer(res.uniformBuf)
		res.uniformBuf = nil
	}
	if res.vertBuf != nil {
		r.device.DestroyBuffer(res.vertBuf)
		res.vertBuf = nil
	}
	res.vertCount = 0
}

// Destroy releases all pipeline resources. Safe to call multiple times.
func (r *Renderer) Destroy() {
	if r.device == nil {
		return
	}
	if r.texturedPipeline != nil {
		r.device.DestroyRenderPipeline(r.texturedPipeline)
		r.texturedPipeline = nil
	}
	if r.solidPipeline != nil {
		r.device.DestroyRenderPipeline(r.solidPipeline)
		r.solidPipeline = nil
	}
	if r.texturedLayout != nil {
		r.device.DestroyPipelineLayout(r.texturedLayout)
		r.texturedLayout = nil
	}
	if r.solidLayout != nil {
		r.device.DestroyPipelineLayout(r.solidLayout)
		r.solidLayout = nil
	}
	if r.textureLayout != nil {
		r.device.DestroyBindGroupLayout(r.textureLayout)
		r.textureLayout = nil
	}
	if r.uniformLayout != nil {
		r.device.DestroyBindGroupLayout(r.uniformLayout)
		r.uniformLayout = nil
	}
	if r.texturedShader != nil {
		r.device.DestroyShaderModule(r.texturedShader)
		r.texturedShader = nil
	}
	if r.solidShader != nil {
		r.device.DestroyShaderModule(r.solidShader)
		r.solidShader = nil
	}
}

// ensurePipelines creates shaders, layouts and both pipelines if they
// don't already exist.
func (r *Renderer) ensurePipelines() error {
	if r.solidPipeline != nil && r.texturedPipeline != nil {
		return nil
	}
	if r.device == nil {
		return fmt.Errorf("ribbon renderer: device is required")
	}
	if err := r.createLayouts(); err != nil {
		r.Destroy()
		return err
	}
	if err := r.createPipelines(); err != nil {
		r.Destroy()
		return err
	}
	blade.Logger().Info("blade/gpu: ribbon pipelines ready",
		"format", r.format, "samples", r.samples)
	return nil
}

// createLayouts compiles both shaders and creates the bind group and
// pipeline layouts.
func (r *Renderer) createLayouts() error {
	var err error
	if r.solidShader, err = createShaderModule(r.device, "ribbon_shader", ribbonShaderSource); err != nil {
		return fmt.Errorf("compile ribbon shader: %w", err)
	}
	if r.texturedShader, err = createShaderModule(r.device, "ribbon_textured_shader", ribbonTexturedShaderSource); err != nil {
		return fmt.Errorf("compile ribbon textured shader: %w", err)
	}

	r.uniformLayout, err = r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "ribbon_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create ribbon uniform layout: %w", err)
	}

	// Binding 0: ribbon texture, binding 1: sampler. Bind groups against
	// this layout are built by the host.
	r.textureLayout, err = r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "ribbon_texture_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create ribbon texture layout: %w", err)
	}

	r.solidLayout, err = r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "ribbon_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create ribbon pipeline layout: %w", err)
	}

	r.texturedLayout, err = r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "ribbon_textured_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.uniformLayout, r.textureLayout},
	})
	if err != nil {
		return fmt.Errorf("create ribbon textured pipeline layout: %w", err)
	}
	return nil
}

// createPipelines creates the solid and textured render pipelines with
// premultiplied alpha blending.
func (r *Renderer) createPipelines() error {
	var err error
	if r.solidPipeline, err = r.createPipeline("ribbon_pipeline", r.solidLayout, r.solidShader); err != nil {
		return fmt.Errorf("create ribbon pipeline: %w", err)
	}
	if r.texturedPipeline, err = r.createPipeline("ribbon_textured_pipeline", r.texturedLayout, r.texturedShader); err != nil {
		return fmt.Errorf("create ribbon textured pipeline: %w", err)
	}
	return nil
}

func (r *Renderer) createPipeline(label string, layout hal.PipelineLayout, shader hal.ShaderModule) (hal.RenderPipeline, error) {
	premulBlend := gputypes.BlendStatePremultiplied()
	return r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label,
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    ribbonVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    r.format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: r.samples,
			Mask:  0xFFFFFFFF,
		},
	})
}

// createAndUploadBuffer creates a GPU buffer and writes data into it.
func (r *Renderer) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	r.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}
