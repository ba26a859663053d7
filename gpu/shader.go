// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/ribbon.wgsl
var ribbonShaderSource string

//go:embed shaders/ribbon_textured.wgsl
var ribbonTexturedShaderSource string

// spirvCache memoizes compiled shaders by WGSL source, so renderers created
// for several windows compile each shader once. Only successful
// compilations are stored; the slices are shared and must not be modified.
var spirvCache sync.Map // string -> []uint32

// compileShaderToSPIRV compiles WGSL source to a SPIR-V word slice.
func compileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	if code, ok := spirvCache.Load(wgslSource); ok {
		return code.([]uint32), nil
	}

	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	spirvCache.Store(wgslSource, spirvCode)
	return spirvCode, nil
}

// createShaderModule compiles source and creates a HAL shader module.
func createShaderModule(device hal.Device, label, source string) (hal.ShaderModule, error) {
	spirv, err := compileShaderToSPIRV(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{SPIRV: spirv},
	})
}
