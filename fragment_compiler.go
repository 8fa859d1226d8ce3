/*
Copyright 2025 The goARRG Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package vxpl

import (
	"slices"

	"goarrg.com/debug"
)

func createShaderModules(ctx *Context, stages []ShaderStageInfo) ([]ShaderStageCreateInfo, []Handle, error) {
	infos := make([]ShaderStageCreateInfo, 0, len(stages))
	modules := make([]Handle, 0, len(stages))

	for i := range stages {
		s := &stages[i]
		module, result := ctx.device.CreateShaderModule(s.name(), s.Shader.SPIRV)
		if result != ResultSuccess {
			for _, m := range modules {
				ctx.device.DestroyShaderModule(m)
			}
			return nil, nil, debug.ErrorWrapf(ErrorDriverCompileFailed{Result: result},
				"Failed to create shader module %q", s.name())
		}
		modules = append(modules, module)
		infos = append(infos, ShaderStageCreateInfo{
			Stage:         s.Stage,
			Module:        module,
			EntryPoint:    s.entryPoint(),
			SpecConstants: slices.Clone(s.SpecConstants),
		})
	}

	return infos, modules, nil
}

// createLibrary takes ownership of modules, they are destroyed if the library fails.
func createLibrary(ctx *Context, name string, info *LibraryCreateInfo, modules []Handle) (*Fragment, error) {
	handle, result := ctx.device.CreateGraphicsPipelineLibrary(name, ctx.config.pipelineCache, info)
	if result != ResultSuccess {
		for _, m := range modules {
			ctx.device.DestroyShaderModule(m)
		}
		return nil, debug.ErrorWrapf(ErrorDriverCompileFailed{Result: result},
			"Failed to create graphics pipeline library %q", name)
	}

	ctx.logger.VPrintf("Created %s library %q: %s [%s]", info.State.Kind(), name, toHex(handle), info.Flags)
	return &Fragment{
		kind:    info.State.Kind(),
		name:    name,
		handle:  handle,
		modules: modules,
	}, nil
}

func buildVertexInput(ctx *Context, d *VertexInputDescriptor, name string) (*Fragment, error) {
	return createLibrary(ctx, name, &LibraryCreateInfo{
		Flags:         ctx.config.libraryFlags,
		DynamicStates: d.DynamicStates,
		State: &VertexInputLibraryState{
			Attributes:             d.Attributes,
			Bindings:               d.Bindings,
			Topology:               d.Topology,
			PrimitiveRestartEnable: d.PrimitiveRestartEnable,
		},
	}, nil)
}

func buildPreRasterization(ctx *Context, d *PreRasterizationDescriptor, name string) (*Fragment, error) {
	stages, modules, err := createShaderModules(ctx, d.Stages)
	if err != nil {
		return nil, err
	}
	return createLibrary(ctx, name, &LibraryCreateInfo{
		Flags:         ctx.config.libraryFlags,
		Layout:        d.Layout.handle,
		DynamicStates: d.DynamicStates,
		State: &PreRasterizationLibraryState{
			Stages:        stages,
			Tessellation:  d.Tessellation,
			Viewport:      d.Viewport,
			Rasterization: d.Rasterization,
		},
	}, modules)
}

func buildFragmentShading(ctx *Context, d *FragmentShadingDescriptor, name string) (*Fragment, error) {
	stages, modules, err := createShaderModules(ctx, d.Stages)
	if err != nil {
		return nil, err
	}
	return createLibrary(ctx, name, &LibraryCreateInfo{
		Flags:         ctx.config.libraryFlags,
		Layout:        d.Layout.handle,
		DynamicStates: d.DynamicStates,
		State: &FragmentShadingLibraryState{
			Stages:       stages,
			DepthStencil: d.DepthStencil,
		},
	}, modules)
}

func buildFragmentOutput(ctx *Context, d *FragmentOutputDescriptor, name string) (*Fragment, error) {
	return createLibrary(ctx, name, &LibraryCreateInfo{
		Flags:         ctx.config.libraryFlags,
		DynamicStates: d.DynamicStates,
		State: &FragmentOutputLibraryState{
			ColorBlendAttachments: fitSlice(d.ColorBlendAttachments, len(d.ColorFormats), DefaultColorBlendAttachment()),
			ColorBlend:            d.ColorBlend,
			Multisample:           d.Multisample,
			ColorFormats:          d.ColorFormats,
			DepthFormat:           d.DepthFormat,
			StencilFormat:         d.StencilFormat,
		},
	}, nil)
}
