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

/*
Package halgpu runs vxpl on top of the gogpu hal. The hal has no pipeline
libraries, so libraries are validated and recorded here and the render
pipeline is created from all four of them at link time.
*/
package halgpu

import (
	"errors"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"goarrg.com/debug"

	"goarrg.com/rhi/vxpl"
	"goarrg.com/rhi/vxpl/internal/util"
)

var instance = struct {
	logger *debug.Logger
}{
	logger: debug.NewLogger("vxpl", "halgpu"),
}

func abort(fmt string, args ...any) {
	instance.logger.EPrintf(fmt, args...)
	util.Abort()
}

func SetLogLevel(l uint32) {
	instance.logger.SetLevel(l)
}

type stage struct {
	module     hal.ShaderModule
	entryPoint string
}

/*
library is the converted subset of a render pipeline descriptor one fragment
contributes, which fields are set depends on kind.
*/
type library struct {
	kind   vxpl.FragmentKind
	name   string
	layout vxpl.Handle

	// vertex input
	buffers      []gputypes.VertexBufferLayout
	topology     gputypes.PrimitiveTopology
	restartIndex bool

	// pre-rasterization
	vertex    stage
	cullMode  gputypes.CullMode
	frontFace gputypes.FrontFace
	unclipped bool
	depthBias struct {
		constant   int32
		slopeScale float32
		clamp      float32
	}

	// fragment shading
	fragment     stage
	depthStencil hal.DepthStencilState

	// fragment output
	targets     []gputypes.ColorTargetState
	multisample gputypes.MultisampleState
	depthFormat gputypes.TextureFormat
}

type Device struct {
	device hal.Device

	mtx       sync.Mutex
	next      vxpl.Handle
	modules   map[vxpl.Handle]hal.ShaderModule
	layouts   map[vxpl.Handle]hal.PipelineLayout
	libraries map[vxpl.Handle]*library
	pipelines map[vxpl.Handle]hal.RenderPipeline
}

var _ vxpl.Device = (*Device)(nil)

func New(device hal.Device) *Device {
	if device == nil {
		abort("halgpu.New called with nil hal.Device")
	}
	return &Device{
		device:    device,
		modules:   map[vxpl.Handle]hal.ShaderModule{},
		layouts:   map[vxpl.Handle]hal.PipelineLayout{},
		libraries: map[vxpl.Handle]*library{},
		pipelines: map[vxpl.Handle]hal.RenderPipeline{},
	}
}

// handle must be called with mtx held.
func (d *Device) handle() vxpl.Handle {
	d.next++
	return d.next
}

/*
RegisterPipelineLayout returns the handle to pass to vxpl.NewPipelineLayout,
the layout stays owned by the caller and must outlive every pipeline using it.
*/
func (d *Device) RegisterPipelineLayout(layout hal.PipelineLayout) vxpl.Handle {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	h := d.handle()
	d.layouts[h] = layout
	return h
}

func (d *Device) UnregisterPipelineLayout(h vxpl.Handle) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	if _, ok := d.layouts[h]; !ok {
		abort("Unregistering unknown pipeline layout: 0x%X", uint64(h))
	}
	delete(d.layouts, h)
}

func halResult(err error, fallback vxpl.Result) vxpl.Result {
	switch {
	case errors.Is(err, hal.ErrDeviceOutOfMemory):
		return vxpl.ResultErrorOutOfDeviceMemory
	case errors.Is(err, hal.ErrDeviceLost):
		return vxpl.ResultErrorDeviceLost
	case errors.Is(err, ErrorUnsupported{}):
		return vxpl.ResultErrorFeatureNotPresent

	default:
		return fallback
	}
}

func (d *Device) CreateShaderModule(name string, code []uint32) (vxpl.Handle, vxpl.Result) {
	m, err := d.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  name,
		Source: hal.ShaderSource{SPIRV: code},
	})
	if err != nil {
		instance.logger.WPrintf("Failed to create shader module %q: %v", name, err)
		return vxpl.NullHandle, halResult(err, vxpl.ResultErrorInvalidShader)
	}

	d.mtx.Lock()
	defer d.mtx.Unlock()
	h := d.handle()
	d.modules[h] = m
	return h, vxpl.ResultSuccess
}

func (d *Device) DestroyShaderModule(module vxpl.Handle) {
	d.mtx.Lock()
	m, ok := d.modules[module]
	delete(d.modules, module)
	d.mtx.Unlock()

	if !ok {
		abort("Destroying unknown shader module: 0x%X", uint64(module))
	}
	d.device.DestroyShaderModule(m)
}

// stage must be called with mtx held.
func (d *Device) stage(stages []vxpl.ShaderStageCreateInfo, want vxpl.ShaderStage) (stage, error) {
	if len(stages) != 1 {
		return stage{}, unsupported("shader stage count", len(stages))
	}
	s := stages[0]
	if s.Stage != want {
		return stage{}, unsupported("shader stage", s.Stage)
	}
	if len(s.SpecConstants) > 0 {
		return stage{}, unsupported("specialization constants", len(s.SpecConstants))
	}
	m, ok := d.modules[s.Module]
	if !ok {
		abort("Unknown shader module: 0x%X", uint64(s.Module))
	}
	return stage{module: m, entryPoint: s.EntryPoint}, nil
}

// newLibrary must be called with mtx held.
func (d *Device) newLibrary(name string, info *vxpl.LibraryCreateInfo) (*library, error) {
	if err := checkDynamicStates(info.DynamicStates); err != nil {
		return nil, err
	}

	l := &library{kind: info.State.Kind(), name: name, layout: info.Layout}
	var err error

	switch s := info.State.(type) {
	case *vxpl.VertexInputLibraryState:
		if l.topology, err = convertTopology(s.Topology); err != nil {
			return nil, err
		}
		l.restartIndex = s.PrimitiveRestartEnable && isStrip(l.topology)
		if l.buffers, err = convertVertexInput(s.Attributes, s.Bindings); err != nil {
			return nil, err
		}

	case *vxpl.PreRasterizationLibraryState:
		if s.Tessellation != nil {
			return nil, unsupported("tessellation", s.Tessellation.PatchControlPoints)
		}
		if l.vertex, err = d.stage(s.Stages, vxpl.ShaderStageVertex); err != nil {
			return nil, err
		}
		if s.Viewport.ViewportCount > 1 || s.Viewport.ScissorCount > 1 {
			return nil, unsupported("multiple viewports", s.Viewport.ViewportCount)
		}
		r := s.Rasterization
		if r.RasterizerDiscardEnable {
			return nil, unsupported("rasterizer discard", true)
		}
		if r.PolygonMode != vxpl.PolygonModeFill {
			return nil, unsupported("polygon mode", r.PolygonMode)
		}
		if l.cullMode, err = convertCullMode(r.CullMode); err != nil {
			return nil, err
		}
		l.frontFace = convertFrontFace(r.FrontFace)
		l.unclipped = r.DepthClampEnable
		if r.DepthBiasEnable {
			l.depthBias.constant = int32(r.DepthBiasConstantFactor)
			l.depthBias.slopeScale = r.DepthBiasSlopeFactor
			l.depthBias.clamp = r.DepthBiasClamp
		}

	case *vxpl.FragmentShadingLibraryState:
		if l.fragment, err = d.stage(s.Stages, vxpl.ShaderStageFragment); err != nil {
			return nil, err
		}
		if l.depthStencil, err = convertDepthStencil(s.DepthStencil); err != nil {
			return nil, err
		}

	case *vxpl.FragmentOutputLibraryState:
		if s.ColorBlend.LogicOpEnable {
			return nil, unsupported("logic op", s.ColorBlend.LogicOp)
		}
		l.targets = make([]gputypes.ColorTargetState, len(s.ColorFormats))
		for i, f := range s.ColorFormats {
			if l.targets[i], err = convertColorTarget(f, s.ColorBlendAttachments[i]); err != nil {
				return nil, err
			}
		}
		if l.multisample, err = convertMultisample(s.Multisample); err != nil {
			return nil, err
		}
		if l.depthFormat, err = convertDepthStencilFormat(s.DepthFormat, s.StencilFormat); err != nil {
			return nil, err
		}

	default:
		abort("Unknown LibraryState: %T", info.State)
	}

	return l, nil
}

func (d *Device) CreateGraphicsPipelineLibrary(name string, cache vxpl.Handle, info *vxpl.LibraryCreateInfo) (vxpl.Handle, vxpl.Result) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	l, err := d.newLibrary(name, info)
	if err != nil {
		instance.logger.WPrintf("Failed to create %s library %q: %v", info.State.Kind(), name, err)
		return vxpl.NullHandle, halResult(err, vxpl.ResultErrorUnknown)
	}
	h := d.handle()
	d.libraries[h] = l
	instance.logger.VPrintf("Recorded %s library %q as 0x%X", l.kind, name, uint64(h))
	return h, vxpl.ResultSuccess
}

func (d *Device) LinkGraphicsPipeline(name string, cache vxpl.Handle, info *vxpl.LinkCreateInfo) (vxpl.Handle, vxpl.Result) {
	d.mtx.Lock()
	layout, ok := d.layouts[info.Layout]
	if !ok {
		d.mtx.Unlock()
		instance.logger.WPrintf("Failed to link %q: unregistered pipeline layout 0x%X", name, uint64(info.Layout))
		return vxpl.NullHandle, vxpl.ResultErrorValidationFailed
	}
	var libs [4]*library
	if len(info.Libraries) != len(libs) {
		d.mtx.Unlock()
		return vxpl.NullHandle, vxpl.ResultErrorValidationFailed
	}
	for i, h := range info.Libraries {
		l, ok := d.libraries[h]
		if !ok || l.kind != vxpl.FragmentKind(i) {
			d.mtx.Unlock()
			instance.logger.WPrintf("Failed to link %q: library [%d] 0x%X is not a %s library", name, i, uint64(h), vxpl.FragmentKind(i))
			return vxpl.NullHandle, vxpl.ResultErrorValidationFailed
		}
		libs[i] = l
	}
	d.mtx.Unlock()

	// the render pipeline is created outside the lock
	p, err := d.device.CreateRenderPipeline(assemble(name, layout, libs))
	if err != nil {
		instance.logger.WPrintf("Failed to create render pipeline %q: %v", name, err)
		return vxpl.NullHandle, halResult(err, vxpl.ResultErrorUnknown)
	}

	d.mtx.Lock()
	defer d.mtx.Unlock()
	h := d.handle()
	d.pipelines[h] = p
	return h, vxpl.ResultSuccess
}

// DestroyPipeline destroys both recorded libraries and render pipelines.
func (d *Device) DestroyPipeline(pipeline vxpl.Handle) {
	d.mtx.Lock()
	if _, ok := d.libraries[pipeline]; ok {
		delete(d.libraries, pipeline)
		d.mtx.Unlock()
		return
	}
	p, ok := d.pipelines[pipeline]
	delete(d.pipelines, pipeline)
	d.mtx.Unlock()

	if !ok {
		abort("Destroying unknown pipeline: 0x%X", uint64(pipeline))
	}
	d.device.DestroyRenderPipeline(p)
}

func convertVertexInput(attributes []vxpl.VertexAttribute, bindings []vxpl.VertexBinding) ([]gputypes.VertexBufferLayout, error) {
	ret := make([]gputypes.VertexBufferLayout, len(bindings))
	slot := map[uint32]int{}
	for i, b := range bindings {
		slot[b.Binding] = i
		ret[i] = gputypes.VertexBufferLayout{
			ArrayStride: uint64(b.Stride),
			StepMode:    gputypes.VertexStepModeVertex,
		}
		if b.InputRate == vxpl.VertexInputRateInstance {
			ret[i].StepMode = gputypes.VertexStepModeInstance
		}
	}
	for _, a := range attributes {
		i, ok := slot[a.Binding]
		if !ok {
			return nil, unsupported("attribute without binding", a.Binding)
		}
		f, err := convertVertexFormat(a.Format)
		if err != nil {
			return nil, err
		}
		ret[i].Attributes = append(ret[i].Attributes, gputypes.VertexAttribute{
			Format:         f,
			Offset:         uint64(a.Offset),
			ShaderLocation: a.Location,
		})
	}
	return ret, nil
}

func convertDepthStencil(s vxpl.DepthStencilState) (hal.DepthStencilState, error) {
	ret := hal.DepthStencilState{
		DepthCompare:     gputypes.CompareFunctionAlways,
		StencilFront:     hal.StencilFaceState{Compare: gputypes.CompareFunctionAlways},
		StencilBack:      hal.StencilFaceState{Compare: gputypes.CompareFunctionAlways},
		StencilReadMask:  0xFF,
		StencilWriteMask: 0xFF,
	}
	var err error

	if s.DepthBoundsTestEnable {
		return ret, unsupported("depth bounds test", true)
	}
	if s.DepthTestEnable {
		ret.DepthWriteEnabled = s.DepthWriteEnable
		if ret.DepthCompare, err = convertCompareOp(s.DepthCompareOp); err != nil {
			return ret, err
		}
	}
	if s.StencilTestEnable {
		if s.Front.CompareMask != s.Back.CompareMask || s.Front.WriteMask != s.Back.WriteMask {
			return ret, unsupported("per face stencil masks", true)
		}
		if ret.StencilFront, err = convertStencilFace(s.Front); err != nil {
			return ret, err
		}
		if ret.StencilBack, err = convertStencilFace(s.Back); err != nil {
			return ret, err
		}
		ret.StencilReadMask = s.Front.CompareMask
		ret.StencilWriteMask = s.Front.WriteMask
	}
	return ret, nil
}

/*
assemble merges four libraries ordered by vxpl.FragmentKind into one render
pipeline descriptor.
*/
func assemble(label string, layout hal.PipelineLayout, libs [4]*library) *hal.RenderPipelineDescriptor {
	vi := libs[vxpl.FragmentKindVertexInput]
	pr := libs[vxpl.FragmentKindPreRasterization]
	fs := libs[vxpl.FragmentKindFragmentShading]
	fo := libs[vxpl.FragmentKindFragmentOutput]

	desc := &hal.RenderPipelineDescriptor{
		Label:  label,
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     pr.vertex.module,
			EntryPoint: pr.vertex.entryPoint,
			Buffers:    vi.buffers,
		},
		Primitive: gputypes.PrimitiveState{
			Topology:       vi.topology,
			FrontFace:      pr.frontFace,
			CullMode:       pr.cullMode,
			UnclippedDepth: pr.unclipped,
		},
		Multisample: fo.multisample,
		Fragment: &hal.FragmentState{
			Module:     fs.fragment.module,
			EntryPoint: fs.fragment.entryPoint,
			Targets:    fo.targets,
		},
	}
	if vi.restartIndex {
		f := gputypes.IndexFormatUint32
		desc.Primitive.StripIndexFormat = &f
	}

	// depth state without a depth attachment is dropped, like a pipeline with no depth format
	if fo.depthFormat != gputypes.TextureFormatUndefined {
		ds := fs.depthStencil
		ds.Format = fo.depthFormat
		ds.DepthBias = pr.depthBias.constant
		ds.DepthBiasSlopeScale = pr.depthBias.slopeScale
		ds.DepthBiasClamp = pr.depthBias.clamp
		desc.DepthStencil = &ds
	}
	return desc
}
