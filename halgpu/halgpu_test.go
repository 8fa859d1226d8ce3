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

package halgpu

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goarrg.com/rhi/vxpl"
)

type fakeResource struct{ label string }

func (*fakeResource) Destroy() {}

// fakeHAL implements the few hal.Device methods vxpl needs, the rest panic.
type fakeHAL struct {
	hal.Device

	mtx          sync.Mutex
	live         int
	descriptors  []*hal.RenderPipelineDescriptor
	failPipeline error
}

func (f *fakeHAL) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	if len(desc.Source.SPIRV) == 0 {
		return nil, errors.New("empty module")
	}
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.live++
	return &fakeResource{label: desc.Label}, nil
}

func (f *fakeHAL) DestroyShaderModule(hal.ShaderModule) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.live--
}

func (f *fakeHAL) CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	if f.failPipeline != nil {
		return nil, f.failPipeline
	}
	f.live++
	f.descriptors = append(f.descriptors, desc)
	return &fakeResource{label: desc.Label}, nil
}

func (f *fakeHAL) DestroyRenderPipeline(hal.RenderPipeline) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.live--
}

func request(layout *vxpl.PipelineLayout) vxpl.GraphicsPipelineCreateInfo {
	return vxpl.GraphicsPipelineCreateInfo{
		Name:   "mesh",
		Layout: layout,
		Stages: []vxpl.ShaderStageInfo{
			{Stage: vxpl.ShaderStageVertex, Shader: &vxpl.Shader{ID: "mesh.vert", SPIRV: []uint32{0x07230203, 1}}},
			{Stage: vxpl.ShaderStageFragment, Shader: &vxpl.Shader{ID: "mesh.frag", SPIRV: []uint32{0x07230203, 2}}, EntryPoint: "fs_main"},
		},
		VertexInput: vxpl.VertexInputState{
			Attributes: []vxpl.VertexAttribute{
				{Location: 0, Binding: 0, Format: vxpl.FormatR32G32B32Sfloat},
				{Location: 1, Binding: 1, Format: vxpl.FormatR8G8B8A8Unorm},
			},
			Bindings: []vxpl.VertexBinding{
				{Binding: 0, Stride: 12, InputRate: vxpl.VertexInputRateVertex},
				{Binding: 1, Stride: 4, InputRate: vxpl.VertexInputRateInstance},
			},
		},
		InputAssembly: vxpl.InputAssemblyState{Topology: vxpl.VertexTopologyTriangleStrip, PrimitiveRestartEnable: true},
		Viewport:      vxpl.ViewportState{ViewportCount: 1, ScissorCount: 1},
		Rasterization: vxpl.RasterizationState{CullMode: vxpl.CullModeBack, FrontFace: vxpl.FrontFaceClockwise, LineWidth: 1},
		DepthStencil: vxpl.DepthStencilState{
			DepthTestEnable: true, DepthWriteEnable: true, DepthCompareOp: vxpl.CompareOpLess,
		},
		ColorBlendAttachments: []vxpl.ColorBlendAttachmentState{{
			BlendEnable:    true,
			Color:          vxpl.BlendEquation{Src: vxpl.BlendFactorSrcAlpha, Dst: vxpl.BlendFactorOneMinusSrcAlpha, Op: vxpl.BlendOpAdd},
			Alpha:          vxpl.BlendEquation{Src: vxpl.BlendFactorOne, Dst: vxpl.BlendFactorZero, Op: vxpl.BlendOpAdd},
			ColorWriteMask: vxpl.ColorComponentRGBA,
		}},
		DynamicStates: []vxpl.DynamicState{vxpl.DynamicStateViewport, vxpl.DynamicStateScissor},
		ColorFormats:  []vxpl.Format{vxpl.FormatB8G8R8A8Unorm, vxpl.FormatR16G16B16A16Sfloat},
		DepthFormat:   vxpl.FormatD32Sfloat,
	}
}

func setup(t *testing.T) (*fakeHAL, *Device, *vxpl.Context, *vxpl.PipelineLayout) {
	t.Helper()
	fake := &fakeHAL{}
	dev := New(fake)
	ctx := vxpl.NewContext(dev, vxpl.Config{Name: "halgpu"})
	layout := vxpl.NewPipelineLayout("mesh", dev.RegisterPipelineLayout(&fakeResource{label: "mesh"}))
	return fake, dev, ctx, layout
}

func TestLinkAssemblesRenderPipeline(t *testing.T) {
	fake, _, ctx, layout := setup(t)

	p, err := ctx.CreatePipeline(request(layout))
	require.NoError(t, err)
	require.Len(t, fake.descriptors, 1)

	desc := fake.descriptors[0]
	assert.Equal(t, "mesh", desc.Label)
	assert.Equal(t, "main", desc.Vertex.EntryPoint)
	require.Len(t, desc.Vertex.Buffers, 2)
	assert.Equal(t, uint64(12), desc.Vertex.Buffers[0].ArrayStride)
	assert.Equal(t, gputypes.VertexStepModeInstance, desc.Vertex.Buffers[1].StepMode)
	assert.Equal(t, []gputypes.VertexAttribute{{Format: gputypes.VertexFormatUnorm8x4, ShaderLocation: 1}}, desc.Vertex.Buffers[1].Attributes)

	assert.Equal(t, gputypes.PrimitiveTopologyTriangleStrip, desc.Primitive.Topology)
	require.NotNil(t, desc.Primitive.StripIndexFormat)
	assert.Equal(t, gputypes.IndexFormatUint32, *desc.Primitive.StripIndexFormat)
	assert.Equal(t, gputypes.CullModeBack, desc.Primitive.CullMode)
	assert.Equal(t, gputypes.FrontFaceCW, desc.Primitive.FrontFace)

	require.NotNil(t, desc.DepthStencil)
	assert.Equal(t, gputypes.TextureFormatDepth32Float, desc.DepthStencil.Format)
	assert.Equal(t, gputypes.CompareFunctionLess, desc.DepthStencil.DepthCompare)
	assert.True(t, desc.DepthStencil.DepthWriteEnabled)

	require.NotNil(t, desc.Fragment)
	assert.Equal(t, "fs_main", desc.Fragment.EntryPoint)
	require.Len(t, desc.Fragment.Targets, 2)
	assert.Equal(t, gputypes.TextureFormatBGRA8Unorm, desc.Fragment.Targets[0].Format)
	require.NotNil(t, desc.Fragment.Targets[0].Blend)
	assert.Equal(t, gputypes.BlendFactorSrcAlpha, desc.Fragment.Targets[0].Blend.Color.SrcFactor)
	assert.Equal(t, gputypes.ColorWriteMaskAll, desc.Fragment.Targets[0].WriteMask)
	assert.Nil(t, desc.Fragment.Targets[1].Blend, "padded attachment blends nothing")
	assert.Equal(t, uint32(1), desc.Multisample.Count)

	p.Destroy()
	ctx.Destroy()
	assert.Zero(t, fake.live)
}

func TestUnsupportedState(t *testing.T) {
	_, _, ctx, layout := setup(t)
	defer ctx.Destroy()

	info := request(layout)
	info.Rasterization.PolygonMode = vxpl.PolygonModeLine
	_, err := ctx.CreatePipeline(info)

	var compileErr vxpl.ErrorFragmentCompilationFailed
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, vxpl.FragmentKindPreRasterization, compileErr.Kind)
	assert.Equal(t, vxpl.ResultErrorFeatureNotPresent, compileErr.Result)
}

func TestLinkFailure(t *testing.T) {
	fake, _, ctx, layout := setup(t)
	defer ctx.Destroy()

	fake.failPipeline = hal.ErrDeviceOutOfMemory
	_, err := ctx.CreatePipeline(request(layout))

	var linkErr vxpl.ErrorDriverLinkFailed
	require.True(t, errors.As(err, &linkErr))
	assert.Equal(t, vxpl.ResultErrorOutOfDeviceMemory, linkErr.Result)
}

func TestUnregisteredLayout(t *testing.T) {
	_, _, ctx, _ := setup(t)
	defer ctx.Destroy()

	_, err := ctx.CreatePipeline(request(vxpl.NewPipelineLayout("stray", 0x9999)))
	var linkErr vxpl.ErrorDriverLinkFailed
	require.True(t, errors.As(err, &linkErr))
	assert.Equal(t, vxpl.ResultErrorValidationFailed, linkErr.Result)
}

func TestConvertDepthStencilFormat(t *testing.T) {
	tests := []struct {
		depth, stencil vxpl.Format
		want           gputypes.TextureFormat
		ok             bool
	}{
		{vxpl.FormatUndefined, vxpl.FormatUndefined, gputypes.TextureFormatUndefined, true},
		{vxpl.FormatD32Sfloat, vxpl.FormatUndefined, gputypes.TextureFormatDepth32Float, true},
		{vxpl.FormatUndefined, vxpl.FormatS8Uint, gputypes.TextureFormatStencil8, true},
		{vxpl.FormatD24UnormS8Uint, vxpl.FormatD24UnormS8Uint, gputypes.TextureFormatDepth24PlusStencil8, true},
		{vxpl.FormatD32Sfloat, vxpl.FormatS8Uint, 0, false},
		{vxpl.FormatD16UnormS8Uint, vxpl.FormatUndefined, 0, false},
	}
	for _, test := range tests {
		got, err := convertDepthStencilFormat(test.depth, test.stencil)
		if !test.ok {
			assert.ErrorIs(t, err, ErrorUnsupported{}, "%s/%s", test.depth, test.stencil)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.want, got)
	}
}

func TestConvertUnsupported(t *testing.T) {
	_, err := convertTopology(vxpl.VertexTopologyTriangleFan)
	assert.ErrorIs(t, err, ErrorUnsupported{})
	_, err = convertBlendFactor(vxpl.BlendFactorConstantAlpha)
	assert.ErrorIs(t, err, ErrorUnsupported{})
	_, err = convertCullMode(vxpl.CullModeFrontAndBack)
	assert.ErrorIs(t, err, ErrorUnsupported{})
	_, err = convertMultisample(vxpl.MultisampleState{RasterizationSamples: vxpl.SampleCount8})
	assert.ErrorIs(t, err, ErrorUnsupported{})
	assert.ErrorIs(t, checkDynamicStates([]vxpl.DynamicState{vxpl.DynamicStateLineWidth}), ErrorUnsupported{})
	assert.NoError(t, checkDynamicStates([]vxpl.DynamicState{vxpl.DynamicStateBlendConstants}))
}

func TestConvertColorWriteMask(t *testing.T) {
	assert.Equal(t, gputypes.ColorWriteMaskAll, convertColorWriteMask(vxpl.ColorComponentRGBA))
	assert.Equal(t, gputypes.ColorWriteMaskRed|gputypes.ColorWriteMaskAlpha,
		convertColorWriteMask(vxpl.ColorComponentR|vxpl.ColorComponentA))
	assert.Equal(t, gputypes.ColorWriteMaskNone, convertColorWriteMask(0))
}
