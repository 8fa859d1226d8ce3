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
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"goarrg.com/debug"

	"goarrg.com/rhi/vxpl"
)

type ErrorUnsupported struct {
	What string
}

func (ErrorUnsupported) Is(target error) bool {
	_, ok := target.(ErrorUnsupported)
	return ok
}

func (e ErrorUnsupported) Error() string {
	return "Unsupported: " + e.What
}

func unsupported(what string, v any) error {
	return debug.ErrorWrapf(ErrorUnsupported{What: what}, "%v", v)
}

func convertTopology(t vxpl.VertexTopology) (gputypes.PrimitiveTopology, error) {
	switch t {
	case vxpl.VertexTopologyPointList:
		return gputypes.PrimitiveTopologyPointList, nil
	case vxpl.VertexTopologyLineList:
		return gputypes.PrimitiveTopologyLineList, nil
	case vxpl.VertexTopologyLineStrip:
		return gputypes.PrimitiveTopologyLineStrip, nil
	case vxpl.VertexTopologyTriangleList:
		return gputypes.PrimitiveTopologyTriangleList, nil
	case vxpl.VertexTopologyTriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip, nil

	default:
		return 0, unsupported("topology", t)
	}
}

func isStrip(t gputypes.PrimitiveTopology) bool {
	return t == gputypes.PrimitiveTopologyLineStrip || t == gputypes.PrimitiveTopologyTriangleStrip
}

func convertVertexFormat(f vxpl.Format) (gputypes.VertexFormat, error) {
	switch f {
	case vxpl.FormatR8G8Unorm:
		return gputypes.VertexFormatUnorm8x2, nil
	case vxpl.FormatR8G8B8A8Unorm:
		return gputypes.VertexFormatUnorm8x4, nil
	case vxpl.FormatR8G8B8A8Snorm:
		return gputypes.VertexFormatSnorm8x4, nil
	case vxpl.FormatR8G8B8A8Uint:
		return gputypes.VertexFormatUint8x4, nil
	case vxpl.FormatA2B10G10R10UnormPack32:
		return gputypes.VertexFormatUnorm1010102, nil
	case vxpl.FormatR16G16Sfloat:
		return gputypes.VertexFormatFloat16x2, nil
	case vxpl.FormatR16G16B16A16Sfloat:
		return gputypes.VertexFormatFloat16x4, nil
	case vxpl.FormatR32Uint:
		return gputypes.VertexFormatUint32, nil
	case vxpl.FormatR32Sint:
		return gputypes.VertexFormatSint32, nil
	case vxpl.FormatR32Sfloat:
		return gputypes.VertexFormatFloat32, nil
	case vxpl.FormatR32G32Uint:
		return gputypes.VertexFormatUint32x2, nil
	case vxpl.FormatR32G32Sint:
		return gputypes.VertexFormatSint32x2, nil
	case vxpl.FormatR32G32Sfloat:
		return gputypes.VertexFormatFloat32x2, nil
	case vxpl.FormatR32G32B32Uint:
		return gputypes.VertexFormatUint32x3, nil
	case vxpl.FormatR32G32B32Sint:
		return gputypes.VertexFormatSint32x3, nil
	case vxpl.FormatR32G32B32Sfloat:
		return gputypes.VertexFormatFloat32x3, nil
	case vxpl.FormatR32G32B32A32Uint:
		return gputypes.VertexFormatUint32x4, nil
	case vxpl.FormatR32G32B32A32Sint:
		return gputypes.VertexFormatSint32x4, nil
	case vxpl.FormatR32G32B32A32Sfloat:
		return gputypes.VertexFormatFloat32x4, nil

	default:
		return 0, unsupported("vertex format", f)
	}
}

func convertTextureFormat(f vxpl.Format) (gputypes.TextureFormat, error) {
	switch f {
	case vxpl.FormatR8Unorm:
		return gputypes.TextureFormatR8Unorm, nil
	case vxpl.FormatR8G8Unorm:
		return gputypes.TextureFormatRG8Unorm, nil
	case vxpl.FormatR8G8B8A8Unorm:
		return gputypes.TextureFormatRGBA8Unorm, nil
	case vxpl.FormatR8G8B8A8Snorm:
		return gputypes.TextureFormatRGBA8Snorm, nil
	case vxpl.FormatR8G8B8A8Uint:
		return gputypes.TextureFormatRGBA8Uint, nil
	case vxpl.FormatR8G8B8A8Srgb:
		return gputypes.TextureFormatRGBA8UnormSrgb, nil
	case vxpl.FormatB8G8R8A8Unorm:
		return gputypes.TextureFormatBGRA8Unorm, nil
	case vxpl.FormatB8G8R8A8Srgb:
		return gputypes.TextureFormatBGRA8UnormSrgb, nil
	case vxpl.FormatA2B10G10R10UnormPack32:
		return gputypes.TextureFormatRGB10A2Unorm, nil
	case vxpl.FormatR16G16Sfloat:
		return gputypes.TextureFormatRG16Float, nil
	case vxpl.FormatR16G16B16A16Sfloat:
		return gputypes.TextureFormatRGBA16Float, nil
	case vxpl.FormatR32Uint:
		return gputypes.TextureFormatR32Uint, nil
	case vxpl.FormatR32Sint:
		return gputypes.TextureFormatR32Sint, nil
	case vxpl.FormatR32Sfloat:
		return gputypes.TextureFormatR32Float, nil
	case vxpl.FormatR32G32Uint:
		return gputypes.TextureFormatRG32Uint, nil
	case vxpl.FormatR32G32Sint:
		return gputypes.TextureFormatRG32Sint, nil
	case vxpl.FormatR32G32Sfloat:
		return gputypes.TextureFormatRG32Float, nil
	case vxpl.FormatR32G32B32A32Uint:
		return gputypes.TextureFormatRGBA32Uint, nil
	case vxpl.FormatR32G32B32A32Sint:
		return gputypes.TextureFormatRGBA32Sint, nil
	case vxpl.FormatR32G32B32A32Sfloat:
		return gputypes.TextureFormatRGBA32Float, nil
	case vxpl.FormatB10G11R11UfloatPack32:
		return gputypes.TextureFormatRG11B10Ufloat, nil
	case vxpl.FormatD16Unorm:
		return gputypes.TextureFormatDepth16Unorm, nil
	case vxpl.FormatX8D24UnormPack32:
		return gputypes.TextureFormatDepth24Plus, nil
	case vxpl.FormatD32Sfloat:
		return gputypes.TextureFormatDepth32Float, nil
	case vxpl.FormatS8Uint:
		return gputypes.TextureFormatStencil8, nil
	case vxpl.FormatD24UnormS8Uint:
		return gputypes.TextureFormatDepth24PlusStencil8, nil
	case vxpl.FormatD32SfloatS8Uint:
		return gputypes.TextureFormatDepth32FloatStencil8, nil

	default:
		return 0, unsupported("texture format", f)
	}
}

/*
convertDepthStencilFormat merges the separate depth and stencil attachment
formats into the single attachment gputypes knows about. Both being set is
only valid if they name the same combined format.
*/
func convertDepthStencilFormat(depth, stencil vxpl.Format) (gputypes.TextureFormat, error) {
	switch {
	case depth == vxpl.FormatUndefined && stencil == vxpl.FormatUndefined:
		return gputypes.TextureFormatUndefined, nil
	case stencil == vxpl.FormatUndefined:
		return convertTextureFormat(depth)
	case depth == vxpl.FormatUndefined:
		return convertTextureFormat(stencil)
	case depth == stencil:
		return convertTextureFormat(depth)

	default:
		return 0, unsupported("separate depth and stencil formats", depth.String()+"/"+stencil.String())
	}
}

func convertCompareOp(op vxpl.CompareOp) (gputypes.CompareFunction, error) {
	switch op {
	case vxpl.CompareOpNever:
		return gputypes.CompareFunctionNever, nil
	case vxpl.CompareOpLess:
		return gputypes.CompareFunctionLess, nil
	case vxpl.CompareOpEqual:
		return gputypes.CompareFunctionEqual, nil
	case vxpl.CompareOpLessOrEqual:
		return gputypes.CompareFunctionLessEqual, nil
	case vxpl.CompareOpGreater:
		return gputypes.CompareFunctionGreater, nil
	case vxpl.CompareOpNotEqual:
		return gputypes.CompareFunctionNotEqual, nil
	case vxpl.CompareOpGreaterOrEqual:
		return gputypes.CompareFunctionGreaterEqual, nil
	case vxpl.CompareOpAlways:
		return gputypes.CompareFunctionAlways, nil

	default:
		return 0, unsupported("compare op", op)
	}
}

func convertStencilOp(op vxpl.StencilOp) (hal.StencilOperation, error) {
	switch op {
	case vxpl.StencilOpKeep:
		return hal.StencilOperationKeep, nil
	case vxpl.StencilOpZero:
		return hal.StencilOperationZero, nil
	case vxpl.StencilOpReplace:
		return hal.StencilOperationReplace, nil
	case vxpl.StencilOpInvert:
		return hal.StencilOperationInvert, nil
	case vxpl.StencilOpIncrementAndClamp:
		return hal.StencilOperationIncrementClamp, nil
	case vxpl.StencilOpDecrementAndClamp:
		return hal.StencilOperationDecrementClamp, nil
	case vxpl.StencilOpIncrementAndWrap:
		return hal.StencilOperationIncrementWrap, nil
	case vxpl.StencilOpDecrementAndWrap:
		return hal.StencilOperationDecrementWrap, nil

	default:
		return 0, unsupported("stencil op", op)
	}
}

func convertStencilFace(s vxpl.StencilOpState) (hal.StencilFaceState, error) {
	var ret hal.StencilFaceState
	var err error
	if ret.Compare, err = convertCompareOp(s.CompareOp); err != nil {
		return ret, err
	}
	if ret.FailOp, err = convertStencilOp(s.FailOp); err != nil {
		return ret, err
	}
	if ret.DepthFailOp, err = convertStencilOp(s.DepthFailOp); err != nil {
		return ret, err
	}
	if ret.PassOp, err = convertStencilOp(s.PassOp); err != nil {
		return ret, err
	}
	return ret, nil
}

func convertBlendFactor(f vxpl.BlendFactor) (gputypes.BlendFactor, error) {
	switch f {
	case vxpl.BlendFactorZero:
		return gputypes.BlendFactorZero, nil
	case vxpl.BlendFactorOne:
		return gputypes.BlendFactorOne, nil
	case vxpl.BlendFactorSrcColor:
		return gputypes.BlendFactorSrc, nil
	case vxpl.BlendFactorOneMinusSrcColor:
		return gputypes.BlendFactorOneMinusSrc, nil
	case vxpl.BlendFactorDstColor:
		return gputypes.BlendFactorDst, nil
	case vxpl.BlendFactorOneMinusDstColor:
		return gputypes.BlendFactorOneMinusDst, nil
	case vxpl.BlendFactorSrcAlpha:
		return gputypes.BlendFactorSrcAlpha, nil
	case vxpl.BlendFactorOneMinusSrcAlpha:
		return gputypes.BlendFactorOneMinusSrcAlpha, nil
	case vxpl.BlendFactorDstAlpha:
		return gputypes.BlendFactorDstAlpha, nil
	case vxpl.BlendFactorOneMinusDstAlpha:
		return gputypes.BlendFactorOneMinusDstAlpha, nil
	case vxpl.BlendFactorConstantColor:
		return gputypes.BlendFactorConstant, nil
	case vxpl.BlendFactorOneMinusConstantColor:
		return gputypes.BlendFactorOneMinusConstant, nil
	case vxpl.BlendFactorSrcAlphaSaturate:
		return gputypes.BlendFactorSrcAlphaSaturated, nil

	default:
		return 0, unsupported("blend factor", f)
	}
}

func convertBlendOp(op vxpl.BlendOp) (gputypes.BlendOperation, error) {
	switch op {
	case vxpl.BlendOpAdd:
		return gputypes.BlendOperationAdd, nil
	case vxpl.BlendOpSubtract:
		return gputypes.BlendOperationSubtract, nil
	case vxpl.BlendOpReverseSubtract:
		return gputypes.BlendOperationReverseSubtract, nil
	case vxpl.BlendOpMin:
		return gputypes.BlendOperationMin, nil
	case vxpl.BlendOpMax:
		return gputypes.BlendOperationMax, nil

	default:
		return 0, unsupported("blend op", op)
	}
}

func convertBlendEquation(e vxpl.BlendEquation) (gputypes.BlendComponent, error) {
	var ret gputypes.BlendComponent
	var err error
	if ret.SrcFactor, err = convertBlendFactor(e.Src); err != nil {
		return ret, err
	}
	if ret.DstFactor, err = convertBlendFactor(e.Dst); err != nil {
		return ret, err
	}
	if ret.Operation, err = convertBlendOp(e.Op); err != nil {
		return ret, err
	}
	return ret, nil
}

func convertColorWriteMask(m vxpl.ColorComponentFlags) gputypes.ColorWriteMask {
	ret := gputypes.ColorWriteMaskNone
	if m&vxpl.ColorComponentR != 0 {
		ret |= gputypes.ColorWriteMaskRed
	}
	if m&vxpl.ColorComponentG != 0 {
		ret |= gputypes.ColorWriteMaskGreen
	}
	if m&vxpl.ColorComponentB != 0 {
		ret |= gputypes.ColorWriteMaskBlue
	}
	if m&vxpl.ColorComponentA != 0 {
		ret |= gputypes.ColorWriteMaskAlpha
	}
	return ret
}

func convertColorTarget(format vxpl.Format, a vxpl.ColorBlendAttachmentState) (gputypes.ColorTargetState, error) {
	ret := gputypes.ColorTargetState{WriteMask: convertColorWriteMask(a.ColorWriteMask)}
	var err error
	if ret.Format, err = convertTextureFormat(format); err != nil {
		return ret, err
	}
	if a.BlendEnable {
		blend := gputypes.BlendState{}
		if blend.Color, err = convertBlendEquation(a.Color); err != nil {
			return ret, err
		}
		if blend.Alpha, err = convertBlendEquation(a.Alpha); err != nil {
			return ret, err
		}
		ret.Blend = &blend
	}
	return ret, nil
}

func convertCullMode(m vxpl.CullMode) (gputypes.CullMode, error) {
	switch m {
	case vxpl.CullModeNone:
		return gputypes.CullModeNone, nil
	case vxpl.CullModeFront:
		return gputypes.CullModeFront, nil
	case vxpl.CullModeBack:
		return gputypes.CullModeBack, nil

	default:
		return 0, unsupported("cull mode", m)
	}
}

func convertFrontFace(f vxpl.FrontFace) gputypes.FrontFace {
	if f == vxpl.FrontFaceClockwise {
		return gputypes.FrontFaceCW
	}
	return gputypes.FrontFaceCCW
}

func convertMultisample(s vxpl.MultisampleState) (gputypes.MultisampleState, error) {
	ret := gputypes.DefaultMultisampleState()
	if s.SampleShadingEnable {
		return ret, unsupported("sample shading", s.MinSampleShading)
	}
	if s.AlphaToOneEnable {
		return ret, unsupported("alpha to one", true)
	}
	switch s.RasterizationSamples {
	case 0, vxpl.SampleCount1:
	case vxpl.SampleCount4:
		ret.Count = 4

	default:
		return ret, unsupported("sample count", s.RasterizationSamples)
	}
	if len(s.SampleMask) > 0 {
		ret.Mask = uint64(s.SampleMask[0])
	}
	ret.AlphaToCoverageEnabled = s.AlphaToCoverageEnable
	return ret, nil
}

// dynamic states that are always dynamic in a render pass.
func checkDynamicStates(states []vxpl.DynamicState) error {
	for _, s := range states {
		switch s {
		case vxpl.DynamicStateViewport, vxpl.DynamicStateScissor,
			vxpl.DynamicStateBlendConstants, vxpl.DynamicStateStencilReference:

		default:
			return unsupported("dynamic state", s)
		}
	}
	return nil
}
