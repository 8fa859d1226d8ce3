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
	"fmt"
	"slices"
	"strings"

	"goarrg.com/debug"
	"goarrg.com/rhi/vxpl/internal/vk"
)

func unmarshalEnum[E fmt.Stringer](text []byte, values []E, target *E) error {
	s := strings.TrimSpace(string(text))
	for _, v := range values {
		if strings.EqualFold(v.String(), s) {
			*target = v
			return nil
		}
	}
	return debug.Errorf("Unknown %T: %q", *target, s)
}

type ShaderStage uint32

const (
	ShaderStageVertex                 ShaderStage = vk.SHADER_STAGE_VERTEX_BIT
	ShaderStageTessellationControl    ShaderStage = vk.SHADER_STAGE_TESSELLATION_CONTROL_BIT
	ShaderStageTessellationEvaluation ShaderStage = vk.SHADER_STAGE_TESSELLATION_EVALUATION_BIT
	ShaderStageGeometry               ShaderStage = vk.SHADER_STAGE_GEOMETRY_BIT
	ShaderStageFragment               ShaderStage = vk.SHADER_STAGE_FRAGMENT_BIT
	ShaderStageCompute                ShaderStage = vk.SHADER_STAGE_COMPUTE_BIT
	ShaderStageTask                   ShaderStage = vk.SHADER_STAGE_TASK_BIT_EXT
	ShaderStageMesh                   ShaderStage = vk.SHADER_STAGE_MESH_BIT_EXT
)

var shaderStages = []ShaderStage{
	ShaderStageVertex, ShaderStageTessellationControl, ShaderStageTessellationEvaluation,
	ShaderStageGeometry, ShaderStageFragment, ShaderStageCompute, ShaderStageTask, ShaderStageMesh,
}

func (s ShaderStage) String() string {
	switch s {
	case ShaderStageVertex:
		return "Vertex"
	case ShaderStageTessellationControl:
		return "TessellationControl"
	case ShaderStageTessellationEvaluation:
		return "TessellationEvaluation"
	case ShaderStageGeometry:
		return "Geometry"
	case ShaderStageFragment:
		return "Fragment"
	case ShaderStageCompute:
		return "Compute"
	case ShaderStageTask:
		return "Task"
	case ShaderStageMesh:
		return "Mesh"

	default:
		abort("Unknown ShaderStage: %d", s)
		return ""
	}
}

func (s *ShaderStage) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, shaderStages, s)
}

// preRasterization reports whether the stage runs before rasterization,
// these are the stages a pre-rasterization fragment may hold.
func (s ShaderStage) valid() bool {
	return slices.Contains(shaderStages, s)
}

func (s ShaderStage) preRasterization() bool {
	switch s {
	case ShaderStageVertex, ShaderStageTessellationControl, ShaderStageTessellationEvaluation,
		ShaderStageGeometry, ShaderStageTask, ShaderStageMesh:
		return true
	}
	return false
}

type VertexTopology uint32

const (
	VertexTopologyPointList                  VertexTopology = vk.PRIMITIVE_TOPOLOGY_POINT_LIST
	VertexTopologyLineList                   VertexTopology = vk.PRIMITIVE_TOPOLOGY_LINE_LIST
	VertexTopologyLineStrip                  VertexTopology = vk.PRIMITIVE_TOPOLOGY_LINE_STRIP
	VertexTopologyTriangleList               VertexTopology = vk.PRIMITIVE_TOPOLOGY_TRIANGLE_LIST
	VertexTopologyTriangleStrip              VertexTopology = vk.PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP
	VertexTopologyTriangleFan                VertexTopology = vk.PRIMITIVE_TOPOLOGY_TRIANGLE_FAN
	VertexTopologyLineListWithAdjacency      VertexTopology = vk.PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY
	VertexTopologyLineStripWithAdjacency     VertexTopology = vk.PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY
	VertexTopologyTriangleListWithAdjacency  VertexTopology = vk.PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY
	VertexTopologyTriangleStripWithAdjacency VertexTopology = vk.PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY
	VertexTopologyPatchList                  VertexTopology = vk.PRIMITIVE_TOPOLOGY_PATCH_LIST
)

var vertexTopologies = []VertexTopology{
	VertexTopologyPointList, VertexTopologyLineList, VertexTopologyLineStrip,
	VertexTopologyTriangleList, VertexTopologyTriangleStrip, VertexTopologyTriangleFan,
	VertexTopologyLineListWithAdjacency, VertexTopologyLineStripWithAdjacency,
	VertexTopologyTriangleListWithAdjacency, VertexTopologyTriangleStripWithAdjacency,
	VertexTopologyPatchList,
}

func (t VertexTopology) String() string {
	switch t {
	case VertexTopologyPointList:
		return "PointList"
	case VertexTopologyLineList:
		return "LineList"
	case VertexTopologyLineStrip:
		return "LineStrip"
	case VertexTopologyTriangleList:
		return "TriangleList"
	case VertexTopologyTriangleStrip:
		return "TriangleStrip"
	case VertexTopologyTriangleFan:
		return "TriangleFan"
	case VertexTopologyLineListWithAdjacency:
		return "LineListWithAdjacency"
	case VertexTopologyLineStripWithAdjacency:
		return "LineStripWithAdjacency"
	case VertexTopologyTriangleListWithAdjacency:
		return "TriangleListWithAdjacency"
	case VertexTopologyTriangleStripWithAdjacency:
		return "TriangleStripWithAdjacency"
	case VertexTopologyPatchList:
		return "PatchList"

	default:
		abort("Unknown VertexTopology: %d", t)
		return ""
	}
}

func (t *VertexTopology) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, vertexTopologies, t)
}

type VertexInputRate uint32

const (
	VertexInputRateVertex   VertexInputRate = vk.VERTEX_INPUT_RATE_VERTEX
	VertexInputRateInstance VertexInputRate = vk.VERTEX_INPUT_RATE_INSTANCE
)

func (r VertexInputRate) String() string {
	switch r {
	case VertexInputRateVertex:
		return "Vertex"
	case VertexInputRateInstance:
		return "Instance"

	default:
		abort("Unknown VertexInputRate: %d", r)
		return ""
	}
}

func (r *VertexInputRate) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, []VertexInputRate{VertexInputRateVertex, VertexInputRateInstance}, r)
}

type PolygonMode uint32

const (
	PolygonModeFill  PolygonMode = vk.POLYGON_MODE_FILL
	PolygonModeLine  PolygonMode = vk.POLYGON_MODE_LINE
	PolygonModePoint PolygonMode = vk.POLYGON_MODE_POINT
)

func (m PolygonMode) String() string {
	switch m {
	case PolygonModeFill:
		return "Fill"
	case PolygonModeLine:
		return "Line"
	case PolygonModePoint:
		return "Point"

	default:
		abort("Unknown PolygonMode: %d", m)
		return ""
	}
}

func (m *PolygonMode) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, []PolygonMode{PolygonModeFill, PolygonModeLine, PolygonModePoint}, m)
}

type CullMode uint32

const (
	CullModeNone         CullMode = vk.CULL_MODE_NONE
	CullModeFront        CullMode = vk.CULL_MODE_FRONT_BIT
	CullModeBack         CullMode = vk.CULL_MODE_BACK_BIT
	CullModeFrontAndBack CullMode = vk.CULL_MODE_FRONT_AND_BACK
)

func (m CullMode) String() string {
	switch m {
	case CullModeNone:
		return "None"
	case CullModeFront:
		return "Front"
	case CullModeBack:
		return "Back"
	case CullModeFrontAndBack:
		return "FrontAndBack"

	default:
		abort("Unknown CullMode: %d", m)
		return ""
	}
}

func (m *CullMode) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, []CullMode{CullModeNone, CullModeFront, CullModeBack, CullModeFrontAndBack}, m)
}

type FrontFace uint32

const (
	FrontFaceCounterClockwise FrontFace = vk.FRONT_FACE_COUNTER_CLOCKWISE
	FrontFaceClockwise        FrontFace = vk.FRONT_FACE_CLOCKWISE
)

func (f FrontFace) String() string {
	switch f {
	case FrontFaceCounterClockwise:
		return "CounterClockwise"
	case FrontFaceClockwise:
		return "Clockwise"

	default:
		abort("Unknown FrontFace: %d", f)
		return ""
	}
}

func (f *FrontFace) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, []FrontFace{FrontFaceCounterClockwise, FrontFaceClockwise}, f)
}

type CompareOp uint32

const (
	CompareOpNever          CompareOp = vk.COMPARE_OP_NEVER
	CompareOpLess           CompareOp = vk.COMPARE_OP_LESS
	CompareOpEqual          CompareOp = vk.COMPARE_OP_EQUAL
	CompareOpLessOrEqual    CompareOp = vk.COMPARE_OP_LESS_OR_EQUAL
	CompareOpGreater        CompareOp = vk.COMPARE_OP_GREATER
	CompareOpNotEqual       CompareOp = vk.COMPARE_OP_NOT_EQUAL
	CompareOpGreaterOrEqual CompareOp = vk.COMPARE_OP_GREATER_OR_EQUAL
	CompareOpAlways         CompareOp = vk.COMPARE_OP_ALWAYS
)

var compareOps = []CompareOp{
	CompareOpNever, CompareOpLess, CompareOpEqual, CompareOpLessOrEqual,
	CompareOpGreater, CompareOpNotEqual, CompareOpGreaterOrEqual, CompareOpAlways,
}

func (c CompareOp) String() string {
	switch c {
	case CompareOpNever:
		return "Never"
	case CompareOpLess:
		return "Less"
	case CompareOpEqual:
		return "Equal"
	case CompareOpLessOrEqual:
		return "LessOrEqual"
	case CompareOpGreater:
		return "Greater"
	case CompareOpNotEqual:
		return "NotEqual"
	case CompareOpGreaterOrEqual:
		return "GreaterOrEqual"
	case CompareOpAlways:
		return "Always"

	default:
		abort("Unknown CompareOp: %d", c)
		return ""
	}
}

func (c *CompareOp) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, compareOps, c)
}

type StencilOp uint32

const (
	StencilOpKeep              StencilOp = vk.STENCIL_OP_KEEP
	StencilOpZero              StencilOp = vk.STENCIL_OP_ZERO
	StencilOpReplace           StencilOp = vk.STENCIL_OP_REPLACE
	StencilOpIncrementAndClamp StencilOp = vk.STENCIL_OP_INCREMENT_AND_CLAMP
	StencilOpDecrementAndClamp StencilOp = vk.STENCIL_OP_DECREMENT_AND_CLAMP
	StencilOpInvert            StencilOp = vk.STENCIL_OP_INVERT
	StencilOpIncrementAndWrap  StencilOp = vk.STENCIL_OP_INCREMENT_AND_WRAP
	StencilOpDecrementAndWrap  StencilOp = vk.STENCIL_OP_DECREMENT_AND_WRAP
)

var stencilOps = []StencilOp{
	StencilOpKeep, StencilOpZero, StencilOpReplace, StencilOpIncrementAndClamp,
	StencilOpDecrementAndClamp, StencilOpInvert, StencilOpIncrementAndWrap, StencilOpDecrementAndWrap,
}

func (s StencilOp) String() string {
	switch s {
	case StencilOpKeep:
		return "Keep"
	case StencilOpZero:
		return "Zero"
	case StencilOpReplace:
		return "Replace"
	case StencilOpIncrementAndClamp:
		return "IncrementAndClamp"
	case StencilOpDecrementAndClamp:
		return "DecrementAndClamp"
	case StencilOpInvert:
		return "Invert"
	case StencilOpIncrementAndWrap:
		return "IncrementAndWrap"
	case StencilOpDecrementAndWrap:
		return "DecrementAndWrap"

	default:
		abort("Unknown StencilOp: %d", s)
		return ""
	}
}

func (s *StencilOp) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, stencilOps, s)
}

type BlendFactor uint32

const (
	BlendFactorZero                  BlendFactor = vk.BLEND_FACTOR_ZERO
	BlendFactorOne                   BlendFactor = vk.BLEND_FACTOR_ONE
	BlendFactorSrcColor              BlendFactor = vk.BLEND_FACTOR_SRC_COLOR
	BlendFactorOneMinusSrcColor      BlendFactor = vk.BLEND_FACTOR_ONE_MINUS_SRC_COLOR
	BlendFactorDstColor              BlendFactor = vk.BLEND_FACTOR_DST_COLOR
	BlendFactorOneMinusDstColor      BlendFactor = vk.BLEND_FACTOR_ONE_MINUS_DST_COLOR
	BlendFactorSrcAlpha              BlendFactor = vk.BLEND_FACTOR_SRC_ALPHA
	BlendFactorOneMinusSrcAlpha      BlendFactor = vk.BLEND_FACTOR_ONE_MINUS_SRC_ALPHA
	BlendFactorDstAlpha              BlendFactor = vk.BLEND_FACTOR_DST_ALPHA
	BlendFactorOneMinusDstAlpha      BlendFactor = vk.BLEND_FACTOR_ONE_MINUS_DST_ALPHA
	BlendFactorConstantColor         BlendFactor = vk.BLEND_FACTOR_CONSTANT_COLOR
	BlendFactorOneMinusConstantColor BlendFactor = vk.BLEND_FACTOR_ONE_MINUS_CONSTANT_COLOR
	BlendFactorConstantAlpha         BlendFactor = vk.BLEND_FACTOR_CONSTANT_ALPHA
	BlendFactorOneMinusConstantAlpha BlendFactor = vk.BLEND_FACTOR_ONE_MINUS_CONSTANT_ALPHA
	BlendFactorSrcAlphaSaturate      BlendFactor = vk.BLEND_FACTOR_SRC_ALPHA_SATURATE
)

var blendFactors = []BlendFactor{
	BlendFactorZero, BlendFactorOne, BlendFactorSrcColor, BlendFactorOneMinusSrcColor,
	BlendFactorDstColor, BlendFactorOneMinusDstColor, BlendFactorSrcAlpha, BlendFactorOneMinusSrcAlpha,
	BlendFactorDstAlpha, BlendFactorOneMinusDstAlpha, BlendFactorConstantColor, BlendFactorOneMinusConstantColor,
	BlendFactorConstantAlpha, BlendFactorOneMinusConstantAlpha, BlendFactorSrcAlphaSaturate,
}

func (f BlendFactor) String() string {
	switch f {
	case BlendFactorZero:
		return "Zero"
	case BlendFactorOne:
		return "One"
	case BlendFactorSrcColor:
		return "SrcColor"
	case BlendFactorOneMinusSrcColor:
		return "OneMinusSrcColor"
	case BlendFactorDstColor:
		return "DstColor"
	case BlendFactorOneMinusDstColor:
		return "OneMinusDstColor"
	case BlendFactorSrcAlpha:
		return "SrcAlpha"
	case BlendFactorOneMinusSrcAlpha:
		return "OneMinusSrcAlpha"
	case BlendFactorDstAlpha:
		return "DstAlpha"
	case BlendFactorOneMinusDstAlpha:
		return "OneMinusDstAlpha"
	case BlendFactorConstantColor:
		return "ConstantColor"
	case BlendFactorOneMinusConstantColor:
		return "OneMinusConstantColor"
	case BlendFactorConstantAlpha:
		return "ConstantAlpha"
	case BlendFactorOneMinusConstantAlpha:
		return "OneMinusConstantAlpha"
	case BlendFactorSrcAlphaSaturate:
		return "SrcAlphaSaturate"

	default:
		abort("Unknown BlendFactor: %d", f)
		return ""
	}
}

func (f *BlendFactor) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, blendFactors, f)
}

type BlendOp uint32

const (
	BlendOpAdd             BlendOp = vk.BLEND_OP_ADD
	BlendOpSubtract        BlendOp = vk.BLEND_OP_SUBTRACT
	BlendOpReverseSubtract BlendOp = vk.BLEND_OP_REVERSE_SUBTRACT
	BlendOpMin             BlendOp = vk.BLEND_OP_MIN
	BlendOpMax             BlendOp = vk.BLEND_OP_MAX
)

func (o BlendOp) String() string {
	switch o {
	case BlendOpAdd:
		return "Add"
	case BlendOpSubtract:
		return "Subtract"
	case BlendOpReverseSubtract:
		return "ReverseSubtract"
	case BlendOpMin:
		return "Min"
	case BlendOpMax:
		return "Max"

	default:
		abort("Unknown BlendOp: %d", o)
		return ""
	}
}

func (o *BlendOp) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, []BlendOp{BlendOpAdd, BlendOpSubtract, BlendOpReverseSubtract, BlendOpMin, BlendOpMax}, o)
}

type ColorComponentFlags uint32

const (
	ColorComponentR    ColorComponentFlags = vk.COLOR_COMPONENT_R_BIT
	ColorComponentG    ColorComponentFlags = vk.COLOR_COMPONENT_G_BIT
	ColorComponentB    ColorComponentFlags = vk.COLOR_COMPONENT_B_BIT
	ColorComponentA    ColorComponentFlags = vk.COLOR_COMPONENT_A_BIT
	ColorComponentRGBA                     = ColorComponentR | ColorComponentG | ColorComponentB | ColorComponentA
)

func (c ColorComponentFlags) String() string {
	str := ""

	if hasBits(c, ColorComponentR) {
		str += "R"
	}
	if hasBits(c, ColorComponentG) {
		str += "G"
	}
	if hasBits(c, ColorComponentB) {
		str += "B"
	}
	if hasBits(c, ColorComponentA) {
		str += "A"
	}
	if str == "" {
		return "None"
	}

	return str
}

// UnmarshalText accepts any combination of the letters RGBA, or "None".
func (c *ColorComponentFlags) UnmarshalText(text []byte) error {
	s := strings.ToUpper(strings.TrimSpace(string(text)))
	if s == "NONE" {
		*c = 0
		return nil
	}
	var flags ColorComponentFlags
	for _, r := range s {
		switch r {
		case 'R':
			flags |= ColorComponentR
		case 'G':
			flags |= ColorComponentG
		case 'B':
			flags |= ColorComponentB
		case 'A':
			flags |= ColorComponentA
		default:
			return debug.Errorf("Unknown ColorComponentFlags: %q", s)
		}
	}
	*c = flags
	return nil
}

type LogicOp uint32

const (
	LogicOpClear        LogicOp = vk.LOGIC_OP_CLEAR
	LogicOpAnd          LogicOp = vk.LOGIC_OP_AND
	LogicOpAndReverse   LogicOp = vk.LOGIC_OP_AND_REVERSE
	LogicOpCopy         LogicOp = vk.LOGIC_OP_COPY
	LogicOpAndInverted  LogicOp = vk.LOGIC_OP_AND_INVERTED
	LogicOpNoOp         LogicOp = vk.LOGIC_OP_NO_OP
	LogicOpXor          LogicOp = vk.LOGIC_OP_XOR
	LogicOpOr           LogicOp = vk.LOGIC_OP_OR
	LogicOpNor          LogicOp = vk.LOGIC_OP_NOR
	LogicOpEquivalent   LogicOp = vk.LOGIC_OP_EQUIVALENT
	LogicOpInvert       LogicOp = vk.LOGIC_OP_INVERT
	LogicOpOrReverse    LogicOp = vk.LOGIC_OP_OR_REVERSE
	LogicOpCopyInverted LogicOp = vk.LOGIC_OP_COPY_INVERTED
	LogicOpOrInverted   LogicOp = vk.LOGIC_OP_OR_INVERTED
	LogicOpNand         LogicOp = vk.LOGIC_OP_NAND
	LogicOpSet          LogicOp = vk.LOGIC_OP_SET
)

func (o LogicOp) String() string {
	switch o {
	case LogicOpClear:
		return "Clear"
	case LogicOpAnd:
		return "And"
	case LogicOpAndReverse:
		return "AndReverse"
	case LogicOpCopy:
		return "Copy"
	case LogicOpAndInverted:
		return "AndInverted"
	case LogicOpNoOp:
		return "NoOp"
	case LogicOpXor:
		return "Xor"
	case LogicOpOr:
		return "Or"
	case LogicOpNor:
		return "Nor"
	case LogicOpEquivalent:
		return "Equivalent"
	case LogicOpInvert:
		return "Invert"
	case LogicOpOrReverse:
		return "OrReverse"
	case LogicOpCopyInverted:
		return "CopyInverted"
	case LogicOpOrInverted:
		return "OrInverted"
	case LogicOpNand:
		return "Nand"
	case LogicOpSet:
		return "Set"

	default:
		abort("Unknown LogicOp: %d", o)
		return ""
	}
}

// SampleCount is the number of rasterization samples, it is one of the
// powers of two from 1 to 64.
type SampleCount uint32

const (
	SampleCount1  SampleCount = vk.SAMPLE_COUNT_1_BIT
	SampleCount2  SampleCount = vk.SAMPLE_COUNT_2_BIT
	SampleCount4  SampleCount = vk.SAMPLE_COUNT_4_BIT
	SampleCount8  SampleCount = vk.SAMPLE_COUNT_8_BIT
	SampleCount16 SampleCount = vk.SAMPLE_COUNT_16_BIT
	SampleCount32 SampleCount = vk.SAMPLE_COUNT_32_BIT
	SampleCount64 SampleCount = vk.SAMPLE_COUNT_64_BIT
)

func (s SampleCount) String() string {
	switch s {
	case SampleCount1, SampleCount2, SampleCount4, SampleCount8,
		SampleCount16, SampleCount32, SampleCount64:
		return fmt.Sprintf("x%d", uint32(s))

	default:
		abort("Unknown SampleCount: %d", s)
		return ""
	}
}

type DynamicState uint32

const (
	DynamicStateViewport               DynamicState = vk.DYNAMIC_STATE_VIEWPORT
	DynamicStateScissor                DynamicState = vk.DYNAMIC_STATE_SCISSOR
	DynamicStateLineWidth              DynamicState = vk.DYNAMIC_STATE_LINE_WIDTH
	DynamicStateDepthBias              DynamicState = vk.DYNAMIC_STATE_DEPTH_BIAS
	DynamicStateBlendConstants         DynamicState = vk.DYNAMIC_STATE_BLEND_CONSTANTS
	DynamicStateDepthBounds            DynamicState = vk.DYNAMIC_STATE_DEPTH_BOUNDS
	DynamicStateStencilCompareMask     DynamicState = vk.DYNAMIC_STATE_STENCIL_COMPARE_MASK
	DynamicStateStencilWriteMask       DynamicState = vk.DYNAMIC_STATE_STENCIL_WRITE_MASK
	DynamicStateStencilReference       DynamicState = vk.DYNAMIC_STATE_STENCIL_REFERENCE
	DynamicStateCullMode               DynamicState = vk.DYNAMIC_STATE_CULL_MODE
	DynamicStateFrontFace              DynamicState = vk.DYNAMIC_STATE_FRONT_FACE
	DynamicStatePrimitiveTopology      DynamicState = vk.DYNAMIC_STATE_PRIMITIVE_TOPOLOGY
	DynamicStateViewportWithCount      DynamicState = vk.DYNAMIC_STATE_VIEWPORT_WITH_COUNT
	DynamicStateScissorWithCount       DynamicState = vk.DYNAMIC_STATE_SCISSOR_WITH_COUNT
	DynamicStateDepthTestEnable        DynamicState = vk.DYNAMIC_STATE_DEPTH_TEST_ENABLE
	DynamicStateDepthWriteEnable       DynamicState = vk.DYNAMIC_STATE_DEPTH_WRITE_ENABLE
	DynamicStateDepthCompareOp         DynamicState = vk.DYNAMIC_STATE_DEPTH_COMPARE_OP
	DynamicStateStencilTestEnable      DynamicState = vk.DYNAMIC_STATE_STENCIL_TEST_ENABLE
	DynamicStateStencilOp              DynamicState = vk.DYNAMIC_STATE_STENCIL_OP
	DynamicStatePrimitiveRestartEnable DynamicState = vk.DYNAMIC_STATE_PRIMITIVE_RESTART_ENABLE
	DynamicStatePolygonMode            DynamicState = vk.DYNAMIC_STATE_POLYGON_MODE_EXT
	DynamicStateColorBlendEnable       DynamicState = vk.DYNAMIC_STATE_COLOR_BLEND_ENABLE_EXT
	DynamicStateColorBlendEquation     DynamicState = vk.DYNAMIC_STATE_COLOR_BLEND_EQUATION_EXT
	DynamicStateColorWriteMask         DynamicState = vk.DYNAMIC_STATE_COLOR_WRITE_MASK_EXT
)

var dynamicStates = []DynamicState{
	DynamicStateViewport, DynamicStateScissor, DynamicStateLineWidth, DynamicStateDepthBias,
	DynamicStateBlendConstants, DynamicStateDepthBounds, DynamicStateStencilCompareMask,
	DynamicStateStencilWriteMask, DynamicStateStencilReference, DynamicStateCullMode,
	DynamicStateFrontFace, DynamicStatePrimitiveTopology, DynamicStateViewportWithCount,
	DynamicStateScissorWithCount, DynamicStateDepthTestEnable, DynamicStateDepthWriteEnable,
	DynamicStateDepthCompareOp, DynamicStateStencilTestEnable, DynamicStateStencilOp,
	DynamicStatePrimitiveRestartEnable, DynamicStatePolygonMode, DynamicStateColorBlendEnable,
	DynamicStateColorBlendEquation, DynamicStateColorWriteMask,
}

func (d DynamicState) String() string {
	switch d {
	case DynamicStateViewport:
		return "Viewport"
	case DynamicStateScissor:
		return "Scissor"
	case DynamicStateLineWidth:
		return "LineWidth"
	case DynamicStateDepthBias:
		return "DepthBias"
	case DynamicStateBlendConstants:
		return "BlendConstants"
	case DynamicStateDepthBounds:
		return "DepthBounds"
	case DynamicStateStencilCompareMask:
		return "StencilCompareMask"
	case DynamicStateStencilWriteMask:
		return "StencilWriteMask"
	case DynamicStateStencilReference:
		return "StencilReference"
	case DynamicStateCullMode:
		return "CullMode"
	case DynamicStateFrontFace:
		return "FrontFace"
	case DynamicStatePrimitiveTopology:
		return "PrimitiveTopology"
	case DynamicStateViewportWithCount:
		return "ViewportWithCount"
	case DynamicStateScissorWithCount:
		return "ScissorWithCount"
	case DynamicStateDepthTestEnable:
		return "DepthTestEnable"
	case DynamicStateDepthWriteEnable:
		return "DepthWriteEnable"
	case DynamicStateDepthCompareOp:
		return "DepthCompareOp"
	case DynamicStateStencilTestEnable:
		return "StencilTestEnable"
	case DynamicStateStencilOp:
		return "StencilOp"
	case DynamicStatePrimitiveRestartEnable:
		return "PrimitiveRestartEnable"
	case DynamicStatePolygonMode:
		return "PolygonMode"
	case DynamicStateColorBlendEnable:
		return "ColorBlendEnable"
	case DynamicStateColorBlendEquation:
		return "ColorBlendEquation"
	case DynamicStateColorWriteMask:
		return "ColorWriteMask"

	default:
		abort("Unknown DynamicState: %d", d)
		return ""
	}
}

func (d *DynamicState) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, dynamicStates, d)
}

// fragmentKind returns the fragment whose state the dynamic state replaces.
func (d DynamicState) fragmentKind() FragmentKind {
	switch d {
	case DynamicStatePrimitiveTopology, DynamicStatePrimitiveRestartEnable:
		return FragmentKindVertexInput
	case DynamicStateViewport, DynamicStateScissor, DynamicStateLineWidth, DynamicStateDepthBias,
		DynamicStateCullMode, DynamicStateFrontFace, DynamicStateViewportWithCount,
		DynamicStateScissorWithCount, DynamicStatePolygonMode:
		return FragmentKindPreRasterization
	case DynamicStateDepthBounds, DynamicStateStencilCompareMask, DynamicStateStencilWriteMask,
		DynamicStateStencilReference, DynamicStateDepthTestEnable, DynamicStateDepthWriteEnable,
		DynamicStateDepthCompareOp, DynamicStateStencilTestEnable, DynamicStateStencilOp:
		return FragmentKindFragmentShading
	case DynamicStateBlendConstants, DynamicStateColorBlendEnable, DynamicStateColorBlendEquation,
		DynamicStateColorWriteMask:
		return FragmentKindFragmentOutput

	default:
		abort("Unknown DynamicState: %d", d)
		return 0
	}
}
