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

type VertexAttribute struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

func (a VertexAttribute) id() string {
	return genID(a.Location, a.Binding, a.Format, a.Offset)
}

type VertexBinding struct {
	Binding   uint32
	Stride    uint32
	InputRate VertexInputRate
}

func (b VertexBinding) id() string {
	return genID(b.Binding, b.Stride, b.InputRate)
}

type VertexInputState struct {
	Attributes []VertexAttribute
	Bindings   []VertexBinding
}

type InputAssemblyState struct {
	Topology               VertexTopology
	PrimitiveRestartEnable bool
}

type TessellationState struct {
	PatchControlPoints uint32
}

type Viewport struct {
	X, Y, Width, Height float32
	MinDepth, MaxDepth  float32
}

func (v Viewport) id() string {
	return genID(v.X, v.Y, v.Width, v.Height, v.MinDepth, v.MaxDepth)
}

type Rect struct {
	X, Y          int32
	Width, Height uint32
}

func (r Rect) id() string {
	return genID(r.X, r.Y, r.Width, r.Height)
}

/*
ViewportState holds the counts used when viewports and scissors are dynamic,
the static Viewports and Scissors are only read when they are not.
*/
type ViewportState struct {
	ViewportCount uint32
	ScissorCount  uint32
	Viewports     []Viewport
	Scissors      []Rect
}

func (s *ViewportState) id() string {
	return genID(s.ViewportCount, s.ScissorCount, listID(s.Viewports), listID(s.Scissors))
}

type RasterizationState struct {
	DepthClampEnable        bool
	RasterizerDiscardEnable bool
	PolygonMode             PolygonMode
	CullMode                CullMode
	FrontFace               FrontFace
	DepthBiasEnable         bool
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

func (s *RasterizationState) id() string {
	return genID(s.DepthClampEnable, s.RasterizerDiscardEnable, s.PolygonMode, s.CullMode, s.FrontFace,
		s.DepthBiasEnable, s.DepthBiasConstantFactor, s.DepthBiasClamp, s.DepthBiasSlopeFactor, s.LineWidth)
}

type MultisampleState struct {
	RasterizationSamples  SampleCount
	SampleShadingEnable   bool
	MinSampleShading      float32
	SampleMask            []uint32
	AlphaToCoverageEnable bool
	AlphaToOneEnable      bool
}

func (s *MultisampleState) id() string {
	mask := make([]any, len(s.SampleMask))
	for i, m := range s.SampleMask {
		mask[i] = m
	}
	samples := s.RasterizationSamples
	if samples == 0 {
		samples = SampleCount1
	}
	return genID(samples, s.SampleShadingEnable, s.MinSampleShading, genID(mask...),
		s.AlphaToCoverageEnable, s.AlphaToOneEnable)
}

type StencilOpState struct {
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
	CompareOp   CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

func (s StencilOpState) id() string {
	return genID(s.FailOp, s.PassOp, s.DepthFailOp, s.CompareOp, s.CompareMask, s.WriteMask, s.Reference)
}

type DepthStencilState struct {
	DepthTestEnable       bool
	DepthWriteEnable      bool
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable bool
	StencilTestEnable     bool
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

func (s *DepthStencilState) id() string {
	return genID(s.DepthTestEnable, s.DepthWriteEnable, s.DepthCompareOp, s.DepthBoundsTestEnable,
		s.StencilTestEnable, s.Front.id(), s.Back.id(), s.MinDepthBounds, s.MaxDepthBounds)
}

type BlendEquation struct {
	Src BlendFactor
	Dst BlendFactor
	Op  BlendOp
}

type ColorBlendAttachmentState struct {
	BlendEnable    bool
	Color          BlendEquation
	Alpha          BlendEquation
	ColorWriteMask ColorComponentFlags
}

// DefaultColorBlendAttachment is used for color attachments the request
// did not describe: blending disabled and every component written.
func DefaultColorBlendAttachment() ColorBlendAttachmentState {
	return ColorBlendAttachmentState{
		Color:          BlendEquation{Src: BlendFactorOne, Dst: BlendFactorZero, Op: BlendOpAdd},
		Alpha:          BlendEquation{Src: BlendFactorOne, Dst: BlendFactorZero, Op: BlendOpAdd},
		ColorWriteMask: ColorComponentRGBA,
	}
}

func (s ColorBlendAttachmentState) id() string {
	return genID(s.BlendEnable, s.Color.Src, s.Color.Dst, s.Color.Op,
		s.Alpha.Src, s.Alpha.Dst, s.Alpha.Op, s.ColorWriteMask)
}

type ColorBlendState struct {
	LogicOpEnable  bool
	LogicOp        LogicOp
	BlendConstants [4]float32
}

func (s *ColorBlendState) id() string {
	return genID(s.LogicOpEnable, s.LogicOp,
		s.BlendConstants[0], s.BlendConstants[1], s.BlendConstants[2], s.BlendConstants[3])
}

func listID[E interface{ id() string }](list []E) string {
	if len(list) == 0 {
		return "[]"
	}
	ids := make([]any, len(list))
	for i, e := range list {
		ids[i] = e.id()
	}
	return genID(ids...)
}
