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

package main

import (
	"bytes"
	"math/bits"

	"github.com/pelletier/go-toml/v2"
	"goarrg.com/debug"
	"goarrg.com/gmath"

	"goarrg.com/rhi/vxpl"
)

type configFile struct {
	Name                        string `toml:"name"`
	PipelineCache               uint64 `toml:"pipeline_cache"`
	DisableRetainLinkTimeInfo   bool   `toml:"disable_retain_link_time_info"`
	DisableLinkTimeOptimization bool   `toml:"disable_link_time_optimization"`
}

type stageFile struct {
	Stage         vxpl.ShaderStage `toml:"stage"`
	Shader        string           `toml:"shader"`
	EntryPoint    string           `toml:"entry_point"`
	SpecConstants []uint32         `toml:"spec_constants"`
	LTO           bool             `toml:"lto"`
}

type attributeFile struct {
	Location uint32      `toml:"location"`
	Binding  uint32      `toml:"binding"`
	Format   vxpl.Format `toml:"format"`
	Offset   uint32      `toml:"offset"`
}

type bindingFile struct {
	Binding uint32               `toml:"binding"`
	Stride  uint32               `toml:"stride"`
	Rate    vxpl.VertexInputRate `toml:"rate"`
}

type blendFile struct {
	Enable    bool                      `toml:"enable"`
	SrcColor  vxpl.BlendFactor          `toml:"src_color"`
	DstColor  vxpl.BlendFactor          `toml:"dst_color"`
	ColorOp   vxpl.BlendOp              `toml:"color_op"`
	SrcAlpha  vxpl.BlendFactor          `toml:"src_alpha"`
	DstAlpha  vxpl.BlendFactor          `toml:"dst_alpha"`
	AlphaOp   vxpl.BlendOp              `toml:"alpha_op"`
	WriteMask *vxpl.ColorComponentFlags `toml:"write_mask"`
}

type pipelineFile struct {
	Name   string `toml:"name"`
	Layout string `toml:"layout"`

	Stages     []stageFile     `toml:"stage"`
	Attributes []attributeFile `toml:"attribute"`
	Bindings   []bindingFile   `toml:"binding"`

	Topology           vxpl.VertexTopology `toml:"topology"`
	PrimitiveRestart   bool                `toml:"primitive_restart"`
	PatchControlPoints uint32              `toml:"patch_control_points"`
	Viewports          uint32              `toml:"viewports"`

	PolygonMode vxpl.PolygonMode `toml:"polygon_mode"`
	CullMode    vxpl.CullMode    `toml:"cull_mode"`
	FrontFace   vxpl.FrontFace   `toml:"front_face"`
	LineWidth   float32          `toml:"line_width"`
	Samples     uint32           `toml:"samples"`

	DepthTest    bool           `toml:"depth_test"`
	DepthWrite   bool           `toml:"depth_write"`
	DepthCompare vxpl.CompareOp `toml:"depth_compare"`

	Blend         []blendFile         `toml:"blend"`
	DynamicStates []vxpl.DynamicState `toml:"dynamic_states"`

	ColorFormats  []vxpl.Format `toml:"color_formats"`
	DepthFormat   vxpl.Format   `toml:"depth_format"`
	StencilFormat vxpl.Format   `toml:"stencil_format"`
}

type requestFile struct {
	Config    configFile     `toml:"config"`
	Pipelines []pipelineFile `toml:"pipeline"`
}

func parseRequestFile(data []byte) (*requestFile, error) {
	r := requestFile{}
	d := toml.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	if err := d.Decode(&r); err != nil {
		return nil, debug.ErrorWrapf(err, "Failed to decode request file")
	}
	if len(r.Pipelines) == 0 {
		return nil, debug.Errorf("Request file has no [[pipeline]]")
	}
	return &r, nil
}

func (c *configFile) toConfig(loader vxpl.ShaderLoader) vxpl.Config {
	return vxpl.Config{
		Name:                        c.Name,
		PipelineCache:               vxpl.Handle(c.PipelineCache),
		ShaderLoader:                loader,
		DisableRetainLinkTimeInfo:   c.DisableRetainLinkTimeInfo,
		DisableLinkTimeOptimization: c.DisableLinkTimeOptimization,
	}
}

func sampleCount(n uint32) (vxpl.SampleCount, error) {
	switch {
	case n == 0:
		return vxpl.SampleCount1, nil
	case !gmath.InRange(n, 1, 64) || bits.OnesCount32(n) != 1:
		return 0, debug.Errorf("Invalid sample count: %d", n)

	default:
		// sample count bits equal the count they name
		return vxpl.SampleCount(n), nil
	}
}

/*
toCreateInfo builds the request for p, layouts maps layout names to the
layout shared by every pipeline naming it.
*/
func (p *pipelineFile) toCreateInfo(layouts *layoutSet) (vxpl.GraphicsPipelineCreateInfo, error) {
	samples, err := sampleCount(p.Samples)
	if err != nil {
		return vxpl.GraphicsPipelineCreateInfo{}, debug.ErrorWrapf(err, "Pipeline %q", p.Name)
	}

	info := vxpl.GraphicsPipelineCreateInfo{
		Name:   p.Name,
		Layout: layouts.get(p.Layout),
		InputAssembly: vxpl.InputAssemblyState{
			Topology:               p.Topology,
			PrimitiveRestartEnable: p.PrimitiveRestart,
		},
		Viewport: vxpl.ViewportState{ViewportCount: max(p.Viewports, 1), ScissorCount: max(p.Viewports, 1)},
		Rasterization: vxpl.RasterizationState{
			PolygonMode: p.PolygonMode,
			CullMode:    p.CullMode,
			FrontFace:   p.FrontFace,
			LineWidth:   p.LineWidth,
		},
		Multisample: vxpl.MultisampleState{RasterizationSamples: samples},
		DepthStencil: vxpl.DepthStencilState{
			DepthTestEnable:  p.DepthTest,
			DepthWriteEnable: p.DepthWrite,
			DepthCompareOp:   p.DepthCompare,
		},
		DynamicStates: p.DynamicStates,
		ColorFormats:  p.ColorFormats,
		DepthFormat:   p.DepthFormat,
		StencilFormat: p.StencilFormat,
	}
	if info.Rasterization.LineWidth == 0 {
		info.Rasterization.LineWidth = 1
	}
	if p.PatchControlPoints > 0 {
		info.Tessellation = &vxpl.TessellationState{PatchControlPoints: p.PatchControlPoints}
	}

	for _, s := range p.Stages {
		info.Stages = append(info.Stages, vxpl.ShaderStageInfo{
			Stage:                s.Stage,
			ShaderID:             s.Shader,
			EntryPoint:           s.EntryPoint,
			SpecConstants:        s.SpecConstants,
			LinkTimeOptimization: s.LTO,
		})
	}
	for _, a := range p.Attributes {
		info.VertexInput.Attributes = append(info.VertexInput.Attributes, vxpl.VertexAttribute(a))
	}
	for _, b := range p.Bindings {
		info.VertexInput.Bindings = append(info.VertexInput.Bindings, vxpl.VertexBinding{
			Binding: b.Binding, Stride: b.Stride, InputRate: b.Rate,
		})
	}
	for _, b := range p.Blend {
		a := vxpl.ColorBlendAttachmentState{
			BlendEnable:    b.Enable,
			Color:          vxpl.BlendEquation{Src: b.SrcColor, Dst: b.DstColor, Op: b.ColorOp},
			Alpha:          vxpl.BlendEquation{Src: b.SrcAlpha, Dst: b.DstAlpha, Op: b.AlphaOp},
			ColorWriteMask: vxpl.ColorComponentRGBA,
		}
		if b.WriteMask != nil {
			a.ColorWriteMask = *b.WriteMask
		}
		info.ColorBlendAttachments = append(info.ColorBlendAttachments, a)
	}

	return info, nil
}

// layoutSet hands out one layout per name with a made up handle.
type layoutSet struct {
	layouts map[string]*vxpl.PipelineLayout
}

func (s *layoutSet) get(name string) *vxpl.PipelineLayout {
	if name == "" {
		name = "default"
	}
	if s.layouts == nil {
		s.layouts = map[string]*vxpl.PipelineLayout{}
	}
	l, ok := s.layouts[name]
	if !ok {
		l = vxpl.NewPipelineLayout(name, vxpl.Handle(0x1000+len(s.layouts)))
		s.layouts[name] = l
	}
	return l
}
