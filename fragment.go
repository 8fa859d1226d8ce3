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
	"bytes"
	"fmt"
	"strings"
)

type FragmentKind uint32

const (
	FragmentKindVertexInput FragmentKind = iota
	FragmentKindPreRasterization
	FragmentKindFragmentShading
	FragmentKindFragmentOutput
	fragmentKindCount
)

func (k FragmentKind) String() string {
	switch k {
	case FragmentKindVertexInput:
		return "vertex_input"
	case FragmentKindPreRasterization:
		return "pre_rasterization"
	case FragmentKindFragmentShading:
		return "fragment_shading"
	case FragmentKindFragmentOutput:
		return "fragment_output"

	default:
		abort("Unknown FragmentKind: %d", k)
		return ""
	}
}

func (k FragmentKind) libraryFlags() GraphicsPipelineLibraryFlags {
	switch k {
	case FragmentKindVertexInput:
		return GraphicsPipelineLibraryVertexInputInterface
	case FragmentKindPreRasterization:
		return GraphicsPipelineLibraryPreRasterizationShaders
	case FragmentKindFragmentShading:
		return GraphicsPipelineLibraryFragmentShader
	case FragmentKindFragmentOutput:
		return GraphicsPipelineLibraryFragmentOutputInterface

	default:
		abort("Unknown FragmentKind: %d", k)
		return 0
	}
}

/*
Fragment is a compiled graphics pipeline library, it is owned by the
fragment cache of its Context and lives until Context.Destroy.
*/
type Fragment struct {
	kind    FragmentKind
	id      string
	name    string
	handle  Handle
	modules []Handle
}

func (f *Fragment) Kind() FragmentKind { return f.kind }
func (f *Fragment) Name() string       { return f.name }
func (f *Fragment) Handle() Handle     { return f.handle }

func (f *Fragment) destroy(device Device) {
	device.DestroyPipeline(f.handle)
	for _, m := range f.modules {
		device.DestroyShaderModule(m)
	}
	f.handle = NullHandle
	f.modules = nil
}

func (f *Fragment) MarshalJSON() ([]byte, error) {
	buff := bytes.Buffer{}
	buff.WriteString("{")

	buff.WriteString(fmt.Sprintf("\"kind\": %q,", f.kind.String()))
	buff.WriteString(fmt.Sprintf("\"name\": %q,", f.name))
	buff.WriteString(fmt.Sprintf("\"handle\": %q,", toHex(f.handle)))

	buff.WriteString("\"modules\": [")
	for i, m := range f.modules {
		if i > 0 {
			buff.WriteString(",")
		}
		buff.WriteString(fmt.Sprintf("%q", toHex(m)))
	}
	buff.WriteString("]")

	buff.WriteString("}")
	return buff.Bytes(), nil
}

func dynamicStatesID(states []DynamicState) string {
	ids := make([]any, len(states))
	for i, s := range states {
		ids[i] = s
	}
	return genID(ids...)
}

func stagesID(stages []ShaderStageInfo) string {
	ids := make([]any, len(stages))
	for i := range stages {
		ids[i] = stages[i].id()
	}
	return genID(ids...)
}

func stagesName(stages []ShaderStageInfo) string {
	names := make([]string, len(stages))
	for i := range stages {
		names[i] = stages[i].name()
	}
	return strings.Join(names, ",")
}

type VertexInputDescriptor struct {
	Attributes             []VertexAttribute
	Bindings               []VertexBinding
	Topology               VertexTopology
	PrimitiveRestartEnable bool
	DynamicStates          []DynamicState
}

func (d *VertexInputDescriptor) id() string {
	return genID(listID(d.Attributes), listID(d.Bindings), d.Topology, d.PrimitiveRestartEnable,
		dynamicStatesID(d.DynamicStates))
}

func (d *VertexInputDescriptor) name() string {
	if d.PrimitiveRestartEnable {
		return fmt.Sprintf("[vertex_input:%s,restart,%d attributes]", d.Topology, len(d.Attributes))
	}
	return fmt.Sprintf("[vertex_input:%s,%d attributes]", d.Topology, len(d.Attributes))
}

type PreRasterizationDescriptor struct {
	Layout        *PipelineLayout
	Stages        []ShaderStageInfo
	Tessellation  *TessellationState
	Viewport      ViewportState
	Rasterization RasterizationState
	DynamicStates []DynamicState
}

func (d *PreRasterizationDescriptor) id() string {
	tess := "null"
	if d.Tessellation != nil {
		tess = genID(d.Tessellation.PatchControlPoints)
	}
	return genID(d.Layout.id, stagesID(d.Stages), tess, d.Viewport.id(), d.Rasterization.id(),
		dynamicStatesID(d.DynamicStates))
}

func (d *PreRasterizationDescriptor) name() string {
	return fmt.Sprintf("[pre_rasterization:%s,%s]", d.Layout.name, stagesName(d.Stages))
}

type FragmentShadingDescriptor struct {
	Layout        *PipelineLayout
	Stages        []ShaderStageInfo
	DepthStencil  DepthStencilState
	DynamicStates []DynamicState
}

func (d *FragmentShadingDescriptor) id() string {
	return genID(d.Layout.id, stagesID(d.Stages), d.DepthStencil.id(), dynamicStatesID(d.DynamicStates))
}

func (d *FragmentShadingDescriptor) name() string {
	return fmt.Sprintf("[fragment_shading:%s,%s]", d.Layout.name, stagesName(d.Stages))
}

type FragmentOutputDescriptor struct {
	ColorBlendAttachments []ColorBlendAttachmentState
	ColorBlend            ColorBlendState
	Multisample           MultisampleState
	ColorFormats          []Format
	DepthFormat           Format
	StencilFormat         Format
	DynamicStates         []DynamicState
}

func (d *FragmentOutputDescriptor) id() string {
	formats := make([]any, len(d.ColorFormats))
	for i, f := range d.ColorFormats {
		formats[i] = f
	}
	return genID(listID(d.ColorBlendAttachments), d.ColorBlend.id(), d.Multisample.id(), genID(formats...),
		d.DepthFormat, d.StencilFormat, dynamicStatesID(d.DynamicStates))
}

func (d *FragmentOutputDescriptor) name() string {
	formats := make([]string, len(d.ColorFormats))
	for i, f := range d.ColorFormats {
		formats[i] = f.String()
	}
	return fmt.Sprintf("[fragment_output:[%s],%s,%s]", strings.Join(formats, ","), d.DepthFormat, d.StencilFormat)
}
