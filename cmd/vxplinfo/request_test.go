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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goarrg.com/rhi/vxpl"
)

const materials = `
[config]
name = "materials"

[[pipeline]]
name = "opaque"
topology = "TriangleList"
cull_mode = "back"
depth_test = true
depth_write = true
depth_compare = "Less"
dynamic_states = ["Viewport", "Scissor"]
color_formats = ["B8G8R8A8_UNORM"]
depth_format = "D32_SFLOAT"

[[pipeline.stage]]
stage = "Vertex"
shader = "mesh.vert"
lto = true

[[pipeline.stage]]
stage = "Fragment"
shader = "lit.frag"
lto = true

[[pipeline.attribute]]
location = 0
format = "R32G32B32_SFLOAT"

[[pipeline.binding]]
stride = 12
rate = "Vertex"

[[pipeline]]
name = "unlit"
topology = "TriangleList"
cull_mode = "back"
depth_test = true
depth_write = true
depth_compare = "Less"
dynamic_states = ["Viewport", "Scissor"]
color_formats = ["B8G8R8A8_UNORM"]
depth_format = "D32_SFLOAT"

[[pipeline.stage]]
stage = "Vertex"
shader = "mesh.vert"
lto = true

[[pipeline.stage]]
stage = "Fragment"
shader = "unlit.frag"

[[pipeline.attribute]]
location = 0
format = "R32G32B32_SFLOAT"

[[pipeline.binding]]
stride = 12
rate = "Vertex"

[[pipeline.blend]]
enable = true
src_color = "SrcAlpha"
dst_color = "OneMinusSrcAlpha"
color_op = "Add"
src_alpha = "One"
dst_alpha = "Zero"
alpha_op = "Add"
write_mask = "RGB"
`

func TestParseRequestFile(t *testing.T) {
	r, err := parseRequestFile([]byte(materials))
	require.NoError(t, err)
	assert.Equal(t, "materials", r.Config.Name)
	require.Len(t, r.Pipelines, 2)

	layouts := layoutSet{}
	info, err := r.Pipelines[1].toCreateInfo(&layouts)
	require.NoError(t, err)

	assert.Equal(t, "unlit", info.Name)
	assert.Equal(t, "default", info.Layout.Name())
	assert.Equal(t, vxpl.VertexTopologyTriangleList, info.InputAssembly.Topology)
	assert.Equal(t, vxpl.CullModeBack, info.Rasterization.CullMode)
	assert.Equal(t, float32(1), info.Rasterization.LineWidth)
	assert.Equal(t, vxpl.SampleCount1, info.Multisample.RasterizationSamples)
	assert.Equal(t, []vxpl.DynamicState{vxpl.DynamicStateViewport, vxpl.DynamicStateScissor}, info.DynamicStates)
	assert.Equal(t, []vxpl.Format{vxpl.FormatB8G8R8A8Unorm}, info.ColorFormats)
	assert.Equal(t, vxpl.FormatD32Sfloat, info.DepthFormat)

	require.Len(t, info.Stages, 2)
	assert.Equal(t, vxpl.ShaderStageFragment, info.Stages[1].Stage)
	assert.Equal(t, "unlit.frag", info.Stages[1].ShaderID)
	assert.False(t, info.Stages[1].LinkTimeOptimization)

	assert.Equal(t, []vxpl.VertexAttribute{{Format: vxpl.FormatR32G32B32Sfloat}}, info.VertexInput.Attributes)
	assert.Equal(t, []vxpl.VertexBinding{{Stride: 12, InputRate: vxpl.VertexInputRateVertex}}, info.VertexInput.Bindings)

	require.Len(t, info.ColorBlendAttachments, 1)
	blend := info.ColorBlendAttachments[0]
	assert.True(t, blend.BlendEnable)
	assert.Equal(t, vxpl.BlendFactorOneMinusSrcAlpha, blend.Color.Dst)
	assert.Equal(t, vxpl.ColorComponentR|vxpl.ColorComponentG|vxpl.ColorComponentB, blend.ColorWriteMask)

	other, err := r.Pipelines[0].toCreateInfo(&layouts)
	require.NoError(t, err)
	assert.Same(t, info.Layout, other.Layout)
}

func TestParseRequestFileErrors(t *testing.T) {
	_, err := parseRequestFile([]byte(`[config]`))
	assert.Error(t, err)

	_, err = parseRequestFile([]byte("[[pipeline]]\ntopology = \"Hexagons\"\n"))
	assert.Error(t, err)

	_, err = parseRequestFile([]byte("[[pipeline]]\ncolour = true\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestSampleCount(t *testing.T) {
	s, err := sampleCount(4)
	require.NoError(t, err)
	assert.Equal(t, vxpl.SampleCount4, s)

	_, err = sampleCount(3)
	assert.Error(t, err)
	_, err = sampleCount(128)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	r, err := parseRequestFile([]byte(materials))
	require.NoError(t, err)

	out := bytes.Buffer{}
	failed := run(&out, r, syntheticLoader{}, true)
	assert.Zero(t, failed)

	lines := strings.Split(out.String(), "\n")
	require.Greater(t, len(lines), 3)
	assert.Equal(t, []string{"opaque", "built", "built", "built", "built", "true", "0@1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"unlit", "reused", "reused", "built", "built", "false", "1@1"}, strings.Fields(lines[2]))
	assert.Contains(t, out.String(), "pipelines: 2,")
	assert.Contains(t, out.String(), `"name": "materials"`)
}

func TestSyntheticLoaderDistinct(t *testing.T) {
	a, err := syntheticLoader{}.LoadShader("a.frag")
	require.NoError(t, err)
	b, err := syntheticLoader{}.LoadShader("b.frag")
	require.NoError(t, err)
	assert.NotEqual(t, a.SPIRV, b.SPIRV)
}
