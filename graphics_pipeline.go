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

/*
GraphicsPipelineCreateInfo is a full graphics pipeline request.
Stages must hold exactly one fragment stage preceded only by pre-rasterization
stages, ColorBlendAttachments is padded with DefaultColorBlendAttachment or
truncated to the number of ColorFormats.

If Name is empty the pipeline is named after its fragments.
*/
type GraphicsPipelineCreateInfo struct {
	Name   string
	Layout *PipelineLayout
	Stages []ShaderStageInfo

	VertexInput   VertexInputState
	InputAssembly InputAssemblyState
	Tessellation  *TessellationState
	Viewport      ViewportState
	Rasterization RasterizationState
	Multisample   MultisampleState
	DepthStencil  DepthStencilState

	ColorBlendAttachments []ColorBlendAttachmentState
	ColorBlend            ColorBlendState
	DynamicStates         []DynamicState

	ColorFormats  []Format
	DepthFormat   Format
	StencilFormat Format
}

// linkTimeOptimization is true only if every stage opted in.
func (info *GraphicsPipelineCreateInfo) linkTimeOptimization() bool {
	if len(info.Stages) == 0 {
		return false
	}
	for _, s := range info.Stages {
		if !s.LinkTimeOptimization {
			return false
		}
	}
	return true
}
