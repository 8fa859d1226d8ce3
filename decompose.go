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

	"goarrg.com/debug"
	"goarrg.com/gmath"
)

func invalidRequest(reason string) error {
	return debug.ErrorWrapf(ErrorInvalidRequest{Reason: reason}, "Failed to decompose pipeline request")
}

func splitDynamicStates(states []DynamicState) [fragmentKindCount][]DynamicState {
	var ret [fragmentKindCount][]DynamicState
	for _, s := range states {
		k := s.fragmentKind()
		if !slices.Contains(ret[k], s) {
			ret[k] = append(ret[k], s)
		}
	}
	return ret
}

/*
Decompose splits a request into the state of its four fragments. Stages are
split at the fragment stage: everything before it is pre-rasterization and
everything from it on is fragment shading. Dynamic states go to the fragment
whose state they replace. Every shader stage must already have a Shader.

Decompose never calls the device.
*/
func Decompose(info *GraphicsPipelineCreateInfo) (VertexInputDescriptor, PreRasterizationDescriptor,
	FragmentShadingDescriptor, FragmentOutputDescriptor, error,
) {
	var (
		vi VertexInputDescriptor
		pr PreRasterizationDescriptor
		fs FragmentShadingDescriptor
		fo FragmentOutputDescriptor
	)

	if info.Layout == nil {
		return vi, pr, fs, fo, invalidRequest("missing pipeline layout")
	}

	split := -1
	for i, s := range info.Stages {
		if !s.Stage.valid() {
			return vi, pr, fs, fo, invalidRequest(fmt.Sprintf("unknown shader stage %d", s.Stage))
		}
		if s.Shader == nil {
			return vi, pr, fs, fo, invalidRequest("stage " + s.Stage.String() + " has no shader")
		}
		switch {
		case s.Stage == ShaderStageFragment:
			if split >= 0 {
				return vi, pr, fs, fo, invalidRequest("more than one fragment stage")
			}
			if i == 0 {
				return vi, pr, fs, fo, invalidRequest("fragment stage without a pre-rasterization stage")
			}
			split = i
		case s.Stage.preRasterization():
			if split >= 0 {
				return vi, pr, fs, fo, invalidRequest("pre-rasterization stage " + s.Stage.String() + " after the fragment stage")
			}
		default:
			return vi, pr, fs, fo, invalidRequest("stage " + s.Stage.String() + " is not a graphics stage")
		}
	}
	if split < 0 {
		if len(info.Stages) == 0 {
			return vi, pr, fs, fo, invalidRequest("no shader stages")
		}
		return vi, pr, fs, fo, invalidRequest("missing fragment stage")
	}

	for _, f := range append([]Format{info.DepthFormat, info.StencilFormat}, info.ColorFormats...) {
		if !f.valid() {
			return vi, pr, fs, fo, invalidRequest(fmt.Sprintf("unknown format %d", f))
		}
	}
	if info.DepthFormat != FormatUndefined && !info.DepthFormat.hasDepth() {
		return vi, pr, fs, fo, invalidRequest("depth format " + info.DepthFormat.String() + " has no depth aspect")
	}
	if info.StencilFormat != FormatUndefined && !info.StencilFormat.hasStencil() {
		return vi, pr, fs, fo, invalidRequest("stencil format " + info.StencilFormat.String() + " has no stencil aspect")
	}

	if info.Multisample.SampleShadingEnable && !gmath.InRange(info.Multisample.MinSampleShading, 0, 1) {
		return vi, pr, fs, fo, invalidRequest("min sample shading outside of [0, 1]")
	}

	dynamic := splitDynamicStates(info.DynamicStates)

	vi = VertexInputDescriptor{
		Attributes:             slices.Clone(info.VertexInput.Attributes),
		Bindings:               slices.Clone(info.VertexInput.Bindings),
		Topology:               info.InputAssembly.Topology,
		PrimitiveRestartEnable: info.InputAssembly.PrimitiveRestartEnable,
		DynamicStates:          dynamic[FragmentKindVertexInput],
	}

	pr = PreRasterizationDescriptor{
		Layout:        info.Layout,
		Stages:        slices.Clone(info.Stages[:split]),
		Viewport:      info.Viewport,
		Rasterization: info.Rasterization,
		DynamicStates: dynamic[FragmentKindPreRasterization],
	}
	if info.Tessellation != nil {
		tess := *info.Tessellation
		pr.Tessellation = &tess
	}

	fs = FragmentShadingDescriptor{
		Layout:        info.Layout,
		Stages:        slices.Clone(info.Stages[split:]),
		DepthStencil:  info.DepthStencil,
		DynamicStates: dynamic[FragmentKindFragmentShading],
	}

	fo = FragmentOutputDescriptor{
		ColorBlendAttachments: fitSlice(info.ColorBlendAttachments, len(info.ColorFormats), DefaultColorBlendAttachment()),
		ColorBlend:            info.ColorBlend,
		Multisample:           info.Multisample,
		ColorFormats:          slices.Clone(info.ColorFormats),
		DepthFormat:           info.DepthFormat,
		StencilFormat:         info.StencilFormat,
		DynamicStates:         dynamic[FragmentKindFragmentOutput],
	}

	return vi, pr, fs, fo, nil
}
