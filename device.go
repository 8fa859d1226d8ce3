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
	"strings"

	"goarrg.com/rhi/vxpl/internal/vk"
)

// Handle is an opaque non dispatchable device object, 0 is the null handle.
type Handle uint64

const NullHandle Handle = 0

type Result int32

const (
	ResultSuccess                   Result = vk.SUCCESS
	ResultNotReady                  Result = vk.NOT_READY
	ResultTimeout                   Result = vk.TIMEOUT
	ResultIncomplete                Result = vk.INCOMPLETE
	ResultErrorOutOfHostMemory      Result = vk.ERROR_OUT_OF_HOST_MEMORY
	ResultErrorOutOfDeviceMemory    Result = vk.ERROR_OUT_OF_DEVICE_MEMORY
	ResultErrorInitializationFailed Result = vk.ERROR_INITIALIZATION_FAILED
	ResultErrorDeviceLost           Result = vk.ERROR_DEVICE_LOST
	ResultErrorFeatureNotPresent    Result = vk.ERROR_FEATURE_NOT_PRESENT
	ResultErrorFormatNotSupported   Result = vk.ERROR_FORMAT_NOT_SUPPORTED
	ResultErrorUnknown              Result = vk.ERROR_UNKNOWN
	ResultErrorValidationFailed     Result = vk.ERROR_VALIDATION_FAILED_EXT
	ResultErrorInvalidShader        Result = vk.ERROR_INVALID_SHADER_NV
	ResultPipelineCompileRequired   Result = vk.PIPELINE_COMPILE_REQUIRED
)

// String does not abort on unknown values as results come from drivers.
func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "VK_SUCCESS"
	case ResultNotReady:
		return "VK_NOT_READY"
	case ResultTimeout:
		return "VK_TIMEOUT"
	case ResultIncomplete:
		return "VK_INCOMPLETE"
	case ResultErrorOutOfHostMemory:
		return "VK_ERROR_OUT_OF_HOST_MEMORY"
	case ResultErrorOutOfDeviceMemory:
		return "VK_ERROR_OUT_OF_DEVICE_MEMORY"
	case ResultErrorInitializationFailed:
		return "VK_ERROR_INITIALIZATION_FAILED"
	case ResultErrorDeviceLost:
		return "VK_ERROR_DEVICE_LOST"
	case ResultErrorFeatureNotPresent:
		return "VK_ERROR_FEATURE_NOT_PRESENT"
	case ResultErrorFormatNotSupported:
		return "VK_ERROR_FORMAT_NOT_SUPPORTED"
	case ResultErrorUnknown:
		return "VK_ERROR_UNKNOWN"
	case ResultErrorValidationFailed:
		return "VK_ERROR_VALIDATION_FAILED_EXT"
	case ResultErrorInvalidShader:
		return "VK_ERROR_INVALID_SHADER_NV"
	case ResultPipelineCompileRequired:
		return "VK_PIPELINE_COMPILE_REQUIRED"
	}
	return fmt.Sprintf("VkResult(%d)", int32(r))
}

type PipelineCreateFlags uint32

const (
	PipelineCreateDisableOptimization             PipelineCreateFlags = vk.PIPELINE_CREATE_DISABLE_OPTIMIZATION_BIT
	PipelineCreateLinkTimeOptimization            PipelineCreateFlags = vk.PIPELINE_CREATE_LINK_TIME_OPTIMIZATION_BIT_EXT
	PipelineCreateLibrary                         PipelineCreateFlags = vk.PIPELINE_CREATE_LIBRARY_BIT_KHR
	PipelineCreateRetainLinkTimeOptimizationInfo PipelineCreateFlags = vk.PIPELINE_CREATE_RETAIN_LINK_TIME_OPTIMIZATION_INFO_BIT_EXT
)

func (f PipelineCreateFlags) String() string {
	str := ""

	if hasBits(f, PipelineCreateDisableOptimization) {
		str += "DisableOptimization|"
	}
	if hasBits(f, PipelineCreateLinkTimeOptimization) {
		str += "LinkTimeOptimization|"
	}
	if hasBits(f, PipelineCreateLibrary) {
		str += "Library|"
	}
	if hasBits(f, PipelineCreateRetainLinkTimeOptimizationInfo) {
		str += "RetainLinkTimeOptimizationInfo|"
	}

	return strings.TrimSuffix(str, "|")
}

// GraphicsPipelineLibraryFlags names the subset of graphics state a library holds.
type GraphicsPipelineLibraryFlags uint32

const (
	GraphicsPipelineLibraryVertexInputInterface    GraphicsPipelineLibraryFlags = vk.GRAPHICS_PIPELINE_LIBRARY_VERTEX_INPUT_INTERFACE_BIT_EXT
	GraphicsPipelineLibraryPreRasterizationShaders GraphicsPipelineLibraryFlags = vk.GRAPHICS_PIPELINE_LIBRARY_PRE_RASTERIZATION_SHADERS_BIT_EXT
	GraphicsPipelineLibraryFragmentShader          GraphicsPipelineLibraryFlags = vk.GRAPHICS_PIPELINE_LIBRARY_FRAGMENT_SHADER_BIT_EXT
	GraphicsPipelineLibraryFragmentOutputInterface GraphicsPipelineLibraryFlags = vk.GRAPHICS_PIPELINE_LIBRARY_FRAGMENT_OUTPUT_INTERFACE_BIT_EXT
)

/*
Device is the native side of the library, implementations wrap a driver.
Every create call receives the pipeline cache handle from Config unchanged,
implementations may ignore it. Results other than ResultSuccess are failures
and the returned handle is ignored.

A Device must be safe for concurrent use, Context calls it from every
goroutine calling CreatePipeline.
*/
type Device interface {
	CreateShaderModule(name string, code []uint32) (Handle, Result)
	DestroyShaderModule(module Handle)

	CreateGraphicsPipelineLibrary(name string, cache Handle, info *LibraryCreateInfo) (Handle, Result)
	LinkGraphicsPipeline(name string, cache Handle, info *LinkCreateInfo) (Handle, Result)
	DestroyPipeline(pipeline Handle)
}

type ShaderStageCreateInfo struct {
	Stage         ShaderStage
	Module        Handle
	EntryPoint    string
	SpecConstants []uint32
}

/*
LibraryState is one of VertexInputLibraryState, PreRasterizationLibraryState,
FragmentShadingLibraryState or FragmentOutputLibraryState.
*/
type LibraryState interface {
	Kind() FragmentKind
	isLibraryState()
}

type VertexInputLibraryState struct {
	Attributes             []VertexAttribute
	Bindings               []VertexBinding
	Topology               VertexTopology
	PrimitiveRestartEnable bool
}

var _ LibraryState = (*VertexInputLibraryState)(nil)

func (*VertexInputLibraryState) Kind() FragmentKind { return FragmentKindVertexInput }
func (*VertexInputLibraryState) isLibraryState()    {}

type PreRasterizationLibraryState struct {
	Stages        []ShaderStageCreateInfo
	Tessellation  *TessellationState
	Viewport      ViewportState
	Rasterization RasterizationState
}

var _ LibraryState = (*PreRasterizationLibraryState)(nil)

func (*PreRasterizationLibraryState) Kind() FragmentKind { return FragmentKindPreRasterization }
func (*PreRasterizationLibraryState) isLibraryState()    {}

type FragmentShadingLibraryState struct {
	Stages       []ShaderStageCreateInfo
	DepthStencil DepthStencilState
}

var _ LibraryState = (*FragmentShadingLibraryState)(nil)

func (*FragmentShadingLibraryState) Kind() FragmentKind { return FragmentKindFragmentShading }
func (*FragmentShadingLibraryState) isLibraryState()    {}

type FragmentOutputLibraryState struct {
	ColorBlendAttachments []ColorBlendAttachmentState
	ColorBlend            ColorBlendState
	Multisample           MultisampleState
	ColorFormats          []Format
	DepthFormat           Format
	StencilFormat         Format
}

var _ LibraryState = (*FragmentOutputLibraryState)(nil)

func (*FragmentOutputLibraryState) Kind() FragmentKind { return FragmentKindFragmentOutput }
func (*FragmentOutputLibraryState) isLibraryState()    {}

/*
LibraryCreateInfo describes one graphics pipeline library, Layout is
NullHandle for the vertex input and fragment output subsets.
*/
type LibraryCreateInfo struct {
	Flags         PipelineCreateFlags
	Layout        Handle
	DynamicStates []DynamicState
	State         LibraryState
}

// LibraryFlags returns the subset of graphics state described by State.
func (i *LibraryCreateInfo) LibraryFlags() GraphicsPipelineLibraryFlags {
	return i.State.Kind().libraryFlags()
}

type LinkCreateInfo struct {
	Flags  PipelineCreateFlags
	Layout Handle
	// Libraries is ordered by FragmentKind.
	Libraries []Handle
}
