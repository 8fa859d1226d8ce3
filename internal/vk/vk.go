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

// Package vk holds the Vulkan enum values the typed enums in vxpl are built on.
// Only the values used by graphics pipeline libraries are listed.
package vk

const (
	TRUE  = 1
	FALSE = 0
)

// VkResult
const (
	SUCCESS                     = 0
	NOT_READY                   = 1
	TIMEOUT                     = 2
	INCOMPLETE                  = 5
	ERROR_OUT_OF_HOST_MEMORY    = -1
	ERROR_OUT_OF_DEVICE_MEMORY  = -2
	ERROR_INITIALIZATION_FAILED = -3
	ERROR_DEVICE_LOST           = -4
	ERROR_FEATURE_NOT_PRESENT   = -8
	ERROR_FORMAT_NOT_SUPPORTED  = -11
	ERROR_UNKNOWN               = -13
	ERROR_VALIDATION_FAILED_EXT = -1000011001
	ERROR_INVALID_SHADER_NV     = -1000012000
	PIPELINE_COMPILE_REQUIRED   = 1000297000
)

// VkShaderStageFlagBits
const (
	SHADER_STAGE_VERTEX_BIT                  = 0x00000001
	SHADER_STAGE_TESSELLATION_CONTROL_BIT    = 0x00000002
	SHADER_STAGE_TESSELLATION_EVALUATION_BIT = 0x00000004
	SHADER_STAGE_GEOMETRY_BIT                = 0x00000008
	SHADER_STAGE_FRAGMENT_BIT                = 0x00000010
	SHADER_STAGE_COMPUTE_BIT                 = 0x00000020
	SHADER_STAGE_ALL_GRAPHICS                = 0x0000001F
	SHADER_STAGE_TASK_BIT_EXT                = 0x00000040
	SHADER_STAGE_MESH_BIT_EXT                = 0x00000080
)

// VkPipelineBindPoint
const (
	PIPELINE_BIND_POINT_GRAPHICS = 0
	PIPELINE_BIND_POINT_COMPUTE  = 1
)

// VkPipelineCreateFlagBits
const (
	PIPELINE_CREATE_DISABLE_OPTIMIZATION_BIT                  = 0x00000001
	PIPELINE_CREATE_LINK_TIME_OPTIMIZATION_BIT_EXT            = 0x00000400
	PIPELINE_CREATE_LIBRARY_BIT_KHR                           = 0x00000800
	PIPELINE_CREATE_RETAIN_LINK_TIME_OPTIMIZATION_INFO_BIT_EXT = 0x00800000
)

// VkGraphicsPipelineLibraryFlagBitsEXT
const (
	GRAPHICS_PIPELINE_LIBRARY_VERTEX_INPUT_INTERFACE_BIT_EXT    = 0x00000001
	GRAPHICS_PIPELINE_LIBRARY_PRE_RASTERIZATION_SHADERS_BIT_EXT = 0x00000002
	GRAPHICS_PIPELINE_LIBRARY_FRAGMENT_SHADER_BIT_EXT           = 0x00000004
	GRAPHICS_PIPELINE_LIBRARY_FRAGMENT_OUTPUT_INTERFACE_BIT_EXT = 0x00000008
)

// VkPrimitiveTopology
const (
	PRIMITIVE_TOPOLOGY_POINT_LIST                    = 0
	PRIMITIVE_TOPOLOGY_LINE_LIST                     = 1
	PRIMITIVE_TOPOLOGY_LINE_STRIP                    = 2
	PRIMITIVE_TOPOLOGY_TRIANGLE_LIST                 = 3
	PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP                = 4
	PRIMITIVE_TOPOLOGY_TRIANGLE_FAN                  = 5
	PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY      = 6
	PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY     = 7
	PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY  = 8
	PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY = 9
	PRIMITIVE_TOPOLOGY_PATCH_LIST                    = 10
)

// VkVertexInputRate
const (
	VERTEX_INPUT_RATE_VERTEX   = 0
	VERTEX_INPUT_RATE_INSTANCE = 1
)

// VkPolygonMode
const (
	POLYGON_MODE_FILL  = 0
	POLYGON_MODE_LINE  = 1
	POLYGON_MODE_POINT = 2
)

// VkCullModeFlagBits
const (
	CULL_MODE_NONE           = 0
	CULL_MODE_FRONT_BIT      = 0x00000001
	CULL_MODE_BACK_BIT       = 0x00000002
	CULL_MODE_FRONT_AND_BACK = 0x00000003
)

// VkFrontFace
const (
	FRONT_FACE_COUNTER_CLOCKWISE = 0
	FRONT_FACE_CLOCKWISE         = 1
)

// VkCompareOp
const (
	COMPARE_OP_NEVER            = 0
	COMPARE_OP_LESS             = 1
	COMPARE_OP_EQUAL            = 2
	COMPARE_OP_LESS_OR_EQUAL    = 3
	COMPARE_OP_GREATER          = 4
	COMPARE_OP_NOT_EQUAL        = 5
	COMPARE_OP_GREATER_OR_EQUAL = 6
	COMPARE_OP_ALWAYS           = 7
)

// VkStencilOp
const (
	STENCIL_OP_KEEP                = 0
	STENCIL_OP_ZERO                = 1
	STENCIL_OP_REPLACE             = 2
	STENCIL_OP_INCREMENT_AND_CLAMP = 3
	STENCIL_OP_DECREMENT_AND_CLAMP = 4
	STENCIL_OP_INVERT              = 5
	STENCIL_OP_INCREMENT_AND_WRAP  = 6
	STENCIL_OP_DECREMENT_AND_WRAP  = 7
)

// VkBlendFactor
const (
	BLEND_FACTOR_ZERO                     = 0
	BLEND_FACTOR_ONE                      = 1
	BLEND_FACTOR_SRC_COLOR                = 2
	BLEND_FACTOR_ONE_MINUS_SRC_COLOR      = 3
	BLEND_FACTOR_DST_COLOR                = 4
	BLEND_FACTOR_ONE_MINUS_DST_COLOR      = 5
	BLEND_FACTOR_SRC_ALPHA                = 6
	BLEND_FACTOR_ONE_MINUS_SRC_ALPHA      = 7
	BLEND_FACTOR_DST_ALPHA                = 8
	BLEND_FACTOR_ONE_MINUS_DST_ALPHA      = 9
	BLEND_FACTOR_CONSTANT_COLOR           = 10
	BLEND_FACTOR_ONE_MINUS_CONSTANT_COLOR = 11
	BLEND_FACTOR_CONSTANT_ALPHA           = 12
	BLEND_FACTOR_ONE_MINUS_CONSTANT_ALPHA = 13
	BLEND_FACTOR_SRC_ALPHA_SATURATE       = 14
)

// VkBlendOp
const (
	BLEND_OP_ADD              = 0
	BLEND_OP_SUBTRACT         = 1
	BLEND_OP_REVERSE_SUBTRACT = 2
	BLEND_OP_MIN              = 3
	BLEND_OP_MAX              = 4
)

// VkColorComponentFlagBits
const (
	COLOR_COMPONENT_R_BIT = 0x00000001
	COLOR_COMPONENT_G_BIT = 0x00000002
	COLOR_COMPONENT_B_BIT = 0x00000004
	COLOR_COMPONENT_A_BIT = 0x00000008
)

// VkLogicOp
const (
	LOGIC_OP_CLEAR         = 0
	LOGIC_OP_AND           = 1
	LOGIC_OP_AND_REVERSE   = 2
	LOGIC_OP_COPY          = 3
	LOGIC_OP_AND_INVERTED  = 4
	LOGIC_OP_NO_OP         = 5
	LOGIC_OP_XOR           = 6
	LOGIC_OP_OR            = 7
	LOGIC_OP_NOR           = 8
	LOGIC_OP_EQUIVALENT    = 9
	LOGIC_OP_INVERT        = 10
	LOGIC_OP_OR_REVERSE    = 11
	LOGIC_OP_COPY_INVERTED = 12
	LOGIC_OP_OR_INVERTED   = 13
	LOGIC_OP_NAND          = 14
	LOGIC_OP_SET           = 15
)

// VkSampleCountFlagBits
const (
	SAMPLE_COUNT_1_BIT  = 0x00000001
	SAMPLE_COUNT_2_BIT  = 0x00000002
	SAMPLE_COUNT_4_BIT  = 0x00000004
	SAMPLE_COUNT_8_BIT  = 0x00000008
	SAMPLE_COUNT_16_BIT = 0x00000010
	SAMPLE_COUNT_32_BIT = 0x00000020
	SAMPLE_COUNT_64_BIT = 0x00000040
)

// VkDynamicState
const (
	DYNAMIC_STATE_VIEWPORT                  = 0
	DYNAMIC_STATE_SCISSOR                   = 1
	DYNAMIC_STATE_LINE_WIDTH                = 2
	DYNAMIC_STATE_DEPTH_BIAS                = 3
	DYNAMIC_STATE_BLEND_CONSTANTS           = 4
	DYNAMIC_STATE_DEPTH_BOUNDS              = 5
	DYNAMIC_STATE_STENCIL_COMPARE_MASK      = 6
	DYNAMIC_STATE_STENCIL_WRITE_MASK        = 7
	DYNAMIC_STATE_STENCIL_REFERENCE         = 8
	DYNAMIC_STATE_CULL_MODE                 = 1000267000
	DYNAMIC_STATE_FRONT_FACE                = 1000267001
	DYNAMIC_STATE_PRIMITIVE_TOPOLOGY        = 1000267002
	DYNAMIC_STATE_VIEWPORT_WITH_COUNT       = 1000267003
	DYNAMIC_STATE_SCISSOR_WITH_COUNT        = 1000267004
	DYNAMIC_STATE_DEPTH_TEST_ENABLE         = 1000267006
	DYNAMIC_STATE_DEPTH_WRITE_ENABLE        = 1000267007
	DYNAMIC_STATE_DEPTH_COMPARE_OP          = 1000267008
	DYNAMIC_STATE_STENCIL_TEST_ENABLE       = 1000267010
	DYNAMIC_STATE_STENCIL_OP                = 1000267011
	DYNAMIC_STATE_PRIMITIVE_RESTART_ENABLE  = 1000377004
	DYNAMIC_STATE_POLYGON_MODE_EXT          = 1000455004
	DYNAMIC_STATE_COLOR_BLEND_ENABLE_EXT    = 1000455010
	DYNAMIC_STATE_COLOR_BLEND_EQUATION_EXT  = 1000455011
	DYNAMIC_STATE_COLOR_WRITE_MASK_EXT      = 1000455012
)

// VkFormat
const (
	FORMAT_UNDEFINED                = 0
	FORMAT_R8_UNORM                 = 9
	FORMAT_R8G8_UNORM               = 16
	FORMAT_R8G8B8A8_UNORM           = 37
	FORMAT_R8G8B8A8_SNORM           = 38
	FORMAT_R8G8B8A8_UINT            = 41
	FORMAT_R8G8B8A8_SRGB            = 43
	FORMAT_B8G8R8A8_UNORM           = 44
	FORMAT_B8G8R8A8_SRGB            = 50
	FORMAT_A2B10G10R10_UNORM_PACK32 = 64
	FORMAT_R16G16_SFLOAT            = 83
	FORMAT_R16G16B16A16_SFLOAT      = 97
	FORMAT_R32_UINT                 = 98
	FORMAT_R32_SINT                 = 99
	FORMAT_R32_SFLOAT               = 100
	FORMAT_R32G32_UINT              = 101
	FORMAT_R32G32_SINT              = 102
	FORMAT_R32G32_SFLOAT            = 103
	FORMAT_R32G32B32_UINT           = 104
	FORMAT_R32G32B32_SINT           = 105
	FORMAT_R32G32B32_SFLOAT         = 106
	FORMAT_R32G32B32A32_UINT        = 107
	FORMAT_R32G32B32A32_SINT        = 108
	FORMAT_R32G32B32A32_SFLOAT      = 109
	FORMAT_B10G11R11_UFLOAT_PACK32  = 122
	FORMAT_D16_UNORM                = 124
	FORMAT_X8_D24_UNORM_PACK32      = 125
	FORMAT_D32_SFLOAT               = 126
	FORMAT_S8_UINT                  = 127
	FORMAT_D16_UNORM_S8_UINT        = 128
	FORMAT_D24_UNORM_S8_UINT        = 129
	FORMAT_D32_SFLOAT_S8_UINT       = 130
)
