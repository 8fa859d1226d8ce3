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
	"slices"

	"goarrg.com/rhi/vxpl/internal/vk"
)

// Format is used both for attachments and for vertex attributes.
type Format uint32

const (
	FormatUndefined              Format = vk.FORMAT_UNDEFINED
	FormatR8Unorm                Format = vk.FORMAT_R8_UNORM
	FormatR8G8Unorm              Format = vk.FORMAT_R8G8_UNORM
	FormatR8G8B8A8Unorm          Format = vk.FORMAT_R8G8B8A8_UNORM
	FormatR8G8B8A8Snorm          Format = vk.FORMAT_R8G8B8A8_SNORM
	FormatR8G8B8A8Uint           Format = vk.FORMAT_R8G8B8A8_UINT
	FormatR8G8B8A8Srgb           Format = vk.FORMAT_R8G8B8A8_SRGB
	FormatB8G8R8A8Unorm          Format = vk.FORMAT_B8G8R8A8_UNORM
	FormatB8G8R8A8Srgb           Format = vk.FORMAT_B8G8R8A8_SRGB
	FormatA2B10G10R10UnormPack32 Format = vk.FORMAT_A2B10G10R10_UNORM_PACK32
	FormatR16G16Sfloat           Format = vk.FORMAT_R16G16_SFLOAT
	FormatR16G16B16A16Sfloat     Format = vk.FORMAT_R16G16B16A16_SFLOAT
	FormatR32Uint                Format = vk.FORMAT_R32_UINT
	FormatR32Sint                Format = vk.FORMAT_R32_SINT
	FormatR32Sfloat              Format = vk.FORMAT_R32_SFLOAT
	FormatR32G32Uint             Format = vk.FORMAT_R32G32_UINT
	FormatR32G32Sint             Format = vk.FORMAT_R32G32_SINT
	FormatR32G32Sfloat           Format = vk.FORMAT_R32G32_SFLOAT
	FormatR32G32B32Uint          Format = vk.FORMAT_R32G32B32_UINT
	FormatR32G32B32Sint          Format = vk.FORMAT_R32G32B32_SINT
	FormatR32G32B32Sfloat        Format = vk.FORMAT_R32G32B32_SFLOAT
	FormatR32G32B32A32Uint       Format = vk.FORMAT_R32G32B32A32_UINT
	FormatR32G32B32A32Sint       Format = vk.FORMAT_R32G32B32A32_SINT
	FormatR32G32B32A32Sfloat     Format = vk.FORMAT_R32G32B32A32_SFLOAT
	FormatB10G11R11UfloatPack32  Format = vk.FORMAT_B10G11R11_UFLOAT_PACK32
	FormatD16Unorm               Format = vk.FORMAT_D16_UNORM
	FormatX8D24UnormPack32       Format = vk.FORMAT_X8_D24_UNORM_PACK32
	FormatD32Sfloat              Format = vk.FORMAT_D32_SFLOAT
	FormatS8Uint                 Format = vk.FORMAT_S8_UINT
	FormatD16UnormS8Uint         Format = vk.FORMAT_D16_UNORM_S8_UINT
	FormatD24UnormS8Uint         Format = vk.FORMAT_D24_UNORM_S8_UINT
	FormatD32SfloatS8Uint        Format = vk.FORMAT_D32_SFLOAT_S8_UINT
)

var formats = []Format{
	FormatUndefined, FormatR8Unorm, FormatR8G8Unorm, FormatR8G8B8A8Unorm, FormatR8G8B8A8Snorm,
	FormatR8G8B8A8Uint, FormatR8G8B8A8Srgb, FormatB8G8R8A8Unorm, FormatB8G8R8A8Srgb,
	FormatA2B10G10R10UnormPack32, FormatR16G16Sfloat, FormatR16G16B16A16Sfloat,
	FormatR32Uint, FormatR32Sint, FormatR32Sfloat, FormatR32G32Uint, FormatR32G32Sint,
	FormatR32G32Sfloat, FormatR32G32B32Uint, FormatR32G32B32Sint, FormatR32G32B32Sfloat,
	FormatR32G32B32A32Uint, FormatR32G32B32A32Sint, FormatR32G32B32A32Sfloat,
	FormatB10G11R11UfloatPack32, FormatD16Unorm, FormatX8D24UnormPack32, FormatD32Sfloat,
	FormatS8Uint, FormatD16UnormS8Uint, FormatD24UnormS8Uint, FormatD32SfloatS8Uint,
}

func (f Format) String() string {
	switch f {
	case FormatUndefined:
		return "UNDEFINED"
	case FormatR8Unorm:
		return "R8_UNORM"
	case FormatR8G8Unorm:
		return "R8G8_UNORM"
	case FormatR8G8B8A8Unorm:
		return "R8G8B8A8_UNORM"
	case FormatR8G8B8A8Snorm:
		return "R8G8B8A8_SNORM"
	case FormatR8G8B8A8Uint:
		return "R8G8B8A8_UINT"
	case FormatR8G8B8A8Srgb:
		return "R8G8B8A8_SRGB"
	case FormatB8G8R8A8Unorm:
		return "B8G8R8A8_UNORM"
	case FormatB8G8R8A8Srgb:
		return "B8G8R8A8_SRGB"
	case FormatA2B10G10R10UnormPack32:
		return "A2B10G10R10_UNORM_PACK32"
	case FormatR16G16Sfloat:
		return "R16G16_SFLOAT"
	case FormatR16G16B16A16Sfloat:
		return "R16G16B16A16_SFLOAT"
	case FormatR32Uint:
		return "R32_UINT"
	case FormatR32Sint:
		return "R32_SINT"
	case FormatR32Sfloat:
		return "R32_SFLOAT"
	case FormatR32G32Uint:
		return "R32G32_UINT"
	case FormatR32G32Sint:
		return "R32G32_SINT"
	case FormatR32G32Sfloat:
		return "R32G32_SFLOAT"
	case FormatR32G32B32Uint:
		return "R32G32B32_UINT"
	case FormatR32G32B32Sint:
		return "R32G32B32_SINT"
	case FormatR32G32B32Sfloat:
		return "R32G32B32_SFLOAT"
	case FormatR32G32B32A32Uint:
		return "R32G32B32A32_UINT"
	case FormatR32G32B32A32Sint:
		return "R32G32B32A32_SINT"
	case FormatR32G32B32A32Sfloat:
		return "R32G32B32A32_SFLOAT"
	case FormatB10G11R11UfloatPack32:
		return "B10G11R11_UFLOAT_PACK32"
	case FormatD16Unorm:
		return "D16_UNORM"
	case FormatX8D24UnormPack32:
		return "X8_D24_UNORM_PACK32"
	case FormatD32Sfloat:
		return "D32_SFLOAT"
	case FormatS8Uint:
		return "S8_UINT"
	case FormatD16UnormS8Uint:
		return "D16_UNORM_S8_UINT"
	case FormatD24UnormS8Uint:
		return "D24_UNORM_S8_UINT"
	case FormatD32SfloatS8Uint:
		return "D32_SFLOAT_S8_UINT"

	default:
		abort("Unknown Format: %d", f)
		return ""
	}
}

func (f *Format) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, formats, f)
}

func (f Format) valid() bool {
	return slices.Contains(formats, f)
}

func (f Format) hasDepth() bool {
	switch f {
	case FormatD16Unorm, FormatX8D24UnormPack32, FormatD32Sfloat,
		FormatD16UnormS8Uint, FormatD24UnormS8Uint, FormatD32SfloatS8Uint:
		return true
	}
	return false
}

func (f Format) hasStencil() bool {
	switch f {
	case FormatS8Uint, FormatD16UnormS8Uint, FormatD24UnormS8Uint, FormatD32SfloatS8Uint:
		return true
	}
	return false
}
