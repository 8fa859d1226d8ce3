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
	"encoding/binary"
	"hash/fnv"
	"unsafe"

	"goarrg.com/asset"
	"goarrg.com/debug"

	"goarrg.com/rhi/vxpl"
	"goarrg.com/rhi/vxpl/nulldev"
)

// dirLoader loads "<id>.spv" files.
type dirLoader struct {
	fs *asset.FileSystem
}

func (l dirLoader) LoadShader(id string) (*vxpl.Shader, error) {
	f, err := l.fs.Open(id + ".spv")
	if err != nil {
		return nil, debug.ErrorWrapf(err, "Failed to open shader %q", id)
	}
	a := f.(*asset.File)
	defer a.Close()

	size := int(a.Size())
	if size == 0 || size%4 != 0 {
		return nil, debug.Errorf("Shader %q is %d bytes, not a SPIR-V module", id, size)
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(a.Uintptr())), size)
	code := make([]uint32, size/4)
	for i := range code {
		code[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return &vxpl.Shader{ID: id, SPIRV: code}, nil
}

// syntheticLoader makes up a distinct module per id, for dry runs without shaders.
type syntheticLoader struct{}

func (syntheticLoader) LoadShader(id string) (*vxpl.Shader, error) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return nulldev.SyntheticShader(id, h.Sum32()), nil
}
