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
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"goarrg.com/debug"
)

// Shader is a compiled SPIR-V blob, ID is only used for naming and keys.
type Shader struct {
	ID    string
	SPIRV []uint32
}

func (s *Shader) codeHash() uint64 {
	h := fnv.New64a()
	var word [4]byte
	for _, w := range s.SPIRV {
		binary.LittleEndian.PutUint32(word[:], w)
		_, _ = h.Write(word[:])
	}
	return h.Sum64()
}

// ShaderLoader resolves ShaderStageInfo.ShaderID when no Shader is given.
type ShaderLoader interface {
	LoadShader(id string) (*Shader, error)
}

/*
ShaderStageInfo is one programmable stage of a request, either Shader or ShaderID
must be set. A pipeline is link time optimized only if every stage asks for it.
*/
type ShaderStageInfo struct {
	Stage                ShaderStage
	Shader               *Shader
	ShaderID             string
	EntryPoint           string
	SpecConstants        []uint32
	LinkTimeOptimization bool
}

func (s *ShaderStageInfo) entryPoint() string {
	if s.EntryPoint == "" {
		return "main"
	}
	return s.EntryPoint
}

// id includes the code hash so shaders sharing an ID with different code never collide.
func (s *ShaderStageInfo) id() string {
	spec := make([]any, len(s.SpecConstants))
	for i, c := range s.SpecConstants {
		spec[i] = c
	}
	return genID(s.Stage, s.Shader.ID, s.Shader.codeHash(), s.entryPoint(), genID(spec...))
}

func (s *ShaderStageInfo) name() string {
	return s.Stage.String() + ":" + s.Shader.ID
}

func resolveStages(loader ShaderLoader, stages []ShaderStageInfo) ([]ShaderStageInfo, error) {
	ret := make([]ShaderStageInfo, len(stages))
	for i, s := range stages {
		if !s.Stage.valid() {
			return nil, debug.ErrorWrapf(ErrorInvalidRequest{Reason: fmt.Sprintf("unknown shader stage %d", s.Stage)},
				"Failed to resolve stage %d", i)
		}
		ret[i] = s
		if s.Shader != nil {
			continue
		}
		if s.ShaderID == "" {
			return nil, debug.ErrorWrapf(ErrorInvalidRequest{Reason: "stage has neither Shader nor ShaderID"},
				"Failed to resolve %s stage", s.Stage)
		}
		if loader == nil {
			return nil, debug.ErrorWrapf(ErrorInvalidRequest{Reason: "no ShaderLoader configured"},
				"Failed to resolve shader %q", s.ShaderID)
		}
		shader, err := loader.LoadShader(s.ShaderID)
		if err != nil {
			return nil, debug.ErrorWrapf(ErrorShaderLoadFailed{ShaderID: s.ShaderID, Err: err},
				"Failed to resolve %s stage", s.Stage)
		}
		if shader == nil {
			return nil, debug.ErrorWrapf(ErrorShaderLoadFailed{ShaderID: s.ShaderID, Err: debug.Errorf("loader returned a nil shader")},
				"Failed to resolve %s stage", s.Stage)
		}
		// loaders may hand the same *Shader to concurrent requests
		sh := *shader
		if sh.ID == "" {
			sh.ID = s.ShaderID
		}
		ret[i].Shader = &sh
	}
	return ret, nil
}
