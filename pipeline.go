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
	"sync/atomic"

	"goarrg.com/rhi/vxpl/internal/util"
	"goarrg.com/rhi/vxpl/internal/vk"
)

type PipelineBindPoint uint32

const (
	PipelineBindPointGraphics PipelineBindPoint = vk.PIPELINE_BIND_POINT_GRAPHICS
	PipelineBindPointCompute  PipelineBindPoint = vk.PIPELINE_BIND_POINT_COMPUTE
)

func (p PipelineBindPoint) String() string {
	switch p {
	case PipelineBindPointGraphics:
		return "Graphics"
	case PipelineBindPointCompute:
		return "Compute"

	default:
		abort("Unknown PipelineBindPoint: %d", p)
		return ""
	}
}

var pipelineLayoutSerial atomic.Uint64

/*
PipelineLayout wraps a layout created by the caller, two layouts are the
same only if they are the same *PipelineLayout even if the handles match.
*/
type PipelineLayout struct {
	id     string
	name   string
	handle Handle
}

func NewPipelineLayout(name string, handle Handle) *PipelineLayout {
	return &PipelineLayout{
		id:     genID(pipelineLayoutSerial.Add(1)),
		name:   name,
		handle: handle,
	}
}

func (l *PipelineLayout) Name() string   { return l.name }
func (l *PipelineLayout) Handle() Handle { return l.handle }

func (l *PipelineLayout) MarshalJSON() ([]byte, error) {
	buff := bytes.Buffer{}
	buff.WriteString("{")

	buff.WriteString(fmt.Sprintf("\"id\": %q,", l.id))
	buff.WriteString(fmt.Sprintf("\"name\": %q,", l.name))
	buff.WriteString(fmt.Sprintf("\"handle\": %q", toHex(l.handle)))

	buff.WriteString("}")
	return buff.Bytes(), nil
}

/*
Pipeline is an executable graphics pipeline linked from four fragments.
The caller owns it and must call Destroy, the fragments stay owned by the
Context and must outlive it.
*/
type Pipeline struct {
	noCopy    util.NoCopy
	device    Device
	name      string
	handle    Handle
	layout    *PipelineLayout
	fragments [fragmentKindCount]*Fragment
	lto       bool
}

func (p *Pipeline) Name() string { return p.name }

func (p *Pipeline) Handle() Handle {
	p.noCopy.Check()
	return p.handle
}

func (p *Pipeline) Layout() *PipelineLayout { return p.layout }

func (p *Pipeline) BindPoint() PipelineBindPoint { return PipelineBindPointGraphics }

// Fragments returns the fragments the pipeline was linked from, ordered by FragmentKind.
func (p *Pipeline) Fragments() [fragmentKindCount]*Fragment {
	return p.fragments
}

// LinkTimeOptimized reports whether the pipeline was linked with link time optimization.
func (p *Pipeline) LinkTimeOptimized() bool {
	return p.lto
}

func (p *Pipeline) Destroy() {
	p.noCopy.Check()
	p.device.DestroyPipeline(p.handle)
	p.handle = NullHandle
	p.noCopy.Close()
}

func (p *Pipeline) MarshalJSON() ([]byte, error) {
	buff := bytes.Buffer{}
	buff.WriteString("{")

	buff.WriteString(fmt.Sprintf("\"name\": %q,", p.name))
	buff.WriteString(fmt.Sprintf("\"handle\": %q,", toHex(p.handle)))
	buff.WriteString(fmt.Sprintf("\"layout\": %s,", jsonString(p.layout)))
	buff.WriteString(fmt.Sprintf("\"linkTimeOptimization\": %t,", p.lto))

	buff.WriteString("\"fragments\": [")
	for i, f := range p.fragments {
		if i > 0 {
			buff.WriteString(",")
		}
		buff.WriteString(fmt.Sprintf("%q", f.name))
	}
	buff.WriteString("]")

	buff.WriteString("}")
	return buff.Bytes(), nil
}
