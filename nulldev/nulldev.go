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

/*
Package nulldev is a vxpl.Device that never touches a GPU. It hands out fake
handles, checks the calls the way a validating driver would and counts them,
which makes it useful for dry runs and tests.
*/
package nulldev

import (
	"sync"

	"goarrg.com/debug"
	"goarrg.com/rhi/vxpl"
	"goarrg.com/rhi/vxpl/internal/util"
)

const spirvMagic = 0x07230203

var instance = struct {
	logger *debug.Logger
}{
	logger: debug.NewLogger("vxpl", "nulldev"),
}

func abort(fmt string, args ...any) {
	instance.logger.EPrintf(fmt, args...)
	util.Abort()
}

func SetLogLevel(l uint32) {
	instance.logger.SetLevel(l)
}

type Op int

const (
	OpCreateShaderModule Op = iota
	OpCreateGraphicsPipelineLibrary
	OpLinkGraphicsPipeline
	opCount
)

func (o Op) String() string {
	switch o {
	case OpCreateShaderModule:
		return "CreateShaderModule"
	case OpCreateGraphicsPipelineLibrary:
		return "CreateGraphicsPipelineLibrary"
	case OpLinkGraphicsPipeline:
		return "LinkGraphicsPipeline"

	default:
		abort("Unknown Op: %d", o)
		return ""
	}
}

type objectType int

const (
	objectShaderModule objectType = iota
	objectLibrary
	objectPipeline
)

type object struct {
	kind  objectType
	name  string
	flags vxpl.PipelineCreateFlags
	// only set for libraries
	fragment vxpl.FragmentKind
}

type Counts struct {
	ShaderModules int
	Libraries     [4]int
	Links         int
	Failures      int
	Destroyed     int
}

type Device struct {
	mtx      sync.Mutex
	next     vxpl.Handle
	objects  map[vxpl.Handle]object
	counts   Counts
	failNext [opCount]vxpl.Result
}

var _ vxpl.Device = (*Device)(nil)

func New() *Device {
	return &Device{
		objects: map[vxpl.Handle]object{},
	}
}

// FailNext makes the next call of op fail with r.
func (d *Device) FailNext(op Op, r vxpl.Result) {
	if op < 0 || op >= opCount {
		abort("Unknown Op: %d", op)
	}
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.failNext[op] = r
}

func (d *Device) Counts() Counts {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.counts
}

// Live returns the number of objects created and not yet destroyed.
func (d *Device) Live() int {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return len(d.objects)
}

// takeFailure must be called with mtx held.
func (d *Device) takeFailure(op Op) vxpl.Result {
	r := d.failNext[op]
	d.failNext[op] = vxpl.ResultSuccess
	if r != vxpl.ResultSuccess {
		d.counts.Failures++
		instance.logger.VPrintf("%s: injected failure %s", op, r)
	}
	return r
}

// insert must be called with mtx held.
func (d *Device) insert(o object) vxpl.Handle {
	d.next++
	h := vxpl.Handle(0xD0000000) + d.next
	d.objects[h] = o
	return h
}

func (d *Device) fail(op Op, name string, r vxpl.Result, fmt string, args ...any) (vxpl.Handle, vxpl.Result) {
	d.counts.Failures++
	instance.logger.WPrintf("%s %q: "+fmt, append([]any{op, name}, args...)...)
	return vxpl.NullHandle, r
}

func (d *Device) CreateShaderModule(name string, code []uint32) (vxpl.Handle, vxpl.Result) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if r := d.takeFailure(OpCreateShaderModule); r != vxpl.ResultSuccess {
		return vxpl.NullHandle, r
	}
	if len(code) < 5 || code[0] != spirvMagic {
		return d.fail(OpCreateShaderModule, name, vxpl.ResultErrorInvalidShader, "code is not SPIR-V")
	}

	d.counts.ShaderModules++
	return d.insert(object{kind: objectShaderModule, name: name}), vxpl.ResultSuccess
}

func (d *Device) CreateGraphicsPipelineLibrary(name string, cache vxpl.Handle, info *vxpl.LibraryCreateInfo) (vxpl.Handle, vxpl.Result) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if r := d.takeFailure(OpCreateGraphicsPipelineLibrary); r != vxpl.ResultSuccess {
		return vxpl.NullHandle, r
	}
	if info.Flags&vxpl.PipelineCreateLibrary == 0 {
		return d.fail(OpCreateGraphicsPipelineLibrary, name, vxpl.ResultErrorValidationFailed, "missing library flag")
	}

	kind := info.State.Kind()
	switch s := info.State.(type) {
	case *vxpl.PreRasterizationLibraryState:
		if info.Layout == vxpl.NullHandle {
			return d.fail(OpCreateGraphicsPipelineLibrary, name, vxpl.ResultErrorValidationFailed, "%s library without layout", kind)
		}
		if r := d.checkStages(s.Stages); r != vxpl.ResultSuccess {
			return d.fail(OpCreateGraphicsPipelineLibrary, name, r, "invalid shader stages")
		}
	case *vxpl.FragmentShadingLibraryState:
		if info.Layout == vxpl.NullHandle {
			return d.fail(OpCreateGraphicsPipelineLibrary, name, vxpl.ResultErrorValidationFailed, "%s library without layout", kind)
		}
		if r := d.checkStages(s.Stages); r != vxpl.ResultSuccess {
			return d.fail(OpCreateGraphicsPipelineLibrary, name, r, "invalid shader stages")
		}
	case *vxpl.FragmentOutputLibraryState:
		if len(s.ColorBlendAttachments) != len(s.ColorFormats) {
			return d.fail(OpCreateGraphicsPipelineLibrary, name, vxpl.ResultErrorValidationFailed,
				"%d blend attachments for %d color attachments", len(s.ColorBlendAttachments), len(s.ColorFormats))
		}
	}

	d.counts.Libraries[kind]++
	return d.insert(object{kind: objectLibrary, name: name, flags: info.Flags, fragment: kind}), vxpl.ResultSuccess
}

// checkStages must be called with mtx held.
func (d *Device) checkStages(stages []vxpl.ShaderStageCreateInfo) vxpl.Result {
	for _, s := range stages {
		if o, ok := d.objects[s.Module]; !ok || o.kind != objectShaderModule {
			return vxpl.ResultErrorValidationFailed
		}
		if s.EntryPoint == "" {
			return vxpl.ResultErrorValidationFailed
		}
	}
	return vxpl.ResultSuccess
}

func (d *Device) LinkGraphicsPipeline(name string, cache vxpl.Handle, info *vxpl.LinkCreateInfo) (vxpl.Handle, vxpl.Result) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if r := d.takeFailure(OpLinkGraphicsPipeline); r != vxpl.ResultSuccess {
		return vxpl.NullHandle, r
	}
	if len(info.Libraries) != 4 {
		return d.fail(OpLinkGraphicsPipeline, name, vxpl.ResultErrorValidationFailed, "%d libraries", len(info.Libraries))
	}
	for i, h := range info.Libraries {
		o, ok := d.objects[h]
		if !ok || o.kind != objectLibrary {
			return d.fail(OpLinkGraphicsPipeline, name, vxpl.ResultErrorValidationFailed, "library [%d] is not a live library", i)
		}
		if o.fragment != vxpl.FragmentKind(i) {
			return d.fail(OpLinkGraphicsPipeline, name, vxpl.ResultErrorValidationFailed, "library [%d] is %s", i, o.fragment)
		}
		if info.Flags&vxpl.PipelineCreateLinkTimeOptimization != 0 &&
			o.flags&vxpl.PipelineCreateRetainLinkTimeOptimizationInfo == 0 {
			return d.fail(OpLinkGraphicsPipeline, name, vxpl.ResultErrorValidationFailed,
				"link time optimization of library %q created without retained info", o.name)
		}
	}

	d.counts.Links++
	return d.insert(object{kind: objectPipeline, name: name, flags: info.Flags}), vxpl.ResultSuccess
}

func (d *Device) destroy(h vxpl.Handle, want objectType, what string) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	o, ok := d.objects[h]
	if !ok {
		abort("Destroying unknown %s: 0x%X", what, uint64(h))
	}
	if o.kind != want {
		abort("Destroying %q as a %s", o.name, what)
	}
	delete(d.objects, h)
	d.counts.Destroyed++
}

func (d *Device) DestroyShaderModule(module vxpl.Handle) {
	d.destroy(module, objectShaderModule, "shader module")
}

// DestroyPipeline destroys both libraries and linked pipelines.
func (d *Device) DestroyPipeline(pipeline vxpl.Handle) {
	d.mtx.Lock()
	o, ok := d.objects[pipeline]
	d.mtx.Unlock()
	if ok && o.kind == objectLibrary {
		d.destroy(pipeline, objectLibrary, "pipeline")
		return
	}
	d.destroy(pipeline, objectPipeline, "pipeline")
}

/*
SyntheticShader returns a shader with a valid SPIR-V header followed by body,
different bodies give different code hashes. Only nulldev accepts it.
*/
func SyntheticShader(id string, body ...uint32) *vxpl.Shader {
	code := append([]uint32{spirvMagic, 0x00010600, 0, 1, 0}, body...)
	return &vxpl.Shader{ID: id, SPIRV: code}
}
