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
	"sync"
	"time"
)

type mockDevice struct {
	mtx  sync.Mutex
	next Handle

	modules   map[Handle]string
	pipelines map[Handle]string

	moduleCalls  int
	libraryCalls [fragmentKindCount]int
	linkCalls    int
	caches       []Handle
	libraries    []*LibraryCreateInfo
	links        []*LinkCreateInfo

	failModule  Result
	failLibrary map[FragmentKind]Result
	failLink    Result
	delay       time.Duration
}

var _ Device = (*mockDevice)(nil)

func newMockDevice() *mockDevice {
	return &mockDevice{
		modules:     map[Handle]string{},
		pipelines:   map[Handle]string{},
		failLibrary: map[FragmentKind]Result{},
	}
}

func (d *mockDevice) handle() Handle {
	d.next++
	return 0x1000 + d.next
}

func (d *mockDevice) CreateShaderModule(name string, code []uint32) (Handle, Result) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.moduleCalls++
	if d.failModule != ResultSuccess {
		return NullHandle, d.failModule
	}
	h := d.handle()
	d.modules[h] = name
	return h, ResultSuccess
}

func (d *mockDevice) DestroyShaderModule(module Handle) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	if _, ok := d.modules[module]; !ok {
		panic("double destroy of shader module")
	}
	delete(d.modules, module)
}

func (d *mockDevice) CreateGraphicsPipelineLibrary(name string, cache Handle, info *LibraryCreateInfo) (Handle, Result) {
	if d.delay > 0 {
		time.Sleep(d.delay)
	}
	d.mtx.Lock()
	defer d.mtx.Unlock()
	kind := info.State.Kind()
	d.libraryCalls[kind]++
	d.caches = append(d.caches, cache)
	if r, ok := d.failLibrary[kind]; ok {
		return NullHandle, r
	}
	d.libraries = append(d.libraries, info)
	h := d.handle()
	d.pipelines[h] = name
	return h, ResultSuccess
}

func (d *mockDevice) LinkGraphicsPipeline(name string, cache Handle, info *LinkCreateInfo) (Handle, Result) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.linkCalls++
	d.caches = append(d.caches, cache)
	if d.failLink != ResultSuccess {
		return NullHandle, d.failLink
	}
	d.links = append(d.links, info)
	h := d.handle()
	d.pipelines[h] = name
	return h, ResultSuccess
}

func (d *mockDevice) DestroyPipeline(pipeline Handle) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	if _, ok := d.pipelines[pipeline]; !ok {
		panic("double destroy of pipeline")
	}
	delete(d.pipelines, pipeline)
}

func (d *mockDevice) totalLibraryCalls() int {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	n := 0
	for _, c := range d.libraryCalls {
		n += c
	}
	return n
}

func (d *mockDevice) live() (modules, pipelines int) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return len(d.modules), len(d.pipelines)
}

func testShader(id string, words ...uint32) *Shader {
	return &Shader{ID: id, SPIRV: append([]uint32{0x07230203, 0x00010600}, words...)}
}

func testRequest(layout *PipelineLayout) GraphicsPipelineCreateInfo {
	return GraphicsPipelineCreateInfo{
		Layout: layout,
		Stages: []ShaderStageInfo{
			{Stage: ShaderStageVertex, Shader: testShader("tri.vert", 1), LinkTimeOptimization: true},
			{Stage: ShaderStageFragment, Shader: testShader("tri.frag", 2), LinkTimeOptimization: true},
		},
		VertexInput: VertexInputState{
			Attributes: []VertexAttribute{
				{Location: 0, Binding: 0, Format: FormatR32G32B32Sfloat, Offset: 0},
				{Location: 1, Binding: 0, Format: FormatR32G32Sfloat, Offset: 12},
			},
			Bindings: []VertexBinding{{Binding: 0, Stride: 20, InputRate: VertexInputRateVertex}},
		},
		InputAssembly: InputAssemblyState{Topology: VertexTopologyTriangleList},
		Viewport:      ViewportState{ViewportCount: 1, ScissorCount: 1},
		Rasterization: RasterizationState{CullMode: CullModeBack, FrontFace: FrontFaceCounterClockwise, LineWidth: 1},
		Multisample:   MultisampleState{RasterizationSamples: SampleCount1},
		DepthStencil: DepthStencilState{
			DepthTestEnable: true, DepthWriteEnable: true, DepthCompareOp: CompareOpLess,
		},
		DynamicStates: []DynamicState{DynamicStateViewport, DynamicStateScissor},
		ColorFormats:  []Format{FormatB8G8R8A8Unorm},
		DepthFormat:   FormatD32Sfloat,
	}
}
