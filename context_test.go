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
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePipelineBuildsEachFragmentOnce(t *testing.T) {
	device := newMockDevice()
	ctx := NewContext(device, Config{Name: "test"})
	defer ctx.Destroy()
	assert.Equal(t, CacheStateEmpty, ctx.State())

	layout := NewPipelineLayout("main", 0xA)
	p1, err := ctx.CreatePipeline(testRequest(layout))
	require.NoError(t, err)
	assert.Equal(t, CacheStatePopulated, ctx.State())
	assert.Equal(t, 4, device.totalLibraryCalls())
	assert.Equal(t, 2, device.moduleCalls)

	p2, err := ctx.CreatePipeline(testRequest(layout))
	require.NoError(t, err)
	assert.Equal(t, 4, device.totalLibraryCalls(), "second request must not build")
	assert.Equal(t, 2, device.moduleCalls)
	assert.Equal(t, p1.Fragments(), p2.Fragments())

	for _, s := range ctx.Stats() {
		assert.Equal(t, 1, s.Size, s.Kind.String())
		assert.Equal(t, uint64(1), s.Misses, s.Kind.String())
		assert.Equal(t, uint64(1), s.Hits, s.Kind.String())
	}

	p1.Destroy()
	p2.Destroy()
}

func TestCreatePipelineLinksEveryCall(t *testing.T) {
	device := newMockDevice()
	ctx := NewContext(device, Config{})
	defer ctx.Destroy()

	layout := NewPipelineLayout("main", 0xA)
	p1, err := ctx.CreatePipeline(testRequest(layout))
	require.NoError(t, err)
	p2, err := ctx.CreatePipeline(testRequest(layout))
	require.NoError(t, err)

	assert.Equal(t, 2, device.linkCalls)
	assert.NotEqual(t, p1.Handle(), p2.Handle())
	assert.Equal(t, device.links[0].Libraries, device.links[1].Libraries)

	p1.Destroy()
	_, live := device.live()
	assert.Equal(t, 5, live, "destroying one pipeline must leave the other and the fragments")
	p2.Destroy()
}

func TestCreatePipelineSharesFragments(t *testing.T) {
	device := newMockDevice()
	ctx := NewContext(device, Config{})
	defer ctx.Destroy()

	layout := NewPipelineLayout("main", 0xA)
	a := testRequest(layout)
	b := testRequest(layout)
	b.ColorBlendAttachments = []ColorBlendAttachmentState{{
		BlendEnable:    true,
		Color:          BlendEquation{Src: BlendFactorSrcAlpha, Dst: BlendFactorOneMinusSrcAlpha, Op: BlendOpAdd},
		Alpha:          BlendEquation{Src: BlendFactorOne, Dst: BlendFactorZero, Op: BlendOpAdd},
		ColorWriteMask: ColorComponentRGBA,
	}}

	pa, err := ctx.CreatePipeline(a)
	require.NoError(t, err)
	pb, err := ctx.CreatePipeline(b)
	require.NoError(t, err)

	fa, fb := pa.Fragments(), pb.Fragments()
	assert.Same(t, fa[FragmentKindVertexInput], fb[FragmentKindVertexInput])
	assert.Same(t, fa[FragmentKindPreRasterization], fb[FragmentKindPreRasterization])
	assert.Same(t, fa[FragmentKindFragmentShading], fb[FragmentKindFragmentShading])
	assert.NotSame(t, fa[FragmentKindFragmentOutput], fb[FragmentKindFragmentOutput])

	assert.Equal(t, 5, device.totalLibraryCalls())
	assert.Equal(t, 2, device.libraryCalls[FragmentKindFragmentOutput])
	assert.Equal(t, 2, device.linkCalls)

	pa.Destroy()
	pb.Destroy()
}

func TestCreatePipelineFullStructuralEquality(t *testing.T) {
	layout := NewPipelineLayout("main", 0xA)

	tests := []struct {
		name   string
		kind   FragmentKind
		modify func(*GraphicsPipelineCreateInfo)
	}{
		{"attribute format", FragmentKindVertexInput, func(i *GraphicsPipelineCreateInfo) {
			i.VertexInput.Attributes[1].Format = FormatR32G32B32A32Sfloat
		}},
		{"binding stride", FragmentKindVertexInput, func(i *GraphicsPipelineCreateInfo) {
			i.VertexInput.Bindings[0].Stride = 32
		}},
		{"shader code", FragmentKindPreRasterization, func(i *GraphicsPipelineCreateInfo) {
			i.Stages[0].Shader = testShader("tri.vert", 3)
		}},
		{"entry point", FragmentKindPreRasterization, func(i *GraphicsPipelineCreateInfo) {
			i.Stages[0].EntryPoint = "vs_main"
		}},
		{"fragment entry point", FragmentKindFragmentShading, func(i *GraphicsPipelineCreateInfo) {
			i.Stages[1].EntryPoint = "fs_main"
		}},
		{"spec constants", FragmentKindFragmentShading, func(i *GraphicsPipelineCreateInfo) {
			i.Stages[1].SpecConstants = []uint32{4}
		}},
		{"layout", FragmentKindPreRasterization, func(i *GraphicsPipelineCreateInfo) {
			i.Layout = NewPipelineLayout("main", 0xA)
		}},
		{"depth compare", FragmentKindFragmentShading, func(i *GraphicsPipelineCreateInfo) {
			i.DepthStencil.DepthCompareOp = CompareOpGreater
		}},
		{"samples", FragmentKindFragmentOutput, func(i *GraphicsPipelineCreateInfo) {
			i.Multisample.RasterizationSamples = SampleCount4
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := newMockDevice()
			ctx := NewContext(device, Config{})
			defer ctx.Destroy()

			pa, err := ctx.CreatePipeline(testRequest(layout))
			require.NoError(t, err)
			defer pa.Destroy()

			b := testRequest(layout)
			tt.modify(&b)
			pb, err := ctx.CreatePipeline(b)
			require.NoError(t, err)
			defer pb.Destroy()

			for k := range fragmentKindCount {
				if k == tt.kind {
					assert.NotSame(t, pa.Fragments()[k], pb.Fragments()[k], k.String())
					assert.Equal(t, 2, device.libraryCalls[k], k.String())
				} else if tt.name != "layout" || k == FragmentKindVertexInput || k == FragmentKindFragmentOutput {
					assert.Same(t, pa.Fragments()[k], pb.Fragments()[k], k.String())
				}
			}
		})
	}
}

func TestCreatePipelineEntryPointCannotForgeStages(t *testing.T) {
	layout := NewPipelineLayout("main", 0xA)
	device := newMockDevice()
	ctx := NewContext(device, Config{})
	defer ctx.Destroy()

	geom := testShader("tri.geom", 7)
	a := testRequest(layout)
	a.Stages = []ShaderStageInfo{
		a.Stages[0],
		{Stage: ShaderStageGeometry, Shader: geom},
		a.Stages[1],
	}
	pa, err := ctx.CreatePipeline(a)
	require.NoError(t, err)
	defer pa.Destroy()

	// spells out the geometry stage of a inside an unquoted key
	b := testRequest(layout)
	b.Stages[0].EntryPoint = "main,[]],[Geometry,tri.geom," + toHex(geom.codeHash()) + ",main"
	pb, err := ctx.CreatePipeline(b)
	require.NoError(t, err)
	defer pb.Destroy()

	assert.NotSame(t, pa.Fragments()[FragmentKindPreRasterization], pb.Fragments()[FragmentKindPreRasterization])
	assert.Equal(t, 2, device.libraryCalls[FragmentKindPreRasterization])
	assert.Same(t, pa.Fragments()[FragmentKindFragmentShading], pb.Fragments()[FragmentKindFragmentShading])
}

func TestCreatePipelineFlags(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		device := newMockDevice()
		ctx := NewContext(device, Config{PipelineCache: 0xCAC4E})
		defer ctx.Destroy()

		p, err := ctx.CreatePipeline(testRequest(NewPipelineLayout("main", 0xA)))
		require.NoError(t, err)
		defer p.Destroy()

		for _, info := range device.libraries {
			assert.Equal(t, PipelineCreateLibrary|PipelineCreateRetainLinkTimeOptimizationInfo, info.Flags)
		}
		for _, c := range device.caches {
			assert.Equal(t, Handle(0xCAC4E), c)
		}
		assert.Equal(t, PipelineCreateLinkTimeOptimization, device.links[0].Flags)
		assert.True(t, p.LinkTimeOptimized())
		assert.Equal(t, Handle(0xA), device.links[0].Layout)
	})

	t.Run("stage opted out", func(t *testing.T) {
		device := newMockDevice()
		ctx := NewContext(device, Config{})
		defer ctx.Destroy()

		info := testRequest(NewPipelineLayout("main", 0xA))
		info.Stages[1].LinkTimeOptimization = false
		p, err := ctx.CreatePipeline(info)
		require.NoError(t, err)
		defer p.Destroy()

		assert.Equal(t, PipelineCreateFlags(0), device.links[0].Flags)
		assert.False(t, p.LinkTimeOptimized())
	})

	t.Run("disabled", func(t *testing.T) {
		device := newMockDevice()
		ctx := NewContext(device, Config{DisableRetainLinkTimeInfo: true, DisableLinkTimeOptimization: true})
		defer ctx.Destroy()

		p, err := ctx.CreatePipeline(testRequest(NewPipelineLayout("main", 0xA)))
		require.NoError(t, err)
		defer p.Destroy()

		for _, info := range device.libraries {
			assert.Equal(t, PipelineCreateLibrary, info.Flags)
		}
		assert.Equal(t, PipelineCreateFlags(0), device.links[0].Flags)
	})
}

func TestCreatePipelineLibraryLayouts(t *testing.T) {
	device := newMockDevice()
	ctx := NewContext(device, Config{})
	defer ctx.Destroy()

	p, err := ctx.CreatePipeline(testRequest(NewPipelineLayout("main", 0xA)))
	require.NoError(t, err)
	defer p.Destroy()

	require.Len(t, device.libraries, 4)
	for _, info := range device.libraries {
		switch s := info.State.(type) {
		case *VertexInputLibraryState:
			assert.Equal(t, NullHandle, info.Layout)
			assert.Len(t, s.Attributes, 2)
		case *PreRasterizationLibraryState:
			assert.Equal(t, Handle(0xA), info.Layout)
			require.Len(t, s.Stages, 1)
			assert.Equal(t, "main", s.Stages[0].EntryPoint)
			assert.Equal(t, []DynamicState{DynamicStateViewport, DynamicStateScissor}, info.DynamicStates)
		case *FragmentShadingLibraryState:
			assert.Equal(t, Handle(0xA), info.Layout)
			require.Len(t, s.Stages, 1)
			assert.Equal(t, ShaderStageFragment, s.Stages[0].Stage)
		case *FragmentOutputLibraryState:
			assert.Equal(t, NullHandle, info.Layout)
			assert.Equal(t, []ColorBlendAttachmentState{DefaultColorBlendAttachment()}, s.ColorBlendAttachments)
		}
		assert.Equal(t, info.State.Kind().libraryFlags(), info.LibraryFlags())
	}
}

func TestCreatePipelineCompileFailure(t *testing.T) {
	device := newMockDevice()
	device.failLibrary[FragmentKindFragmentShading] = ResultErrorInvalidShader
	ctx := NewContext(device, Config{})
	defer ctx.Destroy()

	layout := NewPipelineLayout("main", 0xA)
	_, err := ctx.CreatePipeline(testRequest(layout))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrorFragmentCompilationFailed{})
	assert.ErrorIs(t, err, ErrorDriverCompileFailed{})

	var compileErr ErrorFragmentCompilationFailed
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, FragmentKindFragmentShading, compileErr.Kind)
	assert.Equal(t, ResultErrorInvalidShader, compileErr.Result)

	assert.Equal(t, 0, device.linkCalls)
	stats := ctx.Stats()
	assert.Equal(t, 0, stats[FragmentKindFragmentShading].Size)
	assert.Equal(t, uint64(1), stats[FragmentKindFragmentShading].Failures)

	// modules of the failed build are released
	modules, _ := device.live()
	assert.Equal(t, 1, modules)

	// the failure is not cached, a retry builds again
	delete(device.failLibrary, FragmentKindFragmentShading)
	p, err := ctx.CreatePipeline(testRequest(layout))
	require.NoError(t, err)
	defer p.Destroy()
	assert.Equal(t, 2, device.libraryCalls[FragmentKindFragmentShading])
	assert.Equal(t, 1, device.libraryCalls[FragmentKindPreRasterization])
}

func TestCreatePipelineShaderModuleFailure(t *testing.T) {
	device := newMockDevice()
	device.failModule = ResultErrorOutOfDeviceMemory
	ctx := NewContext(device, Config{})
	defer ctx.Destroy()

	_, err := ctx.CreatePipeline(testRequest(NewPipelineLayout("main", 0xA)))
	assert.ErrorIs(t, err, ErrorFragmentCompilationFailed{})

	var compileErr ErrorFragmentCompilationFailed
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, FragmentKindPreRasterization, compileErr.Kind)
	assert.Equal(t, ResultErrorOutOfDeviceMemory, compileErr.Result)
	assert.Equal(t, 0, device.libraryCalls[FragmentKindPreRasterization])
}

func TestCreatePipelineLinkFailure(t *testing.T) {
	device := newMockDevice()
	device.failLink = ResultErrorOutOfHostMemory
	ctx := NewContext(device, Config{})
	defer ctx.Destroy()

	_, err := ctx.CreatePipeline(testRequest(NewPipelineLayout("main", 0xA)))
	assert.ErrorIs(t, err, ErrorDriverLinkFailed{})

	var linkErr ErrorDriverLinkFailed
	require.True(t, errors.As(err, &linkErr))
	assert.Equal(t, ResultErrorOutOfHostMemory, linkErr.Result)

	for _, s := range ctx.Stats() {
		assert.Equal(t, 1, s.Size, "fragments stay cached after a link failure")
	}
}

type mapLoader map[string]*Shader

func (l mapLoader) LoadShader(id string) (*Shader, error) {
	s, ok := l[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &Shader{ID: s.ID, SPIRV: s.SPIRV}, nil
}

func TestCreatePipelineShaderLoader(t *testing.T) {
	loader := mapLoader{
		"tri.vert": testShader("tri.vert", 1),
		"tri.frag": testShader("tri.frag", 2),
	}
	device := newMockDevice()
	ctx := NewContext(device, Config{ShaderLoader: loader})
	defer ctx.Destroy()

	layout := NewPipelineLayout("main", 0xA)
	byShader, err := ctx.CreatePipeline(testRequest(layout))
	require.NoError(t, err)
	defer byShader.Destroy()

	info := testRequest(layout)
	info.Stages[0].Shader, info.Stages[0].ShaderID = nil, "tri.vert"
	info.Stages[1].Shader, info.Stages[1].ShaderID = nil, "tri.frag"
	byID, err := ctx.CreatePipeline(info)
	require.NoError(t, err)
	defer byID.Destroy()
	assert.Equal(t, byShader.Fragments(), byID.Fragments())

	info.Stages[1].ShaderID = "missing.frag"
	_, err = ctx.CreatePipeline(info)
	assert.ErrorIs(t, err, ErrorShaderLoadFailed{})
}

type sharedLoader struct{ shader *Shader }

func (l sharedLoader) LoadShader(string) (*Shader, error) { return l.shader, nil }

func TestCreatePipelineLoaderShaderNotModified(t *testing.T) {
	shared := &Shader{SPIRV: testShader("", 1).SPIRV}
	ctx := NewContext(newMockDevice(), Config{ShaderLoader: sharedLoader{shared}})
	defer ctx.Destroy()

	layout := NewPipelineLayout("main", 0xA)
	var wg sync.WaitGroup
	for _, id := range []string{"a.vert", "b.vert", "c.vert", "d.vert"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			info := testRequest(layout)
			info.Stages[0].Shader, info.Stages[0].ShaderID = nil, id
			p, err := ctx.CreatePipeline(info)
			if assert.NoError(t, err) {
				p.Destroy()
			}
		}()
	}
	wg.Wait()
	assert.Empty(t, shared.ID)

	info := testRequest(layout)
	info.Stages[0].Shader, info.Stages[0].ShaderID = nil, "a.vert"
	p, err := ctx.CreatePipeline(info)
	require.NoError(t, err)
	defer p.Destroy()
	assert.Equal(t, "[pre_rasterization:main,Vertex:a.vert]", p.Fragments()[FragmentKindPreRasterization].Name())
}

func TestCreatePipelineNilLoadedShader(t *testing.T) {
	ctx := NewContext(newMockDevice(), Config{ShaderLoader: sharedLoader{}})
	defer ctx.Destroy()

	info := testRequest(NewPipelineLayout("main", 0xA))
	info.Stages[0].Shader, info.Stages[0].ShaderID = nil, "tri.vert"
	_, err := ctx.CreatePipeline(info)
	assert.ErrorIs(t, err, ErrorShaderLoadFailed{})
}

func TestCreatePipelineUnknownStage(t *testing.T) {
	ctx := NewContext(newMockDevice(), Config{})
	defer ctx.Destroy()

	info := testRequest(NewPipelineLayout("main", 0xA))
	info.Stages[0].Stage = ShaderStage(0x4000)
	info.Stages[0].Shader, info.Stages[0].ShaderID = nil, "tri.vert"
	_, err := ctx.CreatePipeline(info)
	assert.ErrorIs(t, err, ErrorInvalidRequest{})
}

func TestCreatePipelineWithoutLoader(t *testing.T) {
	ctx := NewContext(newMockDevice(), Config{})
	defer ctx.Destroy()

	info := testRequest(NewPipelineLayout("main", 0xA))
	info.Stages[0].Shader, info.Stages[0].ShaderID = nil, "tri.vert"
	_, err := ctx.CreatePipeline(info)
	assert.ErrorIs(t, err, ErrorInvalidRequest{})
}

func TestCreatePipelineConcurrent(t *testing.T) {
	device := newMockDevice()
	device.delay = 5 * time.Millisecond
	ctx := NewContext(device, Config{})
	defer ctx.Destroy()

	layout := NewPipelineLayout("main", 0xA)
	const n = 32
	pipelines := make([]*Pipeline, n)
	errs := make([]error, n)

	wg := sync.WaitGroup{}
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pipelines[i], errs[i] = ctx.CreatePipeline(testRequest(layout))
		}()
	}
	wg.Wait()

	for i := range n {
		require.NoError(t, errs[i])
		assert.Equal(t, pipelines[0].Fragments(), pipelines[i].Fragments())
	}
	for k := range fragmentKindCount {
		assert.Equal(t, 1, device.libraryCalls[k], k.String())
	}
	assert.Equal(t, n, device.linkCalls)

	for _, p := range pipelines {
		p.Destroy()
	}
}

func TestDestroy(t *testing.T) {
	device := newMockDevice()
	ctx := NewContext(device, Config{})

	layout := NewPipelineLayout("main", 0xA)
	p, err := ctx.CreatePipeline(testRequest(layout))
	require.NoError(t, err)
	p.Destroy()

	modules, pipelines := device.live()
	assert.Equal(t, 2, modules)
	assert.Equal(t, 4, pipelines)

	ctx.Destroy()
	assert.Equal(t, CacheStateTornDown, ctx.State())
	modules, pipelines = device.live()
	assert.Equal(t, 0, modules)
	assert.Equal(t, 0, pipelines)
	for _, s := range ctx.Stats() {
		assert.Equal(t, 0, s.Size)
	}

	calls := device.totalLibraryCalls()
	_, err = ctx.CreatePipeline(testRequest(layout))
	assert.ErrorIs(t, err, ErrorContextDestroyed{})
	assert.Equal(t, calls, device.totalLibraryCalls())

	_, err = ctx.graphics.caches[FragmentKindVertexInput].getOrBuild(ctx, "key", "name",
		func(*Context) (*Fragment, error) {
			t.Fatal("build called after teardown")
			return nil, nil
		})
	assert.ErrorIs(t, err, ErrorContextDestroyed{})

	// a second Destroy is a no-op
	ctx.Destroy()
	assert.Equal(t, CacheStateTornDown, ctx.State())
}

func TestPipelineDestroyTwicePanics(t *testing.T) {
	ctx := NewContext(newMockDevice(), Config{})
	defer ctx.Destroy()

	p, err := ctx.CreatePipeline(testRequest(NewPipelineLayout("main", 0xA)))
	require.NoError(t, err)
	p.Destroy()
	assert.Panics(t, func() { p.Destroy() })
}

func TestContextMarshalJSON(t *testing.T) {
	ctx := NewContext(newMockDevice(), Config{Name: "dump"})
	defer ctx.Destroy()

	p, err := ctx.CreatePipeline(testRequest(NewPipelineLayout("main", 0xA)))
	require.NoError(t, err)
	defer p.Destroy()

	var dump struct {
		Name     string `json:"name"`
		Graphics map[string]json.RawMessage
	}
	require.NoError(t, json.Unmarshal([]byte(prettyString(ctx)), &dump))
	assert.Equal(t, "dump", dump.Name)
	assert.Contains(t, dump.Graphics, "vertex_input")
	assert.Contains(t, dump.Graphics, "fragment_output")
	assert.JSONEq(t, `"Populated"`, string(dump.Graphics["state"]))

	var pipeline map[string]any
	require.NoError(t, json.Unmarshal([]byte(prettyString(p)), &pipeline))
	assert.Len(t, pipeline["fragments"], 4)
}

func TestPipelineNaming(t *testing.T) {
	ctx := NewContext(newMockDevice(), Config{})
	defer ctx.Destroy()

	info := testRequest(NewPipelineLayout("main", 0xA))
	p, err := ctx.CreatePipeline(info)
	require.NoError(t, err)
	defer p.Destroy()
	f := p.Fragments()
	assert.Equal(t, f[0].Name()+f[1].Name()+f[2].Name()+f[3].Name(), p.Name())

	info.Name = "named"
	named, err := ctx.CreatePipeline(info)
	require.NoError(t, err)
	defer named.Destroy()
	assert.Equal(t, "named", named.Name())
	assert.Equal(t, PipelineBindPointGraphics, named.BindPoint())
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	cfg.validate()
	assert.Equal(t, "vxpl", cfg.Name)

	cfg = Config{DisableRetainLinkTimeInfo: true}
	assert.Panics(t, func() { cfg.validate() })
}
