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

	"goarrg.com/debug"
	"goarrg.com/rhi/vxpl/internal/util"
)

/*
Context owns the four fragment caches of one device. CreatePipeline is safe
for concurrent use, Destroy must not race with it and must be called before
the device is destroyed.
*/
type Context struct {
	noCopy   util.NoCopy
	logger   *debug.Logger
	device   Device
	config   config
	graphics graphicsState
}

func NewContext(device Device, cfg Config) *Context {
	if device == nil {
		abort("NewContext called with nil Device")
	}
	cfg.validate()

	c := &Context{
		logger: debug.NewLogger("vxpl", cfg.Name),
		device: device,
	}
	c.noCopy.Init()
	c.logger.IPrintf("User requested config: %s", prettyString(&cfg))
	c.config.use(cfg)
	c.graphics.init()
	return c
}

func (c *Context) SetLogLevel(l uint32) {
	c.logger.SetLevel(l)
}

func (c *Context) State() CacheState {
	c.noCopy.Check()
	return c.graphics.cacheState()
}

// Stats returns the counters of every fragment cache ordered by FragmentKind.
func (c *Context) Stats() []CacheStats {
	c.noCopy.Check()
	ret := make([]CacheStats, fragmentKindCount)
	for i := range c.graphics.caches {
		ret[i] = c.graphics.caches[i].stats()
	}
	return ret
}

/*
CreatePipeline decomposes info into its four fragments, builds the ones not yet
cached and links them. Every call links a new pipeline owned by the caller.
On error nothing is linked, fragments built before the failure stay cached.
*/
func (c *Context) CreatePipeline(info GraphicsPipelineCreateInfo) (*Pipeline, error) {
	c.noCopy.Check()
	if c.graphics.cacheState() == CacheStateTornDown {
		return nil, debug.ErrorWrapf(ErrorContextDestroyed{}, "Failed to create pipeline %q", info.Name)
	}

	stages, err := resolveStages(c.config.loader, info.Stages)
	if err != nil {
		return nil, err
	}
	info.Stages = stages

	vi, pr, fs, fo, err := Decompose(&info)
	if err != nil {
		return nil, err
	}

	var fragments [fragmentKindCount]*Fragment

	{
		name := vi.name()
		fragments[FragmentKindVertexInput], err = c.graphics.caches[FragmentKindVertexInput].getOrBuild(c, vi.id(), name,
			func(ctx *Context) (*Fragment, error) { return buildVertexInput(ctx, &vi, name) })
		if err != nil {
			return nil, err
		}
	}
	{
		name := pr.name()
		fragments[FragmentKindPreRasterization], err = c.graphics.caches[FragmentKindPreRasterization].getOrBuild(c, pr.id(), name,
			func(ctx *Context) (*Fragment, error) { return buildPreRasterization(ctx, &pr, name) })
		if err != nil {
			return nil, err
		}
	}
	{
		name := fs.name()
		fragments[FragmentKindFragmentShading], err = c.graphics.caches[FragmentKindFragmentShading].getOrBuild(c, fs.id(), name,
			func(ctx *Context) (*Fragment, error) { return buildFragmentShading(ctx, &fs, name) })
		if err != nil {
			return nil, err
		}
	}
	{
		name := fo.name()
		fragments[FragmentKindFragmentOutput], err = c.graphics.caches[FragmentKindFragmentOutput].getOrBuild(c, fo.id(), name,
			func(ctx *Context) (*Fragment, error) { return buildFragmentOutput(ctx, &fo, name) })
		if err != nil {
			return nil, err
		}
	}

	name := info.Name
	if name == "" {
		name = chainIDs(fragments[0].name, fragments[1].name, fragments[2].name, fragments[3].name)
	}
	return linkPipeline(c, fragments, info.Layout, name, info.linkTimeOptimization())
}

/*
Destroy destroys every cached fragment, pipelines linked from them must be
destroyed first. Calls after the first are ignored.
*/
func (c *Context) Destroy() {
	c.noCopy.Check()
	if c.graphics.cacheState() != CacheStateTornDown {
		c.logger.VPrintf("%s", prettyString(&c.graphics))
	}
	if !c.graphics.destroy(c) {
		c.logger.WPrintf("Destroy called on destroyed context")
		return
	}
	c.logger.IPrintf("Destroyed")
}

func (c *Context) MarshalJSON() ([]byte, error) {
	buff := bytes.Buffer{}
	buff.WriteString("{")

	buff.WriteString(fmt.Sprintf("\"name\": %q,", c.config.name))
	buff.WriteString(fmt.Sprintf("\"libraryFlags\": %q,", c.config.libraryFlags.String()))
	buff.WriteString(fmt.Sprintf("\"graphics\": %s", jsonString(&c.graphics)))

	buff.WriteString("}")
	return buff.Bytes(), nil
}
