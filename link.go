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
	"goarrg.com/debug"
)

/*
linkPipeline links one fragment of each kind into an executable pipeline.
Links are never cached, linking the same fragments twice returns two pipelines.
*/
func linkPipeline(ctx *Context, fragments [fragmentKindCount]*Fragment, layout *PipelineLayout, name string, wantLTO bool) (*Pipeline, error) {
	libraries := make([]Handle, fragmentKindCount)
	for i, f := range fragments {
		if f == nil {
			abort("Missing %s fragment for pipeline %q", FragmentKind(i), name)
		}
		if f.kind != FragmentKind(i) {
			abort("Pipeline %q expected %s fragment at [%d] got %s", name, FragmentKind(i), i, f.kind)
		}
		libraries[i] = f.handle
	}

	lto := wantLTO && ctx.config.allowLinkTimeOptimization
	info := LinkCreateInfo{
		Layout:    layout.handle,
		Libraries: libraries,
	}
	if lto {
		info.Flags |= PipelineCreateLinkTimeOptimization
	}

	handle, result := ctx.device.LinkGraphicsPipeline(name, ctx.config.pipelineCache, &info)
	if result != ResultSuccess {
		return nil, debug.ErrorWrapf(ErrorDriverLinkFailed{Result: result}, "Failed to link pipeline %q", name)
	}
	ctx.logger.VPrintf("Linked pipeline %q: %s [%s]", name, toHex(handle), info.Flags)

	p := &Pipeline{
		device:    ctx.device,
		name:      name,
		handle:    handle,
		layout:    layout,
		fragments: fragments,
		lto:       lto,
	}
	p.noCopy.Init()
	return p, nil
}
