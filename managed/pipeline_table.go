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

package managed

import (
	"fmt"

	"goarrg.com/debug"
	"goarrg.com/rhi/vxpl"
	"goarrg.com/rhi/vxpl/internal/container"
	"goarrg.com/rhi/vxpl/internal/util"
)

/*
PipelineID is a slot index paired with the generation the slot had when the
pipeline was pushed. The zero value is never handed out.
*/
type PipelineID uint64

func makePipelineID(index, generation uint32) PipelineID {
	return PipelineID(uint64(generation)<<32 | uint64(index))
}

func (id PipelineID) Index() uint32      { return uint32(id) }
func (id PipelineID) Generation() uint32 { return uint32(id >> 32) }

func (id PipelineID) String() string {
	return fmt.Sprintf("%d@%d", id.Index(), id.Generation())
}

type pipelineSlot struct {
	pipeline   *vxpl.Pipeline
	generation uint32
}

/*
PipelineTable hands out generation counted ids for pipelines so that ids
held after a pipeline was removed are detected instead of aliasing its
replacement. It is the user's responsibility to handle sync.
*/
type PipelineTable struct {
	noCopy    util.NoCopy
	slots     []pipelineSlot
	freeStack container.Stack[uint32]
	live      int
}

func NewPipelineTable() *PipelineTable {
	t := &PipelineTable{}
	t.noCopy.Init()
	return t
}

func (t *PipelineTable) Len() int {
	t.noCopy.Check()
	return t.live
}

func (t *PipelineTable) Push(p *vxpl.Pipeline) PipelineID {
	t.noCopy.Check()
	if p == nil {
		abort("Trying to push nil pipeline")
	}

	var i uint32
	if t.freeStack.Empty() {
		if uint64(len(t.slots)) >= 1<<32-1 {
			abort("Trying to push pipeline into a full table")
		}
		i = uint32(len(t.slots))
		// generations start at 1 so the zero id is never valid
		t.slots = append(t.slots, pipelineSlot{generation: 1})
	} else {
		i = t.freeStack.Pop()
	}

	t.slots[i].pipeline = p
	t.live++
	id := makePipelineID(i, t.slots[i].generation)
	instance.logger.VPrintf("Pushed pipeline %q as %s", p.Name(), id)
	return id
}

func (t *PipelineTable) slot(id PipelineID) (*pipelineSlot, error) {
	i := id.Index()
	if int(i) >= len(t.slots) {
		return nil, debug.ErrorWrapf(ErrorStaleID{}, "Pipeline id %s out of range", id)
	}
	s := &t.slots[i]
	if s.pipeline == nil || s.generation != id.Generation() {
		return nil, debug.ErrorWrapf(ErrorStaleID{}, "Pipeline id %s is stale, slot is at generation %d", id, s.generation)
	}
	return s, nil
}

func (t *PipelineTable) Get(id PipelineID) (*vxpl.Pipeline, error) {
	t.noCopy.Check()
	s, err := t.slot(id)
	if err != nil {
		return nil, err
	}
	return s.pipeline, nil
}

/*
Pop removes the pipeline from the table and returns it, the caller is still
responsible for destroying it. The slot is reused with the next generation.
*/
func (t *PipelineTable) Pop(id PipelineID) (*vxpl.Pipeline, error) {
	t.noCopy.Check()
	s, err := t.slot(id)
	if err != nil {
		return nil, err
	}
	p := s.pipeline
	s.pipeline = nil
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}
	t.freeStack.Push(id.Index())
	t.live--
	return p, nil
}

// Destroy destroys every pipeline still in the table.
func (t *PipelineTable) Destroy() {
	t.noCopy.Check()
	for i := range t.slots {
		if p := t.slots[i].pipeline; p != nil {
			instance.logger.VPrintf("Destroying pipeline %q", p.Name())
			p.Destroy()
		}
	}
	t.slots = nil
	t.freeStack.Reset()
	t.live = 0
	t.noCopy.Close()
}
