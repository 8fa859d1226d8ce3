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
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"goarrg.com/debug"
	"golang.org/x/sync/singleflight"
)

type CacheState uint32

const (
	CacheStateEmpty CacheState = iota
	CacheStatePopulated
	CacheStateTornDown
)

func (s CacheState) String() string {
	switch s {
	case CacheStateEmpty:
		return "Empty"
	case CacheStatePopulated:
		return "Populated"
	case CacheStateTornDown:
		return "TornDown"

	default:
		abort("Unknown CacheState: %d", s)
		return ""
	}
}

type CacheStats struct {
	Kind     FragmentKind
	Size     int
	Hits     uint64
	Misses   uint64
	Failures uint64
}

/*
fragmentCache holds at most one fragment per key. Concurrent misses on a key
share a single build through the singleflight group, the device is never
called with mtx held. Fragments are never evicted.
*/
type fragmentCache struct {
	kind FragmentKind

	mtx       sync.RWMutex
	cache     map[string]*Fragment
	destroyed bool

	group singleflight.Group

	hits     atomic.Uint64
	misses   atomic.Uint64
	failures atomic.Uint64
}

func (c *fragmentCache) lookup(key string) (*Fragment, bool, error) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	if c.destroyed {
		return nil, false, debug.ErrorWrapf(ErrorContextDestroyed{}, "Failed to retrieve %s fragment", c.kind)
	}
	f, ok := c.cache[key]
	return f, ok, nil
}

func (c *fragmentCache) getOrBuild(ctx *Context, key, name string, build func(*Context) (*Fragment, error)) (*Fragment, error) {
	f, ok, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	if ok {
		c.hits.Add(1)
		ctx.logger.VPrintf("Reusing %s fragment: %s", c.kind, f.name)
		return f, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// another build may have finished between lookup and Do
		f, ok, err := c.lookup(key)
		if err != nil {
			return nil, err
		}
		if ok {
			c.hits.Add(1)
			return f, nil
		}

		f, err = build(ctx)
		if err != nil {
			c.failures.Add(1)
			result := ResultErrorUnknown
			var compileErr ErrorDriverCompileFailed
			if errors.As(err, &compileErr) {
				result = compileErr.Result
			}
			return nil, debug.ErrorWrapf(ErrorFragmentCompilationFailed{Kind: c.kind, Result: result, Err: err},
				"Failed to build %s", name)
		}
		if f.kind != c.kind {
			abort("Built %s fragment for %s cache", f.kind, c.kind)
		}
		f.id = key

		c.mtx.Lock()
		if c.destroyed {
			c.mtx.Unlock()
			f.destroy(ctx.device)
			return nil, debug.ErrorWrapf(ErrorContextDestroyed{}, "Failed to insert %s", name)
		}
		c.cache[key] = f
		c.mtx.Unlock()

		c.misses.Add(1)
		ctx.graphics.markPopulated()
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Fragment), nil
}

func (c *fragmentCache) destroy(ctx *Context) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.destroyed = true
	_ = mapRunFuncSorted(c.cache, func(k string, f *Fragment) error {
		ctx.logger.VPrintf("Destroying %s fragment: %s", c.kind, f.name)
		f.destroy(ctx.device)
		return nil
	})
	clear(c.cache)
}

func (c *fragmentCache) stats() CacheStats {
	c.mtx.RLock()
	size := len(c.cache)
	c.mtx.RUnlock()

	return CacheStats{
		Kind:     c.kind,
		Size:     size,
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Failures: c.failures.Load(),
	}
}

func (c *fragmentCache) MarshalJSON() ([]byte, error) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	buff := bytes.Buffer{}
	buff.WriteString("{")

	err := mapRunFuncSorted(c.cache, func(k string, f *Fragment) error {
		buff.WriteString(fmt.Sprintf("%q: %s,", k, jsonString(f)))
		return nil
	})
	if err == nil {
		buff.Truncate(buff.Len() - 1)
	}

	buff.WriteString("}")
	return buff.Bytes(), nil
}

type graphicsState struct {
	state  atomic.Uint32
	caches [fragmentKindCount]fragmentCache
}

func (g *graphicsState) init() {
	for i := range g.caches {
		g.caches[i].kind = FragmentKind(i)
		g.caches[i].cache = map[string]*Fragment{}
	}
}

func (g *graphicsState) cacheState() CacheState {
	return CacheState(g.state.Load())
}

func (g *graphicsState) markPopulated() {
	g.state.CompareAndSwap(uint32(CacheStateEmpty), uint32(CacheStatePopulated))
}

// destroy reports false if the state was already torn down.
func (g *graphicsState) destroy(ctx *Context) bool {
	if CacheState(g.state.Swap(uint32(CacheStateTornDown))) == CacheStateTornDown {
		return false
	}
	for i := range g.caches {
		g.caches[i].destroy(ctx)
	}
	return true
}

func (g *graphicsState) MarshalJSON() ([]byte, error) {
	buff := bytes.Buffer{}
	buff.WriteString("{")

	buff.WriteString(fmt.Sprintf("\"state\": %q,", g.cacheState().String()))
	for i := range g.caches {
		buff.WriteString(fmt.Sprintf("%q: %s,", g.caches[i].kind.String(), jsonString(&g.caches[i])))
	}

	buff.Truncate(buff.Len() - 1)
	buff.WriteString("}")
	return buff.Bytes(), nil
}
