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
)

type Config struct {
	// Name is used for logging, defaults to "vxpl".
	Name string
	// PipelineCache is passed unchanged to every library and link call.
	PipelineCache Handle
	// ShaderLoader resolves stages given by ShaderID, it may be nil if every stage has a Shader.
	ShaderLoader ShaderLoader

	// DisableRetainLinkTimeInfo drops the retain flag from library builds for drivers
	// that reject it, it requires DisableLinkTimeOptimization.
	DisableRetainLinkTimeInfo   bool
	DisableLinkTimeOptimization bool
}

func (c *Config) MarshalJSON() ([]byte, error) {
	buff := bytes.Buffer{}
	buff.WriteString("{")

	buff.WriteString(fmt.Sprintf("\"Name\": %q,", c.Name))
	buff.WriteString(fmt.Sprintf("\"PipelineCache\": %q,", toHex(c.PipelineCache)))
	buff.WriteString(fmt.Sprintf("\"ShaderLoader\": %q,", fmt.Sprintf("%T", c.ShaderLoader)))
	buff.WriteString(fmt.Sprintf("\"DisableRetainLinkTimeInfo\": %t,", c.DisableRetainLinkTimeInfo))
	buff.WriteString(fmt.Sprintf("\"DisableLinkTimeOptimization\": %t", c.DisableLinkTimeOptimization))

	buff.WriteString("}")
	return buff.Bytes(), nil
}

func (c *Config) validate() {
	if c.Name == "" {
		c.Name = "vxpl"
	}
	if c.DisableRetainLinkTimeInfo && !c.DisableLinkTimeOptimization {
		abort("Config.DisableRetainLinkTimeInfo requires Config.DisableLinkTimeOptimization")
	}
}

type config struct {
	name                      string
	pipelineCache             Handle
	loader                    ShaderLoader
	libraryFlags              PipelineCreateFlags
	allowLinkTimeOptimization bool
}

func (c *config) use(user Config) {
	c.name = user.Name
	c.pipelineCache = user.PipelineCache
	c.loader = user.ShaderLoader
	c.libraryFlags = PipelineCreateLibrary
	if !user.DisableRetainLinkTimeInfo {
		c.libraryFlags |= PipelineCreateRetainLinkTimeOptimizationInfo
	}
	c.allowLinkTimeOptimization = !user.DisableLinkTimeOptimization
}
