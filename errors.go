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

import "fmt"

// ErrorInvalidRequest is returned for pipeline requests that cannot be split into fragments.
type ErrorInvalidRequest struct {
	Reason string
}

func (ErrorInvalidRequest) Is(target error) bool {
	_, ok := target.(ErrorInvalidRequest)
	return ok
}

func (e ErrorInvalidRequest) Error() string {
	if e.Reason == "" {
		return "Invalid Request"
	}
	return "Invalid Request: " + e.Reason
}

// ErrorDriverCompileFailed carries the result of a failed library or shader module creation.
type ErrorDriverCompileFailed struct {
	Result Result
}

func (ErrorDriverCompileFailed) Is(target error) bool {
	_, ok := target.(ErrorDriverCompileFailed)
	return ok
}

func (e ErrorDriverCompileFailed) Error() string {
	return fmt.Sprintf("Driver Compile Failed: %s", e.Result)
}

// ErrorFragmentCompilationFailed is returned by a fragment cache when a miss failed to build,
// nothing is inserted into the cache.
type ErrorFragmentCompilationFailed struct {
	Kind   FragmentKind
	Result Result
	Err    error
}

func (ErrorFragmentCompilationFailed) Is(target error) bool {
	_, ok := target.(ErrorFragmentCompilationFailed)
	return ok
}

func (e ErrorFragmentCompilationFailed) Unwrap() error {
	return e.Err
}

func (e ErrorFragmentCompilationFailed) Error() string {
	return fmt.Sprintf("Fragment Compilation Failed [%s]: %s", e.Kind, e.Result)
}

type ErrorDriverLinkFailed struct {
	Result Result
}

func (ErrorDriverLinkFailed) Is(target error) bool {
	_, ok := target.(ErrorDriverLinkFailed)
	return ok
}

func (e ErrorDriverLinkFailed) Error() string {
	return fmt.Sprintf("Driver Link Failed: %s", e.Result)
}

type ErrorShaderLoadFailed struct {
	ShaderID string
	Err      error
}

func (ErrorShaderLoadFailed) Is(target error) bool {
	_, ok := target.(ErrorShaderLoadFailed)
	return ok
}

func (e ErrorShaderLoadFailed) Unwrap() error {
	return e.Err
}

func (e ErrorShaderLoadFailed) Error() string {
	return fmt.Sprintf("Shader Load Failed [%s]: %v", e.ShaderID, e.Err)
}

// ErrorContextDestroyed is returned by every operation on a Context after Destroy.
type ErrorContextDestroyed struct{}

func (ErrorContextDestroyed) Is(target error) bool {
	_, ok := target.(ErrorContextDestroyed)
	return ok
}

func (ErrorContextDestroyed) Error() string {
	return "Context Destroyed"
}
