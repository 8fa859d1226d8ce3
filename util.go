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
	"cmp"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"goarrg.com/debug"
	"golang.org/x/exp/constraints"
)

func toHex(v any) string {
	switch t := v.(type) {
	case bool:
		if t {
			return "T"
		}
		return "F"
	case uint32:
		return fmt.Sprintf("0x%02X", t)
	case int32:
		return fmt.Sprintf("0x%02X", uint32(t))
	case float32:
		return fmt.Sprintf("0x%08X", math.Float32bits(t))
	case Handle:
		return fmt.Sprintf("0x%X", uint64(t))
	case uint64, uintptr:
		return fmt.Sprintf("0x%016X", t)
	}
	abort("Unknown/Unhandled type: %T", v)
	return ""
}

// genID builds a canonical key, every field that takes part in equality
// must be passed in so that two ids are equal only if the values are.
// Strings are quoted so they can never produce a bare separator.
func genID(items ...any) string {
	if len(items) == 0 {
		return "[]"
	}
	sb := strings.Builder{}
	for _, i := range items {
		switch t := i.(type) {
		case string:
			sb.WriteString(strconv.Quote(t))
		case fmt.Stringer:
			sb.WriteString(t.String())
		default:
			sb.WriteString(toHex(i))
		}
		sb.WriteRune(',')
	}
	return "[" + sb.String()[:sb.Len()-1] + "]"
}

func chainIDs(ids ...string) string {
	sb := strings.Builder{}
	for _, id := range ids {
		sb.WriteString(id)
	}
	return strings.Clone(sb.String())
}

func jsonString(target any) string {
	bytes, err := json.Marshal(target)
	if err != nil {
		abort("%s", err)
	}
	return strings.TrimSpace(string(bytes))
}

func prettyString(target json.Marshaler) string {
	bytes, err := json.MarshalIndent(target, "", "    ")
	if err != nil {
		abort("%s", err)
	}
	return strings.TrimSpace(string(bytes))
}

func hasBits[N constraints.Unsigned](t, want N) bool {
	return (t & want) == want
}

func mapRunFuncSorted[M ~map[K]V, K cmp.Ordered, V any](m M, f func(K, V) error) error {
	if len(m) == 0 {
		return debug.Errorf("Empty map")
	}

	for _, k := range slices.Sorted(maps.Keys(m)) {
		err := f(k, m[k])
		if err != nil {
			return err
		}
	}

	return nil
}

// fitSlice returns a copy of s with exactly n elements, missing elements
// are filled with fill.
func fitSlice[S ~[]E, E any](s S, n int, fill E) S {
	ret := make(S, n)
	copy(ret, s)
	for i := len(s); i < n; i++ {
		ret[i] = fill
	}
	return ret
}
