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

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"goarrg.com/asset"
	"goarrg.com/debug"

	"goarrg.com/rhi/vxpl"
	"goarrg.com/rhi/vxpl/managed"
	"goarrg.com/rhi/vxpl/nulldev"
)

var flags flag.FlagSet

func main() {
	debug.SetLevel(debug.LogLevelWarn)

	flags.Usage = help
	flags.Init("", flag.ExitOnError)

	v := flags.Bool("v", false, "Verbose - Print high level tasks")
	vv := flags.Bool("vv", false, "Very Verbose - Print everything")
	shaders := flags.String("shaders", "", "Loads shader ids from \"<dir>/<id>.spv\".\n"+
		"If empty every shader id gets a made up module.")
	dumpJSON := flags.Bool("json", false, "Print the fragment caches as json after all requests.")

	err := flags.Parse(os.Args[1:])
	if err != nil {
		panic(err)
	}

	if *v {
		debug.SetLevel(debug.LogLevelInfo)
	} else if *vv {
		debug.SetLevel(debug.LogLevelVerbose)
	}

	args := flags.Args()
	if len(args) != 1 {
		debug.EPrintf("vxplinfo takes exactly one request file.")
		help()
		os.Exit(2)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		panic(err)
	}
	r, err := parseRequestFile(data)
	if err != nil {
		debug.EPrintf("%s: %v", args[0], err)
		os.Exit(1)
	}

	var loader vxpl.ShaderLoader = syntheticLoader{}
	if *shaders != "" {
		loader = dirLoader{fs: asset.DirFS(*shaders)}
	}

	failed := run(os.Stdout, r, loader, *dumpJSON)
	if failed > 0 {
		debug.EPrintf("%d of %d pipelines failed", failed, len(r.Pipelines))
		os.Exit(1)
	}
}

/*
run creates every pipeline of r on a nulldev context and prints which fragments
each one reused, it returns the number of failed pipelines.
*/
func run(out io.Writer, r *requestFile, loader vxpl.ShaderLoader, dumpJSON bool) int {
	dev := nulldev.New()
	ctx := vxpl.NewContext(dev, r.Config.toConfig(loader))
	defer ctx.Destroy()

	layouts := layoutSet{}
	failed := 0
	pipelines := managed.NewPipelineTable()
	defer pipelines.Destroy()

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "PIPELINE\tVERTEX INPUT\tPRE RASTERIZATION\tFRAGMENT SHADING\tFRAGMENT OUTPUT\tLTO\tID\n")

	for i := range r.Pipelines {
		p := &r.Pipelines[i]
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}

		info, err := p.toCreateInfo(&layouts)
		if err != nil {
			failed++
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		before := ctx.Stats()
		pipeline, err := ctx.CreatePipeline(info)
		if err != nil {
			failed++
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}
		id := pipelines.Push(pipeline)
		after := ctx.Stats()

		cols := make([]string, 0, len(after))
		for k := range after {
			if after[k].Misses > before[k].Misses {
				cols = append(cols, "built")
			} else {
				cols = append(cols, "reused")
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", name, strings.Join(cols, "\t"), pipeline.LinkTimeOptimized(), id)
	}
	_ = w.Flush()

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "FRAGMENT\tSIZE\tHITS\tMISSES\tFAILURES\n")
	for _, s := range ctx.Stats() {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", s.Kind, s.Size, s.Hits, s.Misses, s.Failures)
	}
	c := dev.Counts()
	fmt.Fprintf(w, "\npipelines: %d, shader modules: %d, links: %d, driver failures: %d\n",
		pipelines.Len(), c.ShaderModules, c.Links, c.Failures)
	_ = w.Flush()

	if dumpJSON {
		j, err := json.MarshalIndent(ctx, "", "\t")
		if err != nil {
			panic(err)
		}
		fmt.Fprintf(out, "%s\n", j)
	}
	return failed
}

func help() {
	fmt.Fprintf(os.Stderr, "vxplinfo runs a file of graphics pipeline requests through vxpl without a GPU.\n"+
		"\nIt reports which of the four pipeline library fragments every request built or reused,\n"+
		"which is useful to check that a set of materials shares as many fragments as expected.\n"+
		"\nRequests are read from a toml file of [[pipeline]] tables, enums are spelled as in vxpl\n"+
		"(e.g. topology = \"TriangleList\", color_formats = [\"B8G8R8A8_UNORM\"]).\n"+
		"\n")
	args := ""
	flags.VisitAll(func(f *flag.Flag) {
		n, u := flag.UnquoteUsage(f)
		if f.DefValue != "" {
			u += "\n\nDefaults to \"" + f.DefValue + "\"."
		}
		args += "\t-" + f.Name + " " + n + "\n\t\t" + strings.ReplaceAll(strings.TrimSpace(u), "\n", "\n\t\t") + "\n"
	})
	fmt.Fprintf(os.Stderr, "Usage:\n\t%s [arguments] <file>\n\nArguments:\n%s", filepath.Base(os.Args[0]), args)
}
