// Command polymesh builds a canonical shape, replays an edit script against
// it and writes the result as SVG, PNG or OBJ.
//
//	polymesh -shape polygon -sides 6 -closed -script "center 0; flip 14" -svg out.svg
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/polymesh/bfs"
	"github.com/katalvlaran/polymesh/builder"
	"github.com/katalvlaran/polymesh/export"
	"github.com/katalvlaran/polymesh/mesh"
	"github.com/katalvlaran/polymesh/render"
	"github.com/katalvlaran/polymesh/script"
)

type options struct {
	shape         string
	x, y          float64
	width, height float64
	radius        float64
	sides         int
	closed        bool
	script        string
	scriptFile    string
	svg, png, obj string
	size          int
	debug         bool
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, "polymesh:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (*options, error) {
	var o options
	fset := flag.NewFlagSet("polymesh", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.StringVar(&o.shape, "shape", "triangle", "triangle, rectangle or polygon")
	fset.Float64Var(&o.x, "x", 0, "rectangle corner or polygon center x")
	fset.Float64Var(&o.y, "y", 0, "rectangle corner or polygon center y")
	fset.Float64Var(&o.width, "width", 200, "rectangle width")
	fset.Float64Var(&o.height, "height", 200, "rectangle height")
	fset.Float64Var(&o.radius, "radius", 100, "polygon circumradius")
	fset.IntVar(&o.sides, "sides", 6, "polygon side count")
	fset.BoolVar(&o.closed, "closed", false, "add the reversed back facet and pair all twins")
	fset.StringVar(&o.script, "script", "", "edit script to replay")
	fset.StringVar(&o.scriptFile, "script-file", "", "file holding an edit script")
	fset.StringVar(&o.svg, "svg", "", "write SVG to this path")
	fset.StringVar(&o.png, "png", "", "write PNG to this path")
	fset.StringVar(&o.obj, "obj", "", "write OBJ to this path")
	fset.IntVar(&o.size, "size", render.DefaultWidth, "square canvas size in pixels")
	fset.BoolVar(&o.debug, "debug", false, "log every mesh edit to stderr")
	fset.Set("logtostderr", "true")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	if fset.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fset.Args())
	}
	if o.script != "" && o.scriptFile != "" {
		return nil, fmt.Errorf("-script and -script-file are exclusive")
	}
	if o.size <= 0 {
		return nil, fmt.Errorf("-size must be positive, got %d", o.size)
	}
	return &o, nil
}

func run(args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	if o.debug {
		mesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer mesh.SetLogger(nil)
	}

	m, err := buildShape(o)
	if err != nil {
		return err
	}
	klog.V(1).Infof("built %s: %v", o.shape, m)

	src := o.script
	if o.scriptFile != "" {
		b, err := os.ReadFile(o.scriptFile)
		if err != nil {
			return err
		}
		src = string(b)
	}
	if src != "" {
		res, err := script.Run(m, src)
		for _, r := range res {
			fmt.Fprintf(stdout, "%s %v -> %d\n", r.Verb, r.Args, r.Value)
		}
		if err != nil {
			return err
		}
	}

	if err := m.CheckIntegrity(); err != nil {
		return err
	}
	comps, err := bfs.Components(m)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%v euler=%g components=%d\n", m, m.EulerCharacteristic(), len(comps))

	return writeOutputs(o, m)
}

func buildShape(o *options) (*mesh.Mesh, error) {
	var bopts []builder.BuilderOption
	if o.closed {
		bopts = append(bopts, builder.WithClosedBack())
	}
	switch o.shape {
	case "triangle":
		return builder.NewTriangle(bopts...)
	case "rectangle":
		return builder.NewRectangle(o.x, o.y, o.height, o.width, bopts...)
	case "polygon":
		return builder.NewRegularPolygon(o.x, o.y, o.radius, o.sides, bopts...)
	default:
		return nil, fmt.Errorf("unknown shape %q", o.shape)
	}
}

func writeOutputs(o *options, m *mesh.Mesh) error {
	ropts := []render.Option{render.WithSize(o.size, o.size)}
	if o.svg != "" || o.png != "" {
		fill, err := depthShading(m)
		if err != nil {
			return err
		}
		ropts = append(ropts, render.WithFacetFill(fill))
	}

	outputs := []struct {
		path  string
		write func(io.Writer) error
	}{
		{o.svg, func(w io.Writer) error { return render.WriteSVG(w, m, ropts...) }},
		{o.png, func(w io.Writer) error { return render.WritePNG(w, m, ropts...) }},
		{o.obj, func(w io.Writer) error { return export.WriteOBJ(w, m) }},
	}
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if err := writeFile(out.path, out.write); err != nil {
			return err
		}
		klog.Infof("wrote %s", out.path)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// depthShading colours each facet by its dual-graph depth from the first
// facet of its component, from blue at the root towards cyan.
func depthShading(m *mesh.Mesh) (func(mesh.FacetID) gg.RGBA, error) {
	comps, err := bfs.Components(m)
	if err != nil {
		return nil, err
	}
	depth := make(map[mesh.FacetID]int, m.FacetCount())
	maxDepth := 0
	for _, c := range comps {
		res, err := bfs.BFS(m, c[0])
		if err != nil {
			return nil, err
		}
		for f, d := range res.Depth {
			depth[f] = d
			maxDepth = max(maxDepth, d)
		}
	}
	return func(f mesh.FacetID) gg.RGBA {
		if maxDepth == 0 {
			return gg.Blue
		}
		return gg.Blue.Lerp(gg.Cyan, float64(depth[f])/float64(maxDepth))
	}, nil
}
