package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Faultbox/meshlab/internal/scene"
	"github.com/Faultbox/meshlab/pkg/math"
	"github.com/Faultbox/meshlab/pkg/mesh"
)

// shapeFlags registers the mesh parameters on fs and returns the spec they
// fill once fs is parsed.
func shapeFlags(fs *flag.FlagSet) *mesh.Spec {
	s := &mesh.Spec{}
	float := func(p *float32, name string, def float32, usage string) {
		*p = def
		fs.Func(name, fmt.Sprintf("%s (default %g)", usage, def), func(v string) error {
			f, err := strconv.ParseFloat(v, 32)
			if err != nil {
				return fmt.Errorf("invalid number %q", v)
			}
			*p = float32(f)
			return nil
		})
	}
	float(&s.Radius, "radius", 1, "Sphere radius")
	float(&s.BaseRadius, "base", 1, "Cylinder or cone base radius")
	float(&s.TopRadius, "top", 1, "Cylinder top radius")
	float(&s.Height, "height", 1, "Cylinder, cone or box height")
	float(&s.Width, "width", 1, "Box width")
	float(&s.Depth, "depth", 1, "Box depth")
	fs.IntVar(&s.Sectors, "sectors", mesh.DefaultSectorCount, "Sectors around round shapes")
	fs.IntVar(&s.Stacks, "stacks", mesh.DefaultStackCount, "Sphere stacks")
	fs.IntVar(&s.Sides, "sides", mesh.HexagonSides, "Polygon sides")
	return s
}

// parseShape reads "<shape> [flags]" or "[flags] <shape>" from args.
func parseShape(fs *flag.FlagSet, args []string) (mesh.Spec, error) {
	spec := shapeFlags(fs)
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		spec.Shape = args[0]
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return mesh.Spec{}, err
	}
	if spec.Shape == "" {
		if fs.NArg() < 1 {
			return mesh.Spec{}, errors.New("missing shape name")
		}
		spec.Shape = fs.Arg(0)
	}
	return *spec, nil
}

func cmdInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	spec, err := parseShape(fs, args)
	if err != nil {
		return err
	}
	m, err := mesh.Build(spec)
	if err != nil {
		return err
	}
	m.Name = spec.Shape
	printInfo(os.Stdout, m)
	return nil
}

func printInfo(w io.Writer, m *mesh.Mesh) {
	b := m.Bounds()
	size := b.Size()
	fmt.Fprintf(w, "Shape:     %s\n", m.Name)
	fmt.Fprintf(w, "Vertices:  %d\n", len(m.Vertices))
	fmt.Fprintf(w, "Triangles: %d\n", m.TriangleCount())
	fmt.Fprintf(w, "Layout:    %s (%d bytes/vertex)\n", mesh.LayoutFor(m), mesh.LayoutFor(m).Stride())
	fmt.Fprintf(w, "Bounds:    min %v max %v\n", b.Min, b.Max)
	fmt.Fprintf(w, "Size:      %.3f x %.3f x %.3f\n", size[0], size[1], size[2])
}

func cmdExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("o", "", "Output file (.stl or .obj)")
	spec, err := parseShape(fs, args)
	if err != nil {
		return err
	}
	if *out == "" {
		return errors.New("export needs -o <file>")
	}

	m, err := mesh.Build(spec)
	if err != nil {
		return err
	}
	m.Name = spec.Shape

	if err := exportFile(*out, m); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d triangles)\n", *out, m.TriangleCount())
	return nil
}

// exportFile writes m in the format named by path's extension.
func exportFile(path string, m *mesh.Mesh) (err error) {
	var write func(io.Writer, *mesh.Mesh) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		write = mesh.WriteSTL
	case ".obj":
		write = mesh.WriteOBJ
	default:
		return fmt.Errorf("unsupported export format %q", filepath.Ext(path))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f, m)
}

func cmdScene(args []string) error {
	fs := flag.NewFlagSet("scene", flag.ContinueOnError)
	sectors := fs.Int("sectors", mesh.DefaultSectorCount, "Default sector count")
	stacks := fs.Int("stacks", mesh.DefaultStackCount, "Default stack count")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := scene.LoadOrDefault(fs.Arg(0))
	if err != nil {
		return err
	}
	lib, err := s.BuildMeshes(*sectors, *stacks)
	if err != nil {
		return err
	}
	printScene(os.Stdout, s, lib)
	return nil
}

func printScene(w io.Writer, s *scene.Scene, lib scene.Library) {
	vertices, triangles := lib.Stats()
	parts := 0
	for _, p := range s.Pieces {
		parts += len(p.Parts)
	}

	fmt.Fprintf(w, "Scene:     %s\n", s.Name)
	fmt.Fprintf(w, "Meshes:    %d\n", len(lib))
	fmt.Fprintf(w, "Materials: %d\n", len(s.Materials))
	fmt.Fprintf(w, "Pieces:    %d (%d parts)\n", len(s.Pieces), parts)
	fmt.Fprintf(w, "Vertices:  %d\n", vertices)
	fmt.Fprintf(w, "Triangles: %d\n", triangles)
	if b, ok := scene.Bounds(s.Flatten(math.Identity(), 0), lib); ok {
		fmt.Fprintf(w, "Bounds:    min %v max %v\n", b.Min, b.Max)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Meshes:")
	for _, name := range lib.Names() {
		m := lib[name]
		fmt.Fprintf(w, "  %-10s %-8s %6d verts %6d tris\n", name, s.Meshes[name].Shape, len(m.Vertices), m.TriangleCount())
	}
}

func cmdShapes() {
	for _, s := range mesh.Shapes {
		fmt.Println(s)
	}
}
