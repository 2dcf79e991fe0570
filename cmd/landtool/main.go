// landtool is a CLI utility for generating and exporting voxel landscapes
// without opening a window.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/Faultbox/command-blocker/internal/config"
	"github.com/Faultbox/command-blocker/internal/engine/gltfexport"
	"github.com/Faultbox/command-blocker/internal/engine/terrain"
	"github.com/Faultbox/command-blocker/internal/engine/texture"
	"github.com/Faultbox/command-blocker/internal/game/states"
	"github.com/Faultbox/command-blocker/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "export":
		cmdExport(args)
	case "heightmap", "hm":
		cmdHeightmap(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`landtool - voxel landscape utility

Usage:
  landtool <command> [options]

Commands:
  info                          Generate a landscape and print its statistics
  export [-atlas f] <out.glb>   Write the landscape mesh as glTF (.glb or .gltf)
  heightmap <out.png>           Write the heightfield as a grayscale PNG

Landscape options (all commands):
  -config <file>   YAML config to start from
  -preset <name>   Demo preset (landscape, classic, sandbox)
  -width, -depth   Grid size in cells
  -cube-size       Voxel edge length
  -noise           Noise source (perlin, simplex)
  -v               Log progress

Examples:
  landtool info -noise simplex
  landtool export -preset classic world.glb
  landtool export -atlas textures/minecraft/atlas.png world.gltf
  landtool heightmap -width 256 -depth 256 heights.png`)
}

// landscapeFlags registers the shared options on fs and returns a builder
// that reads them after fs.Parse.
func landscapeFlags(fs *flag.FlagSet) func() (*terrain.Landscape, error) {
	configPath := fs.String("config", "", "YAML config file")
	preset := fs.String("preset", "", "Demo preset")
	width := fs.Int("width", 0, "Grid cells along X")
	depth := fs.Int("depth", 0, "Grid cells along Z")
	cubeSize := fs.Float64("cube-size", 0, "Voxel edge length")
	noiseKind := fs.String("noise", "", "Noise source")
	verbose := fs.Bool("v", false, "Log progress")

	return func() (*terrain.Landscape, error) {
		if *verbose {
			if err := logger.Init("debug", ""); err != nil {
				return nil, err
			}
		}

		cfg, err := config.LoadFile(*configPath, *preset)
		if err != nil {
			return nil, err
		}
		if *width > 0 {
			cfg.Landscape.Width = *width
		}
		if *depth > 0 {
			cfg.Landscape.Depth = *depth
		}
		if *cubeSize > 0 {
			cfg.Landscape.CubeSize = float32(*cubeSize)
		}
		if *noiseKind != "" {
			cfg.Landscape.Noise = *noiseKind
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		return terrain.NewLandscape(states.LandscapeOptions(cfg.Landscape))
	}
}

func mustLandscape(build func() (*terrain.Landscape, error)) *terrain.Landscape {
	land, err := build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return land
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	build := landscapeFlags(fs)
	fs.Parse(args)

	start := time.Now()
	land := mustLandscape(build)
	mesh := land.Mesh()
	elapsed := time.Since(start)

	lo, hi := land.Grid().MinMax()
	b := mesh.Bounds

	fmt.Printf("Grid:      %d x %d cells\n", land.Width(), land.Depth())
	fmt.Printf("Cube size: %g\n", land.CubeSize())
	fmt.Printf("Heights:   %d .. %d\n", lo, hi)
	fmt.Printf("Floor:     %g (centre cell)\n", land.CenterFloorY())
	fmt.Println()
	fmt.Printf("Faces:     %d\n", mesh.FaceCount())
	fmt.Printf("Vertices:  %d\n", len(mesh.Vertices))
	fmt.Printf("Triangles: %d\n", len(mesh.Indices)/3)
	fmt.Printf("Bounds:    (%.1f, %.1f, %.1f) .. (%.1f, %.1f, %.1f)\n",
		b.Min.X(), b.Min.Y(), b.Min.Z(), b.Max.X(), b.Max.Y(), b.Max.Z())
	fmt.Printf("Radius:    %.1f\n", mesh.Sphere.Radius)
	fmt.Printf("Built in:  %v\n", elapsed.Round(time.Microsecond))
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	build := landscapeFlags(fs)
	atlasPath := fs.String("atlas", "", "Atlas image to embed (PNG or BMP); default is a generated atlas")
	bare := fs.Bool("bare", false, "Export without a texture")
	name := fs.String("name", "landscape", "Node and mesh name")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: landtool export [options] <out.glb|out.gltf>")
		os.Exit(1)
	}
	outPath := fs.Arg(0)

	land := mustLandscape(build)

	opts := gltfexport.Options{Name: *name}
	if !*bare {
		atlas := texture.Fallback(64)
		if *atlasPath != "" {
			var err error
			atlas, err = texture.LoadAtlas(*atlasPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading atlas: %v\n", err)
				os.Exit(1)
			}
		}
		data, err := encodePNG(atlas)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding atlas: %v\n", err)
			os.Exit(1)
		}
		opts.AtlasPNG = data
	}

	if err := gltfexport.Write(land.Mesh(), outPath, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d faces to %s\n", land.Mesh().FaceCount(), outPath)
}

func cmdHeightmap(args []string) {
	fs := flag.NewFlagSet("heightmap", flag.ExitOnError)
	build := landscapeFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: landtool heightmap [options] <out.png>")
		os.Exit(1)
	}
	outPath := fs.Arg(0)

	land := mustLandscape(build)
	data, err := encodePNG(land.Grid().Image())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding heightmap: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	lo, hi := land.Grid().MinMax()
	fmt.Printf("Wrote %dx%d heightmap (heights %d..%d) to %s\n", land.Width(), land.Depth(), lo, hi, outPath)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
