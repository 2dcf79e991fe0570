// Package gltfexport writes the merged landscape mesh as a glTF 2.0 asset.
package gltfexport

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/Faultbox/command-blocker/internal/engine/terrain"
	"github.com/Faultbox/command-blocker/internal/logger"
)

// ErrEmptyMesh is returned when there is nothing to export.
var ErrEmptyMesh = errors.New("mesh has no faces")

// Options controls the exported document.
type Options struct {
	Name string // Node and mesh name

	// AtlasPNG, when set, is embedded as the base color texture with
	// nearest-neighbour sampling.
	AtlasPNG []byte
}

// Build converts mesh into a glTF document with one node, one mesh and one material.
func Build(mesh *terrain.Mesh, opts Options) (*gltf.Document, error) {
	if mesh == nil || len(mesh.Vertices) == 0 {
		return nil, ErrEmptyMesh
	}
	name := opts.Name
	if name == "" {
		name = "landscape"
	}

	positions := make([][3]float32, len(mesh.Vertices))
	normals := make([][3]float32, len(mesh.Vertices))
	uvs := make([][2]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = v.Position
		normals[i] = v.Normal
		// glTF puts the texture origin top-left.
		uvs[i] = [2]float32{v.TexCoord.X(), 1 - v.TexCoord.Y()}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "command-blocker"

	material := &gltf.Material{
		Name: name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{1, 1, 1, 1},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
	}
	if len(opts.AtlasPNG) > 0 {
		img, err := modeler.WriteImage(doc, name+"-atlas", "image/png", bytes.NewReader(opts.AtlasPNG))
		if err != nil {
			return nil, fmt.Errorf("embed atlas: %w", err)
		}
		doc.Samplers = append(doc.Samplers, &gltf.Sampler{
			MagFilter: gltf.MagNearest,
			MinFilter: gltf.MinNearest,
		})
		doc.Textures = append(doc.Textures, &gltf.Texture{
			Sampler: gltf.Index(uint32(len(doc.Samplers) - 1)),
			Source:  gltf.Index(img),
		})
		material.PBRMetallicRoughness.BaseColorTexture = &gltf.TextureInfo{
			Index: uint32(len(doc.Textures) - 1),
		}
	}
	doc.Materials = append(doc.Materials, material)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Mode:     gltf.PrimitiveTriangles,
			Indices:  gltf.Index(modeler.WriteIndices(doc, mesh.Indices)),
			Material: gltf.Index(uint32(len(doc.Materials) - 1)),
			Attributes: map[string]uint32{
				gltf.POSITION:   modeler.WritePosition(doc, positions),
				gltf.NORMAL:     modeler.WriteNormal(doc, normals),
				gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, uvs),
			},
		}},
	})

	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))

	return doc, nil
}

// Write builds the document and saves it to path. A ".glb" extension writes
// the binary container; anything else writes JSON with embedded buffers.
func Write(mesh *terrain.Mesh, path string, opts Options) error {
	doc, err := Build(mesh, opts)
	if err != nil {
		return err
	}

	binary := strings.EqualFold(filepath.Ext(path), ".glb")
	if binary {
		err = gltf.SaveBinary(doc, path)
	} else {
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	logger.Named("gltf").Info("landscape exported",
		zap.String("path", path),
		zap.Bool("binary", binary),
		zap.Int("faces", mesh.FaceCount()),
		zap.Bool("textured", len(opts.AtlasPNG) > 0),
	)
	return nil
}
