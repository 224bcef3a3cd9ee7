package scene

import (
	"fmt"
	stdmath "math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"shading-lab/core"
	"shading-lab/materials"
	"shading-lab/math"
)

// ── Import ──────────────────────────────────────────────────────────────────

// LoadGLTF opens a .glb or .gltf file and returns its top-level nodes.
// Geometry, translation, scale and the base colour of each material are
// read; PBR metallic-roughness is approximated to Phong.
func LoadGLTF(path string) ([]*Node, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	bindings := make([]*materials.Binding, len(doc.Materials))
	for i, gm := range doc.Materials {
		bindings[i] = bindingFromGLTF(gm)
	}

	// meshPrims[meshIdx] = one mesh per primitive
	meshPrims := make([][]*Mesh, len(doc.Meshes))
	primBindings := make([][]*materials.Binding, len(doc.Meshes))
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			m, err := loadGLTFPrimitive(doc, gm.Name, pi, prim)
			if err != nil {
				return nil, fmt.Errorf("gltf mesh %d prim %d: %w", mi, pi, err)
			}
			var b *materials.Binding
			if prim.Material != nil && *prim.Material < len(bindings) {
				b = bindings[*prim.Material]
			}
			meshPrims[mi] = append(meshPrims[mi], m)
			primBindings[mi] = append(primBindings[mi], b)
		}
	}

	nodes := make([]*Node, len(doc.Nodes))
	for i, gn := range doc.Nodes {
		name := gn.Name
		if name == "" {
			name = fmt.Sprintf("node_%d", i)
		}
		n := NewNode(name)

		t := gn.TranslationOrDefault()
		n.SetPosition(math.Vec3{X: float32(t[0]), Y: float32(t[1]), Z: float32(t[2])})
		sc := gn.ScaleOrDefault()
		n.SetScale(math.Vec3{X: float32(sc[0]), Y: float32(sc[1]), Z: float32(sc[2])})

		if gn.Mesh != nil && *gn.Mesh < len(meshPrims) {
			prims := meshPrims[*gn.Mesh]
			switch len(prims) {
			case 0:
			case 1:
				n.Mesh = prims[0]
				n.Binding = primBindings[*gn.Mesh][0]
			default:
				for pi, p := range prims {
					child := NewNode(fmt.Sprintf("%s_prim%d", name, pi))
					child.Mesh = p
					child.Binding = primBindings[*gn.Mesh][pi]
					n.AddChild(child)
				}
			}
		}
		nodes[i] = n
	}

	for i, gn := range doc.Nodes {
		for _, childIdx := range gn.Children {
			if childIdx < len(nodes) {
				nodes[i].AddChild(nodes[childIdx])
			}
		}
	}

	var roots []*Node
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		for _, rootIdx := range doc.Scenes[*doc.Scene].Nodes {
			if rootIdx < len(nodes) {
				roots = append(roots, nodes[rootIdx])
			}
		}
		return roots, nil
	}
	for _, n := range nodes {
		if n.Parent == nil {
			roots = append(roots, n)
		}
	}
	return roots, nil
}

func bindingFromGLTF(gm *gltf.Material) *materials.Binding {
	b := materials.NewBinding(core.Color3White, core.Color3Black, 1)
	pbr := gm.PBRMetallicRoughness
	if pbr == nil {
		return b
	}
	cf := pbr.BaseColorFactorOrDefault()
	b.Color = core.NewColor3(float32(cf[0]), float32(cf[1]), float32(cf[2]))

	//   roughness -> shininess (smooth surface = high shininess)
	//   metallic  -> specular intensity
	roughness := float32(pbr.RoughnessFactorOrDefault())
	metallic := float32(pbr.MetallicFactorOrDefault())
	b.Shininess = (1.0-roughness)*(1.0-roughness)*128.0 + 1.0
	b.Specular = core.Gray(metallic * 0.7)
	return b
}

// loadGLTFPrimitive converts one glTF mesh primitive into a scene.Mesh.
func loadGLTFPrimitive(doc *gltf.Document, meshName string, primIdx int, prim *gltf.Primitive) (*Mesh, error) {
	name := meshName
	if name == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	} else if primIdx > 0 {
		name = fmt.Sprintf("%s_p%d", meshName, primIdx)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return nil, fmt.Errorf("normals: %w", err)
		}
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return nil, fmt.Errorf("uvs: %w", err)
		}
	}

	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]}}
		if i < len(normals) {
			n := normals[i]
			v.Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		}
		if i < len(uvs) {
			v.UV = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	}

	m := CreateMeshFromData(name, verts, indices)
	if normals == nil {
		if err := RecomputeNormals(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ── Export ──────────────────────────────────────────────────────────────────

// SaveGLB writes the mesh nodes as a binary glTF file. Each node becomes one
// glTF node with a single primitive and, when it has a binding, a material
// carrying the binding colour.
func SaveGLB(path string, nodes ...*Node) error {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "shading-lab"

	for _, n := range nodes {
		if n.Mesh == nil {
			return fmt.Errorf("node %s has no mesh", n.Name)
		}
		m := n.Mesh

		positions := make([][3]float32, len(m.Vertices))
		normals := make([][3]float32, len(m.Vertices))
		uvs := make([][2]float32, len(m.Vertices))
		for i, v := range m.Vertices {
			positions[i] = [3]float32{v.Position.X, v.Position.Y, v.Position.Z}
			normals[i] = [3]float32{v.Normal.X, v.Normal.Y, v.Normal.Z}
			uvs[i] = [2]float32{v.UV.X, v.UV.Y}
		}

		prim := &gltf.Primitive{
			Indices: gltf.Index(modeler.WriteIndices(doc, m.Indices)),
			Attributes: map[string]int{
				"POSITION":   modeler.WritePosition(doc, positions),
				"NORMAL":     modeler.WriteNormal(doc, normals),
				"TEXCOORD_0": modeler.WriteTextureCoord(doc, uvs),
			},
		}
		if n.Binding != nil {
			doc.Materials = append(doc.Materials, bindingToGLTF(n.Name, n.Binding))
			prim.Material = gltf.Index(len(doc.Materials) - 1)
		}

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: m.Name, Primitives: []*gltf.Primitive{prim}})

		p, s := n.Transform.Position, n.Transform.Scale
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        n.Name,
			Mesh:        gltf.Index(len(doc.Meshes) - 1),
			Translation: [3]float64{float64(p.X), float64(p.Y), float64(p.Z)},
			Scale:       [3]float64{float64(s.X), float64(s.Y), float64(s.Z)},
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb %q: %w", path, err)
	}
	return nil
}

// bindingToGLTF inverts the Phong approximation used on import.
func bindingToGLTF(name string, b *materials.Binding) *gltf.Material {
	roughness := 1 - stdmath.Sqrt(clamp01((float64(b.Shininess)-1)/128))
	metallic := clamp01(float64(b.Specular.R) / 0.7)
	return &gltf.Material{
		Name: name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{float64(b.Color.R), float64(b.Color.G), float64(b.Color.B), 1},
			MetallicFactor:  &metallic,
			RoughnessFactor: &roughness,
		},
	}
}

func clamp01(v float64) float64 {
	return stdmath.Max(0, stdmath.Min(1, v))
}
