package io

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"shading-lab/core"
	"shading-lab/math"
	"shading-lab/scene"
)

// LoadOBJ parses a Wavefront .obj file into one mesh per object or group.
// Faces are fan-triangulated. A mesh whose faces carry no normals gets
// smoothed vertex normals from scene.RecomputeNormals.
func LoadOBJ(path string) ([]*scene.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer f.Close()

	var (
		positions []math.Vec3
		normals   []math.Vec3
		uvs       []math.Vec2
		meshes    []*scene.Mesh
	)

	type pending struct {
		name       string
		vertices   []core.Vertex
		indices    []uint32
		hasNormals bool
	}
	current := pending{name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))}
	vertexMap := make(map[string]uint32) // "v/vt/vn" -> vertex index

	flush := func() error {
		if len(current.vertices) == 0 {
			return nil
		}
		m := scene.CreateMeshFromData(current.name, current.vertices, current.indices)
		if !current.hasNormals {
			if err := scene.RecomputeNormals(m); err != nil {
				return fmt.Errorf("obj %s: %w", current.name, err)
			}
		}
		meshes = append(meshes, m)
		return nil
	}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "v", "vn":
			v, err := parseFloats(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
			vec := math.Vec3{X: v[0], Y: v[1], Z: v[2]}
			if parts[0] == "v" {
				positions = append(positions, vec)
			} else {
				normals = append(normals, vec)
			}
		case "vt":
			v, err := parseFloats(parts[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
			uvs = append(uvs, math.Vec2{X: v[0], Y: v[1]})
		case "f":
			if len(parts) < 4 {
				return nil, fmt.Errorf("%s:%d: face needs at least 3 vertices", path, lineNo)
			}
			faceVerts := make([]uint32, 0, len(parts)-1)
			for _, faceStr := range parts[1:] {
				if idx, ok := vertexMap[faceStr]; ok {
					faceVerts = append(faceVerts, idx)
					continue
				}
				vertex, hasNormal, err := parseFaceVertex(faceStr, positions, normals, uvs)
				if err != nil {
					return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
				}
				current.hasNormals = current.hasNormals || hasNormal
				newIdx := uint32(len(current.vertices))
				current.vertices = append(current.vertices, vertex)
				vertexMap[faceStr] = newIdx
				faceVerts = append(faceVerts, newIdx)
			}

			for i := 2; i < len(faceVerts); i++ {
				current.indices = append(current.indices,
					faceVerts[0], faceVerts[i-1], faceVerts[i])
			}

		case "o", "g":
			if err := flush(); err != nil {
				return nil, err
			}
			name := "unnamed"
			if len(parts) > 1 {
				name = parts[1]
			}
			current = pending{name: name}
			vertexMap = make(map[string]uint32)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(meshes) == 0 {
		return nil, fmt.Errorf("no mesh data found in OBJ file")
	}
	return meshes, nil
}

// ExportOBJ writes meshes to a .obj file, one object each, with positions,
// normals and texture coordinates.
func ExportOBJ(path string, meshes ...*scene.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create OBJ file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprintln(w, "# shading-lab")
	fmt.Fprintln(w)

	vertexOffset := uint32(0)
	for _, mesh := range meshes {
		fmt.Fprintf(w, "o %s\n", mesh.Name)

		for _, v := range mesh.Vertices {
			fmt.Fprintf(w, "v %g %g %g\n", v.Position.X, v.Position.Y, v.Position.Z)
		}
		for _, v := range mesh.Vertices {
			fmt.Fprintf(w, "vn %g %g %g\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
		}
		for _, v := range mesh.Vertices {
			fmt.Fprintf(w, "vt %g %g\n", v.UV.X, v.UV.Y)
		}

		// OBJ indices are 1-based and shared across objects
		for i := 0; i+2 < len(mesh.Indices); i += 3 {
			a := mesh.Indices[i] + 1 + vertexOffset
			b := mesh.Indices[i+1] + 1 + vertexOffset
			c := mesh.Indices[i+2] + 1 + vertexOffset
			fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		}

		vertexOffset += uint32(len(mesh.Vertices))
		fmt.Fprintln(w)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}

// resolveIndex turns a 1-based or negative OBJ reference into a slice index.
func resolveIndex(s string, n int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		idx = n + idx + 1
	}
	if idx <= 0 || idx > n {
		return 0, fmt.Errorf("index %s out of range (have %d)", s, n)
	}
	return idx - 1, nil
}

// parseFaceVertex parses an OBJ face vertex spec like "v/vt/vn".
func parseFaceVertex(spec string, positions, normals []math.Vec3, uvs []math.Vec2) (core.Vertex, bool, error) {
	var v core.Vertex
	parts := strings.Split(spec, "/")

	idx, err := resolveIndex(parts[0], len(positions))
	if err != nil {
		return v, false, fmt.Errorf("position: %w", err)
	}
	v.Position = positions[idx]

	if len(parts) >= 2 && parts[1] != "" {
		idx, err := resolveIndex(parts[1], len(uvs))
		if err != nil {
			return v, false, fmt.Errorf("uv: %w", err)
		}
		v.UV = uvs[idx]
	}

	hasNormal := false
	if len(parts) >= 3 && parts[2] != "" {
		idx, err := resolveIndex(parts[2], len(normals))
		if err != nil {
			return v, false, fmt.Errorf("normal: %w", err)
		}
		v.Normal = normals[idx]
		hasNormal = true
	}

	return v, hasNormal, nil
}
