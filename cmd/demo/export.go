package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"shading-lab/core"
	meshio "shading-lab/io"
	"shading-lab/materials"
	"shading-lab/scene"
	"shading-lab/scenes"
)

func newExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export-mesh",
		Short: "Write the procedural polyhedron with its vertex normals as .glb or .obj",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportPolyhedron(out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", scenes.PolyhedronName+".glb", "output path")
	return cmd
}

func exportPolyhedron(path string) error {
	mesh, err := scenes.BuildPolyhedron()
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		err = meshio.ExportOBJ(path, mesh)
	case ".glb":
		node := scene.NewMeshNode(mesh)
		node.Name = scenes.PolyhedronName
		node.Binding = materials.NewBinding(core.Gray(0.5), core.Gray(0.1), 32)
		err = scene.SaveGLB(path, node)
	default:
		err = fmt.Errorf("unsupported format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", scenes.PolyhedronName, err)
	}
	slog.Info("exported mesh", "name", mesh.Name, "path", path, "vertices", len(mesh.Vertices))
	return nil
}
