package scenes

import (
	"fmt"
	"log/slog"

	"shading-lab/core"
	"shading-lab/materials"
	"shading-lab/math"
	"shading-lab/scene"
	"shading-lab/textures"
)

// TextureSource resolves asset paths such as "heightmaps/fuji.png".
type TextureSource interface {
	Load(path string) (*textures.Texture, error)
}

// GroundFactory builds the ground grid for a scene.
type GroundFactory func(rows, cols int) *scene.Mesh

// Options supplies the collaborators used during assembly.
type Options struct {
	Textures  TextureSource
	Materials materials.Factory // defaults to materials.DefaultFactory
	Ground    GroundFactory     // defaults to scene.CreateGround
}

func (o Options) withDefaults() Options {
	if o.Materials == nil {
		o.Materials = materials.DefaultFactory
	}
	if o.Ground == nil {
		o.Ground = scene.CreateGround
	}
	return o
}

// Assemble builds scene idx from def: camera, lights, ground, models,
// materials for state.Algorithm and the keyboard and per-frame handlers.
func Assemble(idx int, def Definition, state *RenderState, opts Options) (*SceneContext, error) {
	opts = opts.withDefaults()
	if opts.Textures == nil {
		return nil, fmt.Errorf("assemble %s: no texture source", def.Name)
	}
	if len(def.Lights) == 0 {
		return nil, fmt.Errorf("assemble %s: a scene needs at least one light", def.Name)
	}

	set, err := materials.NewSet(opts.Materials)
	if err != nil {
		return nil, fmt.Errorf("assemble %s: %w", def.Name, err)
	}

	s := scene.NewScene(def.Name)
	s.ClearColor = def.Background
	s.Ambient = def.Ambient
	s.RightHanded = true

	ctx := &SceneContext{
		Index:              idx,
		Scene:              s,
		Background:         def.Background,
		Ambient:            def.Ambient,
		GroundSubdivisions: def.GroundSubdivisions,
		Materials:          set,
	}

	// ── Camera ──
	cam := scene.NewCamera(CameraPosition, CameraTarget, math.DegToRad(CameraFOVDegrees), CameraNear, CameraFar)
	s.SetCamera(cam)
	cam.AttachControl(s)
	ctx.Camera = cam

	// ── Lights ──
	for _, ld := range def.Lights {
		l := &scene.Light{Name: ld.Name, Position: ld.Position, Diffuse: ld.Diffuse, Specular: ld.Specular}
		s.AddLight(l)
		ctx.Lights = append(ctx.Lights, l)
	}

	// ── Ground ──
	white := textures.White()
	heightmap, err := opts.Textures.Load(def.Heightmap)
	if err != nil {
		return nil, fmt.Errorf("assemble %s: heightmap: %w", def.Name, err)
	}
	groundMesh := opts.Ground(def.GroundSubdivisions[0], def.GroundSubdivisions[1])
	ground := scene.NewMeshNode(groundMesh)
	ground.Name = "ground"
	ground.SetScale(GroundScale)
	ground.Binding = materials.NewBinding(GroundColor, core.Color3Black, GroundShininess)
	ground.Binding.Texture = white
	ground.Binding.Ground = &materials.GroundParams{HeightScale: DefaultHeightScale, Heightmap: heightmap}
	s.AddNode(ground)
	ctx.Ground = ground

	// ── Models ──
	for _, md := range def.Models {
		node, err := buildModel(md)
		if err != nil {
			return nil, fmt.Errorf("assemble %s: %w", def.Name, err)
		}
		node.Binding.Texture = white
		s.AddNode(node)
		ctx.Models = append(ctx.Models, node)
	}

	if err := ctx.AssignMaterials(state.Algorithm); err != nil {
		return nil, fmt.Errorf("assemble %s: %w", def.Name, err)
	}

	s.OnKeyboard(LightMover{Context: ctx, State: state})
	s.OnBeforeRender(UniformSync{Context: ctx, State: state})

	slog.Info("scene assembled", "scene", def.Name, "lights", len(ctx.Lights), "models", len(ctx.Models))
	return ctx, nil
}

func buildModel(md ModelDef) (*scene.Node, error) {
	var mesh *scene.Mesh
	switch md.Shape {
	case ShapeSphere:
		mesh = scene.CreateSphere(SphereDiameter/2, SphereSegments*2, SphereSegments)
	case ShapeBox:
		mesh = scene.CreateBox(md.Size.X, md.Size.Y, md.Size.Z)
	case ShapePolyhedron:
		var err error
		if mesh, err = BuildPolyhedron(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("model %s: unknown shape %d", md.Name, md.Shape)
	}
	mesh.Name = md.Name

	node := scene.NewMeshNode(mesh)
	node.SetPosition(md.Position)
	if md.Scale != 0 {
		node.SetScale(math.Vec3One.Mul(md.Scale))
	}
	node.Binding = materials.NewBinding(md.Color, md.Specular, md.Shininess)
	return node, nil
}
