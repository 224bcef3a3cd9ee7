package scenes

import (
	"fmt"

	"shading-lab/core"
	"shading-lab/math"
)

// Shape selects the mesh generator for a model.
type Shape int

const (
	ShapeSphere Shape = iota
	ShapeBox
	ShapePolyhedron
)

// Camera placement shared by every scene.
var (
	CameraPosition = math.NewVec3(0, 1.8, 10)
	CameraTarget   = math.NewVec3(0, 1.8, 0)
)

const (
	CameraFOVDegrees float32 = 35
	CameraNear       float32 = 0.1
	CameraFar        float32 = 100
)

// Ground appearance shared by every scene.
var (
	GroundScale = math.NewVec3(20, 1, 20)
	GroundColor = core.NewColor3(0.10, 0.65, 0.15)
)

const (
	GroundShininess    float32 = 1
	DefaultHeightScale float32 = 1
	SphereDiameter     float32 = 1
	SphereSegments             = 32
)

type LightDef struct {
	Name     string
	Position math.Vec3
	Diffuse  core.Color3
	Specular core.Color3
}

type ModelDef struct {
	Name      string
	Shape     Shape
	Size      math.Vec3 // box dimensions; ignored for other shapes
	Position  math.Vec3
	Scale     float32 // uniform; 0 means 1
	Color     core.Color3
	Specular  core.Color3
	Shininess float32
}

// Definition is the authored content of one scene.
type Definition struct {
	Name               string
	Background         core.Color
	Ambient            core.Color3
	GroundSubdivisions [2]int
	Heightmap          string
	Lights             []LightDef
	Models             []ModelDef
}

var (
	skyBlue  = core.Color{R: 0.53, G: 0.81, B: 0.92, A: 1}
	daylight = core.NewColor3(1, .99, .91)
	ambient  = core.Gray(0.2)
)

// Definitions returns the three scene definitions in index order.
func Definitions() []Definition {
	return []Definition{scene0(), scene1(), scene2()}
}

func scene0() Definition {
	return Definition{
		Name:               "scene0",
		Background:         core.Color{R: 0.1, G: 0.1, B: 0.1, A: 1},
		Ambient:            ambient,
		GroundSubdivisions: [2]int{500, 500},
		Heightmap:          "heightmaps/default.png",
		Lights: []LightDef{
			{Name: "light0", Position: math.NewVec3(1, 1, 5), Diffuse: core.Color3White, Specular: core.Color3White},
			{Name: "light1", Position: math.NewVec3(0, 3, 0), Diffuse: core.Color3White, Specular: core.Color3White},
		},
		Models: []ModelDef{
			{
				Name: "sphere", Shape: ShapeSphere, Position: math.NewVec3(1, 0.5, 3),
				Color: core.NewColor3(0.10, 0.35, 0.88), Specular: core.Gray(0.8), Shininess: 16,
			},
			{
				Name: "box", Shape: ShapeBox, Size: math.NewVec3(2, 1, 1), Position: math.NewVec3(-1, 0.5, 2),
				Color: core.NewColor3(0.75, 0.15, 0.05), Specular: core.Gray(0.4), Shininess: 4,
			},
			{
				Name: PolyhedronName, Shape: ShapePolyhedron, Scale: 5,
				Color: core.NewColor3(0.20, 0.45, 0.50), Specular: core.Gray(0.4), Shininess: 5,
			},
		},
	}
}

func scene1() Definition {
	return Definition{
		Name:               "scene1",
		Background:         skyBlue,
		Ambient:            ambient,
		GroundSubdivisions: [2]int{500, 500},
		Heightmap:          "heightmaps/invert.png",
		Lights: []LightDef{
			{Name: "light0", Position: math.NewVec3(1, 1, 5), Diffuse: daylight, Specular: core.Color3White},
		},
		Models: []ModelDef{
			{
				Name: "box0", Shape: ShapeBox, Size: math.Vec3One, Position: math.NewVec3(0, 5, 2),
				Color: core.NewColor3(0.55, 0.15, 0.85), Specular: core.Gray(0.8), Shininess: 20,
			},
			{
				Name: "box1", Shape: ShapeBox, Size: math.Vec3One, Position: math.NewVec3(0, 6, 2),
				Color: core.NewColor3(0.15, 0.85, 0.75), Specular: core.Gray(0.4), Shininess: 4,
			},
			{
				Name: "box2", Shape: ShapeBox, Size: math.Vec3One, Position: math.NewVec3(0, 7, 2),
				Color: core.NewColor3(0.75, 0.15, 0.05), Specular: core.Gray(0.4), Shininess: 4,
			},
		},
	}
}

// GradientSpheres is the number of spheres on scene 2's diagonal.
const GradientSpheres = 21

func scene2() Definition {
	def := Definition{
		Name:               "scene2",
		Background:         skyBlue,
		Ambient:            ambient,
		GroundSubdivisions: [2]int{500, 500},
		Heightmap:          "heightmaps/fuji.png",
		Lights: []LightDef{
			{Name: "light0", Position: math.NewVec3(1, 1, 5), Diffuse: daylight, Specular: core.Color3White},
			{Name: "light1", Position: math.NewVec3(1, 1, 5), Diffuse: core.NewColor3(1, 0, 0), Specular: core.Color3White},
			{Name: "light2", Position: math.NewVec3(2, 1, 5), Diffuse: core.NewColor3(0, 0, 1), Specular: core.Color3White},
		},
	}
	for i := 0; i < GradientSpheres; i++ {
		f := float32(i)
		def.Models = append(def.Models, ModelDef{
			Name:      fmt.Sprintf("sphere%d", i),
			Shape:     ShapeSphere,
			Position:  math.NewVec3(f-10, 3, f-10),
			Color:     core.Gray(f / 20),
			Specular:  core.Color3White,
			Shininess: 16,
		})
	}
	return def
}
