package scenes

import (
	"log/slog"

	"shading-lab/core"
	"shading-lab/materials"
	"shading-lab/math"
)

// Per-frame uniform names.
const (
	UniformCameraPosition = "camera_position"
	UniformAmbient        = "ambient"
	UniformNumLights      = "num_lights"
	UniformLightPositions = "light_positions"
	UniformLightColors    = "light_colors"
)

// SyncUniforms pushes the camera position, ambient colour and light arrays
// of ctx into m. With no lights the arrays are empty and the count is zero.
func SyncUniforms(ctx *SceneContext, m *materials.Material) {
	positions := make([]math.Vec3, len(ctx.Lights))
	colors := make([]core.Color3, len(ctx.Lights))
	for i, l := range ctx.Lights {
		positions[i] = l.Position
		colors[i] = l.Diffuse
	}

	m.SetVector3(UniformCameraPosition, ctx.Camera.Position)
	m.SetColor3(UniformAmbient, ctx.Scene.Ambient)
	m.SetInt(UniformNumLights, int32(len(ctx.Lights)))
	m.SetArray3(UniformLightPositions, math.FlattenVec3(positions))
	m.SetColor3Array(UniformLightColors, colors)
}

// UniformSync is the per-frame hook of a scene. It refreshes the illum and
// ground materials selected by the current shading algorithm.
type UniformSync struct {
	Context *SceneContext
	State   *RenderState
}

func (h UniformSync) BeforeRender() {
	for _, kind := range materials.Kinds {
		m, err := h.Context.Materials.Lookup(kind, h.State.Algorithm)
		if err != nil {
			slog.Error("uniform sync skipped", "scene", h.Context.Index, "err", err)
			continue
		}
		SyncUniforms(h.Context, m)
	}
}
