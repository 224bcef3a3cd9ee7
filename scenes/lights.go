package scenes

import (
	"fmt"
	"log/slog"

	"shading-lab/core"
	"shading-lab/math"
)

// LightStep is the distance one key press moves the active light.
const LightStep float32 = 0.5

var lightKeys = map[string]math.Vec3{
	"w": {X: 0, Y: 0, Z: -LightStep},
	"a": {X: -LightStep, Y: 0, Z: 0},
	"s": {X: 0, Y: 0, Z: LightStep},
	"d": {X: LightStep, Y: 0, Z: 0},
	"r": {X: 0, Y: LightStep, Z: 0},
	"f": {X: 0, Y: -LightStep, Z: 0},
}

// LightDelta returns the translation bound to key, if any.
func LightDelta(key string) (math.Vec3, bool) {
	d, ok := lightKeys[key]
	return d, ok
}

// MoveLight translates the light selected by state within ctx.
func MoveLight(ctx *SceneContext, state *RenderState, delta math.Vec3) error {
	light, err := ctx.Light(state.ActiveLight)
	if err != nil {
		return fmt.Errorf("move light: %w", err)
	}
	light.Translate(delta)
	slog.Debug("light moved", "scene", ctx.Index, "light", light.Name,
		"x", light.Position.X, "y", light.Position.Y, "z", light.Position.Z)
	return nil
}

// LightMover is the keyboard handler of a scene: w/a/s/d/r/f move the active
// light by LightStep along -Z/-X/+Z/+X/+Y/-Y. Releases are ignored.
type LightMover struct {
	Context *SceneContext
	State   *RenderState
}

func (h LightMover) HandleKey(ev core.KeyEvent) {
	if ev.Action != core.KeyDown {
		return
	}
	delta, ok := LightDelta(ev.Key)
	if !ok {
		return
	}
	if err := MoveLight(h.Context, h.State, delta); err != nil {
		slog.Warn("light key ignored", "key", ev.Key, "err", err)
	}
}
