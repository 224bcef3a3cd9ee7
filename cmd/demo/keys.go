package main

import (
	"log/slog"

	"shading-lab/core"
	"shading-lab/materials"
	"shading-lab/scenes"
)

// HeightStep is the height scale change per [ or ] press.
const HeightStep float32 = 0.25

var sceneKeys = map[string]int{"1": 0, "2": 1, "3": 2}

var lightSelectKeys = map[string]int{"z": 0, "x": 1, "c": 2}

var algorithmKeys = map[string]materials.Algorithm{
	"g": materials.Gouraud,
	"p": materials.Phong,
}

// demoKeys owns the application key bindings. Every event it does not
// consume is forwarded to the active scene.
type demoKeys struct {
	ctrl *scenes.Controller
	quit func()
}

func (k demoKeys) HandleKey(ev core.KeyEvent) {
	if ev.Action == core.KeyDown && k.handle(ev.Key) {
		return
	}
	k.ctrl.ActiveScene().DispatchKey(ev)
}

func (k demoKeys) handle(key string) bool {
	var err error
	if idx, ok := sceneKeys[key]; ok {
		err = k.ctrl.SetActiveScene(idx)
	} else if idx, ok := lightSelectKeys[key]; ok {
		err = k.ctrl.SetActiveLight(idx)
	} else if alg, ok := algorithmKeys[key]; ok {
		err = k.ctrl.SetShadingAlgorithm(alg)
	} else {
		switch key {
		case "[":
			k.ctrl.SetHeightScale(k.ctrl.HeightScale() - HeightStep)
		case "]":
			k.ctrl.SetHeightScale(k.ctrl.HeightScale() + HeightStep)
		case "escape":
			if k.quit != nil {
				k.quit()
			}
		default:
			return false
		}
	}
	if err != nil {
		slog.Warn("key ignored", "key", key, "err", err)
	}
	return true
}
