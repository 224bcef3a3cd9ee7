// Package scenes assembles the three demo scenes and exposes the controller
// that switches scene, shading algorithm, height scale and active light.
package scenes

import (
	"errors"

	"shading-lab/materials"
)

// ErrInvalidIndex is returned when a scene or light index is out of range.
var ErrInvalidIndex = errors.New("invalid index")

// RenderState is the selection shared by the controller and the per-scene
// handlers. One instance is created per controller and passed explicitly.
type RenderState struct {
	ActiveScene int
	ActiveLight int
	Algorithm   materials.Algorithm
}

func NewRenderState() *RenderState {
	return &RenderState{Algorithm: materials.Gouraud}
}
