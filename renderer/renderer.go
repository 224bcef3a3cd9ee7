package renderer

import (
	"errors"
	"fmt"
	"log/slog"

	"shading-lab/core"
	"shading-lab/internal/opengl"
	"shading-lab/scenes"
)

// RenderEngine is the high-level renderer that drives the OpenGL backend.
type RenderEngine struct {
	gl     *opengl.Renderer
	window *core.Window

	// Per-frame stats (populated during Render)
	lastObjects   int
	lastTriangles int
}

func NewRenderEngine(window *core.Window) (*RenderEngine, error) {
	glRenderer, err := opengl.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	glRenderer.SetViewport(fbw, fbh)

	slog.Info("render engine initialised", "backend", "opengl")
	return &RenderEngine{
		gl:     glRenderer,
		window: window,
	}, nil
}

// Prepare compiles every material of ctx ahead of the first frame so a
// broken shader is reported at startup rather than on the first draw.
func (re *RenderEngine) Prepare(ctx *scenes.SceneContext) error {
	for _, m := range ctx.Materials.All() {
		if err := re.gl.Prepare(m); err != nil {
			return fmt.Errorf("scene %d: %w", ctx.Index, err)
		}
	}
	return nil
}

// Render draws one frame of ctx. The scene's before-render observers run
// first so the materials carry this frame's camera and light values.
func (re *RenderEngine) Render(ctx *scenes.SceneContext) error {
	if ctx == nil || ctx.Camera == nil {
		return fmt.Errorf("no scene or camera")
	}

	ctx.Scene.BeforeRender()

	re.gl.BeginFrame(ctx.Scene.ClearColor)

	view := ctx.Camera.GetViewMatrix()
	proj := ctx.Camera.GetProjectionMatrix()

	objects, triangles := 0, 0
	var errs []error
	for _, node := range ctx.Renderables() {
		if node == nil || !node.Visible || node.Mesh == nil {
			continue
		}
		if err := re.gl.DrawNode(node, view, proj); err != nil {
			errs = append(errs, err)
			continue
		}
		objects++
		triangles += len(node.Mesh.Indices) / 3
	}

	re.lastObjects = objects
	re.lastTriangles = triangles
	return errors.Join(errs...)
}

// Present swaps buffers.
func (re *RenderEngine) Present() {
	re.window.SwapBuffers()
}

// Resize updates the viewport and the aspect ratio of every camera.
func (re *RenderEngine) Resize(width, height int, ctxs ...*scenes.SceneContext) {
	if width <= 0 || height <= 0 {
		return
	}
	re.gl.SetViewport(width, height)
	for _, ctx := range ctxs {
		if ctx != nil && ctx.Camera != nil {
			ctx.Camera.UpdateAspectRatio(float32(width), float32(height))
		}
	}
}

func (re *RenderEngine) Destroy() {
	re.gl.Destroy()
}

// DrawStats returns the counts gathered by the last Render.
func (re *RenderEngine) DrawStats() (objects, triangles int) {
	return re.lastObjects, re.lastTriangles
}
