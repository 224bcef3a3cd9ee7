package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string
}

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "Shading Lab",
		Resizable: true,
		VSync:     true,
	}
}

// NewWindow opens a window with a current OpenGL 4.1 core context.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	glfw.SwapInterval(boolToInt(config.VSync))

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.SetSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) Close() {
	w.Handle.SetShouldClose(true)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

// ── Keyboard ────────────────────────────────────────────────────────────────

type KeyAction int

const (
	KeyDown KeyAction = iota
	KeyUp
)

// KeyEvent carries a key by name ("w", "1", "left", "escape").
type KeyEvent struct {
	Key    string
	Action KeyAction
}

// KeyCallback is the type for keyboard event handlers
type KeyCallback func(KeyEvent)

// SetKeyCallback forwards presses and releases of named keys. Repeats count
// as presses, matching how held keys behave in a browser. Unnamed keys are dropped.
func (w *Window) SetKeyCallback(cb KeyCallback) {
	w.Handle.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		name, ok := keyNames[key]
		if !ok {
			return
		}
		ev := KeyEvent{Key: name, Action: KeyDown}
		if action == glfw.Release {
			ev.Action = KeyUp
		}
		cb(ev)
	})
}

var keyNames = func() map[glfw.Key]string {
	m := map[glfw.Key]string{
		glfw.KeyEscape:       "escape",
		glfw.KeyLeft:         "left",
		glfw.KeyRight:        "right",
		glfw.KeyUp:           "up",
		glfw.KeyDown:         "down",
		glfw.KeyLeftBracket:  "[",
		glfw.KeyRightBracket: "]",
	}
	for k := glfw.KeyA; k <= glfw.KeyZ; k++ {
		m[k] = string(rune('a' + int(k-glfw.KeyA)))
	}
	for k := glfw.Key0; k <= glfw.Key9; k++ {
		m[k] = string(rune('0' + int(k-glfw.Key0)))
	}
	return m
}()

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
