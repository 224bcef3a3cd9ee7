package materials

import (
	"embed"
	"fmt"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFS embed.FS

// ShaderSource returns the GLSL vertex and fragment source for a key.
func ShaderSource(key Key) (vert, frag string, err error) {
	base := "shaders/" + key.String()
	v, err := shaderFS.ReadFile(base + ".vert")
	if err != nil {
		return "", "", fmt.Errorf("vertex shader %s: %w", key, err)
	}
	f, err := shaderFS.ReadFile(base + ".frag")
	if err != nil {
		return "", "", fmt.Errorf("fragment shader %s: %w", key, err)
	}
	return string(v), string(f), nil
}
