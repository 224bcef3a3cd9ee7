package textures

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyTexture is returned for images with no pixels.
var ErrEmptyTexture = errors.New("texture has no pixels")

// Texture holds CPU-side pixel data for a 2D texture.
// GLID is set by the OpenGL backend after upload.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format (4 bytes per pixel, row-major, top-to-bottom).
	Pixels []byte
	GLID   uint32
}

// NewSolid creates a 1x1 texture with the given RGBA color values (0–255).
func NewSolid(name string, r, g, b, a uint8) *Texture {
	return &Texture{
		Name:   name,
		Width:  1,
		Height: 1,
		Pixels: []byte{r, g, b, a},
	}
}

// White returns a fresh 1x1 opaque white texture.
func White() *Texture {
	return NewSolid("white", 255, 255, 255, 255)
}

// FromImage converts any decoded image into an RGBA8 texture.
func FromImage(name string, img image.Image) (*Texture, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyTexture)
	}
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return &Texture{
		Name:   name,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: rgba.Pix,
	}, nil
}

// Load decodes png, jpeg, bmp, tiff or webp from fsys.
func Load(fsys fs.FS, path string) (*Texture, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return FromImage(path, img)
}

// Loader resolves texture paths against a base directory and caches results.
type Loader struct {
	BaseURL string

	fsys     fs.FS
	textures map[string]*Texture
	mu       sync.RWMutex
}

// NewLoader creates a loader reading from the directory baseURL.
func NewLoader(baseURL string) *Loader {
	return NewLoaderFS(baseURL, os.DirFS(baseURL))
}

// NewLoaderFS creates a loader over an arbitrary filesystem; baseURL is only
// used for logging.
func NewLoaderFS(baseURL string, fsys fs.FS) *Loader {
	return &Loader{
		BaseURL:  baseURL,
		fsys:     fsys,
		textures: make(map[string]*Texture),
	}
}

// Load returns the texture at path, decoding it on first use.
func (l *Loader) Load(path string) (*Texture, error) {
	l.mu.RLock()
	if tex, ok := l.textures[path]; ok {
		l.mu.RUnlock()
		return tex, nil
	}
	l.mu.RUnlock()

	tex, err := Load(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load %s from %s: %w", path, l.BaseURL, err)
	}
	slog.Debug("texture loaded", "path", path, "width", tex.Width, "height", tex.Height)

	l.mu.Lock()
	l.textures[path] = tex
	l.mu.Unlock()

	return tex, nil
}

// Cached returns every texture decoded so far.
func (l *Loader) Cached() []*Texture {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Texture, 0, len(l.textures))
	for _, t := range l.textures {
		out = append(out, t)
	}
	return out
}
