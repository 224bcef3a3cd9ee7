package scenes

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"shading-lab/scene"
	"shading-lab/textures"
)

const eps = 1e-5

func heightmapPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 16)
	}
	img.SetGray(0, 0, color.Gray{Y: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type groundRecorder struct {
	sizes [][2]int
}

func (g *groundRecorder) build(rows, cols int) *scene.Mesh {
	g.sizes = append(g.sizes, [2]int{rows, cols})
	return scene.CreateGround(2, 2)
}

func testOptions(t *testing.T) (Options, *groundRecorder) {
	t.Helper()
	data := heightmapPNG(t)
	fsys := fstest.MapFS{
		"heightmaps/default.png": {Data: data},
		"heightmaps/invert.png":  {Data: data},
		"heightmaps/fuji.png":    {Data: data},
	}
	rec := &groundRecorder{}
	return Options{
		Textures: textures.NewLoaderFS("mem://", fsys),
		Ground:   rec.build,
	}, rec
}

func newTestController(t *testing.T) *Controller {
	t.Helper()
	opts, _ := testOptions(t)
	c, err := New(Definitions(), opts)
	require.NoError(t, err)
	return c
}
