package textures

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encode(t *testing.T, enc func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{B: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, enc(&buf, img))
	return buf.Bytes()
}

func TestLoadDecodesToRGBA(t *testing.T) {
	fsys := fstest.MapFS{
		"a.png": {Data: encode(t, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) })},
		"a.bmp": {Data: encode(t, func(b *bytes.Buffer, i image.Image) error { return bmp.Encode(b, i) })},
	}
	for _, name := range []string{"a.png", "a.bmp"} {
		tex, err := Load(fsys, name)
		require.NoError(t, err, name)
		assert.Equal(t, 2, tex.Width)
		assert.Equal(t, 1, tex.Height)
		assert.Equal(t, []byte{255, 0, 0, 255, 0, 0, 255, 255}, tex.Pixels, name)
	}
}

func TestLoadErrors(t *testing.T) {
	fsys := fstest.MapFS{"junk.png": {Data: []byte("not an image")}}

	_, err := Load(fsys, "missing.png")
	assert.Error(t, err)
	_, err = Load(fsys, "junk.png")
	assert.Error(t, err)

	_, err = FromImage("empty", image.NewRGBA(image.Rectangle{}))
	assert.ErrorIs(t, err, ErrEmptyTexture)
}

func TestLoaderCaches(t *testing.T) {
	fsys := fstest.MapFS{
		"heightmaps/default.png": {Data: encode(t, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) })},
	}
	l := NewLoaderFS("assets/", fsys)

	a, err := l.Load("heightmaps/default.png")
	require.NoError(t, err)
	b, err := l.Load("heightmaps/default.png")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Len(t, l.Cached(), 1)

	_, err = l.Load("heightmaps/fuji.png")
	assert.ErrorContains(t, err, "assets/")
}

func TestWhite(t *testing.T) {
	w := White()
	assert.Equal(t, 1, w.Width)
	assert.Equal(t, 1, w.Height)
	assert.Equal(t, []byte{255, 255, 255, 255}, w.Pixels)
	assert.NotSame(t, w, White())
}
