package imprint

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestLabel(t *testing.T) {
	src := testPNG(t, 200, 100)

	out, err := Label(src, "https://example.com")
	require.NoError(t, err)
	require.NotEmpty(t, out)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, 200, img.Bounds().Dx(), "width should be unchanged")
	assert.Equal(t, 100+padding*2+borderSize, img.Bounds().Dy(), "footer band should extend the image")
}

func TestLabelInvalidPNG(t *testing.T) {
	_, err := Label([]byte("not a png"), "https://example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestLoadTTFMissingFile(t *testing.T) {
	_, err := LoadTTF("/nonexistent/font.ttf", 14)

	require.Error(t, err)
}
