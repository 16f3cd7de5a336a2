package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
	return cfg.Width, cfg.Height
}

func TestCompress_ClampsWideImage(t *testing.T) {
	out, err := Compress(bytes.NewReader(makePNG(t, 2400, 1200)))
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 1200, w)
	assert.Equal(t, 600, h)
}

func TestCompress_ClampsTallImage(t *testing.T) {
	out, err := Compress(bytes.NewReader(makePNG(t, 900, 1800)))
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 600, w)
	assert.Equal(t, 1200, h)
}

func TestCompress_RoundsShortSide(t *testing.T) {
	// 1999x1000 scales to 1200 x round(1000*1200/1999) = 1200x600.
	out, err := Compress(bytes.NewReader(makePNG(t, 1999, 1000)))
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 1200, w)
	assert.Equal(t, 600, h)
}

func TestCompress_KeepsSmallImageDimensions(t *testing.T) {
	out, err := Compress(bytes.NewReader(makePNG(t, 800, 600)))
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestCompress_BoundaryImageUntouched(t *testing.T) {
	out, err := Compress(bytes.NewReader(makePNG(t, 1200, 1200)))
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 1200, w)
	assert.Equal(t, 1200, h)
}

func TestCompress_ExtremeAspectRatioKeepsOnePixel(t *testing.T) {
	// 1x10000 would scale the width to zero; it is floored at 1.
	out, err := Compress(bytes.NewReader(makePNG(t, 1, 10000)))
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1200, h)

	out, err = Compress(bytes.NewReader(makePNG(t, 10000, 1)))
	require.NoError(t, err)

	w, h = decodeDims(t, out)
	assert.Equal(t, 1200, w)
	assert.Equal(t, 1, h)
}

func TestCompress_AcceptsJPEGInput(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1500, 500))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	out, err := Compress(&buf)
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 1200, w)
	assert.Equal(t, 400, h)
}

func TestCompress_RejectsGarbage(t *testing.T) {
	_, err := Compress(strings.NewReader("definitely not an image"))
	require.ErrorIs(t, err, ErrDecode)
}
