// Package imaging shrinks evidence photos before they leave the
// server: the longer side is clamped to 1200px and the result is
// re-encoded as baseline JPEG.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const (
	maxDimension = 1200
	jpegQuality  = 80
)

var (
	ErrDecode = errors.New("imaging: could not decode image")
	ErrEncode = errors.New("imaging: could not encode image")
)

// Compress decodes a raster image (JPEG, PNG, GIF or WebP), scales it
// so that max(width, height) <= 1200 preserving aspect ratio, and
// re-encodes it as JPEG at quality 80. Images already within bounds
// keep their dimensions. Callers must not upload on error.
func Compress(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	targetW, targetH := fit(width, height)

	var out image.Image = src
	if targetW != width || targetH != height {
		dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// fit clamps the longer side to maxDimension and scales the shorter
// side proportionally, rounded to the nearest pixel. Extreme aspect
// ratios round the short side to zero; it is floored at one pixel so
// the output stays a valid image.
func fit(width, height int) (int, int) {
	if width > height {
		if width > maxDimension {
			height = roundDiv(height*maxDimension, width)
			width = maxDimension
		}
	} else {
		if height > maxDimension {
			width = roundDiv(width*maxDimension, height)
			height = maxDimension
		}
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

func roundDiv(a, b int) int {
	return (a + b/2) / b
}
