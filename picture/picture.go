package picture

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrLoad       = errors.New("imageNotLoaded")
	ErrDegenerate = errors.New("degenerateInput")
)

// Image is a decoded image resized to a fixed number of rows.
type Image struct {
	// Width and Height are the size of the image before resizing.
	Width  int
	Height int

	pix *image.RGBA
}

// Rows returns the resized height.
func (m *Image) Rows() int {
	return m.pix.Rect.Dy()
}

// Cols returns the resized width.
func (m *Image) Cols() int {
	return m.pix.Rect.Dx()
}

// Intensity returns the mean of the red, green and blue channels at
// (row, col), scaled to [0, 1].
func (m *Image) Intensity(row, col int) float64 {
	i := m.pix.PixOffset(col, row)
	p := m.pix.Pix[i : i+3 : i+3]
	return (float64(p[0]) + float64(p[1]) + float64(p[2])) / 3 / 255
}

// RGBA returns the resized pixels.
func (m *Image) RGBA() *image.RGBA {
	return m.pix
}

// ScaledWidth returns the width of a width x height image resized to
// resolution rows.
func ScaledWidth(resolution, width, height int) int {
	return int(math.Round(float64(resolution) * float64(width) / float64(height)))
}

// Load decodes the image at path and resizes it to resolution rows.
func Load(path string, resolution int) (*Image, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("%w: resolution %d", ErrDegenerate, resolution)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	m, err := Decode(f, resolution)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode reads an image from r and resizes it to resolution rows.
func Decode(r io.Reader, resolution int) (*Image, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("%w: resolution %d", ErrDegenerate, resolution)
	}
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return FromImage(src, resolution)
}

// FromImage resizes src to resolution rows. Images that already have the
// target size are copied without resampling.
//
// Pixels are premultiplied, so fully transparent areas read as black.
func FromImage(src image.Image, resolution int) (*Image, error) {
	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	if resolution <= 0 {
		return nil, fmt.Errorf("%w: resolution %d", ErrDegenerate, resolution)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: empty %dx%d image", ErrDegenerate, width, height)
	}
	cols := ScaledWidth(resolution, width, height)
	if cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d image resized to %d rows has no columns",
			ErrDegenerate, width, height, resolution)
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols, resolution))
	if cols == width && resolution == height {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.BiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}
	return &Image{Width: width, Height: height, pix: dst}, nil
}
