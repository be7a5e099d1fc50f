package grid

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/bodgit/hexpixel/charmap"
)

var errEmpty = errors.New("grid: no color data")

// Side returns the side length of the square grid holding n pixels.
func Side(n int) int {
	return int(math.Ceil(math.Sqrt(float64(n))))
}

func bounds(n int, layout Layout) image.Rectangle {
	if layout == Linear {
		return image.Rect(0, 0, n, 1)
	}
	side := Side(n)
	return image.Rect(0, 0, side, side)
}

// Encode paints one opaque pixel per code using the given layout. Unused
// cells are left transparent.
func Encode(codes []charmap.Code, layout Layout) (*image.NRGBA, error) {
	if len(codes) == 0 {
		return nil, errEmpty
	}

	// A new image is already transparent black everywhere
	m := image.NewNRGBA(bounds(len(codes), layout))

	b := m.Bounds()
	i := 0
	for y := b.Min.Y; y < b.Max.Y && i < len(codes); y++ {
		for x := b.Min.X; x < b.Max.X && i < len(codes); x++ {
			r, g, bl := codes[i].RGB()
			m.SetNRGBA(x, y, color.NRGBA{r, g, bl, opaque})
			i++
		}
	}

	return m, nil
}

// EncodeText maps text through t and paints the result. Characters missing
// from the table are dropped.
func EncodeText(t *charmap.Table, text string, layout Layout) (*image.NRGBA, error) {
	return Encode(t.Codes(text), layout)
}
