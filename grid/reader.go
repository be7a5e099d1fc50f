package grid

import (
	"image"
	"image/color"
	"strings"

	"github.com/bodgit/hexpixel/charmap"
)

// scan calls fn with every pixel that is not fully transparent, in row-major
// order.
func scan(m image.Image, fn func(c color.NRGBA)) {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			if c.A == transparent {
				continue
			}
			fn(c)
		}
	}
}

// Codes returns the color code of every pixel that is not fully transparent.
func Codes(m image.Image) []charmap.Code {
	var codes []charmap.Code
	scan(m, func(c color.NRGBA) {
		codes = append(codes, charmap.FromRGB(c.R, c.G, c.B))
	})
	return codes
}

// Decode reads the characters painted in m. Transparent pixels are skipped
// and colors missing from t become charmap.Sentinel.
func Decode(m image.Image, t *charmap.Table) string {
	var b strings.Builder
	scan(m, func(c color.NRGBA) {
		if r, ok := t.CharOfRGB(c.R, c.G, c.B); ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(charmap.Sentinel)
		}
	})
	return b.String()
}
