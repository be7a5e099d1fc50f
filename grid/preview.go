package grid

import (
	"errors"
	"image"

	"github.com/disintegration/gift"
)

var errBadScale = errors.New("grid: preview scale must be at least 1")

// Preview enlarges m by an integer factor using nearest neighbour sampling
// so every pixel becomes a scale by scale block of the same color.
func Preview(m image.Image, scale int) (*image.NRGBA, error) {
	if scale < 1 {
		return nil, errBadScale
	}

	b := m.Bounds()
	g := gift.New(gift.Resize(b.Dx()*scale, b.Dy()*scale, gift.NearestNeighborResampling))

	dst := image.NewNRGBA(g.Bounds(b))
	g.Draw(dst, m)

	return dst, nil
}
