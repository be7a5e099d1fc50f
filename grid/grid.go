/*
Package grid lays a sequence of color codes out as pixels and reads them back.

Each code becomes one opaque pixel. In the square layout the image is
ceil(sqrt(n)) pixels on each side and is filled row by row from the top-left
corner; any cells left over after the last code stay fully transparent. The
linear layout is a single row n pixels wide.

When reading, fully transparent pixels are padding and are skipped. Every
other pixel produces exactly one character, which is the sentinel for colors
missing from the table.
*/
package grid

import (
	"fmt"
	"strings"
)

// Layout selects the shape of the encoded image.
type Layout int

const (
	// Square lays the pixels out in the smallest square that fits them.
	Square Layout = iota
	// Linear lays the pixels out in a single row.
	Linear
)

const (
	opaque      = 0xff
	transparent = 0x00
)

var layoutNames = map[Layout]string{
	Square: "square",
	Linear: "linear",
}

func (l Layout) String() string {
	if s, ok := layoutNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// ParseLayout returns the layout with the given name.
func ParseLayout(s string) (Layout, error) {
	for l, name := range layoutNames {
		if strings.EqualFold(s, name) {
			return l, nil
		}
	}
	return Square, fmt.Errorf("grid: unknown layout %q", s)
}
