package charmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var errBadCode = errors.New("charmap: invalid color code")

// Code is a color code in #RRGGBB form.
type Code string

// ParseCode parses a #RRGGBB token, ignoring case, and returns it in
// normalized uppercase form.
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return "", fmt.Errorf("%w: %q", errBadCode, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errBadCode, s)
	}
	return FromRGB(c.RGB255()), nil
}

// FromRGB returns the code for an 8-bit RGB triple.
func FromRGB(r, g, b uint8) Code {
	return Code(fmt.Sprintf("#%02X%02X%02X", r, g, b))
}

// RGB returns the 8-bit components of the code. An unparseable code
// returns black.
func (c Code) RGB() (uint8, uint8, uint8) {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return 0, 0, 0
	}
	return col.RGB255()
}

func (c Code) normalize() Code {
	return Code(strings.ToUpper(string(c)))
}

func (c Code) String() string {
	return string(c)
}
