/*
Package charmap implements the fixed two-way mapping between characters and
the color codes used to paint them as pixels.

The built-in table covers lowercase and uppercase letters, digits, space and
the punctuation found in base64 output. Every character has exactly one color
and every color belongs to exactly one character; New refuses to build a
table where that does not hold.
*/
package charmap

import (
	"fmt"
	"strings"
)

// Sentinel is substituted for any color that has no table entry.
const Sentinel = '?'

// Table is an immutable bijective mapping between characters and codes.
type Table struct {
	colors map[rune]Code
	chars  map[Code]rune
}

// New merges the ranges in order into a Table. It returns an error if a
// character appears twice or two characters share a color.
func New(ranges ...Range) (*Table, error) {
	t := &Table{
		colors: make(map[rune]Code),
		chars:  make(map[Code]rune),
	}
	for _, r := range ranges {
		for _, e := range r.Entries {
			code := e.Code.normalize()
			if prev, ok := t.colors[e.Char]; ok {
				return nil, fmt.Errorf("charmap: %q in %s already mapped to %s", e.Char, r.Name, prev)
			}
			if prev, ok := t.chars[code]; ok {
				return nil, fmt.Errorf("charmap: %s for %q in %s already used by %q", code, e.Char, r.Name, prev)
			}
			t.colors[e.Char] = code
			t.chars[code] = e.Char
		}
	}
	return t, nil
}

func mustNew(ranges ...Range) *Table {
	t, err := New(ranges...)
	if err != nil {
		panic(err)
	}
	return t
}

var defaultTable = mustNew(lowercase, uppercase, numbers, special)

// Default returns the built-in table.
func Default() *Table {
	return defaultTable
}

// Len returns the number of characters in the table.
func (t *Table) Len() int {
	return len(t.colors)
}

// ColorOf returns the code for r.
func (t *Table) ColorOf(r rune) (Code, bool) {
	c, ok := t.colors[r]
	return c, ok
}

// CharOf returns the character for c, ignoring the case of the hex digits.
func (t *Table) CharOf(c Code) (rune, bool) {
	r, ok := t.chars[c.normalize()]
	return r, ok
}

// CharOfRGB returns the character for an 8-bit RGB triple.
func (t *Table) CharOfRGB(r, g, b uint8) (rune, bool) {
	return t.CharOf(FromRGB(r, g, b))
}

// Codes maps text to its color sequence. Characters not in the table are
// dropped.
func (t *Table) Codes(text string) []Code {
	codes := make([]Code, 0, len(text))
	for _, r := range text {
		if c, ok := t.colors[r]; ok {
			codes = append(codes, c)
		}
	}
	return codes
}

// Used returns each distinct mapped character of text with its code.
func (t *Table) Used(text string) map[rune]Code {
	used := make(map[rune]Code)
	for _, r := range text {
		if c, ok := t.colors[r]; ok {
			used[r] = c
		}
	}
	return used
}

// Text maps a color sequence back to characters, writing Sentinel for any
// unknown code.
func (t *Table) Text(codes []Code) string {
	var b strings.Builder
	for _, c := range codes {
		if r, ok := t.CharOf(c); ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(Sentinel)
		}
	}
	return b.String()
}
