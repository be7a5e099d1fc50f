package charmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := Default()
	assert.Equal(t, 26+26+10+17, table.Len())

	tests := []struct {
		char rune
		code Code
	}{
		{'a', "#A01414"},
		{'z', "#B91414"},
		{'0', "#BA1414"},
		{'9', "#C31414"},
		{' ', "#C41414"},
		{'?', "#D21414"},
		{'=', "#D41414"},
		{'A', "#D51414"},
		{'Z', "#EE1414"},
	}
	for _, tt := range tests {
		c, ok := table.ColorOf(tt.char)
		require.True(t, ok, "%q", tt.char)
		assert.Equal(t, tt.code, c)
	}
}

func TestCharOfColorOf(t *testing.T) {
	table := Default()
	for _, r := range Ranges() {
		for _, e := range r.Entries {
			c, ok := table.ColorOf(e.Char)
			require.True(t, ok)
			ch, ok := table.CharOf(c)
			require.True(t, ok)
			assert.Equal(t, e.Char, ch)
		}
	}
}

func TestCharOfIgnoresCase(t *testing.T) {
	ch, ok := Default().CharOf("#a01414")
	require.True(t, ok)
	assert.Equal(t, 'a', ch)

	_, ok = Default().CharOf("#010203")
	assert.False(t, ok)
}

func TestCharOfRGB(t *testing.T) {
	ch, ok := Default().CharOfRGB(0xd5, 0x14, 0x14)
	require.True(t, ok)
	assert.Equal(t, 'A', ch)
}

func TestCodesDropsUnmapped(t *testing.T) {
	table := Default()
	codes := table.Codes("Hi!\n\tü")
	assert.Equal(t, []Code{"#DC1414", "#A81414", "#D11414"}, codes)
	assert.Equal(t, "Hi!", table.Text(codes))
}

func TestTextSentinel(t *testing.T) {
	assert.Equal(t, "a?b", Default().Text([]Code{"#A01414", "#000000", "#A11414"}))
}

func TestUsed(t *testing.T) {
	used := Default().Used("abba\n")
	assert.Equal(t, map[rune]Code{'a': "#A01414", 'b': "#A11414"}, used)
}

func TestNewCollisions(t *testing.T) {
	_, err := New(
		Range{Name: "one", Entries: []Entry{{'x', "#010101"}}},
		Range{Name: "two", Entries: []Entry{{'y', "#010101"}}},
	)
	assert.Error(t, err)

	_, err = New(
		Range{Name: "one", Entries: []Entry{{'x', "#010101"}}},
		Range{Name: "two", Entries: []Entry{{'x', "#020202"}}},
	)
	assert.Error(t, err)

	table, err := New(Range{Name: "one", Entries: []Entry{{'x', "#0a0b0c"}}})
	require.NoError(t, err)
	c, _ := table.ColorOf('x')
	assert.Equal(t, Code("#0A0B0C"), c)
}

func TestParseCode(t *testing.T) {
	c, err := ParseCode(" #a01414 ")
	require.NoError(t, err)
	assert.Equal(t, Code("#A01414"), c)

	r, g, b := c.RGB()
	assert.Equal(t, []uint8{0xa0, 0x14, 0x14}, []uint8{r, g, b})

	for _, bad := range []string{"", "A01414", "#A014", "#GG1414", "#A0141400"} {
		_, err := ParseCode(bad)
		assert.ErrorIs(t, err, errBadCode, bad)
	}
}
