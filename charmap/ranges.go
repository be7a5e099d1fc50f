package charmap

// Entry pairs a character with its color code.
type Entry struct {
	Char rune
	Code Code
}

// Range is a named group of entries that is merged into a Table.
type Range struct {
	Name    string
	Entries []Entry
}

// All the built-in codes are shades of red that only differ in the red
// channel, starting at 0xA0 and counting up across the ranges.
const (
	green = 0x14
	blue  = 0x14
)

func sequence(name string, chars string, first uint8) Range {
	r := Range{Name: name}
	for i, c := range []rune(chars) {
		r.Entries = append(r.Entries, Entry{
			Char: c,
			Code: FromRGB(first+uint8(i), green, blue),
		})
	}
	return r
}

var (
	lowercase = sequence("Letters (a-z)", "abcdefghijklmnopqrstuvwxyz", 0xa0)
	numbers   = sequence("Numbers (0-9)", "0123456789", 0xba)
	special   = sequence("Special Characters", " ,./)(][^%$#@!?+=", 0xc4)
	uppercase = sequence("Uppercase Letters (A-Z)", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", 0xd5)
)

// Ranges returns the built-in ranges in display order.
func Ranges() []Range {
	return []Range{lowercase, numbers, special, uppercase}
}
