package hexpixel

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/bodgit/hexpixel/b64"
	"github.com/bodgit/hexpixel/charmap"
)

// writePayload stores s as raw bytes so no newline or encoding translation
// happens on the way to disk.
func writePayload(file, s string) error {
	return ioutil.WriteFile(file, []byte(s), 0644)
}

// EncodeText base64 encodes the raw text and writes it to file. It returns
// the encoded string and whether it decoded cleanly again afterwards.
func (h *HexPixel) EncodeText(text, file string) (string, bool, error) {
	if text == "" {
		return "", false, ErrNoInput
	}

	s := b64.EncodeText(text)
	if err := writePayload(file, s); err != nil {
		return "", false, err
	}

	ok := b64.Verify(s)
	h.logger.Printf("Wrote %d base64 characters to \"%s\"\n", len(s), file)

	return s, ok, nil
}

// EncodeColors maps text to its color sequence and writes the sequence as
// base64 encoded JSON to file.
func (h *HexPixel) EncodeColors(text, file string) (string, bool, error) {
	codes := h.table.Codes(text)
	if len(codes) == 0 {
		return "", false, ErrNoInput
	}
	h.logDropped(text, codes)

	s, err := b64.EncodeColors(codes)
	if err != nil {
		return "", false, err
	}
	if err := writePayload(file, s); err != nil {
		return "", false, err
	}

	ok := b64.Verify(s)
	h.logger.Printf("Wrote %d colors as %d base64 characters to \"%s\"\n", len(codes), len(s), file)

	return s, ok, nil
}

func (h *HexPixel) logDropped(text string, codes []charmap.Code) {
	if n := len([]rune(text)) - len(codes); n > 0 {
		h.logger.Printf("Dropped %d unmapped characters\n", n)
	}
}

// TextFileToCodes reads file and maps every character to its color. Case is
// preserved and characters missing from the table are dropped.
func (h *HexPixel) TextFileToCodes(file string) ([]charmap.Code, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}

	codes := h.table.Codes(string(b))
	h.logDropped(string(b), codes)
	h.logger.Printf("Converted %d characters from \"%s\"\n", len(codes), file)

	return codes, nil
}

// HexFileToCodes reads #RRGGBB tokens separated by commas or whitespace from
// file. Tokens not starting with '#' are ignored.
func (h *HexPixel) HexFileToCodes(file string) ([]charmap.Code, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var codes []charmap.Code
	for _, token := range strings.Fields(strings.ReplaceAll(string(b), ",", " ")) {
		if !strings.HasPrefix(token, "#") {
			continue
		}
		c, err := charmap.ParseCode(token)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		codes = append(codes, c)
	}

	if len(codes) == 0 {
		return nil, fmt.Errorf("%s: %w", file, ErrNoColors)
	}

	return codes, nil
}
