package hexpixel

import (
	"crypto/sha1"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/ioutil"
	"os"
	"unicode/utf8"

	"github.com/bodgit/hexpixel/b64"
	"github.com/bodgit/hexpixel/grid"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DecodeImage reads the characters painted into the image at file. Pixels
// with colors missing from the table decode as charmap.Sentinel.
func (h *HexPixel) DecodeImage(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hash := sha1.New()
	m, format, err := image.Decode(io.TeeReader(f, hash))
	if err != nil {
		return "", fmt.Errorf("%s: %w", file, err)
	}

	text := grid.Decode(m, h.table)

	bounds := m.Bounds()
	h.logger.Printf("Decoded %d characters from %dx%d %s image \"%s\"\n", utf8.RuneCountInString(text), bounds.Dx(), bounds.Dy(), format, file)

	// Hash the whole file, not just what the decoder consumed
	if _, err := io.Copy(hash, f); err != nil {
		return "", err
	}

	if err := h.record(Record{
		SHA1:      fmt.Sprintf("%X", hash.Sum(nil)),
		Path:      file,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Pixels:    utf8.RuneCountInString(text),
		Direction: Decoded,
		Payload:   text,
	}); err != nil {
		return "", err
	}

	return text, nil
}

// DecodeFiles decodes the image at imageFile, saves the raw characters to
// rawFile and then tries to base64 decode them. The decoded text or bytes
// are saved to textFile only if the characters were valid base64.
func (h *HexPixel) DecodeFiles(imageFile, rawFile, textFile string) (string, b64.Result, error) {
	text, err := h.DecodeImage(imageFile)
	if err != nil {
		return "", b64.Result{}, err
	}

	if err := writePayload(rawFile, text); err != nil {
		return "", b64.Result{}, err
	}

	result := b64.Decode(text)
	if !result.Valid() {
		h.logger.Printf("Characters from \"%s\" are not valid base64\n", imageFile)
		return text, result, nil
	}

	if err := ioutil.WriteFile(textFile, result.Data, 0644); err != nil {
		return "", b64.Result{}, err
	}
	h.logger.Printf("Wrote decoded %s to \"%s\"\n", result.Kind, textFile)

	return text, result, nil
}
