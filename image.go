package hexpixel

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/bodgit/hexpixel/charmap"
	"github.com/bodgit/hexpixel/grid"
	"golang.org/x/image/tiff"
)

type encodeFunc func(io.Writer, image.Image) error

func encodeTIFF(w io.Writer, m image.Image) error {
	return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
}

// encoderFor picks the image encoder from the file extension.
func encoderFor(file string) (encodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".png", "":
		return png.Encode, nil
	case ".tif", ".tiff":
		return encodeTIFF, nil
	case ".jpg", ".jpeg", ".gif":
		return nil, ErrLossyFormat
	default:
		return nil, fmt.Errorf("hexpixel: unsupported image format %q", ext)
	}
}

func sha1Hex(b []byte) string {
	h := sha1.Sum(b)
	return fmt.Sprintf("%X", h[:])
}

func writeImage(file string, m image.Image) ([]byte, error) {
	enc, err := encoderFor(file)
	if err != nil {
		return nil, err
	}

	b := new(bytes.Buffer)
	if err := enc(b, m); err != nil {
		return nil, err
	}

	if err := ioutil.WriteFile(file, b.Bytes(), 0644); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// WriteImage paints codes using layout and saves the result to file. The
// format is chosen from the extension; PNG is used when there is none.
func (h *HexPixel) WriteImage(codes []charmap.Code, file string, layout grid.Layout) (*image.NRGBA, error) {
	if len(codes) == 0 {
		return nil, ErrNoColors
	}

	m, err := grid.Encode(codes, layout)
	if err != nil {
		return nil, err
	}

	b, err := writeImage(file, m)
	if err != nil {
		return nil, err
	}

	bounds := m.Bounds()
	h.logger.Printf("Wrote %dx%d %s image to \"%s\" (%d color pixels)\n", bounds.Dx(), bounds.Dy(), layout, file, len(codes))

	if err := h.record(Record{
		SHA1:      sha1Hex(b),
		Path:      file,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Pixels:    len(codes),
		Direction: Encoded,
		Payload:   h.table.Text(codes),
	}); err != nil {
		return nil, err
	}

	return m, nil
}

// WritePreview saves an enlarged copy of m to file for viewing. The preview
// is not meant to be decoded.
func (h *HexPixel) WritePreview(m image.Image, file string, scale int) error {
	p, err := grid.Preview(m, scale)
	if err != nil {
		return err
	}

	if _, err := writeImage(file, p); err != nil {
		return err
	}

	h.logger.Printf("Wrote %dx preview to \"%s\"\n", scale, file)

	return nil
}
