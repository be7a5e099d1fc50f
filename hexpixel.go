/*
Package hexpixel is a library for hiding text in images by painting each
character as a single pixel of a fixed color.

Text is normally base64 encoded first so that any input survives the trip
through the limited character table. The workflows here cover the three
steps of the round trip: encoding text into a payload file, painting a
payload file into an image and decoding an image back into text.
*/
package hexpixel

import (
	"errors"
	"log"

	"github.com/bodgit/hexpixel/charmap"
)

var (
	// ErrNoInput is returned when there is no text to encode.
	ErrNoInput = errors.New("hexpixel: no input provided")
	// ErrNoColors is returned when a payload maps to no colors at all.
	ErrNoColors = errors.New("hexpixel: no color data found")
	// ErrLossyFormat is returned when asked to write an image in a format
	// that would not preserve the exact pixel colors.
	ErrLossyFormat = errors.New("hexpixel: lossy image formats cannot be decoded")
)

// HexPixel runs the encode and decode workflows against files on disk.
type HexPixel struct {
	table  *charmap.Table
	db     *HistoryDB
	logger *log.Logger
}

// New returns a HexPixel using the built-in character table. db may be nil
// in which case no history is recorded.
func New(db *HistoryDB, logger *log.Logger) *HexPixel {
	return &HexPixel{
		table:  charmap.Default(),
		db:     db,
		logger: logger,
	}
}

// Table returns the character table in use.
func (h *HexPixel) Table() *charmap.Table {
	return h.table
}

func (h *HexPixel) record(rec Record) error {
	if h.db == nil {
		return nil
	}
	return h.db.Add(rec)
}
