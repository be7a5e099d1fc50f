/*
Package b64 wraps the standard base64 encoding used for the text payloads
painted into images.

Decoding is strict: the input must use the standard alphabet with correct
padding and nothing else, not even line breaks. Decode never fails; it
reports whether the input was valid and whether the decoded bytes are UTF-8
text.
*/
package b64

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/bodgit/hexpixel/charmap"
)

var encoding = base64.StdEncoding.Strict()

// Kind tags the outcome of Decode.
type Kind int

const (
	// Invalid means the input was not base64.
	Invalid Kind = iota
	// Text means the input decoded to valid UTF-8.
	Text
	// Bytes means the input decoded to bytes that are not valid UTF-8.
	Bytes
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Bytes:
		return "bytes"
	default:
		return "invalid"
	}
}

// Result is the outcome of Decode. Data holds the decoded bytes for both
// Text and Bytes and is nil for Invalid.
type Result struct {
	Kind Kind
	Data []byte
}

// Valid reports whether the input was base64.
func (r Result) Valid() bool {
	return r.Kind != Invalid
}

// String returns the decoded text. It is empty unless Kind is Text.
func (r Result) String() string {
	if r.Kind != Text {
		return ""
	}
	return string(r.Data)
}

// EncodeText returns the base64 encoding of the UTF-8 bytes of s.
func EncodeText(s string) string {
	return encoding.EncodeToString([]byte(s))
}

// EncodeColors returns the base64 encoding of codes serialized as a JSON
// array of strings.
func EncodeColors(codes []charmap.Code) (string, error) {
	if codes == nil {
		codes = []charmap.Code{}
	}
	b, err := json.Marshal(codes)
	if err != nil {
		return "", err
	}
	return encoding.EncodeToString(b), nil
}

// Verify reports whether s decodes cleanly.
func Verify(s string) bool {
	return Decode(s).Valid()
}

// Decode attempts a strict base64 decode of s.
func Decode(s string) Result {
	// The decoder silently drops CR and LF even in strict mode
	if strings.ContainsAny(s, "\r\n") {
		return Result{Kind: Invalid}
	}

	b, err := encoding.DecodeString(s)
	if err != nil {
		return Result{Kind: Invalid}
	}
	if b == nil {
		b = []byte{}
	}

	if utf8.Valid(b) {
		return Result{Kind: Text, Data: b}
	}
	return Result{Kind: Bytes, Data: b}
}
