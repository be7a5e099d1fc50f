package b64

import (
	"encoding/json"
	"testing"

	"github.com/bodgit/hexpixel/charmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		data  []byte
	}{
		{"hello", "SGVsbG8=", Text, []byte("Hello")},
		{"empty", "", Text, []byte{}},
		{"binary", "//79", Bytes, []byte{0xff, 0xfe, 0xfd}},
		{"garbage", "not base64!!", Invalid, nil},
		{"missing padding", "SGVsbG8", Invalid, nil},
		{"newline", "SGVs\nbG8=", Invalid, nil},
		{"trailing newline", "SGVsbG8=\n", Invalid, nil},
		{"non-canonical padding bits", "SGVsbG9=", Invalid, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Decode(tt.input)
			assert.Equal(t, tt.kind, r.Kind)
			assert.Equal(t, tt.data, r.Data)
		})
	}
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "Hello", Decode("SGVsbG8=").String())
	assert.Equal(t, "", Decode("//79").String())
	assert.False(t, Decode("!!").Valid())
	assert.True(t, Decode("").Valid())
}

func TestEncodeText(t *testing.T) {
	s := EncodeText("Hello")
	assert.Equal(t, "SGVsbG8=", s)
	assert.True(t, Verify(s))

	r := Decode(EncodeText("héllo wörld"))
	require.Equal(t, Text, r.Kind)
	assert.Equal(t, "héllo wörld", r.String())
}

func TestEncodeColors(t *testing.T) {
	codes := charmap.Default().Codes("Hi")
	s, err := EncodeColors(codes)
	require.NoError(t, err)
	require.True(t, Verify(s))

	var got []string
	require.NoError(t, json.Unmarshal(Decode(s).Data, &got))
	assert.Equal(t, []string{"#DC1414", "#A81414"}, got)

	s, err = EncodeColors(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", Decode(s).String())
}

func TestEncodedPayloadFitsTable(t *testing.T) {
	table := charmap.Default()
	s := EncodeText("any text \x00 at all")
	assert.Len(t, table.Codes(s), len(s))
}
