package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/bodgit/hexpixel/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissing(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
image: out.png
hex-text: payload.txt
layout: linear
preview-scale: 8
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out.png", c.Image)
	assert.Equal(t, "payload.txt", c.HexText)
	assert.Equal(t, "decoded_base64.txt", c.DecodedBase64)
	assert.Equal(t, "decoded_text.txt", c.DecodedText)
	assert.Equal(t, 8, c.PreviewScale)

	l, err := c.GridLayout()
	require.NoError(t, err)
	assert.Equal(t, grid.Linear, l)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "image: [",
		"unknown key":    "colour: red\n",
		"bad layout":     "layout: spiral\n",
		"negative scale": "preview-scale: -2\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}
