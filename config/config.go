/*
Package config loads the optional YAML file holding default file names and
layout settings.
*/
package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/bodgit/hexpixel/grid"
	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v2"
)

// Filename is the name of the config file in the home directory.
const Filename = ".hexpixel.yaml"

// Config holds the defaults used by every command.
type Config struct {
	Image         string `yaml:"image"`
	HexText       string `yaml:"hex-text"`
	DecodedBase64 string `yaml:"decoded-base64"`
	DecodedText   string `yaml:"decoded-text"`
	Layout        string `yaml:"layout"`
	PreviewScale  int    `yaml:"preview-scale"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Image:         "encoded_image.png",
		HexText:       "hexText.txt",
		DecodedBase64: "decoded_base64.txt",
		DecodedText:   "decoded_text.txt",
		Layout:        grid.Square.String(),
	}
}

// DefaultPath returns the config file path in the home directory.
func DefaultPath() (string, error) {
	return homedir.Expand("~/" + Filename)
}

// Load reads the config file at path over the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	c := Default()

	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	b, err := ioutil.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return c, nil
	case err != nil:
		return nil, err
	}

	if err := yaml.UnmarshalStrict(b, c); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	if err := c.expand(); err != nil {
		return nil, err
	}

	if _, err := c.GridLayout(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	if c.PreviewScale < 0 {
		return nil, fmt.Errorf("config: %s: negative preview-scale", path)
	}

	return c, nil
}

func (c *Config) expand() error {
	for _, p := range []*string{&c.Image, &c.HexText, &c.DecodedBase64, &c.DecodedText} {
		s, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = s
	}
	return nil
}

// GridLayout returns the configured layout.
func (c *Config) GridLayout() (grid.Layout, error) {
	return grid.ParseLayout(c.Layout)
}
