package theme

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-sled/sled/pkg/graphics"
)

// themeFile is the on-disk schema. Colors are hex strings; empty fields
// keep the base theme's value.
type themeFile struct {
	Brightness string         `yaml:"brightness"`
	Background string         `yaml:"background"`
	Foreground string         `yaml:"foreground"`
	Border     string         `yaml:"border"`
	Scrollbar  *scrollbarFile `yaml:"scrollbar"`
}

type scrollbarFile struct {
	Track  string `yaml:"track"`
	Thumb  string `yaml:"thumb"`
	Border string `yaml:"border"`
}

// Load reads a theme from YAML. The brightness field selects the base
// theme (dark when omitted); every other present field overrides it.
// Unknown fields are rejected so typos do not silently fall back to
// defaults.
func Load(r io.Reader) (*ThemeData, error) {
	var file themeFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return DefaultDarkTheme(), nil
		}
		return nil, fmt.Errorf("theme: %w", err)
	}

	var base *ThemeData
	switch file.Brightness {
	case "", "dark":
		base = DefaultDarkTheme()
	case "light":
		base = DefaultLightTheme()
	default:
		return nil, fmt.Errorf("theme: unknown brightness %q", file.Brightness)
	}

	if err := overrideColor(&base.Background, "background", file.Background); err != nil {
		return nil, err
	}
	if err := overrideColor(&base.Foreground, "foreground", file.Foreground); err != nil {
		return nil, err
	}
	if err := overrideColor(&base.Border, "border", file.Border); err != nil {
		return nil, err
	}

	if file.Scrollbar != nil {
		bar := base.ScrollbarThemeOf()
		if err := overrideColor(&bar.Track, "scrollbar.track", file.Scrollbar.Track); err != nil {
			return nil, err
		}
		if err := overrideColor(&bar.Thumb, "scrollbar.thumb", file.Scrollbar.Thumb); err != nil {
			return nil, err
		}
		if err := overrideColor(&bar.Border, "scrollbar.border", file.Scrollbar.Border); err != nil {
			return nil, err
		}
		base.Scrollbar = &bar
	}
	return base, nil
}

// LoadFile reads a theme from the named YAML file.
func LoadFile(path string) (*ThemeData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func overrideColor(dst *graphics.Color, field, value string) error {
	if value == "" {
		return nil
	}
	c, err := graphics.ParseColor(value)
	if err != nil {
		return fmt.Errorf("theme: %s: %w", field, err)
	}
	*dst = c
	return nil
}
