package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the project configuration file.
const FileName = "sled.yaml"

// Defaults applied when sled.yaml is absent or leaves fields unset.
const (
	DefaultRows = 200
	DefaultAxis = "vertical"
)

// Config represents the optional sled.yaml configuration.
type Config struct {
	Theme ThemeConfig `yaml:"theme"`
	Demo  DemoConfig  `yaml:"demo"`
}

// ThemeConfig points the CLI at a theme file.
type ThemeConfig struct {
	File string `yaml:"file,omitempty"`
}

// DemoConfig contains demo host settings.
type DemoConfig struct {
	Rows  int    `yaml:"rows,omitempty"`
	Axis  string `yaml:"axis,omitempty"`
	Title string `yaml:"title,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Title      string
	ThemeFile  string // empty means the built-in theme
	Rows       int
	Axis       string
}

// LoadOptional reads sled.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read sled.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sled.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads sled.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	rows := cfg.Demo.Rows
	if rows == 0 {
		rows = DefaultRows
	}
	if rows < 1 {
		return nil, fmt.Errorf("demo.rows must be positive (got %d)", cfg.Demo.Rows)
	}

	axis := strings.TrimSpace(cfg.Demo.Axis)
	if axis == "" {
		axis = DefaultAxis
	}
	if axis != "vertical" && axis != "horizontal" {
		return nil, fmt.Errorf("demo.axis must be \"vertical\" or \"horizontal\" (got %q)", cfg.Demo.Axis)
	}

	title := strings.TrimSpace(cfg.Demo.Title)
	if title == "" {
		title = defaultTitle(modulePath, dir)
	}

	themeFile := strings.TrimSpace(cfg.Theme.File)
	if themeFile != "" {
		if !filepath.IsAbs(themeFile) {
			themeFile = filepath.Join(dir, themeFile)
		}
		if _, err := os.Stat(themeFile); err != nil {
			return nil, fmt.Errorf("theme.file %s: %w", cfg.Theme.File, err)
		}
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Title:      title,
		ThemeFile:  themeFile,
		Rows:       rows,
		Axis:       axis,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultTitle derives a display name from the module path, falling
// back to the directory basename.
func defaultTitle(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" {
		return "sled"
	}
	return base
}
