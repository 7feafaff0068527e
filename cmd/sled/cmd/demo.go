package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sled/sled/cmd/sled/internal/config"
	"github.com/go-sled/sled/cmd/sled/internal/termgrid"
	"github.com/go-sled/sled/pkg/geometry"
	"github.com/go-sled/sled/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Run the terminal scroll demo",
		Long: `Run an interactive scroll demo in the terminal. One terminal cell is
one logical pixel: the mouse wheel scrolls three rows per tick,
dragging the thumb moves the content, clicking the track pages by a
viewport, and the arrow keys, PgUp/PgDn, Home and End scroll from the
keyboard.

Inside a Go module the demo reads sled.yaml for its defaults; outside
one it falls back to built-in settings.

Flags:
  --rows N       Number of content rows (default from sled.yaml, else 200)
  --theme FILE   Load the color theme from a YAML file
  --horizontal   Scroll along the horizontal axis
  --light        Use the built-in light theme`,
		Usage: "sled demo [--rows N] [--theme FILE] [--horizontal] [--light]",
		Run:   runDemo,
	})
}

type demoOptions struct {
	rows       int
	themeFile  string
	horizontal bool
	light      bool
}

func parseDemoArgs(args []string) (demoOptions, error) {
	opts := demoOptions{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--horizontal":
			opts.horizontal = true
		case "--light":
			opts.light = true
		case "--rows":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--rows requires a number")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 1 {
				return opts, fmt.Errorf("--rows requires a positive integer, got %q", args[i+1])
			}
			opts.rows = n
			i++
		case "--theme":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--theme requires a file path")
			}
			opts.themeFile = args[i+1]
			i++
		default:
			if strings.HasPrefix(arg, "--rows=") {
				n, err := strconv.Atoi(strings.TrimPrefix(arg, "--rows="))
				if err != nil || n < 1 {
					return opts, fmt.Errorf("--rows requires a positive integer, got %q", strings.TrimPrefix(arg, "--rows="))
				}
				opts.rows = n
				continue
			}
			if strings.HasPrefix(arg, "--theme=") {
				opts.themeFile = strings.TrimPrefix(arg, "--theme=")
				continue
			}
			return opts, fmt.Errorf("unknown flag %q\n\nUsage: sled demo [--rows N] [--theme FILE] [--horizontal] [--light]", arg)
		}
	}
	return opts, nil
}

func runDemo(args []string) error {
	opts, err := parseDemoArgs(args)
	if err != nil {
		return err
	}

	rows := config.DefaultRows
	title := ""
	axis := geometry.Vertical
	configTheme := ""

	// The demo works outside a Go module too; sled.yaml only refines
	// the defaults when a project is found.
	if root, rootErr := config.FindProjectRoot(); rootErr == nil {
		cfg, err := config.Resolve(root)
		if err != nil {
			return err
		}
		rows = cfg.Rows
		title = cfg.Title
		configTheme = cfg.ThemeFile
		if cfg.Axis == "horizontal" {
			axis = geometry.Horizontal
		}
	}

	if opts.rows > 0 {
		rows = opts.rows
	}
	if opts.horizontal {
		axis = geometry.Horizontal
	}

	var th *theme.ThemeData
	switch {
	case opts.themeFile != "":
		th, err = theme.LoadFile(opts.themeFile)
	case opts.light:
		th = theme.DefaultLightTheme()
	case configTheme != "":
		th, err = theme.LoadFile(configTheme)
	default:
		th = theme.DefaultDarkTheme()
	}
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	return termgrid.Run(termgrid.Options{
		Rows:  rows,
		Axis:  axis,
		Title: title,
		Theme: th,
	})
}
