package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-sled/sled/cmd/sled/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show the resolved project settings",
		Long: `Show the settings the demo would run with from the current Go module.

Displays the module, where each value comes from (sled.yaml or the
built-in defaults), and the resolved theme, row count and axis.`,
		Usage: "sled status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	configSource := "none (built-in defaults)"
	if _, err := os.Stat(filepath.Join(root, config.FileName)); err == nil {
		configSource = config.FileName
	}

	themeSource := "built-in dark"
	if cfg.ThemeFile != "" {
		themeSource = cfg.ThemeFile
	}

	fmt.Printf("Project: %s (%s)\n", cfg.Title, cfg.ModulePath)
	fmt.Printf("Root:    %s\n", root)
	fmt.Println()
	fmt.Println("Demo settings:")
	fmt.Printf("  %-8s %s\n", "config:", configSource)
	fmt.Printf("  %-8s %s\n", "theme:", themeSource)
	fmt.Printf("  %-8s %d\n", "rows:", cfg.Rows)
	fmt.Printf("  %-8s %s\n", "axis:", cfg.Axis)

	return nil
}
