package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-sled/sled/cmd/sled/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Write a starter sled.yaml",
		Long: `Write a starter sled.yaml at the root of the current Go module.

The file documents every setting the demo reads and leaves them at
their defaults, so the demo behaves exactly as before until you edit
it. The command refuses to overwrite an existing sled.yaml.`,
		Usage: "sled init",
		Run:   runInit,
	})
}

const starterConfig = `# sled.yaml configures the sled demo for this module.

theme:
  # Path to a YAML color theme, relative to this file.
  # Empty uses the built-in dark theme.
  file: ""

demo:
  # Number of content rows to generate.
  rows: 200
  # Scroll axis: vertical or horizontal.
  axis: vertical
  # Status line title. Empty derives it from the module path.
  title: ""
`

func runInit(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("init takes no arguments\n\nUsage: sled init")
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	path, err := writeStarterConfig(root)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", path)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  sled status    Show the resolved settings")
	fmt.Println("  sled demo      Run the terminal demo")

	return nil
}

// writeStarterConfig writes the starter file into root. It is the
// portion of init with no dependency on the working directory, making
// it safe to call from tests.
func writeStarterConfig(root string) (string, error) {
	path := filepath.Join(root, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", config.FileName, err)
	}
	return path, nil
}
