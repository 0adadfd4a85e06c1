package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"axlint/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter axlint.toml",
	Long: `Initialize a project for linting by creating an axlint.toml with the
default rule set and contrast policy spelled out. If [path] is omitted,
the current directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// runInit writes a starter configuration into the target directory,
// refusing to overwrite an existing axlint.toml.
func runInit(cmd *cobra.Command, args []string) error {
	// Resolve target directory
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, config.FileName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("already initialized: %s exists", manifestPath)
	}

	if err := os.WriteFile(manifestPath, []byte(defaultManifest()), os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized axlint in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", config.FileName)
	return nil
}

// defaultManifest returns the starter axlint.toml with every section
// present and the defaults spelled out.
func defaultManifest() string {
	return `# axlint configuration

# Enable or disable rules by name. Unlisted rules are enabled.
[rules]
# missing-text-attribute = true
# missing-tab-index = true
# missing-window-title = true
# missing-keyboard-accelerator = true
# missing-mnemonic-underline = true
# low-contrast = true

# Contrast policy for the low-contrast rule and command defaults.
[contrast]
level = "AA"        # AA or AAA
large_text = false
foreground = "#000000"  # assumed when a widget omits fg
background = "#FFFFFF"  # assumed when a widget omits bg

# Extra widget classes, tagged with their categories:
# text-bearing, interactive, top-level, container.
[widgets]
# MyButton = ["text-bearing", "interactive"]
`
}
