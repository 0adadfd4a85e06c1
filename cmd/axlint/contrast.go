package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"axlint/internal/contrastfmt"
	"axlint/internal/rules"
	"axlint/internal/wcag"
)

var contrastCmd = &cobra.Command{
	Use:   "contrast [flags] <foreground> <background>",
	Short: "Evaluate a color pair against WCAG contrast requirements",
	Long: `Contrast computes the WCAG 2.1 contrast ratio of a foreground/background
pair and grades it against the AA and AAA requirements. Colors are given
as #RRGGBB hex values or well-known color names (black, white, red, ...)`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

func init() {
	contrastCmd.Flags().String("level", "AA", "conformance level to test (AA|AAA)")
	contrastCmd.Flags().Bool("large", false, "treat the text as large (lower thresholds)")
	contrastCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

// runContrast executes the "contrast" command and exits non-zero when the
// pair does not meet the requested level.
func runContrast(cmd *cobra.Command, args []string) error {
	levelStr, err := cmd.Flags().GetString("level")
	if err != nil {
		return fmt.Errorf("failed to get level flag: %w", err)
	}

	large, err := cmd.Flags().GetBool("large")
	if err != nil {
		return fmt.Errorf("failed to get large flag: %w", err)
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	level, err := wcag.ParseLevel(levelStr)
	if err != nil {
		return err
	}

	fg, err := resolveColorArg("foreground", args[0])
	if err != nil {
		return err
	}
	bg, err := resolveColorArg("background", args[1])
	if err != nil {
		return err
	}

	res, err := wcag.Evaluate(fg, bg, large, level)
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		contrastfmt.Pretty(os.Stdout, fg, bg, res)
	case "json":
		if err := contrastfmt.JSON(os.Stdout, fg, bg, res); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !res.MeetsLevel {
		// Suppress cobra usage output on a failing verdict
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("") // Silent error - report already printed
	}
	return nil
}

// resolveColorArg accepts hex or a well-known color name.
func resolveColorArg(what, s string) (wcag.Color, error) {
	c, known, err := rules.ResolveColorLiteral(s)
	if err != nil {
		return wcag.Color{}, fmt.Errorf("%s: %w", what, err)
	}
	if !known {
		return wcag.Color{}, fmt.Errorf("%s: unknown color %q (use #RRGGBB)", what, s)
	}
	return c, nil
}
