package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"axlint/internal/config"
	"axlint/internal/diag"
	"axlint/internal/diagfmt"
	"axlint/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.py|directory> [...]",
	Short: "Check GUI scripts for accessibility defects",
	Long:  `Check runs the accessibility rule set over Python GUI scripts: missing text labels, tab order, window titles, keyboard accelerators, mnemonic underlines and low color contrast`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

// init registers CLI flags for the check command used by runCheck.
func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Bool("no-warnings", false, "ignore warnings in diagnostics")
	checkCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("with-hints", false, "include fix hints in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("disk-cache", false, "cache per-file diagnostics on disk")
	checkCmd.Flags().String("ui", "auto", "interactive progress while checking (auto|on|off)")
	checkCmd.Flags().String("config", "", "path to axlint.toml (default: discovered upward from the first path)")
	checkCmd.Flags().Bool("timings", false, "print pipeline stage timings to stderr")
}

// runCheck executes the "check" command: it loads the configuration, runs
// the rule set over the provided paths, renders the diagnostics in the
// chosen format and exits non-zero when the run produced errors (or
// warnings under --warnings-as-errors).
func runCheck(cmd *cobra.Command, args []string) error {
	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}

	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}

	if noWarnings && warningsAsErrors {
		return fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}

	withHints, err := cmd.Flags().GetBool("with-hints")
	if err != nil {
		return fmt.Errorf("failed to get with-hints flag: %w", err)
	}

	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	enableDiskCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	// Конфигурация: явный путь или поиск вверх от первого аргумента
	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load(startDirFor(args[0]))
	}
	if err != nil {
		return err
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Config:         cfg,
	}
	if enableDiskCache {
		cache, cacheErr := driver.OpenDiskCache("axlint")
		if cacheErr != nil {
			return fmt.Errorf("failed to open disk cache: %w", cacheErr)
		}
		opts.Cache = cache
	}

	var result *driver.CheckResult
	if shouldUseTUI(mode) {
		result, err = runCheckWithUI(cmd, args, opts)
	} else {
		result, err = driver.Check(cmd.Context(), args, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	merged := result.Merged()
	if noWarnings {
		merged = filterWarnings(merged)
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if quiet {
		// Только код возврата, диагностики не печатаются
		failed := merged.HasErrors()
		if warningsAsErrors && merged.HasWarnings() {
			failed = true
		}
		if failed {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return fmt.Errorf("")
		}
		return nil
	}

	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, merged, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor,
			PathMode:  pathMode,
			ShowNotes: withNotes,
			ShowHints: withHints,
		})
	case "short":
		if err := diagfmt.Short(os.Stdout, merged, result.FileSet, withNotes); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
			IncludeHints:     withHints,
		}
		if err := diagfmt.JSON(os.Stdout, merged, result.FileSet, jsonOpts); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if showTimings {
		fmt.Fprint(os.Stderr, result.Timings.Summary())
	}

	failed := merged.HasErrors()
	if warningsAsErrors && merged.HasWarnings() {
		failed = true
	}
	if failed {
		// Suppress cobra usage output on diagnostic errors
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("") // Silent error - diagnostics already printed
	}
	return nil
}

// startDirFor returns the directory config discovery starts from.
func startDirFor(path string) string {
	if st, err := os.Stat(path); err == nil && st.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

// filterWarnings drops warning-level diagnostics, keeping errors and infos.
func filterWarnings(bag *diag.Bag) *diag.Bag {
	out := diag.NewBag(max(bag.Len(), 1))
	for _, d := range bag.Items() {
		if d.Severity == diag.SevWarning {
			continue
		}
		out.Add(d)
	}
	return out
}
