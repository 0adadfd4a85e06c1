package driver

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"axlint/internal/config"
	"axlint/internal/diag"
	"axlint/internal/engine"
	"axlint/internal/observ"
	"axlint/internal/rules"
	"axlint/internal/source"
	"axlint/internal/syntax"
	"axlint/internal/wcag"
	"axlint/internal/widget"
)

// Options настраивают один запуск проверки.
type Options struct {
	// MaxDiagnostics caps the per-file bag size.
	MaxDiagnostics int
	// Jobs is the parallelism degree; <= 0 means GOMAXPROCS.
	Jobs int
	// Config is the effective configuration; nil means defaults.
	Config *config.Config
	// Cache, when non-nil, short-circuits unchanged files.
	Cache *DiskCache
	// Observer receives per-file progress events; may be nil.
	Observer FileObserver
}

// FileObserver receives progress events during a parallel check run.
// Implementations must be safe for concurrent use.
type FileObserver interface {
	FileStarted(path string)
	FileFinished(path string, diagnostics int, fromCache bool)
}

// FileResult is the outcome for one script.
type FileResult struct {
	Path      string
	FileID    source.FileID
	Bag       *diag.Bag
	FromCache bool
}

// CheckResult is the outcome of one run over a file set.
type CheckResult struct {
	FileSet *source.FileSet
	Files   []FileResult
	Timings observ.Report
}

// Merged returns all diagnostics in one sorted, deduplicated bag.
func (r *CheckResult) Merged() *diag.Bag {
	total := 0
	for i := range r.Files {
		total += r.Files[i].Bag.Len()
	}
	merged := diag.NewBag(max(total, 1))
	for i := range r.Files {
		merged.Merge(r.Files[i].Bag)
	}
	merged.Sort()
	merged.Dedup()
	return merged
}

// HasErrors reports whether any file produced an error-level diagnostic.
func (r *CheckResult) HasErrors() bool {
	for i := range r.Files {
		if r.Files[i].Bag.HasErrors() {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any file produced a warning or worse.
func (r *CheckResult) HasWarnings() bool {
	for i := range r.Files {
		if r.Files[i].Bag.HasWarnings() {
			return true
		}
	}
	return false
}

// ListFiles returns the sorted list of scripts a check run would visit.
// The CLI uses it to seed the progress view before starting the run.
func ListFiles(paths []string) ([]string, error) {
	return listPyFiles(paths)
}

// listPyFiles возвращает отсортированный список всех *.py файлов:
// явные файлы как есть, каталоги — рекурсивно.
func listPyFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			add(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".py") {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// buildRegistry assembles the rule set from the configuration. The config
// validator has already rejected bad levels and colors; parse failures
// here simply fall back to the built-in policy.
func buildRegistry(cfg *config.Config) *rules.Registry {
	policy := rules.DefaultContrastPolicy()
	if cfg != nil {
		if level, err := wcag.ParseLevel(cfg.Contrast.Level); err == nil {
			policy.Level = level
		}
		policy.LargeText = cfg.Contrast.LargeText
		if c, err := wcag.ParseHex(cfg.Contrast.Foreground); err == nil {
			policy.DefaultFg = c
		}
		if c, err := wcag.ParseHex(cfg.Contrast.Background); err == nil {
			policy.DefaultBg = c
		}
	}
	return rules.NewRegistry(rules.Options{
		Enabled:  cfg.RuleEnabled,
		Contrast: policy,
	})
}

// lintFile runs the full pipeline for one loaded file: frontend events,
// record visitor, rule dispatch. The returned bag is sorted.
func lintFile(f *source.File, mapping *widget.Mapping, reg *rules.Registry, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	visitor := engine.NewVisitor(mapping, reg.Sink(rep))
	for _, ev := range syntax.Parse(f) {
		visitor.Visit(ev)
	}
	visitor.Finish()

	bag.Sort()
	return bag
}
