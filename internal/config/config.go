// Package config loads axlint.toml, the optional per-project configuration
// discovered upward from the lint start directory.
package config

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"axlint/internal/diag"
	"axlint/internal/widget"
)

// FileName is the configuration file looked up from the start directory.
const FileName = "axlint.toml"

// Config is the decoded axlint.toml.
type Config struct {
	Path string `toml:"-"` // где найден файл; "" если дефолты
	Root string `toml:"-"`

	Widgets  map[string][]string `toml:"widgets"`
	Rules    map[string]bool     `toml:"rules"`
	Contrast ContrastConfig      `toml:"contrast"`
}

// ContrastConfig configures the low-contrast rule and the contrast
// command defaults.
type ContrastConfig struct {
	Level     string `toml:"level"`
	LargeText bool   `toml:"large_text"`
	// Defaults applied by the contrast RULE when a widget omits fg/bg.
	// This is deliberately a config/caller policy; internal/wcag never
	// defaults.
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

// Default returns the configuration used when no axlint.toml exists.
func Default() *Config {
	return &Config{
		Widgets: map[string][]string{},
		Rules:   map[string]bool{},
		Contrast: ContrastConfig{
			Level:      "AA",
			Foreground: "#000000",
			Background: "#FFFFFF",
		},
	}
}

// Find walks upward from startDir looking for axlint.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load discovers and decodes axlint.toml for startDir; returns Default()
// when none exists.
func Load(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile decodes one axlint.toml.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	cfg.Path = path
	cfg.Root = filepath.Dir(path)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for slug := range c.Rules {
		if _, ok := diag.CodeBySlug(slug); !ok {
			return fmt.Errorf("[rules]: unknown rule %q", slug)
		}
	}
	for name, tags := range c.Widgets {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("[widgets]: empty class name")
		}
		for _, tag := range tags {
			if _, err := widget.ParseCategory(tag); err != nil {
				return fmt.Errorf("[widgets].%s: %w", name, err)
			}
		}
	}
	switch strings.ToUpper(strings.TrimSpace(c.Contrast.Level)) {
	case "AA", "AAA":
	default:
		return fmt.Errorf("[contrast].level: expected AA or AAA, got %q", c.Contrast.Level)
	}
	return nil
}

// RuleEnabled reports whether a rule code is active. Unlisted rules are
// enabled.
func (c *Config) RuleEnabled(code diag.Code) bool {
	if c == nil {
		return true
	}
	if enabled, ok := c.Rules[code.Slug()]; ok {
		return enabled
	}
	return true
}

// Mapping builds the widget class table: the built-in tkinter set plus
// the [widgets] overlay.
func (c *Config) Mapping() *widget.Mapping {
	m := widget.DefaultMapping()
	if c == nil {
		return m
	}
	for name, tags := range c.Widgets {
		var cats widget.Category
		for _, tag := range tags {
			cat, err := widget.ParseCategory(tag)
			if err != nil {
				continue // validate() уже отклонил такие конфиги
			}
			cats |= cat
		}
		m.Set(name, cats)
	}
	return m
}

// Digest returns a stable hash of the effective configuration, used to key
// the diagnostics disk cache.
func (c *Config) Digest() [32]byte {
	var b strings.Builder
	names := make([]string, 0, len(c.Widgets))
	for name := range c.Widgets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		tags := append([]string(nil), c.Widgets[name]...)
		sort.Strings(tags)
		fmt.Fprintf(&b, "w:%s=%s;", name, strings.Join(tags, ","))
	}
	slugs := make([]string, 0, len(c.Rules))
	for slug := range c.Rules {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	for _, slug := range slugs {
		fmt.Fprintf(&b, "r:%s=%t;", slug, c.Rules[slug])
	}
	fmt.Fprintf(&b, "c:%s/%t/%s/%s", c.Contrast.Level, c.Contrast.LargeText,
		c.Contrast.Foreground, c.Contrast.Background)
	return sha256.Sum256([]byte(b.String()))
}
