package widget

import (
	"fmt"
	"strings"
)

// Category is a semantic tag attached to a widget class. Rules match on
// categories, never on class identity or an inheritance chain.
type Category uint8

const (
	// TextBearing marks classes expected to carry a text/title/label
	// attribute for screen readers.
	TextBearing Category = 1 << iota
	// Interactive marks classes that participate in keyboard tab order.
	Interactive
	// TopLevel marks window classes that must be titled.
	TopLevel
	// Container marks layout classes; they produce records (so children
	// can reference them as parents) but no rule targets them directly.
	Container
)

// Has reports whether all bits of cat are set.
func (c Category) Has(cat Category) bool {
	return c&cat == cat
}

func (c Category) String() string {
	var parts []string
	if c.Has(TextBearing) {
		parts = append(parts, "text-bearing")
	}
	if c.Has(Interactive) {
		parts = append(parts, "interactive")
	}
	if c.Has(TopLevel) {
		parts = append(parts, "top-level")
	}
	if c.Has(Container) {
		parts = append(parts, "container")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// ParseCategory reads one category tag as written in axlint.toml.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text-bearing":
		return TextBearing, nil
	case "interactive":
		return Interactive, nil
	case "top-level":
		return TopLevel, nil
	case "container":
		return Container, nil
	}
	return 0, fmt.Errorf("unknown widget category %q", s)
}

// Class describes one known widget class.
type Class struct {
	Name string
	Cats Category
}

// Mapping resolves an imported symbol name to its widget class. The
// engine performs no import or inheritance resolution; this table is the
// sole source of class knowledge.
type Mapping struct {
	classes map[string]Class
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{classes: make(map[string]Class)}
}

// DefaultMapping returns the built-in tkinter widget table. The category
// assignments reproduce the classic tkinter checker sets: text-required
// widgets, tab-order widgets, and the two top-level window classes.
func DefaultMapping() *Mapping {
	m := NewMapping()

	// Text-bearing and interactive
	for _, name := range []string{"Button", "Checkbutton", "Radiobutton", "Menubutton"} {
		m.Set(name, TextBearing|Interactive)
	}
	m.Set("Label", TextBearing)

	// Interactive only
	for _, name := range []string{"Entry", "Text", "Listbox", "Scrollbar", "Scale", "Canvas"} {
		m.Set(name, Interactive)
	}

	// Top-level windows
	m.Set("Tk", TopLevel)
	m.Set("Toplevel", TopLevel)

	// Layout containers
	m.Set("Frame", Container)
	m.Set("LabelFrame", Container)

	return m
}

// Set registers or replaces a class.
func (m *Mapping) Set(name string, cats Category) {
	m.classes[name] = Class{Name: name, Cats: cats}
}

// Lookup resolves a class name.
func (m *Mapping) Lookup(name string) (Class, bool) {
	c, ok := m.classes[name]
	return c, ok
}

// Len returns the number of known classes.
func (m *Mapping) Len() int {
	return len(m.classes)
}
