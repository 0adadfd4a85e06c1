package diag

import (
	"fmt"
)

// Code identifies one accessibility check. The numeric value is internal;
// the stable external identifiers are ID() and Slug().
type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Widget accessibility rules (1000-series)
	AxMissingText        Code = 1001
	AxMissingTabIndex    Code = 1002
	AxMissingWindowTitle Code = 1003
	AxMissingAccelerator Code = 1004
	AxMissingUnderline   Code = 1005
	AxLowContrast        Code = 1006
	AxInvalidColor       Code = 1007

	// Ошибки I/O
	IOLoadFileError Code = 4001
)

type codeInfo struct {
	slug      string
	title     string
	guideline string
}

var codeTable = map[Code]codeInfo{
	UnknownCode: {
		slug:  "unknown",
		title: "Unknown diagnostic",
	},
	AxMissingText: {
		slug:      "missing-text-attribute",
		title:     "UI element should have a text attribute for accessibility",
		guideline: "WCAG 2.1 SC 4.1.2 (Name, Role, Value)",
	},
	AxMissingTabIndex: {
		slug:      "missing-tab-index",
		title:     "Interactive UI control should have a tab index assignment",
		guideline: "WCAG 2.1 SC 2.1.1 (Keyboard)",
	},
	AxMissingWindowTitle: {
		slug:      "missing-window-title",
		title:     "Top-level window should have a title",
		guideline: "WCAG 2.1 SC 2.4.2 (Page Titled)",
	},
	AxMissingAccelerator: {
		slug:      "missing-keyboard-accelerator",
		title:     "Button label should carry a keyboard accelerator",
		guideline: "WCAG 2.1 SC 2.1.1 (Keyboard)",
	},
	AxMissingUnderline: {
		slug:      "missing-mnemonic-underline",
		title:     "Mnemonic label should set an underline index",
		guideline: "WCAG 2.1 SC 3.3.2 (Labels or Instructions)",
	},
	AxLowContrast: {
		slug:      "low-contrast",
		title:     "Foreground/background colors do not meet the contrast requirement",
		guideline: "WCAG 2.1 SC 1.4.3 (Contrast (Minimum))",
	},
	AxInvalidColor: {
		slug:      "invalid-color",
		title:     "Color literal is not a valid #RRGGBB value",
		guideline: "WCAG 2.1 SC 1.4.3 (Contrast (Minimum))",
	},
	IOLoadFileError: {
		slug:  "io-load-file",
		title: "I/O load file error",
	},
}

// ID returns the stable compact identifier, e.g. "AX1001".
func (c Code) ID() string {
	if ic := int(c); ic >= 4000 && ic < 5000 {
		return fmt.Sprintf("IO%04d", ic)
	}
	return fmt.Sprintf("AX%04d", int(c))
}

// Slug returns the stable human-oriented rule name, e.g.
// "missing-text-attribute". This is the identifier used in config files
// and documentation.
func (c Code) Slug() string {
	if info, ok := codeTable[c]; ok {
		return info.slug
	}
	return codeTable[UnknownCode].slug
}

// Title returns the short generic description of the code.
func (c Code) Title() string {
	if info, ok := codeTable[c]; ok {
		return info.title
	}
	return codeTable[UnknownCode].title
}

// Guideline returns the WCAG success criterion the code is based on, or ""
// for non-rule codes.
func (c Code) Guideline() string {
	if info, ok := codeTable[c]; ok {
		return info.guideline
	}
	return ""
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// CodeBySlug resolves a rule slug back to its code. Used by the config
// layer for [rules] enable/disable entries.
func CodeBySlug(slug string) (Code, bool) {
	for code, info := range codeTable {
		if info.slug == slug && code != UnknownCode {
			return code, true
		}
	}
	return UnknownCode, false
}

// RuleCodes lists all rule codes in ascending order.
func RuleCodes() []Code {
	return []Code{
		AxMissingText,
		AxMissingTabIndex,
		AxMissingWindowTitle,
		AxMissingAccelerator,
		AxMissingUnderline,
		AxLowContrast,
		AxInvalidColor,
	}
}
