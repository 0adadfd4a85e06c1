package diag

import "testing"

func TestCode_ID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{AxMissingText, "AX1001"},
		{AxMissingTabIndex, "AX1002"},
		{AxMissingWindowTitle, "AX1003"},
		{AxMissingAccelerator, "AX1004"},
		{AxMissingUnderline, "AX1005"},
		{AxLowContrast, "AX1006"},
		{AxInvalidColor, "AX1007"},
		{IOLoadFileError, "IO4001"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCode_SlugRoundtrip(t *testing.T) {
	for _, code := range RuleCodes() {
		slug := code.Slug()
		if slug == "" || slug == "unknown" {
			t.Errorf("code %s has no slug", code.ID())
		}
		back, ok := CodeBySlug(slug)
		if !ok || back != code {
			t.Errorf("CodeBySlug(%q) = %v, %v, want %v", slug, back, ok, code)
		}
	}
	if _, ok := CodeBySlug("no-such-rule"); ok {
		t.Error("CodeBySlug should miss unknown slugs")
	}
}

func TestCode_Guideline(t *testing.T) {
	for _, code := range RuleCodes() {
		if code.Guideline() == "" {
			t.Errorf("rule %s should reference a WCAG criterion", code.ID())
		}
	}
	if IOLoadFileError.Guideline() != "" {
		t.Error("I/O codes carry no guideline")
	}
}

func TestCode_UnknownFallback(t *testing.T) {
	var c Code = 999
	if c.Slug() != "unknown" {
		t.Errorf("Slug = %q, want unknown", c.Slug())
	}
	if c.Title() != "Unknown diagnostic" {
		t.Errorf("Title = %q", c.Title())
	}
}
