package contrastfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"axlint/internal/wcag"
)

func mustColor(t *testing.T, hex string) wcag.Color {
	t.Helper()
	c, err := wcag.ParseHex(hex)
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", hex, err)
	}
	return c
}

func mustEvaluate(t *testing.T, fg, bg wcag.Color, large bool, level wcag.Level) wcag.Result {
	t.Helper()
	res, err := wcag.Evaluate(fg, bg, large, level)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	return res
}

func TestBuildReport(t *testing.T) {
	fg := mustColor(t, "#767676")
	bg := mustColor(t, "#FFFFFF")
	res := mustEvaluate(t, fg, bg, false, wcag.LevelAA)

	rep := BuildReport(fg, bg, res)
	if rep.Foreground != "#767676" || rep.Background != "#FFFFFF" {
		t.Errorf("colors = %q/%q", rep.Foreground, rep.Background)
	}
	if rep.ContrastRatio != 4.54 {
		t.Errorf("contrast_ratio = %v, want 4.54 after rounding", rep.ContrastRatio)
	}
	if rep.RequiredRatio != 4.5 {
		t.Errorf("required_ratio = %v", rep.RequiredRatio)
	}
	if !rep.PassesAA || rep.PassesAAA {
		t.Errorf("passes_aa=%v passes_aaa=%v", rep.PassesAA, rep.PassesAAA)
	}
	if !rep.MeetsRequirement || rep.Grade != "AA" {
		t.Errorf("meets=%v grade=%q", rep.MeetsRequirement, rep.Grade)
	}
	if rep.LevelTested != "AA" || rep.TextSize != "normal" {
		t.Errorf("level=%q size=%q", rep.LevelTested, rep.TextSize)
	}
}

func TestBuildReport_LargeText(t *testing.T) {
	fg := mustColor(t, "#999999")
	bg := mustColor(t, "#FFFFFF")
	res := mustEvaluate(t, fg, bg, true, wcag.LevelAA)

	rep := BuildReport(fg, bg, res)
	if rep.TextSize != "large" || rep.RequiredRatio != 3.0 {
		t.Errorf("size=%q required=%v", rep.TextSize, rep.RequiredRatio)
	}
	if rep.MeetsRequirement {
		t.Errorf("#999999 on white is ~2.85:1, must fail even for large text")
	}
}

func TestJSON_RoundTrips(t *testing.T) {
	fg := mustColor(t, "#000000")
	bg := mustColor(t, "#FFFFFF")
	res := mustEvaluate(t, fg, bg, false, wcag.LevelAAA)

	var buf bytes.Buffer
	if err := JSON(&buf, fg, bg, res); err != nil {
		t.Fatalf("JSON error: %v", err)
	}
	var rep ReportJSON
	if err := json.Unmarshal(buf.Bytes(), &rep); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if rep.ContrastRatio != 21.0 || rep.Grade != "AAA" {
		t.Errorf("ratio=%v grade=%q", rep.ContrastRatio, rep.Grade)
	}
}

func TestPretty_Verdict(t *testing.T) {
	fg := mustColor(t, "#CCCCCC")
	bg := mustColor(t, "#FFFFFF")
	res := mustEvaluate(t, fg, bg, false, wcag.LevelAA)

	var buf bytes.Buffer
	Pretty(&buf, fg, bg, res)
	out := buf.String()
	if !strings.Contains(out, "#CCCCCC") || !strings.Contains(out, "#FFFFFF") {
		t.Errorf("missing hex values in:\n%s", out)
	}
	if !strings.Contains(out, "FAIL") {
		t.Errorf("missing verdict in:\n%s", out)
	}
	if !strings.Contains(out, "AA=fail AAA=fail") {
		t.Errorf("missing conformance line in:\n%s", out)
	}
}
