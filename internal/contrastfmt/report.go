// Package contrastfmt renders the verdict of one color-pair contrast
// evaluation, as a terminal report card or as JSON.
package contrastfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"axlint/internal/wcag"
)

// textSize returns the wire name of the size class.
func textSize(large bool) string {
	if large {
		return "large"
	}
	return "normal"
}

// ReportJSON mirrors the classic checker's result dictionary.
type ReportJSON struct {
	Foreground       string  `json:"foreground"`
	Background       string  `json:"background"`
	ContrastRatio    float64 `json:"contrast_ratio"`
	RequiredRatio    float64 `json:"required_ratio"`
	PassesAA         bool    `json:"passes_aa"`
	PassesAAA        bool    `json:"passes_aaa"`
	MeetsRequirement bool    `json:"meets_requirement"`
	LevelTested      string  `json:"level_tested"`
	TextSize         string  `json:"text_size"`
	Grade            string  `json:"grade"`
}

// BuildReport converts an evaluation result into the wire form. The
// ratio is rounded to two decimals for presentation; the verdict flags
// were computed from the unrounded value.
func BuildReport(fg, bg wcag.Color, res wcag.Result) ReportJSON {
	return ReportJSON{
		Foreground:       fg.Hex(),
		Background:       bg.Hex(),
		ContrastRatio:    math.Round(res.Ratio*100) / 100,
		RequiredRatio:    res.RequiredRatio,
		PassesAA:         res.PassesAA,
		PassesAAA:        res.PassesAAA,
		MeetsRequirement: res.MeetsLevel,
		LevelTested:      res.LevelTested.String(),
		TextSize:         textSize(res.LargeText),
		Grade:            res.Grade(),
	}
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, fg, bg wcag.Color, res wcag.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildReport(fg, bg, res))
}

// Pretty writes a terminal report card with color swatches and a sample
// rendering of the pair. Styling degrades gracefully on dumb terminals;
// lipgloss handles profile detection.
func Pretty(w io.Writer, fg, bg wcag.Color, res wcag.Result) {
	labelStyle := lipgloss.NewStyle().Bold(true).Width(12)
	fgSwatch := lipgloss.NewStyle().Foreground(lipgloss.Color(fg.Hex()))
	bgSwatch := lipgloss.NewStyle().Foreground(lipgloss.Color(bg.Hex()))
	sample := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Padding(0, 1)

	verdictStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	verdict := "FAIL"
	if res.MeetsLevel {
		verdictStyle = verdictStyle.Foreground(lipgloss.Color("2"))
		verdict = "PASS"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", labelStyle.Render("foreground"), fgSwatch.Render("██████"), fg.Hex())
	fmt.Fprintf(&b, "%s %s %s\n", labelStyle.Render("background"), bgSwatch.Render("██████"), bg.Hex())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("sample"), sample.Render("The quick brown fox"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %.2f:1 (required %.1f:1 for %s, %s text)\n",
		labelStyle.Render("ratio"), res.Ratio, res.RequiredRatio, res.LevelTested, textSize(res.LargeText))
	fmt.Fprintf(&b, "%s AA=%s AAA=%s\n", labelStyle.Render("conformance"),
		passFail(res.PassesAA), passFail(res.PassesAAA))
	fmt.Fprintf(&b, "%s %s (grade %s)\n", labelStyle.Render("verdict"),
		verdictStyle.Render(verdict), res.Grade())
	io.WriteString(w, b.String())
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
