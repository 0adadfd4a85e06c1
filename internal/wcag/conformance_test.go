package wcag

import (
	"errors"
	"testing"
)

func TestGrade(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		large bool
		want  string
	}{
		{name: "normal AA", ratio: 4.54, large: false, want: "AA"},
		{name: "normal AAA", ratio: 7.0, large: false, want: "AAA"},
		{name: "normal fail", ratio: 2.99, large: false, want: "FAIL"},
		{name: "normal exactly 4.5", ratio: 4.5, large: false, want: "AA"},
		{name: "normal just below AA", ratio: 4.49, large: false, want: "FAIL"},
		{name: "large exactly 3.0", ratio: 3.0, large: true, want: "AA"},
		{name: "large AAA at 4.5", ratio: 4.5, large: true, want: "AAA"},
		{name: "large fail", ratio: 2.85, large: true, want: "FAIL"},
		{name: "max ratio", ratio: 21.0, large: false, want: "AAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Grade(tt.ratio, tt.large); got != tt.want {
				t.Errorf("Grade(%v, %v) = %q, want %q", tt.ratio, tt.large, got, tt.want)
			}
		})
	}
}

func TestRequiredRatio(t *testing.T) {
	tests := []struct {
		level Level
		large bool
		want  float64
	}{
		{LevelAA, false, 4.5},
		{LevelAA, true, 3.0},
		{LevelAAA, false, 7.0},
		{LevelAAA, true, 4.5},
	}
	for _, tt := range tests {
		if got := RequiredRatio(tt.level, tt.large); got != tt.want {
			t.Errorf("RequiredRatio(%v, %v) = %v, want %v", tt.level, tt.large, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"AA", "aa", " Aa "} {
		level, err := ParseLevel(s)
		if err != nil || level != LevelAA {
			t.Errorf("ParseLevel(%q) = %v, %v", s, level, err)
		}
	}
	for _, s := range []string{"AAA", "aaa"} {
		level, err := ParseLevel(s)
		if err != nil || level != LevelAAA {
			t.Errorf("ParseLevel(%q) = %v, %v", s, level, err)
		}
	}
	for _, s := range []string{"A", "AAAA", "", "best"} {
		if _, err := ParseLevel(s); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("ParseLevel(%q) error = %v, want ErrInvalidLevel", s, err)
		}
	}
}

func TestEvaluate(t *testing.T) {
	gray, err := ParseHex("#767676")
	if err != nil {
		t.Fatal(err)
	}

	res, err := Evaluate(gray, white, false, LevelAA)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if !res.PassesAA {
		t.Error("#767676 on white should pass AA for normal text")
	}
	if res.PassesAAA {
		t.Error("#767676 on white should not pass AAA for normal text")
	}
	if !res.MeetsLevel {
		t.Error("MeetsLevel should be true when testing AA")
	}
	if res.RequiredRatio != 4.5 {
		t.Errorf("RequiredRatio = %v, want 4.5", res.RequiredRatio)
	}
	if got := res.Grade(); got != "AA" {
		t.Errorf("Grade() = %q, want %q", got, "AA")
	}

	// Тот же расчёт на уровне AAA: ratio не меняется, вердикт меняется.
	resAAA, err := Evaluate(gray, white, false, LevelAAA)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if resAAA.MeetsLevel {
		t.Error("MeetsLevel should be false when testing AAA")
	}
	if !almostEqual(res.Ratio, resAAA.Ratio, 1e-12) {
		t.Errorf("ratio differs between levels: %v vs %v", res.Ratio, resAAA.Ratio)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	fg := Color{0x99, 0x99, 0x99}
	first, err := Evaluate(fg, white, true, LevelAA)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Evaluate(fg, white, true, LevelAA)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Evaluate not deterministic: %+v vs %+v", first, second)
	}
	if first.MeetsLevel {
		t.Error("#999999 on white should fail AA even for large text")
	}
}

func TestEvaluateHex(t *testing.T) {
	res, err := EvaluateHex("#000000", "#FFFFFF", false, LevelAAA)
	if err != nil {
		t.Fatalf("EvaluateHex error: %v", err)
	}
	if !res.PassesAAA || !res.MeetsLevel {
		t.Error("black on white should pass AAA")
	}

	// Малформенный цвет никогда не даёт посчитанный ratio.
	if _, err := EvaluateHex("#ZZZZZZ", "#FFFFFF", false, LevelAA); !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("error = %v, want ErrInvalidColorFormat", err)
	}
	if _, err := EvaluateHex("#000000", "#FFF", false, LevelAA); !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("error = %v, want ErrInvalidColorFormat", err)
	}
}
