package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"axlint/internal/config"
	"axlint/internal/diag"
)

const badScript = `import tkinter as tk

root = tk.Tk()
btn = tk.Button(root)
entry = tk.Entry(root)
lbl = tk.Label(root, text="hi", fg="#CCCCCC", bg="#FFFFFF")
root.mainloop()
`

const goodScript = `import tkinter as tk

root = tk.Tk()
root.title("Good App")
btn = tk.Button(root, text="&Save", underline=0, takefocus=True)
entry = tk.Entry(root, takefocus=True)
root.mainloop()
`

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func checkDir(t *testing.T, dir string, opts Options) *CheckResult {
	t.Helper()
	res, err := Check(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	return res
}

func TestCheck_BadScript(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "bad.py", badScript)

	res := checkDir(t, dir, Options{Config: config.Default()})
	if len(res.Files) != 1 {
		t.Fatalf("files = %d, want 1", len(res.Files))
	}

	merged := res.Merged()
	got := make(map[diag.Code]int)
	for _, d := range merged.Items() {
		got[d.Code]++
	}
	want := map[diag.Code]int{
		diag.AxMissingWindowTitle: 1, // tk.Tk() без title()
		diag.AxMissingText:        1, // Button без text
		diag.AxMissingTabIndex:    2, // Button и Entry
		diag.AxLowContrast:        1, // #CCCCCC на #FFFFFF
	}
	for code, n := range want {
		if got[code] != n {
			t.Errorf("%s fired %d times, want %d", code.Slug(), got[code], n)
		}
	}
	if merged.Len() != 5 {
		t.Errorf("total diagnostics = %d, want 5: %s",
			merged.Len(), diag.FormatShortDiagnostics(merged.Items(), res.FileSet, false))
	}
	if merged.HasErrors() {
		t.Error("rule findings are warnings, not errors")
	}
	if !merged.HasWarnings() {
		t.Error("expected warnings")
	}
}

func TestCheck_GoodScript(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "good.py", goodScript)

	res := checkDir(t, dir, Options{Config: config.Default()})
	merged := res.Merged()
	if merged.Len() != 0 {
		t.Errorf("clean script produced diagnostics:\n%s",
			diag.FormatShortDiagnostics(merged.Items(), res.FileSet, false))
	}
}

func TestCheck_ShortOutputOrder(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "bad.py", badScript)

	res := checkDir(t, dir, Options{Config: config.Default()})
	out := diag.FormatShortDiagnostics(res.Merged().Items(), res.FileSet, false)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want 5:\n%s", len(lines), out)
	}
	// Первая строка — окно без заголовка на строке 3.
	if !strings.Contains(lines[0], "bad.py:3:") || !strings.Contains(lines[0], "AX1003") {
		t.Errorf("lines[0] = %q", lines[0])
	}
	for _, line := range lines {
		if !strings.Contains(line, "WARNING") {
			t.Errorf("unexpected severity in %q", line)
		}
	}
}

func TestCheck_ParallelMatchesSerial(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "a.py", badScript)
	writeScript(t, dir, "b.py", goodScript)
	writeScript(t, dir, "c.py", badScript)

	serial := checkDir(t, dir, Options{Config: config.Default(), Jobs: 1})
	parallel := checkDir(t, dir, Options{Config: config.Default(), Jobs: 4})

	serialOut := diag.FormatShortDiagnostics(serial.Merged().Items(), serial.FileSet, false)
	parallelOut := diag.FormatShortDiagnostics(parallel.Merged().Items(), parallel.FileSet, false)
	if serialOut != parallelOut {
		t.Errorf("parallel output differs:\n--- serial ---\n%s--- parallel ---\n%s", serialOut, parallelOut)
	}
}

func TestCheck_RuleDisabledByConfig(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "bad.py", badScript)

	cfg := config.Default()
	cfg.Rules["missing-tab-index"] = false
	res := checkDir(t, dir, Options{Config: cfg})
	for _, d := range res.Merged().Items() {
		if d.Code == diag.AxMissingTabIndex {
			t.Fatal("disabled rule still fired")
		}
	}
}

func TestCheck_MissingPath(t *testing.T) {
	if _, err := Check(context.Background(), []string{"/no/such/path.py"}, Options{Config: config.Default()}); err == nil {
		t.Error("missing path should error")
	}
}

func TestCheck_ObserverEvents(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "bad.py", badScript)
	writeScript(t, dir, "good.py", goodScript)

	obs := &recordingObserver{}
	checkDir(t, dir, Options{Config: config.Default(), Observer: obs, Jobs: 1})
	if obs.started != 2 || obs.finished != 2 {
		t.Errorf("observer saw %d/%d events, want 2/2", obs.started, obs.finished)
	}
}

type recordingObserver struct {
	started  int
	finished int
}

func (o *recordingObserver) FileStarted(string) { o.started++ }
func (o *recordingObserver) FileFinished(string, int, bool) {
	o.finished++
}

func TestCheck_DiskCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("axlint-test")
	if err != nil {
		t.Fatalf("OpenDiskCache error: %v", err)
	}

	dir := t.TempDir()
	writeScript(t, dir, "bad.py", badScript)
	opts := Options{Config: config.Default(), Cache: cache}

	first := checkDir(t, dir, opts)
	if first.Files[0].FromCache {
		t.Error("first run must not hit the cache")
	}

	second := checkDir(t, dir, opts)
	if !second.Files[0].FromCache {
		t.Error("second run should hit the cache")
	}

	firstOut := diag.FormatShortDiagnostics(first.Merged().Items(), first.FileSet, false)
	secondOut := diag.FormatShortDiagnostics(second.Merged().Items(), second.FileSet, false)
	if firstOut != secondOut {
		t.Errorf("cached diagnostics differ:\n%s\nvs\n%s", firstOut, secondOut)
	}

	// Изменение конфига инвалидирует кэш.
	cfg := config.Default()
	cfg.Contrast.Level = "AAA"
	third := checkDir(t, dir, Options{Config: cfg, Cache: cache})
	if third.Files[0].FromCache {
		t.Error("config change must miss the cache")
	}
}
