package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"dangle/internal/diag"
	"dangle/internal/driver"
	"dangle/internal/rule"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestListSourceFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.js":                  "",
		"b.mjs":                 "",
		"c.cjs":                 "",
		"skip.ts":               "",
		"sub/d.js":              "",
		"node_modules/dep.js":   "",
		".hidden/e.js":          "",
		"sub/node_modules/f.js": "",
	})

	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.js"),
		filepath.Join(dir, "b.mjs"),
		filepath.Join(dir, "c.cjs"),
		filepath.Join(dir, "sub", "d.js"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestLintTargetsFindsTrailingCommas(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"bad.js":   "const a = [1, 2,]\n",
		"clean.js": "const a = [1, 2]\n",
	})

	opts := driver.Options{
		Rule:           rule.Options{Mode: rule.ModeNever},
		MaxDiagnostics: 64,
	}
	fs, results, err := driver.LintTargets(context.Background(), []string{dir}, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d", len(results))
	}
	// Deterministic order: bad.js before clean.js.
	if results[0].Bag.Len() != 1 || results[1].Bag.Len() != 0 {
		t.Errorf("findings = %d/%d, want 1/0", results[0].Bag.Len(), results[1].Bag.Len())
	}

	merged := driver.MergeBags(results, 64)
	if merged.Len() != 1 {
		t.Errorf("merged = %d", merged.Len())
	}
	if fs.Len() != 2 {
		t.Errorf("file set = %d", fs.Len())
	}
}

func TestLintTargetsEmitsEvents(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.js": "[1,]\n",
		"b.js": "[1]\n",
	})

	events := make(chan driver.Event, 8)
	opts := driver.Options{Rule: rule.Options{Mode: rule.ModeNever}, MaxDiagnostics: 16}
	_, _, err := driver.LintTargets(context.Background(), []string{dir}, opts, events)
	if err != nil {
		t.Fatal(err)
	}
	close(events)

	seen := 0
	for ev := range events {
		seen++
		if ev.Total != 2 {
			t.Errorf("event total = %d", ev.Total)
		}
	}
	if seen != 2 {
		t.Errorf("events = %d, want 2", seen)
	}
}

func TestLintFileUsesCache(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.js": "const a = [1, 2,]\n"})
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	cache, err := driver.OpenDiskCache("dangle-test")
	if err != nil {
		t.Fatal(err)
	}
	opts := driver.Options{
		Rule:           rule.Options{Mode: rule.ModeNever},
		MaxDiagnostics: 16,
		Cache:          cache,
	}

	_, results, err := driver.LintTargets(context.Background(), []string{dir}, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].FromCache {
		t.Fatal("first run must not hit the cache")
	}
	first := results[0].Bag.Items()

	_, results, err = driver.LintTargets(context.Background(), []string{dir}, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].FromCache {
		t.Fatal("second run should replay from cache")
	}
	second := results[0].Bag.Items()
	if len(first) != len(second) || len(second) != 1 {
		t.Fatalf("findings = %d/%d", len(first), len(second))
	}
	if first[0].Code != second[0].Code || first[0].Primary.Start != second[0].Primary.Start {
		t.Errorf("replayed diagnostic differs: %+v vs %+v", first[0], second[0])
	}
	if len(second[0].Fixes) != 1 || len(second[0].Fixes[0].Edits) != 1 {
		t.Errorf("replayed fixes = %+v", second[0].Fixes)
	}

	// A config change invalidates the digest.
	opts.Rule.Mode = rule.ModeAlways
	_, results, err = driver.LintTargets(context.Background(), []string{dir}, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].FromCache {
		t.Error("mode change must miss the cache")
	}
}

func TestLintTargetsMissingPath(t *testing.T) {
	_, _, err := driver.LintTargets(context.Background(), []string{filepath.Join(t.TempDir(), "nope.js")}, driver.Options{MaxDiagnostics: 4}, nil)
	if err == nil {
		t.Error("missing target must error")
	}
}

func TestLintFileTimings(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.js": "const a = [1]\n"})
	opts := driver.Options{Rule: rule.Options{Mode: rule.ModeNever}, MaxDiagnostics: 16, Timings: true}
	_, results, err := driver.LintTargets(context.Background(), []string{dir}, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Timing == nil || len(results[0].Timing.Phases) != 3 {
		t.Fatalf("timing = %+v", results[0].Timing)
	}
	for i, name := range []string{"tokenize", "parse", "check"} {
		if results[0].Timing.Phases[i].Name != name {
			t.Errorf("phase %d = %q", i, results[0].Timing.Phases[i].Name)
		}
	}
	var hasErrors bool
	for _, d := range results[0].Bag.Items() {
		if d.Severity == diag.SevError {
			hasErrors = true
		}
	}
	if hasErrors {
		t.Error("clean file produced errors")
	}
}
