package fix_test

import (
	"os"
	"path/filepath"
	"testing"

	"dangle/internal/diag"
	"dangle/internal/fix"
	"dangle/internal/source"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestApplyAllRemovesAndInserts(t *testing.T) {
	path := writeTemp(t, "a.js", "[1, 2,]\n{a: 1}\n")
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	diags := []diag.Diagnostic{
		diag.NewWarning(diag.StyUnexpectedTrailingComma, source.Span{File: id, Start: 5, End: 6}, "Unexpected trailing comma.").
			WithFix(fix.DeleteSpan("Remove trailing comma", source.Span{File: id, Start: 5, End: 6}, ",")),
		diag.NewWarning(diag.StyMissingTrailingComma, source.Point(id, 13), "Missing trailing comma.").
			WithFix(fix.InsertText("Insert trailing comma", source.Point(id, 13), ",", "")),
	}

	res, err := fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 2 {
		t.Fatalf("applied = %d, want 2; skipped: %+v", len(res.Applied), res.Skipped)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "[1, 2]\n{a: 1,}\n"
	if string(got) != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestApplyOnceTakesFirstByPosition(t *testing.T) {
	path := writeTemp(t, "a.js", "[1,][2,]")
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// Deliberately listed out of source order.
	diags := []diag.Diagnostic{
		diag.NewWarning(diag.StyUnexpectedTrailingComma, source.Span{File: id, Start: 6, End: 7}, "Unexpected trailing comma.").
			WithFix(fix.DeleteSpan("Remove trailing comma", source.Span{File: id, Start: 6, End: 7}, ",")),
		diag.NewWarning(diag.StyUnexpectedTrailingComma, source.Span{File: id, Start: 2, End: 3}, "Unexpected trailing comma.").
			WithFix(fix.DeleteSpan("Remove trailing comma", source.Span{File: id, Start: 2, End: 3}, ",")),
	}

	res, err := fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeOnce})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 1 {
		t.Fatalf("applied = %d, want 1", len(res.Applied))
	}

	got, _ := os.ReadFile(path)
	if string(got) != "[1][2,]" {
		t.Errorf("content = %q, want earliest fix applied first", got)
	}
}

func TestApplyGuardRejectsStaleEdit(t *testing.T) {
	path := writeTemp(t, "a.js", "[1, 2]")
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	diags := []diag.Diagnostic{
		diag.NewWarning(diag.StyUnexpectedTrailingComma, source.Span{File: id, Start: 1, End: 2}, "Unexpected trailing comma.").
			WithFix(fix.DeleteSpan("Remove trailing comma", source.Span{File: id, Start: 1, End: 2}, ",")),
	}

	res, err := fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if err == nil {
		t.Fatal("expected ErrNoFixes for a guarded edit over mismatched text")
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Reason != "existing text does not match expected content" {
		t.Errorf("skipped = %+v", res.Skipped)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "[1, 2]" {
		t.Errorf("file must be untouched, got %q", got)
	}
}

func TestApplyByID(t *testing.T) {
	path := writeTemp(t, "a.js", "x,y")
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	diags := []diag.Diagnostic{
		diag.NewWarning(diag.StyUnexpectedTrailingComma, source.Span{File: id, Start: 1, End: 2}, "Unexpected trailing comma.").
			WithFix(fix.ReplaceSpan("Replace comma", source.Span{File: id, Start: 1, End: 2}, ";", ",", fix.WithID("swap-comma"))),
	}

	res, err := fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeID, TargetID: "swap-comma"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 1 || res.Applied[0].ID != "swap-comma" {
		t.Fatalf("applied = %+v", res.Applied)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "x;y" {
		t.Errorf("content = %q", got)
	}

	_, err = fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeID, TargetID: "missing"})
	if err == nil {
		t.Error("unknown fix id must not apply anything")
	}
}

func TestApplyDryRunOnVirtualFile(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("mem.js", []byte("[1, 2,]"))

	diags := []diag.Diagnostic{
		diag.NewWarning(diag.StyUnexpectedTrailingComma, source.Span{File: id, Start: 5, End: 6}, "Unexpected trailing comma.").
			WithFix(fix.DeleteSpan("Remove trailing comma", source.Span{File: id, Start: 5, End: 6}, ",")),
	}

	// Without DryRun a virtual file is skipped.
	res, err := fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if err == nil {
		t.Fatal("expected ErrNoFixes for a virtual file")
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Reason != "target file is virtual" {
		t.Errorf("skipped = %+v", res.Skipped)
	}

	res, err = fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatalf("Apply dry-run: %v", err)
	}
	if got := string(res.Buffers[id]); got != "[1, 2]" {
		t.Errorf("buffer = %q, want %q", got, "[1, 2]")
	}
}

func TestApplySkipsConflictingSecondFix(t *testing.T) {
	path := writeTemp(t, "a.js", "[1, 2,]")
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	comma := source.Span{File: id, Start: 5, End: 6}
	diags := []diag.Diagnostic{
		diag.NewWarning(diag.StyUnexpectedTrailingComma, comma, "Unexpected trailing comma.").
			WithFix(fix.DeleteSpan("Remove trailing comma", comma, ",")),
		diag.NewWarning(diag.StyUnexpectedTrailingComma, comma, "Unexpected trailing comma.").
			WithFix(fix.DeleteSpan("Remove trailing comma", comma, ",")),
	}

	res, err := fix.Apply(fs, diags, fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 1 || len(res.Skipped) != 1 {
		t.Errorf("applied = %d skipped = %d, want 1/1", len(res.Applied), len(res.Skipped))
	}

	got, _ := os.ReadFile(path)
	if string(got) != "[1, 2]" {
		t.Errorf("content = %q", got)
	}
}
