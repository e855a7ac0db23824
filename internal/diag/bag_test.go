package diag

import (
	"math"
	"testing"

	"dangle/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(New(SevWarning, StyMissingTrailingComma, span(0, 0, 1), "one")) {
		t.Error("first add should succeed")
	}
	if !b.Add(New(SevWarning, StyMissingTrailingComma, span(0, 1, 2), "two")) {
		t.Error("second add should succeed")
	}
	if b.Add(New(SevWarning, StyMissingTrailingComma, span(0, 2, 3), "three")) {
		t.Error("add beyond the limit should be rejected")
	}
	if b.Len() != 2 {
		t.Errorf("len = %d, want 2", b.Len())
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevWarning, StyUnexpectedTrailingComma, span(1, 5, 6), "b"))
	b.Add(New(SevError, SynUnexpectedToken, span(0, 9, 10), "a"))
	b.Add(New(SevWarning, StyMissingTrailingComma, span(0, 2, 3), "c"))
	b.Sort()

	items := b.Items()
	if items[0].Primary.Start != 2 || items[1].Primary.Start != 9 || items[2].Primary.File != 1 {
		t.Errorf("unexpected order: %+v", items)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(10)
	d := New(SevWarning, StyUnexpectedTrailingComma, span(0, 4, 5), "dup")
	b.Add(d)
	b.Add(d)
	b.Dedup()
	if b.Len() != 1 {
		t.Errorf("len after dedup = %d, want 1", b.Len())
	}
}

func TestBagHasErrorsWarnings(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevWarning, StyInfo, span(0, 0, 1), "w"))
	if b.HasErrors() {
		t.Error("no errors expected")
	}
	if !b.HasWarnings() {
		t.Error("warning expected")
	}
	b.Add(New(SevError, SynUnexpectedToken, span(0, 0, 1), "e"))
	if !b.HasErrors() {
		t.Error("error expected")
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(2)
	a.Add(New(SevWarning, StyInfo, span(0, 0, 1), "a"))
	a.Add(New(SevWarning, StyInfo, span(0, 1, 2), "b"))
	b := NewBag(2)
	b.Add(New(SevWarning, StyInfo, span(0, 2, 3), "c"))

	a.Merge(b)
	if a.Len() != 3 || a.Cap() != 3 {
		t.Errorf("len = %d, cap = %d, want 3/3", a.Len(), a.Cap())
	}
}

func TestBagMergeSaturatesCap(t *testing.T) {
	const half = 40000
	a := NewBag(half)
	b := NewBag(half)
	d := New(SevWarning, StyInfo, span(0, 0, 1), "x")
	for i := 0; i < half; i++ {
		a.Add(d)
		b.Add(d)
	}

	a.Merge(b)
	if a.Len() != 2*half {
		t.Fatalf("len = %d, want %d", a.Len(), 2*half)
	}
	if a.Cap() != math.MaxUint16 {
		t.Errorf("cap = %d, want %d; a wrapped cap would shrink below Len", a.Cap(), math.MaxUint16)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	r.Report(StyUnexpectedTrailingComma, SevWarning, span(0, 1, 2), "m", nil, nil)
	r.Report(StyUnexpectedTrailingComma, SevWarning, span(0, 1, 2), "m", nil, nil)
	r.Report(StyUnexpectedTrailingComma, SevWarning, span(0, 3, 4), "m", nil, nil)
	if bag.Len() != 2 {
		t.Errorf("len = %d, want 2", bag.Len())
	}
}

func TestReportBuilderEmitOnce(t *testing.T) {
	bag := NewBag(10)
	b := ReportWarning(BagReporter{Bag: bag}, StyMissingTrailingComma, span(0, 0, 1), "msg").
		WithNote(span(0, 2, 3), "note").
		WithFix(Fix{Title: "t", Edits: []TextEdit{{Span: span(0, 1, 1), NewText: ","}}})
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || len(d.Fixes) != 1 {
		t.Errorf("notes=%d fixes=%d", len(d.Notes), len(d.Fixes))
	}
}
