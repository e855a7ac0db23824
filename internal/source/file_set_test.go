package source

import (
	"testing"
)

func TestFileSetAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.js", []byte("let a = 1\nlet b = 2\n"))

	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Error("virtual file should carry FileVirtual flag")
	}
	if f.Path != "test.js" {
		t.Errorf("path = %q, want test.js", f.Path)
	}
	if len(f.LineIdx) != 2 {
		t.Errorf("line index length = %d, want 2", len(f.LineIdx))
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.js", []byte("ab\ncdef\n"))

	start, end := fs.Resolve(Span{File: id, Start: 3, End: 7})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 5 {
		t.Errorf("end = %d:%d, want 2:5", end.Line, end.Col)
	}
}

func TestFileGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.js", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		num  uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.num); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.num, got, tt.want)
		}
	}
}

func TestFileSetGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("dir/a.js", []byte("x"))
	id2 := fs.AddVirtual("dir/a.js", []byte("y"))

	f, ok := fs.GetByPath("dir/a.js")
	if !ok {
		t.Fatal("expected file by path")
	}
	if f.ID != id2 {
		t.Errorf("index should point to the latest version, got %d want %d", f.ID, id2)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 2, End: 7}
	c := a.Cover(b)
	if c.Start != 2 || c.End != 10 {
		t.Errorf("cover = %v", c)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cover across files should be a no-op, got %v", got)
	}
}
