package source

import (
	"testing"
)

func TestFileSet_AddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.js", []byte("let x = 1;\nlet y = 2;\n"))

	f := fs.Get(id)
	if f.Path != "test.js" {
		t.Errorf("path = %q, want %q", f.Path, "test.js")
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
	if len(f.LineIdx) != 2 {
		t.Errorf("LineIdx length = %d, want 2", len(f.LineIdx))
	}
}

func TestFileSet_Resolve(t *testing.T) {
	fs := NewFileSet()
	content := "abc\ndefgh\nij"
	id := fs.AddVirtual("test.js", []byte(content))

	tests := []struct {
		name     string
		off      uint32
		wantLine uint32
		wantCol  uint32
	}{
		{"start of file", 0, 1, 1},
		{"middle of first line", 2, 1, 3},
		{"start of second line", 4, 2, 1},
		{"middle of second line", 7, 2, 4},
		{"last line", 10, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fs.Position(Span{File: id, Start: tt.off, End: tt.off})
			if got.Line != tt.wantLine || got.Col != tt.wantCol {
				t.Errorf("Position(%d) = %d:%d, want %d:%d",
					tt.off, got.Line, got.Col, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestFileSet_NormalizesCRLF(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add("win.js", []byte("a\r\nb\r\n"), 0)
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Errorf("content = %q, want %q", f.Content, "a\nb\n")
	}
}

func TestFileSet_GetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.js", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(2); got != "second" {
		t.Errorf("GetLine(2) = %q, want %q", got, "second")
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("GetLine(0) = %q, want empty", got)
	}
	if got := f.GetLine(99); got != "" {
		t.Errorf("GetLine(99) = %q, want empty", got)
	}
}

func TestSpan_Cover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 2, End: 7}

	got := a.Cover(b)
	if got.Start != 2 || got.End != 10 {
		t.Errorf("Cover = %v, want 1:2-10", got)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files should be identity, got %v", got)
	}
}
