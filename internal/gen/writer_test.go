package gen_test

import (
	"testing"

	"pseudo/internal/gen"
)

func TestWriter_BlankCollapse(t *testing.T) {
	w := gen.NewWriter(3)
	w.Blank()
	w.Line("first")
	w.Blank()
	w.Blank()
	w.Line("second")
	w.Blank()
	got := w.String()
	want := "first\n\nsecond\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriter_TrailingWhitespaceStripped(t *testing.T) {
	w := gen.NewWriter(3)
	w.Line("line   ")
	w.Line("\t ")
	w.Line("next")
	if got := w.String(); got != "line\nnext\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWriter_IndentLevels(t *testing.T) {
	w := gen.NewWriter(3)
	w.Line("a")
	w.IndentPush()
	w.Line("b")
	w.IndentPush()
	w.Line("c")
	w.IndentPop()
	w.IndentPop()
	w.IndentPop() // floor at zero
	w.Line("d")
	want := "a\n   b\n      c\nd\n"
	if got := w.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriter_EmptyStaysEmpty(t *testing.T) {
	w := gen.NewWriter(3)
	w.Blank()
	if got := w.String(); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestWriter_ZeroWidth(t *testing.T) {
	w := gen.NewWriter(0)
	w.IndentPush()
	w.Line("x")
	if got := w.String(); got != "x\n" {
		t.Fatalf("got %q", got)
	}
}
