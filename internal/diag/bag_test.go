package diag

import (
	"testing"

	"pseudo/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

func TestBag_AddAndLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(SynUnexpectedToken, sp(0, 1), "a")) {
		t.Fatal("first Add should succeed")
	}
	if !b.Add(NewWarning(ConvTypeFallback, sp(1, 2), "b")) {
		t.Fatal("second Add should succeed")
	}
	if b.Add(NewInfo(ConvIndexAdjusted, sp(2, 3), "c")) {
		t.Fatal("third Add should be dropped at the limit")
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
}

func TestBag_HasErrorsAndWarnings(t *testing.T) {
	b := NewBag(10)
	b.Add(NewInfo(ConvIndexAdjusted, sp(0, 1), "index shifted"))
	if b.HasErrors() || b.HasWarnings() {
		t.Fatal("info-only bag must have no errors and no warnings")
	}
	b.Add(NewWarning(SynUnsupportedImport, sp(1, 2), "import"))
	if !b.HasWarnings() || b.HasErrors() {
		t.Fatal("warning must register as warning, not error")
	}
	b.Add(NewError(SynUnclosedBrace, sp(2, 3), "brace"))
	if !b.HasErrors() {
		t.Fatal("error must register")
	}
}

func TestBag_SortStable(t *testing.T) {
	b := NewBag(10)
	b.Add(NewInfo(ConvIndexAdjusted, sp(10, 11), "later"))
	b.Add(NewError(SynUnclosedBrace, sp(0, 1), "earlier"))
	b.Sort()
	items := b.Items()
	if items[0].Message != "earlier" {
		t.Fatalf("sort order wrong: first = %q", items[0].Message)
	}
}

func TestBag_Dedup(t *testing.T) {
	b := NewBag(10)
	b.Add(NewError(SynUnclosedBrace, sp(0, 1), "x"))
	b.Add(NewError(SynUnclosedBrace, sp(0, 1), "x"))
	b.Add(NewError(SynUnclosedBrace, sp(5, 6), "y"))
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("Len after dedup = %d, want 2", b.Len())
	}
}

func TestCode_Class(t *testing.T) {
	tests := []struct {
		code Code
		want Class
	}{
		{LexUnterminatedString, ClassStructural},
		{SynUnclosedBrace, ClassStructural},
		{SynUnsupportedTryCatch, ClassUnsupported},
		{ConvTypeFallback, ClassTypeFallback},
		{ConvIndexAdjusted, ClassConversion},
		{IOLoadFileError, ClassValidation},
	}
	for _, tt := range tests {
		if got := tt.code.Class(); got != tt.want {
			t.Errorf("%s Class() = %d, want %d", tt.code.ID(), got, tt.want)
		}
	}
}

func TestCode_ID(t *testing.T) {
	if got := LexUnterminatedString.ID(); got != "LEX1002" {
		t.Errorf("ID = %q", got)
	}
	if got := ConvTypeFallback.ID(); got != "CNV3001" {
		t.Errorf("ID = %q", got)
	}
}
