package token

import (
	"testing"

	"pseudo/internal/dialect"
)

func TestLookupKeyword_Shared(t *testing.T) {
	for _, lang := range []dialect.Kind{dialect.JavaScript, dialect.Java} {
		k, ok := LookupKeyword("while", lang)
		if !ok || k != KwWhile {
			t.Errorf("LookupKeyword(while, %v) = %v, %v", lang, k, ok)
		}
	}
}

func TestLookupKeyword_DialectSpecific(t *testing.T) {
	if k, ok := LookupKeyword("let", dialect.JavaScript); !ok || k != KwLet {
		t.Errorf("let should be a JS keyword, got %v, %v", k, ok)
	}
	if _, ok := LookupKeyword("let", dialect.Java); ok {
		t.Error("let must not be a Java keyword")
	}
	if k, ok := LookupKeyword("boolean", dialect.Java); !ok || k != KwBoolean {
		t.Errorf("boolean should be a Java keyword, got %v, %v", k, ok)
	}
	if _, ok := LookupKeyword("boolean", dialect.JavaScript); ok {
		t.Error("boolean must not be a JS keyword")
	}
}

func TestToken_IsLiteral(t *testing.T) {
	lits := []Kind{IntLit, FloatLit, StringLit, TemplateLit, CharLit, KwTrue, KwFalse, KwNull}
	for _, k := range lits {
		if !(Token{Kind: k}).IsLiteral() {
			t.Errorf("%v should be a literal", k)
		}
	}
	if (Token{Kind: Ident}).IsLiteral() {
		t.Error("ident is not a literal")
	}
}

func TestToken_IsTypeKeyword(t *testing.T) {
	if !(Token{Kind: KwInt}).IsTypeKeyword() || !(Token{Kind: KwVoid}).IsTypeKeyword() {
		t.Error("int and void are type keywords")
	}
	if (Token{Kind: KwClass}).IsTypeKeyword() {
		t.Error("class is not a type keyword")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KwFunction, "function"},
		{EqEqEq, "==="},
		{Arrow, "=>"},
		{TemplateLit, "template literal"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
