package lexer_test

import (
	"testing"

	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/lexer"
	"pseudo/internal/source"
	"pseudo/internal/token"
)

func makeTestLexer(input string, lang dialect.Kind) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.src", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(64)
	opts := lexer.Options{Lang: lang, Reporter: diag.BagReporter{Bag: bag}}
	return lexer.New(file, opts), bag
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func expectTokens(t *testing.T, input string, lang dialect.Kind, expected []token.Kind) {
	t.Helper()
	lx, _ := makeTestLexer(input, lang)
	tokens := collectAllTokens(lx)
	if len(tokens) != len(expected) {
		t.Fatalf("input %q: got %d tokens, want %d (%v)", input, len(tokens), len(expected), tokens)
	}
	for i, want := range expected {
		if tokens[i].Kind != want {
			t.Errorf("input %q token[%d] = %v (%q), want %v", input, i, tokens[i].Kind, tokens[i].Text, want)
		}
	}
}

func TestLexer_JSDeclaration(t *testing.T) {
	expectTokens(t, "let x = 5;", dialect.JavaScript, []token.Kind{
		token.KwLet, token.Ident, token.Assign, token.IntLit, token.Semicolon, token.EOF,
	})
}

func TestLexer_JavaDeclaration(t *testing.T) {
	expectTokens(t, "int count = 0;", dialect.Java, []token.Kind{
		token.KwInt, token.Ident, token.Assign, token.IntLit, token.Semicolon, token.EOF,
	})
}

func TestLexer_ForHeader(t *testing.T) {
	expectTokens(t, "for (i = 0; i < 5; i++)", dialect.JavaScript, []token.Kind{
		token.KwFor, token.LParen, token.Ident, token.Assign, token.IntLit,
		token.Semicolon, token.Ident, token.Lt, token.IntLit, token.Semicolon,
		token.Ident, token.PlusPlus, token.RParen, token.EOF,
	})
}

func TestLexer_StrictEquality(t *testing.T) {
	expectTokens(t, "a === b !== c", dialect.JavaScript, []token.Kind{
		token.Ident, token.EqEqEq, token.Ident, token.BangEqEq, token.Ident, token.EOF,
	})
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"42", token.IntLit},
		{"0x1F", token.IntLit},
		{"3.14", token.FloatLit},
		{".5", token.FloatLit},
		{"1e-3", token.FloatLit},
		{"2.5f", token.FloatLit},
		{"100L", token.IntLit},
	}
	for _, tt := range tests {
		lx, bag := makeTestLexer(tt.input, dialect.Java)
		tok := lx.Next()
		if tok.Kind != tt.kind {
			t.Errorf("%q: kind = %v, want %v", tt.input, tok.Kind, tt.kind)
		}
		if bag.HasErrors() {
			t.Errorf("%q: unexpected diagnostics %v", tt.input, bag.Items())
		}
	}
}

func TestLexer_StringsByDialect(t *testing.T) {
	// single quotes are strings in JS, chars in Java
	lx, _ := makeTestLexer("'a'", dialect.JavaScript)
	if tok := lx.Next(); tok.Kind != token.StringLit {
		t.Errorf("JS single quote = %v, want string literal", tok.Kind)
	}
	lx, _ = makeTestLexer("'a'", dialect.Java)
	if tok := lx.Next(); tok.Kind != token.CharLit {
		t.Errorf("Java single quote = %v, want char literal", tok.Kind)
	}
}

func TestLexer_TemplateLiteral(t *testing.T) {
	lx, bag := makeTestLexer("`hello ${name}!`", dialect.JavaScript)
	tok := lx.Next()
	if tok.Kind != token.TemplateLit {
		t.Fatalf("kind = %v, want template literal", tok.Kind)
	}
	if tok.Text != "`hello ${name}!`" {
		t.Errorf("text = %q", tok.Text)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	lx, bag := makeTestLexer(`"oops`, dialect.JavaScript)
	tok := lx.Next()
	if tok.Kind != token.StringLit {
		t.Errorf("kind = %v, want best-effort string literal", tok.Kind)
	}
	if !bag.HasErrors() {
		t.Error("expected an unterminated-string diagnostic")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("code = %v", bag.Items()[0].Code)
	}
}

func TestLexer_LineCommentTrivia(t *testing.T) {
	lx, _ := makeTestLexer("// greet the user\nlet x;", dialect.JavaScript)
	tok := lx.Next()
	if tok.Kind != token.KwLet {
		t.Fatalf("kind = %v, want let", tok.Kind)
	}
	var comment *token.Trivia
	for i := range tok.Leading {
		if tok.Leading[i].Kind == token.TriviaLineComment {
			comment = &tok.Leading[i]
		}
	}
	if comment == nil {
		t.Fatal("expected a leading line comment")
	}
	if comment.Text != " greet the user" {
		t.Errorf("comment text = %q", comment.Text)
	}
}

func TestLexer_UnterminatedBlockComment(t *testing.T) {
	lx, bag := makeTestLexer("/* no end", dialect.JavaScript)
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("kind = %v, want EOF", tok.Kind)
	}
	if !bag.HasErrors() {
		t.Error("expected unterminated block comment diagnostic")
	}
}

func TestLexer_EmptyInput(t *testing.T) {
	lx, bag := makeTestLexer("", dialect.JavaScript)
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("kind = %v, want EOF", tok.Kind)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", bag.Items())
	}
	// EOF repeats forever
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("second Next = %v, want EOF", tok.Kind)
	}
}

func TestLexer_PeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b", dialect.JavaScript)
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Text != n.Text {
		t.Errorf("Peek %v/%q != Next %v/%q", p.Kind, p.Text, n.Kind, n.Text)
	}
	if next := lx.Next(); next.Text != "b" {
		t.Errorf("after Peek+Next, got %q, want b", next.Text)
	}
}
