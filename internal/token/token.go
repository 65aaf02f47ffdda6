package token

import (
	"pseudo/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the kind is a numeric, string, char, boolean,
// or null literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLit, FloatLit, StringLit, TemplateLit, CharLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsAssignOp reports whether the kind is an assignment operator.
func (k Kind) IsAssignOp() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign:
		return true
	default:
		return false
	}
}

// IsTypeKeyword reports whether the kind is a Java primitive type keyword.
func (k Kind) IsTypeKeyword() bool {
	switch k {
	case KwInt, KwDouble, KwFloat, KwLong, KwShort, KwByte, KwChar, KwBoolean, KwVoid:
		return true
	default:
		return false
	}
}

// IsModifier reports whether the kind is a declaration modifier keyword.
func (k Kind) IsModifier() bool {
	switch k {
	case KwPublic, KwPrivate, KwProtected, KwStatic, KwFinal, KwAbstract, KwAsync:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the kind is any language keyword.
func (k Kind) IsKeyword() bool {
	return k >= KwVar && k <= KwBoolean
}

func (t Token) IsLiteral() bool     { return t.Kind.IsLiteral() }
func (t Token) IsAssignOp() bool    { return t.Kind.IsAssignOp() }
func (t Token) IsTypeKeyword() bool { return t.Kind.IsTypeKeyword() }
func (t Token) IsModifier() bool    { return t.Kind.IsModifier() }
func (t Token) IsKeyword() bool     { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
