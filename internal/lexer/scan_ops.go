package lexer

import (
	"pseudo/internal/diag"
	"pseudo/internal/token"
)

// scanOperatorOrPunct scans operators and punctuation with maximal munch.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	kind := token.Invalid
	switch {
	// three-byte operators first
	case lx.try3('=', '=', '='):
		kind = token.EqEqEq
	case lx.try3('!', '=', '='):
		kind = token.BangEqEq
	case lx.try3('>', '>', '>'):
		kind = token.Ushr
	case lx.try3('.', '.', '.'):
		kind = token.DotDotDot
	case lx.try3('*', '*', '='):
		kind = token.StarAssign

	// two-byte operators
	case lx.try2('=', '='):
		kind = token.EqEq
	case lx.try2('!', '='):
		kind = token.BangEq
	case lx.try2('<', '='):
		kind = token.LtEq
	case lx.try2('>', '='):
		kind = token.GtEq
	case lx.try2('&', '&'):
		kind = token.AndAnd
	case lx.try2('|', '|'):
		kind = token.OrOr
	case lx.try2('?', '?'):
		kind = token.QuestionQuestion
	case lx.try2('?', '.'):
		kind = token.QuestionDot
	case lx.try2('+', '+'):
		kind = token.PlusPlus
	case lx.try2('-', '-'):
		kind = token.MinusMinus
	case lx.try2('+', '='):
		kind = token.PlusAssign
	case lx.try2('-', '='):
		kind = token.MinusAssign
	case lx.try2('*', '*'):
		kind = token.StarStar
	case lx.try2('*', '='):
		kind = token.StarAssign
	case lx.try2('/', '='):
		kind = token.SlashAssign
	case lx.try2('%', '='):
		kind = token.PercentAssign
	case lx.try2('=', '>'):
		kind = token.Arrow
	case lx.try2('<', '<'):
		kind = token.Shl
	case lx.try2('>', '>'):
		kind = token.Shr

	default:
		b := lx.cursor.Bump()
		switch b {
		case '+':
			kind = token.Plus
		case '-':
			kind = token.Minus
		case '*':
			kind = token.Star
		case '/':
			kind = token.Slash
		case '%':
			kind = token.Percent
		case '=':
			kind = token.Assign
		case '!':
			kind = token.Bang
		case '<':
			kind = token.Lt
		case '>':
			kind = token.Gt
		case '&':
			kind = token.Amp
		case '|':
			kind = token.Pipe
		case '^':
			kind = token.Caret
		case '~':
			kind = token.Tilde
		case '?':
			kind = token.Question
		case ':':
			kind = token.Colon
		case ';':
			kind = token.Semicolon
		case ',':
			kind = token.Comma
		case '.':
			kind = token.Dot
		case '(':
			kind = token.LParen
		case ')':
			kind = token.RParen
		case '{':
			kind = token.LBrace
		case '}':
			kind = token.RBrace
		case '[':
			kind = token.LBracket
		case ']':
			kind = token.RBracket
		case '@':
			kind = token.At
		default:
			sp := lx.cursor.SpanFrom(start)
			lx.warnLex(diag.LexUnknownChar, sp, "unknown character "+lx.text(sp))
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
