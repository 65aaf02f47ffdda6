package parser

import "pseudo/internal/token"

// Binary operator precedence, higher binds tighter. Shared across both
// dialects; dialect-only operators simply never appear in the other
// language's token stream.
const (
	precNullish        = 1  // ??
	precLogicalOr      = 2  // ||
	precLogicalAnd     = 3  // &&
	precBitwiseOr      = 4  // |
	precBitwiseXor     = 5  // ^
	precBitwiseAnd     = 6  // &
	precEquality       = 7  // == != === !==
	precComparison     = 8  // < <= > >= instanceof in
	precShift          = 9  // << >> >>>
	precAdditive       = 10 // + -
	precMultiplicative = 11 // * / %
	precExponent       = 12 // ** (right associative)
)

// binaryPrec returns the precedence and right-associativity of a binary
// operator kind, or (-1, false) when the kind is not a binary operator.
func binaryPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.QuestionQuestion:
		return precNullish, false
	case token.OrOr:
		return precLogicalOr, false
	case token.AndAnd:
		return precLogicalAnd, false
	case token.Pipe:
		return precBitwiseOr, false
	case token.Caret:
		return precBitwiseXor, false
	case token.Amp:
		return precBitwiseAnd, false
	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq:
		return precEquality, false
	case token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.KwInstanceof, token.KwIn:
		return precComparison, false
	case token.Shl, token.Shr, token.Ushr:
		return precShift, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false
	case token.StarStar:
		return precExponent, true
	default:
		return -1, false
	}
}

// isUnaryStarter reports whether the kind can begin a prefix expression.
func isUnaryStarter(kind token.Kind) bool {
	switch kind {
	case token.Plus, token.Minus, token.Bang, token.Tilde,
		token.PlusPlus, token.MinusMinus, token.KwTypeof, token.KwAwait:
		return true
	default:
		return false
	}
}
