package token

import "pseudo/internal/source"

// TriviaKind classifies whitespace and comments skipped between tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "space"
	case TriviaNewline:
		return "newline"
	case TriviaLineComment:
		return "line_comment"
	case TriviaBlockComment:
		return "block_comment"
	}
	return "unknown"
}

// Trivia is a non-semantic fragment attached to the following token.
// Line comments survive conversion; the transformer forwards them so the
// generator can re-emit them as pseudocode comments.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
