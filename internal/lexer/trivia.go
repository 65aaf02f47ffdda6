package lexer

import (
	"pseudo/internal/diag"
	"pseudo/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token:
//   - runs of spaces/tabs coalesce into one TriviaSpace
//   - runs of newlines coalesce into one TriviaNewline
//   - "//... \n" becomes TriviaLineComment (comment text without the slashes)
//   - "/* ... */" becomes TriviaBlockComment; unterminated ones are reported
//     and clipped at EOF
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		if b == '\n' || b == '\r' {
			for lx.cursor.Peek() == '\n' || lx.cursor.Peek() == '\r' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		break
	}
}

// scanCommentIntoHold scans "//" and "/* */" comments into hold.
// Returns false if the '/' was not a comment starter (it is then an
// operator for the main loop to handle).
func (lx *Lexer) scanCommentIntoHold() bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return false
	}

	switch b1 {
	case '/':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.cursor.Bump()
		textStart := lx.cursor.Mark()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		textSpan := lx.cursor.SpanFrom(textStart)
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaLineComment,
			Span: lx.cursor.SpanFrom(start),
			Text: lx.text(textSpan),
		})
		return true

	case '*':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if lx.try2('*', '/') {
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.errLex(diag.LexUnterminatedComment, sp, "unterminated block comment")
		}
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaBlockComment,
			Span: sp,
			Text: lx.text(sp),
		})
		return true
	}

	return false
}
