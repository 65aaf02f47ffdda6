package lexer

import (
	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/source"
)

// Options configure a single Lexer instance.
type Options struct {
	// Lang picks the keyword table and literal rules. JavaScript treats
	// single quotes as strings and backticks as template literals; Java
	// treats single quotes as char literals.
	Lang dialect.Kind
	// Reporter receives lexical diagnostics. May be nil: problems are then
	// dropped but lexing still continues.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevWarning, sp, msg, nil)
	}
}
