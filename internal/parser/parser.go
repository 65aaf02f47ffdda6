// Package parser turns a token stream into a positioned syntax tree.
//
// There is one parser for both input languages; the few places where the
// grammars diverge (declaration shape, for-each headers, string quoting)
// branch on the lexer's dialect. Parsing is total: every structural error
// is reported through the diag.Reporter and the parser resynchronizes and
// keeps going, so a tree always comes back, possibly with Unsupported or
// Empty placeholders inside.
package parser

import (
	"slices"

	"pseudo/internal/ast"
	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/lexer"
	"pseudo/internal/source"
	"pseudo/internal/token"
)

// maxNestingDepth bounds block recursion. Beyond it the parser skips the
// offending block and reports SynNestingTooDeep instead of recursing.
const maxNestingDepth = 256

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error cap has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Program *ast.Node
	Bag     *diag.Bag
}

// Parser holds per-file parse state.
type Parser struct {
	lx       *lexer.Lexer
	lang     dialect.Kind
	opts     Options
	queue    []token.Token // parser-level lookahead, fed from the lexer
	lastSpan source.Span
	depth    int
}

// ParseFile parses one file into a Program node. The lexer carries the
// file and dialect; diagnostics land in the options' reporter.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:       lx,
		lang:     lx.Lang(),
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
	program := p.parseProgram()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{Program: program, Bag: bag}
}

// peek returns the n-th upcoming token without consuming it.
func (p *Parser) peek(n int) token.Token {
	for len(p.queue) <= n {
		p.queue = append(p.queue, p.lx.Next())
	}
	return p.queue[n]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek(0).Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek(0).Kind)
}

func (p *Parser) parseProgram() *ast.Node {
	start := p.peek(0).Span
	program := ast.New(ast.KindProgram, start)
	for !p.at(token.EOF) {
		stmts, ok := p.parseStatement()
		if !ok {
			p.resyncStatement()
			continue
		}
		program.Children = append(program.Children, stmts...)
	}
	program.Span = start.Cover(p.lastSpan)
	if len(program.Children) == 0 {
		p.report(diag.SynEmptyProgram, diag.SevInfo, start, "no statements found in input")
	}
	return program
}

// resyncStatement recovers after a statement-level error: skip to the next
// semicolon, statement starter, or closing brace.
func (p *Parser) resyncStatement() {
	for !p.at(token.EOF) {
		k := p.peek(0).Kind
		if k == token.Semicolon {
			p.advance()
			return
		}
		if k == token.RBrace || isStatementStarter(k) {
			return
		}
		p.advance()
	}
}

// isStatementStarter reports whether k can begin a statement, used as a
// resynchronization anchor.
func isStatementStarter(k token.Kind) bool {
	switch k {
	case token.KwVar, token.KwLet, token.KwConst, token.KwIf, token.KwWhile,
		token.KwDo, token.KwFor, token.KwSwitch, token.KwBreak,
		token.KwContinue, token.KwReturn, token.KwFunction, token.KwClass,
		token.KwImport, token.KwExport, token.KwPackage, token.KwTry,
		token.KwThrow, token.KwPublic, token.KwPrivate, token.KwProtected,
		token.KwStatic, token.KwFinal, token.LBrace:
		return true
	default:
		return k.IsTypeKeyword()
	}
}
