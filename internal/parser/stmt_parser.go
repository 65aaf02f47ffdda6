package parser

import (
	"pseudo/internal/ast"
	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/token"
)

// parseStatement dispatches on the first token. It returns a slice because
// one source statement can expand to several nodes (multi-declarator
// declarations). ok=false means the caller should resynchronize.
func (p *Parser) parseStatement() ([]*ast.Node, bool) {
	tok := p.peek(0)
	comments := leadingComments(tok)
	blank := hasBlankBefore(tok)

	stmts, ok := p.parseStatementInner()
	if ok && len(stmts) > 0 {
		stmts[0].Attr.Comments = comments
		stmts[0].Attr.BlankBefore = blank
	}
	return stmts, ok
}

func one(n *ast.Node) []*ast.Node {
	if n == nil {
		return nil
	}
	return []*ast.Node{n}
}

func (p *Parser) parseStatementInner() ([]*ast.Node, bool) {
	switch tok := p.peek(0); tok.Kind {
	case token.Semicolon:
		p.advance()
		return nil, true
	case token.LBrace:
		return one(p.parseBlock()), true
	case token.RBrace, token.RParen, token.RBracket:
		p.err(diag.SynStrayCloser, "unmatched '"+tok.Kind.String()+"'")
		p.advance()
		return nil, true
	case token.KwVar, token.KwLet, token.KwConst:
		decls, ok := p.parseJSVarDecl(false)
		return decls, ok
	case token.KwIf:
		return one(p.parseIf()), true
	case token.KwWhile:
		return one(p.parseWhile()), true
	case token.KwDo:
		return one(p.parseDoWhile()), true
	case token.KwFor:
		return one(p.parseFor()), true
	case token.KwSwitch:
		return one(p.parseSwitch()), true
	case token.KwBreak:
		p.advance()
		p.eat(token.Semicolon)
		return one(ast.New(ast.KindBreak, tok.Span)), true
	case token.KwContinue:
		p.advance()
		p.eat(token.Semicolon)
		return one(ast.New(ast.KindContinue, tok.Span)), true
	case token.KwReturn:
		return one(p.parseReturn()), true
	case token.KwFunction:
		return one(p.parseJSFunc()), true
	case token.KwClass:
		return one(p.parseClassDecl(nil)), true
	case token.KwImport, token.KwExport, token.KwPackage:
		return one(p.parseImportLike()), true
	case token.KwTry:
		return one(p.parseTry()), true
	case token.KwThrow:
		return one(p.parseThrow()), true
	case token.At:
		// Java annotation: skip @Name and an optional argument list.
		p.advance()
		if p.at(token.Ident) {
			p.advance()
		}
		if p.eat(token.LParen) {
			p.skipBalanced(token.LParen, token.RParen, tok.Span)
		}
		return nil, true
	case token.EOF:
		return nil, true
	}

	if p.peek(0).Kind.IsModifier() {
		return p.parseModified()
	}
	if p.lang == dialect.Java && p.looksLikeJavaDecl() {
		return p.parseJavaDeclStatement(nil)
	}
	return p.parseExprStatement()
}

// parseModified handles a modifier run (public static final ...) followed
// by a class or a Java declaration.
func (p *Parser) parseModified() ([]*ast.Node, bool) {
	var mods []string
	for p.peek(0).Kind.IsModifier() {
		mods = append(mods, p.advance().Text)
	}
	switch {
	case p.at(token.KwClass), p.at(token.KwInterface), p.at(token.KwEnum):
		return one(p.parseClassDecl(mods)), true
	case p.at(token.KwFunction):
		fn := p.parseJSFunc()
		if fn != nil {
			fn.Attr.Mods = mods
		}
		return one(fn), true
	case p.looksLikeJavaDecl() || p.peek(0).Kind.IsTypeKeyword():
		return p.parseJavaDeclStatement(mods)
	default:
		p.err(diag.SynUnexpectedToken, "expected declaration after modifiers")
		return nil, false
	}
}

// parseExprStatement parses an expression in statement position.
func (p *Parser) parseExprStatement() ([]*ast.Node, bool) {
	start := p.peek(0).Span
	expr := p.parseExpression()
	if expr == nil {
		p.err(diag.SynUnexpectedToken, "unexpected token '"+p.peek(0).Text+"'")
		return nil, false
	}
	p.eat(token.Semicolon)
	return one(ast.New(ast.KindExprStmt, start.Cover(expr.Span), expr)), true
}

// parseBlock parses a braced statement list with the nesting depth bound.
func (p *Parser) parseBlock() *ast.Node {
	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return ast.New(ast.KindBlock, p.diagnosticSpan())
	}
	if p.depth >= maxNestingDepth {
		p.report(diag.SynNestingTooDeep, diag.SevError, open.Span,
			"nesting exceeds the supported depth; block skipped")
		full := p.skipBalanced(token.LBrace, token.RBrace, open.Span)
		return ast.New(ast.KindBlock, full)
	}
	p.depth++
	defer func() { p.depth-- }()

	block := ast.New(ast.KindBlock, open.Span)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmts, ok := p.parseStatement()
		if !ok {
			p.resyncStatement()
			continue
		}
		block.Children = append(block.Children, stmts...)
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block")
	block.Span = open.Span.Cover(p.lastSpan)
	return block
}

// parseControlledBody parses a loop or branch body and always yields a
// block, wrapping a lone statement so later stages see one shape.
func (p *Parser) parseControlledBody() *ast.Node {
	if p.at(token.LBrace) {
		return p.parseBlock()
	}
	start := p.peek(0).Span
	stmts, ok := p.parseStatement()
	if !ok {
		p.resyncStatement()
	}
	block := ast.New(ast.KindBlock, start.Cover(p.lastSpan))
	block.Children = stmts
	return block
}

func (p *Parser) parseReturn() *ast.Node {
	kw := p.advance()
	if p.eat(token.Semicolon) || p.atOr(token.RBrace, token.EOF) {
		return ast.New(ast.KindReturn, kw.Span)
	}
	value := p.parseExpression()
	p.eat(token.Semicolon)
	n := ast.New(ast.KindReturn, kw.Span.Cover(p.lastSpan))
	if value != nil {
		n.Children = append(n.Children, value)
	}
	return n
}
