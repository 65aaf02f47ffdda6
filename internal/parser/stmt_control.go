package parser

import (
	"pseudo/internal/ast"
	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/source"
	"pseudo/internal/token"
)

func (p *Parser) parseIf() *ast.Node {
	kw := p.advance()
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'if'")
	cond := p.parseExpression()
	if cond == nil {
		p.err(diag.SynExpectExpression, "expected condition in 'if'")
		cond = ast.New(ast.KindEmpty, p.diagnosticSpan())
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition")
	then := p.parseControlledBody()

	n := ast.New(ast.KindIf, kw.Span, cond, then)
	if p.eat(token.KwElse) {
		var alt *ast.Node
		if p.at(token.KwIf) {
			// else-if chains nest: the else branch is a block holding the
			// next if.
			inner := p.parseIf()
			alt = ast.New(ast.KindBlock, inner.Span, inner)
		} else {
			alt = p.parseControlledBody()
		}
		n.Children = append(n.Children, alt)
	}
	n.Span = kw.Span.Cover(p.lastSpan)
	return n
}

func (p *Parser) parseWhile() *ast.Node {
	kw := p.advance()
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'while'")
	cond := p.parseExpression()
	if cond == nil {
		p.err(diag.SynExpectExpression, "expected condition in 'while'")
		cond = ast.New(ast.KindEmpty, p.diagnosticSpan())
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition")
	body := p.parseControlledBody()
	return ast.New(ast.KindWhile, kw.Span.Cover(p.lastSpan), cond, body)
}

func (p *Parser) parseDoWhile() *ast.Node {
	kw := p.advance()
	body := p.parseControlledBody()
	p.expect(token.KwWhile, diag.SynUnexpectedToken, "expected 'while' after do-body")
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'while'")
	cond := p.parseExpression()
	if cond == nil {
		p.err(diag.SynExpectExpression, "expected condition in 'do-while'")
		cond = ast.New(ast.KindEmpty, p.diagnosticSpan())
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition")
	p.eat(token.Semicolon)
	return ast.New(ast.KindDoWhile, kw.Span.Cover(p.lastSpan), body, cond)
}

func (p *Parser) parseFor() *ast.Node {
	kw := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynForBadHeader, "expected '(' after 'for'"); !ok {
		return ast.New(ast.KindFor, kw.Span,
			ast.New(ast.KindEmpty, kw.Span), ast.New(ast.KindEmpty, kw.Span),
			ast.New(ast.KindEmpty, kw.Span), p.parseControlledBody())
	}

	if loopVar, ok := p.forEachHeader(); ok {
		iterable := p.parseExpression()
		if iterable == nil {
			p.err(diag.SynForBadHeader, "expected iterable in for-each header")
			iterable = ast.New(ast.KindEmpty, p.diagnosticSpan())
		}
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for-each header")
		body := p.parseControlledBody()
		return ast.NewValue(ast.KindForEach, kw.Span.Cover(p.lastSpan), loopVar, iterable, body)
	}

	init := p.parseForInit()
	p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' after for-init")
	cond := ast.New(ast.KindEmpty, p.diagnosticSpan())
	if !p.at(token.Semicolon) {
		if c := p.parseExpression(); c != nil {
			cond = c
		}
	}
	p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' after for-condition")
	post := ast.New(ast.KindEmpty, p.diagnosticSpan())
	if !p.at(token.RParen) {
		if e := p.parseExpression(); e != nil {
			post = ast.New(ast.KindExprStmt, e.Span, e)
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for-header")
	body := p.parseControlledBody()
	return ast.New(ast.KindFor, kw.Span.Cover(p.lastSpan), init, cond, post, body)
}

// forEachHeader detects and consumes a for-each header up to the 'of' or
// ':' separator, returning the loop variable name. Called right after '('.
func (p *Parser) forEachHeader() (string, bool) {
	if p.lang == dialect.JavaScript {
		// (let|const|var)? ident of
		i := 0
		switch p.peek(0).Kind {
		case token.KwLet, token.KwConst, token.KwVar:
			i = 1
		}
		if p.peek(i).Kind == token.Ident && p.peek(i+1).Kind == token.KwOf {
			name := p.peek(i).Text
			for n := 0; n < i+2; n++ {
				p.advance()
			}
			return name, true
		}
		return "", false
	}
	// Java: Type ident :
	if typeEnd, ok := p.scanJavaType(0); ok {
		if p.peek(typeEnd).Kind == token.Ident && p.peek(typeEnd+1).Kind == token.Colon {
			name := p.peek(typeEnd).Text
			for n := 0; n < typeEnd+2; n++ {
				p.advance()
			}
			return name, true
		}
	}
	return "", false
}

func (p *Parser) parseForInit() *ast.Node {
	if p.at(token.Semicolon) {
		return ast.New(ast.KindEmpty, p.diagnosticSpan())
	}
	switch p.peek(0).Kind {
	case token.KwVar, token.KwLet, token.KwConst:
		decls, _ := p.parseJSVarDecl(true)
		return wrapInitDecls(decls, p.diagnosticSpan())
	}
	if p.lang == dialect.Java && p.looksLikeJavaDecl() {
		decls, _ := p.parseJavaVarDecl(nil, true)
		return wrapInitDecls(decls, p.diagnosticSpan())
	}
	expr := p.parseExpression()
	if expr == nil {
		return ast.New(ast.KindEmpty, p.diagnosticSpan())
	}
	return ast.New(ast.KindExprStmt, expr.Span, expr)
}

// wrapInitDecls folds a for-init declarator list into one node.
func wrapInitDecls(decls []*ast.Node, fallback source.Span) *ast.Node {
	switch len(decls) {
	case 0:
		return ast.New(ast.KindEmpty, fallback)
	case 1:
		return decls[0]
	default:
		block := ast.New(ast.KindBlock, decls[0].Span.Cover(decls[len(decls)-1].Span))
		block.Children = decls
		return block
	}
}

func (p *Parser) parseSwitch() *ast.Node {
	kw := p.advance()
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'switch'")
	subject := p.parseExpression()
	if subject == nil {
		p.err(diag.SynExpectExpression, "expected switch subject")
		subject = ast.New(ast.KindEmpty, p.diagnosticSpan())
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after switch subject")
	p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open switch body")

	n := ast.New(ast.KindSwitch, kw.Span, subject)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		switch p.peek(0).Kind {
		case token.KwCase:
			caseKw := p.advance()
			label := p.parseExpression()
			if label == nil {
				p.err(diag.SynExpectExpression, "expected case label")
				label = ast.New(ast.KindEmpty, p.diagnosticSpan())
			}
			p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after case label")
			clause := ast.New(ast.KindCaseClause, caseKw.Span, label)
			clause.Children = append(clause.Children, p.parseCaseBody()...)
			clause.Span = caseKw.Span.Cover(p.lastSpan)
			n.Children = append(n.Children, clause)
		case token.KwDefault:
			defKw := p.advance()
			p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after 'default'")
			clause := ast.New(ast.KindDefaultClause, defKw.Span)
			clause.Children = p.parseCaseBody()
			clause.Span = defKw.Span.Cover(p.lastSpan)
			n.Children = append(n.Children, clause)
		default:
			p.err(diag.SynUnexpectedToken, "expected 'case' or 'default' in switch body")
			p.resyncStatement()
			if p.atOr(token.RBrace, token.EOF) {
				break
			}
			p.advance()
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close switch body")
	n.Span = kw.Span.Cover(p.lastSpan)
	return n
}

// parseCaseBody collects statements until the next case label, default
// label, or the closing brace.
func (p *Parser) parseCaseBody() []*ast.Node {
	var out []*ast.Node
	for !p.atOr(token.KwCase, token.KwDefault, token.RBrace, token.EOF) {
		stmts, ok := p.parseStatement()
		if !ok {
			p.resyncStatement()
			continue
		}
		out = append(out, stmts...)
	}
	return out
}
