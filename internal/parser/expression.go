package parser

import (
	"pseudo/internal/ast"
	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/token"
)

// parseExpression is the entry point: assignment level, right associative,
// with the conditional (ternary) operator folded in below it.
func (p *Parser) parseExpression() *ast.Node {
	left := p.parseTernary()
	if left == nil {
		return nil
	}
	if p.peek(0).IsAssignOp() {
		op := p.advance()
		right := p.parseExpression()
		if right == nil {
			p.err(diag.SynExpectExpression, "expected expression after '"+op.Kind.String()+"'")
			right = ast.New(ast.KindEmpty, p.diagnosticSpan())
		}
		n := ast.New(ast.KindAssign, left.Span.Cover(right.Span), left, right)
		n.Attr.Op = op.Kind.String()
		return n
	}
	return left
}

func (p *Parser) parseTernary() *ast.Node {
	cond := p.parseBinary(0)
	if cond == nil || !p.at(token.Question) {
		return cond
	}
	p.advance()
	then := p.parseExpression()
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' in conditional expression"); !ok {
		return cond
	}
	alt := p.parseExpression()
	if then == nil || alt == nil {
		p.err(diag.SynExpectExpression, "incomplete conditional expression")
		return cond
	}
	return ast.New(ast.KindTernary, cond.Span.Cover(alt.Span), cond, then, alt)
}

// parseBinary is precedence climbing over the shared operator table.
func (p *Parser) parseBinary(minPrec int) *ast.Node {
	left := p.parseUnary()
	if left == nil {
		return nil
	}
	for {
		kind := p.peek(0).Kind
		prec, rightAssoc := binaryPrec(kind)
		if prec < 0 || prec < minPrec {
			return left
		}
		op := p.advance()
		next := prec + 1
		if rightAssoc {
			next = prec
		}
		right := p.parseBinary(next)
		if right == nil {
			p.err(diag.SynExpectExpression, "expected expression after '"+op.Kind.String()+"'")
			return left
		}
		n := ast.New(ast.KindBinary, left.Span.Cover(right.Span), left, right)
		n.Attr.Op = op.Kind.String()
		left = n
	}
}

func (p *Parser) parseUnary() *ast.Node {
	tok := p.peek(0)
	if tok.Kind == token.PlusPlus || tok.Kind == token.MinusMinus {
		op := p.advance()
		operand := p.parseUnary()
		if operand == nil {
			p.err(diag.SynExpectExpression, "expected operand after '"+op.Kind.String()+"'")
			return nil
		}
		n := ast.New(ast.KindUpdate, op.Span.Cover(operand.Span), operand)
		n.Attr.Op = op.Kind.String()
		n.Attr.Prefix = true
		return n
	}
	if isUnaryStarter(tok.Kind) {
		op := p.advance()
		operand := p.parseUnary()
		if operand == nil {
			p.err(diag.SynExpectExpression, "expected operand after '"+op.Kind.String()+"'")
			return nil
		}
		n := ast.New(ast.KindUnary, op.Span.Cover(operand.Span), operand)
		n.Attr.Op = op.Kind.String()
		return n
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary followed by any chain of calls, member
// accesses, subscripts, and postfix increments.
func (p *Parser) parsePostfix() *ast.Node {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}
	for {
		switch p.peek(0).Kind {
		case token.LParen:
			p.advance()
			args := p.parseArgs()
			call := ast.New(ast.KindCall, expr.Span.Cover(p.lastSpan), expr)
			call.Children = append(call.Children, args...)
			expr = call
		case token.Dot, token.QuestionDot:
			p.advance()
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected property name after '.'")
			if !ok {
				return expr
			}
			expr = ast.NewValue(ast.KindMember, expr.Span.Cover(name.Span), name.Text, expr)
		case token.LBracket:
			p.advance()
			index := p.parseExpression()
			if index == nil {
				p.err(diag.SynExpectExpression, "expected index expression")
				index = ast.New(ast.KindEmpty, p.diagnosticSpan())
			}
			p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close index")
			expr = ast.New(ast.KindIndex, expr.Span.Cover(p.lastSpan), expr, index)
		case token.PlusPlus, token.MinusMinus:
			op := p.advance()
			n := ast.New(ast.KindUpdate, expr.Span.Cover(op.Span), expr)
			n.Attr.Op = op.Kind.String()
			expr = n
		default:
			return expr
		}
	}
}

// parseArgs parses a comma-separated argument list after a consumed '('.
func (p *Parser) parseArgs() []*ast.Node {
	var args []*ast.Node
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			sp := p.advance().Span
			p.warnUnsupported(diag.SynUnsupportedSpread, sp,
				"spread argument has no pseudocode equivalent",
				"pass the elements as separate arguments")
		}
		arg := p.parseExpression()
		if arg == nil {
			break
		}
		args = append(args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close argument list")
	return args
}

func (p *Parser) parsePrimary() *ast.Node {
	tok := p.peek(0)
	switch tok.Kind {
	case token.Ident:
		if p.lang == dialect.JavaScript && p.peek(1).Kind == token.Arrow {
			return p.parseArrow()
		}
		p.advance()
		return ast.NewValue(ast.KindIdent, tok.Span, tok.Text)
	case token.IntLit:
		p.advance()
		return ast.NewValue(ast.KindIntLit, tok.Span, tok.Text)
	case token.FloatLit:
		p.advance()
		return ast.NewValue(ast.KindFloatLit, tok.Span, tok.Text)
	case token.StringLit:
		p.advance()
		return ast.NewValue(ast.KindStringLit, tok.Span, tok.Text)
	case token.CharLit:
		p.advance()
		return ast.NewValue(ast.KindCharLit, tok.Span, tok.Text)
	case token.TemplateLit:
		p.advance()
		return ast.NewValue(ast.KindTemplateLit, tok.Span, tok.Text)
	case token.KwTrue, token.KwFalse:
		p.advance()
		return ast.NewValue(ast.KindBoolLit, tok.Span, tok.Text)
	case token.KwNull:
		p.advance()
		return ast.NewValue(ast.KindNullLit, tok.Span, tok.Text)
	case token.KwThis:
		p.advance()
		return ast.New(ast.KindThis, tok.Span)
	case token.KwNew:
		return p.parseNew()
	case token.LParen:
		if p.lang == dialect.JavaScript && p.parenStartsArrow() {
			return p.parseArrow()
		}
		p.advance()
		inner := p.parseExpression()
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close grouping")
		if inner == nil {
			p.err(diag.SynExpectExpression, "empty parenthesized expression")
			return ast.New(ast.KindEmpty, tok.Span)
		}
		return inner
	case token.LBracket:
		return p.parseArrayLit()
	case token.LBrace:
		if p.lang == dialect.JavaScript {
			// Object literals have no pseudocode shape; keep the raw text.
			sp := p.advance().Span
			full := p.skipBalanced(token.LBrace, token.RBrace, sp)
			p.warnUnsupported(diag.SynUnsupportedDestructure, full,
				"object literal has no pseudocode equivalent",
				"use a separate variable for each field")
			return ast.NewValue(ast.KindUnsupported, full, p.textBetween(full))
		}
		// Java array initializer.
		return p.parseArrayInit()
	default:
		return nil
	}
}

// parseArrayLit parses a JS [a, b, c] literal.
func (p *Parser) parseArrayLit() *ast.Node {
	start := p.advance().Span // consume '['
	n := ast.New(ast.KindArrayLit, start)
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			sp := p.advance().Span
			p.warnUnsupported(diag.SynUnsupportedSpread, sp,
				"spread element has no pseudocode equivalent",
				"list the elements individually")
		}
		el := p.parseExpression()
		if el == nil {
			break
		}
		n.Children = append(n.Children, el)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close array literal")
	n.Span = start.Cover(p.lastSpan)
	return n
}

// parseArrayInit parses a Java { a, b, c } initializer.
func (p *Parser) parseArrayInit() *ast.Node {
	start := p.advance().Span // consume '{'
	n := ast.New(ast.KindArrayLit, start)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		el := p.parseExpression()
		if el == nil {
			break
		}
		n.Children = append(n.Children, el)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close array initializer")
	n.Span = start.Cover(p.lastSpan)
	return n
}

// parseNew parses `new Type(args)` and Java `new Type[size]` forms.
func (p *Parser) parseNew() *ast.Node {
	start := p.advance().Span // consume 'new'
	name, ok := p.typeName()
	if !ok {
		p.err(diag.SynExpectIdentifier, "expected type name after 'new'")
		return ast.New(ast.KindEmpty, start)
	}
	n := ast.NewValue(ast.KindNew, start, name)
	for p.at(token.LBracket) {
		p.advance()
		if p.at(token.RBracket) {
			p.advance()
			n.Attr.Dims = append(n.Attr.Dims, "")
			continue
		}
		dim := p.parseExpression()
		p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' in array creation")
		if dim != nil {
			n.Attr.Dims = append(n.Attr.Dims, p.textBetween(dim.Span))
		}
	}
	if p.eat(token.LParen) {
		args := p.parseArgs()
		n.Children = append(n.Children, args...)
	}
	if p.at(token.LBrace) {
		init := p.parseArrayInit()
		n.Children = append(n.Children, init)
	}
	n.Span = start.Cover(p.lastSpan)
	return n
}

// typeName consumes a type name: an identifier or primitive keyword,
// optionally dotted (java.util.Scanner).
func (p *Parser) typeName() (string, bool) {
	tok := p.peek(0)
	if tok.Kind != token.Ident && !tok.Kind.IsTypeKeyword() {
		return "", false
	}
	name := p.advance().Text
	for p.at(token.Dot) && p.peek(1).Kind == token.Ident {
		p.advance()
		name += "." + p.advance().Text
	}
	return name, true
}
