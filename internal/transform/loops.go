package transform

import (
	"strconv"

	"pseudo/internal/ast"
	"pseudo/internal/diag"
	"pseudo/internal/ir"
	"pseudo/internal/symbols"
)

// forLoop is a counting loop recognized in FOR..TO form.
type forLoop struct {
	variable string
	from     string
	to       string
	step     string
	shifted  bool // loop variable rebased to 1-based indexing
}

func (t *Transformer) lowerFor(n *ast.Node, out *ir.Node) {
	init, cond, post, body := n.Child(0), n.Child(1), n.Child(2), n.Child(3)

	if loop, ok := t.canonicalFor(init, cond, post); ok {
		node := ir.New(ir.KindFor).
			Set(ir.MetaVar, loop.variable).
			Set(ir.MetaFrom, loop.from).
			Set(ir.MetaTo, loop.to)
		if loop.step != "" {
			node.Set(ir.MetaStep, loop.step)
		}
		t.table.EnterScope(symbols.ScopeBlock)
		t.table.DeclareVariable(symbols.VariableInfo{
			Name: loop.variable, NormalizedType: typeInteger,
		})
		if loop.shifted {
			t.shifted[loop.variable]++
		}
		node.Add(t.lowerBody(body))
		if loop.shifted {
			t.shifted[loop.variable]--
		}
		t.exitScope(n.Span)
		out.Add(node)
		return
	}

	// Anything non-canonical degrades to a WHILE with the post-step at the
	// end of the body.
	t.warn(diag.ConvLoopRewritten, n.Span,
		"for loop does not fit FOR..TO form; rewritten as WHILE")
	t.table.EnterScope(symbols.ScopeBlock)
	t.lowerStmt(init, out)
	condText := "TRUE"
	if cond != nil && cond.Kind != ast.KindEmpty {
		condText = t.render(cond).text
	}
	node := ir.New(ir.KindWhile).Set(ir.MetaCond, condText)
	block := t.lowerBody(body)
	if post != nil && post.Kind != ast.KindEmpty {
		t.lowerStmt(post, block)
	}
	node.Add(block)
	t.exitScope(n.Span)
	out.Add(node)
}

// canonicalFor recognizes `for (v = a; v < b; v++)` shapes, settling loop
// bounds in 1-based terms. `i < 5` becomes TO 4; a zero start with a
// length-call bound becomes 1 TO LENGTH(x) and marks the variable shifted
// so its index uses stay untouched.
func (t *Transformer) canonicalFor(init, cond, post *ast.Node) (forLoop, bool) {
	var loop forLoop

	var start *ast.Node
	switch {
	case init != nil && init.Kind == ast.KindVarDecl && len(init.Children) == 1:
		loop.variable = init.Value
		start = init.Child(0)
	case init != nil && init.Kind == ast.KindExprStmt &&
		init.Child(0).Kind == ast.KindAssign && init.Child(0).Attr.Op == "=" &&
		init.Child(0).Child(0).Kind == ast.KindIdent:
		loop.variable = init.Child(0).Child(0).Value
		start = init.Child(0).Child(1)
	default:
		return loop, false
	}

	if cond == nil || cond.Kind != ast.KindBinary {
		return loop, false
	}
	if lhs := cond.Child(0); lhs.Kind != ast.KindIdent || lhs.Value != loop.variable {
		return loop, false
	}
	step, ok := stepOf(post, loop.variable)
	if !ok || step == 0 {
		return loop, false
	}

	bound := cond.Child(1)
	op := cond.Attr.Op
	switch {
	case step > 0 && op == "<":
		if name, ok := t.lengthBound(bound); ok && isZeroLiteral(start) {
			loop.from = "1"
			loop.to = "LENGTH(" + name + ")"
			loop.shifted = true
			t.info(diag.ConvIndexAdjusted, cond.Span,
				"loop over '"+name+"' rebased to 1..LENGTH("+name+")")
		} else {
			loop.from = t.render(start).text
			loop.to = t.offsetBound(bound, -1)
		}
	case step > 0 && op == "<=":
		loop.from = t.render(start).text
		loop.to = t.render(bound).text
	case step < 0 && op == ">":
		loop.from = t.render(start).text
		loop.to = t.offsetBound(bound, 1)
	case step < 0 && op == ">=":
		loop.from = t.render(start).text
		loop.to = t.render(bound).text
	default:
		return loop, false
	}
	if step != 1 {
		loop.step = strconv.Itoa(step)
	}
	return loop, true
}

// offsetBound renders a loop bound shifted by delta, folding literals.
func (t *Transformer) offsetBound(bound *ast.Node, delta int) string {
	if bound.Kind == ast.KindIntLit {
		if v, err := strconv.Atoi(cleanNumber(bound.Value)); err == nil {
			return strconv.Itoa(v + delta)
		}
	}
	r := t.render(bound)
	text := r.text
	if r.prec < precAdd {
		text = "(" + text + ")"
	}
	if delta < 0 {
		return text + " - " + strconv.Itoa(-delta)
	}
	return text + " + " + strconv.Itoa(delta)
}

// lengthBound recognizes arr.length, arr.length(), and arr.size() bounds
// over a plain identifier.
func (t *Transformer) lengthBound(bound *ast.Node) (string, bool) {
	m := bound
	if bound != nil && bound.Kind == ast.KindCall {
		m = bound.Child(0)
	}
	if m == nil || m.Kind != ast.KindMember {
		return "", false
	}
	if m.Value != "length" && m.Value != "size" {
		return "", false
	}
	obj := m.Child(0)
	if obj == nil || obj.Kind != ast.KindIdent {
		return "", false
	}
	return obj.Value, true
}

func isZeroLiteral(n *ast.Node) bool {
	return n != nil && n.Kind == ast.KindIntLit && cleanNumber(n.Value) == "0"
}

// stepOf extracts the per-iteration delta of the loop variable from the
// post expression: ++/--, += k, -= k, or v = v ± k.
func stepOf(post *ast.Node, variable string) (int, bool) {
	if post == nil {
		return 0, false
	}
	expr := post
	if expr.Kind == ast.KindExprStmt {
		expr = expr.Child(0)
	}
	if expr == nil {
		return 0, false
	}
	targetIs := func(n *ast.Node) bool {
		return n != nil && n.Kind == ast.KindIdent && n.Value == variable
	}
	switch expr.Kind {
	case ast.KindUpdate:
		if !targetIs(expr.Child(0)) {
			return 0, false
		}
		if expr.Attr.Op == "++" {
			return 1, true
		}
		return -1, true
	case ast.KindAssign:
		if !targetIs(expr.Child(0)) {
			return 0, false
		}
		switch expr.Attr.Op {
		case "+=":
			if v, err := literalInt(expr.Child(1)); err == nil {
				return v, true
			}
		case "-=":
			if v, err := literalInt(expr.Child(1)); err == nil {
				return -v, true
			}
		case "=":
			value := expr.Child(1)
			if value.Kind == ast.KindBinary && targetIs(value.Child(0)) {
				if v, err := literalInt(value.Child(1)); err == nil {
					switch value.Attr.Op {
					case "+":
						return v, true
					case "-":
						return -v, true
					}
				}
			}
		}
	}
	return 0, false
}

// lowerForEach rewrites a for-each loop as an index loop over
// 1..LENGTH(iterable) with the element read as the first body line.
func (t *Transformer) lowerForEach(n *ast.Node, out *ir.Node) {
	iterable := t.render(n.Child(0))
	elem := n.Value
	idx := elem + "Index"

	elemType, ok := isArrayType(iterable.typ)
	if !ok {
		elemType = typeString
		t.warn(diag.ConvTypeFallback, n.Span,
			"element type of '"+iterable.text+"' is unknown; '"+elem+"' defaults to STRING")
	}
	t.info(diag.ConvLoopRewritten, n.Span,
		"for-each rewritten as an index loop over 1..LENGTH("+iterable.text+")")

	out.Add(ir.NewText(ir.KindDeclare, "DECLARE "+elem+" : "+elemType))
	node := ir.New(ir.KindFor).
		Set(ir.MetaVar, idx).
		Set(ir.MetaFrom, "1").
		Set(ir.MetaTo, "LENGTH("+iterable.text+")")

	t.table.EnterScope(symbols.ScopeBlock)
	t.table.DeclareVariable(symbols.VariableInfo{Name: idx, NormalizedType: typeInteger})
	t.table.DeclareVariable(symbols.VariableInfo{Name: elem, NormalizedType: elemType})
	t.shifted[idx]++

	block := ir.New(ir.KindBlock)
	block.Add(ir.NewText(ir.KindAssign, elem+" ← "+iterable.text+"["+idx+"]"))
	body := n.Child(1)
	if body != nil && body.Kind == ast.KindBlock {
		for _, c := range body.Children {
			t.lowerStmt(c, block)
		}
	} else {
		t.lowerStmt(body, block)
	}
	node.Add(block)

	t.shifted[idx]--
	t.exitScope(n.Span)
	out.Add(node)
}
