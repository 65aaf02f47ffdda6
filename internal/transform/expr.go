package transform

import (
	"strings"

	"pseudo/internal/ast"
	"pseudo/internal/diag"
)

// rendered is one expression rendered to pseudocode text, together with
// the inferred type and the precedence of its outermost operator so the
// parent can decide on parentheses.
type rendered struct {
	text string
	typ  string
	prec int
}

// Pseudocode operator precedence, loosest first. Atoms use precAtom.
const (
	precOr      = 1
	precAnd     = 2
	precNot     = 3
	precCompare = 4
	precConcat  = 5
	precAdd     = 6
	precMul     = 7
	precPow     = 8
	precNeg     = 9
	precAtom    = 10
)

func atom(text, typ string) rendered {
	return rendered{text: text, typ: typ, prec: precAtom}
}

// names that resolve outside the user's program and never count as
// undeclared references
var wellKnownNames = map[string]bool{
	"console": true, "Math": true, "System": true, "document": true,
	"window": true, "JSON": true, "Object": true, "Array": true,
	"String": true, "Number": true, "Integer": true, "Double": true,
	"undefined": true, "NaN": true, "Infinity": true,
}

// render converts an expression subtree to pseudocode text.
func (t *Transformer) render(n *ast.Node) rendered {
	if n == nil || n.Kind == ast.KindEmpty {
		return atom("", "")
	}
	switch n.Kind {
	case ast.KindIntLit:
		return atom(cleanNumber(n.Value), typeInteger)
	case ast.KindFloatLit:
		return atom(cleanNumber(n.Value), typeReal)
	case ast.KindStringLit:
		return atom(`"`+stringBody(n.Value)+`"`, typeString)
	case ast.KindCharLit:
		return atom(n.Value, typeChar)
	case ast.KindBoolLit:
		return atom(strings.ToUpper(n.Value), typeBoolean)
	case ast.KindNullLit:
		return atom(`""`, "")
	case ast.KindTemplateLit:
		return t.renderTemplate(n)
	case ast.KindIdent:
		return t.renderIdent(n)
	case ast.KindThis:
		return atom("", "")
	case ast.KindBinary:
		return t.renderBinary(n)
	case ast.KindUnary:
		return t.renderUnary(n)
	case ast.KindUpdate:
		return t.renderUpdateExpr(n)
	case ast.KindAssign:
		// assignment in expression position degrades to the value
		t.info(diag.ConvConstructSimplified, n.Span,
			"assignment inside an expression reads as its value")
		return t.render(n.Child(1))
	case ast.KindTernary:
		return t.renderTernary(n)
	case ast.KindCall:
		return t.renderCall(n)
	case ast.KindMember:
		return t.renderMember(n)
	case ast.KindIndex:
		return t.renderIndex(n)
	case ast.KindNew:
		return t.renderNew(n)
	case ast.KindArrayLit:
		var parts []string
		for _, el := range n.Children {
			parts = append(parts, t.render(el).text)
		}
		return atom("["+strings.Join(parts, ", ")+"]", t.inferType(n))
	case ast.KindArrow:
		t.info(diag.ConvConstructSimplified, n.Span,
			"arrow function in expression position cannot be converted")
		return atom(`"<function>"`, "")
	case ast.KindUnsupported:
		return atom(strings.TrimSpace(n.Value), "")
	default:
		return atom("", "")
	}
}

func (t *Transformer) renderIdent(n *ast.Node) rendered {
	name := n.Value
	if info, ok := t.table.LookupVariable(name); ok {
		return atom(name, info.NormalizedType)
	}
	if _, ok := t.table.LookupCallable(name); ok {
		return atom(name, "")
	}
	if !wellKnownNames[name] && !t.undeclared[name] {
		t.undeclared[name] = true
		t.info(diag.ConvUndeclaredName, n.Span,
			"'"+name+"' is used but never declared")
	}
	return atom(name, "")
}

func (t *Transformer) renderBinary(n *ast.Node) rendered {
	left := t.render(n.Child(0))
	right := t.render(n.Child(1))

	op, prec := pseudoBinaryOp(n.Attr.Op, left, right)
	if op == "" {
		// no pseudocode operator exists; keep the source spelling
		t.warnOnce(diag.ConvMethodNoEquivalent, n.Span,
			"operator '"+n.Attr.Op+"' has no pseudocode equivalent")
		op, prec = n.Attr.Op, precCompare
	}
	lt := parenthesize(left, prec, false)
	rt := parenthesize(right, prec, true)
	return rendered{
		text: lt + " " + op + " " + rt,
		typ:  t.inferBinaryType(n),
		prec: prec,
	}
}

// pseudoBinaryOp maps a source operator to its pseudocode spelling and
// precedence. String-shaped '+' becomes concatenation.
func pseudoBinaryOp(op string, left, right rendered) (string, int) {
	switch op {
	case "==", "===":
		return "=", precCompare
	case "!=", "!==":
		return "<>", precCompare
	case "<", "<=", ">", ">=":
		return op, precCompare
	case "&&":
		return "AND", precAnd
	case "||":
		return "OR", precOr
	case "%":
		return "MOD", precMul
	case "**":
		return "^", precPow
	case "+":
		if left.typ == typeString || right.typ == typeString {
			return "&", precConcat
		}
		return "+", precAdd
	case "-":
		return "-", precAdd
	case "*":
		return "*", precMul
	case "/":
		if left.typ == typeInteger && right.typ == typeInteger {
			return "DIV", precMul
		}
		return "/", precMul
	default:
		return "", 0
	}
}

func parenthesize(r rendered, parentPrec int, rightSide bool) string {
	if r.prec < parentPrec || (rightSide && r.prec == parentPrec && parentPrec >= precAdd && parentPrec < precAtom) {
		return "(" + r.text + ")"
	}
	return r.text
}

func (t *Transformer) renderUnary(n *ast.Node) rendered {
	operand := t.render(n.Child(0))
	switch n.Attr.Op {
	case "!":
		return rendered{
			text: "NOT " + parenthesize(operand, precNot, false),
			typ:  typeBoolean,
			prec: precNot,
		}
	case "-":
		return rendered{
			text: "-" + parenthesize(operand, precNeg, false),
			typ:  operand.typ,
			prec: precNeg,
		}
	case "+":
		return operand
	default:
		t.warnOnce(diag.ConvMethodNoEquivalent, n.Span,
			"operator '"+n.Attr.Op+"' has no pseudocode equivalent")
		return rendered{text: n.Attr.Op + " " + operand.text, typ: "", prec: precNot}
	}
}

// renderUpdateExpr handles i++ used inside a larger expression, where the
// side effect cannot be kept.
func (t *Transformer) renderUpdateExpr(n *ast.Node) rendered {
	operand := t.render(n.Child(0))
	t.info(diag.ConvConstructSimplified, n.Span,
		"increment/decrement inside an expression reads as the variable")
	return operand
}

func (t *Transformer) renderTernary(n *ast.Node) rendered {
	// no conditional expression exists; the caller should have split this
	// into an IF statement, so inline rendering names all three parts
	cond := t.render(n.Child(0))
	then := t.render(n.Child(1))
	alt := t.render(n.Child(2))
	t.info(diag.ConvConstructSimplified, n.Span,
		"conditional expression flattened; review manually")
	return rendered{
		text: "(" + cond.text + " ? " + then.text + " : " + alt.text + ")",
		typ:  then.typ,
		prec: precAtom,
	}
}

// renderMember handles non-call member reads: arr.length, this.x, obj.prop.
func (t *Transformer) renderMember(n *ast.Node) rendered {
	obj := n.Child(0)
	if obj != nil && obj.Kind == ast.KindThis {
		// inside a flattened class, this.x reads as the field name
		return t.renderIdent(ast.NewValue(ast.KindIdent, n.Span, n.Value))
	}
	base := t.render(obj)
	if n.Value == "length" {
		t.info(diag.ConvIndexAdjusted, n.Span, "'.length' reads as LENGTH()")
		return rendered{text: "LENGTH(" + base.text + ")", typ: typeInteger, prec: precAtom}
	}
	return atom(base.text+"."+n.Value, "")
}

func (t *Transformer) renderNew(n *ast.Node) rendered {
	var args []string
	for _, a := range n.Children {
		if a.Kind == ast.KindArrayLit {
			continue
		}
		args = append(args, t.render(a).text)
	}
	t.info(diag.ConvConstructSimplified, n.Span,
		"'new "+n.Value+"' reads as a procedure call")
	return atom(n.Value+"("+strings.Join(args, ", ")+")", "")
}

// cleanNumber strips Java numeric suffixes and '_' separators.
func cleanNumber(text string) string {
	text = strings.ReplaceAll(text, "_", "")
	return strings.TrimRight(text, "fFdDlL")
}

// stringBody strips the source quotes, keeping escapes as written.
func stringBody(lit string) string {
	if len(lit) >= 2 {
		switch lit[0] {
		case '"', '\'', '`':
			if lit[len(lit)-1] == lit[0] {
				return lit[1 : len(lit)-1]
			}
			return lit[1:]
		}
	}
	return lit
}
