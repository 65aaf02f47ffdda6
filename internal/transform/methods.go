package transform

import (
	"strconv"
	"strings"

	"pseudo/internal/ast"
	"pseudo/internal/diag"
)

func (t *Transformer) renderIndex(n *ast.Node) rendered {
	base := t.render(n.Child(0))
	idxText := t.shiftIndex(n.Child(1))
	typ := ""
	if elem, ok := isArrayType(base.typ); ok {
		typ = elem
	} else if base.typ == typeString {
		typ = typeChar
	}
	return rendered{text: base.text + "[" + idxText + "]", typ: typ, prec: precAtom}
}

// shiftIndex rewrites a 0-based index expression as 1-based text: literals
// shift by one, loop variables that were already rebased stay untouched,
// anything else gets "+ 1" appended.
func (t *Transformer) shiftIndex(idx *ast.Node) string {
	if idx == nil {
		return ""
	}
	if containsComplexIndex(idx) {
		t.warn(diag.ConvIndexManualReview, idx.Span,
			"index expression contains calls or nested subscripts; review the 1-based shift manually")
	}
	switch {
	case idx.Kind == ast.KindIntLit:
		if v, err := strconv.Atoi(cleanNumber(idx.Value)); err == nil {
			t.info(diag.ConvIndexAdjusted, idx.Span, "array index shifted to 1-based")
			return strconv.Itoa(v + 1)
		}
	case idx.Kind == ast.KindIdent && t.shifted[idx.Value] > 0:
		return idx.Value
	}
	r := t.render(idx)
	t.info(diag.ConvIndexAdjusted, idx.Span, "array index shifted to 1-based")
	text := r.text
	if r.prec < precAdd {
		text = "(" + text + ")"
	}
	return text + " + 1"
}

// containsComplexIndex reports whether an index expression nests calls or
// further subscripts, the cases where a mechanical +1 may be wrong.
func containsComplexIndex(n *ast.Node) bool {
	if n == nil {
		return false
	}
	if n.Kind == ast.KindCall || n.Kind == ast.KindIndex {
		return true
	}
	for _, c := range n.Children {
		if containsComplexIndex(c) {
			return true
		}
	}
	return false
}

func (t *Transformer) renderCall(n *ast.Node) rendered {
	callee := n.Child(0)
	if callee == nil {
		return atom("", "")
	}
	args := n.Children[1:]
	if callee.Kind == ast.KindMember {
		return t.renderMethodCall(n, callee, args)
	}
	if callee.Kind == ast.KindIdent {
		name := callee.Value
		if info, ok := t.table.LookupCallable(name); ok {
			return rendered{
				text: name + t.argList(args),
				typ:  normalizeReturn(info.ReturnType),
				prec: precAtom,
			}
		}
		t.renderIdent(callee) // records the undeclared reference
		return atom(name+t.argList(args), "")
	}
	base := t.render(callee)
	return atom(base.text+t.argList(args), "")
}

func (t *Transformer) argList(args []*ast.Node) string {
	var parts []string
	for _, a := range args {
		parts = append(parts, t.render(a).text)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// renderMethodCall applies the built-in method mapping table. Index-taking
// methods bake the 1-based shift into their arguments.
func (t *Transformer) renderMethodCall(n, callee *ast.Node, args []*ast.Node) rendered {
	obj := t.render(callee.Child(0))
	method := callee.Value

	arg := func(i int) rendered {
		if i < len(args) {
			return t.render(args[i])
		}
		return atom("", "")
	}

	switch method {
	case "length", "size":
		if len(args) == 0 {
			return rendered{text: "LENGTH(" + obj.text + ")", typ: typeInteger, prec: precAtom}
		}
	case "charAt":
		if len(args) == 1 {
			return rendered{
				text: "MID(" + obj.text + ", " + t.shiftIndex(args[0]) + ", 1)",
				typ:  typeChar, prec: precAtom,
			}
		}
	case "substring", "substr", "slice":
		return t.renderSubstring(obj, args)
	case "indexOf":
		if len(args) == 1 {
			t.info(diag.ConvIndexAdjusted, n.Span,
				"POSITION() returns a 1-based index where indexOf was 0-based")
			return rendered{text: "POSITION(" + obj.text + ", " + arg(0).text + ")", typ: typeInteger, prec: precAtom}
		}
	case "toUpperCase":
		return rendered{text: "UCASE(" + obj.text + ")", typ: typeString, prec: precAtom}
	case "toLowerCase":
		return rendered{text: "LCASE(" + obj.text + ")", typ: typeString, prec: precAtom}
	case "trim":
		return rendered{text: "TRIM(" + obj.text + ")", typ: typeString, prec: precAtom}
	case "includes", "contains":
		if len(args) == 1 {
			return rendered{text: "CONTAINS(" + obj.text + ", " + arg(0).text + ")", typ: typeBoolean, prec: precAtom}
		}
	case "startsWith":
		if len(args) == 1 {
			return rendered{text: "STARTSWITH(" + obj.text + ", " + arg(0).text + ")", typ: typeBoolean, prec: precAtom}
		}
	case "endsWith":
		if len(args) == 1 {
			return rendered{text: "ENDSWITH(" + obj.text + ", " + arg(0).text + ")", typ: typeBoolean, prec: precAtom}
		}
	case "equals", "equalsIgnoreCase":
		if len(args) == 1 {
			a := arg(0)
			return rendered{
				text: parenthesize(obj, precCompare, false) + " = " + parenthesize(a, precCompare, true),
				typ:  typeBoolean, prec: precCompare,
			}
		}
	case "concat":
		if len(args) == 1 {
			a := arg(0)
			return rendered{
				text: parenthesize(obj, precConcat, false) + " & " + parenthesize(a, precConcat, true),
				typ:  typeString, prec: precConcat,
			}
		}
	case "push", "add":
		if len(args) == 1 {
			return rendered{text: "APPEND(" + obj.text + ", " + arg(0).text + ")", typ: "", prec: precAtom}
		}
	}

	t.warnOnce(diag.ConvMethodNoEquivalent, n.Span,
		"method '"+method+"' has no direct pseudocode equivalent")
	return atom(obj.text+"."+method+t.argList(args), "")
}

// renderSubstring maps substring(a, b) to MID(s, a+1, b-a). A literal pair
// folds the length; anything else spells the subtraction out.
func (t *Transformer) renderSubstring(obj rendered, args []*ast.Node) rendered {
	if len(args) == 0 {
		return obj
	}
	start := t.shiftIndex(args[0])
	var length string
	if len(args) >= 2 {
		a, errA := literalInt(args[0])
		b, errB := literalInt(args[1])
		if errA == nil && errB == nil {
			length = strconv.Itoa(b - a)
		} else {
			length = t.render(args[1]).text + " - " + t.render(args[0]).text
		}
	} else {
		length = "LENGTH(" + obj.text + ") - " + t.render(args[0]).text
	}
	return rendered{
		text: "MID(" + obj.text + ", " + start + ", " + length + ")",
		typ:  typeString, prec: precAtom,
	}
}

func literalInt(n *ast.Node) (int, error) {
	if n.Kind != ast.KindIntLit {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(cleanNumber(n.Value))
}

// outputCallArgs recognizes print calls and returns their arguments.
func outputCallArgs(n *ast.Node) ([]*ast.Node, bool) {
	if n == nil || n.Kind != ast.KindCall {
		return nil, false
	}
	callee := n.Child(0)
	args := n.Children[1:]
	switch callee.Kind {
	case ast.KindIdent:
		switch callee.Value {
		case "print", "println", "alert":
			return args, true
		}
	case ast.KindMember:
		obj := callee.Child(0)
		switch callee.Value {
		case "log", "info", "warn", "error":
			if obj.Kind == ast.KindIdent && obj.Value == "console" {
				return args, true
			}
		case "print", "println", "printf":
			// System.out.print* and any *.out.print*
			if obj.Kind == ast.KindMember && obj.Value == "out" {
				return args, true
			}
		}
	}
	return nil, false
}

// inputCall recognizes read calls: Java Scanner next* methods and the JS
// prompt function. It returns the prompt-text argument when one exists.
func inputCall(n *ast.Node) (prompt *ast.Node, ok bool) {
	if n == nil || n.Kind != ast.KindCall {
		return nil, false
	}
	callee := n.Child(0)
	switch callee.Kind {
	case ast.KindIdent:
		if callee.Value == "prompt" || callee.Value == "readline" {
			if len(n.Children) > 1 {
				return n.Children[1], true
			}
			return nil, true
		}
	case ast.KindMember:
		switch callee.Value {
		case "next", "nextLine", "nextInt", "nextDouble", "nextFloat",
			"nextLong", "nextShort", "nextBoolean":
			return nil, true
		}
	}
	return nil, false
}

// inputCallType gives the read type for a recognized input call.
func inputCallType(n *ast.Node) string {
	callee := n.Child(0)
	if callee.Kind != ast.KindMember {
		return typeString
	}
	switch callee.Value {
	case "nextInt", "nextLong", "nextShort":
		return typeInteger
	case "nextDouble", "nextFloat":
		return typeReal
	case "nextBoolean":
		return typeBoolean
	default:
		return typeString
	}
}
