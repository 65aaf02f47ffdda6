package transform

import (
	"strings"

	"pseudo/internal/ast"
	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/ir"
	"pseudo/internal/symbols"
)

// callableInfo builds the scope record for a function, method, or
// constructor. Whether it is a FUNCTION or a PROCEDURE hangs entirely on
// the return type; constructors never carry one.
func (t *Transformer) callableInfo(fn *ast.Node) symbols.CallableInfo {
	info := symbols.CallableInfo{Name: fn.Value}
	for _, p := range paramsOf(fn) {
		info.Parameters = append(info.Parameters, symbols.ParameterInfo{
			Name:           p.Value,
			NormalizedType: t.paramType(p),
		})
	}
	if fn.Kind == ast.KindCtorDecl {
		return info
	}
	if t.lang == dialect.Java {
		if rt := fn.Attr.TypeText; rt != "" && rt != "void" {
			typ, _ := normalizeJavaType(rt, "")
			info.ReturnType = typ
		}
		return info
	}
	// JS: a function that returns a value anywhere is a FUNCTION
	if typ, returns := t.scanReturn(bodyOf(fn)); returns {
		if typ == "" {
			typ = typeString
		}
		info.ReturnType = typ
	}
	return info
}

func paramsOf(fn *ast.Node) []*ast.Node {
	if list := fn.Child(0); list != nil && list.Kind == ast.KindParamList {
		return list.Children
	}
	return nil
}

func bodyOf(fn *ast.Node) *ast.Node {
	return fn.Child(1)
}

func (t *Transformer) paramType(p *ast.Node) string {
	if p.Attr.TypeText != "" {
		typ, _ := normalizeJavaType(p.Attr.TypeText, "")
		return typ
	}
	return typeString
}

// scanReturn walks a body for return statements carrying a value and
// infers the returned type from the first literal-typed one.
func (t *Transformer) scanReturn(n *ast.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	returns := false
	typ := ""
	var walk func(*ast.Node)
	walk = func(node *ast.Node) {
		if node == nil {
			return
		}
		// nested function literals keep their own returns
		if node.Kind == ast.KindArrow || node.Kind == ast.KindFuncDecl {
			return
		}
		if node.Kind == ast.KindReturn && len(node.Children) > 0 {
			returns = true
			if typ == "" {
				typ = t.inferType(node.Child(0))
			}
		}
		for _, c := range node.Children {
			walk(c)
		}
	}
	walk(n)
	return typ, returns
}

// lowerFunc lowers a function or method declaration to a PROCEDURE or
// FUNCTION block.
func (t *Transformer) lowerFunc(n *ast.Node, out *ir.Node) {
	info := t.callableInfo(n)
	t.table.DeclareCallable(info)
	t.dropModifiers(n)

	kind := ir.KindProcedure
	if info.IsFunction() {
		kind = ir.KindFunction
	}
	node := ir.New(kind).
		Set(ir.MetaName, info.Name).
		Set(ir.MetaParams, renderParams(info.Parameters))
	if info.IsFunction() {
		node.Set(ir.MetaReturns, info.ReturnType)
		if t.lang == dialect.JavaScript {
			// parameter and return types are guesses for JS
			t.warnOnce(diag.ConvTypeFallback, n.Span,
				"parameter and return types of '"+info.Name+"' are inferred; review declarations")
		}
	}
	node.Add(t.lowerCallableBody(n, info))
	out.Add(node)
}

// lowerCtor lowers a constructor as a procedure named after its class.
func (t *Transformer) lowerCtor(n *ast.Node, className string, out *ir.Node) {
	info := t.callableInfo(n)
	if className != "" {
		info.Name = className
	}
	t.table.DeclareCallable(info)
	t.dropModifiers(n)
	t.info(diag.ConvConstructSimplified, n.Span,
		"constructor '"+info.Name+"' converted to a procedure")

	node := ir.New(ir.KindProcedure).
		Set(ir.MetaName, info.Name).
		Set(ir.MetaParams, renderParams(info.Parameters))
	node.Annotate("constructor of " + info.Name)
	node.Add(t.lowerCallableBody(n, info))
	out.Add(node)
}

func (t *Transformer) lowerCallableBody(fn *ast.Node, info symbols.CallableInfo) *ir.Node {
	t.table.EnterScope(symbols.ScopeFunction)
	for _, p := range info.Parameters {
		t.table.DeclareVariable(symbols.VariableInfo{
			Name:           p.Name,
			NormalizedType: p.NormalizedType,
		})
	}
	block := ir.New(ir.KindBlock)
	body := bodyOf(fn)
	if body != nil && body.Kind == ast.KindBlock {
		for _, c := range body.Children {
			t.lowerStmt(c, block)
		}
	} else if body != nil && !body.IsEmpty() {
		t.lowerStmt(body, block)
	}
	t.exitScope(fn.Span)
	return block
}

func renderParams(params []symbols.ParameterInfo) string {
	var parts []string
	for _, p := range params {
		parts = append(parts, p.Name+" : "+p.NormalizedType)
	}
	return strings.Join(parts, ", ")
}

func (t *Transformer) dropModifiers(n *ast.Node) {
	for _, m := range n.Attr.Mods {
		t.info(diag.ConvModifierDropped, n.Span,
			"modifier '"+m+"' dropped for '"+n.Value+"'")
	}
}

// lowerClass flattens a class: fields become top-level declarations,
// constructors and methods become procedures and functions.
func (t *Transformer) lowerClass(n *ast.Node, out *ir.Node) {
	what := n.Attr.DeclKw
	if what == "" {
		what = "class"
	}
	t.warn(diag.ConvConstructSimplified, n.Span,
		what+" '"+n.Value+"' flattened: fields become declarations, methods become procedures/functions")
	t.dropModifiers(n)

	head := ir.NewText(ir.KindComment, what+" "+n.Value)
	if n.Attr.TypeText != "" {
		head.Annotate("extends " + n.Attr.TypeText + ": inheritance dropped")
		t.warn(diag.ConvConstructSimplified, n.Span,
			"inheritance from '"+n.Attr.TypeText+"' cannot be expressed; base members are not included")
	}
	out.Add(head)

	// Fields go into the enclosing scope, not a class scope of their own:
	// the output flattens them to ordinary declarations, so code after the
	// class must resolve them too. Methods are lowered afterwards so their
	// bodies see the fields.
	for _, member := range n.Children {
		if member.Kind == ast.KindFieldDecl {
			t.lowerVarDecl(member, out)
		}
	}
	for _, member := range n.Children {
		switch member.Kind {
		case ast.KindCtorDecl:
			t.lowerCtor(member, n.Value, out)
		case ast.KindMethodDecl:
			t.lowerFunc(member, out)
		case ast.KindClassDecl:
			t.lowerClass(member, out)
		}
	}
}
