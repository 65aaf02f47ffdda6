// Package transform lowers a parsed syntax tree into the shared IR,
// consulting a scope table for types and resolution. This is the single
// stage where every conversion decision is made: type normalization,
// 0-based to 1-based index shifts, loop canonicalization, the method
// mapping table, and construct-to-comment rewrites. The IR that leaves
// this package is fully resolved; the generator only formats it.
package transform

import (
	"fmt"
	"sort"
	"strings"

	"pseudo/internal/ast"
	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/ir"
	"pseudo/internal/source"
	"pseudo/internal/symbols"
)

// Transformer carries per-conversion state. One transformer serves one
// syntax tree; nothing is retained between conversions.
type Transformer struct {
	lang       dialect.Kind
	table      *symbols.Table
	reporter   diag.Reporter
	shifted    map[string]int  // loop variables already rebased to 1
	undeclared map[string]bool // names reported undeclared, once each
	warned     map[string]bool // warnOnce memory
}

// Transform lowers a program tree to IR. Diagnostics go to the reporter;
// the result is always non-nil.
func Transform(program *ast.Node, lang dialect.Kind, reporter diag.Reporter) *ir.Node {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	t := &Transformer{
		lang:       lang,
		table:      symbols.NewTable(),
		reporter:   reporter,
		shifted:    map[string]int{},
		undeclared: map[string]bool{},
		warned:     map[string]bool{},
	}
	root := ir.New(ir.KindProgram)
	t.declarePass(program)
	for _, stmt := range program.Children {
		t.lowerStmt(stmt, root)
	}
	return root
}

// declarePass pre-registers top-level functions and classes so calls that
// appear before their declaration still resolve.
func (t *Transformer) declarePass(program *ast.Node) {
	for _, stmt := range program.Children {
		switch stmt.Kind {
		case ast.KindFuncDecl:
			t.table.DeclareCallable(t.callableInfo(stmt))
		case ast.KindClassDecl:
			for _, member := range stmt.Children {
				if member.Kind == ast.KindMethodDecl || member.Kind == ast.KindCtorDecl {
					t.table.DeclareCallable(t.callableInfo(member))
				}
			}
		}
	}
}

func (t *Transformer) info(code diag.Code, sp source.Span, msg string) {
	t.reporter.Report(code, diag.SevInfo, sp, msg, nil)
}

func (t *Transformer) warn(code diag.Code, sp source.Span, msg string) {
	t.reporter.Report(code, diag.SevWarning, sp, msg, nil)
}

// warnOnce suppresses repeats of the same warning text.
func (t *Transformer) warnOnce(code diag.Code, sp source.Span, msg string) {
	key := fmt.Sprintf("%d:%s", code, msg)
	if t.warned[key] {
		return
	}
	t.warned[key] = true
	t.warn(code, sp, msg)
}

// statementUndeclared reports the names collected while rendering one
// statement, formatted for MetaUndeclared.
func (t *Transformer) statementUndeclared(before int) string {
	if len(t.undeclared) == before {
		return ""
	}
	names := make([]string, 0, len(t.undeclared))
	for name := range t.undeclared {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// lowerStmt appends the IR for one statement to out.
func (t *Transformer) lowerStmt(n *ast.Node, out *ir.Node) {
	if n == nil || n.Kind == ast.KindEmpty {
		return
	}
	first := len(out.Children)
	if n.Attr.BlankBefore {
		out.Add(ir.New(ir.KindBlank))
	}
	for _, c := range n.Attr.Comments {
		out.Add(ir.NewText(ir.KindComment, strings.TrimSpace(c)))
	}

	before := len(t.undeclared)
	switch n.Kind {
	case ast.KindBlock:
		t.table.EnterScope(symbols.ScopeBlock)
		for _, c := range n.Children {
			t.lowerStmt(c, out)
		}
		t.exitScope(n.Span)
	case ast.KindVarDecl, ast.KindFieldDecl:
		t.lowerVarDecl(n, out)
	case ast.KindExprStmt:
		t.lowerExprStmt(n.Child(0), out)
	case ast.KindIf:
		t.lowerIf(n, out)
	case ast.KindWhile:
		t.lowerWhile(n, out)
	case ast.KindDoWhile:
		t.lowerDoWhile(n, out)
	case ast.KindFor:
		t.lowerFor(n, out)
	case ast.KindForEach:
		t.lowerForEach(n, out)
	case ast.KindSwitch:
		t.lowerSwitch(n, out)
	case ast.KindReturn:
		t.lowerReturn(n, out)
	case ast.KindBreak:
		node := ir.NewText(ir.KindComment, "break")
		node.Annotate("no pseudocode equivalent for break; control flow needs manual review")
		t.info(diag.ConvConstructSimplified, n.Span, "'break' converted to a comment")
		out.Add(node)
	case ast.KindContinue:
		node := ir.NewText(ir.KindComment, "continue")
		node.Annotate("no pseudocode equivalent for continue; control flow needs manual review")
		t.info(diag.ConvConstructSimplified, n.Span, "'continue' converted to a comment")
		out.Add(node)
	case ast.KindFuncDecl, ast.KindMethodDecl:
		t.lowerFunc(n, out)
	case ast.KindCtorDecl:
		t.lowerCtor(n, "", out)
	case ast.KindClassDecl:
		t.lowerClass(n, out)
	case ast.KindImport:
		node := ir.NewText(ir.KindComment, strings.TrimSpace(n.Value))
		node.Annotate("kept as a comment: no pseudocode equivalent")
		out.Add(node)
	case ast.KindTry:
		t.lowerTry(n, out)
	case ast.KindThrow:
		value := t.render(n.Child(0))
		node := ir.NewText(ir.KindComment, "throws "+value.text)
		node.Annotate("exception raising has no pseudocode equivalent")
		t.info(diag.ConvConstructSimplified, n.Span, "'throw' converted to a comment")
		out.Add(node)
	case ast.KindUnsupported:
		node := ir.NewText(ir.KindComment, condenseWhitespace(n.Value))
		node.Annotate("kept as a comment: construct could not be converted")
		out.Add(node)
	default:
		// expressions in statement position land here via damage recovery
		if r := t.render(n); r.text != "" {
			out.Add(ir.NewText(ir.KindComment, r.text))
		}
	}

	if names := t.statementUndeclared(before); names != "" && len(out.Children) > first {
		out.Children[first].Set(ir.MetaUndeclared, names)
	}
}

// exitScope pops a scope, reporting the defect if the stack is already at
// the global scope.
func (t *Transformer) exitScope(sp source.Span) {
	if !t.table.ExitScope() {
		t.warn(diag.ConvScopeUnderflow, sp, "scope tracking underflow; resolution may be off")
	}
}

func (t *Transformer) lowerVarDecl(n *ast.Node, out *ir.Node) {
	name := n.Value
	init := n.Child(0)

	isConst := n.Attr.DeclKw == "const"
	for _, m := range n.Attr.Mods {
		if m == "final" {
			isConst = true
		}
		if m == "static" || m == "public" || m == "private" || m == "protected" {
			t.info(diag.ConvModifierDropped, n.Span, "modifier '"+m+"' dropped for '"+name+"'")
		}
	}

	typ := t.declaredType(n, init)
	if typ == scannerType {
		t.table.DeclareVariable(symbols.VariableInfo{Name: name, NormalizedType: scannerType})
		node := ir.NewText(ir.KindComment, "'"+name+"' reads user input; its reads become INPUT statements")
		t.info(diag.ConvConstructSimplified, n.Span, "input reader '"+name+"' replaced by INPUT statements")
		out.Add(node)
		return
	}

	_, isArr := isArrayType(typ)
	t.table.DeclareVariable(symbols.VariableInfo{
		Name:           name,
		NormalizedType: typ,
		IsArray:        isArr,
		IsConstant:     isConst,
	})

	if isConst && init != nil && isSimpleLiteral(init) {
		value := t.render(init)
		out.Add(ir.NewText(ir.KindConstant, "CONSTANT "+name+" = "+value.text))
		return
	}

	out.Add(ir.NewText(ir.KindDeclare, "DECLARE "+name+" : "+typ))
	if init == nil {
		return
	}
	if prompt, ok := inputCall(init); ok {
		if prompt != nil {
			out.Add(ir.NewText(ir.KindOutput, "OUTPUT "+t.render(prompt).text))
		}
		out.Add(ir.NewText(ir.KindInput, "INPUT "+name))
		return
	}
	if init.Kind == ast.KindArrayLit {
		t.assignArrayElements(name, init, out)
		return
	}
	if init.Kind == ast.KindNew && len(init.Children) == 1 && init.Child(0).Kind == ast.KindArrayLit {
		t.assignArrayElements(name, init.Child(0), out)
		return
	}
	if init.Kind == ast.KindNew && len(init.Attr.Dims) > 0 {
		// sized array creation carries no values
		return
	}
	out.Add(ir.NewText(ir.KindAssign, name+" ← "+t.render(init).text))
}

// declaredType settles the variable's pseudocode type, warning on fallback.
func (t *Transformer) declaredType(n *ast.Node, init *ast.Node) string {
	if t.lang == dialect.Java && n.Attr.TypeText != "" {
		sizeHint := ""
		if init != nil {
			sizeHint = firstDim(init)
			if init.Kind == ast.KindArrayLit {
				sizeHint = fmt.Sprintf("%d", len(init.Children))
			}
		}
		typ, known := normalizeJavaType(n.Attr.TypeText, sizeHint)
		if !known {
			t.warn(diag.ConvTypeFallback, n.Span,
				"type '"+n.Attr.TypeText+"' of '"+n.Value+"' has no pseudocode mapping; using "+typ)
		}
		return typ
	}
	if init != nil {
		if _, ok := inputCall(init); ok {
			return inputCallType(init)
		}
		if typ := t.inferType(init); typ != "" {
			return typ
		}
	}
	t.warn(diag.ConvTypeFallback, n.Span,
		"type of '"+n.Value+"' could not be determined; defaulting to STRING")
	return typeString
}

// assignArrayElements expands an array literal into per-element assigns,
// already 1-based.
func (t *Transformer) assignArrayElements(name string, lit *ast.Node, out *ir.Node) {
	for i, el := range lit.Children {
		out.Add(ir.NewText(ir.KindAssign,
			fmt.Sprintf("%s[%d] ← %s", name, i+1, t.render(el).text)))
	}
}

func isSimpleLiteral(n *ast.Node) bool {
	switch n.Kind {
	case ast.KindIntLit, ast.KindFloatLit, ast.KindStringLit,
		ast.KindCharLit, ast.KindBoolLit:
		return true
	case ast.KindUnary:
		return n.Attr.Op == "-" && isSimpleLiteral(n.Child(0))
	default:
		return false
	}
}

func (t *Transformer) lowerExprStmt(expr *ast.Node, out *ir.Node) {
	if expr == nil {
		return
	}
	switch expr.Kind {
	case ast.KindAssign:
		t.lowerAssign(expr, out)
		return
	case ast.KindUpdate:
		target := t.render(expr.Child(0))
		op := "+"
		if expr.Attr.Op == "--" {
			op = "-"
		}
		out.Add(ir.NewText(ir.KindAssign,
			target.text+" ← "+target.text+" "+op+" 1"))
		return
	case ast.KindCall:
		if args, ok := outputCallArgs(expr); ok {
			out.Add(ir.NewText(ir.KindOutput, "OUTPUT "+t.renderOutputArgs(args)))
			return
		}
		if _, ok := inputCall(expr); ok {
			node := ir.NewText(ir.KindComment, "discarded input read")
			t.info(diag.ConvConstructSimplified, expr.Span,
				"input call whose value is unused became a comment")
			out.Add(node)
			return
		}
		r := t.renderCall(expr)
		if strings.HasPrefix(r.text, "APPEND(") {
			out.Add(ir.NewText(ir.KindCall, r.text))
			return
		}
		out.Add(ir.NewText(ir.KindCall, "CALL "+r.text))
		return
	}
	// an expression with no effect becomes a comment
	r := t.render(expr)
	t.info(diag.ConvConstructSimplified, expr.Span,
		"expression statement without effect became a comment")
	out.Add(ir.NewText(ir.KindComment, r.text))
}

func (t *Transformer) lowerAssign(n *ast.Node, out *ir.Node) {
	target := t.render(n.Child(0))
	value := t.render(n.Child(1))
	op := n.Attr.Op
	if op != "=" {
		// compound assignment expands: x += e reads x <- x + e
		bin := strings.TrimSuffix(op, "=")
		mapped, prec := pseudoBinaryOp(bin, target, value)
		if mapped == "" {
			mapped, prec = bin, precMul
		}
		value = rendered{
			text: target.text + " " + mapped + " " + parenthesize(value, prec, true),
			typ:  value.typ,
			prec: prec,
		}
	}
	if prompt, ok := inputCall(n.Child(1)); ok {
		if prompt != nil {
			out.Add(ir.NewText(ir.KindOutput, "OUTPUT "+t.render(prompt).text))
		}
		out.Add(ir.NewText(ir.KindInput, "INPUT "+target.text))
		return
	}
	out.Add(ir.NewText(ir.KindAssign, target.text+" ← "+value.text))

	if name := assignTargetName(n.Child(0)); name != "" {
		if _, declared := t.table.LookupVariable(name); !declared {
			// fragments assign to names they never declare; record the type
			t.table.DeclareVariable(symbols.VariableInfo{Name: name, NormalizedType: value.typ})
		}
	}
}

func assignTargetName(n *ast.Node) string {
	if n != nil && n.Kind == ast.KindIdent {
		return n.Value
	}
	return ""
}

func (t *Transformer) renderOutputArgs(args []*ast.Node) string {
	if len(args) == 0 {
		return `""`
	}
	var parts []string
	for _, a := range args {
		parts = append(parts, t.render(a).text)
	}
	return strings.Join(parts, ", ")
}

func (t *Transformer) lowerReturn(n *ast.Node, out *ir.Node) {
	if len(n.Children) == 0 {
		out.Add(ir.NewText(ir.KindReturn, "RETURN"))
		return
	}
	out.Add(ir.NewText(ir.KindReturn, "RETURN "+t.render(n.Child(0)).text))
}

func (t *Transformer) lowerIf(n *ast.Node, out *ir.Node) {
	cond := t.render(n.Child(0))
	node := ir.New(ir.KindIf).Set(ir.MetaCond, cond.text)
	node.Add(t.lowerBody(n.Child(1)))
	if alt := n.Child(2); alt != nil {
		elseNode := ir.New(ir.KindElse)
		elseNode.Add(t.lowerBody(alt))
		node.Add(elseNode)
	}
	out.Add(node)
}

func (t *Transformer) lowerWhile(n *ast.Node, out *ir.Node) {
	cond := t.render(n.Child(0))
	node := ir.New(ir.KindWhile).Set(ir.MetaCond, cond.text)
	node.Add(t.lowerBody(n.Child(1)))
	out.Add(node)
}

// lowerDoWhile maps do/while to REPEAT..UNTIL, negating the condition.
func (t *Transformer) lowerDoWhile(n *ast.Node, out *ir.Node) {
	until := t.negateCond(n.Child(1))
	node := ir.New(ir.KindRepeat).Set(ir.MetaCond, until)
	node.Add(t.lowerBody(n.Child(0)))
	t.info(diag.ConvLoopRewritten, n.Span,
		"do-while rewritten as REPEAT..UNTIL with the condition negated")
	out.Add(node)
}

// negateCond renders the logical negation of a condition, inverting a
// top-level comparison instead of wrapping when it can.
func (t *Transformer) negateCond(n *ast.Node) string {
	if n != nil && n.Kind == ast.KindBinary {
		inverse := map[string]string{
			"<": ">=", "<=": ">", ">": "<=", ">=": "<",
			"==": "<>", "===": "<>", "!=": "=", "!==": "=",
		}
		if inv, ok := inverse[n.Attr.Op]; ok {
			left := t.render(n.Child(0))
			right := t.render(n.Child(1))
			return parenthesize(left, precCompare, false) + " " + inv + " " +
				parenthesize(right, precCompare, true)
		}
	}
	if n != nil && n.Kind == ast.KindUnary && n.Attr.Op == "!" {
		return t.render(n.Child(0)).text
	}
	cond := t.render(n)
	return "NOT (" + cond.text + ")"
}

// lowerBody lowers a statement body into a fresh block node, entering a
// block scope around it.
func (t *Transformer) lowerBody(n *ast.Node) *ir.Node {
	block := ir.New(ir.KindBlock)
	if n == nil {
		return block
	}
	t.table.EnterScope(symbols.ScopeBlock)
	if n.Kind == ast.KindBlock {
		for _, c := range n.Children {
			t.lowerStmt(c, block)
		}
	} else {
		t.lowerStmt(n, block)
	}
	t.exitScope(n.Span)
	return block
}

func (t *Transformer) lowerSwitch(n *ast.Node, out *ir.Node) {
	subject := t.render(n.Child(0))
	node := ir.New(ir.KindCase).Set(ir.MetaSubject, subject.text)
	clauses := n.Children[1:]
	for i, clause := range clauses {
		switch clause.Kind {
		case ast.KindCaseClause:
			branch := ir.New(ir.KindCaseBranch).
				Set(ir.MetaLabel, t.render(clause.Child(0)).text)
			body, terminated := t.lowerCaseBody(clause.Children[1:])
			branch.Children = body.Children
			if !terminated && len(body.Children) > 0 && i < len(clauses)-1 {
				t.warn(diag.ConvCaseFallthrough, clause.Span,
					"case branch falls through; branches render independently")
			}
			node.Add(branch)
		case ast.KindDefaultClause:
			branch := ir.New(ir.KindOtherwise)
			body, _ := t.lowerCaseBody(clause.Children)
			branch.Children = body.Children
			node.Add(branch)
		}
	}
	out.Add(node)
}

// lowerCaseBody lowers a branch body, stripping the trailing break and
// reporting whether the branch terminated explicitly.
func (t *Transformer) lowerCaseBody(stmts []*ast.Node) (*ir.Node, bool) {
	body := ir.New(ir.KindBlock)
	terminated := false
	t.table.EnterScope(symbols.ScopeBlock)
	for i, s := range stmts {
		if i == len(stmts)-1 {
			if s.Kind == ast.KindBreak {
				terminated = true
				break
			}
			if s.Kind == ast.KindReturn {
				terminated = true
			}
		}
		t.lowerStmt(s, body)
	}
	if !t.table.ExitScope() {
		t.warn(diag.ConvScopeUnderflow, source.Span{}, "scope tracking underflow; resolution may be off")
	}
	return body, terminated
}

func (t *Transformer) lowerTry(n *ast.Node, out *ir.Node) {
	head := ir.NewText(ir.KindComment, "error handling simplified: protected block follows")
	t.info(diag.ConvConstructSimplified, n.Span,
		"try/catch flattened; blocks render in sequence")
	out.Add(head)
	for i, c := range n.Children {
		if c.IsEmpty() {
			continue
		}
		if i == 1 {
			label := "error handler"
			if n.Value != "" {
				label += " (" + n.Value + ")"
			}
			out.Add(ir.NewText(ir.KindComment, label+":"))
		}
		if i == 2 {
			out.Add(ir.NewText(ir.KindComment, "always runs:"))
		}
		block := t.lowerBody(c)
		out.Children = append(out.Children, block.Children...)
	}
}

func condenseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
