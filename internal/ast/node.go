// Package ast defines the positioned syntax tree produced by the parser.
//
// One Node shape serves both input languages; Kind is a closed enum and each
// kind documents its child layout. Trees are built once by the parser and
// never mutated afterwards; the transformer that consumes a tree is its sole
// owner.
package ast

import (
	"pseudo/internal/source"
)

// NodeKind is the closed variant tag of a syntax tree node.
type NodeKind uint8

const (
	KindInvalid NodeKind = iota

	// KindProgram is the root. Children: top-level statements.
	KindProgram
	// KindBlock is a braced statement list. Children: statements.
	KindBlock
	// KindEmpty is a placeholder for an omitted clause (e.g. a missing
	// for-loop section). No children.
	KindEmpty

	// KindVarDecl declares one variable. Value: name. Children: optional
	// initializer. Attr.DeclKw holds var/let/const (JS), Attr.TypeText the
	// declared type (Java), Attr.Dims array dimension expressions as text.
	KindVarDecl
	// KindExprStmt wraps an expression used as a statement. Children: expr.
	KindExprStmt
	// KindIf branches. Children: [cond, then] or [cond, then, else].
	KindIf
	// KindWhile loops. Children: [cond, body].
	KindWhile
	// KindDoWhile loops at least once. Children: [body, cond].
	KindDoWhile
	// KindFor is a classic counting loop. Children: [init, cond, post,
	// body]; omitted sections are KindEmpty.
	KindFor
	// KindForEach is a for-of/enhanced-for loop. Value: loop variable name.
	// Children: [iterable, body].
	KindForEach
	// KindSwitch selects. Children: [discriminant, case/default clauses...].
	KindSwitch
	// KindCaseClause is one labeled branch. Children: [label, stmts...].
	KindCaseClause
	// KindDefaultClause is the default branch. Children: stmts.
	KindDefaultClause
	// KindBreak exits the nearest loop or switch. No children.
	KindBreak
	// KindContinue continues the nearest loop. No children.
	KindContinue
	// KindReturn returns. Children: optional value expression.
	KindReturn
	// KindFuncDecl declares a function. Value: name. Children:
	// [ParamList, Block]. Attr.TypeText: declared return type, if any.
	KindFuncDecl
	// KindClassDecl declares a class. Value: name. Children: member
	// declarations. Attr.TypeText: superclass name, if any.
	KindClassDecl
	// KindFieldDecl declares a class field. Same layout as KindVarDecl.
	KindFieldDecl
	// KindMethodDecl declares a method. Same layout as KindFuncDecl;
	// Attr.Mods carries modifiers.
	KindMethodDecl
	// KindCtorDecl declares a constructor. Value: class name. Children:
	// [ParamList, Block].
	KindCtorDecl
	// KindParamList groups parameters. Children: params.
	KindParamList
	// KindParam is one parameter. Value: name. Attr.TypeText: declared
	// type, if any.
	KindParam
	// KindImport is an import/package statement. Value: raw specifier text.
	KindImport
	// KindTry is exception handling. Children: [tryBlock, catchBlock?,
	// finallyBlock?]; missing clauses are KindEmpty. Value: catch
	// parameter name.
	KindTry
	// KindThrow raises. Children: expression.
	KindThrow
	// KindUnsupported is a best-effort opaque statement for constructs the
	// parser recognizes but cannot model. Value: raw source text.
	KindUnsupported

	// KindIdent is an identifier reference. Value: name.
	KindIdent
	// KindIntLit, KindFloatLit, KindStringLit, KindCharLit, KindBoolLit,
	// KindNullLit carry the literal text in Value. String/char Value keeps
	// the source quotes.
	KindIntLit
	KindFloatLit
	KindStringLit
	KindCharLit
	KindBoolLit
	KindNullLit
	// KindTemplateLit is a JS template literal; Value is the raw text with
	// backticks and interpolations.
	KindTemplateLit
	// KindArrayLit is an array literal. Children: elements.
	KindArrayLit
	// KindBinary applies Attr.Op to Children: [left, right].
	KindBinary
	// KindUnary applies prefix Attr.Op to Children: [operand].
	KindUnary
	// KindUpdate is ++/--. Attr.Op, Attr.Prefix. Children: [operand].
	KindUpdate
	// KindAssign assigns. Attr.Op holds =, +=, etc. Children: [target, value].
	KindAssign
	// KindTernary is cond ? a : b. Children: [cond, then, else].
	KindTernary
	// KindCall calls. Children: [callee, args...].
	KindCall
	// KindMember accesses a property. Value: property name. Children: [object].
	KindMember
	// KindIndex subscripts. Children: [object, index].
	KindIndex
	// KindNew constructs. Value: type name. Children: args. Attr.Dims
	// carries dimension expressions for Java array creation.
	KindNew
	// KindArrow is a JS arrow function (unsupported construct, kept for
	// annotation). Children: [ParamList, body].
	KindArrow
	// KindThis is a this reference. No children.
	KindThis

	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid: "invalid", KindProgram: "program", KindBlock: "block",
	KindEmpty: "empty", KindVarDecl: "var_decl", KindExprStmt: "expr_stmt",
	KindIf: "if", KindWhile: "while", KindDoWhile: "do_while", KindFor: "for",
	KindForEach: "for_each", KindSwitch: "switch",
	KindCaseClause: "case_clause", KindDefaultClause: "default_clause",
	KindBreak: "break", KindContinue: "continue", KindReturn: "return",
	KindFuncDecl: "func_decl", KindClassDecl: "class_decl",
	KindFieldDecl: "field_decl", KindMethodDecl: "method_decl",
	KindCtorDecl: "ctor_decl", KindParamList: "param_list",
	KindParam: "param", KindImport: "import", KindTry: "try",
	KindThrow: "throw", KindUnsupported: "unsupported",
	KindIdent: "ident", KindIntLit: "int_lit", KindFloatLit: "float_lit",
	KindStringLit: "string_lit", KindCharLit: "char_lit",
	KindBoolLit: "bool_lit", KindNullLit: "null_lit",
	KindTemplateLit: "template_lit", KindArrayLit: "array_lit",
	KindBinary: "binary", KindUnary: "unary", KindUpdate: "update",
	KindAssign: "assign", KindTernary: "ternary", KindCall: "call",
	KindMember: "member", KindIndex: "index", KindNew: "new",
	KindArrow: "arrow", KindThis: "this",
}

func (k NodeKind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Attr carries per-kind metadata. Only the fields a kind documents are set.
type Attr struct {
	Op          string   // operator spelling for binary/unary/update/assign
	TypeText    string   // declared type text (Java) or superclass (class)
	DeclKw      string   // var/let/const for JS declarations
	Mods        []string // modifier spellings in source order
	Dims        []string // array dimension expressions as text
	Prefix      bool     // true for prefix ++/--
	Comments    []string // leading line-comment texts attached to a statement
	BlankBefore bool     // a blank line separated this statement from the previous one
}

// Node is one syntax tree node.
type Node struct {
	Kind     NodeKind
	Value    string
	Children []*Node
	Span     source.Span
	Attr     Attr
}

// New constructs a node.
func New(kind NodeKind, span source.Span, children ...*Node) *Node {
	return &Node{Kind: kind, Span: span, Children: children}
}

// NewValue constructs a node carrying literal or identifier text.
func NewValue(kind NodeKind, span source.Span, value string, children ...*Node) *Node {
	return &Node{Kind: kind, Span: span, Value: value, Children: children}
}

// Child returns the i-th child or nil.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// IsEmpty reports whether the node is the empty placeholder.
func (n *Node) IsEmpty() bool {
	return n == nil || n.Kind == KindEmpty
}

// IsStatement reports whether the kind occupies a statement position.
func (k NodeKind) IsStatement() bool {
	switch k {
	case KindBlock, KindEmpty, KindVarDecl, KindExprStmt, KindIf, KindWhile,
		KindDoWhile, KindFor, KindForEach, KindSwitch, KindBreak,
		KindContinue, KindReturn, KindFuncDecl, KindClassDecl,
		KindFieldDecl, KindMethodDecl, KindCtorDecl, KindImport, KindTry,
		KindThrow, KindUnsupported:
		return true
	default:
		return false
	}
}
