package transform

import (
	"fmt"
	"strings"

	"pseudo/internal/ast"
)

// Pseudocode type names. scannerType marks Java Scanner variables, which
// never surface in output; their reads become INPUT statements.
const (
	typeInteger = "INTEGER"
	typeReal    = "REAL"
	typeString  = "STRING"
	typeChar    = "CHAR"
	typeBoolean = "BOOLEAN"
	scannerType = "<scanner>"
)

// javaBaseTypes maps Java type spellings to pseudocode types.
var javaBaseTypes = map[string]string{
	"int": typeInteger, "long": typeInteger, "short": typeInteger,
	"byte": typeInteger, "Integer": typeInteger, "Long": typeInteger,
	"double": typeReal, "float": typeReal, "Double": typeReal,
	"Float":  typeReal,
	"String": typeString, "CharSequence": typeString,
	"char": typeChar, "Character": typeChar,
	"boolean": typeBoolean, "Boolean": typeBoolean,
}

// normalizeJavaType maps a declared Java type to a pseudocode type.
// Array types become ARRAY[1:size] OF Elem; size comes from sizeHint when
// the declaration's initializer provides one, otherwise "n".
func normalizeJavaType(typeText, sizeHint string) (string, bool) {
	base := strings.TrimSpace(typeText)
	// strip generic arguments: ArrayList<Integer> keys off the argument
	if i := strings.IndexByte(base, '<'); i >= 0 {
		inner := base[i+1:]
		if j := strings.IndexByte(inner, '>'); j >= 0 {
			if elem, ok := javaBaseTypes[strings.TrimSpace(inner[:j])]; ok {
				return arrayType(elem, sizeHint), true
			}
		}
		base = base[:i]
	}
	dims := strings.Count(base, "[]")
	base = strings.TrimSpace(strings.ReplaceAll(base, "[]", ""))
	elem, ok := javaBaseTypes[base]
	if !ok {
		if strings.HasSuffix(base, "Scanner") {
			return scannerType, true
		}
		if isListLike(base) {
			return arrayType(typeString, sizeHint), false
		}
		return typeString, false
	}
	for n := 0; n < dims; n++ {
		elem = arrayType(elem, sizeHint)
	}
	return elem, true
}

func isListLike(name string) bool {
	switch name {
	case "ArrayList", "List", "LinkedList", "Vector":
		return true
	default:
		return false
	}
}

func arrayType(elem, size string) string {
	if size == "" {
		size = "n"
	}
	return fmt.Sprintf("ARRAY[1:%s] OF %s", size, elem)
}

// isArrayType reports whether a normalized type is an array and returns
// its element type.
func isArrayType(typ string) (string, bool) {
	if i := strings.Index(typ, "] OF "); strings.HasPrefix(typ, "ARRAY[") && i >= 0 {
		return typ[i+len("] OF "):], true
	}
	return "", false
}

// inferType derives a pseudocode type from an initializer expression.
// Empty string means unknown; the caller decides the fallback.
func (t *Transformer) inferType(n *ast.Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case ast.KindIntLit:
		return typeInteger
	case ast.KindFloatLit:
		return typeReal
	case ast.KindStringLit, ast.KindTemplateLit:
		return typeString
	case ast.KindCharLit:
		return typeChar
	case ast.KindBoolLit:
		return typeBoolean
	case ast.KindIdent:
		if info, ok := t.table.LookupVariable(n.Value); ok {
			return info.NormalizedType
		}
		return ""
	case ast.KindArrayLit:
		elem := ""
		if len(n.Children) > 0 {
			elem = t.inferType(n.Child(0))
		}
		if elem == "" {
			return ""
		}
		return arrayType(elem, fmt.Sprintf("%d", len(n.Children)))
	case ast.KindBinary:
		return t.inferBinaryType(n)
	case ast.KindUnary:
		switch n.Attr.Op {
		case "!":
			return typeBoolean
		case "-", "+", "~":
			return t.inferType(n.Child(0))
		}
		return ""
	case ast.KindTernary:
		return t.inferType(n.Child(1))
	case ast.KindIndex:
		if elem, ok := isArrayType(t.inferType(n.Child(0))); ok {
			return elem
		}
		// string subscripts read single characters
		if t.inferType(n.Child(0)) == typeString {
			return typeChar
		}
		return ""
	case ast.KindCall:
		return t.inferCallType(n)
	case ast.KindNew:
		typ, _ := normalizeJavaType(n.Value+strings.Repeat("[]", len(n.Attr.Dims)), firstDim(n))
		return typ
	default:
		return ""
	}
}

func firstDim(n *ast.Node) string {
	if len(n.Attr.Dims) > 0 && n.Attr.Dims[0] != "" {
		return n.Attr.Dims[0]
	}
	if len(n.Children) == 1 && n.Child(0).Kind == ast.KindArrayLit {
		return fmt.Sprintf("%d", len(n.Child(0).Children))
	}
	return ""
}

func (t *Transformer) inferBinaryType(n *ast.Node) string {
	left := t.inferType(n.Child(0))
	right := t.inferType(n.Child(1))
	switch n.Attr.Op {
	case "==", "===", "!=", "!==", "<", "<=", ">", ">=", "&&", "||",
		"instanceof", "in":
		return typeBoolean
	case "+":
		if left == typeString || right == typeString {
			return typeString
		}
		fallthrough
	case "-", "*", "%":
		if left == typeReal || right == typeReal {
			return typeReal
		}
		if left == typeInteger && right == typeInteger {
			return typeInteger
		}
		return ""
	case "/":
		if left == typeInteger && right == typeInteger {
			return typeInteger
		}
		if left == typeReal || right == typeReal {
			return typeReal
		}
		return ""
	default:
		return ""
	}
}

// inferCallType covers the mapped built-ins whose result type is fixed.
func (t *Transformer) inferCallType(n *ast.Node) string {
	callee := n.Child(0)
	if callee == nil {
		return ""
	}
	name := ""
	switch callee.Kind {
	case ast.KindMember:
		name = callee.Value
	case ast.KindIdent:
		name = callee.Value
		if info, ok := t.table.LookupCallable(name); ok {
			return normalizeReturn(info.ReturnType)
		}
	}
	switch name {
	case "length", "size":
		return typeInteger
	case "charAt":
		return typeChar
	case "substring", "toUpperCase", "toLowerCase", "trim", "concat":
		return typeString
	case "indexOf":
		return typeInteger
	case "includes", "contains", "startsWith", "endsWith", "equals":
		return typeBoolean
	default:
		return ""
	}
}

// normalizeReturn maps a stored callable return type (already normalized
// for user functions, raw for none) to a pseudocode type.
func normalizeReturn(rt string) string {
	if rt == "" || rt == "void" {
		return ""
	}
	return rt
}
