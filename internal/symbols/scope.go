// Package symbols implements the scope manager used by the transformer.
//
// Scopes form a tree stored in an arena and addressed by index; each scope
// keeps its parent's index, never a live pointer. Lookup walks parent links
// outward, first match wins, so shadowing works the way the input languages
// expect. One Table exists per conversion call and dies with it.
package symbols

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeGlobal             // program root
	ScopeFunction           // function/procedure/method body
	ScopeBlock              // any braced block
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// VariableInfo describes one declared variable.
type VariableInfo struct {
	Name           string
	NormalizedType string
	IsArray        bool
	// ArrayDims holds the declared sizes per dimension; entries may be
	// symbolic expressions rendered as text.
	ArrayDims        []string
	IsConstant       bool
	InitialValueText string
}

// ParameterInfo describes one callable parameter.
type ParameterInfo struct {
	Name           string
	NormalizedType string
	IsArray        bool
	IsOptional     bool
}

// CallableInfo describes one declared function or procedure.
// ReturnType "" means procedure; anything else means function.
type CallableInfo struct {
	Name       string
	Parameters []ParameterInfo
	ReturnType string
}

// IsFunction reports whether the callable returns a value.
func (c CallableInfo) IsFunction() bool { return c.ReturnType != "" }

// Scope is a single lexical region. Declarations are idempotent-last-write:
// re-declaring a name in the same scope overwrites the previous entry.
type Scope struct {
	Kind      ScopeKind
	Parent    ScopeID
	Variables map[string]VariableInfo
	Callables map[string]CallableInfo
}
