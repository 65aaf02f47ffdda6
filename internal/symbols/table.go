package symbols

// Table is the scope manager handed to a transformer. It couples the arena
// with a LIFO stack of active scopes: entering a lexical region pushes a
// fresh scope, exiting pops it. Exiting at the global scope is a recorded
// no-op, never a panic; the caller may emit a diagnostic for it.
type Table struct {
	scopes *Scopes
	stack  []ScopeID
	global ScopeID
}

// NewTable builds a table with the global scope already entered.
func NewTable() *Table {
	scopes := NewScopes(0)
	global := scopes.New(ScopeGlobal, NoScopeID)
	return &Table{
		scopes: scopes,
		stack:  []ScopeID{global},
		global: global,
	}
}

// EnterScope pushes a new scope of the given kind under the current one.
func (t *Table) EnterScope(kind ScopeKind) ScopeID {
	id := t.scopes.New(kind, t.Current())
	t.stack = append(t.stack, id)
	return id
}

// ExitScope pops the current scope. Returns false when already at the
// global scope, in which case nothing is popped.
func (t *Table) ExitScope() bool {
	if len(t.stack) <= 1 {
		return false
	}
	t.stack = t.stack[:len(t.stack)-1]
	return true
}

// Current returns the active scope ID.
func (t *Table) Current() ScopeID {
	return t.stack[len(t.stack)-1]
}

// Global returns the root scope ID.
func (t *Table) Global() ScopeID { return t.global }

// Depth reports how many scopes are on the stack (global counts as 1).
func (t *Table) Depth() int { return len(t.stack) }

// DeclareVariable records a variable in the current scope, overwriting any
// previous declaration of the same name there.
func (t *Table) DeclareVariable(info VariableInfo) {
	sc := t.scopes.Get(t.Current())
	sc.Variables[info.Name] = info
}

// DeclareCallable records a callable in the current scope.
func (t *Table) DeclareCallable(info CallableInfo) {
	sc := t.scopes.Get(t.Current())
	sc.Callables[info.Name] = info
}

// LookupVariable resolves a name starting from the current scope and
// walking parent links outward. First match wins.
func (t *Table) LookupVariable(name string) (VariableInfo, bool) {
	for id := t.Current(); id.IsValid(); id = t.scopes.Get(id).Parent {
		if info, ok := t.scopes.Get(id).Variables[name]; ok {
			return info, true
		}
	}
	return VariableInfo{}, false
}

// LookupCallable resolves a callable name through the scope chain.
func (t *Table) LookupCallable(name string) (CallableInfo, bool) {
	for id := t.Current(); id.IsValid(); id = t.scopes.Get(id).Parent {
		if info, ok := t.scopes.Get(id).Callables[name]; ok {
			return info, true
		}
	}
	return CallableInfo{}, false
}

// LookupVariableLocal resolves a name in the current scope only.
func (t *Table) LookupVariableLocal(name string) (VariableInfo, bool) {
	info, ok := t.scopes.Get(t.Current()).Variables[name]
	return info, ok
}
