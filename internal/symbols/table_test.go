package symbols

import "testing"

func TestTable_LookupWalksOutward(t *testing.T) {
	tbl := NewTable()
	tbl.DeclareVariable(VariableInfo{Name: "x", NormalizedType: "INTEGER"})

	tbl.EnterScope(ScopeFunction)
	tbl.DeclareVariable(VariableInfo{Name: "y", NormalizedType: "STRING"})

	if info, ok := tbl.LookupVariable("x"); !ok || info.NormalizedType != "INTEGER" {
		t.Fatalf("x should resolve through the parent chain, got %v %v", info, ok)
	}
	if info, ok := tbl.LookupVariable("y"); !ok || info.NormalizedType != "STRING" {
		t.Fatalf("y should resolve locally, got %v %v", info, ok)
	}
	if _, ok := tbl.LookupVariable("z"); ok {
		t.Fatal("z should not resolve")
	}
}

func TestTable_ShadowingFirstMatchWins(t *testing.T) {
	tbl := NewTable()
	tbl.DeclareVariable(VariableInfo{Name: "x", NormalizedType: "INTEGER"})

	tbl.EnterScope(ScopeBlock)
	tbl.DeclareVariable(VariableInfo{Name: "x", NormalizedType: "STRING"})

	if info, _ := tbl.LookupVariable("x"); info.NormalizedType != "STRING" {
		t.Fatalf("inner x should shadow, got %q", info.NormalizedType)
	}

	tbl.ExitScope()
	if info, _ := tbl.LookupVariable("x"); info.NormalizedType != "INTEGER" {
		t.Fatalf("outer x should be visible again, got %q", info.NormalizedType)
	}
}

func TestTable_RedeclarationOverwrites(t *testing.T) {
	tbl := NewTable()
	tbl.DeclareVariable(VariableInfo{Name: "x", NormalizedType: "INTEGER"})
	tbl.DeclareVariable(VariableInfo{Name: "x", NormalizedType: "REAL"})

	if info, _ := tbl.LookupVariable("x"); info.NormalizedType != "REAL" {
		t.Fatalf("redeclaration should overwrite, got %q", info.NormalizedType)
	}
}

func TestTable_ExitAtGlobalIsNoop(t *testing.T) {
	tbl := NewTable()
	if tbl.ExitScope() {
		t.Fatal("exiting the global scope must report false")
	}
	if tbl.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", tbl.Depth())
	}
	// the table must remain usable
	tbl.DeclareVariable(VariableInfo{Name: "x"})
	if _, ok := tbl.LookupVariable("x"); !ok {
		t.Fatal("table unusable after no-op exit")
	}
}

func TestTable_Callables(t *testing.T) {
	tbl := NewTable()
	tbl.DeclareCallable(CallableInfo{Name: "greet"})
	tbl.DeclareCallable(CallableInfo{
		Name:       "area",
		ReturnType: "REAL",
		Parameters: []ParameterInfo{{Name: "r", NormalizedType: "REAL"}},
	})

	proc, ok := tbl.LookupCallable("greet")
	if !ok || proc.IsFunction() {
		t.Fatalf("greet should be a procedure, got %v %v", proc, ok)
	}
	fn, ok := tbl.LookupCallable("area")
	if !ok || !fn.IsFunction() {
		t.Fatalf("area should be a function, got %v %v", fn, ok)
	}

	tbl.EnterScope(ScopeFunction)
	if _, ok := tbl.LookupCallable("area"); !ok {
		t.Fatal("callables should resolve through the chain")
	}
}

func TestScopes_ArenaIDs(t *testing.T) {
	s := NewScopes(0)
	if s.Get(NoScopeID) != nil {
		t.Fatal("sentinel must not resolve")
	}
	a := s.New(ScopeGlobal, NoScopeID)
	b := s.New(ScopeBlock, a)
	if s.Get(b).Parent != a {
		t.Fatal("parent link broken")
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
}
