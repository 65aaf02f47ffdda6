package ir

import "testing"

func TestRoleOf_ClosedSet(t *testing.T) {
	openers := []Kind{KindIf, KindWhile, KindRepeat, KindFor, KindCase, KindProcedure, KindFunction}
	for _, k := range openers {
		if RoleOf(k) != RoleOpener {
			t.Errorf("%v: want opener", k)
		}
		if CloserKeyword(k) == "" {
			t.Errorf("%v: opener without a closer keyword", k)
		}
	}
	continuations := []Kind{KindElse, KindCaseBranch, KindOtherwise}
	for _, k := range continuations {
		if RoleOf(k) != RoleContinuation {
			t.Errorf("%v: want continuation", k)
		}
		if CloserKeyword(k) != "" {
			t.Errorf("%v: continuation must not carry a closer", k)
		}
	}
	for _, k := range []Kind{KindDeclare, KindAssign, KindOutput, KindComment, KindBlank} {
		if RoleOf(k) != RoleLine {
			t.Errorf("%v: want plain line", k)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	cases := []struct {
		kind Kind
		want Category
	}{
		{KindProgram, CategoryProgram},
		{KindDeclare, CategoryDeclaration},
		{KindAssign, CategoryStatement},
		{KindFor, CategoryControl},
		{KindFunction, CategoryFunction},
	}
	for _, tc := range cases {
		if got := CategoryOf(tc.kind); got != tc.want {
			t.Errorf("CategoryOf(%v) = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestNode_Annotate(t *testing.T) {
	n := New(KindDeclare)
	n.Annotate("class Point flattened")
	n.Annotate("field had modifier: static")
	want := "class Point flattened\nfield had modifier: static"
	if got := n.Get(MetaAnnotation); got != want {
		t.Fatalf("annotation = %q, want %q", got, want)
	}
}

func TestDump(t *testing.T) {
	root := New(KindProgram).Add(
		New(KindFor).Set(MetaVar, "i").Set(MetaFrom, "0").Set(MetaTo, "4").Add(
			New(KindBlock).Add(NewText(KindOutput, "OUTPUT i")),
		),
	)
	want := "program\n" +
		"  for_loop from=\"0\" to=\"4\" var=\"i\"\n" +
		"    block\n" +
		"      output text=\"OUTPUT i\"\n"
	if got := Dump(root); got != want {
		t.Fatalf("dump mismatch:\n%s\nwant:\n%s", got, want)
	}
}
