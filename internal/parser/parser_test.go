package parser_test

import (
	"strings"
	"testing"

	"pseudo/internal/ast"
	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/lexer"
	"pseudo/internal/parser"
	"pseudo/internal/source"
)

func parseSource(t *testing.T, lang dialect.Kind, src string) (*ast.Node, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.src", []byte(src))
	file := fs.Get(fileID)

	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Lang: lang, Reporter: reporter})
	res := parser.ParseFile(lx, parser.Options{Reporter: reporter})
	if res.Program == nil {
		t.Fatal("ParseFile returned a nil program")
	}
	return res.Program, bag
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestParse_JSVarDecl(t *testing.T) {
	program, bag := parseSource(t, dialect.JavaScript, "let x = 5;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	want := "program\n" +
		"  var_decl \"x\"\n" +
		"    int_lit \"5\"\n"
	if got := ast.Dump(program); got != want {
		t.Fatalf("tree mismatch:\n%s\nwant:\n%s", got, want)
	}
	if kw := program.Child(0).Attr.DeclKw; kw != "let" {
		t.Fatalf("DeclKw = %q, want let", kw)
	}
}

func TestParse_JSMultiDeclarator(t *testing.T) {
	program, _ := parseSource(t, dialect.JavaScript, "let a = 1, b = 2;")
	if len(program.Children) != 2 {
		t.Fatalf("got %d statements, want 2", len(program.Children))
	}
	if program.Child(0).Value != "a" || program.Child(1).Value != "b" {
		t.Fatalf("declarator names: %q, %q", program.Child(0).Value, program.Child(1).Value)
	}
}

func TestParse_JavaTypedDecl(t *testing.T) {
	program, bag := parseSource(t, dialect.Java, "int count = 0;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	decl := program.Child(0)
	if decl.Kind != ast.KindVarDecl || decl.Value != "count" {
		t.Fatalf("got %v %q", decl.Kind, decl.Value)
	}
	if decl.Attr.TypeText != "int" {
		t.Fatalf("TypeText = %q, want int", decl.Attr.TypeText)
	}
}

func TestParse_JavaArrayDecl(t *testing.T) {
	program, _ := parseSource(t, dialect.Java, "String[] names = new String[10];")
	decl := program.Child(0)
	if decl.Attr.TypeText != "String[]" {
		t.Fatalf("TypeText = %q, want String[]", decl.Attr.TypeText)
	}
	init := decl.Child(0)
	if init.Kind != ast.KindNew || len(init.Attr.Dims) != 1 || init.Attr.Dims[0] != "10" {
		t.Fatalf("initializer: %v dims=%v", init.Kind, init.Attr.Dims)
	}
}

func TestParse_ForHeader(t *testing.T) {
	program, bag := parseSource(t, dialect.JavaScript,
		"for (let i = 0; i < 5; i++) { console.log(i); }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	loop := program.Child(0)
	if loop.Kind != ast.KindFor || len(loop.Children) != 4 {
		t.Fatalf("got %v with %d children", loop.Kind, len(loop.Children))
	}
	if loop.Child(0).Kind != ast.KindVarDecl {
		t.Errorf("init: %v", loop.Child(0).Kind)
	}
	cond := loop.Child(1)
	if cond.Kind != ast.KindBinary || cond.Attr.Op != "<" {
		t.Errorf("cond: %v op=%q", cond.Kind, cond.Attr.Op)
	}
	if loop.Child(2).Child(0).Kind != ast.KindUpdate {
		t.Errorf("post: %v", loop.Child(2).Child(0).Kind)
	}
	if loop.Child(3).Kind != ast.KindBlock {
		t.Errorf("body: %v", loop.Child(3).Kind)
	}
}

func TestParse_ForEach(t *testing.T) {
	jsProgram, _ := parseSource(t, dialect.JavaScript, "for (const item of items) { use(item); }")
	js := jsProgram.Child(0)
	if js.Kind != ast.KindForEach || js.Value != "item" {
		t.Fatalf("js: %v %q", js.Kind, js.Value)
	}

	javaProgram, _ := parseSource(t, dialect.Java, "for (String name : names) { use(name); }")
	java := javaProgram.Child(0)
	if java.Kind != ast.KindForEach || java.Value != "name" {
		t.Fatalf("java: %v %q", java.Kind, java.Value)
	}
}

func TestParse_IfElseChain(t *testing.T) {
	program, _ := parseSource(t, dialect.JavaScript,
		"if (a) { f(); } else if (b) { g(); } else { h(); }")
	root := program.Child(0)
	if root.Kind != ast.KindIf || len(root.Children) != 3 {
		t.Fatalf("got %v with %d children", root.Kind, len(root.Children))
	}
	inner := root.Child(2).Child(0)
	if inner.Kind != ast.KindIf || len(inner.Children) != 3 {
		t.Fatalf("else-if did not nest: %v with %d children", inner.Kind, len(inner.Children))
	}
}

func TestParse_DoWhile(t *testing.T) {
	program, _ := parseSource(t, dialect.Java, "do { x = x + 1; } while (x < 10);")
	loop := program.Child(0)
	if loop.Kind != ast.KindDoWhile {
		t.Fatalf("got %v", loop.Kind)
	}
	if loop.Child(0).Kind != ast.KindBlock || loop.Child(1).Kind != ast.KindBinary {
		t.Fatalf("children: %v, %v", loop.Child(0).Kind, loop.Child(1).Kind)
	}
}

func TestParse_Switch(t *testing.T) {
	program, _ := parseSource(t, dialect.JavaScript,
		`switch (n) { case 1: f(); break; case 2: g(); break; default: h(); }`)
	sw := program.Child(0)
	if sw.Kind != ast.KindSwitch || len(sw.Children) != 4 {
		t.Fatalf("got %v with %d children", sw.Kind, len(sw.Children))
	}
	if sw.Child(1).Kind != ast.KindCaseClause || sw.Child(3).Kind != ast.KindDefaultClause {
		t.Fatalf("clauses: %v, %v", sw.Child(1).Kind, sw.Child(3).Kind)
	}
}

func TestParse_JavaMethod(t *testing.T) {
	program, bag := parseSource(t, dialect.Java,
		"public static void main(String[] args) { System.out.println(\"hi\"); }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	fn := program.Child(0)
	if fn.Kind != ast.KindFuncDecl || fn.Value != "main" {
		t.Fatalf("got %v %q", fn.Kind, fn.Value)
	}
	if fn.Attr.TypeText != "void" {
		t.Errorf("return type: %q", fn.Attr.TypeText)
	}
	if len(fn.Attr.Mods) != 2 {
		t.Errorf("mods: %v", fn.Attr.Mods)
	}
	param := fn.Child(0).Child(0)
	if param.Value != "args" || param.Attr.TypeText != "String[]" {
		t.Errorf("param: %q : %q", param.Value, param.Attr.TypeText)
	}
}

func TestParse_JavaClass(t *testing.T) {
	src := `class Point {
		int x;
		Point(int x) { this.x = x; }
		int getX() { return x; }
	}`
	program, bag := parseSource(t, dialect.Java, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	class := program.Child(0)
	if class.Kind != ast.KindClassDecl || class.Value != "Point" {
		t.Fatalf("got %v %q", class.Kind, class.Value)
	}
	kinds := []ast.NodeKind{ast.KindFieldDecl, ast.KindCtorDecl, ast.KindMethodDecl}
	for i, want := range kinds {
		if got := class.Child(i).Kind; got != want {
			t.Errorf("member %d: %v, want %v", i, got, want)
		}
	}
}

func TestParse_StrictEquality(t *testing.T) {
	program, _ := parseSource(t, dialect.JavaScript, "ok = a === b;")
	assign := program.Child(0).Child(0)
	if assign.Kind != ast.KindAssign {
		t.Fatalf("got %v", assign.Kind)
	}
	if op := assign.Child(1).Attr.Op; op != "===" {
		t.Fatalf("op = %q, want ===", op)
	}
}

func TestParse_Ternary(t *testing.T) {
	program, _ := parseSource(t, dialect.JavaScript, "let m = a > b ? a : b;")
	if program.Child(0).Child(0).Kind != ast.KindTernary {
		t.Fatalf("got %v", program.Child(0).Child(0).Kind)
	}
}

func TestParse_UnclosedBrace(t *testing.T) {
	program, bag := parseSource(t, dialect.JavaScript, "while (x) { f();")
	if !hasCode(bag, diag.SynUnclosedBrace) {
		t.Fatal("expected an unclosed-brace diagnostic")
	}
	// best-effort: the loop still made it into the tree
	if program.Child(0).Kind != ast.KindWhile {
		t.Fatalf("got %v", program.Child(0).Kind)
	}
}

func TestParse_StrayCloser(t *testing.T) {
	_, bag := parseSource(t, dialect.JavaScript, "} let x = 1;")
	if !hasCode(bag, diag.SynStrayCloser) {
		t.Fatal("expected a stray-closer diagnostic")
	}
}

func TestParse_ImportWarns(t *testing.T) {
	program, bag := parseSource(t, dialect.Java, "import java.util.Scanner;\nint x = 1;")
	if !hasCode(bag, diag.SynUnsupportedImport) {
		t.Fatal("expected an unsupported-import diagnostic")
	}
	if program.Child(0).Kind != ast.KindImport {
		t.Fatalf("got %v", program.Child(0).Kind)
	}
	if program.Child(1).Kind != ast.KindVarDecl {
		t.Fatalf("statement after import: %v", program.Child(1).Kind)
	}
}

func TestParse_ArrowWarns(t *testing.T) {
	program, bag := parseSource(t, dialect.JavaScript, "const f = (a, b) => a + b;")
	if !hasCode(bag, diag.SynUnsupportedLambda) {
		t.Fatal("expected an unsupported-lambda diagnostic")
	}
	if program.Child(0).Child(0).Kind != ast.KindArrow {
		t.Fatalf("initializer: %v", program.Child(0).Child(0).Kind)
	}
}

func TestParse_DestructureWarns(t *testing.T) {
	_, bag := parseSource(t, dialect.JavaScript, "const [a, b] = pair;")
	if !hasCode(bag, diag.SynUnsupportedDestructure) {
		t.Fatal("expected an unsupported-destructure diagnostic")
	}
}

func TestParse_EmptyInputInforms(t *testing.T) {
	program, bag := parseSource(t, dialect.JavaScript, "   \n\n")
	if len(program.Children) != 0 {
		t.Fatalf("got %d statements", len(program.Children))
	}
	if !hasCode(bag, diag.SynEmptyProgram) {
		t.Fatal("expected an empty-program diagnostic")
	}
	// Zero statements is a fact about the input, not a problem with it.
	for _, d := range bag.Items() {
		if d.Code == diag.SynEmptyProgram && d.Severity != diag.SevInfo {
			t.Fatalf("severity = %v, want info", d.Severity)
		}
	}
	if bag.HasWarnings() {
		t.Fatal("an empty file must not raise warnings")
	}
}

func TestParse_BlankLineRecorded(t *testing.T) {
	program, _ := parseSource(t, dialect.JavaScript, "let a = 1;\n\nlet b = 2;\nlet c = 3;")
	if !program.Child(1).Attr.BlankBefore {
		t.Fatal("statement after a blank line should record it")
	}
	if program.Child(0).Attr.BlankBefore || program.Child(2).Attr.BlankBefore {
		t.Fatal("statements without a preceding blank line should not record one")
	}
}

func TestParse_LeadingCommentsAttach(t *testing.T) {
	program, _ := parseSource(t, dialect.JavaScript, "// counter\nlet i = 0;")
	decl := program.Child(0)
	if len(decl.Attr.Comments) != 1 || !strings.Contains(decl.Attr.Comments[0], "counter") {
		t.Fatalf("comments: %v", decl.Attr.Comments)
	}
}

func TestParse_TryCatchWarns(t *testing.T) {
	program, bag := parseSource(t, dialect.JavaScript,
		"try { risky(); } catch (e) { report(e); }")
	if !hasCode(bag, diag.SynUnsupportedTryCatch) {
		t.Fatal("expected an unsupported-try-catch diagnostic")
	}
	try := program.Child(0)
	if try.Kind != ast.KindTry || try.Value != "e" {
		t.Fatalf("got %v %q", try.Kind, try.Value)
	}
}

func TestParse_UnsupportedWarningsSuggest(t *testing.T) {
	// every unsupported-construct warning must carry a note with an alternative
	cases := []struct {
		name string
		lang dialect.Kind
		src  string
		code diag.Code
	}{
		{"import", dialect.Java, "import java.util.Scanner;", diag.SynUnsupportedImport},
		{"try_catch", dialect.JavaScript, "try { risky(); } catch (e) { report(e); }", diag.SynUnsupportedTryCatch},
		{"arrow", dialect.JavaScript, "const f = (a, b) => a + b;", diag.SynUnsupportedLambda},
		{"destructure", dialect.JavaScript, "const [a, b] = pair;", diag.SynUnsupportedDestructure},
		{"rest_param", dialect.JavaScript, "function f(...args) { return args; }", diag.SynUnsupportedSpread},
		{"spread_arg", dialect.JavaScript, "f(...items);", diag.SynUnsupportedSpread},
		{"spread_element", dialect.JavaScript, "let all = [1, ...rest];", diag.SynUnsupportedSpread},
		{"object_literal", dialect.JavaScript, "let p = {x: 1, y: 2};", diag.SynUnsupportedDestructure},
		{"generics", dialect.Java, "List<String> names = make();", diag.SynUnsupportedGenerics},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, bag := parseSource(t, tc.lang, tc.src)
			found := false
			for _, d := range bag.Items() {
				if d.Code != tc.code {
					continue
				}
				found = true
				if len(d.Notes) == 0 {
					t.Fatalf("%s has no suggestion note", d.Code.ID())
				}
				if d.Notes[0].Msg == "" {
					t.Fatalf("%s has an empty suggestion", d.Code.ID())
				}
			}
			if !found {
				t.Fatalf("no %s diagnostic reported", tc.code.ID())
			}
		})
	}
}

func TestParse_TotalOnGarbage(t *testing.T) {
	// parsing must terminate and return a tree no matter the input
	_, bag := parseSource(t, dialect.JavaScript, ")) @@ ] } ( let = = 5 class")
	if !bag.HasErrors() {
		t.Fatal("expected structural errors")
	}
}
