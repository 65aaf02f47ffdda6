package transform_test

import (
	"strings"
	"testing"

	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/ir"
	"pseudo/internal/lexer"
	"pseudo/internal/parser"
	"pseudo/internal/source"
	"pseudo/internal/transform"
)

func lower(t *testing.T, lang dialect.Kind, src string) (*ir.Node, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.src", []byte(src))
	file := fs.Get(fileID)

	bag := diag.NewBag(128)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Lang: lang, Reporter: reporter})
	res := parser.ParseFile(lx, parser.Options{Reporter: reporter})
	root := transform.Transform(res.Program, lang, reporter)
	if root == nil {
		t.Fatal("Transform returned nil")
	}
	return root, bag
}

func texts(root *ir.Node) []string {
	var out []string
	var walk func(*ir.Node)
	walk = func(n *ir.Node) {
		if txt := n.Get(ir.MetaText); txt != "" {
			out = append(out, txt)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}

func firstOfKind(root *ir.Node, kind ir.Kind) *ir.Node {
	var found *ir.Node
	var walk func(*ir.Node)
	walk = func(n *ir.Node) {
		if found != nil {
			return
		}
		if n.Kind == kind {
			found = n
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return found
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestLower_DeclarationWithInitializer(t *testing.T) {
	root, _ := lower(t, dialect.JavaScript, "let x = 5;")
	got := texts(root)
	want := []string{"DECLARE x : INTEGER", "x ← 5"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("lines = %q, want %q", got, want)
	}
}

func TestLower_JavaTypedDeclaration(t *testing.T) {
	root, bag := lower(t, dialect.Java, "double ratio = 0.5;")
	if hasCode(bag, diag.ConvTypeFallback) {
		t.Fatal("declared Java type should not fall back")
	}
	if got := texts(root)[0]; got != "DECLARE ratio : REAL" {
		t.Fatalf("got %q", got)
	}
}

func TestLower_TypeFallbackWarns(t *testing.T) {
	root, bag := lower(t, dialect.JavaScript, "let x = mystery();")
	if !hasCode(bag, diag.ConvTypeFallback) {
		t.Fatal("expected a type-fallback warning")
	}
	if got := texts(root)[0]; got != "DECLARE x : STRING" {
		t.Fatalf("got %q", got)
	}
}

func TestLower_ConstBecomesConstant(t *testing.T) {
	root, _ := lower(t, dialect.JavaScript, "const LIMIT = 10;")
	node := firstOfKind(root, ir.KindConstant)
	if node == nil || node.Get(ir.MetaText) != "CONSTANT LIMIT = 10" {
		t.Fatalf("got %v", texts(root))
	}
}

func TestLower_CanonicalFor(t *testing.T) {
	root, _ := lower(t, dialect.JavaScript,
		"for (let i = 0; i < 5; i++) { console.log(i); }")
	loop := firstOfKind(root, ir.KindFor)
	if loop == nil {
		t.Fatal("no for_loop in IR")
	}
	if loop.Get(ir.MetaVar) != "i" || loop.Get(ir.MetaFrom) != "0" || loop.Get(ir.MetaTo) != "4" {
		t.Fatalf("bounds: var=%q from=%q to=%q",
			loop.Get(ir.MetaVar), loop.Get(ir.MetaFrom), loop.Get(ir.MetaTo))
	}
	if loop.Has(ir.MetaStep) {
		t.Fatal("unit step must not be spelled out")
	}
	out := firstOfKind(loop, ir.KindOutput)
	if out == nil || out.Get(ir.MetaText) != "OUTPUT i" {
		t.Fatalf("body: %v", texts(loop))
	}
}

func TestLower_LengthBoundRebasesLoop(t *testing.T) {
	root, bag := lower(t, dialect.JavaScript,
		"let arr = [10, 20, 30];\nfor (let i = 0; i < arr.length; i++) { console.log(arr[i]); }")
	loop := firstOfKind(root, ir.KindFor)
	if loop.Get(ir.MetaFrom) != "1" || loop.Get(ir.MetaTo) != "LENGTH(arr)" {
		t.Fatalf("bounds: from=%q to=%q", loop.Get(ir.MetaFrom), loop.Get(ir.MetaTo))
	}
	out := firstOfKind(loop, ir.KindOutput)
	if out.Get(ir.MetaText) != "OUTPUT arr[i]" {
		t.Fatalf("shifted loop variable must stay untouched: %q", out.Get(ir.MetaText))
	}
	if !hasCode(bag, diag.ConvIndexAdjusted) {
		t.Fatal("expected an index-adjusted note")
	}
}

func TestLower_DowntoLoop(t *testing.T) {
	root, _ := lower(t, dialect.Java, "for (int i = 10; i > 0; i--) { use(i); }")
	loop := firstOfKind(root, ir.KindFor)
	if loop.Get(ir.MetaFrom) != "10" || loop.Get(ir.MetaTo) != "1" || loop.Get(ir.MetaStep) != "-1" {
		t.Fatalf("bounds: from=%q to=%q step=%q",
			loop.Get(ir.MetaFrom), loop.Get(ir.MetaTo), loop.Get(ir.MetaStep))
	}
}

func TestLower_NonCanonicalForDegradesToWhile(t *testing.T) {
	root, bag := lower(t, dialect.JavaScript,
		"for (let i = 0; check(i); i = next(i)) { use(i); }")
	if firstOfKind(root, ir.KindFor) != nil {
		t.Fatal("non-canonical loop must not render as FOR")
	}
	if firstOfKind(root, ir.KindWhile) == nil {
		t.Fatal("expected a WHILE rewrite")
	}
	if !hasCode(bag, diag.ConvLoopRewritten) {
		t.Fatal("expected a loop-rewritten warning")
	}
}

func TestLower_IndexShifts(t *testing.T) {
	root, bag := lower(t, dialect.JavaScript,
		"let arr = [1, 2];\nlet a = arr[0];\nlet b = arr[k];")
	lines := texts(root)
	var assigns []string
	for _, l := range lines {
		if strings.Contains(l, "←") && strings.Contains(l, "arr[") {
			assigns = append(assigns, l)
		}
	}
	joined := strings.Join(assigns, "\n")
	if !strings.Contains(joined, "a ← arr[1]") {
		t.Errorf("literal index not shifted: %q", joined)
	}
	if !strings.Contains(joined, "b ← arr[k + 1]") {
		t.Errorf("variable index not shifted: %q", joined)
	}
	if !hasCode(bag, diag.ConvIndexAdjusted) {
		t.Error("expected index-adjusted notes")
	}
	if !hasCode(bag, diag.ConvUndeclaredName) {
		t.Error("'k' should be reported undeclared")
	}
}

func TestLower_ComplexIndexFlagsReview(t *testing.T) {
	_, bag := lower(t, dialect.JavaScript, "let arr = [1];\nlet x = arr[f(0)];")
	if !hasCode(bag, diag.ConvIndexManualReview) {
		t.Fatal("call inside an index must flag manual review")
	}
}

func TestLower_DoWhileBecomesRepeat(t *testing.T) {
	root, _ := lower(t, dialect.JavaScript, "let x = 0;\ndo { x = x + 1; } while (x < 10);")
	rep := firstOfKind(root, ir.KindRepeat)
	if rep == nil {
		t.Fatal("no repeat_loop in IR")
	}
	if cond := rep.Get(ir.MetaCond); cond != "x >= 10" {
		t.Fatalf("UNTIL condition = %q, want the negation", cond)
	}
}

func TestLower_SwitchBecomesCase(t *testing.T) {
	src := `switch (n) {
		case 1: console.log("one"); break;
		case 2: console.log("two");
		default: console.log("many");
	}`
	root, bag := lower(t, dialect.JavaScript, src)
	cs := firstOfKind(root, ir.KindCase)
	if cs == nil || cs.Get(ir.MetaSubject) != "n" {
		t.Fatalf("case statement: %v", cs)
	}
	if len(cs.Children) != 3 {
		t.Fatalf("got %d branches", len(cs.Children))
	}
	if cs.Children[0].Kind != ir.KindCaseBranch || cs.Children[0].Get(ir.MetaLabel) != "1" {
		t.Fatalf("first branch: %v %q", cs.Children[0].Kind, cs.Children[0].Get(ir.MetaLabel))
	}
	if cs.Children[2].Kind != ir.KindOtherwise {
		t.Fatalf("last branch: %v", cs.Children[2].Kind)
	}
	// branch with the break keeps only its statement
	if got := len(cs.Children[0].Children); got != 1 {
		t.Fatalf("break must be stripped, got %d statements", got)
	}
	if !hasCode(bag, diag.ConvCaseFallthrough) {
		t.Fatal("case 2 falls through and must warn")
	}
}

func TestLower_ProcedureVsFunction(t *testing.T) {
	root, _ := lower(t, dialect.JavaScript,
		"function greet(name) { console.log(name); }\nfunction add(a, b) { return a + b; }")
	proc := firstOfKind(root, ir.KindProcedure)
	if proc == nil || proc.Get(ir.MetaName) != "greet" {
		t.Fatalf("procedure: %v", proc)
	}
	fn := firstOfKind(root, ir.KindFunction)
	if fn == nil || fn.Get(ir.MetaName) != "add" {
		t.Fatalf("function: %v", fn)
	}
	if fn.Get(ir.MetaReturns) == "" {
		t.Fatal("function must carry a return type")
	}
}

func TestLower_JavaReturnTypes(t *testing.T) {
	root, _ := lower(t, dialect.Java,
		"int square(int n) { return n * n; }\nvoid log(String msg) { System.out.println(msg); }")
	fn := firstOfKind(root, ir.KindFunction)
	if fn.Get(ir.MetaName) != "square" || fn.Get(ir.MetaReturns) != "INTEGER" {
		t.Fatalf("square: name=%q returns=%q", fn.Get(ir.MetaName), fn.Get(ir.MetaReturns))
	}
	if fn.Get(ir.MetaParams) != "n : INTEGER" {
		t.Fatalf("params: %q", fn.Get(ir.MetaParams))
	}
	proc := firstOfKind(root, ir.KindProcedure)
	if proc.Get(ir.MetaName) != "log" {
		t.Fatalf("void method must be a procedure: %q", proc.Get(ir.MetaName))
	}
}

func TestLower_ClassFlattens(t *testing.T) {
	src := `class Point {
		int x;
		Point(int x) { this.x = x; }
		int getX() { return x; }
	}`
	root, bag := lower(t, dialect.Java, src)
	if !hasCode(bag, diag.ConvConstructSimplified) {
		t.Fatal("class flattening must be diagnosed")
	}
	decl := firstOfKind(root, ir.KindDeclare)
	if decl == nil || decl.Get(ir.MetaText) != "DECLARE x : INTEGER" {
		t.Fatalf("field: %v", texts(root))
	}
	ctor := firstOfKind(root, ir.KindProcedure)
	if ctor == nil || ctor.Get(ir.MetaName) != "Point" {
		t.Fatal("constructor must become a procedure named after the class")
	}
	if firstOfKind(root, ir.KindFunction) == nil {
		t.Fatal("getX must become a function")
	}
	// this.x = x inside the constructor reads as a field assignment
	assign := firstOfKind(ctor, ir.KindAssign)
	if assign == nil || assign.Get(ir.MetaText) != "x ← x" {
		t.Fatalf("ctor body: %v", texts(ctor))
	}
}

func TestLower_ClassFieldsVisibleAfterClass(t *testing.T) {
	// flattened fields live in the enclosing scope, so method bodies and
	// code following the class both resolve them
	src := `class Counter {
		int count;
		void bump() { count = count + 1; }
	}
	count = 0;`
	root, bag := lower(t, dialect.Java, src)
	if hasCode(bag, diag.ConvUndeclaredName) {
		t.Fatalf("field references flagged undeclared: %v", bag.Items())
	}
	for _, n := range root.Children {
		if n.Has(ir.MetaUndeclared) {
			t.Fatalf("undeclared annotation on %q", n.Get(ir.MetaText))
		}
	}
}

func TestLower_MethodMapping(t *testing.T) {
	src := `let s = "hello";
let c = s.charAt(i);
let u = s.toUpperCase();
let p = s.indexOf("l");
let part = s.substring(1, 3);`
	root, _ := lower(t, dialect.JavaScript, src)
	joined := strings.Join(texts(root), "\n")
	for _, want := range []string{
		"c ← MID(s, i + 1, 1)",
		"u ← UCASE(s)",
		`p ← POSITION(s, "l")`,
		"part ← MID(s, 2, 2)",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing %q in:\n%s", want, joined)
		}
	}
}

func TestLower_UnmappedMethodWarns(t *testing.T) {
	_, bag := lower(t, dialect.JavaScript, "let s = \"x\";\nlet y = s.normalize();")
	if !hasCode(bag, diag.ConvMethodNoEquivalent) {
		t.Fatal("unmapped method must warn")
	}
}

func TestLower_TemplateFlattens(t *testing.T) {
	root, bag := lower(t, dialect.JavaScript,
		"let name = \"Ada\";\nconsole.log(`Hi ${name}!`);")
	out := firstOfKind(root, ir.KindOutput)
	if got := out.Get(ir.MetaText); got != `OUTPUT "Hi " & name & "!"` {
		t.Fatalf("got %q", got)
	}
	if !hasCode(bag, diag.ConvTemplateFlattened) {
		t.Fatal("expected a template-flattened note")
	}
}

func TestLower_ScannerInput(t *testing.T) {
	src := `Scanner sc = new Scanner(System.in);
int age = sc.nextInt();`
	root, _ := lower(t, dialect.Java, src)
	lines := texts(root)
	joined := strings.Join(lines, "\n")
	if strings.Contains(joined, "Scanner") && !strings.Contains(lines[0], "input") {
		t.Fatalf("scanner declaration must not survive: %q", lines)
	}
	if !strings.Contains(joined, "DECLARE age : INTEGER") || !strings.Contains(joined, "INPUT age") {
		t.Fatalf("got:\n%s", joined)
	}
}

func TestLower_PromptEmitsOutputThenInput(t *testing.T) {
	root, _ := lower(t, dialect.JavaScript, `let name = prompt("Your name?");`)
	got := texts(root)
	want := []string{"DECLARE name : STRING", `OUTPUT "Your name?"`, "INPUT name"}
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Fatalf("lines = %q, want %q", got, want)
	}
}

func TestLower_CompoundAssign(t *testing.T) {
	root, _ := lower(t, dialect.JavaScript, "let x = 1;\nx += 2;\nx++;")
	joined := strings.Join(texts(root), "\n")
	if !strings.Contains(joined, "x ← x + 2") {
		t.Errorf("compound assign: %s", joined)
	}
	if !strings.Contains(joined, "x ← x + 1") {
		t.Errorf("increment: %s", joined)
	}
}

func TestLower_StringConcat(t *testing.T) {
	root, _ := lower(t, dialect.JavaScript,
		"let first = \"Ada\";\nlet greeting = \"Hi \" + first;")
	joined := strings.Join(texts(root), "\n")
	if !strings.Contains(joined, "greeting ← \"Hi \" & first") {
		t.Fatalf("string + must read as &: %s", joined)
	}
}

func TestLower_LogicalOperators(t *testing.T) {
	root, _ := lower(t, dialect.JavaScript,
		"let a = true;\nlet b = false;\nif (a && !b) { console.log(1); }")
	cond := firstOfKind(root, ir.KindIf).Get(ir.MetaCond)
	if cond != "a AND NOT b" {
		t.Fatalf("cond = %q", cond)
	}
}

func TestLower_UndeclaredNamesAnnotated(t *testing.T) {
	root, bag := lower(t, dialect.JavaScript, "total = total + z;")
	assign := firstOfKind(root, ir.KindAssign)
	if assign == nil {
		t.Fatal("no assignment produced")
	}
	names := assign.Get(ir.MetaUndeclared)
	if !strings.Contains(names, "total") || !strings.Contains(names, "z") {
		t.Fatalf("undeclared = %q", names)
	}
	if !hasCode(bag, diag.ConvUndeclaredName) {
		t.Fatal("expected undeclared-name notes")
	}
}

func TestLower_ForEachRewrites(t *testing.T) {
	root, bag := lower(t, dialect.JavaScript,
		"let items = [1, 2, 3];\nfor (const item of items) { console.log(item); }")
	loop := firstOfKind(root, ir.KindFor)
	if loop.Get(ir.MetaVar) != "itemIndex" || loop.Get(ir.MetaTo) != "LENGTH(items)" {
		t.Fatalf("loop: var=%q to=%q", loop.Get(ir.MetaVar), loop.Get(ir.MetaTo))
	}
	first := loop.Children[0].Children[0]
	if first.Get(ir.MetaText) != "item ← items[itemIndex]" {
		t.Fatalf("element read: %q", first.Get(ir.MetaText))
	}
	if !hasCode(bag, diag.ConvLoopRewritten) {
		t.Fatal("expected a loop-rewritten note")
	}
}

func TestLower_ImportBecomesComment(t *testing.T) {
	root, _ := lower(t, dialect.Java, "import java.util.Scanner;")
	c := firstOfKind(root, ir.KindComment)
	if c == nil || !strings.Contains(c.Get(ir.MetaText), "import java.util.Scanner") {
		t.Fatalf("got %v", texts(root))
	}
	if c.Get(ir.MetaAnnotation) == "" {
		t.Fatal("comment should explain why it is a comment")
	}
}

func TestLower_BlankLineSeparatesStatements(t *testing.T) {
	root, _ := lower(t, dialect.JavaScript, "let a = 1;\n\nlet b = 2;")
	// DECLARE a, a ← 1, blank, DECLARE b, b ← 2
	if len(root.Children) != 5 {
		t.Fatalf("got %d nodes: %v", len(root.Children), texts(root))
	}
	if root.Children[2].Kind != ir.KindBlank {
		t.Fatalf("node after first statement is %v, want blank", root.Children[2].Kind)
	}
	// adjacent statements stay adjacent
	packed, _ := lower(t, dialect.JavaScript, "let a = 1;\nlet b = 2;")
	if firstOfKind(packed, ir.KindBlank) != nil {
		t.Fatal("no blank expected between adjacent statements")
	}
}

func TestLower_ArrayLiteralExpands(t *testing.T) {
	root, _ := lower(t, dialect.JavaScript, "let nums = [4, 5];")
	got := texts(root)
	want := []string{
		"DECLARE nums : ARRAY[1:2] OF INTEGER",
		"nums[1] ← 4",
		"nums[2] ← 5",
	}
	if len(got) != len(want) {
		t.Fatalf("lines = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
