package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/driver"
	"pseudo/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertSource_CountingLoop(t *testing.T) {
	res := driver.ConvertSource("loop.js",
		[]byte("for (i = 0; i < 5; i++) { print(i); }"), driver.DefaultOptions())
	want := "FOR i ← 0 TO 4\n   OUTPUT i\nNEXT i\n"
	if res.Output != want {
		t.Fatalf("got %q, want %q", res.Output, want)
	}
	if res.Lang != dialect.JavaScript {
		t.Fatalf("lang = %v", res.Lang)
	}
}

func TestConvertSource_ErrorMarker(t *testing.T) {
	res := driver.ConvertSource("broken.js",
		[]byte("if (x { print(1); }"), driver.DefaultOptions())
	if !res.Bag.HasErrors() {
		t.Fatal("expected structural errors")
	}
	first, _, _ := strings.Cut(res.Output, "\n")
	if !strings.HasPrefix(first, "//! ") || !strings.Contains(first, "structural error") {
		t.Fatalf("missing error marker, first line %q", first)
	}
	if len(res.Output) <= len(first)+1 {
		t.Fatal("marker must precede a best-effort body")
	}
}

func TestConvertFile_DetectsJavaByExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Main.java", "int x = 1;")
	res, err := driver.ConvertFile(path, driver.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if res.Lang != dialect.Java {
		t.Fatalf("lang = %v", res.Lang)
	}
	if !strings.Contains(res.Output, "DECLARE x : INTEGER") {
		t.Fatalf("output:\n%s", res.Output)
	}
}

func TestConvertSource_DetectsJavaByContent(t *testing.T) {
	src := `public class Main {
	public static void main(String[] args) {
		System.out.println("hi");
	}
}`
	res := driver.ConvertSource("snippet.txt", []byte(src), driver.DefaultOptions())
	if res.Lang != dialect.Java {
		t.Fatalf("lang = %v", res.Lang)
	}
}

func TestConvertSource_ForcedLanguageWins(t *testing.T) {
	opts := driver.DefaultOptions()
	opts.Lang = dialect.Java
	res := driver.ConvertSource("any.txt", []byte("int x = 1;"), opts)
	if res.Lang != dialect.Java {
		t.Fatalf("lang = %v", res.Lang)
	}
}

func TestConvertPaths_OrderAndLoadErrors(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.js", "let x = 1;")
	missing := filepath.Join(dir, "missing.js")
	b := writeFile(t, dir, "b.java", "int y = 2;")

	var seen atomic.Int32
	results, err := driver.ConvertPaths(context.Background(),
		[]string{a, missing, b}, driver.DefaultOptions(),
		driver.BatchOptions{Jobs: 2, OnResult: func(*driver.ConvertResult) { seen.Add(1) }})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Path != a || results[2].Path != b {
		t.Fatal("results must keep input order")
	}
	if !strings.Contains(results[0].Output, "DECLARE x : INTEGER") {
		t.Errorf("a.js output:\n%s", results[0].Output)
	}
	bad := results[1]
	found := false
	for _, d := range bad.Bag.Items() {
		if d.Code == diag.IOLoadFileError {
			found = true
		}
	}
	if !found {
		t.Error("missing file must report IOLoadFileError")
	}
	if got := seen.Load(); got != 3 {
		t.Errorf("OnResult called %d times", got)
	}
}

func TestConvertPaths_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dir := t.TempDir()
	path := writeFile(t, dir, "a.js", "let x = 1;")
	_, err := driver.ConvertPaths(ctx, []string{path}, driver.DefaultOptions(), driver.BatchOptions{})
	if err == nil {
		t.Fatal("cancelled context must surface an error")
	}
}

func TestConvertPaths_CacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cache, err := driver.OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, dir, "a.js", "let x = prompt(\"name?\");")
	opts := driver.DefaultOptions()
	batch := driver.BatchOptions{Cache: cache}

	first, err := driver.ConvertPaths(context.Background(), []string{path}, opts, batch)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Fatal("first conversion cannot be a cache hit")
	}

	second, err := driver.ConvertPaths(context.Background(), []string{path}, opts, batch)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Fatal("second conversion must hit the cache")
	}
	if second[0].Output != first[0].Output {
		t.Fatalf("cached output differs:\n%q\n%q", second[0].Output, first[0].Output)
	}
	if second[0].Bag.Len() != first[0].Bag.Len() {
		t.Fatalf("cached diagnostics differ: %d vs %d", second[0].Bag.Len(), first[0].Bag.Len())
	}

	// changed options must miss
	opts.Gen.IndentWidth = 4
	third, err := driver.ConvertPaths(context.Background(), []string{path}, opts, batch)
	if err != nil {
		t.Fatal(err)
	}
	if third[0].Cached {
		t.Fatal("different options must not hit the cache")
	}
}

func TestListSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.js", "")
	writeFile(t, dir, "a.java", "")
	writeFile(t, dir, "notes.txt", "")
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "c.mjs", "")

	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("got %v", files)
	}
	for _, f := range files {
		if strings.HasSuffix(f, ".txt") {
			t.Fatalf("txt file listed: %v", files)
		}
	}
}

func TestTokenize_CollectsThroughEOF(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.js", "let x = 1;")
	res, err := driver.Tokenize(path, driver.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Fatalf("token stream must end with EOF, got %d tokens", len(res.Tokens))
	}
}

func TestParse_ReturnsProgram(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.java", "int x = 1;")
	res, err := driver.Parse(path, driver.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if res.Program == nil || len(res.Program.Children) != 1 {
		t.Fatalf("program: %+v", res.Program)
	}
	if res.Lang != dialect.Java {
		t.Fatalf("lang = %v", res.Lang)
	}
}
