package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"pseudo/internal/driver"
	"pseudo/internal/testkit"
)

func TestParse_SpanInvariants(t *testing.T) {
	samples := map[string]string{
		"a.js": `function greet(name) {
	console.log("Hello, " + name);
}
greet("world");
`,
		"B.java": `public class B {
	public static void main(String[] args) {
		int x = 1;
		System.out.println(x);
	}
}
`,
	}

	dir := t.TempDir()
	for name, src := range samples {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
			t.Fatal(err)
		}
		res, err := driver.Parse(path, driver.DefaultOptions())
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if err := testkit.CheckSpanInvariants(res.Program, res.File); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}
