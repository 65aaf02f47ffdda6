package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"pseudo/internal/diag"
	"pseudo/internal/diagfmt"
	"pseudo/internal/source"
)

func oneDiagBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("sample.js", []byte("let x = [1;\nlet y = 2;\n"))
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.SynUnclosedBracket,
		source.Span{File: fileID, Start: 8, End: 9}, "bracket opened here is never closed"))
	return bag, fs
}

func TestPretty_LocationAndCode(t *testing.T) {
	bag, fs := oneDiagBag(t)
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{ShowSource: true})
	out := buf.String()
	if !strings.Contains(out, "sample.js:1:9: error SYN2004: bracket opened here is never closed") {
		t.Fatalf("got:\n%s", out)
	}
	if !strings.Contains(out, "let x = [1;") {
		t.Errorf("source line missing:\n%s", out)
	}
	if !strings.Contains(out, "        ^") {
		t.Errorf("caret missing:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("colors must stay off by default:\n%s", out)
	}
}

func TestPretty_Notes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.js", []byte("let x = 1;\n"))
	bag := diag.NewBag(8)
	bag.Add(diag.NewWarning(diag.ConvTypeFallback,
		source.Span{File: fileID, Start: 4, End: 5}, "type could not be determined").
		WithNote(source.Span{File: fileID, Start: 0, End: 3}, "declared here"))

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{ShowNotes: true})
	if !strings.Contains(buf.String(), "note: declared here") {
		t.Fatalf("got:\n%s", buf.String())
	}
}

func TestSummary_CountsBySeverity(t *testing.T) {
	bag, _ := oneDiagBag(t)
	bag.Add(diag.NewWarning(diag.ConvTypeFallback, source.Span{}, "w"))
	var buf bytes.Buffer
	diagfmt.Summary(&buf, bag, false)
	if got := strings.TrimSpace(buf.String()); got != "1 error(s), 1 warning(s)" {
		t.Fatalf("got %q", got)
	}
}

func TestSummary_SilentWhenClean(t *testing.T) {
	var buf bytes.Buffer
	diagfmt.Summary(&buf, diag.NewBag(4), false)
	if buf.Len() != 0 {
		t.Fatalf("got %q", buf.String())
	}
}

func TestJSON_Document(t *testing.T) {
	bag, fs := oneDiagBag(t)
	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diags = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "error" || d.Code != "SYN2004" {
		t.Fatalf("diag: %+v", d)
	}
	if d.Location.File != "sample.js" || d.Location.Line != 1 || d.Location.Col != 9 {
		t.Fatalf("location: %+v", d.Location)
	}
}

func TestJSON_MaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("a.js", []byte("x\n"))
	bag := diag.NewBag(8)
	for n := 0; n < 5; n++ {
		bag.Add(diag.NewInfo(diag.ConvIndexAdjusted, source.Span{}, "shifted"))
	}
	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{Max: 2}); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Diagnostics) != 2 || out.Count != 5 {
		t.Fatalf("diags = %d, count = %d", len(out.Diagnostics), out.Count)
	}
}
