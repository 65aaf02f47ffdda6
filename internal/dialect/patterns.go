package dialect

import (
	"bytes"
	"regexp"
)

// One signal per recognizable surface pattern. Scores are relative weights,
// not probabilities; Classify normalizes them.
var textPatterns = []struct {
	kind   Kind
	score  int
	reason string
	re     *regexp.Regexp
}{
	{JavaScript, 6, "console.log call", regexp.MustCompile(`\bconsole\.log\s*\(`)},
	{JavaScript, 5, "let/const declaration", regexp.MustCompile(`\b(let|const)\s+[A-Za-z_$]`)},
	{JavaScript, 4, "function keyword", regexp.MustCompile(`\bfunction\s+[A-Za-z_$]`)},
	{JavaScript, 4, "arrow function", regexp.MustCompile(`=>`)},
	{JavaScript, 3, "strict equality", regexp.MustCompile(`[=!]==`)},
	{JavaScript, 3, "template literal", regexp.MustCompile("`")},
	{JavaScript, 2, "var declaration", regexp.MustCompile(`\bvar\s+[A-Za-z_$]`)},

	{Java, 6, "System.out call", regexp.MustCompile(`\bSystem\.out\.print(ln)?\s*\(`)},
	{Java, 6, "public static void main", regexp.MustCompile(`\bpublic\s+static\s+void\s+main\b`)},
	{Java, 5, "visibility modifier", regexp.MustCompile(`\b(public|private|protected)\s+`)},
	{Java, 4, "typed declaration", regexp.MustCompile(`\b(int|double|float|long|short|byte|char|boolean|String)\s+[A-Za-z_$][A-Za-z0-9_$]*\s*[=;,)]`)},
	{Java, 4, "class with brace", regexp.MustCompile(`\bclass\s+[A-Z][A-Za-z0-9_]*`)},
	{Java, 3, "package or import statement", regexp.MustCompile(`\b(package|import)\s+[a-z][\w.]*\s*;`)},
	{Java, 3, "new Scanner", regexp.MustCompile(`\bnew\s+Scanner\s*\(`)},
}

// Observe scans raw content and records every matching pattern once.
func Observe(e *Evidence, content []byte) {
	if e == nil || len(bytes.TrimSpace(content)) == 0 {
		return
	}
	for _, p := range textPatterns {
		if p.re.Match(content) {
			e.Add(Hint{Kind: p.kind, Score: p.score, Reason: p.reason})
		}
	}
}

// Detect is the one-shot helper: collect evidence over content and classify.
// Unknown means the caller should fall back to the file extension or reject.
func Detect(content []byte) Classification {
	e := NewEvidence()
	Observe(e, content)
	return Classify(e)
}
