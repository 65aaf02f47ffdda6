package gen_test

import (
	"strings"
	"testing"

	"pseudo/internal/gen"
)

func TestVerifyBalance_Balanced(t *testing.T) {
	output := strings.Join([]string{
		"FUNCTION tally(items : STRING) RETURNS INTEGER",
		"   FOR i ← 1 TO 10",
		"      IF items = \"FOR\" THEN",
		"         OUTPUT i",
		"      ENDIF",
		"   NEXT i",
		"   REPEAT",
		"      OUTPUT i",
		"   UNTIL i > 3",
		"   RETURN i",
		"ENDFUNCTION",
		"",
	}, "\n")
	if err := gen.VerifyBalance(output); err != nil {
		t.Fatal(err)
	}
}

func TestVerifyBalance_KeywordInExpressionIgnored(t *testing.T) {
	// IF inside an OUTPUT expression must not count as an opener.
	if err := gen.VerifyBalance("OUTPUT \"IF\"\n"); err != nil {
		t.Fatal(err)
	}
}

func TestVerifyBalance_MissingCloser(t *testing.T) {
	err := gen.VerifyBalance("IF x THEN\n   OUTPUT x\n")
	if err == nil {
		t.Fatal("expected unbalance error")
	}
	if !strings.Contains(err.Error(), "1 IF vs 0 ENDIF") {
		t.Errorf("got %v", err)
	}
}

func TestVerifyBalance_EmptyOutput(t *testing.T) {
	if err := gen.VerifyBalance(""); err != nil {
		t.Fatal(err)
	}
}
