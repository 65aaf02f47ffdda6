package gen

import (
	"fmt"
	"strings"
)

// blockPairs lists each block-opening keyword with the keyword that must
// close it in rendered output.
var blockPairs = [][2]string{
	{"IF", "ENDIF"},
	{"WHILE", "ENDWHILE"},
	{"REPEAT", "UNTIL"},
	{"FOR", "NEXT"},
	{"CASE", "ENDCASE"},
	{"PROCEDURE", "ENDPROCEDURE"},
	{"FUNCTION", "ENDFUNCTION"},
}

// VerifyBalance checks that every block-opening keyword in rendered output
// is matched by its closing keyword. Keywords are only recognized at the
// start of a line, so expression text never miscounts.
func VerifyBalance(output string) error {
	counts := map[string]int{}
	for _, line := range strings.Split(output, "\n") {
		word, _, _ := strings.Cut(strings.TrimSpace(line), " ")
		if word == "" {
			continue
		}
		counts[word]++
	}

	var problems []string
	for _, pair := range blockPairs {
		opener, closer := pair[0], pair[1]
		if counts[opener] != counts[closer] {
			problems = append(problems, fmt.Sprintf("%d %s vs %d %s", counts[opener], opener, counts[closer], closer))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("unbalanced blocks: %s", strings.Join(problems, "; "))
}
