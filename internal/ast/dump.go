package ast

import (
	"fmt"
	"strings"
)

// Dump renders the tree as an indented s-expression-ish listing, used by the
// parse debug command and golden tests.
func Dump(n *Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Kind.String())
	if n.Value != "" {
		fmt.Fprintf(b, " %q", n.Value)
	}
	if n.Attr.Op != "" {
		fmt.Fprintf(b, " op=%s", n.Attr.Op)
	}
	if n.Attr.TypeText != "" {
		fmt.Fprintf(b, " type=%s", n.Attr.TypeText)
	}
	b.WriteByte('\n')
	for _, c := range n.Children {
		dump(b, c, depth+1)
	}
}
