package diagfmt

import (
	"encoding/json"
	"io"

	"pseudo/internal/ast"
	"pseudo/internal/source"
)

// ASTNodeJSON is one syntax tree node in the JSON dump.
type ASTNodeJSON struct {
	Kind     string        `json:"kind"`
	Value    string        `json:"value,omitempty"`
	Op       string        `json:"op,omitempty"`
	Type     string        `json:"type,omitempty"`
	Span     *LocationJSON `json:"span,omitempty"`
	Children []ASTNodeJSON `json:"children,omitempty"`
}

// FormatASTTree writes the indented tree listing produced by ast.Dump.
func FormatASTTree(w io.Writer, root *ast.Node) error {
	_, err := io.WriteString(w, ast.Dump(root))
	return err
}

// FormatASTJSON writes the syntax tree as a single JSON document.
func FormatASTJSON(w io.Writer, root *ast.Node, fs *source.FileSet, includePositions bool) error {
	node := buildASTJSON(root, fs, includePositions)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(node)
}

func buildASTJSON(n *ast.Node, fs *source.FileSet, includePositions bool) ASTNodeJSON {
	out := ASTNodeJSON{
		Kind:  n.Kind.String(),
		Value: n.Value,
		Op:    n.Attr.Op,
		Type:  n.Attr.TypeText,
	}
	if includePositions && !n.Span.Empty() {
		loc := makeLocation(n.Span, fs, true)
		out.Span = &loc
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, buildASTJSON(c, fs, includePositions))
	}
	return out
}
