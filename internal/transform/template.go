package transform

import (
	"strings"

	"pseudo/internal/ast"
	"pseudo/internal/diag"
)

// renderTemplate flattens a JS template literal into string concatenation:
// `Hello ${name}!` reads as "Hello " & name & "!". Interpolated fragments
// are carried over verbatim.
func (t *Transformer) renderTemplate(n *ast.Node) rendered {
	body := n.Value
	body = strings.TrimPrefix(body, "`")
	body = strings.TrimSuffix(body, "`")

	var parts []string
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, `"`+lit.String()+`"`)
			lit.Reset()
		}
	}
	for i := 0; i < len(body); i++ {
		if body[i] == '$' && i+1 < len(body) && body[i+1] == '{' {
			end := strings.IndexByte(body[i+2:], '}')
			if end < 0 {
				lit.WriteString(body[i:])
				break
			}
			flush()
			if expr := strings.TrimSpace(body[i+2 : i+2+end]); expr != "" {
				parts = append(parts, expr)
			}
			i += 2 + end
			continue
		}
		lit.WriteByte(body[i])
	}
	flush()

	if len(parts) == 0 {
		return atom(`""`, typeString)
	}
	if len(parts) > 1 {
		t.info(diag.ConvTemplateFlattened, n.Span,
			"template literal flattened to string concatenation")
	}
	prec := precAtom
	if len(parts) > 1 {
		prec = precConcat
	}
	return rendered{text: strings.Join(parts, " & "), typ: typeString, prec: prec}
}
