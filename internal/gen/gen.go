// Package gen renders an IR tree as pseudocode text. Indentation comes
// from a single level counter driven by the closed role set of
// internal/ir: openers print at the current level and indent their body,
// continuations print at the opener's level, and closing keywords dedent
// before printing. No construct gets its own indentation logic.
package gen

import (
	"strings"

	"pseudo/internal/diag"
	"pseudo/internal/ir"
	"pseudo/internal/source"
)

// Options controls rendering.
type Options struct {
	// IndentWidth is the number of spaces per indentation level. Zero or
	// negative widths render without indentation and report a
	// diagnostic.
	IndentWidth int
	// IncludeAnnotationComments emits the transformer's explanatory
	// notes as leading comment lines.
	IncludeAnnotationComments bool
	// Strict additionally reports an info diagnostic for every construct
	// that rendered in simplified form.
	Strict bool
}

// DefaultOptions returns the exam-board defaults.
func DefaultOptions() Options {
	return Options{IndentWidth: 3, IncludeAnnotationComments: true}
}

type generator struct {
	w        *Writer
	opts     Options
	reporter diag.Reporter
}

// Generate renders the IR tree to pseudocode text. It always returns a
// result; configuration problems degrade with a diagnostic instead of
// failing.
func Generate(root *ir.Node, opts Options, reporter diag.Reporter) string {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	if opts.IndentWidth <= 0 {
		reporter.Report(diag.GenIndentClamped, diag.SevWarning, source.Span{},
			"indent width must be positive; rendering without indentation", nil)
		opts.IndentWidth = 0
	}
	g := &generator{
		w:        NewWriter(opts.IndentWidth),
		opts:     opts,
		reporter: reporter,
	}
	if root != nil {
		g.walk(root)
	}
	return g.w.String()
}

func (g *generator) walk(n *ir.Node) {
	switch n.Kind {
	case ir.KindProgram, ir.KindBlock:
		for _, c := range n.Children {
			g.walk(c)
		}
		return
	}
	switch ir.RoleOf(n.Kind) {
	case ir.RoleOpener:
		g.emitOpener(n)
	case ir.RoleContinuation:
		g.emitContinuation(n)
	default:
		g.emitLine(n)
	}
}

func (g *generator) emitLine(n *ir.Node) {
	g.emitNotes(n)
	switch n.Kind {
	case ir.KindBlank:
		g.w.Blank()
	case ir.KindComment:
		g.w.Line("// " + n.Get(ir.MetaText))
	default:
		if text := n.Get(ir.MetaText); text != "" {
			g.w.Line(text)
		}
	}
}

func (g *generator) emitOpener(n *ir.Node) {
	g.emitNotes(n)
	g.w.Line(g.header(n))
	g.w.IndentPush()
	for _, c := range n.Children {
		g.walk(c)
	}
	g.w.IndentPop()
	g.w.Line(g.closer(n))
}

// emitContinuation prints ELSE, OTHERWISE, and case labels at the level
// of the construct that opened the block, then resumes the body level.
func (g *generator) emitContinuation(n *ir.Node) {
	g.w.IndentPop()
	g.emitNotes(n)
	switch n.Kind {
	case ir.KindElse:
		g.w.Line("ELSE")
	case ir.KindOtherwise:
		g.w.Line("OTHERWISE")
	case ir.KindCaseBranch:
		g.w.Line(n.Get(ir.MetaLabel) + " :")
	}
	g.w.IndentPush()
	for _, c := range n.Children {
		g.walk(c)
	}
}

func (g *generator) header(n *ir.Node) string {
	switch n.Kind {
	case ir.KindIf:
		return "IF " + n.Get(ir.MetaCond) + " THEN"
	case ir.KindWhile:
		return "WHILE " + n.Get(ir.MetaCond)
	case ir.KindRepeat:
		return "REPEAT"
	case ir.KindFor:
		h := "FOR " + n.Get(ir.MetaVar) + " ← " + n.Get(ir.MetaFrom) + " TO " + n.Get(ir.MetaTo)
		if step := n.Get(ir.MetaStep); step != "" {
			h += " STEP " + step
		}
		return h
	case ir.KindCase:
		return "CASE OF " + n.Get(ir.MetaSubject)
	case ir.KindProcedure:
		return "PROCEDURE " + signature(n)
	case ir.KindFunction:
		return "FUNCTION " + signature(n) + " RETURNS " + n.Get(ir.MetaReturns)
	default:
		return n.Get(ir.MetaText)
	}
}

func (g *generator) closer(n *ir.Node) string {
	kw := ir.CloserKeyword(n.Kind)
	switch n.Kind {
	case ir.KindFor:
		return kw + " " + n.Get(ir.MetaVar)
	case ir.KindRepeat:
		return kw + " " + n.Get(ir.MetaCond)
	default:
		return kw
	}
}

func signature(n *ir.Node) string {
	name := n.Get(ir.MetaName)
	if params := n.Get(ir.MetaParams); params != "" {
		return name + "(" + params + ")"
	}
	return name
}

// emitNotes prints the transformer's annotations and undeclared-name
// records as leading comments.
func (g *generator) emitNotes(n *ir.Node) {
	note := n.Get(ir.MetaAnnotation)
	if note != "" && g.opts.Strict {
		first := note
		if i := strings.IndexByte(first, '\n'); i >= 0 {
			first = first[:i]
		}
		g.reporter.Report(diag.GenInfo, diag.SevInfo, source.Span{},
			"rendered in simplified form: "+first, nil)
	}
	if !g.opts.IncludeAnnotationComments {
		return
	}
	if note != "" {
		for _, line := range strings.Split(note, "\n") {
			g.w.Line("// " + line)
		}
	}
	if names := n.Get(ir.MetaUndeclared); names != "" {
		g.w.Line("// uses undeclared name(s): " + names)
	}
}
