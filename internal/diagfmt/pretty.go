package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"pseudo/internal/diag"
	"pseudo/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	codeColor = color.New(color.Bold)
)

// Pretty writes diagnostics in human-readable form, one per block:
//
//	<path>:<line>:<col>: <severity> <code>: <message>
//	   <source line>
//	   ^~~~
//
// Callers should bag.Sort() beforehand for a stable order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		location(d.Primary, fs),
		paint(severityColor(d.Severity), strings.ToLower(d.Severity.String()), opts.Color),
		paint(codeColor, d.Code.ID(), opts.Color),
		d.Message)

	if opts.ShowSource {
		printSourceLine(w, d.Primary, fs)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  note: %s (%s)\n", n.Msg, location(n.Span, fs))
		}
	}
}

func location(sp source.Span, fs *source.FileSet) string {
	if fs == nil {
		return "<input>"
	}
	file := fs.Get(sp.File)
	if file == nil {
		return "<input>"
	}
	pos := fs.Position(sp)
	return fmt.Sprintf("%s:%d:%d", file.Path, pos.Line, pos.Col)
}

func printSourceLine(w io.Writer, sp source.Span, fs *source.FileSet) {
	if fs == nil {
		return
	}
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	pos := fs.Position(sp)
	line := strings.TrimRight(file.GetLine(pos.Line), "\r\n")
	if line == "" {
		return
	}
	fmt.Fprintf(w, "   %s\n", line)

	col := int(pos.Col)
	if col < 1 {
		col = 1
	}
	width := int(sp.Len())
	if width < 1 {
		width = 1
	}
	if col-1+width > len(line) {
		width = len(line) - col + 1
		if width < 1 {
			width = 1
		}
	}
	fmt.Fprintf(w, "   %s^%s\n",
		strings.Repeat(" ", col-1),
		strings.Repeat("~", width-1))
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

func paint(c *color.Color, s string, enabled bool) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

// Summary writes a one-line count of errors and warnings, colored to
// match the worst severity present.
func Summary(w io.Writer, bag *diag.Bag, useColor bool) {
	errs, warns := 0, 0
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
	}
	if errs == 0 && warns == 0 {
		return
	}
	text := fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)
	switch {
	case errs > 0:
		fmt.Fprintln(w, paint(errColor, text, useColor))
	default:
		fmt.Fprintln(w, paint(warnColor, text, useColor))
	}
}
