package gen

import "strings"

// Writer accumulates output lines, tracking the indentation level and
// collapsing blank runs. Trailing whitespace never survives a Line call
// and the finished text carries exactly one trailing newline.
type Writer struct {
	buf          []byte
	indentWidth  int
	indentLevel  int
	blankPending bool
	wroteLine    bool
}

// NewWriter creates a writer with the given indent unit width. Widths of
// zero or less render without indentation.
func NewWriter(indentWidth int) *Writer {
	if indentWidth < 0 {
		indentWidth = 0
	}
	return &Writer{indentWidth: indentWidth}
}

// Line writes one line at the current indentation level. An empty (or
// whitespace-only) line counts as a blank.
func (w *Writer) Line(s string) {
	s = strings.TrimRight(s, " \t")
	if s == "" {
		w.Blank()
		return
	}
	if w.blankPending && w.wroteLine {
		w.buf = append(w.buf, '\n')
	}
	w.blankPending = false
	for n := 0; n < w.indentLevel*w.indentWidth; n++ {
		w.buf = append(w.buf, ' ')
	}
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, '\n')
	w.wroteLine = true
}

// Blank requests a blank line. Consecutive requests collapse to one, and
// blanks before the first line or after the last never print.
func (w *Writer) Blank() {
	w.blankPending = true
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation level.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

// Level returns the current indentation level.
func (w *Writer) Level() int { return w.indentLevel }

// String returns the accumulated text. Empty output stays empty, with no
// stray newline.
func (w *Writer) String() string {
	return string(w.buf)
}
