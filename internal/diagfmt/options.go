// Package diagfmt renders diagnostics and token streams for the CLI:
// colored human-readable text and machine-readable JSON.
package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	// Color enables ANSI colors.
	Color bool
	// ShowSource prints the offending source line with a caret underline.
	ShowSource bool
	// ShowNotes prints secondary notes after the primary line.
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// IncludePositions adds resolved line/column fields.
	IncludePositions bool
	// Max truncates the output list; zero means everything.
	Max int
}
