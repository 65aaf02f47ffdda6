// Package driver wires the conversion stages together: dialect detection,
// lexing, parsing, transformation, and generation run per call with no
// shared state, so concurrent conversions need no coordination. The batch
// entry points fan out over files and reuse results through a disk cache.
package driver

import (
	"fmt"
	"path/filepath"
	"strings"

	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/gen"
	"pseudo/internal/lexer"
	"pseudo/internal/parser"
	"pseudo/internal/source"
	"pseudo/internal/transform"
)

// Options configures one conversion.
type Options struct {
	// Lang forces the input dialect. Unknown means detect from the file
	// extension, then from content evidence.
	Lang dialect.Kind
	// MaxDiagnostics caps the diagnostics kept per conversion.
	MaxDiagnostics int
	// Gen controls the rendered output.
	Gen gen.Options
}

// DefaultOptions mirrors the manifest defaults.
func DefaultOptions() Options {
	return Options{
		Lang:           dialect.Unknown,
		MaxDiagnostics: 256,
		Gen:            gen.DefaultOptions(),
	}
}

func (o Options) withDefaults() Options {
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = 256
	}
	if o.Gen == (gen.Options{}) {
		o.Gen = gen.DefaultOptions()
	}
	return o
}

// ConvertResult is one converted source, diagnostics included. Output is
// always present; structural errors leave a marker line plus a
// best-effort body instead of failing the conversion.
type ConvertResult struct {
	Path    string
	Lang    dialect.Kind
	Output  string
	Bag     *diag.Bag
	FileSet *source.FileSet
	File    *source.File
	Cached  bool
}

// ConvertFile loads and converts one file.
func ConvertFile(path string, opts Options) (*ConvertResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	res := convert(fs, fs.Get(fileID), opts)
	res.Path = path
	return res, nil
}

// ConvertSource converts in-memory text under a virtual file name.
func ConvertSource(name string, src []byte, opts Options) *ConvertResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	res := convert(fs, fs.Get(fileID), opts)
	res.Path = name
	return res
}

func convert(fs *source.FileSet, file *source.File, opts Options) *ConvertResult {
	opts = opts.withDefaults()
	lang := detectLang(file, opts.Lang)

	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Lang: lang, Reporter: reporter})
	parsed := parser.ParseFile(lx, parser.Options{Reporter: reporter})
	root := transform.Transform(parsed.Program, lang, reporter)
	text := gen.Generate(root, opts.Gen, reporter)

	if bag.HasErrors() {
		text = errorMarker(bag) + text
	}
	return &ConvertResult{
		Lang:    lang,
		Output:  text,
		Bag:     bag,
		FileSet: fs,
		File:    file,
	}
}

// detectLang settles the input dialect: explicit option, then file
// extension, then content evidence.
func detectLang(file *source.File, forced dialect.Kind) dialect.Kind {
	if forced != dialect.Unknown {
		return forced
	}
	if k := dialect.FromExtension(strings.ToLower(filepath.Ext(file.Path))); k != dialect.Unknown {
		return k
	}
	if c := dialect.Detect(file.Content); c.Kind != dialect.Unknown {
		return c.Kind
	}
	// JavaScript is the more permissive grammar of the two
	return dialect.JavaScript
}

// errorMarker is the machine-readable first line for conversions whose
// input had structural errors.
func errorMarker(bag *diag.Bag) string {
	n := 0
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			n++
		}
	}
	plural := "s"
	if n == 1 {
		plural = ""
	}
	return fmt.Sprintf("//! %d structural error%s: output is best-effort\n", n, plural)
}
