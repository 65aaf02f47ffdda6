package driver

import (
	"fortio.org/safecast"

	"pseudo/internal/ast"
	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/lexer"
	"pseudo/internal/parser"
	"pseudo/internal/source"
)

// ParseResult holds the syntax tree of one file, for the debug CLI.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Lang    dialect.Kind
	Program *ast.Node
	Bag     *diag.Bag
}

// Parse lexes and parses one file without transforming it.
func Parse(path string, opts Options) (*ParseResult, error) {
	opts = opts.withDefaults()
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	lang := detectLang(file, opts.Lang)

	bag := diag.NewBag(opts.MaxDiagnostics)
	maxErrors, err := safecast.Conv[uint](opts.MaxDiagnostics)
	if err != nil {
		return nil, err
	}

	lx := lexer.New(file, lexer.Options{Lang: lang, Reporter: diag.BagReporter{Bag: bag}})
	res := parser.ParseFile(lx, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Lang:    lang,
		Program: res.Program,
		Bag:     bag,
	}, nil
}
