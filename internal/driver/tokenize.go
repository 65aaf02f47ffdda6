package driver

import (
	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/lexer"
	"pseudo/internal/source"
	"pseudo/internal/token"
)

// TokenizeResult holds the token stream of one file, for the debug CLI.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Lang    dialect.Kind
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes one file to completion.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	opts = opts.withDefaults()
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	lang := detectLang(file, opts.Lang)

	bag := diag.NewBag(opts.MaxDiagnostics)
	lx := lexer.New(file, lexer.Options{Lang: lang, Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Lang:    lang,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
