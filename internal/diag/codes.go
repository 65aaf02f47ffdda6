package diag

import (
	"fmt"
)

// Code is a compact numeric identifier with a stable string form.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000-1999)
	LexInfo                 Code = 1000
	LexUnknownChar          Code = 1001
	LexUnterminatedString   Code = 1002
	LexUnterminatedTemplate Code = 1003
	LexUnterminatedChar     Code = 1004
	LexUnterminatedComment  Code = 1005
	LexBadNumber            Code = 1006
	LexBadEscape            Code = 1007

	// Structural / parse (2000-2999)
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynUnclosedParen    Code = 2002
	SynUnclosedBrace    Code = 2003
	SynUnclosedBracket  Code = 2004
	SynStrayCloser      Code = 2005
	SynExpectIdentifier Code = 2006
	SynExpectExpression Code = 2007
	SynForBadHeader     Code = 2008
	SynNestingTooDeep   Code = 2009
	SynEmptyProgram     Code = 2010

	// Unsupported input features (2500-2999): recognized, converted
	// best-effort, never fatal.
	SynUnsupportedImport      Code = 2500
	SynUnsupportedTryCatch    Code = 2501
	SynUnsupportedLambda      Code = 2502
	SynUnsupportedGenerics    Code = 2503
	SynUnsupportedDestructure Code = 2504
	SynUnsupportedSpread      Code = 2505

	// Conversion (3000-3999)
	ConvInfo                Code = 3000
	ConvTypeFallback        Code = 3001
	ConvIndexAdjusted       Code = 3002
	ConvIndexManualReview   Code = 3003
	ConvLoopRewritten       Code = 3004
	ConvMethodNoEquivalent  Code = 3005
	ConvConstructSimplified Code = 3006
	ConvUndeclaredName      Code = 3007
	ConvScopeUnderflow      Code = 3008
	ConvCaseFallthrough     Code = 3009
	ConvTemplateFlattened   Code = 3010
	ConvModifierDropped     Code = 3011

	// Generator (4000-4999)
	GenInfo          Code = 4000
	GenIndentClamped Code = 4001

	// I/O and batch driver (5000-5999)
	IOLoadFileError  Code = 5001
	IOWriteFileError Code = 5002
)

// Class is the coarse taxonomy class a code belongs to.
type Class uint8

const (
	ClassUnknown Class = iota
	// ClassStructural covers unbalanced delimiters, unterminated literals
	// and other shape problems; parsing continues best-effort.
	ClassStructural
	// ClassUnsupported covers constructs with no direct pseudocode
	// equivalent; always a warning with a suggested alternative.
	ClassUnsupported
	// ClassTypeFallback covers types that defaulted to the textual
	// fallback type.
	ClassTypeFallback
	// ClassConversion covers informational rewrite notes (index shifts,
	// loop rewrites, method mappings).
	ClassConversion
	// ClassValidation is reserved for the external input validator; the
	// core never raises it.
	ClassValidation
)

func (c Code) Class() Class {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2500:
		return ClassStructural
	case ic >= 2500 && ic < 3000:
		return ClassUnsupported
	case c == ConvTypeFallback:
		return ClassTypeFallback
	case ic >= 3000 && ic < 5000:
		return ClassConversion
	case ic >= 5000 && ic < 6000:
		return ClassValidation
	}
	return ClassUnknown
}

var codeDescription = map[Code]string{
	UnknownCode:             "Unknown diagnostic",
	LexInfo:                 "Lexical information",
	LexUnknownChar:          "Unknown character",
	LexUnterminatedString:   "Unterminated string literal",
	LexUnterminatedTemplate: "Unterminated template literal",
	LexUnterminatedChar:     "Unterminated character literal",
	LexUnterminatedComment:  "Unterminated block comment",
	LexBadNumber:            "Malformed number literal",
	LexBadEscape:            "Invalid escape sequence",

	SynInfo:             "Syntax information",
	SynUnexpectedToken:  "Unexpected token",
	SynUnclosedParen:    "Unclosed parenthesis",
	SynUnclosedBrace:    "Unclosed brace",
	SynUnclosedBracket:  "Unclosed bracket",
	SynStrayCloser:      "Closing delimiter without matching opener",
	SynExpectIdentifier: "Expected identifier",
	SynExpectExpression: "Expected expression",
	SynForBadHeader:     "Unrecognized for-loop header",
	SynNestingTooDeep:   "Construct nesting exceeds supported depth",
	SynEmptyProgram:     "Empty program",

	SynUnsupportedImport:      "Import statements have no pseudocode equivalent",
	SynUnsupportedTryCatch:    "Exception handling has no pseudocode equivalent",
	SynUnsupportedLambda:      "Lambda expressions have no pseudocode equivalent",
	SynUnsupportedGenerics:    "Generic type parameters have no pseudocode equivalent",
	SynUnsupportedDestructure: "Destructuring has no pseudocode equivalent",
	SynUnsupportedSpread:      "Spread syntax has no pseudocode equivalent",

	ConvInfo:                "Conversion information",
	ConvTypeFallback:        "Type defaulted to STRING",
	ConvIndexAdjusted:       "Array index shifted from 0-based to 1-based",
	ConvIndexManualReview:   "Nested index expression may need manual review",
	ConvLoopRewritten:       "Counting loop rewritten to FOR..TO form",
	ConvMethodNoEquivalent:  "Method has no direct pseudocode equivalent",
	ConvConstructSimplified: "Construct simplified to nearest structural equivalent",
	ConvUndeclaredName:      "Identifier used but never declared",
	ConvScopeUnderflow:      "Scope exit at outermost level ignored",
	ConvCaseFallthrough:     "Case branch without break falls through in the source",
	ConvTemplateFlattened:   "Template literal flattened to concatenation",
	ConvModifierDropped:     "Modifier has no pseudocode equivalent",

	GenInfo:          "Generator information",
	GenIndentClamped: "Non-positive indent width renders without indentation",

	IOLoadFileError:  "Failed to load file",
	IOWriteFileError: "Failed to write file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CNV%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("GEN%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
