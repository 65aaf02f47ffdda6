// Package dialect identifies which input language a source file is written
// in. Detection is evidence-based: lexical signals are scored and the
// dominant language wins. Callers may always override detection explicitly.
package dialect

import "fmt"

// Kind represents a supported input language.
type Kind uint8

const (
	Unknown Kind = iota
	JavaScript
	Java

	kindCount
)

func (k Kind) String() string {
	switch k {
	case JavaScript:
		return "javascript"
	case Java:
		return "java"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("Kind(%s)", k.String())
}

// Parse maps a user-supplied language name to a Kind.
func Parse(name string) (Kind, error) {
	switch name {
	case "js", "javascript":
		return JavaScript, nil
	case "java":
		return Java, nil
	case "", "auto":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("unknown input language %q (expected js|java|auto)", name)
}

// FromExtension guesses the language from a file extension like ".js".
func FromExtension(ext string) Kind {
	switch ext {
	case ".js", ".mjs", ".cjs", ".jsx":
		return JavaScript
	case ".java":
		return Java
	}
	return Unknown
}
