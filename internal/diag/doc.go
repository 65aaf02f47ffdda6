// Package diag defines the diagnostic model shared by all conversion stages.
//
// Every stage (lexer, parser, transformer, generator) is total: it produces a
// result for any input and attaches findings as Diagnostic values instead of
// returning errors. A Diagnostic carries a Severity, a stable numeric Code, a
// human message and a primary source span; producers emit through the
// Reporter interface so they stay decoupled from storage, and BagReporter
// aggregates into a Bag which supports sorting and deduplication.
//
// No diagnostic is ever raised as a panic or an error across a stage
// boundary; only programmer-error conditions (overflow in safecast
// conversions) may panic.
package diag
