package ir

// Role tags how a node's header line participates in the indentation
// state machine. The set is closed and the generator applies one uniform
// rule per role, never per-construct logic: openers print at the current
// level and indent their body, continuations print at their opener's
// level without changing it, and the opener's closing keyword dedents
// before printing.
type Role uint8

const (
	// RoleLine is a plain statement line at the current level.
	RoleLine Role = iota
	// RoleOpener starts a block; the body is one level deeper until the
	// matching closer.
	RoleOpener
	// RoleContinuation sits mid-block at the opener's level (ELSE,
	// OTHERWISE, case labels).
	RoleContinuation
)

// RoleOf classifies a kind for the indentation state machine.
func RoleOf(k Kind) Role {
	switch k {
	case KindIf, KindWhile, KindRepeat, KindFor, KindCase,
		KindProcedure, KindFunction:
		return RoleOpener
	case KindElse, KindCaseBranch, KindOtherwise:
		return RoleContinuation
	default:
		return RoleLine
	}
}

// CloserKeyword returns the closing keyword for an opener kind, empty for
// kinds that do not open a block. REPEAT and FOR closers take a trailing
// fragment (the UNTIL condition, the NEXT variable) that the generator
// appends from metadata.
func CloserKeyword(k Kind) string {
	switch k {
	case KindIf:
		return "ENDIF"
	case KindWhile:
		return "ENDWHILE"
	case KindRepeat:
		return "UNTIL"
	case KindFor:
		return "NEXT"
	case KindCase:
		return "ENDCASE"
	case KindProcedure:
		return "ENDPROCEDURE"
	case KindFunction:
		return "ENDFUNCTION"
	default:
		return ""
	}
}
