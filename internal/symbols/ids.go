package symbols

// ScopeID identifies a scope in the arena. Scopes reference their parent by
// ID rather than by pointer, so the whole tree is a flat slice.
type ScopeID uint32

const (
	// NoScopeID marks the absence of a scope reference.
	NoScopeID ScopeID = 0
)

// IsValid reports whether the scope ID refers to an allocated scope.
func (id ScopeID) IsValid() bool { return id != NoScopeID }
