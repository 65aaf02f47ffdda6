// Package ir defines the language-agnostic intermediate tree shared by
// every transformer and consumed by the generator. A node carries all the
// information needed to render it in its metadata map: by the time a tree
// reaches the generator, no scope query or type lookup remains to be done.
package ir

// Category groups node kinds by structural role.
type Category uint8

const (
	CategoryProgram Category = iota
	CategoryDeclaration
	CategoryStatement
	CategoryControl
	CategoryFunction
	CategoryExpression
)

var categoryNames = [...]string{
	CategoryProgram:     "program",
	CategoryDeclaration: "declaration",
	CategoryStatement:   "statement",
	CategoryControl:     "control-structure",
	CategoryFunction:    "function-like",
	CategoryExpression:  "expression",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Kind is the fine-grained node tag. The set is closed: the transformer
// produces only these kinds and the generator matches all of them.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindProgram
	KindBlock

	// Leaf statements carry their full rendered line in MetaText.
	KindDeclare
	KindConstant
	KindAssign
	KindOutput
	KindInput
	KindCall
	KindReturn
	KindExprStmt
	KindComment
	KindBlank

	// Block constructs. Children hold bodies; header fragments live in
	// metadata (condition text, loop bounds, branch labels).
	KindIf
	KindElse
	KindWhile
	KindRepeat
	KindFor
	KindCase
	KindCaseBranch
	KindOtherwise
	KindProcedure
	KindFunction
)

var kindNames = [...]string{
	KindInvalid:    "invalid",
	KindProgram:    "program",
	KindBlock:      "block",
	KindDeclare:    "variable_declaration",
	KindConstant:   "constant_declaration",
	KindAssign:     "assignment",
	KindOutput:     "output",
	KindInput:      "input",
	KindCall:       "procedure_call",
	KindReturn:     "return",
	KindExprStmt:   "expression_statement",
	KindComment:    "comment",
	KindBlank:      "blank",
	KindIf:         "if_statement",
	KindElse:       "else_branch",
	KindWhile:      "while_loop",
	KindRepeat:     "repeat_loop",
	KindFor:        "for_loop",
	KindCase:       "case_statement",
	KindCaseBranch: "case_branch",
	KindOtherwise:  "otherwise_branch",
	KindProcedure:  "procedure_declaration",
	KindFunction:   "function_declaration",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// CategoryOf maps every kind to its category.
func CategoryOf(k Kind) Category {
	switch k {
	case KindProgram:
		return CategoryProgram
	case KindDeclare, KindConstant:
		return CategoryDeclaration
	case KindIf, KindElse, KindWhile, KindRepeat, KindFor,
		KindCase, KindCaseBranch, KindOtherwise:
		return CategoryControl
	case KindProcedure, KindFunction:
		return CategoryFunction
	default:
		return CategoryStatement
	}
}

// Metadata keys. Values are always pre-rendered text fragments.
const (
	MetaText       = "text"       // full line body for leaf statements
	MetaCond       = "cond"       // IF / WHILE condition, REPEAT's UNTIL condition
	MetaVar        = "var"        // FOR loop variable name
	MetaFrom       = "from"       // FOR start bound
	MetaTo         = "to"         // FOR end bound
	MetaStep       = "step"       // FOR step, absent means 1
	MetaSubject    = "subject"    // CASE OF subject expression
	MetaLabel      = "label"      // case branch label text
	MetaName       = "name"       // procedure / function name
	MetaParams     = "params"     // rendered parameter list
	MetaReturns    = "returns"    // function return type
	MetaAnnotation = "annotation" // explanatory note, emitted as a leading comment
	MetaUndeclared = "undeclared" // names referenced but never declared
)

// Node is a single IR tree node.
type Node struct {
	Kind     Kind
	Children []*Node
	Meta     map[string]string
}

// New creates a node of the given kind with empty metadata.
func New(kind Kind) *Node {
	return &Node{Kind: kind, Meta: map[string]string{}}
}

// NewText creates a leaf statement node carrying its rendered line.
func NewText(kind Kind, text string) *Node {
	return New(kind).Set(MetaText, text)
}

// Set stores a metadata value and returns the node for chaining.
func (n *Node) Set(key, value string) *Node {
	n.Meta[key] = value
	return n
}

// Get returns a metadata value, empty string when absent.
func (n *Node) Get(key string) string { return n.Meta[key] }

// Has reports whether a metadata key is present.
func (n *Node) Has(key string) bool {
	_, ok := n.Meta[key]
	return ok
}

// Add appends children and returns the node for chaining.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Annotate appends an explanatory note to the node. Multiple notes are
// kept newline-separated and each becomes its own leading comment line.
func (n *Node) Annotate(note string) *Node {
	if prev := n.Meta[MetaAnnotation]; prev != "" {
		n.Meta[MetaAnnotation] = prev + "\n" + note
	} else {
		n.Meta[MetaAnnotation] = note
	}
	return n
}
