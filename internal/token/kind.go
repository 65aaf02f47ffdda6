package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwSuper represents the 'super' keyword.
	KwSuper // super
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwPackage represents the 'package' keyword.
	KwPackage // package
	// KwPublic represents the 'public' keyword.
	KwPublic // public
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwProtected represents the 'protected' keyword.
	KwProtected // protected
	// KwFinal represents the 'final' keyword.
	KwFinal // final
	// KwAbstract represents the 'abstract' keyword.
	KwAbstract // abstract
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwImplements represents the 'implements' keyword.
	KwImplements // implements
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwTypeof represents the 'typeof' keyword.
	KwTypeof // typeof
	// KwInstanceof represents the 'instanceof' keyword.
	KwInstanceof // instanceof
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwOf represents the 'of' keyword.
	KwOf // of
	// KwIn represents the 'in' keyword.
	KwIn // in

	// KwInt represents the Java 'int' primitive type keyword.
	KwInt // int
	// KwDouble represents the Java 'double' primitive type keyword.
	KwDouble // double
	// KwFloat represents the Java 'float' primitive type keyword.
	KwFloat // float
	// KwLong represents the Java 'long' primitive type keyword.
	KwLong // long
	// KwShort represents the Java 'short' primitive type keyword.
	KwShort // short
	// KwByte represents the Java 'byte' primitive type keyword.
	KwByte // byte
	// KwChar represents the Java 'char' primitive type keyword.
	KwChar // char
	// KwBoolean represents the Java 'boolean' primitive type keyword.
	KwBoolean // boolean

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a floating-point literal token.
	FloatLit
	// StringLit represents a string literal token.
	StringLit
	// TemplateLit represents a JS backtick template literal token.
	TemplateLit
	// CharLit represents a Java character literal token.
	CharLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// StarStar represents the exponentiation operator token.
	StarStar // **
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// PlusPlus represents the increment operator token.
	PlusPlus // ++
	// MinusMinus represents the decrement operator token.
	MinusMinus // --
	// EqEq represents the loose equality operator token.
	EqEq // ==
	// EqEqEq represents the strict equality operator token.
	EqEqEq // ===
	// Bang represents the logical not operator token.
	Bang // !
	// BangEq represents the loose inequality operator token.
	BangEq // !=
	// BangEqEq represents the strict inequality operator token.
	BangEqEq // !==
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Shl represents the shift-left operator token.
	Shl // <<
	// Shr represents the shift-right operator token.
	Shr // >>
	// Ushr represents the unsigned shift-right operator token.
	Ushr // >>>
	// Amp represents the bitwise-and operator token.
	Amp // &
	// Pipe represents the bitwise-or operator token.
	Pipe // |
	// Caret represents the bitwise-xor operator token.
	Caret // ^
	// Tilde represents the bitwise-not operator token.
	Tilde // ~
	// AndAnd represents the logical-and operator token.
	AndAnd // &&
	// OrOr represents the logical-or operator token.
	OrOr // ||
	// QuestionQuestion represents the nullish-coalescing operator token.
	QuestionQuestion // ??
	// Question represents the ternary question operator token.
	Question // ?
	// QuestionDot represents the optional chaining operator token.
	QuestionDot // ?.
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// DotDotDot represents the spread/vararg token.
	DotDotDot // ...
	// Arrow represents the fat arrow token.
	Arrow // =>
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// At represents the at token (Java annotations).
	At // @
)

var kindNames = map[Kind]string{
	Invalid: "invalid", EOF: "eof", Ident: "ident",
	KwVar: "var", KwLet: "let", KwConst: "const", KwFunction: "function",
	KwReturn: "return", KwIf: "if", KwElse: "else", KwWhile: "while",
	KwDo: "do", KwFor: "for", KwSwitch: "switch", KwCase: "case",
	KwDefault: "default", KwBreak: "break", KwContinue: "continue",
	KwNew: "new", KwClass: "class", KwExtends: "extends", KwStatic: "static",
	KwVoid: "void", KwTrue: "true", KwFalse: "false", KwNull: "null",
	KwThis: "this", KwSuper: "super", KwTry: "try", KwCatch: "catch",
	KwFinally: "finally", KwThrow: "throw", KwImport: "import",
	KwExport: "export", KwPackage: "package", KwPublic: "public",
	KwPrivate: "private", KwProtected: "protected", KwFinal: "final",
	KwAbstract: "abstract", KwInterface: "interface",
	KwImplements: "implements", KwAsync: "async", KwAwait: "await",
	KwTypeof: "typeof", KwInstanceof: "instanceof", KwEnum: "enum",
	KwOf: "of", KwIn: "in",
	KwInt: "int", KwDouble: "double", KwFloat: "float", KwLong: "long",
	KwShort: "short", KwByte: "byte", KwChar: "char", KwBoolean: "boolean",
	IntLit: "int literal", FloatLit: "float literal",
	StringLit: "string literal", TemplateLit: "template literal",
	CharLit: "char literal",
	Plus:    "+", Minus: "-", Star: "*", StarStar: "**", Slash: "/",
	Percent: "%", Assign: "=", PlusAssign: "+=", MinusAssign: "-=",
	StarAssign: "*=", SlashAssign: "/=", PercentAssign: "%=",
	PlusPlus: "++", MinusMinus: "--", EqEq: "==", EqEqEq: "===",
	Bang: "!", BangEq: "!=", BangEqEq: "!==", Lt: "<", LtEq: "<=",
	Gt: ">", GtEq: ">=", Shl: "<<", Shr: ">>", Ushr: ">>>",
	Amp: "&", Pipe: "|", Caret: "^", Tilde: "~", AndAnd: "&&", OrOr: "||",
	QuestionQuestion: "??", Question: "?", QuestionDot: "?.", Colon: ":",
	Semicolon: ";", Comma: ",", Dot: ".", DotDotDot: "...", Arrow: "=>",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	LBracket: "[", RBracket: "]", At: "@",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
