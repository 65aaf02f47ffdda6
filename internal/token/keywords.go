package token

import "pseudo/internal/dialect"

var sharedKeywords = map[string]Kind{
	"return":     KwReturn,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"do":         KwDo,
	"for":        KwFor,
	"switch":     KwSwitch,
	"case":       KwCase,
	"default":    KwDefault,
	"break":      KwBreak,
	"continue":   KwContinue,
	"new":        KwNew,
	"class":      KwClass,
	"extends":    KwExtends,
	"static":     KwStatic,
	"void":       KwVoid,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
	"this":       KwThis,
	"super":      KwSuper,
	"try":        KwTry,
	"catch":      KwCatch,
	"finally":    KwFinally,
	"throw":      KwThrow,
	"import":     KwImport,
	"enum":       KwEnum,
	"instanceof": KwInstanceof,
	"const":      KwConst,
}

var jsKeywords = map[string]Kind{
	"var":      KwVar,
	"let":      KwLet,
	"function": KwFunction,
	"export":   KwExport,
	"async":    KwAsync,
	"await":    KwAwait,
	"typeof":   KwTypeof,
	"of":       KwOf,
	"in":       KwIn,
}

var javaKeywords = map[string]Kind{
	"package":    KwPackage,
	"public":     KwPublic,
	"private":    KwPrivate,
	"protected":  KwProtected,
	"final":      KwFinal,
	"abstract":   KwAbstract,
	"interface":  KwInterface,
	"implements": KwImplements,
	"int":        KwInt,
	"double":     KwDouble,
	"float":      KwFloat,
	"long":       KwLong,
	"short":      KwShort,
	"byte":       KwByte,
	"char":       KwChar,
	"boolean":    KwBoolean,
}

// LookupKeyword returns the keyword kind of ident for the given dialect.
// Keywords are case-sensitive; only the exact lowercase spellings match.
func LookupKeyword(ident string, lang dialect.Kind) (Kind, bool) {
	if k, ok := sharedKeywords[ident]; ok {
		return k, ok
	}
	switch lang {
	case dialect.JavaScript:
		k, ok := jsKeywords[ident]
		return k, ok
	case dialect.Java:
		k, ok := javaKeywords[ident]
		return k, ok
	}
	return Invalid, false
}
