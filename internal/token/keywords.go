package token

var keywords = map[string]Kind{
	"and":    KwAnd,
	"class":  KwClass,
	"else":   KwElse,
	"false":  KwFalse,
	"for":    KwFor,
	"fun":    KwFun,
	"if":     KwIf,
	"nil":    KwNil,
	"or":     KwOr,
	"print":  KwPrint,
	"return": KwReturn,
	"super":  KwSuper,
	"this":   KwThis,
	"true":   KwTrue,
	"var":    KwVar,
	"while":  KwWhile,
	"break":  KwBreak,
}

// LookupKeyword returns the keyword kind for ident, if any. Keywords are
// case-sensitive: only the exact lowercase spelling is recognized, anything
// else (including "Print" or "VAR") scans as a plain identifier.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
