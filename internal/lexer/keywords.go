package lexer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cwbudde/go-basic-lexer/pkg/token"
)

// upperCaser performs Unicode-aware uppercasing of the scanned identifier
// buffer before keyword-table lookup. isWord admits non-ASCII letters, so a
// plain ASCII strings.ToUpper would silently fail to case-fold those.
var upperCaser = cases.Upper(language.Und)

// remKeyword is handled specially by the caller (it discards the rest of
// the line) rather than producing a token of its own.
const remKeyword = "REM"

// keywords maps an upper-cased identifier spelling to its token. Matching
// only ever happens for identifiers with no trailing type sigil; a sigiled
// identifier is always a Symbol, even if its name happens to spell a
// keyword.
var keywords = map[string]token.Token{
	"AND":     token.New(token.AND),
	"AS":      token.New(token.AS),
	"BOOLEAN": token.New(token.BOOLEANNAME),
	"DATA":    token.New(token.DATA),
	"DIM":     token.New(token.DIM),
	"DOUBLE":  token.New(token.DOUBLENAME),
	"ELSE":    token.New(token.ELSE),
	"ELSEIF":  token.New(token.ELSEIF),
	"END":     token.New(token.END),
	"FALSE":   token.NewBoolean(false),
	"FOR":     token.New(token.FOR),
	"GOTO":    token.New(token.GOTO),
	"IF":      token.New(token.IF),
	"INTEGER": token.New(token.INTEGERNAME),
	"MOD":     token.New(token.MODULO),
	"NEXT":    token.New(token.NEXT),
	"NOT":     token.New(token.NOT),
	"OR":      token.New(token.OR),
	"STEP":    token.New(token.STEP),
	"STRING":  token.New(token.TEXTNAME),
	"THEN":    token.New(token.THEN),
	"TO":      token.New(token.TO),
	"TRUE":    token.NewBoolean(true),
	"WEND":    token.New(token.WEND),
	"WHILE":   token.New(token.WHILE),
	"XOR":     token.New(token.XOR),
}
